package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"cartengine/internal/config"
	"cartengine/internal/domain/model"
	infraRepo "cartengine/internal/infra/repository"
	"cartengine/internal/logger"
	"cartengine/internal/usecase"
	"cartengine/internal/validator"
	"cartengine/internal/view"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// 追加時の通知を端末に出す
type printNotifier struct {
	w io.Writer
}

func (n printNotifier) NotifyAdded(title string, imageRef string) {
	fmt.Fprintf(n.w, "Added to Cart: %s\n", title)
}

type app struct {
	cfg   config.Config
	log   *zap.Logger
	out   io.Writer
	close func() error
	s     *usecase.CartSession
}

func (a *app) open(ctx context.Context) error {
	store, closeStore, err := infraRepo.OpenBlobStore(ctx, a.cfg)
	if err != nil {
		return err
	}
	a.close = closeStore

	r := infraRepo.NewCartBlobRepository(store, a.cfg.CartKey, a.log)
	a.s = usecase.NewCartSession(ctx, r, view.NewTextRenderer(a.out), printNotifier{w: a.out}, a.log)
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "cartctl",
		Short:         "Manage the local shopping cart",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd.Context())
		},
	}
	root.SetOut(a.out)

	var title, price, image string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a product (same title and price merge into one line)",
		RunE: func(cmd *cobra.Command, args []string) error {
			//HTTPと同じ検証（タイトルの前後空白は落とす）
			rawPrice, err := json.Marshal(price)
			if err != nil {
				return err
			}
			candidate, err := validator.ValidateAddItem(validator.AddItemInput{Title: title, Price: rawPrice, Image: image})
			if err != nil {
				return err
			}

			_, err = a.s.AddToCart(cmd.Context(), candidate)
			return err
		},
	}
	add.Flags().StringVar(&title, "title", "", "product title")
	add.Flags().StringVar(&price, "price", "", `price, e.g. "$9.99"`)
	add.Flags().StringVar(&image, "image", "", "image url or path")
	_ = add.MarkFlagRequired("title")
	_ = add.MarkFlagRequired("price")

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the cart page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.s.AttachCartPage()
			return nil
		},
	}

	count := &cobra.Command{
		Use:   "count",
		Short: "Show the cart counter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.s.RenderCounter()
			return nil
		},
	}

	root.AddCommand(
		add, show, count,
		indexCmd(a, "inc", "Increase the quantity of a line", (*usecase.CartSession).Increment),
		indexCmd(a, "dec", "Decrease the quantity of a line (removes it at zero)", (*usecase.CartSession).Decrement),
		indexCmd(a, "rm", "Remove a line", (*usecase.CartSession).Remove),
	)
	return root
}

func indexCmd(a *app, use string, short string, fn func(s *usecase.CartSession, ctx context.Context, index int) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " INDEX",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}

			err = fn(a.s, cmd.Context(), index)
			if usecase.IsNoop(err) {
				fmt.Fprintf(a.out, "no line at index %d\n", index)
				err = nil
			}
			view.NewTextRenderer(a.out).RenderCartPage(a.s.CartPage())
			return err
		},
	}
}

func run(ctx context.Context, args []string, out io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	log := logger.MustNew(cfg.GoEnv)
	defer func() { _ = log.Sync() }()

	a := &app{cfg: cfg, log: log, out: out}
	root := newRootCmd(a)
	root.SetArgs(args)
	defer func() {
		if a.close != nil {
			_ = a.close()
		}
	}()

	if err := root.ExecuteContext(ctx); err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidPrice):
			fmt.Fprintln(os.Stderr, "price must be greater than zero")
		default:
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}

func main() {
	config.LoadDotEnv(".env")
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout))
}
