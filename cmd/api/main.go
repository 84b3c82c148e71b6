package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cartengine/internal/config"
	"cartengine/internal/handler"
	infraRepo "cartengine/internal/infra/repository"
	"cartengine/internal/logger"
	"cartengine/internal/middleware"
	"cartengine/internal/notify"
	repo "cartengine/internal/repository"
	"cartengine/internal/server"
	"cartengine/internal/usecase"

	"go.uber.org/zap"
)

func main() {
	config.LoadDotEnv(".env", "../.env")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.MustNew(cfg.GoEnv)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//保存先（STORE_DRIVER）
	store, closeStore, err := infraRepo.OpenBlobStore(ctx, cfg)
	if err != nil {
		log.Fatal("open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer func() { _ = closeStore() }()

	//通知
	toasts := notify.NewToastBoard(cfg.ToastTTL)

	//Usecase生成
	cartUC := usecase.NewCartUsecase(
		func(visitorID string) repo.CartRepository {
			return infraRepo.NewCartBlobRepository(store, cfg.CartKey+":"+visitorID, log)
		},
		func(visitorID string) usecase.Notifier {
			return toasts.For(visitorID)
		},
		log,
	)

	//Handler生成
	cartH := handler.NewCartHandler(cartUC, toasts, log)
	tokens := middleware.NewVisitorTokens(cfg.VisitorSecret)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	log.Info("cart api started", zap.String("addr", addr), zap.String("store", cfg.StoreDriver))
	if err := server.Start(ctx, server.New(cartH, tokens, log), addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
