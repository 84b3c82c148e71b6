package handler

import (
	"net/http"
	"strconv"

	"cartengine/internal/domain/model"
	"cartengine/internal/middleware"
	"cartengine/internal/notify"
	"cartengine/internal/usecase"
	"cartengine/internal/validator"
	"cartengine/internal/view"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// /cartのHTTP
// レスポンスがそのまま描画面になる（1リクエスト = 1ページ読み込み）
type CartHandler struct {
	uc     *usecase.CartUsecase
	toasts *notify.ToastBoard
	logger *zap.Logger
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, toasts *notify.ToastBoard, logger *zap.Logger) *CartHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartHandler{uc: uc, toasts: toasts, logger: logger}
}

type ItemResponse struct {
	Identity  string  `json:"identity"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	ImageRef  string  `json:"image_ref"`
	Quantity  int     `json:"quantity"`
}

type AddItemResponse struct {
	Item    ItemResponse          `json:"item"`
	Counter view.CounterViewModel `json:"counter"`
}

type CartStateResponse struct {
	Page    view.CartPageViewModel `json:"page"`
	Counter view.CounterViewModel  `json:"counter"`
}

// 行をidentity（タイトル＋単価）で指定する
type LineRequest struct {
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
}

// /cart 以下を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo, tokens *middleware.VisitorTokens) {
	g := e.Group("/cart")
	g.Use(middleware.Visitor(tokens))

	g.GET("", h.getCart)
	g.GET("/counter", h.getCounter)
	g.GET("/notifications", h.getNotifications)

	g.POST("/items", h.addItem)
	g.POST("/items/:index/increase", h.indexAction(func(s *usecase.CartSession, c echo.Context, i int) error {
		return s.Increment(c.Request().Context(), i)
	}))
	g.POST("/items/:index/decrease", h.indexAction(func(s *usecase.CartSession, c echo.Context, i int) error {
		return s.Decrement(c.Request().Context(), i)
	}))
	g.DELETE("/items/:index", h.indexAction(func(s *usecase.CartSession, c echo.Context, i int) error {
		return s.Remove(c.Request().Context(), i)
	}))

	g.POST("/lines/increase", h.lineAction(func(s *usecase.CartSession, c echo.Context, id model.Identity) error {
		return s.IncrementByIdentity(c.Request().Context(), id)
	}))
	g.POST("/lines/decrease", h.lineAction(func(s *usecase.CartSession, c echo.Context, id model.Identity) error {
		return s.DecrementByIdentity(c.Request().Context(), id)
	}))
	g.POST("/lines/remove", h.lineAction(func(s *usecase.CartSession, c echo.Context, id model.Identity) error {
		return s.RemoveByIdentity(c.Request().Context(), id)
	}))
}

func (h *CartHandler) getCart(c echo.Context) error {
	s, rec, ok := h.open(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	s.AttachCartPage()
	return c.JSON(http.StatusOK, CartStateResponse{Page: rec.CartPage, Counter: rec.Counter})
}

func (h *CartHandler) getCounter(c echo.Context) error {
	s, rec, ok := h.open(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	s.RenderCounter()
	return c.JSON(http.StatusOK, rec.Counter)
}

func (h *CartHandler) getNotifications(c echo.Context) error {
	visitorID, ok := middleware.VisitorID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	return c.JSON(http.StatusOK, h.toasts.Active(visitorID))
}

func (h *CartHandler) addItem(c echo.Context) error {
	s, rec, ok := h.open(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req validator.AddItemInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	candidate, err := validator.ValidateAddItem(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	item, err := s.AddToCart(c.Request().Context(), candidate)
	if err != nil {
		return writeError(c, usecase.ToHTTPError(err))
	}
	h.logger.Debug("item added", zap.String("identity", item.Identity().String()), zap.Int("quantity", item.Quantity))

	return c.JSON(http.StatusCreated, AddItemResponse{
		Item: ItemResponse{
			Identity:  item.Identity().String(),
			Title:     item.Title,
			UnitPrice: item.UnitPrice,
			ImageRef:  item.ImageRef,
			Quantity:  item.Quantity,
		},
		Counter: rec.Counter,
	})
}

// 行番号での操作。範囲外は何もせず現在のカートを返す。
func (h *CartHandler) indexAction(fn func(s *usecase.CartSession, c echo.Context, index int) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		s, rec, ok := h.open(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		}

		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid index"})
		}

		s.AttachCartPage()
		if err := fn(s, c, index); err != nil && !usecase.IsNoop(err) {
			return writeError(c, usecase.ToHTTPError(err))
		}
		return c.JSON(http.StatusOK, CartStateResponse{Page: rec.CartPage, Counter: rec.Counter})
	}
}

func (h *CartHandler) lineAction(fn func(s *usecase.CartSession, c echo.Context, id model.Identity) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		s, rec, ok := h.open(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		}

		var req LineRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
		}

		s.AttachCartPage()
		id := model.ResolveIdentity(req.Title, req.UnitPrice)
		if err := fn(s, c, id); err != nil && !usecase.IsNoop(err) {
			return writeError(c, usecase.ToHTTPError(err))
		}
		return c.JSON(http.StatusOK, CartStateResponse{Page: rec.CartPage, Counter: rec.Counter})
	}
}

// 訪問者のカートを読み込む
func (h *CartHandler) open(c echo.Context) (*usecase.CartSession, *usecase.RecordingRenderer, bool) {
	visitorID, ok := middleware.VisitorID(c)
	if !ok {
		return nil, nil, false
	}

	rec := &usecase.RecordingRenderer{}
	return h.uc.Open(c.Request().Context(), visitorID, rec), rec, true
}
