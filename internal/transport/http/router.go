package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Gunvolt24/shop_discovery/internal/domain"
	"github.com/Gunvolt24/shop_discovery/internal/ports"
	"github.com/Gunvolt24/shop_discovery/pkg/httpx"
)

type Handler struct {
	search ports.SearchService
	home   ports.HomeService
	cart   ports.CartService
	log    ports.Logger
}

func NewHandler(search ports.SearchService, home ports.HomeService, cart ports.CartService, log ports.Logger) *Handler {
	return &Handler{search: search, home: home, cart: cart, log: log}
}

// NewRouter — маршруты поверх gin; extraMiddleware добавляются после
// базовых (recovery, request id, логирование запросов).
func NewRouter(h *Handler, extraMiddleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))
	for _, mw := range extraMiddleware {
		r.Use(mw)
	}

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/search", h.runSearch)
	r.POST("/search/clear", h.clearSearch)

	r.GET("/home/recommendations", h.homeRecommendations)

	r.GET("/cart", h.cartSummary)
	r.GET("/cart/:id/recommendations", h.lineRecommendations)
	r.POST("/cart/:id/replace", h.replaceLineProduct)
	r.PUT("/cart/:id/quantity", h.updateLineQuantity)

	return r
}

// runSearch — выполнить поиск и отдать опубликованное состояние.
// Пустой запрос возвращает текущее состояние без изменений.
func (h *Handler) runSearch(c *gin.Context) {
	view := h.search.Search(
		c.Request.Context(),
		c.Query("query"),
		httpx.ParsePage(c),
		httpx.ParseSort(c),
	)
	c.JSON(http.StatusOK, view)
}

func (h *Handler) clearSearch(c *gin.Context) {
	h.search.Clear()
	c.Status(http.StatusNoContent)
}

func (h *Handler) homeRecommendations(c *gin.Context) {
	items := h.home.EnsureFetched(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// cartSummary — позиции с агрегатами; заодно запускает подбор
// рекомендаций для позиций, ещё не охваченных им.
func (h *Handler) cartSummary(c *gin.Context) {
	lines, totals, err := h.cart.Summary(c.Request.Context())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "cart summary failed err=%v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "cart service unavailable"})
		return
	}

	h.cart.SyncLines(c.Request.Context(), lines)

	c.JSON(http.StatusOK, gin.H{"lines": lines, "totals": totals})
}

func (h *Handler) lineRecommendations(c *gin.Context) {
	id := c.Param("id")
	state, ok := h.cart.StateFor(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "line not found"})
		return
	}
	c.JSON(http.StatusOK, state)
}

type replaceRequest struct {
	ProductID string `json:"product_id"`
}

func (h *Handler) replaceLineProduct(c *gin.Context) {
	id := c.Param("id")

	var req replaceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}

	err := h.cart.Replace(c.Request.Context(), id, req.ProductID)
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, domain.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "line not found"})
	case errors.Is(err, domain.ErrReplaceInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "replacement already in progress"})
	case errors.Is(err, domain.ErrReplacementFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "replacement failed"})
	default:
		h.log.Errorf(c.Request.Context(), "replace failed line=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateLineQuantity(c *gin.Context) {
	id := c.Param("id")

	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	line, err := h.cart.UpdateQuantity(c.Request.Context(), id, req.Quantity)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "update quantity failed line=%s err=%v", id, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "cart service unavailable"})
		return
	}
	c.JSON(http.StatusOK, line)
}
