package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/kelasbank/internal/pkg/middleware"
	"github.com/piresc/kelasbank/internal/pkg/models"
	"github.com/piresc/kelasbank/services/market"
	httpHandler "github.com/piresc/kelasbank/services/market/handler/http"
)

// Handler combines all handlers for the market service
type Handler struct {
	marketHTTP *httpHandler.MarketHandler
	cfg        *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	marketUC market.MarketUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		marketHTTP: httpHandler.NewMarketHandler(marketUC),
		cfg:        cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKey *middleware.APIKeyMiddleware) {
	api := e.Group("/api", middleware.JWTAuthMiddleware(h.cfg.JWT))

	seats := api.Group("/seats")
	seats.GET("", h.marketHTTP.ListSeats)
	seats.GET("/price", h.marketHTTP.GetPrice)
	seats.POST("/recompute-price", h.marketHTTP.RecomputePrice, middleware.RequireTeacherRole())
	seats.GET("/:seatNumber", h.marketHTTP.GetSeat)
	seats.POST("/:seatNumber/buy", h.marketHTTP.BuySeat)
	seats.POST("/:seatNumber/sell", h.marketHTTP.SellSeat)
	seats.GET("/:seatNumber/transactions", h.marketHTTP.ListSeatTransactions)

	internal := e.Group("/internal", apiKey.Handler())
	internal.POST("/tenants/:tenantID/seats/init", h.marketHTTP.InitializeSeats)
}
