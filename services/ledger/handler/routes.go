package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/kelasbank/internal/pkg/middleware"
	"github.com/piresc/kelasbank/internal/pkg/models"
	"github.com/piresc/kelasbank/services/ledger"
	httpHandler "github.com/piresc/kelasbank/services/ledger/handler/http"
)

// Handler combines all handlers for the ledger service
type Handler struct {
	ledgerHTTP *httpHandler.LedgerHandler
	cfg        *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	ledgerUC ledger.LedgerUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		ledgerHTTP: httpHandler.NewLedgerHandler(ledgerUC),
		cfg:        cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKey *middleware.APIKeyMiddleware) {
	// Authenticated classroom routes
	api := e.Group("/api", middleware.JWTAuthMiddleware(h.cfg.JWT))

	students := api.Group("/students")
	students.POST("", h.ledgerHTTP.CreateStudent, middleware.RequireTeacherRole())
	students.GET("", h.ledgerHTTP.ListStudents)
	students.GET("/:studentID", h.ledgerHTTP.GetStudent)
	students.DELETE("/:studentID", h.ledgerHTTP.DeleteStudent, middleware.RequireTeacherRole())
	students.POST("/:studentID/credit", h.ledgerHTTP.AdjustCredit, middleware.RequireTeacherRole())
	students.GET("/:studentID/transactions", h.ledgerHTTP.ListTransactions)

	api.POST("/transfers", h.ledgerHTTP.Transfer)
	api.POST("/transfers/multi", h.ledgerHTTP.MultiTransfer)
	api.POST("/tax/collect", h.ledgerHTTP.CollectTax, middleware.RequireTeacherRole())
	api.POST("/allowances/distribute", h.ledgerHTTP.DistributeAllowance, middleware.RequireTeacherRole())

	// Internal routes for the scheduler (API key required)
	internal := e.Group("/internal", apiKey.Handler())
	internal.POST("/tenants/:tenantID/bootstrap", h.ledgerHTTP.BootstrapTenant)
	internal.POST("/tenants/:tenantID/tax/collect", h.ledgerHTTP.CollectTaxInternal)
	internal.POST("/tenants/:tenantID/allowances/distribute", h.ledgerHTTP.DistributeAllowanceInternal)
}
