package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/kelasbank/internal/pkg/middleware"
	"github.com/piresc/kelasbank/internal/pkg/models"
	"github.com/piresc/kelasbank/services/loan"
	httpHandler "github.com/piresc/kelasbank/services/loan/handler/http"
)

// Handler combines all handlers for the loan service
type Handler struct {
	loanHTTP *httpHandler.LoanHandler
	cfg      *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	loanUC loan.LoanUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		loanHTTP: httpHandler.NewLoanHandler(loanUC),
		cfg:      cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKey *middleware.APIKeyMiddleware) {
	// Authenticated classroom routes
	api := e.Group("/api", middleware.JWTAuthMiddleware(h.cfg.JWT))

	loans := api.Group("/loans")
	loans.POST("", h.loanHTTP.Originate)
	loans.GET("", h.loanHTTP.ListLoans)
	loans.GET("/:loanID", h.loanHTTP.GetLoan)
	loans.GET("/:loanID/payments", h.loanHTTP.ListPayments)
	loans.POST("/:loanID/repay", h.loanHTTP.Repay)

	// Internal routes for the scheduler (API key required)
	internal := e.Group("/internal", apiKey.Handler())
	internal.POST("/tenants/:tenantID/loans/sweep-overdue", h.loanHTTP.SweepOverdue)
}
