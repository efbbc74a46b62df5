package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/kelasbank/internal/pkg/middleware"
	"github.com/piresc/kelasbank/internal/pkg/models"
	natspkg "github.com/piresc/kelasbank/internal/pkg/nats"
	"github.com/piresc/kelasbank/services/reward"
	httpHandler "github.com/piresc/kelasbank/services/reward/handler/http"
)

// Handler combines the HTTP and NATS handlers for the reward service
type Handler struct {
	rewardHTTP *httpHandler.RewardHandler
	rewardUC   reward.RewardUC
	natsClient *natspkg.Client
	cfg        *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	rewardUC reward.RewardUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		rewardHTTP: httpHandler.NewRewardHandler(rewardUC),
		rewardUC:   rewardUC,
		natsClient: natsClient,
		cfg:        cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKey *middleware.APIKeyMiddleware) {
	// Authenticated classroom routes
	api := e.Group("/api", middleware.JWTAuthMiddleware(h.cfg.JWT))

	quizzes := api.Group("/quizzes")
	quizzes.GET("/today", h.rewardHTTP.GetTodayQuiz)
	quizzes.GET("/:quizID", h.rewardHTTP.GetQuiz)
	quizzes.POST("/:quizID/submit", h.rewardHTTP.SubmitQuiz)
	quizzes.GET("/:quizID/attempts", h.rewardHTTP.ListAttempts, middleware.RequireTeacherRole())

	// Internal routes for the scheduler (API key required)
	internal := e.Group("/internal", apiKey.Handler())
	internal.POST("/tenants/:tenantID/rewards/sweep-unpaid", h.rewardHTTP.SweepUnpaid)
}
