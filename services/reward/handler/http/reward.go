package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/kelasbank/internal/pkg/middleware"
	"github.com/piresc/kelasbank/internal/pkg/models"
	nrpkg "github.com/piresc/kelasbank/internal/pkg/newrelic"
	"github.com/piresc/kelasbank/internal/utils"
	"github.com/piresc/kelasbank/services/reward"
)

// RewardHandler handles HTTP requests for daily quizzes and rewards
type RewardHandler struct {
	rewardUC reward.RewardUC
}

// NewRewardHandler creates a new reward HTTP handler
func NewRewardHandler(rewardUC reward.RewardUC) *RewardHandler {
	return &RewardHandler{
		rewardUC: rewardUC,
	}
}

// GetTodayQuiz returns today's quiz with answers stripped
func (h *RewardHandler) GetTodayQuiz(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reward.GetTodayQuiz")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	quiz, err := h.rewardUC.GetQuizForDate(c.Request().Context(), principal.TenantID, time.Now())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Quiz retrieved successfully", quiz)
}

// GetQuiz returns one quiz with answers stripped
func (h *RewardHandler) GetQuiz(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reward.GetQuiz")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	quizID, err := uuid.Parse(c.Param("quizID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid quiz ID")
	}

	quiz, err := h.rewardUC.GetQuiz(c.Request().Context(), principal.TenantID, quizID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Quiz retrieved successfully", quiz)
}

// SubmitQuiz grades a submission and pays the reward
func (h *RewardHandler) SubmitQuiz(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reward.SubmitQuiz")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	quizID, err := uuid.Parse(c.Param("quizID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid quiz ID")
	}

	var cmd models.SubmitQuizCmd
	if err := c.Bind(&cmd); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	cmd.TenantID = principal.TenantID
	cmd.QuizID = quizID

	result, err := h.rewardUC.SubmitQuiz(c.Request().Context(), cmd)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Quiz submitted successfully", result)
}

// ListAttempts returns every attempt for a quiz
func (h *RewardHandler) ListAttempts(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reward.ListAttempts")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication context")
	}

	quizID, err := uuid.Parse(c.Param("quizID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid quiz ID")
	}

	attempts, err := h.rewardUC.ListAttempts(c.Request().Context(), principal.TenantID, quizID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Attempts retrieved successfully", attempts)
}

// SweepUnpaid retries unpaid reward payments, called by the scheduler
func (h *RewardHandler) SweepUnpaid(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reward.SweepUnpaid")

	tenantID, err := uuid.Parse(c.Param("tenantID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid tenant ID")
	}

	result, err := h.rewardUC.SweepUnpaid(c.Request().Context(), tenantID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Unpaid reward sweep completed", result)
}
