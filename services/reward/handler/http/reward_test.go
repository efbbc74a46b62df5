package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/piresc/kelasbank/internal/pkg/apperr"
	"github.com/piresc/kelasbank/internal/pkg/models"
	"github.com/piresc/kelasbank/services/reward/mocks"
)

func newAuthedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, tenantID uuid.UUID) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", uuid.New())
	c.Set("tenant_id", tenantID)
	c.Set("user_role", "student")
	return c
}

func TestSubmitQuiz_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRewardUC(ctrl)
	handler := NewRewardHandler(mockUC)

	tenantID := uuid.New()
	quizID := uuid.New()
	studentID := uuid.New()

	mockUC.EXPECT().
		SubmitQuiz(gomock.Any(), models.SubmitQuizCmd{
			TenantID:  tenantID,
			QuizID:    quizID,
			StudentID: studentID,
			Answers:   []string{"4", "Jakarta"},
		}).
		Return(&models.SubmitResult{CorrectCount: 2, Reward: 1400, Paid: true}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"student_id": studentID,
		"answers":    []string{"4", "Jakarta"},
	})
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, tenantID)
	c.SetParamNames("quizID")
	c.SetParamValues(quizID.String())

	err := handler.SubmitQuiz(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reward":1400`)
}

func TestSubmitQuiz_DuplicateMapsToConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRewardUC(ctrl)
	handler := NewRewardHandler(mockUC)

	tenantID := uuid.New()
	quizID := uuid.New()

	mockUC.EXPECT().
		SubmitQuiz(gomock.Any(), gomock.Any()).
		Return(nil, apperr.Conflict("student already submitted quiz"))

	body, _ := json.Marshal(map[string]interface{}{
		"student_id": uuid.New(),
		"answers":    []string{"4"},
	})
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, tenantID)
	c.SetParamNames("quizID")
	c.SetParamValues(quizID.String())

	err := handler.SubmitQuiz(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSubmitQuiz_InvalidQuizID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRewardUC(ctrl)
	handler := NewRewardHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, uuid.New())
	c.SetParamNames("quizID")
	c.SetParamValues("not-a-uuid")

	err := handler.SubmitQuiz(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitQuiz_MissingPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRewardUC(ctrl)
	handler := NewRewardHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.SubmitQuiz(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetQuiz_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRewardUC(ctrl)
	handler := NewRewardHandler(mockUC)

	tenantID := uuid.New()
	quizID := uuid.New()

	mockUC.EXPECT().
		GetQuiz(gomock.Any(), tenantID, quizID).
		Return(nil, apperr.NotFound("quiz %s not found", quizID))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, tenantID)
	c.SetParamNames("quizID")
	c.SetParamValues(quizID.String())

	err := handler.GetQuiz(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSweepUnpaid_ReportsTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRewardUC(ctrl)
	handler := NewRewardHandler(mockUC)

	tenantID := uuid.New()

	mockUC.EXPECT().
		SweepUnpaid(gomock.Any(), tenantID).
		Return(&models.SweepResult{PaidCount: 3, TotalPaid: 6300}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("tenantID")
	c.SetParamValues(tenantID.String())

	err := handler.SweepUnpaid(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"paid_count":3`)
}
