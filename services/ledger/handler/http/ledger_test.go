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
	"github.com/piresc/kelasbank/services/ledger/mocks"
)

func newAuthedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, tenantID uuid.UUID) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", uuid.New())
	c.Set("tenant_id", tenantID)
	c.Set("user_role", "teacher")
	return c
}

func TestTransfer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLedgerUC(ctrl)
	handler := NewLedgerHandler(mockUC)

	tenantID := uuid.New()
	fromID := uuid.New()
	toID := uuid.New()

	mockUC.EXPECT().
		Transfer(gomock.Any(), models.TransferCmd{
			TenantID: tenantID,
			From:     models.PartyRef{Kind: models.PartyStudent, ID: fromID, Account: models.AccountChecking},
			To:       models.PartyRef{Kind: models.PartyStudent, ID: toID, Account: models.AccountChecking},
			Amount:   5000,
			Note:     "lunch money",
		}).
		Return(&models.TransferResult{SourceBalance: 15000, DestBalance: 25000}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"from":   map[string]interface{}{"kind": "student", "id": fromID, "account": "checking"},
		"to":     map[string]interface{}{"kind": "student", "id": toID, "account": "checking"},
		"amount": 5000,
		"note":   "lunch money",
	})
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, tenantID)

	err := handler.Transfer(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"source_balance":15000`)
}

func TestTransfer_InsufficientFundsMaps422(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLedgerUC(ctrl)
	handler := NewLedgerHandler(mockUC)

	mockUC.EXPECT().
		Transfer(gomock.Any(), gomock.Any()).
		Return(nil, apperr.InsufficientFunds(5000, 1200))

	body, _ := json.Marshal(map[string]interface{}{
		"from":   map[string]interface{}{"kind": "student", "id": uuid.New(), "account": "checking"},
		"to":     map[string]interface{}{"kind": "student", "id": uuid.New(), "account": "checking"},
		"amount": 5000,
	})
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, uuid.New())

	err := handler.Transfer(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestTransfer_MissingPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLedgerUC(ctrl)
	handler := NewLedgerHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Transfer(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateStudent_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLedgerUC(ctrl)
	handler := NewLedgerHandler(mockUC)

	tenantID := uuid.New()
	studentID := uuid.New()

	mockUC.EXPECT().
		CreateStudent(gomock.Any(), gomock.Any()).
		Return(&models.Student{ID: studentID, TenantID: tenantID, Name: "Budi"}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"name":             "Budi",
		"weekly_allowance": 20000,
	})
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, tenantID)

	err := handler.CreateStudent(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), studentID.String())
}

func TestGetStudent_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLedgerUC(ctrl)
	handler := NewLedgerHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, uuid.New())
	c.SetParamNames("studentID")
	c.SetParamValues("not-a-uuid")

	err := handler.GetStudent(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
