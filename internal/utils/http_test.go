package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/kelasbank/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAppErrorResponse_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation is 400", apperr.Validation("bad amount"), http.StatusBadRequest},
		{"insufficient funds is 422", apperr.InsufficientFunds(5000, 1200), http.StatusUnprocessableEntity},
		{"payment below interest is 422", apperr.PaymentBelowInterest(750), http.StatusUnprocessableEntity},
		{"not found is 404", apperr.NotFound("student missing"), http.StatusNotFound},
		{"conflict is 409", apperr.Conflict("seat already owned"), http.StatusConflict},
		{"dependency failure is 500", apperr.DependencyFailure("no bank entity"), http.StatusInternalServerError},
		{"unknown error is 500", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()
			require.NoError(t, AppErrorResponse(c, tt.err))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAppErrorResponse_WrappedErrorStillMaps(t *testing.T) {
	c, rec := newTestContext()

	wrapped := fmt.Errorf("transfer failed: %w", apperr.InsufficientFunds(5000, 1200))
	require.NoError(t, AppErrorResponse(c, wrapped))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient funds")
}

func TestAppErrorResponse_UnknownErrorDoesNotLeakDetails(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, AppErrorResponse(c, errors.New("pq: relation accounts does not exist")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relation accounts")
	assert.Contains(t, rec.Body.String(), "Internal server error")
}
