package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"github.com/piresc/kelasbank/internal/pkg/models"
	"github.com/piresc/kelasbank/internal/utils"
)

const (
	// APIKeyHeader carries the key for scheduler-triggered internal endpoints
	APIKeyHeader = "X-API-Key"
)

// APIKeyMiddleware validates the API key on /internal routes. Periodic jobs
// (tax collection, allowance runs, reward and loan sweeps) are invoked by an
// external scheduler holding this key.
type APIKeyMiddleware struct {
	cfg *models.APIKeyConfig
}

// NewAPIKeyMiddleware creates a new API key middleware
func NewAPIKeyMiddleware(cfg *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{cfg: cfg}
}

// Handler returns the echo middleware function
func (m *APIKeyMiddleware) Handler() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			if m.cfg.Scheduler == "" ||
				subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.Scheduler)) != 1 {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}

			return next(c)
		}
	}
}
