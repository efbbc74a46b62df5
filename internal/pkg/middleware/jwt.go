package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/kelasbank/internal/pkg/jwt"
	"github.com/piresc/kelasbank/internal/pkg/models"
	"github.com/piresc/kelasbank/internal/utils"
)

// Principal is the authenticated caller extracted from a JWT
type Principal struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	Role     string
}

// JWTAuthMiddleware creates a middleware for JWT authentication.
// Every classroom operation is scoped to the tenant carried in the token.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			tenantIDStr, ok := (*claims)["tenant_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing tenant_id claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			tenantID, err := uuid.Parse(fmt.Sprintf("%v", tenantIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: tenant_id is not a valid UUID")
			}

			c.Set("user_id", userID)
			c.Set("tenant_id", tenantID)
			c.Set("user_role", fmt.Sprintf("%v", role))

			return next(c)
		}
	}
}

// RequireTeacherRole rejects callers whose token does not carry the teacher role
func RequireTeacherRole() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if role, _ := c.Get("user_role").(string); role != "teacher" {
				return utils.ForbiddenResponse(c, "Teacher role required")
			}
			return next(c)
		}
	}
}

// PrincipalFromContext extracts the authenticated principal set by JWTAuthMiddleware
func PrincipalFromContext(c echo.Context) (Principal, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return Principal{}, false
	}
	tenantID, ok := c.Get("tenant_id").(uuid.UUID)
	if !ok {
		return Principal{}, false
	}
	role, _ := c.Get("user_role").(string)

	return Principal{UserID: userID, TenantID: tenantID, Role: role}, true
}
