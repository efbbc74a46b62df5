package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/kelasbank/internal/pkg/apperr"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// AppErrorResponse maps an application error to its HTTP status.
// Unknown errors are reported as 500 without leaking internals.
func AppErrorResponse(c echo.Context, err error) error {
	appErr, ok := apperr.As(err)
	if !ok {
		return InternalServerErrorResponse(c, "Internal server error")
	}

	switch appErr.Kind {
	case apperr.KindValidation:
		return ErrorResponseHandler(c, http.StatusBadRequest, appErr.Message)
	case apperr.KindInsufficientFunds, apperr.KindPaymentBelowInterest:
		return ErrorResponseHandler(c, http.StatusUnprocessableEntity, appErr.Message)
	case apperr.KindNotFound:
		return ErrorResponseHandler(c, http.StatusNotFound, appErr.Message)
	case apperr.KindConflict:
		return ErrorResponseHandler(c, http.StatusConflict, appErr.Message)
	case apperr.KindDependencyFailure:
		return ErrorResponseHandler(c, http.StatusInternalServerError, appErr.Message)
	default:
		return InternalServerErrorResponse(c, appErr.Message)
	}
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}
