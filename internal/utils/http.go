package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorEnvelope is the fixed JSON shape for every failed request: a
// user-facing error, optional operator-facing details, and the HTTP status
// echoed in the body.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}

// ErrorResponse sends an error envelope with the given status
func ErrorResponse(c echo.Context, statusCode int, errorMessage, details string) error {
	return c.JSON(statusCode, ErrorEnvelope{
		Error:   errorMessage,
		Details: details,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request envelope
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponse(c, http.StatusBadRequest, errorMessage, "")
}

// UnauthorizedResponse sends a 401 Unauthorized envelope
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponse(c, http.StatusUnauthorized, errorMessage, "")
}

// ForbiddenResponse sends a 403 Forbidden envelope
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponse(c, http.StatusForbidden, errorMessage, "")
}

// NotFoundResponse sends a 404 Not Found envelope
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponse(c, http.StatusNotFound, errorMessage, "")
}

// InternalServerErrorResponse sends a 500 Internal Server Error envelope
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponse(c, http.StatusInternalServerError, errorMessage, "")
}

// SuccessResponse sends a success payload as-is
func SuccessResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}
