package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/freshcart/freshcart/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack trace
// and responds with a generic 500 envelope
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stackTrace := string(debug.Stack())

	userID := "anonymous"
	if uid := c.Get("user_id"); uid != nil {
		userID = fmt.Sprintf("%v", uid)
	}

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = c.Request().Header.Get(echo.HeaderXRequestID)
	}

	zapLogger.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", stackTrace),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("user_id", userID),
		logger.String("request_id", requestID),
	)

	if !c.Response().Committed {
		response := map[string]interface{}{
			"error":   "Internal Server Error",
			"message": "An unexpected error occurred while processing your request",
		}
		if requestID != "" {
			response["request_id"] = requestID
		}

		if err := c.JSON(http.StatusInternalServerError, response); err != nil {
			c.String(http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
