package handler

import (
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/services/auth/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the auth HTTP handlers
type Handler struct {
	authHandler  *http.AuthHandler
	loginHandler *http.LoginHandler
	cfg          *models.Config
}

// NewHandler creates and initializes all auth handlers
func NewHandler(
	authHandler *http.AuthHandler,
	loginHandler *http.LoginHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:  authHandler,
		loginHandler: loginHandler,
		cfg:          cfg,
	}
}

// RegisterRoutes registers the auth routes. sendLimiter gates the endpoints
// that trigger real-world OTP delivery; pass nil to leave them ungated.
func (h *Handler) RegisterRoutes(e *echo.Echo, sendLimiter echo.MiddlewareFunc) {
	authGroup := e.Group("/auth")

	// stateless endpoints
	if sendLimiter != nil {
		authGroup.POST("/otp/send", h.authHandler.SendCode, sendLimiter)
	} else {
		authGroup.POST("/otp/send", h.authHandler.SendCode)
	}
	authGroup.POST("/otp/check", h.authHandler.CheckCode)
	authGroup.POST("/users", h.authHandler.CreateUser)
	authGroup.POST("/guest", h.authHandler.CreateGuest)

	// server-held login flows
	loginGroup := authGroup.Group("/login")
	loginGroup.POST("", h.loginHandler.OpenFlow)
	if sendLimiter != nil {
		loginGroup.POST("/:id/phone", h.loginHandler.SubmitPhone, sendLimiter)
		loginGroup.POST("/:id/resend", h.loginHandler.Resend, sendLimiter)
	} else {
		loginGroup.POST("/:id/phone", h.loginHandler.SubmitPhone)
		loginGroup.POST("/:id/resend", h.loginHandler.Resend)
	}
	loginGroup.POST("/:id/code", h.loginHandler.SubmitCode)
	loginGroup.POST("/:id/profile", h.loginHandler.SubmitProfile)
	loginGroup.POST("/:id/cancel", h.loginHandler.Reset)
	loginGroup.DELETE("/:id", h.loginHandler.CancelFlow)
}
