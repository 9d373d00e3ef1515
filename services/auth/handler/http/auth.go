package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/freshcart/freshcart/internal/pkg/logger"
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/internal/utils"
	"github.com/freshcart/freshcart/services/auth"
	"github.com/freshcart/freshcart/services/auth/flow"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles the stateless OTP and provisioning endpoints
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// SendCode handles OTP delivery requests
func (h *AuthHandler) SendCode(c echo.Context) error {
	var req models.SendCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.SendCode(c.Request().Context(), &req)
	if err != nil {
		return respondAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, resp)
}

// CheckCode handles OTP verification requests
func (h *AuthHandler) CheckCode(c echo.Context) error {
	var req models.CheckCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Code == "" {
		return utils.BadRequestResponse(c, "Verification code is required")
	}

	resp, err := h.authUC.CheckCode(c.Request().Context(), &req)
	if err != nil {
		return respondAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, resp)
}

// CreateUser handles user resolution and provisioning requests
func (h *AuthHandler) CreateUser(c echo.Context) error {
	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.CreateUser(c.Request().Context(), &req)
	if err != nil {
		return respondAuthError(c, err)
	}

	status := http.StatusOK
	if !resp.Existing && resp.User != nil {
		status = http.StatusCreated
	}

	return utils.SuccessResponse(c, status, resp)
}

// CreateGuest handles guest provisioning so checkout works without OTP
func (h *AuthHandler) CreateGuest(c echo.Context) error {
	resp, err := h.authUC.CreateGuest(c.Request().Context())
	if err != nil {
		return respondAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, resp)
}

// respondAuthError maps usecase and flow errors onto the fixed error
// envelope with the right HTTP status.
func respondAuthError(c echo.Context, err error) error {
	var verr *auth.VerifyError
	if errors.As(err, &verr) {
		return utils.ErrorResponse(c, verr.Status, verr.Message, verr.Details)
	}

	var cerr *flow.CooldownError
	if errors.As(err, &cerr) {
		c.Response().Header().Set("Retry-After", strconv.Itoa(int(cerr.Remaining.Seconds())+1))
		return utils.ErrorResponse(c, http.StatusTooManyRequests, cerr.Error(), "")
	}

	switch {
	case errors.Is(err, auth.ErrInvalidPhone),
		errors.Is(err, auth.ErrInvalidRole),
		errors.Is(err, auth.ErrNameRequired):
		return utils.BadRequestResponse(c, err.Error())

	case errors.Is(err, auth.ErrCodeNotApproved):
		return utils.UnauthorizedResponse(c, "Invalid verification code")

	case errors.Is(err, auth.ErrRoleMismatch),
		errors.Is(err, auth.ErrRoleNotProvisioned),
		errors.Is(err, auth.ErrProvisioningNotAllowed):
		return utils.ForbiddenResponse(c, err.Error())

	case errors.Is(err, auth.ErrPhoneTaken):
		return utils.ErrorResponse(c, http.StatusConflict, err.Error(), "")

	case errors.Is(err, flow.ErrInvalidTransition):
		return utils.ErrorResponse(c, http.StatusConflict, err.Error(), "")

	default:
		logger.Error("Unhandled auth error", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Internal server error")
	}
}
