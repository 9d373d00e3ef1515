package http

import (
	"net/http"

	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/internal/utils"
	"github.com/freshcart/freshcart/services/auth/flow"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// LoginHandler exposes the login state machine over HTTP. Each flow is an
// independent server-held instance addressed by its ID.
type LoginHandler struct {
	machine *flow.Machine
	store   *flow.Store
}

// NewLoginHandler creates a new login flow handler
func NewLoginHandler(machine *flow.Machine, store *flow.Store) *LoginHandler {
	return &LoginHandler{
		machine: machine,
		store:   store,
	}
}

type submitPhoneRequest struct {
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type submitCodeRequest struct {
	Code string `json:"code"`
}

type submitProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// flowResponse is the snapshot returned after every flow operation
type flowResponse struct {
	ID              string              `json:"id"`
	State           flow.State          `json:"state"`
	Phone           string              `json:"phone,omitempty"`
	Channel         string              `json:"channel,omitempty"`
	ResendInSeconds int                 `json:"resend_in_seconds,omitempty"`
	Session         *models.AuthSession `json:"session,omitempty"`
}

func (h *LoginHandler) snapshot(f *flow.Flow) *flowResponse {
	return &flowResponse{
		ID:              f.ID.String(),
		State:           f.State,
		Phone:           f.Phone,
		Channel:         f.Channel,
		ResendInSeconds: int(h.machine.ResendAvailableIn(f).Seconds()),
		Session:         f.Session,
	}
}

// OpenFlow starts a new login flow at PhoneEntry
func (h *LoginHandler) OpenFlow(c echo.Context) error {
	f := h.machine.Open()
	h.store.Put(f)

	return utils.SuccessResponse(c, http.StatusCreated, h.snapshot(f))
}

// SubmitPhone drives PhoneEntry -> CodeSent
func (h *LoginHandler) SubmitPhone(c echo.Context) error {
	f, err := h.lookupFlow(c)
	if f == nil {
		return err
	}

	var req submitPhoneRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.machine.SubmitPhone(c.Request().Context(), f, req.Phone, req.Role); err != nil {
		return respondAuthError(c, err)
	}
	h.store.Put(f)

	return utils.SuccessResponse(c, http.StatusOK, h.snapshot(f))
}

// SubmitCode drives CodeSent -> ProfileRequired | Resolved
func (h *LoginHandler) SubmitCode(c echo.Context) error {
	f, err := h.lookupFlow(c)
	if f == nil {
		return err
	}

	var req submitCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Code == "" {
		return utils.BadRequestResponse(c, "Verification code is required")
	}

	if err := h.machine.SubmitCode(c.Request().Context(), f, req.Code); err != nil {
		return respondAuthError(c, err)
	}
	h.store.Put(f)

	return utils.SuccessResponse(c, http.StatusOK, h.snapshot(f))
}

// Resend re-requests an OTP, gated by the cooldown
func (h *LoginHandler) Resend(c echo.Context) error {
	f, err := h.lookupFlow(c)
	if f == nil {
		return err
	}

	if err := h.machine.Resend(c.Request().Context(), f); err != nil {
		return respondAuthError(c, err)
	}
	h.store.Put(f)

	return utils.SuccessResponse(c, http.StatusOK, h.snapshot(f))
}

// SubmitProfile drives ProfileRequired -> Resolved
func (h *LoginHandler) SubmitProfile(c echo.Context) error {
	f, err := h.lookupFlow(c)
	if f == nil {
		return err
	}

	var req submitProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.machine.SubmitProfile(c.Request().Context(), f, req.Name, req.Email); err != nil {
		return respondAuthError(c, err)
	}
	h.store.Put(f)

	return utils.SuccessResponse(c, http.StatusOK, h.snapshot(f))
}

// Reset backs the flow out to PhoneEntry, discarding everything entered
func (h *LoginHandler) Reset(c echo.Context) error {
	f, err := h.lookupFlow(c)
	if f == nil {
		return err
	}

	if err := h.machine.Cancel(f); err != nil {
		return respondAuthError(c, err)
	}
	h.store.Put(f)

	return utils.SuccessResponse(c, http.StatusOK, h.snapshot(f))
}

// CancelFlow discards the flow entirely
func (h *LoginHandler) CancelFlow(c echo.Context) error {
	flowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid flow ID")
	}

	h.store.Delete(flowID)
	return c.NoContent(http.StatusNoContent)
}

func (h *LoginHandler) lookupFlow(c echo.Context) (*flow.Flow, error) {
	flowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, utils.BadRequestResponse(c, "Invalid flow ID")
	}

	f, ok := h.store.Get(flowID)
	if !ok {
		return nil, utils.NotFoundResponse(c, "Login flow not found or expired")
	}

	return f, nil
}
