// Package flow drives a phone-OTP login as an explicit state machine:
// PhoneEntry -> CodeSent -> (ProfileRequired | Resolved), with Resolved
// terminal. Each flow is an independent instance; provider and storage
// failures surface as errors without advancing state, so the caller can
// always retry or back out.
package flow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/internal/utils"
	"github.com/freshcart/freshcart/services/auth"
	"github.com/google/uuid"
)

// State enumerates the login flow states
type State string

const (
	StatePhoneEntry      State = "phone_entry"
	StateCodeSent        State = "code_sent"
	StateProfileRequired State = "profile_required"
	StateResolved        State = "resolved"
)

// ErrInvalidTransition means the requested transition is not legal from the
// flow's current state.
var ErrInvalidTransition = errors.New("transition not allowed from current state")

// CooldownError means a resend was attempted before the cooldown elapsed.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("resend available in %s", e.Remaining.Round(time.Second))
}

// Flow holds one login attempt's state. Single-caller by contract; the
// store serializes access across requests.
type Flow struct {
	ID         uuid.UUID           `json:"id"`
	State      State               `json:"state"`
	Phone      string              `json:"phone,omitempty"`
	RoleHint   string              `json:"role,omitempty"`
	Channel    string              `json:"channel,omitempty"`
	ServiceSID string              `json:"service_sid,omitempty"`
	LastSentAt time.Time           `json:"last_sent_at,omitempty"`
	Session    *models.AuthSession `json:"session,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

// Machine applies transitions to flows through the auth usecase.
type Machine struct {
	uc       auth.AuthUC
	cooldown time.Duration
	now      func() time.Time
}

// NewMachine creates a login state machine
func NewMachine(uc auth.AuthUC, cfg *models.Config) *Machine {
	cooldown := time.Duration(cfg.Auth.ResendCooldownSeconds) * time.Second
	if cooldown <= 0 {
		cooldown = 60 * time.Second
	}

	return &Machine{
		uc:       uc,
		cooldown: cooldown,
		now:      time.Now,
	}
}

// Open starts a fresh flow at PhoneEntry
func (m *Machine) Open() *Flow {
	return &Flow{
		ID:        uuid.New(),
		State:     StatePhoneEntry,
		CreatedAt: m.now(),
	}
}

// SubmitPhone moves PhoneEntry -> CodeSent by requesting an OTP. An invalid
// phone number is rejected before any provider call.
func (m *Machine) SubmitPhone(ctx context.Context, f *Flow, phone, role string) error {
	if f.State != StatePhoneEntry {
		return ErrInvalidTransition
	}

	isValid, formattedPhone, err := utils.ValidatePhone(phone)
	if err != nil || !isValid {
		return auth.ErrInvalidPhone
	}
	if role == "" {
		role = models.RoleCustomer
	}

	resp, err := m.uc.SendCode(ctx, &models.SendCodeRequest{Phone: formattedPhone, Role: role})
	if err != nil {
		return err
	}

	f.Phone = formattedPhone
	f.RoleHint = role
	f.Channel = resp.Channel
	f.ServiceSID = resp.ServiceSID
	f.LastSentAt = m.now()
	f.State = StateCodeSent

	return nil
}

// SubmitCode verifies the entered OTP and resolves the account. Role
// mismatches and rejected codes leave the flow in CodeSent.
func (m *Machine) SubmitCode(ctx context.Context, f *Flow, code string) error {
	if f.State != StateCodeSent {
		return ErrInvalidTransition
	}

	resp, err := m.uc.CheckCode(ctx, &models.CheckCodeRequest{
		Phone:      f.Phone,
		Code:       code,
		ServiceSID: f.ServiceSID,
		Role:       f.RoleHint,
	})
	if err != nil {
		return err
	}

	if resp.ProfileRequired {
		f.State = StateProfileRequired
		return nil
	}

	f.Session = resp.Session
	f.State = StateResolved
	return nil
}

// Resend re-requests an OTP from CodeSent, gated by the cooldown.
func (m *Machine) Resend(ctx context.Context, f *Flow) error {
	if f.State != StateCodeSent {
		return ErrInvalidTransition
	}

	if remaining := m.cooldown - m.now().Sub(f.LastSentAt); remaining > 0 {
		return &CooldownError{Remaining: remaining}
	}

	resp, err := m.uc.SendCode(ctx, &models.SendCodeRequest{Phone: f.Phone, Role: f.RoleHint})
	if err != nil {
		return err
	}

	f.Channel = resp.Channel
	f.ServiceSID = resp.ServiceSID
	f.LastSentAt = m.now()

	return nil
}

// SubmitProfile moves ProfileRequired -> Resolved by provisioning the
// verified phone number as a customer.
func (m *Machine) SubmitProfile(ctx context.Context, f *Flow, name, email string) error {
	if f.State != StateProfileRequired {
		return ErrInvalidTransition
	}

	resp, err := m.uc.CreateUser(ctx, &models.CreateUserRequest{
		Phone: f.Phone,
		Name:  name,
		Email: email,
		Role:  models.RoleCustomer,
	})
	if err != nil {
		return err
	}

	f.Session = resp.Session
	f.State = StateResolved
	return nil
}

// Cancel resets the flow to PhoneEntry, discarding everything entered so
// far. Resolved flows cannot be reopened.
func (m *Machine) Cancel(f *Flow) error {
	if f.State == StateResolved {
		return ErrInvalidTransition
	}

	f.Phone = ""
	f.RoleHint = ""
	f.Channel = ""
	f.ServiceSID = ""
	f.LastSentAt = time.Time{}
	f.Session = nil
	f.State = StatePhoneEntry

	return nil
}

// ResendAvailableIn reports how long until a resend is allowed; zero when
// available now.
func (m *Machine) ResendAvailableIn(f *Flow) time.Duration {
	if f.State != StateCodeSent {
		return 0
	}
	remaining := m.cooldown - m.now().Sub(f.LastSentAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}
