package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound means no account exists for the phone number after
	// both the restricted and privileged lookups.
	ErrUserNotFound = errors.New("user not found")

	// ErrPhoneTaken means provisioning raced with another create for the
	// same phone number. Callers re-resolve instead of failing.
	ErrPhoneTaken = errors.New("phone number already registered")

	// ErrRoleMismatch means the account exists under a different role than
	// the elevated role the caller attempted to authenticate as.
	ErrRoleMismatch = errors.New("account exists with a different role")

	// ErrRoleNotProvisioned means an elevated-role attempt found no account.
	// Elevated roles are provisioned out-of-band, never self-registered.
	ErrRoleNotProvisioned = errors.New("no account provisioned for this role")

	// ErrProvisioningNotAllowed means self-registration was attempted with
	// an elevated role.
	ErrProvisioningNotAllowed = errors.New("self-registration is only allowed for customers")

	// ErrCodeNotApproved means the provider rejected the submitted OTP.
	ErrCodeNotApproved = errors.New("verification code not approved")

	// validation failures, rejected before any network call
	ErrInvalidPhone = errors.New("invalid phone number format")
	ErrInvalidRole  = errors.New("invalid role")
	ErrNameRequired = errors.New("name is required")
)

// VerifyError is a typed provider failure carrying the provider error code,
// a user-facing message and the HTTP status handlers should respond with.
type VerifyError struct {
	ProviderCode int
	Message      string
	Details      string
	Status       int
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("verify provider error %d: %s", e.ProviderCode, e.Message)
}
