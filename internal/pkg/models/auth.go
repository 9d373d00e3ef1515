package models

// SendCodeRequest asks the verification provider to deliver an OTP.
type SendCodeRequest struct {
	Phone string `json:"phone" validate:"required"`
	Role  string `json:"role"`
}

// SendCodeResponse reports the channel actually used and the provider
// service reference to pass back on the check call.
type SendCodeResponse struct {
	Channel    string `json:"channel"`
	ServiceSID string `json:"service_sid"`
}

// CheckCodeRequest submits a user-entered OTP for verification.
type CheckCodeRequest struct {
	Phone      string `json:"phone" validate:"required"`
	Code       string `json:"code" validate:"required"`
	ServiceSID string `json:"service_sid"`
	Role       string `json:"role"`
}

// CheckCodeResponse is the outcome of a successful code check. Exactly one
// of Session or ProfileRequired is meaningful: either the phone resolved to
// an account and a session was issued, or the caller must complete a profile
// before one can be.
type CheckCodeResponse struct {
	ProfileRequired bool         `json:"profile_required"`
	Session         *AuthSession `json:"session,omitempty"`
}

// CreateUserRequest provisions (or, with CheckOnly, probes for) an account.
type CreateUserRequest struct {
	Phone     string `json:"phone" validate:"required"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CheckOnly bool   `json:"check_only"`
}

// CreateUserResponse reports the resolved or created account. Session is
// populated unless the request was check-only and no account exists.
type CreateUserResponse struct {
	Existing bool         `json:"existing"`
	User     *User        `json:"user,omitempty"`
	Session  *AuthSession `json:"session,omitempty"`
}

// AuthSession is issued once a login flow resolves. The token is a signed
// JWT; the display fields mirror what the storefront shows after login.
type AuthSession struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Phone     string `json:"phone"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}
