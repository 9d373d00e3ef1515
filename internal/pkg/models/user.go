package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles form a closed set. Elevated roles (admin, driver) are only ever
// assigned out-of-band; the login flow never upgrades or downgrades a role.
const (
	RoleCustomer = "customer"
	RoleDriver   = "driver"
	RoleAdmin    = "admin"
)

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleDriver, RoleAdmin:
		return true
	}
	return false
}

// User represents a storefront account. Phone is the identity: one phone
// number maps to at most one record. Guest accounts carry a synthetic phone
// outside the E.164 space, so they can never collide with a real login and
// never resolve through the OTP flow.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Phone     string    `json:"phone" db:"phone"`
	Name      string    `json:"name,omitempty" db:"name"`
	Email     string    `json:"email,omitempty" db:"email"`
	Role      string    `json:"role" db:"role"`
	Guest     bool      `json:"guest,omitempty" db:"is_guest"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
