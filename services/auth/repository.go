package auth

import (
	"context"

	"github.com/freshcart/freshcart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/freshcart/freshcart/services/auth UserRepo

// UserRepo defines the user repository interface
type UserRepo interface {
	// GetUserByPhone resolves a phone number to an existing account, falling
	// back to the privileged handle before concluding ErrUserNotFound.
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)

	// CreateUser provisions a new account over the privileged handle.
	// A unique-constraint race surfaces as ErrPhoneTaken.
	CreateUser(ctx context.Context, user *models.User) error
}
