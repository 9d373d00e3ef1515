package auth

import (
	"context"

	"github.com/freshcart/freshcart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/freshcart/freshcart/services/auth AuthUC

// AuthUC represents the auth usecase interface
type AuthUC interface {
	// handle OTP delivery and verification
	SendCode(ctx context.Context, req *models.SendCodeRequest) (*models.SendCodeResponse, error)
	CheckCode(ctx context.Context, req *models.CheckCodeRequest) (*models.CheckCodeResponse, error)

	// resolve or provision user records
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.CreateUserResponse, error)

	// CreateGuest provisions a guest-flagged customer so checkout works
	// without OTP login. The session it issues is a regular JWT.
	CreateGuest(ctx context.Context) (*models.CreateUserResponse, error)
}
