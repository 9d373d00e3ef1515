package usecase

import (
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/services/auth"
)

type AuthUC struct {
	userRepo auth.UserRepo
	verifyGW auth.VerifyGW
	cfg      *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	userRepo auth.UserRepo,
	verifyGW auth.VerifyGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		userRepo: userRepo,
		verifyGW: verifyGW,
		cfg:      cfg,
	}
}
