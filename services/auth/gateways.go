package auth

import (
	"context"

	"github.com/freshcart/freshcart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/freshcart/freshcart/services/auth VerifyGW

// VerifyGW defines the verification provider gateway interface
type VerifyGW interface {
	// StartVerification asks the provider to deliver an OTP over SMS, with a
	// single voice-call fallback when SMS is unavailable for the destination.
	StartVerification(ctx context.Context, phone string) (*models.SendCodeResponse, error)

	// CheckVerification submits a user-entered code against the challenge
	// identified by serviceSID and reports whether it was approved.
	CheckVerification(ctx context.Context, phone, code, serviceSID string) (bool, error)
}
