package usecase

import (
	"context"
	"errors"
	"fmt"

	jwtpkg "github.com/freshcart/freshcart/internal/pkg/jwt"
	"github.com/freshcart/freshcart/internal/pkg/logger"
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/internal/utils"
	"github.com/freshcart/freshcart/services/auth"
	"github.com/google/uuid"
)

// SendCode validates the phone number and asks the provider to deliver an
// OTP. The role hint is validated here but never sent to the provider.
func (u *AuthUC) SendCode(ctx context.Context, req *models.SendCodeRequest) (*models.SendCodeResponse, error) {
	isValid, formattedPhone, err := utils.ValidatePhone(req.Phone)
	if err != nil || !isValid {
		return nil, auth.ErrInvalidPhone
	}

	if _, err := resolveRoleHint(req.Role); err != nil {
		return nil, err
	}

	resp, err := u.verifyGW.StartVerification(ctx, formattedPhone)
	if err != nil {
		return nil, err
	}

	logger.Info("Verification code sent",
		logger.String("phone", formattedPhone),
		logger.String("channel", resp.Channel))

	return resp, nil
}

// CheckCode verifies a submitted OTP and resolves the phone number to an
// account, a profile-required outcome, or a role failure.
func (u *AuthUC) CheckCode(ctx context.Context, req *models.CheckCodeRequest) (*models.CheckCodeResponse, error) {
	isValid, formattedPhone, err := utils.ValidatePhone(req.Phone)
	if err != nil || !isValid {
		return nil, auth.ErrInvalidPhone
	}
	if req.Code == "" {
		return nil, auth.ErrCodeNotApproved
	}

	roleHint, err := resolveRoleHint(req.Role)
	if err != nil {
		return nil, err
	}

	approved, err := u.verifyGW.CheckVerification(ctx, formattedPhone, req.Code, req.ServiceSID)
	if err != nil {
		return nil, err
	}
	if !approved {
		return nil, auth.ErrCodeNotApproved
	}

	user, err := u.userRepo.GetUserByPhone(ctx, formattedPhone)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			if roleHint != models.RoleCustomer {
				// elevated roles are provisioned out-of-band only
				return nil, auth.ErrRoleNotProvisioned
			}
			return &models.CheckCodeResponse{ProfileRequired: true}, nil
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	// an elevated-role attempt must match the stored role exactly; a
	// customer attempt logs the user in under whatever role they hold
	if roleHint != models.RoleCustomer && user.Role != roleHint {
		logger.Warn("Role mismatch on login attempt",
			logger.String("phone", formattedPhone),
			logger.String("attempted_role", roleHint),
			logger.String("stored_role", user.Role))
		return nil, auth.ErrRoleMismatch
	}

	session, err := u.issueSession(user)
	if err != nil {
		return nil, err
	}

	return &models.CheckCodeResponse{Session: session}, nil
}

// CreateUser resolves an existing account or provisions a new customer one.
// A constraint race on insert is recovered by re-resolving.
func (u *AuthUC) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.CreateUserResponse, error) {
	isValid, formattedPhone, err := utils.ValidatePhone(req.Phone)
	if err != nil || !isValid {
		return nil, auth.ErrInvalidPhone
	}

	role, err := resolveRoleHint(req.Role)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetUserByPhone(ctx, formattedPhone)
	if err == nil {
		return u.existingUserResponse(user)
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	if req.CheckOnly {
		return &models.CreateUserResponse{Existing: false}, nil
	}

	if role != models.RoleCustomer {
		return nil, auth.ErrProvisioningNotAllowed
	}
	if req.Name == "" {
		return nil, auth.ErrNameRequired
	}

	newUser := &models.User{
		Phone: formattedPhone,
		Name:  req.Name,
		Email: req.Email,
		Role:  models.RoleCustomer,
	}

	if err := u.userRepo.CreateUser(ctx, newUser); err != nil {
		if errors.Is(err, auth.ErrPhoneTaken) {
			// lost the race: the record exists now, resolve to it
			existing, resolveErr := u.userRepo.GetUserByPhone(ctx, formattedPhone)
			if resolveErr != nil {
				return nil, fmt.Errorf("failed to re-resolve user after constraint race: %w", resolveErr)
			}
			return u.existingUserResponse(existing)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("User provisioned",
		logger.String("user_id", newUser.ID.String()),
		logger.String("phone", formattedPhone))

	session, err := u.issueSession(newUser)
	if err != nil {
		return nil, err
	}

	return &models.CreateUserResponse{
		Existing: false,
		User:     newUser,
		Session:  session,
	}, nil
}

// CreateGuest provisions a guest-flagged customer on the privileged handle
// and issues a regular session, so checkout works without OTP login. The
// synthetic phone keeps the record out of the E.164 space; a later OTP login
// with a real number creates a separate account.
func (u *AuthUC) CreateGuest(ctx context.Context) (*models.CreateUserResponse, error) {
	guest := &models.User{
		Phone: "guest:" + uuid.NewString(),
		Role:  models.RoleCustomer,
		Guest: true,
	}

	if err := u.userRepo.CreateUser(ctx, guest); err != nil {
		return nil, fmt.Errorf("failed to create guest user: %w", err)
	}

	logger.Info("Guest user provisioned",
		logger.String("user_id", guest.ID.String()))

	session, err := u.issueSession(guest)
	if err != nil {
		return nil, err
	}

	return &models.CreateUserResponse{
		Existing: false,
		User:     guest,
		Session:  session,
	}, nil
}

func (u *AuthUC) existingUserResponse(user *models.User) (*models.CreateUserResponse, error) {
	session, err := u.issueSession(user)
	if err != nil {
		return nil, err
	}
	return &models.CreateUserResponse{
		Existing: true,
		User:     user,
		Session:  session,
	}, nil
}

func (u *AuthUC) issueSession(user *models.User) (*models.AuthSession, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Phone, user.Role, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthSession{
		Token:     token,
		UserID:    user.ID.String(),
		Phone:     user.Phone,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}

func resolveRoleHint(role string) (string, error) {
	if role == "" {
		return models.RoleCustomer, nil
	}
	if !models.ValidRole(role) {
		return "", auth.ErrInvalidRole
	}
	return role, nil
}
