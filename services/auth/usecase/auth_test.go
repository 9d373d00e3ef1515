package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/services/auth"
	"github.com/freshcart/freshcart/services/auth/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthUCTest(t *testing.T) (*AuthUC, *mocks.MockUserRepo, *mocks.MockVerifyGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mocks.NewMockUserRepo(ctrl)
	verifyGW := mocks.NewMockVerifyGW(ctrl)

	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "freshcart-test",
		},
	}

	return NewAuthUC(userRepo, verifyGW, cfg), userRepo, verifyGW
}

func TestSendCode(t *testing.T) {
	t.Run("Valid phone sends exactly one request", func(t *testing.T) {
		uc, _, verifyGW := setupAuthUCTest(t)

		verifyGW.EXPECT().
			StartVerification(gomock.Any(), "+15551234567").
			Return(&models.SendCodeResponse{Channel: "sms", ServiceSID: "VAxxxx"}, nil).
			Times(1)

		resp, err := uc.SendCode(context.Background(), &models.SendCodeRequest{
			Phone: "+1 555 123-4567",
			Role:  "customer",
		})

		require.NoError(t, err)
		assert.Equal(t, "sms", resp.Channel)
		assert.Equal(t, "VAxxxx", resp.ServiceSID)
	})

	t.Run("Invalid phone rejected before any network call", func(t *testing.T) {
		uc, _, _ := setupAuthUCTest(t)

		_, err := uc.SendCode(context.Background(), &models.SendCodeRequest{Phone: "not-a-phone"})

		assert.ErrorIs(t, err, auth.ErrInvalidPhone)
	})

	t.Run("Unknown role rejected", func(t *testing.T) {
		uc, _, _ := setupAuthUCTest(t)

		_, err := uc.SendCode(context.Background(), &models.SendCodeRequest{
			Phone: "+15551234567",
			Role:  "superuser",
		})

		assert.ErrorIs(t, err, auth.ErrInvalidRole)
	})

	t.Run("Provider error surfaces untouched", func(t *testing.T) {
		uc, _, verifyGW := setupAuthUCTest(t)

		providerErr := &auth.VerifyError{ProviderCode: 20429, Message: "rate limited", Status: 429}
		verifyGW.EXPECT().
			StartVerification(gomock.Any(), "+15551234567").
			Return(nil, providerErr)

		_, err := uc.SendCode(context.Background(), &models.SendCodeRequest{Phone: "+15551234567"})

		var verr *auth.VerifyError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, 20429, verr.ProviderCode)
	})
}

func TestCheckCode_ExistingUser(t *testing.T) {
	t.Run("Customer hint resolves under stored role", func(t *testing.T) {
		uc, userRepo, verifyGW := setupAuthUCTest(t)

		verifyGW.EXPECT().
			CheckVerification(gomock.Any(), "+15559876543", "123456", "VAxxxx").
			Return(true, nil)
		userRepo.EXPECT().
			GetUserByPhone(gomock.Any(), "+15559876543").
			Return(&models.User{ID: uuid.New(), Phone: "+15559876543", Name: "Dave", Role: models.RoleDriver}, nil)

		resp, err := uc.CheckCode(context.Background(), &models.CheckCodeRequest{
			Phone:      "+15559876543",
			Code:       "123456",
			ServiceSID: "VAxxxx",
			Role:       "customer",
		})

		require.NoError(t, err)
		assert.False(t, resp.ProfileRequired)
		require.NotNil(t, resp.Session)
		assert.Equal(t, models.RoleDriver, resp.Session.Role)
		assert.NotEmpty(t, resp.Session.Token)
	})

	t.Run("Elevated hint against different stored role fails", func(t *testing.T) {
		uc, userRepo, verifyGW := setupAuthUCTest(t)

		verifyGW.EXPECT().
			CheckVerification(gomock.Any(), "+15559876543", "123456", "").
			Return(true, nil)
		userRepo.EXPECT().
			GetUserByPhone(gomock.Any(), "+15559876543").
			Return(&models.User{ID: uuid.New(), Phone: "+15559876543", Role: models.RoleDriver}, nil)

		resp, err := uc.CheckCode(context.Background(), &models.CheckCodeRequest{
			Phone: "+15559876543",
			Code:  "123456",
			Role:  models.RoleAdmin,
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, auth.ErrRoleMismatch)
	})

	t.Run("Matching elevated hint resolves", func(t *testing.T) {
		uc, userRepo, verifyGW := setupAuthUCTest(t)

		verifyGW.EXPECT().
			CheckVerification(gomock.Any(), "+15559876543", "123456", "").
			Return(true, nil)
		userRepo.EXPECT().
			GetUserByPhone(gomock.Any(), "+15559876543").
			Return(&models.User{ID: uuid.New(), Phone: "+15559876543", Role: models.RoleDriver}, nil)

		resp, err := uc.CheckCode(context.Background(), &models.CheckCodeRequest{
			Phone: "+15559876543",
			Code:  "123456",
			Role:  models.RoleDriver,
		})

		require.NoError(t, err)
		assert.Equal(t, models.RoleDriver, resp.Session.Role)
	})
}

func TestCheckCode_NoUser(t *testing.T) {
	t.Run("Customer attempt reaches profile required", func(t *testing.T) {
		uc, userRepo, verifyGW := setupAuthUCTest(t)

		verifyGW.EXPECT().
			CheckVerification(gomock.Any(), "+15551234567", "123456", "").
			Return(true, nil)
		userRepo.EXPECT().
			GetUserByPhone(gomock.Any(), "+15551234567").
			Return(nil, auth.ErrUserNotFound)

		resp, err := uc.CheckCode(context.Background(), &models.CheckCodeRequest{
			Phone: "+15551234567",
			Code:  "123456",
		})

		require.NoError(t, err)
		assert.True(t, resp.ProfileRequired)
		assert.Nil(t, resp.Session)
	})

	t.Run("Elevated attempt terminates without provisioning path", func(t *testing.T) {
		uc, userRepo, verifyGW := setupAuthUCTest(t)

		verifyGW.EXPECT().
			CheckVerification(gomock.Any(), "+15551234567", "123456", "").
			Return(true, nil)
		userRepo.EXPECT().
			GetUserByPhone(gomock.Any(), "+15551234567").
			Return(nil, auth.ErrUserNotFound)

		resp, err := uc.CheckCode(context.Background(), &models.CheckCodeRequest{
			Phone: "+15551234567",
			Code:  "123456",
			Role:  models.RoleAdmin,
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, auth.ErrRoleNotProvisioned)
	})
}

func TestCheckCode_NotApproved(t *testing.T) {
	uc, _, verifyGW := setupAuthUCTest(t)

	verifyGW.EXPECT().
		CheckVerification(gomock.Any(), "+15551234567", "000000", "").
		Return(false, nil)

	resp, err := uc.CheckCode(context.Background(), &models.CheckCodeRequest{
		Phone: "+15551234567",
		Code:  "000000",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, auth.ErrCodeNotApproved)
}

func TestCheckCode_EmptyCode(t *testing.T) {
	uc, _, _ := setupAuthUCTest(t)

	_, err := uc.CheckCode(context.Background(), &models.CheckCodeRequest{Phone: "+15551234567"})

	assert.ErrorIs(t, err, auth.ErrCodeNotApproved)
}

func TestCreateUser(t *testing.T) {
	t.Run("Existing user resolves without insert", func(t *testing.T) {
		uc, userRepo, _ := setupAuthUCTest(t)

		existing := &models.User{ID: uuid.New(), Phone: "+15551234567", Name: "Ann", Role: models.RoleCustomer}
		userRepo.EXPECT().
			GetUserByPhone(gomock.Any(), "+15551234567").
			Return(existing, nil)

		resp, err := uc.CreateUser(context.Background(), &models.CreateUserRequest{
			Phone: "+15551234567",
			Name:  "Ann",
		})

		require.NoError(t, err)
		assert.True(t, resp.Existing)
		assert.Equal(t, existing.ID, resp.User.ID)
		assert.NotNil(t, resp.Session)
	})

	t.Run("New customer with name and no email", func(t *testing.T) {
		uc, userRepo, _ := setupAuthUCTest(t)

		userRepo.EXPECT().
			GetUserByPhone(gomock.Any(), "+15551234567").
			Return(nil, auth.ErrUserNotFound)
		userRepo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *models.User) error {
				user.ID = uuid.New()
				return nil
			})

		resp, err := uc.CreateUser(context.Background(), &models.CreateUserRequest{
			Phone: "+15551234567",
			Name:  "Ann",
		})

		require.NoError(t, err)
		assert.False(t, resp.Existing)
		assert.Equal(t, "Ann", resp.User.Name)
		assert.Empty(t, resp.User.Email)
		assert.Equal(t, models.RoleCustomer, resp.User.Role)
		require.NotNil(t, resp.Session)
		assert.Empty(t, resp.Session.Email)
	})

	t.Run("Check only reports absence without insert", func(t *testing.T) {
		uc, userRepo, _ := setupAuthUCTest(t)

		userRepo.EXPECT().
			GetUserByPhone(gomock.Any(), "+15551234567").
			Return(nil, auth.ErrUserNotFound)

		resp, err := uc.CreateUser(context.Background(), &models.CreateUserRequest{
			Phone:     "+15551234567",
			CheckOnly: true,
		})

		require.NoError(t, err)
		assert.False(t, resp.Existing)
		assert.Nil(t, resp.User)
	})

	t.Run("Elevated role self-registration disallowed", func(t *testing.T) {
		uc, userRepo, _ := setupAuthUCTest(t)

		userRepo.EXPECT().
			GetUserByPhone(gomock.Any(), "+15551234567").
			Return(nil, auth.ErrUserNotFound)

		_, err := uc.CreateUser(context.Background(), &models.CreateUserRequest{
			Phone: "+15551234567",
			Name:  "Eve",
			Role:  models.RoleAdmin,
		})

		assert.ErrorIs(t, err, auth.ErrProvisioningNotAllowed)
	})

	t.Run("Missing name rejected", func(t *testing.T) {
		uc, userRepo, _ := setupAuthUCTest(t)

		userRepo.EXPECT().
			GetUserByPhone(gomock.Any(), "+15551234567").
			Return(nil, auth.ErrUserNotFound)

		_, err := uc.CreateUser(context.Background(), &models.CreateUserRequest{
			Phone: "+15551234567",
		})

		assert.ErrorIs(t, err, auth.ErrNameRequired)
	})

	t.Run("Constraint race re-resolves to first-created user", func(t *testing.T) {
		uc, userRepo, _ := setupAuthUCTest(t)

		winner := &models.User{ID: uuid.New(), Phone: "+15551234567", Name: "First", Role: models.RoleCustomer}

		gomock.InOrder(
			userRepo.EXPECT().
				GetUserByPhone(gomock.Any(), "+15551234567").
				Return(nil, auth.ErrUserNotFound),
			userRepo.EXPECT().
				CreateUser(gomock.Any(), gomock.Any()).
				Return(auth.ErrPhoneTaken),
			userRepo.EXPECT().
				GetUserByPhone(gomock.Any(), "+15551234567").
				Return(winner, nil),
		)

		resp, err := uc.CreateUser(context.Background(), &models.CreateUserRequest{
			Phone: "+15551234567",
			Name:  "Second",
		})

		require.NoError(t, err)
		assert.True(t, resp.Existing)
		assert.Equal(t, winner.ID, resp.User.ID)
		assert.Equal(t, "First", resp.User.Name)
	})

	t.Run("Storage failure is fatal", func(t *testing.T) {
		uc, userRepo, _ := setupAuthUCTest(t)

		userRepo.EXPECT().
			GetUserByPhone(gomock.Any(), "+15551234567").
			Return(nil, errors.New("connection refused"))

		_, err := uc.CreateUser(context.Background(), &models.CreateUserRequest{
			Phone: "+15551234567",
			Name:  "Ann",
		})

		assert.Error(t, err)
	})
}

func TestCreateGuest(t *testing.T) {
	t.Run("Provisions a guest-flagged customer with a session", func(t *testing.T) {
		uc, userRepo, _ := setupAuthUCTest(t)

		userRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *models.User) error {
				assert.True(t, user.Guest)
				assert.Equal(t, models.RoleCustomer, user.Role)
				assert.True(t, strings.HasPrefix(user.Phone, "guest:"))
				user.ID = uuid.New()
				return nil
			})

		resp, err := uc.CreateGuest(context.Background())

		require.NoError(t, err)
		assert.False(t, resp.Existing)
		assert.True(t, resp.User.Guest)
		assert.Equal(t, models.RoleCustomer, resp.Session.Role)
		assert.NotEmpty(t, resp.Session.Token)
	})

	t.Run("Two guests never share a phone", func(t *testing.T) {
		uc, userRepo, _ := setupAuthUCTest(t)

		var phones []string
		userRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(2).
			DoAndReturn(func(_ context.Context, user *models.User) error {
				user.ID = uuid.New()
				phones = append(phones, user.Phone)
				return nil
			})

		_, err := uc.CreateGuest(context.Background())
		require.NoError(t, err)
		_, err = uc.CreateGuest(context.Background())
		require.NoError(t, err)

		assert.NotEqual(t, phones[0], phones[1])
	})

	t.Run("Repository failure surfaces", func(t *testing.T) {
		uc, userRepo, _ := setupAuthUCTest(t)

		userRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			Return(errors.New("disk full"))

		_, err := uc.CreateGuest(context.Background())
		assert.Error(t, err)
	})
}
