package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/storehub/backend/internal/domain/identity"
	"github.com/storehub/backend/internal/domain/shared"
	"github.com/storehub/backend/internal/infrastructure/auth"
	"github.com/storehub/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

type authFixture struct {
	svc       *AuthService
	admins    *mockAdminRepository
	store     *mockChallengeStore
	sender    *mockCodeSender
	blacklist *mockTokenBlacklist
	now       time.Time
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	f := &authFixture{
		admins:    new(mockAdminRepository),
		store:     new(mockChallengeStore),
		sender:    new(mockCodeSender),
		blacklist: new(mockTokenBlacklist),
		now:       time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-that-is-long-enough-0123456789",
		AccessTokenExpiration: time.Hour,
		Issuer:                "storehub-test",
	})

	f.svc = NewAuthService(f.admins, f.store, f.sender, jwtService, f.blacklist, zap.NewNop())
	f.svc.now = func() time.Time { return f.now }
	return f
}

func newTestAdmin(t *testing.T) *identity.Admin {
	t.Helper()
	admin, err := identity.NewAdmin("Alice", "alice@example.com", "secret1")
	require.NoError(t, err)
	return admin
}

func TestAuthServiceRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account without issuing a token", func(t *testing.T) {
		f := newAuthFixture(t)
		f.admins.On("FindByEmail", ctx, "alice@example.com").Return(nil, shared.ErrNotFound)
		f.admins.On("Save", ctx, mock.AnythingOfType("*identity.Admin")).Return(nil)

		resp, err := f.svc.Register(ctx, RegisterRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret1",
		})

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", resp.Email)
		f.admins.AssertExpectations(t)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		f := newAuthFixture(t)
		f.admins.On("FindByEmail", ctx, "alice@example.com").Return(newTestAdmin(t), nil)

		_, err := f.svc.Register(ctx, RegisterRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret1",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMAIL_TAKEN", domainErr.Code)
		f.admins.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects weak password without saving", func(t *testing.T) {
		f := newAuthFixture(t)
		f.admins.On("FindByEmail", ctx, "alice@example.com").Return(nil, shared.ErrNotFound)

		_, err := f.svc.Register(ctx, RegisterRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "short",
		})

		require.Error(t, err)
		f.admins.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("opens challenge and sends code", func(t *testing.T) {
		f := newAuthFixture(t)
		admin := newTestAdmin(t)
		f.admins.On("FindByEmail", ctx, "alice@example.com").Return(admin, nil)
		f.store.On("Put", ctx, mock.AnythingOfType("*identity.OTPChallenge")).Return(nil)
		f.sender.On("SendCode", ctx, admin.Email, mock.AnythingOfType("string")).Return(nil)

		resp, err := f.svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "secret1"})

		require.NoError(t, err)
		assert.True(t, resp.OTPRequired)
		assert.NotEmpty(t, resp.ChallengeID)
		assert.Equal(t, 60, resp.ResendAfter)
		f.store.AssertExpectations(t)
		f.sender.AssertExpectations(t)
	})

	t.Run("wrong password opens no challenge", func(t *testing.T) {
		f := newAuthFixture(t)
		admin := newTestAdmin(t)
		f.admins.On("FindByEmail", ctx, "alice@example.com").Return(admin, nil)

		_, err := f.svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		f.store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
		f.sender.AssertNotCalled(t, "SendCode", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown email reads like a wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.admins.On("FindByEmail", ctx, "nobody@example.com").Return(nil, shared.ErrNotFound)

		_, err := f.svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "secret1"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("disabled account cannot log in", func(t *testing.T) {
		f := newAuthFixture(t)
		admin := newTestAdmin(t)
		admin.Active = false
		f.admins.On("FindByEmail", ctx, "alice@example.com").Return(admin, nil)

		_, err := f.svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "secret1"})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_DISABLED", domainErr.Code)
	})
}

func TestAuthServiceVerifyLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("correct code issues token and closes challenge", func(t *testing.T) {
		f := newAuthFixture(t)
		admin := newTestAdmin(t)
		challenge, err := identity.NewOTPChallenge(admin.ID, f.now)
		require.NoError(t, err)

		f.store.On("Get", ctx, challenge.ID).Return(challenge, nil)
		f.store.On("Delete", ctx, challenge.ID).Return(nil)
		f.admins.On("FindByID", ctx, admin.ID).Return(admin, nil)
		f.admins.On("Save", ctx, admin).Return(nil)

		resp, err := f.svc.VerifyLogin(ctx, VerifyLoginRequest{
			ChallengeID: challenge.ID.String(),
			Code:        challenge.Code,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, admin.Email, resp.Admin.Email)
		require.NotNil(t, admin.LastLoginAt)
		assert.Equal(t, f.now, *admin.LastLoginAt)
		f.store.AssertExpectations(t)
	})

	t.Run("wrong code consumes an attempt", func(t *testing.T) {
		f := newAuthFixture(t)
		admin := newTestAdmin(t)
		challenge, err := identity.NewOTPChallenge(admin.ID, f.now)
		require.NoError(t, err)
		challenge.Code = "123456"

		f.store.On("Get", ctx, challenge.ID).Return(challenge, nil)
		f.store.On("Put", ctx, challenge).Return(nil)

		_, err = f.svc.VerifyLogin(ctx, VerifyLoginRequest{
			ChallengeID: challenge.ID.String(),
			Code:        "654321",
		})

		assert.ErrorIs(t, err, identity.ErrOTPInvalid)
		assert.Equal(t, 1, challenge.Attempts)
		f.store.AssertCalled(t, "Put", ctx, challenge)
	})

	t.Run("expired challenge is removed", func(t *testing.T) {
		f := newAuthFixture(t)
		admin := newTestAdmin(t)
		challenge, err := identity.NewOTPChallenge(admin.ID, f.now.Add(-10*time.Minute))
		require.NoError(t, err)

		f.store.On("Get", ctx, challenge.ID).Return(challenge, nil)
		f.store.On("Delete", ctx, challenge.ID).Return(nil)

		_, err = f.svc.VerifyLogin(ctx, VerifyLoginRequest{
			ChallengeID: challenge.ID.String(),
			Code:        challenge.Code,
		})

		assert.ErrorIs(t, err, identity.ErrOTPExpired)
		f.store.AssertCalled(t, "Delete", ctx, challenge.ID)
	})

	t.Run("unknown challenge reads as expired", func(t *testing.T) {
		f := newAuthFixture(t)
		f.store.On("Get", ctx, mock.Anything).Return(nil, shared.ErrNotFound)

		_, err := f.svc.VerifyLogin(ctx, VerifyLoginRequest{
			ChallengeID: "0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0",
			Code:        "123456",
		})

		assert.ErrorIs(t, err, identity.ErrOTPExpired)
	})
}

func TestAuthServiceResendOTP(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces code after the cooldown", func(t *testing.T) {
		f := newAuthFixture(t)
		admin := newTestAdmin(t)
		challenge, err := identity.NewOTPChallenge(admin.ID, f.now.Add(-2*time.Minute))
		require.NoError(t, err)
		oldCode := challenge.Code

		f.store.On("Get", ctx, challenge.ID).Return(challenge, nil)
		f.store.On("Put", ctx, challenge).Return(nil)
		f.admins.On("FindByID", ctx, admin.ID).Return(admin, nil)
		f.sender.On("SendCode", ctx, admin.Email, mock.AnythingOfType("string")).Return(nil)

		resp, err := f.svc.ResendOTP(ctx, ResendOTPRequest{ChallengeID: challenge.ID.String()})

		require.NoError(t, err)
		assert.Equal(t, 60, resp.ResendAfter)
		assert.NotEqual(t, oldCode, challenge.Code)
		f.sender.AssertExpectations(t)
	})

	t.Run("throttles rapid resends", func(t *testing.T) {
		f := newAuthFixture(t)
		admin := newTestAdmin(t)
		challenge, err := identity.NewOTPChallenge(admin.ID, f.now.Add(-10*time.Second))
		require.NoError(t, err)

		f.store.On("Get", ctx, challenge.ID).Return(challenge, nil)

		_, err = f.svc.ResendOTP(ctx, ResendOTPRequest{ChallengeID: challenge.ID.String()})

		assert.ErrorIs(t, err, identity.ErrOTPThrottled)
		f.sender.AssertNotCalled(t, "SendCode", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthServiceLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("blacklists the token for its remaining lifetime", func(t *testing.T) {
		f := newAuthFixture(t)
		admin := newTestAdmin(t)

		jwtService := auth.NewJWTService(config.JWTConfig{
			Secret:                "test-secret-that-is-long-enough-0123456789",
			AccessTokenExpiration: time.Hour,
			Issuer:                "storehub-test",
		})
		issued, err := jwtService.GenerateToken(admin.ID, admin.Email, admin.Name)
		require.NoError(t, err)
		claims, err := jwtService.ValidateToken(issued.Token)
		require.NoError(t, err)

		f.blacklist.On("Add", ctx, claims.ID, mock.AnythingOfType("time.Duration")).Return(nil)

		require.NoError(t, f.svc.Logout(ctx, claims))
		f.blacklist.AssertExpectations(t)
	})
}
