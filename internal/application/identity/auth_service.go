package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/storehub/backend/internal/domain/identity"
	"github.com/storehub/backend/internal/domain/shared"
	"github.com/storehub/backend/internal/infrastructure/auth"
	"github.com/storehub/backend/internal/infrastructure/otp"
	"go.uber.org/zap"
)

// ErrInvalidCredentials is returned for unknown emails and wrong
// passwords alike, so responses do not leak which one it was.
var ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Email or password is incorrect")

// AuthService implements registration and the two-step OTP login
type AuthService struct {
	admins     identity.AdminRepository
	challenges identity.OTPChallengeStore
	sender     otp.CodeSender
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
	now        func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(
	admins identity.AdminRepository,
	challenges identity.OTPChallengeStore,
	sender otp.CodeSender,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		admins:     admins,
		challenges: challenges,
		sender:     sender,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger.Named("identity.auth"),
		now:        time.Now,
	}
}

// Register creates a new administrator account. It never issues a
// token; the new admin must go through the login flow.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AdminResponse, error) {
	existing, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
	}

	admin, err := identity.NewAdmin(req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	if err := s.admins.Save(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info("Admin registered", zap.String("id", admin.ID.String()), zap.String("email", admin.Email))

	resp := ToAdminResponse(admin)
	return &resp, nil
}

// Login verifies credentials and opens an OTP challenge. The session
// is not established here; VerifyLogin completes it.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	admin, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login attempt for unknown email", zap.String("email", identity.NormalizeEmail(req.Email)))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !admin.Active {
		return nil, shared.NewDomainError("ACCOUNT_DISABLED", "This account has been disabled")
	}

	if !admin.VerifyPassword(req.Password) {
		s.logger.Warn("Failed login attempt", zap.String("email", admin.Email))
		return nil, ErrInvalidCredentials
	}

	challenge, err := identity.NewOTPChallenge(admin.ID, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.challenges.Put(ctx, challenge); err != nil {
		return nil, err
	}

	if err := s.sender.SendCode(ctx, admin.Email, challenge.Code); err != nil {
		s.logger.Error("Failed to send verification code", zap.Error(err))
		return nil, shared.NewDomainError("OTP_SEND_FAILED", "Could not send verification code")
	}

	s.logger.Info("OTP challenge opened",
		zap.String("admin_id", admin.ID.String()),
		zap.String("challenge_id", challenge.ID.String()),
	)

	return &LoginResponse{
		ChallengeID: challenge.ID.String(),
		OTPRequired: true,
		ResendAfter: int(identity.OTPResendInterval.Seconds()),
	}, nil
}

// VerifyLogin checks the OTP code and, on success, issues the session token
func (s *AuthService) VerifyLogin(ctx context.Context, req VerifyLoginRequest) (*VerifyLoginResponse, error) {
	challengeID, err := uuid.Parse(req.ChallengeID)
	if err != nil {
		return nil, identity.ErrOTPExpired
	}

	challenge, err := s.challenges.Get(ctx, challengeID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, identity.ErrOTPExpired
		}
		return nil, err
	}

	if err := challenge.Verify(req.Code, s.now()); err != nil {
		// Persist the consumed attempt; drop dead challenges entirely
		if errors.Is(err, identity.ErrOTPExpired) {
			_ = s.challenges.Delete(ctx, challengeID)
		} else {
			_ = s.challenges.Put(ctx, challenge)
		}
		return nil, err
	}

	admin, err := s.admins.FindByID(ctx, challenge.AdminID)
	if err != nil {
		return nil, err
	}

	if err := s.challenges.Delete(ctx, challengeID); err != nil {
		s.logger.Warn("Failed to delete verified challenge", zap.Error(err))
	}

	admin.RecordLogin(s.now())
	if err := s.admins.Save(ctx, admin); err != nil {
		s.logger.Warn("Failed to record login timestamp", zap.Error(err))
	}

	issued, err := s.jwtService.GenerateToken(admin.ID, admin.Email, admin.Name)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Login verified", zap.String("admin_id", admin.ID.String()))

	return &VerifyLoginResponse{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		Admin:     ToAdminResponse(admin),
	}, nil
}

// ResendOTP issues a fresh code for an open challenge, throttled to
// one send per resend interval
func (s *AuthService) ResendOTP(ctx context.Context, req ResendOTPRequest) (*ResendOTPResponse, error) {
	challengeID, err := uuid.Parse(req.ChallengeID)
	if err != nil {
		return nil, identity.ErrOTPExpired
	}

	challenge, err := s.challenges.Get(ctx, challengeID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, identity.ErrOTPExpired
		}
		return nil, err
	}

	if err := challenge.Resend(s.now()); err != nil {
		return nil, err
	}

	admin, err := s.admins.FindByID(ctx, challenge.AdminID)
	if err != nil {
		return nil, err
	}

	if err := s.challenges.Put(ctx, challenge); err != nil {
		return nil, err
	}

	if err := s.sender.SendCode(ctx, admin.Email, challenge.Code); err != nil {
		s.logger.Error("Failed to resend verification code", zap.Error(err))
		return nil, shared.NewDomainError("OTP_SEND_FAILED", "Could not send verification code")
	}

	return &ResendOTPResponse{
		ChallengeID: challenge.ID.String(),
		ResendAfter: int(identity.OTPResendInterval.Seconds()),
	}, nil
}

// Logout revokes the presented token until its natural expiry
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := claims.RemainingTTL(s.now())
	if err := s.blacklist.Add(ctx, claims.ID, ttl); err != nil {
		return err
	}

	s.logger.Info("Admin logged out", zap.String("admin_id", claims.AdminID))
	return nil
}

// Profile returns the current admin's profile
func (s *AuthService) Profile(ctx context.Context, adminID uuid.UUID) (*AdminResponse, error) {
	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	resp := ToAdminResponse(admin)
	return &resp, nil
}
