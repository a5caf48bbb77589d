package client

import (
	"context"
	"net/http"

	identityapp "github.com/storehub/backend/internal/application/identity"
)

// AuthService drives the two-step login and account endpoints
type AuthService struct {
	c *Client
}

// Auth returns the authentication service
func (c *Client) Auth() *AuthService {
	return &AuthService{c: c}
}

// Register creates an administrator account. It never signs the caller
// in; a registered user still goes through the two-step login.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*identityapp.AdminResponse, error) {
	var out identityapp.AdminResponse
	err := s.c.do(ctx, http.MethodPost, "/admin/register", identityapp.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login performs the password step and opens an OTP challenge
func (s *AuthService) Login(ctx context.Context, email, password string) (*identityapp.LoginResponse, error) {
	var out identityapp.LoginResponse
	err := s.c.do(ctx, http.MethodPost, "/admin/login", identityapp.LoginRequest{
		Email:    email,
		Password: password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyLogin exchanges a correct OTP code for a session token
func (s *AuthService) VerifyLogin(ctx context.Context, challengeID, code string) (*identityapp.VerifyLoginResponse, error) {
	var out identityapp.VerifyLoginResponse
	err := s.c.do(ctx, http.MethodPost, "/admin/verify-login", identityapp.VerifyLoginRequest{
		ChallengeID: challengeID,
		Code:        code,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ResendOTP requests a fresh verification code for an open challenge
func (s *AuthService) ResendOTP(ctx context.Context, challengeID string) (*identityapp.ResendOTPResponse, error) {
	var out identityapp.ResendOTPResponse
	err := s.c.do(ctx, http.MethodPost, "/admin/resend-otp", identityapp.ResendOTPRequest{
		ChallengeID: challengeID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes the server-side token and clears the local session.
// The local session is cleared even when the server call fails.
func (s *AuthService) Logout(ctx context.Context) error {
	err := s.c.do(ctx, http.MethodPost, "/admin/logout", nil, nil)
	s.c.session.Clear()
	return err
}

// Me fetches the signed-in administrator's profile
func (s *AuthService) Me(ctx context.Context) (*identityapp.AdminResponse, error) {
	var out identityapp.AdminResponse
	if err := s.c.do(ctx, http.MethodGet, "/admin/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
