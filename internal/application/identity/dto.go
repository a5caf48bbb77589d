package identity

import (
	"time"

	"github.com/storehub/backend/internal/domain/identity"
)

// RegisterRequest is the input for creating an administrator account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the first step of the two-step login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse acknowledges the password check and opens an OTP challenge.
// No token is issued until the challenge is verified.
type LoginResponse struct {
	ChallengeID string `json:"challengeId"`
	OTPRequired bool   `json:"otpRequired"`
	ResendAfter int    `json:"resendAfter"` // seconds until a new code may be requested
}

// VerifyLoginRequest is the second step of the two-step login
type VerifyLoginRequest struct {
	ChallengeID string `json:"challengeId" binding:"required"`
	Code        string `json:"code" binding:"required"`
}

// VerifyLoginResponse completes the login with a session token
type VerifyLoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Admin     AdminResponse `json:"admin"`
}

// ResendOTPRequest asks for a fresh verification code
type ResendOTPRequest struct {
	ChallengeID string `json:"challengeId" binding:"required"`
}

// ResendOTPResponse acknowledges the new code
type ResendOTPResponse struct {
	ChallengeID string `json:"challengeId"`
	ResendAfter int    `json:"resendAfter"`
}

// AdminResponse is the wire representation of an administrator
type AdminResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// ToAdminResponse converts a domain admin to its wire form
func ToAdminResponse(a *identity.Admin) AdminResponse {
	return AdminResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
		LastLogin: a.LastLoginAt,
	}
}
