package identity

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/storehub/backend/internal/domain/shared"
)

// OTP challenge limits
const (
	OTPCodeLength  = 6
	OTPMaxAttempts = 5
	OTPTTL         = 5 * time.Minute
	// OTPResendInterval is the minimum gap between code sends for one challenge
	OTPResendInterval = 60 * time.Second
)

// OTP errors
var (
	ErrOTPInvalid   = shared.NewDomainError("OTP_INVALID", "Verification code is incorrect")
	ErrOTPExpired   = shared.NewDomainError("OTP_EXPIRED", "Verification code has expired, please log in again")
	ErrOTPThrottled = shared.NewDomainError("OTP_THROTTLED", "Please wait before requesting a new code")
)

// OTPChallenge is a pending second-factor verification created after a
// successful password check. The login is not complete until the
// challenge is verified.
type OTPChallenge struct {
	ID         uuid.UUID `json:"id"`
	AdminID    uuid.UUID `json:"admin_id"`
	Code       string    `json:"code"`
	Attempts   int       `json:"attempts"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	LastSentAt time.Time `json:"last_sent_at"`
}

// NewOTPChallenge creates a challenge for the given admin with a fresh code
func NewOTPChallenge(adminID uuid.UUID, now time.Time) (*OTPChallenge, error) {
	code, err := GenerateOTPCode()
	if err != nil {
		return nil, shared.NewDomainError("OTP_GENERATION_FAILED", "Failed to generate verification code")
	}

	return &OTPChallenge{
		ID:         uuid.New(),
		AdminID:    adminID,
		Code:       code,
		CreatedAt:  now,
		ExpiresAt:  now.Add(OTPTTL),
		LastSentAt: now,
	}, nil
}

// Verify checks the submitted code. A wrong code consumes an attempt;
// the challenge dies when attempts run out or the TTL passes.
func (c *OTPChallenge) Verify(code string, now time.Time) error {
	if now.After(c.ExpiresAt) {
		return ErrOTPExpired
	}
	if c.Attempts >= OTPMaxAttempts {
		return ErrOTPExpired
	}
	if code != c.Code {
		c.Attempts++
		if c.Attempts >= OTPMaxAttempts {
			return ErrOTPExpired
		}
		return ErrOTPInvalid
	}
	return nil
}

// CanResend reports whether a new code may be sent for this challenge
func (c *OTPChallenge) CanResend(now time.Time) bool {
	return now.Sub(c.LastSentAt) >= OTPResendInterval
}

// ResendIn returns how long until a resend is allowed
func (c *OTPChallenge) ResendIn(now time.Time) time.Duration {
	remaining := OTPResendInterval - now.Sub(c.LastSentAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Resend replaces the code, resets attempts, and extends the TTL
func (c *OTPChallenge) Resend(now time.Time) error {
	if !c.CanResend(now) {
		return ErrOTPThrottled
	}

	code, err := GenerateOTPCode()
	if err != nil {
		return shared.NewDomainError("OTP_GENERATION_FAILED", "Failed to generate verification code")
	}

	c.Code = code
	c.Attempts = 0
	c.LastSentAt = now
	c.ExpiresAt = now.Add(OTPTTL)

	return nil
}

// GenerateOTPCode returns a random numeric code of OTPCodeLength digits
func GenerateOTPCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < OTPCodeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", OTPCodeLength, n), nil
}
