package client

import (
	"context"
	"errors"
	"sync"

	identityapp "github.com/storehub/backend/internal/application/identity"
	"github.com/storehub/backend/internal/domain/identity"
)

// LoginPhase is the position within the two-step login flow
type LoginPhase string

const (
	PhaseCredentials LoginPhase = "credentials-entry"
	PhaseOTPPending  LoginPhase = "otp-pending"
	PhaseVerified    LoginPhase = "verified"
	PhaseFailed      LoginPhase = "failed"
)

// RedirectTarget is where a verified login lands
const RedirectTarget = "/dashboard"

const defaultResendWait = 60

// Local validation errors raised before any request is sent
var (
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrNoOpenChallenge     = errors.New("no verification is in progress")
	ErrResendNotYetAllowed = errors.New("a new code cannot be requested yet")
)

// LoginSequence drives the client side of the two-step login. The view
// owns the wall clock: it calls Tick once per second to advance the
// resend countdown, which keeps the sequence deterministic in tests.
type LoginSequence struct {
	mu          sync.Mutex
	auth        *AuthService
	session     *SessionStore
	phase       LoginPhase
	challengeID string
	countdown   int
}

// NewLoginSequence creates a sequence at the credentials-entry phase
func NewLoginSequence(c *Client) *LoginSequence {
	return &LoginSequence{
		auth:    c.Auth(),
		session: c.Session(),
		phase:   PhaseCredentials,
	}
}

// Phase returns the current phase
func (l *LoginSequence) Phase() LoginPhase {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.phase
}

// Countdown returns the seconds remaining before a code can be resent
func (l *LoginSequence) Countdown() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.countdown
}

// CanResend reports whether a resend is currently allowed
func (l *LoginSequence) CanResend() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.phase == PhaseOTPPending && l.countdown == 0
}

// Tick advances the resend countdown by one second
func (l *LoginSequence) Tick() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.countdown > 0 {
		l.countdown--
	}
}

// SubmitCredentials performs the password step. Success opens the OTP
// phase and starts the resend countdown; the caller is never
// authenticated here, whatever the server response contains.
func (l *LoginSequence) SubmitCredentials(ctx context.Context, email, password string) error {
	if len(password) < identity.MinPasswordLength {
		return ErrPasswordTooShort
	}

	resp, err := l.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.phase = PhaseOTPPending
	l.challengeID = resp.ChallengeID
	l.countdown = resp.ResendAfter
	if l.countdown <= 0 {
		l.countdown = defaultResendWait
	}
	return nil
}

// Register creates an account. The confirmation is checked before any
// request goes out, and a successful registration opens no session.
func (l *LoginSequence) Register(ctx context.Context, name, email, password, confirm string) (*identityapp.AdminResponse, error) {
	if len(password) < identity.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if password != confirm {
		return nil, ErrPasswordMismatch
	}
	return l.auth.Register(ctx, name, email, password)
}

// VerifyOTP performs the code step. Success completes the session and
// moves to the verified phase; an expired challenge is terminal.
func (l *LoginSequence) VerifyOTP(ctx context.Context, code string) error {
	l.mu.Lock()
	if l.phase != PhaseOTPPending {
		l.mu.Unlock()
		return ErrNoOpenChallenge
	}
	challengeID := l.challengeID
	l.mu.Unlock()

	resp, err := l.auth.VerifyLogin(ctx, challengeID, code)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Code == "OTP_EXPIRED" {
			l.mu.Lock()
			l.phase = PhaseFailed
			l.challengeID = ""
			l.countdown = 0
			l.mu.Unlock()
		}
		return err
	}

	if err := l.session.CompleteLogin(resp.Token, resp.Admin); err != nil {
		return err
	}

	l.mu.Lock()
	l.phase = PhaseVerified
	l.mu.Unlock()
	return nil
}

// Resend requests a fresh code and restarts the countdown
func (l *LoginSequence) Resend(ctx context.Context) error {
	l.mu.Lock()
	if l.phase != PhaseOTPPending {
		l.mu.Unlock()
		return ErrNoOpenChallenge
	}
	if l.countdown > 0 {
		l.mu.Unlock()
		return ErrResendNotYetAllowed
	}
	challengeID := l.challengeID
	l.mu.Unlock()

	resp, err := l.auth.ResendOTP(ctx, challengeID)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.countdown = resp.ResendAfter
	if l.countdown <= 0 {
		l.countdown = defaultResendWait
	}
	l.mu.Unlock()
	return nil
}

// Back abandons the current challenge and returns to credentials entry
func (l *LoginSequence) Back() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.phase = PhaseCredentials
	l.challengeID = ""
	l.countdown = 0
}

// Redirect returns the post-login destination once verified
func (l *LoginSequence) Redirect() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.phase != PhaseVerified {
		return "", false
	}
	return RedirectTarget, true
}
