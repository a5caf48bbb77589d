package otp

import (
	"context"

	"go.uber.org/zap"
)

// CodeSender delivers a verification code to an administrator
type CodeSender interface {
	SendCode(ctx context.Context, email, code string) error
}

// LogSender writes codes to the application log instead of sending
// email. Used in development and as the default until an SMTP sender
// is configured.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender creates a log-based code sender
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger.Named("otp")}
}

// SendCode logs the verification code
func (s *LogSender) SendCode(ctx context.Context, email, code string) error {
	s.logger.Info("Login verification code issued",
		zap.String("email", email),
		zap.String("code", code),
	)
	return nil
}
