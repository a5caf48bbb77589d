package identity

import (
	"context"

	"github.com/google/uuid"
)

// AdminRepository defines persistence operations for administrator accounts
type AdminRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Admin, error)
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	Save(ctx context.Context, admin *Admin) error
}

// OTPChallengeStore holds pending login challenges until they are
// verified or expire
type OTPChallengeStore interface {
	Put(ctx context.Context, challenge *OTPChallenge) error
	Get(ctx context.Context, id uuid.UUID) (*OTPChallenge, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
