package otp

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/storehub/backend/internal/domain/identity"
	"github.com/storehub/backend/internal/domain/shared"
)

// MemoryChallengeStore is an in-process challenge store for tests and
// single-node deployments without Redis
type MemoryChallengeStore struct {
	mu         sync.RWMutex
	challenges map[uuid.UUID]*identity.OTPChallenge
}

// NewMemoryChallengeStore creates an in-memory challenge store
func NewMemoryChallengeStore() *MemoryChallengeStore {
	return &MemoryChallengeStore{
		challenges: make(map[uuid.UUID]*identity.OTPChallenge),
	}
}

// Put stores a challenge under its ID
func (s *MemoryChallengeStore) Put(ctx context.Context, challenge *identity.OTPChallenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *challenge
	s.challenges[challenge.ID] = &copied
	return nil
}

// Get loads a challenge by ID, returning shared.ErrNotFound when absent or expired
func (s *MemoryChallengeStore) Get(ctx context.Context, id uuid.UUID) (*identity.OTPChallenge, error) {
	s.mu.RLock()
	challenge, ok := s.challenges[id]
	s.mu.RUnlock()

	if !ok {
		return nil, shared.ErrNotFound
	}
	if time.Now().After(challenge.ExpiresAt.Add(time.Minute)) {
		s.mu.Lock()
		delete(s.challenges, id)
		s.mu.Unlock()
		return nil, shared.ErrNotFound
	}

	copied := *challenge
	return &copied, nil
}

// Delete removes a challenge
func (s *MemoryChallengeStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.challenges, id)
	return nil
}
