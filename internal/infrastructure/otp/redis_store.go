// Package otp provides storage and delivery for login verification codes.
package otp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/storehub/backend/internal/domain/identity"
	"github.com/storehub/backend/internal/domain/shared"
)

const keyPrefix = "otp:challenge:"

// RedisChallengeStore keeps pending OTP challenges in Redis so they
// survive restarts and are shared across instances. Entries expire
// with the challenge TTL plus a grace period for error reporting.
type RedisChallengeStore struct {
	client *redis.Client
}

// NewRedisChallengeStore creates a Redis-backed challenge store
func NewRedisChallengeStore(client *redis.Client) *RedisChallengeStore {
	return &RedisChallengeStore{client: client}
}

// Put stores a challenge under its ID
func (s *RedisChallengeStore) Put(ctx context.Context, challenge *identity.OTPChallenge) error {
	payload, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal otp challenge: %w", err)
	}

	ttl := time.Until(challenge.ExpiresAt) + time.Minute
	if ttl <= 0 {
		return identity.ErrOTPExpired
	}

	if err := s.client.Set(ctx, keyPrefix+challenge.ID.String(), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store otp challenge: %w", err)
	}
	return nil
}

// Get loads a challenge by ID, returning shared.ErrNotFound when absent
func (s *RedisChallengeStore) Get(ctx context.Context, id uuid.UUID) (*identity.OTPChallenge, error) {
	payload, err := s.client.Get(ctx, keyPrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load otp challenge: %w", err)
	}

	var challenge identity.OTPChallenge
	if err := json.Unmarshal(payload, &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal otp challenge: %w", err)
	}
	return &challenge, nil
}

// Delete removes a challenge after verification or abandonment
func (s *RedisChallengeStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, keyPrefix+id.String()).Err(); err != nil {
		return fmt.Errorf("failed to delete otp challenge: %w", err)
	}
	return nil
}
