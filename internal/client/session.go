package client

import (
	"encoding/json"
	"sync"

	identityapp "github.com/storehub/backend/internal/application/identity"
)

// SessionState is the authentication state of the local session
type SessionState string

const (
	StateUnauthenticated SessionState = "unauthenticated"
	StateLoading         SessionState = "loading"
	StateAuthenticated   SessionState = "authenticated"
)

// Storage keys for the two persisted session entries
const (
	tokenStorageKey = "token"
	adminStorageKey = "admin"
)

// SessionStore holds the local session: a bearer token and the admin
// profile it belongs to, both persisted through a Storage.
type SessionStore struct {
	mu      sync.Mutex
	storage Storage
	state   SessionState
	token   string
	admin   *identityapp.AdminResponse
}

// NewSessionStore creates a SessionStore and restores any persisted session
func NewSessionStore(storage Storage) *SessionStore {
	s := &SessionStore{
		storage: storage,
		state:   StateLoading,
	}
	s.Restore()
	return s
}

// Restore loads the persisted session. The session is authenticated only
// when both the token and the profile entry are present and readable.
func (s *SessionStore) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, tokenOK, err := s.storage.Get(tokenStorageKey)
	if err != nil || !tokenOK || token == "" {
		s.resetLocked()
		return
	}

	rawAdmin, adminOK, err := s.storage.Get(adminStorageKey)
	if err != nil || !adminOK {
		s.resetLocked()
		return
	}

	var admin identityapp.AdminResponse
	if err := json.Unmarshal([]byte(rawAdmin), &admin); err != nil {
		s.resetLocked()
		return
	}

	s.token = token
	s.admin = &admin
	s.state = StateAuthenticated
}

// State returns the current session state
func (s *SessionStore) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the bearer token when the session is authenticated
func (s *SessionStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAuthenticated {
		return "", false
	}
	return s.token, true
}

// Admin returns the signed-in profile when the session is authenticated
func (s *SessionStore) Admin() (*identityapp.AdminResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAuthenticated || s.admin == nil {
		return nil, false
	}
	admin := *s.admin
	return &admin, true
}

// CompleteLogin stores a verified login. This is the only transition into
// the authenticated state; the password step alone never reaches it.
func (s *SessionStore) CompleteLogin(token string, admin identityapp.AdminResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rawAdmin, err := json.Marshal(admin)
	if err != nil {
		return err
	}
	if err := s.storage.Set(tokenStorageKey, token); err != nil {
		return err
	}
	if err := s.storage.Set(adminStorageKey, string(rawAdmin)); err != nil {
		return err
	}

	s.token = token
	s.admin = &admin
	s.state = StateAuthenticated
	return nil
}

// Clear drops the session unconditionally, in memory and in storage
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.storage.Delete(tokenStorageKey)
	_ = s.storage.Delete(adminStorageKey)
	s.resetLocked()
}

func (s *SessionStore) resetLocked() {
	s.token = ""
	s.admin = nil
	s.state = StateUnauthenticated
}
