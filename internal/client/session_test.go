package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	identityapp "github.com/storehub/backend/internal/application/identity"
)

func TestSessionStore(t *testing.T) {
	t.Run("empty storage restores unauthenticated", func(t *testing.T) {
		session := NewSessionStore(NewMemoryStorage())

		assert.Equal(t, StateUnauthenticated, session.State())
		_, ok := session.Token()
		assert.False(t, ok)
	})

	t.Run("token without profile restores unauthenticated", func(t *testing.T) {
		storage := NewMemoryStorage()
		require.NoError(t, storage.Set("token", "orphan-token"))

		session := NewSessionStore(storage)

		assert.Equal(t, StateUnauthenticated, session.State())
	})

	t.Run("persisted session round-trips without a login call", func(t *testing.T) {
		storage := NewMemoryStorage()
		first := NewSessionStore(storage)
		require.NoError(t, first.CompleteLogin("token-xyz", identityapp.AdminResponse{
			ID:    "a1",
			Name:  "Alice",
			Email: "alice@example.com",
		}))

		// A second store over the same storage plays the role of a restart
		second := NewSessionStore(storage)

		require.Equal(t, StateAuthenticated, second.State())
		token, ok := second.Token()
		require.True(t, ok)
		assert.Equal(t, "token-xyz", token)
		admin, ok := second.Admin()
		require.True(t, ok)
		assert.Equal(t, "alice@example.com", admin.Email)
	})

	t.Run("clear drops both entries", func(t *testing.T) {
		storage := NewMemoryStorage()
		session := NewSessionStore(storage)
		require.NoError(t, session.CompleteLogin("token-xyz", identityapp.AdminResponse{ID: "a1"}))

		session.Clear()

		assert.Equal(t, StateUnauthenticated, session.State())
		_, tokenLeft, _ := storage.Get("token")
		_, adminLeft, _ := storage.Get("admin")
		assert.False(t, tokenLeft)
		assert.False(t, adminLeft)
	})
}

func TestFileStorage(t *testing.T) {
	t.Run("round-trips entries through the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "session.json")
		storage := NewFileStorageAt(path)

		require.NoError(t, storage.Set("token", "abc"))

		reopened := NewFileStorageAt(path)
		value, ok, err := reopened.Get("token")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "abc", value)
	})

	t.Run("missing file reads as empty", func(t *testing.T) {
		storage := NewFileStorageAt(filepath.Join(t.TempDir(), "absent.json"))

		_, ok, err := storage.Get("token")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete then get", func(t *testing.T) {
		storage := NewFileStorageAt(filepath.Join(t.TempDir(), "session.json"))
		require.NoError(t, storage.Set("token", "abc"))

		require.NoError(t, storage.Delete("token"))
		require.NoError(t, storage.Delete("token"))

		_, ok, err := storage.Get("token")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
