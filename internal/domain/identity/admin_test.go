package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/storehub/backend/internal/domain/shared"
)

func TestNewAdmin(t *testing.T) {
	t.Run("creates admin with hashed password", func(t *testing.T) {
		admin, err := NewAdmin("Alice", "Alice@Example.com ", "secret1")

		require.NoError(t, err)
		assert.Equal(t, "Alice", admin.Name)
		assert.Equal(t, "alice@example.com", admin.Email)
		assert.True(t, admin.Active)
		assert.NotEqual(t, "secret1", admin.PasswordHash)
		assert.True(t, admin.VerifyPassword("secret1"))
		assert.False(t, admin.VerifyPassword("secret2"))
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewAdmin("Alice", "alice@example.com", "abc")

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "WEAK_PASSWORD", domainErr.Code)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := NewAdmin("Alice", "not-an-email", "secret1")

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_EMAIL", domainErr.Code)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewAdmin(" ", "alice@example.com", "secret1")

		require.Error(t, err)
	})
}

func TestChangePassword(t *testing.T) {
	admin, err := NewAdmin("Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	require.Error(t, admin.ChangePassword("short"))
	require.NoError(t, admin.ChangePassword("longer-secret"))
	assert.True(t, admin.VerifyPassword("longer-secret"))
	assert.False(t, admin.VerifyPassword("secret1"))
}
