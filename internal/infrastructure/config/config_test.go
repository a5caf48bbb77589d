package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "5001", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, 5*time.Minute, cfg.OTP.TTL)
	assert.Equal(t, 60*time.Second, cfg.OTP.ResendInterval)
	assert.Equal(t, 5, cfg.OTP.MaxAttempts)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.NotEmpty(t, cfg.JWT.Secret)
}

func TestApplyDefaultsProduction(t *testing.T) {
	cfg := &Config{App: AppConfig{Env: "production"}}
	applyDefaults(cfg)

	assert.Equal(t, "json", cfg.Log.Format)
	// No dev secret is injected in production
	assert.Empty(t, cfg.JWT.Secret)
}

func TestValidateProduction(t *testing.T) {
	base := func() *Config {
		cfg := &Config{App: AppConfig{Env: "production"}}
		applyDefaults(cfg)
		cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
		cfg.Database.Password = "strong-password"
		cfg.Database.SSLMode = "require"
		return cfg
	}

	t.Run("valid config passes", func(t *testing.T) {
		require.NoError(t, base().validate())
	})

	t.Run("missing jwt secret fails", func(t *testing.T) {
		cfg := base()
		cfg.JWT.Secret = ""
		require.Error(t, cfg.validate())
	})

	t.Run("short jwt secret fails", func(t *testing.T) {
		cfg := base()
		cfg.JWT.Secret = "short"
		require.Error(t, cfg.validate())
	})

	t.Run("sslmode disable fails", func(t *testing.T) {
		cfg := base()
		cfg.Database.SSLMode = "disable"
		require.Error(t, cfg.validate())
	})
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "store", Password: "pw", DBName: "storehub", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=store password=pw dbname=storehub sslmode=disable", d.DSN())
	assert.Equal(t, "postgres://store:pw@db:5432/storehub?sslmode=disable", d.URL())
}
