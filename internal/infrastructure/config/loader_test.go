package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
  readTimeout: 5
  allowedOrigins:
    - http://localhost:3000
database:
  storage: memory
logger:
  level: debug
auth:
  jwtSecret: file-secret-file-secret-file-secret
  tokenTTL: 15
  bcryptCost: 4
scheduler:
  enabled: false
  interval: 30
`

// useConfigDir points the loader at a temporary configs directory holding test.yaml
func useConfigDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testYAML), 0o600))

	oldConfig, oldDotEnv := ConfigPaths, DotEnvPaths
	ConfigPaths = []string{dir}
	DotEnvPaths = nil
	t.Cleanup(func() {
		ConfigPaths, DotEnvPaths = oldConfig, oldDotEnv
	})
	t.Setenv("FC_ENV", "TEST")
}

func TestLoadConfig(t *testing.T) {
	t.Run("should read the environment file and apply defaults", func(t *testing.T) {
		// Arrange
		useConfigDir(t)

		// Act
		cfg, err := LoadConfig()

		// Assert
		require.NoError(t, err)
		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
		assert.Equal(t, StorageMemory, cfg.Database.Storage)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, "debug", cfg.Logger.Level)
		assert.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL)
		assert.Equal(t, "fantasy-cricket", cfg.Auth.Issuer)
		assert.False(t, cfg.Scheduler.Enabled)
		assert.Equal(t, 30*time.Second, cfg.Scheduler.Interval)
		assert.Equal(t, 30*time.Second, cfg.Redis.LeaderboardTTL)
		assert.Equal(t, 3, cfg.Join.MaxRetries)
	})

	t.Run("should let environment variables win", func(t *testing.T) {
		// Arrange
		useConfigDir(t)
		t.Setenv("FC_JWT_SECRET", "env-secret-env-secret-env-secret-env")
		t.Setenv("FC_SERVER_PORT", "7070")
		t.Setenv("FC_REDIS_ENABLED", "true")
		t.Setenv("FC_SCHEDULER_ENABLED", "true")
		t.Setenv("FC_TOKEN_TTL_MINUTES", "90")

		// Act
		cfg, err := LoadConfig()

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "env-secret-env-secret-env-secret-env", cfg.Auth.JWTSecret)
		assert.Equal(t, 7070, cfg.Server.Port)
		assert.True(t, cfg.Redis.Enabled)
		assert.True(t, cfg.Scheduler.Enabled)
		assert.Equal(t, 90*time.Minute, cfg.Auth.TokenTTL)
	})

	t.Run("should fail without a file for the environment", func(t *testing.T) {
		useConfigDir(t)
		t.Setenv("FC_ENV", "staging")

		_, err := LoadConfig()

		assert.Error(t, err)
	})
}
