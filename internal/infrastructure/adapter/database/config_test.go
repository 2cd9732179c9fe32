package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/config"
)

func TestFromAppConfig(t *testing.T) {
	for _, key := range []string{"FC_DB_HOST", "FC_DB_PORT", "FC_DB_USERNAME", "FC_DB_PASSWORD", "FC_DB_NAME", "FC_DB_SSL_MODE", "FC_LOGGER_LEVEL"} {
		t.Setenv(key, "")
	}

	t.Run("should take connection settings from the app config", func(t *testing.T) {
		// Arrange
		conf := &config.Config{
			Database: config.DatabaseConfig{
				Host:         "db.internal",
				Port:         "6432",
				Username:     "fc",
				Password:     "secret",
				Database:     "contests",
				SSLMode:      "require",
				MaxOpenConns: 40,
				QueryTimeout: 2 * time.Second,
			},
			Logger: config.LoggerConfig{Level: "debug"},
		}

		// Act
		dbConf := FromAppConfig(conf)

		// Assert
		require.NoError(t, dbConf.Validate())
		assert.Equal(t, "db.internal", dbConf.Host)
		assert.Equal(t, 6432, dbConf.Port)
		assert.Equal(t, "require", dbConf.SSLMode)
		assert.Equal(t, 40, dbConf.MaxOpenConns)
		assert.Equal(t, 2*time.Second, dbConf.QueryTimeout)
		assert.Equal(t, "debug", dbConf.LogLevel)
	})

	t.Run("should keep defaults for zero values", func(t *testing.T) {
		dbConf := FromAppConfig(&config.Config{Database: config.DatabaseConfig{Port: "not-a-port"}})

		assert.Equal(t, 0, dbConf.Port)
		assert.Equal(t, "disable", dbConf.SSLMode)
		assert.Equal(t, 25, dbConf.MaxOpenConns)
		assert.Equal(t, 3, dbConf.RetryAttempts)
		assert.Error(t, dbConf.Validate())
	})
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort(""))
	assert.Equal(t, 0, ParsePort("0"))
	assert.Equal(t, 0, ParsePort("70000"))
}

func TestPoolPressure(t *testing.T) {
	t.Run("should stay quiet on an idle pool", func(t *testing.T) {
		prev := sql.DBStats{MaxOpenConnections: 10, WaitCount: 4}
		cur := sql.DBStats{MaxOpenConnections: 10, InUse: 3, Idle: 7, WaitCount: 4}

		_, busy := poolPressure(prev, cur)

		assert.False(t, busy)
	})

	t.Run("should report new waits", func(t *testing.T) {
		prev := sql.DBStats{MaxOpenConnections: 10, WaitCount: 4, WaitDuration: time.Second}
		cur := sql.DBStats{MaxOpenConnections: 10, InUse: 2, WaitCount: 9, WaitDuration: 3 * time.Second}

		fields, busy := poolPressure(prev, cur)

		require.True(t, busy)
		assert.Equal(t, int64(5), fields["new_waits"])
		assert.Equal(t, "2s", fields["waited_for"])
	})

	t.Run("should report a saturated pool", func(t *testing.T) {
		cur := sql.DBStats{MaxOpenConnections: 10, InUse: 9, Idle: 1}

		fields, busy := poolPressure(cur, cur)

		require.True(t, busy)
		assert.Equal(t, 9, fields["in_use"])
	})
}
