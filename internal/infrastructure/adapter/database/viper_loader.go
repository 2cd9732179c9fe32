package database

import (
	"strconv"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/config"
)

// FromAppConfig builds the connection settings from the loaded application config.
// Zero values in the file keep the DefaultConfig value; FC_DB_* overrides were
// already applied by the config loader.
func FromAppConfig(conf *config.Config) *Config {
	dbConf := DefaultConfig()
	src := conf.Database

	dbConf.Host = firstNonEmpty(src.Host, dbConf.Host)
	dbConf.Username = firstNonEmpty(src.Username, dbConf.Username)
	dbConf.Password = firstNonEmpty(src.Password, dbConf.Password)
	dbConf.Database = firstNonEmpty(src.Database, dbConf.Database)
	dbConf.SSLMode = firstNonEmpty(src.SSLMode, dbConf.SSLMode)
	dbConf.LogLevel = firstNonEmpty(conf.Logger.Level, dbConf.LogLevel)
	if port := ParsePort(src.Port); port > 0 {
		dbConf.Port = port
	}

	if src.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = src.MaxOpenConns
	}
	if src.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = src.MaxIdleConns
	}
	if src.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = src.ConnMaxLifetime
	}
	if src.ConnMaxIdleTime > 0 {
		dbConf.ConnMaxIdleTime = src.ConnMaxIdleTime
	}
	if src.QueryTimeout > 0 {
		dbConf.QueryTimeout = src.QueryTimeout
	}
	if src.RetryAttempts > 0 {
		dbConf.RetryAttempts = src.RetryAttempts
	}
	if src.RetryDelay > 0 {
		dbConf.RetryDelay = src.RetryDelay
	}
	return dbConf
}

// ParsePort converts a port string to an int, or 0 when it is not a valid port
func ParsePort(port string) int {
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
