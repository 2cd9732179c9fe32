package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// Storage adapters
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "FC"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside local development
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.storage", StoragePostgres)
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("auth.issuer", "fantasy-cricket")
	v.SetDefault("auth.tokenTTL", 30) // minutes
	v.SetDefault("auth.bcryptCost", 12)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.leaderboardTTL", 30) // seconds

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.interval", 60) // seconds

	v.SetDefault("join.maxRetries", 3)
}

// getEnvironment determines the environment from FC_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides lets explicitly named environment variables win over file values.
// Secrets are expected to arrive this way in production.
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"FC_DB_STORAGE":     "database.storage",
		"FC_DB_HOST":        "database.host",
		"FC_DB_PORT":        "database.port",
		"FC_DB_USERNAME":    "database.username",
		"FC_DB_PASSWORD":    "database.password",
		"FC_DB_NAME":        "database.database",
		"FC_DB_SSL_MODE":    "database.sslMode",
		"FC_SERVER_HOST":    "server.host",
		"FC_LOGGER_LEVEL":   "logger.level",
		"FC_JWT_SECRET":     "auth.jwtSecret",
		"FC_REDIS_ADDR":     "redis.addr",
		"FC_REDIS_PASSWORD": "redis.password",
		"FC_ADMIN_USERNAME": "bootstrap.adminUsername",
		"FC_ADMIN_EMAIL":    "bootstrap.adminEmail",
		"FC_ADMIN_PASSWORD": "bootstrap.adminPassword",
	}
	for envName, key := range stringOverrides {
		if value := os.Getenv(envName); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"FC_SERVER_PORT":                   "server.port",
		"FC_DB_MAX_OPEN_CONNS":             "database.maxOpenConns",
		"FC_DB_MAX_IDLE_CONNS":             "database.maxIdleConns",
		"FC_DB_CONN_MAX_LIFETIME_MINUTES":  "database.connMaxLifetime",
		"FC_DB_CONN_MAX_IDLE_TIME_MINUTES": "database.connMaxIdleTime",
		"FC_DB_QUERY_TIMEOUT_SECONDS":      "database.queryTimeout",
		"FC_TOKEN_TTL_MINUTES":             "auth.tokenTTL",
		"FC_REDIS_DB":                      "redis.db",
		"FC_SCHEDULER_INTERVAL_SECONDS":    "scheduler.interval",
	}
	for envName, key := range intOverrides {
		if value := getEnvInt(envName, 0); value > 0 {
			v.Set(key, value)
		}
	}

	if value, ok := getEnvBool("FC_REDIS_ENABLED"); ok {
		v.Set("redis.enabled", value)
	}
	if value, ok := getEnvBool("FC_SCHEDULER_ENABLED"); ok {
		v.Set("scheduler.enabled", value)
	}
}

// getEnvInt reads an integer environment variable
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

func getEnvBool(name string) (bool, bool) {
	value, err := strconv.ParseBool(os.Getenv(name))
	if err != nil {
		return false, false
	}
	return value, true
}

// processDurations converts the raw numbers read from file into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Minute
	config.Redis.LeaderboardTTL = time.Duration(config.Redis.LeaderboardTTL) * time.Second
	config.Scheduler.Interval = time.Duration(config.Scheduler.Interval) * time.Second
}
