package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	PostgreSQL  PostgreSQLConfig
	Server      ServerConfig
	Session     SessionConfig
	Chat        ChatConfig
	Marketplace MarketplaceConfig
	Logging     LoggingConfig
}

// PostgreSQLConfig holds the optional catalog database configuration.
// With nothing configured the built-in product dataset is used instead.
type PostgreSQLConfig struct {
	DSN                string
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	Enabled            bool
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// SessionConfig selects where dialogue sessions live between turns.
type SessionConfig struct {
	Backend       string // "memory" or "redis"
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

// ChatConfig holds recommendation presentation settings
type ChatConfig struct {
	TopN    int
	MaxTopN int
}

// MarketplaceConfig holds the optional external augmentation source
// configuration. Disabled by default; the source is best-effort only.
type MarketplaceConfig struct {
	Enabled    bool
	BaseURL    string
	Timeout    time.Duration
	MaxResults int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "filter_catalog"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
		},
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
		},
		Session: SessionConfig{
			Backend:       getEnv("SESSION_BACKEND", "memory"),
			RedisAddr:     getEnv("SESSION_REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("SESSION_REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("SESSION_REDIS_DB", 0),
			TTL:           time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
		},
		Chat: ChatConfig{
			TopN:    getEnvAsInt("CHAT_TOP_N", 3),
			MaxTopN: getEnvAsInt("CHAT_MAX_TOP_N", 10),
		},
		Marketplace: MarketplaceConfig{
			Enabled:    getEnvAsBool("MARKETPLACE_ENABLED", false),
			BaseURL:    getEnv("MARKETPLACE_BASE_URL", "https://www.alibaba.com/trade/search"),
			Timeout:    time.Duration(getEnvAsInt("MARKETPLACE_TIMEOUT_SECONDS", 10)) * time.Second,
			MaxResults: getEnvAsInt("MARKETPLACE_MAX_RESULTS", 5),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	cfg.PostgreSQL.Enabled = cfg.PostgreSQL.DSN != "" || os.Getenv("PG_HOST") != ""

	return cfg, nil
}

// GetPostgreSQLDSN returns the PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default %t", key, defaultValue)
		return defaultValue
	}
	return value
}
