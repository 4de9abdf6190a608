package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"bookstore-catalog/internal/infrastructure/database"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config is the full application configuration, populated from the
// environment.
type Config struct {
	App       AppConfig
	Database  *database.DBConfig
	Migration MigrationConfig
	Redis     RedisConfig
	Auth      AuthConfig
	HTTP      HTTPConfig
	Catalog   CatalogConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
}

type MigrationConfig struct {
	AutoMigrate bool
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Password string
	DB       int
}

type AuthConfig struct {
	Enabled   bool
	Secret    string
	AccessTTL time.Duration
}

type HTTPConfig struct {
	AllowedOrigins []string
	// RateLimit is requests per second per client IP on write routes.
	// Zero disables limiting.
	RateLimit       float64
	RateBurst       int
	ShutdownTimeout time.Duration
}

type CatalogConfig struct {
	StorageDriver string
	// StrictWrites reports a failed update or delete as an internal error
	// instead of 204 No Content.
	StrictWrites bool
	// EnforceAuthorReference rejects books whose authorId does not exist.
	EnforceAuthorReference bool
}

func Load() (*Config, error) {
	db, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	accessTTL, err := time.ParseDuration(getEnv("JWT_ACCESS_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TTL: %w", err)
	}

	shutdown, err := time.ParseDuration(getEnv("HTTP_SHUTDOWN_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_SHUTDOWN_TIMEOUT: %w", err)
	}

	rateLimit, err := strconv.ParseFloat(getEnv("HTTP_RATE_LIMIT", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_RATE_LIMIT: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Bookstore Catalog API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Database: db,
		Migration: MigrationConfig{
			AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", true),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", true),
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			Enabled:   getEnvBool("AUTH_ENABLED", false),
			Secret:    getEnv("JWT_SECRET", defaultJWTSecret),
			AccessTTL: accessTTL,
		},
		HTTP: HTTPConfig{
			AllowedOrigins:  getEnvList("ALLOWED_ORIGINS"),
			RateLimit:       rateLimit,
			RateBurst:       getEnvInt("HTTP_RATE_BURST", 10),
			ShutdownTimeout: shutdown,
		},
		Catalog: CatalogConfig{
			StorageDriver:          strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverPostgres)),
			StrictWrites:           getEnvBool("CATALOG_STRICT_WRITES", false),
			EnforceAuthorReference: getEnvBool("CATALOG_ENFORCE_AUTHOR_REFERENCE", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Catalog.StorageDriver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q",
			StorageDriverPostgres, StorageDriverMemory, c.Catalog.StorageDriver)
	}

	if c.HTTP.RateLimit < 0 {
		return fmt.Errorf("HTTP_RATE_LIMIT must not be negative")
	}

	if c.App.Environment == "production" {
		if c.Auth.Enabled && c.Auth.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Catalog.StorageDriver == StorageDriverPostgres && c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}

	return nil
}

// IsMemoryStorage reports whether the catalog runs without PostgreSQL.
func (c *Config) IsMemoryStorage() bool {
	return c.Catalog.StorageDriver == StorageDriverMemory
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
