package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"bookstore-catalog/internal/infrastructure/database"
)

// envReader parses typed variables and keeps every parse failure, so one
// run reports all bad keys.
type envReader struct {
	errs []error
}

func (r *envReader) integer(key string, def int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s: %w", key, err))
		return def
	}
	return v
}

func (r *envReader) duration(key string, def time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s: %w", key, err))
		return def
	}
	return v
}

func (r *envReader) err() error {
	return errors.Join(r.errs...)
}

// LoadDatabaseConfig reads the DB_* variables. Pool sizing and timeouts
// fall back to values suited to a single API instance.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	var env envReader

	cfg := &database.DBConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     env.integer("DB_PORT", 5432),
		Username: getEnv("DB_USER", "catalog"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "catalog_dev"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),

		MaxConns:          int32(env.integer("DB_MAX_CONNECTIONS", 25)),
		MinConns:          int32(env.integer("DB_MIN_CONNECTIONS", 5)),
		MaxConnLifetime:   env.duration("DB_MAX_CONN_LIFETIME", 5*time.Minute),
		MaxConnIdleTime:   env.duration("DB_MAX_CONN_IDLE_TIME", time.Minute),
		HealthCheckPeriod: env.duration("DB_HEALTH_CHECK_PERIOD", time.Minute),

		MaxRetries:     env.integer("DB_MAX_RETRIES", 5),
		RetryDelay:     env.duration("DB_RETRY_DELAY", time.Second),
		ConnectTimeout: env.duration("DB_CONNECT_TIMEOUT", 10*time.Second),
	}

	if err := env.err(); err != nil {
		return nil, err
	}

	switch {
	case cfg.MaxRetries < 1:
		return nil, fmt.Errorf("DB_MAX_RETRIES must be at least 1")
	case cfg.MinConns < 0 || cfg.MaxConns < cfg.MinConns:
		return nil, fmt.Errorf("DB_MIN_CONNECTIONS must be between 0 and DB_MAX_CONNECTIONS")
	}

	return cfg, nil
}
