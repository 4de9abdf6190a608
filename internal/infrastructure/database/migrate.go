package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

// MigrationTableName is the table goose records applied versions in.
const MigrationTableName = "schema_migrations"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// zerologGooseLogger routes goose output through zerolog. Fatalf does not
// exit; the error is returned from Migrate instead.
type zerologGooseLogger struct {
	log zerolog.Logger
}

func (l zerologGooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l zerologGooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Migrate applies every pending embedded migration to the database at dsn.
func Migrate(ctx context.Context, dsn string, log zerolog.Logger) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping migration connection: %w", err)
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(zerologGooseLogger{log: log})
	goose.SetTableName(MigrationTableName)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}
	log.Info().Int64("version", version).Msg("database schema up to date")
	return nil
}
