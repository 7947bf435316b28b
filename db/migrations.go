package db

import (
	"embed"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/clickhouse"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/postgres/*.sql migrations/clickhouse/*.sql
var migrationFiles embed.FS

// RunMigrations creates the sink tables for the database named by dsn.
func RunMigrations(dsn string) error {
	dir, databaseURL, err := migrationTarget(dsn)
	if err != nil {
		return err
	}

	source, err := iofs.New(migrationFiles, dir)
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Error().Err(srcErr).Msg("Failed to close migration source")
		}
		if dbErr != nil {
			log.Error().Err(dbErr).Msg("Failed to close migration database")
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("No migrations to apply")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Info().Msgf("Migrations from %s applied", dir)
	return nil
}

func migrationTarget(dsn string) (string, string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", "", fmt.Errorf("invalid storage DSN: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "postgres", "postgresql":
		return "migrations/postgres", dsn, nil
	case "clickhouse":
		q := u.Query()
		if q.Get("x-multi-statement") == "" {
			q.Set("x-multi-statement", "true")
		}
		if q.Get("x-migrations-table-engine") == "" {
			q.Set("x-migrations-table-engine", "MergeTree")
		}
		u.RawQuery = q.Encode()
		return "migrations/clickhouse", u.String(), nil
	default:
		return "", "", fmt.Errorf("migrations are not supported for scheme %q", u.Scheme)
	}
}
