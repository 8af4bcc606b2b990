// Package migration applies the embedded schema migrations.
package migration

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var ErrMigrationFailed = errors.New("migration failed")

// Up applies every pending migration. An already current schema is not an error.
//
// The database handle stays open; the caller keeps ownership of it.
func Up(ctx context.Context, db *sql.DB, logger zerolog.Logger) error {
	start := time.Now()
	log := logger.With().Str("component", "database").Logger()

	log.Info().Str("event", "db_migration_start").Msg("applying migrations")

	m, src, err := newMigrate(ctx, db)
	if err != nil {
		log.Error().Err(err).Str("event", "db_migration_failed").Dur("duration", time.Since(start)).Msg("migration setup failed")
		return err
	}
	defer src.Close()

	// Up blocks without a context; GracefulStop lets a cancelled ctx end it between steps.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			m.GracefulStop <- true
		case <-done:
		}
	}()

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Info().Str("event", "db_migration_skip").Dur("duration", time.Since(start)).Msg("schema already up to date")
		return nil
	case err != nil:
		log.Error().Err(err).Str("event", "db_migration_failed").Dur("duration", time.Since(start)).Msg("migration failed")
		return fmt.Errorf("%w: could not migrate up: %v", ErrMigrationFailed, err) //nolint:errorlint // keep driver errors out of the api
	}

	version, _, _ := m.Version()
	log.Info().
		Str("event", "db_migration_success").
		Uint("version", version).
		Dur("duration", time.Since(start)).
		Msg("migrations applied")
	return nil
}

func newMigrate(ctx context.Context, db *sql.DB) (*migrate.Migrate, interface{ Close() error }, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: could not create migration file driver: %v", ErrMigrationFailed, err) //nolint:errorlint
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		_ = src.Close()
		return nil, nil, fmt.Errorf("%w: could not get connection: %v", ErrMigrationFailed, err) //nolint:errorlint
	}

	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{}) //nolint:exhaustruct // use default config
	if err != nil {
		_ = conn.Close()
		_ = src.Close()
		return nil, nil, fmt.Errorf("%w: could not get database driver: %v", ErrMigrationFailed, err) //nolint:errorlint
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = driver.Close()
		_ = src.Close()
		return nil, nil, fmt.Errorf("%w: could not create new migration instance: %v", ErrMigrationFailed, err) //nolint:errorlint
	}
	return m, closerFunc(func() error {
		// driver.Close releases only the dedicated conn, never the pool.
		_ = driver.Close()
		return src.Close()
	}), nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
