// Package database wraps the sqlc generated queries with the connection
// pool, schema migrations and error classification.
package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers the pgx5:// scheme
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matt-dz/mealplan/internal/sql"
)

//go:generate mockgen -source=querier.go -destination=mock_querier.go -package=database

const (
	uniqueViolationCode = "23505"
	migrateScheme       = "pgx5"
)

type Pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

type Database struct {
	Querier

	Pool Pool
}

func NewDatabase(pool *pgxpool.Pool) *Database {
	return &Database{
		Querier: New(pool),
		Pool:    pool,
	}
}

// Close releases the underlying pool, if any.
func (d *Database) Close() {
	if d == nil || d.Pool == nil {
		return
	}
	d.Pool.Close()
}

// Migrate applies every pending migration to the database at uri.
func Migrate(uri string) error {
	source, err := iofs.New(sql.Migrations(), "migrations")
	if err != nil {
		return fmt.Errorf("opening migrations: %w", err)
	}

	migrateURI, err := migrationURI(uri)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, migrateURI)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}

// migrationURI rewrites a postgres:// connection string to the scheme
// registered by the golang-migrate pgx driver.
func migrationURI(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("parsing database uri: %w", err)
	}
	switch u.Scheme {
	case "postgres", "postgresql", migrateScheme:
	default:
		return "", fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}
	u.Scheme = migrateScheme
	return u.String(), nil
}

// IsUniqueViolation reports whether err is a Postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsNotFound reports whether err means a single-row query matched nothing.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
