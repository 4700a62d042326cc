// Package setup is responsible for setting up components.
package setup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matt-dz/mealplan/internal/config"
	"github.com/matt-dz/mealplan/internal/database"
	"github.com/matt-dz/mealplan/internal/imagestore"
	"github.com/matt-dz/mealplan/internal/log"
)

const (
	componentDatabase   = "database"
	componentImageStore = "image store"
	componentLogger     = "logger"
)

// Logger builds the JSON logger at the configured level.
func Logger(conf *config.Config) (*slog.Logger, error) {
	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		return nil, NewComponentError(componentLogger, err)
	}
	return log.New(&slog.HandlerOptions{Level: level}), nil
}

// Database applies pending migrations and opens the connection pool.
func Database(ctx context.Context, conf *config.Config) (*database.Database, error) {
	if err := database.Migrate(conf.Database.URI); err != nil {
		return nil, NewComponentError(componentDatabase, err)
	}

	pool, err := pgxpool.New(ctx, conf.Database.URI)
	if err != nil {
		return nil, NewComponentError(componentDatabase, fmt.Errorf("creating database pool: %w", err))
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, NewComponentError(componentDatabase, fmt.Errorf("pinging database: %w", err))
	}

	return database.NewDatabase(pool), nil
}

// bucketEnsurer is implemented by *imagestore.ImageStore.
type bucketEnsurer interface {
	imagestore.Store
	EnsureBucket(ctx context.Context) error
}

// ImageStore connects to the object store and makes sure its bucket exists.
// It returns a nil Store when no object store is configured.
func ImageStore(ctx context.Context, conf *config.Config) (imagestore.Store, error) {
	if !conf.ObjectStore.Enabled() {
		return nil, nil
	}
	store, err := imagestore.New(conf.ObjectStore)
	if err != nil {
		return nil, NewComponentError(componentImageStore, err)
	}
	return ensureBucket(ctx, store)
}

func ensureBucket(ctx context.Context, store bucketEnsurer) (imagestore.Store, error) {
	if err := store.EnsureBucket(ctx); err != nil {
		return nil, NewComponentError(componentImageStore, err)
	}
	return store, nil
}
