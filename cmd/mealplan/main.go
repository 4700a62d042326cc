//go:generate swag init --dir ../../ --generalInfo internal/api/api.go --output ../../docs --parseInternal

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matt-dz/mealplan/internal/api"
	"github.com/matt-dz/mealplan/internal/config"
	"github.com/matt-dz/mealplan/internal/env"
	"github.com/matt-dz/mealplan/internal/log"
	"github.com/matt-dz/mealplan/internal/setup"
)

const setupTime = 30 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.New(nil).Error("mealplan exited", slog.Any("error", err))
		os.Exit(1)
	}
}

// run builds every component from the environment and serves the API until
// ctx is cancelled.
func run(ctx context.Context) error {
	conf, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := &conf

	logger, err := setup.Logger(cfg)
	if err != nil {
		return fmt.Errorf("setting up logger: %w", err)
	}

	setupCtx, cancel := context.WithTimeout(ctx, setupTime)
	defer cancel()

	logger.DebugContext(ctx, "setting up database")
	db, err := setup.Database(setupCtx, cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}
	defer db.Close()

	logger.DebugContext(ctx, "setting up image store")
	images, err := setup.ImageStore(setupCtx, cfg)
	if err != nil {
		return fmt.Errorf("setting up image store: %w", err)
	}
	if images == nil {
		logger.Info("object store not configured, recipe image uploads disabled")
	}

	env := env.New(logger, db, cfg, images)
	if err := api.Start(ctx, env); err != nil {
		return fmt.Errorf("serving api: %w", err)
	}
	return nil
}
