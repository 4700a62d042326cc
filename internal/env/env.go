// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"log/slog"

	"github.com/matt-dz/mealplan/internal/config"
	"github.com/matt-dz/mealplan/internal/database"
	"github.com/matt-dz/mealplan/internal/imagestore"
	"github.com/matt-dz/mealplan/internal/log"
)

type envKeyType struct{}

var envKey envKeyType

type Env struct {
	Logger   *slog.Logger
	Database *database.Database
	Config   *config.Config

	// Images is nil when no object store is configured.
	Images imagestore.Store
}

func New(lg *slog.Logger, db *database.Database, conf *config.Config, images imagestore.Store) *Env {
	if lg == nil {
		lg = log.NullLogger()
	}
	if conf == nil {
		conf = &config.Config{}
	}

	return &Env{
		Logger:   lg,
		Database: db,
		Config:   conf,
		Images:   images,
	}
}

func Null() *Env {
	return New(nil, nil, nil, nil)
}

// WithCtx stores env in ctx.
func WithCtx(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey, env)
}

// EnvFromCtx returns the Env stored in ctx, or a null Env when there is none.
func EnvFromCtx(ctx context.Context) *Env {
	if env, ok := ctx.Value(envKey).(*Env); ok && env != nil {
		return env
	}
	return Null()
}
