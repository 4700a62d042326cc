// Package token contains utilities for http tokens.
package token

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/matt-dz/mealplan/internal/config"
	"github.com/matt-dz/mealplan/internal/database"
	"github.com/matt-dz/mealplan/internal/jwt"
)

const (
	AuthorizationHeader = "Authorization"
	bearerPrefix        = "bearer "
)

var (
	ErrMissingToken    = errors.New("missing bearer token")
	ErrMalformedHeader = errors.New("malformed authorization header")
	ErrNoSecret        = errors.New("app secret not loaded")
	ErrNoUserID        = errors.New("no user id in context")
)

type userIDKeyType struct{}

type userKeyType struct{}

var (
	userIDKey userIDKeyType
	userKey   userKeyType
)

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
func BearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get(AuthorizationHeader))
	if header == "" || strings.EqualFold(header, strings.TrimSpace(bearerPrefix)) {
		return "", ErrMissingToken
	}
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", ErrMalformedHeader
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// NewAccessToken signs an access token for userID with the configured app
// secret.
func NewAccessToken(userID int64, conf *config.Config) (string, error) {
	if conf == nil || conf.AppSecret.Value == nil {
		return "", ErrNoSecret
	}
	token, err := jwt.GenerateJWT(jwt.JWTParams{
		UserID:   userID,
		Duration: conf.AppSecret.TokenLifetime.Std(),
	}, []byte(*conf.AppSecret.Value), secretVersion(conf))
	if err != nil {
		return "", fmt.Errorf("generating access token: %w", err)
	}
	return token, nil
}

// ValidateAccessToken verifies raw and returns the user id it was issued
// for.
func ValidateAccessToken(raw string, conf *config.Config) (int64, error) {
	if conf == nil || conf.AppSecret.Value == nil {
		return 0, ErrNoSecret
	}
	token, err := jwt.ValidateJWT(raw, secretVersion(conf), []byte(*conf.AppSecret.Value))
	if err != nil {
		return 0, err
	}
	return jwt.UserID(token)
}

func secretVersion(conf *config.Config) string {
	if conf.AppSecret.Version == "" {
		return jwt.DefaultKID
	}
	return conf.AppSecret.Version
}

func UserIDWithCtx(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromCtx(ctx context.Context) (int64, error) {
	if v, ok := ctx.Value(userIDKey).(int64); ok {
		return v, nil
	}
	return 0, ErrNoUserID
}

func UserWithCtx(ctx context.Context, user database.GetUserByIDRow) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFromCtx(ctx context.Context) (database.GetUserByIDRow, bool) {
	user, ok := ctx.Value(userKey).(database.GetUserByIDRow)
	return user, ok
}
