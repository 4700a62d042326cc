package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apiError "github.com/matt-dz/mealplan/internal/api/error"
	"github.com/matt-dz/mealplan/internal/api/token"
	"github.com/matt-dz/mealplan/internal/config"
	"github.com/matt-dz/mealplan/internal/database"
	"github.com/matt-dz/mealplan/internal/env"
	"github.com/matt-dz/mealplan/internal/log"

	"github.com/go-chi/chi/v5"
)

type nopStore struct{}

func (nopStore) PutRecipeCover(context.Context, int64, string, string, []byte) (string, error) {
	return "", nil
}

func (nopStore) DeleteURL(context.Context, string) error { return nil }

func testEnv() *env.Env {
	return env.New(log.NullLogger(), nil, &config.Config{
		CORS: config.CORS{Origin: "http://localhost:3000"},
		RateLimit: config.RateLimit{
			Window: config.Duration(time.Minute),
			Max:    100,
		},
	}, nil)
}

func TestNewRouter(t *testing.T) {
	tests := []struct {
		name           string
		env            *env.Env
		method         string
		path           string
		expectedStatus int
		expectedCode   apiError.ErrorCode
	}{
		{
			name:           "ping",
			env:            testEnv(),
			method:         http.MethodGet,
			path:           "/api/ping",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown route",
			env:            testEnv(),
			method:         http.MethodGet,
			path:           "/api/nope",
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiError.NotFound,
		},
		{
			name:           "wrong method",
			env:            testEnv(),
			method:         http.MethodPost,
			path:           "/api/ping",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedCode:   apiError.MethodNotAllowed,
		},
		{
			name:           "recipes need a token",
			env:            testEnv(),
			method:         http.MethodGet,
			path:           "/api/recipes",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiError.InvalidAccessToken,
		},
		{
			name:           "current meal plan needs a token",
			env:            testEnv(),
			method:         http.MethodGet,
			path:           "/api/meal-plans/current",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiError.InvalidAccessToken,
		},
		{
			name:           "me needs a token",
			env:            testEnv(),
			method:         http.MethodGet,
			path:           "/api/auth/me",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiError.InvalidAccessToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(tt.env)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedCode == "" {
				return
			}
			var e apiError.Error
			if err := json.NewDecoder(w.Body).Decode(&e); err != nil {
				t.Fatalf("failed to decode error: %v", err)
			}
			if e.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, e.Code)
			}
			if e.ErrorID == "" || e.ErrorID == "0" {
				t.Errorf("expected a request id, got %q", e.ErrorID)
			}
		})
	}
}

func TestImageRoute(t *testing.T) {
	hasImageRoute := func(e *env.Env) bool {
		found := false
		routes, ok := NewRouter(e).(chi.Routes)
		if !ok {
			t.Fatal("router does not expose its routes")
		}
		err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			if method == http.MethodPost && route == "/api/recipes/{id}/image" {
				found = true
			}
			return nil
		})
		if err != nil {
			t.Fatalf("walking routes: %v", err)
		}
		return found
	}

	if hasImageRoute(testEnv()) {
		t.Error("image route mounted without an object store")
	}

	withImages := testEnv()
	withImages.Images = nopStore{}
	if !hasImageRoute(withImages) {
		t.Error("image route missing with an object store")
	}
}

func TestNewRouter_PanicEnvelope(t *testing.T) {
	e := testEnv()
	secret := config.AppSecretValue("test-secret-32-bytes-long-123456")
	e.Config.AppSecret = config.AppSecret{
		Value:         &secret,
		Version:       "1",
		TokenLifetime: config.Duration(time.Hour),
	}
	// A database without a querier panics on the first query.
	e.Database = &database.Database{}

	accessToken, err := token.NewAccessToken(1, e.Config)
	if err != nil {
		t.Fatalf("failed to create access token: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
	req.Header.Set(token.AuthorizationHeader, "Bearer "+accessToken)
	w := httptest.NewRecorder()

	NewRouter(e).ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
	var body apiError.Error
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error: %v", err)
	}
	if body.Code != apiError.InternalServerError {
		t.Errorf("expected code %s, got %s", apiError.InternalServerError, body.Code)
	}
	if body.ErrorID == "" || body.ErrorID == "0" {
		t.Errorf("expected a request id, got %q", body.ErrorID)
	}
}
