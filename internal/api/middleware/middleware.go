// Package middleware contains middleware functions for the API
package middleware

import (
	"errors"
	"log/slog"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
	"github.com/golang-jwt/jwt/v5"

	apiError "github.com/matt-dz/mealplan/internal/api/error"
	"github.com/matt-dz/mealplan/internal/api/requestid"
	"github.com/matt-dz/mealplan/internal/api/token"
	"github.com/matt-dz/mealplan/internal/database"
	"github.com/matt-dz/mealplan/internal/env"
	"github.com/matt-dz/mealplan/internal/log"
)

const corsMaxAge = 86400

// InjectEnv injects an environment struct into the request context.
func InjectEnv(environment *env.Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(env.WithCtx(r.Context(), environment)))
		})
	}
}

func LogRequest(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		LogExtraAttrs: func(r *http.Request, reqBody string, respStatus int) []slog.Attr {
			if id := requestid.ExtractRequestID(r.Context()); id != 0 {
				return []slog.Attr{slog.Uint64("log_id", id)}
			}
			return []slog.Attr{slog.String("log_id", "N/A")}
		},
	})
}

// AddRequestID adds a request ID to the request context.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := requestid.New()
		r = r.WithContext(log.AppendCtx(r.Context(), slog.Uint64("log_id", requestID)))
		r = r.WithContext(requestid.InjectRequestID(r.Context(), requestID))
		next.ServeHTTP(w, r)
	})
}

// Recover turns a panicking handler into a logged 500 with the JSON error
// envelope. It must run after InjectEnv so the panic is logged through the
// request's logger.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}
			ctx := r.Context()
			env.EnvFromCtx(ctx).Logger.ErrorContext(ctx, "handler panicked",
				slog.String("panic", fmt.Sprint(rec)),
				slog.String("stack", string(debug.Stack())))
			requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
			_ = apiError.EncodeInternalError(w, requestID)
		}()
		next.ServeHTTP(w, r)
	})
}

// Cors allows the configured frontend origin to call the API with a bearer
// token.
func Cors(origin string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
}

// RateLimit allows max requests per client IP in every window.
func RateLimit(max int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(max, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			env := env.EnvFromCtx(r.Context())
			requestID := strconv.FormatUint(requestid.ExtractRequestID(r.Context()), 10)
			env.Logger.WarnContext(r.Context(), "rate limit exceeded")
			_ = apiError.EncodeError(w, apiError.RateLimited,
				"too many requests, please try again later", requestID)
		}),
	)
}

// Authenticate verifies the bearer token and loads its user. The user id
// and user are stored in the request context.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		env := env.EnvFromCtx(ctx)
		requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

		raw, err := token.BearerToken(r)
		if err != nil {
			env.Logger.DebugContext(ctx, "no usable bearer token", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "not authorized, no token", requestID)
			return
		}

		userID, err := token.ValidateAccessToken(raw, env.Config)
		if errors.Is(err, token.ErrNoSecret) {
			env.Logger.ErrorContext(ctx, "app secret not loaded")
			_ = apiError.EncodeInternalError(w, requestID)
			return
		} else if errors.Is(err, jwt.ErrTokenExpired) {
			env.Logger.DebugContext(ctx, "access token expired", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.ExpiredAccessToken, "access token expired", requestID)
			return
		} else if err != nil {
			env.Logger.DebugContext(ctx, "invalid access token", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
			return
		}

		ctx = log.AppendCtx(ctx, slog.Int64("user-id", userID))
		env.Logger.DebugContext(ctx, "loading user")
		user, err := env.Database.GetUserByID(ctx, userID)
		if database.IsNotFound(err) {
			env.Logger.DebugContext(ctx, "user of access token not found")
			_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "user not found", requestID)
			return
		} else if err != nil {
			env.Logger.ErrorContext(ctx, "failed to load user", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}

		ctx = token.UserIDWithCtx(ctx, userID)
		ctx = token.UserWithCtx(ctx, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// NotFound answers unknown routes with the JSON error envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	requestID := strconv.FormatUint(requestid.ExtractRequestID(r.Context()), 10)
	_ = apiError.EncodeError(w, apiError.NotFound, "route not found", requestID)
}

// MethodNotAllowed answers known routes called with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	requestID := strconv.FormatUint(requestid.ExtractRequestID(r.Context()), 10)
	_ = apiError.EncodeError(w, apiError.MethodNotAllowed, "method not allowed", requestID)
}
