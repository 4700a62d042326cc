// Package auth contains handlers for the auth endpoints
package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	apiError "github.com/matt-dz/mealplan/internal/api/error"
	"github.com/matt-dz/mealplan/internal/api/requestid"
	"github.com/matt-dz/mealplan/internal/api/token"
	"github.com/matt-dz/mealplan/internal/argon2id"
	"github.com/matt-dz/mealplan/internal/database"
	"github.com/matt-dz/mealplan/internal/env"
	mJson "github.com/matt-dz/mealplan/internal/json"
	"github.com/matt-dz/mealplan/internal/password"
	"github.com/matt-dz/mealplan/internal/validation"
)

const invalidCredentialsMessage = "invalid email or password"

// hashParams is the cost new and upgraded password hashes are stored with.
var hashParams = argon2id.DefaultParams

// HandleSignup godoc
//
//	@Summary		Create an account
//	@Description	Registers a user and returns an access token for it.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SignupRequest	true	"New account"
//	@Success		201		{object}	AuthResponse
//	@Failure		400		{object}	apiError.Error	"Validation failed, weak password or email taken"
//	@Failure		500		{object}	apiError.Error	"Internal server error"
//	@Router			/api/auth/signup [post]
func HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	env.Logger.DebugContext(ctx, "decoding request")
	var req SignupRequest
	if err := mJson.DecodeRequest(w, r, &req); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "malformed request body", requestID)
		return
	}
	req = req.normalize()

	env.Logger.DebugContext(ctx, "validating request")
	errs := validation.Struct(req)
	passwordErr := password.ValidatePassword(req.Password)
	if errors.Is(passwordErr, password.ErrTooShort) && req.Password != "" {
		errs.Add("password", passwordErr.Error())
	}
	if len(errs) > 0 {
		env.Logger.DebugContext(ctx, "invalid signup request", slog.Any("errors", errs))
		_ = apiError.EncodeValidationError(w, errs, requestID)
		return
	}
	if passwordErr != nil {
		env.Logger.DebugContext(ctx, "weak password", slog.Any("error", passwordErr))
		_ = apiError.EncodeError(w, apiError.WeakPassword, password.ErrTooWeak.Error(), requestID)
		return
	}

	env.Logger.DebugContext(ctx, "hashing password")
	hash, err := argon2id.Generate(req.Password, hashParams)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "creating user")
	user, err := env.Database.CreateUser(ctx, database.CreateUserParams{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if database.IsUniqueViolation(err) {
		env.Logger.DebugContext(ctx, "email already registered")
		_ = apiError.EncodeError(w, apiError.EmailConflict, "User already exists", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	writeAuthResponse(w, r, http.StatusCreated, UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Verifies an email and password and returns an access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	AuthResponse
//	@Failure		400		{object}	apiError.Error	"Validation failed"
//	@Failure		401		{object}	apiError.Error	"Invalid credentials"
//	@Failure		500		{object}	apiError.Error	"Internal server error"
//	@Router			/api/auth/login [post]
func HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	env.Logger.DebugContext(ctx, "decoding request")
	var req LoginRequest
	if err := mJson.DecodeRequest(w, r, &req); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "malformed request body", requestID)
		return
	}
	req = req.normalize()
	if errs := validation.Struct(req); len(errs) > 0 {
		env.Logger.DebugContext(ctx, "invalid login request", slog.Any("errors", errs))
		_ = apiError.EncodeValidationError(w, errs, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "looking up user")
	user, err := env.Database.GetUserByEmail(ctx, req.Email)
	if database.IsNotFound(err) {
		env.Logger.DebugContext(ctx, "no user with email")
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, invalidCredentialsMessage, requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "comparing password")
	ok, err := argon2id.Verify(req.Password, user.PasswordHash)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to compare password hash", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if !ok {
		env.Logger.DebugContext(ctx, "password mismatch")
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, invalidCredentialsMessage, requestID)
		return
	}

	if argon2id.NeedsRehash(user.PasswordHash, hashParams) {
		env.Logger.DebugContext(ctx, "upgrading password hash")
		if err := rehash(r, user.ID, req.Password); err != nil {
			env.Logger.WarnContext(ctx, "failed to upgrade password hash", slog.Any("error", err))
		}
	}

	writeAuthResponse(w, r, http.StatusOK, UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

// HandleMe godoc
//
//	@Summary	Current user
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	UserResponse
//	@Failure	401	{object}	apiError.Error	"Missing, invalid or expired access token"
//	@Failure	500	{object}	apiError.Error	"Internal server error"
//	@Security	BearerAuth
//	@Router		/api/auth/me [get]
func HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	user, ok := token.UserFromCtx(ctx)
	if !ok {
		env.Logger.ErrorContext(ctx, "no user in context")
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusOK, UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

func writeAuthResponse(w http.ResponseWriter, r *http.Request, status int, user UserResponse) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	env.Logger.DebugContext(ctx, "issuing access token")
	accessToken, err := token.NewAccessToken(user.ID, env.Config)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to issue access token", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := mJson.WriteJSON(w, status, AuthResponse{Token: accessToken, User: user}); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// rehash stores plain under the current hash parameters. Login does not
// depend on it succeeding.
func rehash(r *http.Request, userID int64, plain string) error {
	hash, err := argon2id.Generate(plain, hashParams)
	if err != nil {
		return err
	}
	return env.EnvFromCtx(r.Context()).Database.UpdateUserPasswordHash(r.Context(),
		database.UpdateUserPasswordHashParams{ID: userID, PasswordHash: hash})
}
