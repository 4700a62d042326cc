package error

import "net/http"

type ErrorCode string

const (
	UnknownError        ErrorCode = "unknown_error"
	InternalServerError ErrorCode = "internal_server_error"
	BadRequest          ErrorCode = "bad_request"
	ValidationFailed    ErrorCode = "validation_failed"
	InvalidCredentials  ErrorCode = "invalid_credentials"
	InvalidAccessToken  ErrorCode = "invalid_access_token"
	ExpiredAccessToken  ErrorCode = "expired_access_token"
	WeakPassword        ErrorCode = "weak_password"
	EmailConflict       ErrorCode = "email_conflict"
	RecipeNotFound      ErrorCode = "recipe_not_found"
	InvalidRecipes      ErrorCode = "invalid_recipes"
	MealPlanNotFound    ErrorCode = "meal_plan_not_found"
	MealPlanConflict    ErrorCode = "meal_plan_conflict"
	UnsupportedImage    ErrorCode = "unsupported_image"
	NotFound            ErrorCode = "not_found"
	MethodNotAllowed    ErrorCode = "method_not_allowed"
	RateLimited         ErrorCode = "rate_limited"
)

var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:        0, // No error code - unknown
	InternalServerError: http.StatusInternalServerError,
	BadRequest:          http.StatusBadRequest,
	ValidationFailed:    http.StatusBadRequest,
	InvalidCredentials:  http.StatusUnauthorized,
	InvalidAccessToken:  http.StatusUnauthorized,
	ExpiredAccessToken:  http.StatusUnauthorized,
	WeakPassword:        http.StatusBadRequest,
	EmailConflict:       http.StatusBadRequest,
	RecipeNotFound:      http.StatusNotFound,
	InvalidRecipes:      http.StatusBadRequest,
	MealPlanNotFound:    http.StatusNotFound,
	MealPlanConflict:    http.StatusBadRequest,
	UnsupportedImage:    http.StatusUnsupportedMediaType,
	NotFound:            http.StatusNotFound,
	MethodNotAllowed:    http.StatusMethodNotAllowed,
	RateLimited:         http.StatusTooManyRequests,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}
