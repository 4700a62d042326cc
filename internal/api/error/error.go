// Package error defines the JSON error envelope returned by the API.
package error

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/matt-dz/mealplan/internal/validation"
)

// Error is the body of every failed response.
type Error struct {
	Status  int                     `json:"status"`
	Code    ErrorCode               `json:"code"`
	Message string                  `json:"message"`
	ErrorID string                  `json:"error_id"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
} // @name Error

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

func New(code ErrorCode, message, errorID string) *Error {
	return &Error{
		Status:  code.StatusCode(),
		Code:    code,
		Message: message,
		ErrorID: errorID,
	}
}

func (e *Error) Encode(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	if err := json.NewEncoder(w).Encode(e); err != nil {
		return fmt.Errorf("encoding error body: %w", err)
	}
	return nil
}

func EncodeError(w http.ResponseWriter, code ErrorCode, message, errorID string) error {
	return New(code, message, errorID).Encode(w)
}

func EncodeInternalError(w http.ResponseWriter, errorID string) error {
	return EncodeError(w, InternalServerError, "internal server error", errorID)
}

// EncodeValidationError writes a 400 listing every field that failed.
func EncodeValidationError(w http.ResponseWriter, fieldErrors []validation.FieldError, errorID string) error {
	e := New(ValidationFailed, "validation failed", errorID)
	e.Errors = fieldErrors
	return e.Encode(w)
}
