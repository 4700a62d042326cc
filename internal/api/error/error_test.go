package error

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matt-dz/mealplan/internal/validation"
)

func TestEncodeError(t *testing.T) {
	tests := []struct {
		name       string
		code       ErrorCode
		wantStatus int
	}{
		{name: "not found", code: RecipeNotFound, wantStatus: http.StatusNotFound},
		{name: "conflict is a bad request", code: MealPlanConflict, wantStatus: http.StatusBadRequest},
		{name: "unauthorized", code: InvalidAccessToken, wantStatus: http.StatusUnauthorized},
		{name: "rate limited", code: RateLimited, wantStatus: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			if err := EncodeError(w, tt.code, "message", "12345"); err != nil {
				t.Fatalf("EncodeError() error = %v", err)
			}
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}

			var body Error
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if body.Code != tt.code || body.Status != tt.wantStatus || body.ErrorID != "12345" {
				t.Errorf("unexpected body %+v", body)
			}
		})
	}
}

func TestEncodeInternalError(t *testing.T) {
	w := httptest.NewRecorder()
	_ = EncodeInternalError(w, "1")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestEncodeValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	fieldErrors := []validation.FieldError{
		{Field: "name", Message: "name is required"},
		{Field: "servings", Message: "servings must be between 1 and 100"},
	}
	if err := EncodeValidationError(w, fieldErrors, "99"); err != nil {
		t.Fatalf("EncodeValidationError() error = %v", err)
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	var body Error
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Code != ValidationFailed {
		t.Errorf("code = %q, want %q", body.Code, ValidationFailed)
	}
	if len(body.Errors) != 2 || body.Errors[0].Field != "name" {
		t.Errorf("unexpected field errors %+v", body.Errors)
	}
}
