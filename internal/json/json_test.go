package json

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type payload struct {
	Name string `json:"name"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   bool
		wantEmpty bool
	}{
		{name: "object", body: `{"name":"soup"}`},
		{name: "empty", body: ``, wantErr: true, wantEmpty: true},
		{name: "trailing data", body: `{"name":"soup"} {}`, wantErr: true},
		{name: "malformed", body: `{"name":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst payload
			err := DecodeJSON(&dst, json.NewDecoder(strings.NewReader(tt.body)))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.wantEmpty && !errors.Is(err, ErrEmptyBody) {
					t.Errorf("expected ErrEmptyBody, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if dst.Name != "soup" {
				t.Errorf("Name = %q, want soup", dst.Name)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	if err := WriteJSON(w, http.StatusCreated, payload{Name: "stew"}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"name":"stew"}` {
		t.Errorf("body = %s", got)
	}
}

func TestDecodeRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"pie"}`))
	var dst payload
	if err := DecodeRequest(httptest.NewRecorder(), r, &dst); err != nil {
		t.Fatalf("DecodeRequest() error = %v", err)
	}
	if dst.Name != "pie" {
		t.Errorf("Name = %q, want pie", dst.Name)
	}
}
