package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
		wantMsg    string
	}{
		{"not found with id", NotFoundWithID("Office", "42"), CodeNotFound, http.StatusNotFound, "Office not found"},
		{"validation", Validation("invalid office", nil), CodeValidation, http.StatusUnprocessableEntity, "invalid office"},
		{"invalid input", InvalidInput("bad id"), CodeInvalidInput, http.StatusBadRequest, "bad id"},
		{"unauthorized", Unauthorized("missing token"), CodeUnauthorized, http.StatusUnauthorized, "missing token"},
		{"forbidden", Forbidden("role required"), CodeForbidden, http.StatusForbidden, "role required"},
		{"conflict", Conflict("office was modified"), CodeConflict, http.StatusConflict, "office was modified"},
		{"internal", Internal("boom", nil), CodeInternal, http.StatusInternalServerError, "boom"},
		{"timeout", Timeout("too slow"), CodeTimeout, http.StatusGatewayTimeout, "too slow"},
		{"unavailable", Unavailable("Database"), CodeUnavailable, http.StatusServiceUnavailable, "Database is temporarily unavailable"},
		{"payload too large", PayloadTooLarge(1024), CodePayloadTooLarge, http.StatusRequestEntityTooLarge, "request body exceeds 1024 bytes"},
		{"unsupported media type", UnsupportedMediaType("text/plain"), CodeUnsupportedMedia, http.StatusUnsupportedMediaType, `unsupported content type "text/plain", expected application/json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %s, want %s", tt.err.Code, tt.wantCode)
			}
			if tt.err.StatusCode() != tt.wantStatus {
				t.Errorf("StatusCode() = %d, want %d", tt.err.StatusCode(), tt.wantStatus)
			}
			if tt.err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.wantMsg)
			}
		})
	}
}

func TestNotFoundWithID_Details(t *testing.T) {
	err := NotFoundWithID("Office", "eca5e74c-3219-4004-b23d-3afc2137b482")

	if err.Details["id"] != "eca5e74c-3219-4004-b23d-3afc2137b482" {
		t.Errorf("expected id detail, got %v", err.Details["id"])
	}
	if err.Details["resource"] != "Office" {
		t.Errorf("expected resource 'Office', got %v", err.Details["resource"])
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without underlying error",
			appErr:   NotFoundWithID("Office", "42"),
			expected: "NOT_FOUND: Office not found",
		},
		{
			name:     "with underlying error",
			appErr:   Internal("internal error", errors.New("connection refused")),
			expected: "INTERNAL_ERROR: internal error (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("storage failure")
	appErr := Internal("wrapped", cause)

	if !errors.Is(appErr, cause) {
		t.Errorf("errors.Is should reach the wrapped cause")
	}
}

func TestAsAppError(t *testing.T) {
	notFound := NotFoundWithID("Office", "42")
	plain := errors.New("plain error")

	if got := AsAppError(notFound); got != notFound {
		t.Errorf("AsAppError() should return the same AppError")
	}

	wrapped := fmt.Errorf("handler: %w", notFound)
	if got := AsAppError(wrapped); got != notFound {
		t.Errorf("AsAppError() should find an AppError inside a wrapped chain")
	}

	got := AsAppError(plain)
	if got.Code != CodeInternal || got.Err != plain {
		t.Errorf("AsAppError() should wrap a plain error as internal, got %+v", got)
	}
}

func TestValidation_KeepsFieldDetails(t *testing.T) {
	err := Validation("invalid office", map[string]any{
		"city": "this field is required",
	})

	if err.Details["city"] != "this field is required" {
		t.Errorf("Details = %v, missing city", err.Details)
	}
	if !strings.HasPrefix(err.Error(), CodeValidation) {
		t.Errorf("Error() = %q, expected %s prefix", err.Error(), CodeValidation)
	}
}
