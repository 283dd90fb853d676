package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinical-platform/internal/domain/entity"
	"clinical-platform/internal/service"
)

func TestInternalKey_Allows(t *testing.T) {
	mw := NewInternalKeyMiddleware("machine-secret")
	called := false
	handler := mw.Verify(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(service.InternalKeyHeader, "machine-secret")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestInternalKey_Forbids(t *testing.T) {
	mw := NewInternalKeyMiddleware("machine-secret")

	tests := []struct {
		name string
		key  string
	}{
		{"missing header", ""},
		{"wrong key", "not-the-secret"},
		{"prefix only", "machine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := mw.Verify(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				t.Fatalf("should not reach next handler")
			}))

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.key != "" {
				req.Header.Set(service.InternalKeyHeader, tt.key)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %d", rec.Code)
			}
		})
	}
}

// A user token must never satisfy the machine gate.
func TestInternalKey_IgnoresBearerToken(t *testing.T) {
	mw := NewInternalKeyMiddleware("machine-secret")
	token, err := newTokenService("test-secret", time.Hour).Generate(1, entity.RoleAdmin)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	handler := mw.Verify(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatalf("should not reach next handler")
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for token-only request, got %d", rec.Code)
	}
}
