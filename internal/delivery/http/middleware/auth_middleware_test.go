package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clinical-platform/config"
	"clinical-platform/internal/domain/entity"
	"clinical-platform/pkg/jwt"
)

func newTokenService(secret string, expiry time.Duration) *jwt.TokenService {
	return jwt.NewTokenService(config.JWTConfig{Secret: secret, Expiry: expiry})
}

func TestAuthenticate_InjectsPrincipal(t *testing.T) {
	tokenService := newTokenService("test-secret", time.Hour)
	token, err := tokenService.Generate(7, entity.RoleDoctor)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	mw := NewAuthMiddleware(tokenService)
	called := false
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		userID, ok := GetUserIDFromContext(r.Context())
		if !ok || userID != 7 {
			t.Fatalf("expected user id 7 in context, got %d (ok=%v)", userID, ok)
		}
		role, ok := GetRoleFromContext(r.Context())
		if !ok || role != entity.RoleDoctor {
			t.Fatalf("expected role medico in context, got %s (ok=%v)", role, ok)
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	tokenService := newTokenService("test-secret", time.Hour)
	validToken, _ := tokenService.Generate(7, entity.RolePatient)
	expiredToken, _ := newTokenService("test-secret", -time.Minute).Generate(7, entity.RolePatient)
	foreignToken, _ := newTokenService("other-secret", time.Hour).Generate(7, entity.RolePatient)

	tampered := validToken[:len(validToken)-2] + "xx"

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"no token part", "Bearer"},
		{"garbage token", "Bearer not.a.token"},
		{"tampered token", "Bearer " + tampered},
		{"expired token", "Bearer " + expiredToken},
		{"wrong secret", "Bearer " + foreignToken},
	}

	mw := NewAuthMiddleware(tokenService)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := mw.Authenticate(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				t.Fatalf("should not reach next handler")
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			if !strings.Contains(rec.Header().Get("Content-Type"), "application/json") {
				t.Fatalf("expected JSON error body")
			}
		})
	}
}
