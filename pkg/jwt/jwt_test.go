package jwt

import (
	"strings"
	"testing"
	"time"

	"clinical-platform/config"
	"clinical-platform/internal/domain/entity"
)

func newTestService(secret string, expiry time.Duration) *TokenService {
	return NewTokenService(config.JWTConfig{Secret: secret, Expiry: expiry})
}

func TestTokenService_Roundtrip(t *testing.T) {
	svc := newTestService("test-secret", 8*time.Hour)

	token, err := svc.Generate(7, entity.RoleDoctor)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty string")
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.UserID != 7 {
		t.Fatalf("expected user id 7, got %d", claims.UserID)
	}
	if claims.Role != entity.RoleDoctor {
		t.Fatalf("expected role medico, got %s", claims.Role)
	}
}

func TestTokenService_RejectsTamperedToken(t *testing.T) {
	svc := newTestService("test-secret", 8*time.Hour)

	token, err := svc.Generate(7, entity.RoleDoctor)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	// Mutate a single character in the payload segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", token)
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := svc.Validate(tampered); err == nil {
		t.Fatalf("expected tampered token to be rejected")
	}
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	issuer := newTestService("secret-a", 8*time.Hour)
	verifier := newTestService("secret-b", 8*time.Hour)

	token, err := issuer.Generate(7, entity.RolePatient)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if _, err := verifier.Validate(token); err == nil {
		t.Fatalf("expected token signed with a different secret to be rejected")
	}
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	svc := newTestService("test-secret", -time.Minute)

	token, err := svc.Generate(7, entity.RoleAdmin)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if _, err := svc.Validate(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

// Services never share a runtime object, only the secret. Two
// independently constructed services must agree on every token.
func TestTokenService_CrossServiceVerification(t *testing.T) {
	authSide := newTestService("shared-secret", 8*time.Hour)
	appointmentsSide := newTestService("shared-secret", 8*time.Hour)

	token, err := authSide.Generate(42, entity.RolePatient)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	claims, err := appointmentsSide.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error on a second service instance: %v", err)
	}
	if claims.UserID != 42 || claims.Role != entity.RolePatient {
		t.Fatalf("claims diverged across services: %+v", claims)
	}
}
