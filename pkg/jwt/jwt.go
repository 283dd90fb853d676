package jwt

import (
	"errors"
	"time"

	"clinical-platform/config"
	"clinical-platform/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload shared by every service on the platform.
// A token is authoritative for its own lifetime: a later role change on
// the credential does not invalidate tokens already issued.
type Claims struct {
	UserID uint        `json:"id"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the platform capability token. Every
// service constructs it from the same shared secret; verification must
// behave identically in all of them.
type TokenService struct {
	config config.JWTConfig
}

func NewTokenService(cfg config.JWTConfig) *TokenService {
	return &TokenService{config: cfg}
}

// Generate signs a token binding the credential's id and role, valid for
// the configured expiry (8 hours by default). Expiry is the only
// lifecycle control; there is no refresh and no revocation.
func (s *TokenService) Generate(userID uint, role entity.Role) (string, error) {
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}

// Validate parses and verifies a signed token, returning its claims.
// Signature mismatch, expiry, and a non-HMAC signing method all fail.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	if !claims.Role.IsValid() {
		return nil, errors.New("unknown role in token")
	}

	return claims, nil
}

func (s *TokenService) GetExpiry() time.Duration {
	return s.config.Expiry
}
