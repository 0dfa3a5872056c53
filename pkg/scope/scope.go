package scope

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"inventory-hub/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Manager issues and verifies session tokens.
type Manager interface {
	Issue(scope model.Scope) (string, error)
	Verify(token string) (model.Scope, error)
}

type claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type jwtManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager creates a Manager backed by HS256 JWTs.
func NewJWTManager(secret string, ttl time.Duration) Manager {
	return &jwtManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given scope. A fresh jti is assigned so the
// token can be individually revoked at logout.
func (m *jwtManager) Issue(scope model.Scope) (string, error) {
	now := time.Now()
	c := claims{
		Email: scope.Email,
		Role:  string(scope.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   scope.UserID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
}

// Verify parses and validates a token, returning the caller scope.
func (m *jwtManager) Verify(token string) (model.Scope, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return model.Scope{}, ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok {
		return model.Scope{}, ErrInvalidToken
	}

	return model.Scope{
		UserID:  c.Subject,
		Email:   c.Email,
		Role:    model.Role(c.Role),
		TokenID: c.ID,
	}, nil
}
