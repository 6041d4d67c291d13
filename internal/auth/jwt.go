package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labkeep-dev/labkeep/internal/models"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrEmptySecretKey = errors.New("secret key cannot be empty")
	ErrWeakSecretKey  = errors.New("secret key must be at least 32 characters")
)

const (
	// SessionTTL is the lifetime of a normal login.
	SessionTTL = 24 * time.Hour
	// RememberTTL is the lifetime when the login form's remember-me
	// box is ticked.
	RememberTTL = 7 * 24 * time.Hour
)

// Claims are the session claims bound into every issued token.
type Claims struct {
	UserID   uint        `json:"user_id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and verifies the HS256 session tokens carried in the
// auth cookie.
type Service struct {
	secret []byte
}

func NewService(secret string) (*Service, error) {
	if secret == "" {
		return nil, ErrEmptySecretKey
	}
	if len(secret) < 32 {
		return nil, ErrWeakSecretKey
	}
	return &Service{secret: []byte(secret)}, nil
}

// Issue signs a session token for user. The returned duration is the
// token lifetime, which callers mirror into the cookie MaxAge.
func (s *Service) Issue(user models.User, remember bool) (string, time.Duration, error) {
	ttl := SessionTTL
	if remember {
		ttl = RememberTTL
	}

	now := time.Now()
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", 0, err
	}
	return token, ttl, nil
}

// Verify parses and validates a session token. Expired, forged and
// malformed tokens all fail closed.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
