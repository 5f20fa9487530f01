package service

import (
	"time"

	"todo_backend/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried inside an access token: subject is the username,
// ID the numeric user id.
type Claims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 access tokens. The secret is
// injected at construction; rotating it invalidates all outstanding tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *TokenService) Issue(username string, userID int64) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify decodes the token and checks signature and expiry. Every failure
// mode collapses to ErrNotAuthenticated; no partially-trusted claims
// escape.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrNotAuthenticated
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrNotAuthenticated
	}
	if claims.Subject == "" || claims.UserID == 0 {
		return nil, domain.ErrNotAuthenticated
	}
	return claims, nil
}
