package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	// ErrTokenExpired: signature fine, expiry in the past.
	ErrTokenExpired = errors.New("auth: token expired")
	// ErrTokenInvalid: malformed token or bad signature.
	ErrTokenInvalid = errors.New("auth: invalid token")
)

// TokenService issues and validates the operator session token: a signed
// HS256 JWT with a 1-hour absolute expiry and no refresh. The server keeps
// no session table; validity is purely cryptographic.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: time.Hour}
}

func (s *TokenService) TTL() time.Duration { return s.ttl }

func (s *TokenService) Issue(username string) (string, error) {
	return s.IssueWithTTL(username, s.ttl)
}

func (s *TokenService) IssueWithTTL(username string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user": username,
		"exp":  time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *TokenService) Validate(tokenString string) error {
	_, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return ErrTokenInvalid
	}
	return nil
}
