package auth

import (
	"errors"
	"fmt"
	"time"

	"LCA/internal/calc/impact"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidLink = errors.New("invalid report link")

type reportClaims struct {
	Request impact.Input `json:"req"`
	jwt.RegisteredClaims
}

// ReportSigner issues short-lived download links that carry the calculation
// request itself, so no generated file has to be kept on the server.
type ReportSigner struct {
	Key []byte
	TTL time.Duration
	Now func() time.Time
}

func (s *ReportSigner) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Sign returns a token for in and the reference id embedded in it.
func (s *ReportSigner) Sign(in impact.Input) (string, string, error) {
	if len(s.Key) == 0 {
		return "", "", fmt.Errorf("sign report link: empty key")
	}
	ref := uuid.NewString()
	now := s.now()
	claims := reportClaims{
		Request: in,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        ref,
			Subject:   "report",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Key)
	if err != nil {
		return "", "", fmt.Errorf("sign report link: %w", err)
	}
	return token, ref, nil
}

func (s *ReportSigner) Verify(tokenString string) (impact.Input, string, error) {
	var claims reportClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return s.Key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now), jwt.WithSubject("report"))
	if err != nil {
		return impact.Input{}, "", fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}
	return claims.Request, claims.ID, nil
}
