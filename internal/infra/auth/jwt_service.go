// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/subtle"
	"log/slog"

	"courier/config"
	"courier/internal/domain/service"
	"courier/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrJWTNotConfigured is returned by ParseSubject when no signing secret is set.
var ErrJWTNotConfigured = errors.New("jwt secret not configured")

// jwtService verifies HS256 access tokens issued by the auth provider and recognizes the service key.
type jwtService struct {
	secret     []byte
	serviceKey []byte
	parser     *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
// Both keys are optional; a missing one simply never matches.
func NewJWTService(cfg *config.Config, logger *slog.Logger) service.TokenService {
	s := &jwtService{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}

	if cfg.Auth != nil {
		s.secret = []byte(cfg.Auth.JWTSecret)
		s.serviceKey = []byte(cfg.Auth.ServiceRoleKey)
	}

	if len(s.secret) == 0 && logger != nil {
		logger.Warn("auth.jwtSecret not set, user bearer tokens will be rejected")
	}

	return s
}

// ParseSubject validates signature and expiry and returns the sub claim as a user ID.
func (s *jwtService) ParseSubject(tokenString string) (uuid.UUID, error) {
	if len(s.secret) == 0 {
		return uuid.Nil, ErrJWTNotConfigured
	}

	claims := &jwt.RegisteredClaims{}
	if _, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}); err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid bearer token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "token subject is not a user id")
	}

	return userID, nil
}

// IsServiceKey compares in constant time.
func (s *jwtService) IsServiceKey(tokenString string) bool {
	if len(s.serviceKey) == 0 || tokenString == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(tokenString), s.serviceKey) == 1
}
