package auth

import (
	"log/slog"
	"testing"
	"time"

	"courier/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_key_very_long_for_testing"

func newTestService(jwtSecret, serviceKey string) *jwtService {
	cfg := &config.Config{Auth: &config.AuthConfig{JWTSecret: jwtSecret, ServiceRoleKey: serviceKey}}

	return NewJWTService(cfg, slog.Default()).(*jwtService)
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestJWTService_ParseSubject(t *testing.T) {
	svc := newTestService(testSecret, "")
	userID := uuid.New()

	token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	got, err := svc.ParseSubject(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_ParseSubject_Rejects(t *testing.T) {
	svc := newTestService(testSecret, "")
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{
			name: "expired",
			token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
				Subject:   uuid.NewString(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			}),
		},
		{
			name: "missing expiry",
			token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
				Subject: uuid.NewString(),
			}),
		},
		{
			name: "wrong secret",
			token: sign(t, jwt.SigningMethodHS256, []byte("another-secret"), jwt.RegisteredClaims{
				Subject:   uuid.NewString(),
				ExpiresAt: future,
			}),
		},
		{
			name: "wrong algorithm",
			token: sign(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.RegisteredClaims{
				Subject:   uuid.NewString(),
				ExpiresAt: future,
			}),
		},
		{
			name: "subject not a uuid",
			token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
				Subject:   "service-role",
				ExpiresAt: future,
			}),
		},
		{name: "garbage", token: "clearly-not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseSubject(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestJWTService_NoSecret(t *testing.T) {
	svc := newTestService("", "")

	_, err := svc.ParseSubject("anything")
	assert.ErrorIs(t, err, ErrJWTNotConfigured)
}

func TestJWTService_IsServiceKey(t *testing.T) {
	svc := newTestService(testSecret, "svc-key")

	assert.True(t, svc.IsServiceKey("svc-key"))
	assert.False(t, svc.IsServiceKey("svc-key2"))
	assert.False(t, svc.IsServiceKey(""))

	assert.False(t, newTestService(testSecret, "").IsServiceKey(""))
}
