package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeRequestID(t *testing.T) {
	assert.Equal(t, "req-1", NormalizeRequestID("req-1"))

	_, err := uuid.Parse(NormalizeRequestID(""))
	assert.NoError(t, err)

	_, err = uuid.Parse(NormalizeRequestID(strings.Repeat("x", maxRequestIDLength+1)))
	assert.NoError(t, err)
}

func TestGetRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := uuid.Parse(GetRequestID(c))
	assert.NoError(t, err)

	SetRequestID(c, "req-2")
	assert.Equal(t, "req-2", GetRequestID(c))
}

func TestScoped(t *testing.T) {
	base := slog.Default()

	ctx, logger := Scoped(context.Background(), base, "req-3")

	assert.Equal(t, "req-3", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLoggerOrDefault(ctx, base))
	assert.Same(t, base, GetLoggerOrDefault(context.Background(), base))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}
