package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"courier/internal/domain/constants"
	"courier/internal/errors"
	mockUc "courier/internal/mocks/usecase"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/api/idtoken"
)

func newVerifyingHandler(t *testing.T, validate tokenValidator) (*PushHandler, *mockUc.MockPushWorkerUsecase) {
	t.Helper()

	worker := mockUc.NewMockPushWorkerUsecase(t)

	return &PushHandler{
		verifyPushAuth: true,
		webhookSecret:  "hook-secret",
		validate:       validate,
		pushWorker:     worker,
		logger:         slog.New(slog.DiscardHandler),
	}, worker
}

func servePush(h *PushHandler, headers map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "http://worker.internal/push", strings.NewReader(`{"message":{"data":""}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush_Verification(t *testing.T) {
	googleToken := func(issuer string, verified bool) tokenValidator {
		return func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			if token != "good" {
				return nil, errors.New("bad signature")
			}
			if audience != "http://worker.internal/push" {
				return nil, errors.Errorf("unexpected audience %s", audience)
			}

			return &idtoken.Payload{Issuer: issuer, Claims: map[string]any{"email_verified": verified}}, nil
		}
	}

	t.Run("missing token", func(t *testing.T) {
		h, _ := newVerifyingHandler(t, googleToken("accounts.google.com", true))

		assert.Equal(t, http.StatusUnauthorized, servePush(h, nil).Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		h, _ := newVerifyingHandler(t, googleToken("accounts.google.com", true))

		rec := servePush(h, map[string]string{echo.HeaderAuthorization: "Bearer forged"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := newVerifyingHandler(t, googleToken("https://evil.example", true))

		rec := servePush(h, map[string]string{echo.HeaderAuthorization: "Bearer good"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unverified email", func(t *testing.T) {
		h, _ := newVerifyingHandler(t, googleToken("accounts.google.com", false))

		rec := servePush(h, map[string]string{echo.HeaderAuthorization: "Bearer good"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid google token", func(t *testing.T) {
		h, worker := newVerifyingHandler(t, googleToken("https://accounts.google.com", true))
		worker.EXPECT().Drain(mock.Anything, 0).Return(&usecase.DrainResult{}, nil).Once()

		rec := servePush(h, map[string]string{echo.HeaderAuthorization: "Bearer good"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("webhook secret skips token verification", func(t *testing.T) {
		h, worker := newVerifyingHandler(t, googleToken("accounts.google.com", true))
		worker.EXPECT().Drain(mock.Anything, 0).Return(&usecase.DrainResult{}, nil).Once()

		rec := servePush(h, map[string]string{constants.HeaderWebhookSecret: "hook-secret"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer  abc"))
	assert.Empty(t, bearerToken("Basic abc"))
	assert.Empty(t, bearerToken("Bearer"))
}

func TestSecretMatches(t *testing.T) {
	assert.True(t, secretMatches("s3", "s3"))
	assert.False(t, secretMatches("s3", "s4"))
	assert.False(t, secretMatches("", ""))
	assert.False(t, secretMatches("s3", ""))
}
