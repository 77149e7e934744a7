package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"careeriq/internal/pkg/jwt"
	"careeriq/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newApp(logger *zap.Logger, h fiber.Handler, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(logger).Middleware())
	app.Use(NewErrorMiddleware(logger).Middleware())
	for _, mw := range extra {
		app.Use(mw)
	}
	app.Get("/", h)
	return app
}

func call(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, response.SemanticResponse) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out response.SemanticResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return resp, out
}

func get(path string) *http.Request {
	return httptest.NewRequest(fiber.MethodGet, path, nil)
}

func TestErrorMiddleware_AppError(t *testing.T) {
	app := newApp(nil, func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusBadRequest, "Please enter at least one skill.", nil, errors.New("cause"))
	})

	resp, out := call(t, app, get("/"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please enter at least one skill.", out.Message)
}

func TestErrorMiddleware_HidesServerErrors(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	app := newApp(zap.New(core), func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "pq: relation missing", nil, errors.New("boom"))
	})

	resp, out := call(t, app, get("/"))
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, response.MessageInternalServerError, out.Message)
	assert.Equal(t, 1, logs.FilterMessage("request failed").Len())
}

func TestErrorMiddleware_PublicServerError(t *testing.T) {
	app := newApp(nil, func(c fiber.Ctx) error {
		return NewPublicError(fiber.StatusServiceUnavailable, "AI services are currently unavailable.", nil)
	})

	resp, out := call(t, app, get("/"))
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "AI services are currently unavailable.", out.Message)
}

func TestErrorMiddleware_FiberError(t *testing.T) {
	app := newApp(nil, func(c fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	resp, out := call(t, app, get("/"))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, fiber.ErrNotFound.Message, out.Message)
}

func TestErrorMiddleware_RecoversPanic(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	app := newApp(zap.New(core), func(c fiber.Ctx) error {
		panic("kaboom")
	})

	resp, out := call(t, app, get("/"))
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, response.MessageInternalServerError, out.Message)
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestAccessLog_RequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := newApp(zap.New(core), func(c fiber.Ctx) error {
		return response.Success(c, fiber.StatusOK, "", nil)
	})

	resp, _ := call(t, app, get("/"))
	rid := resp.Header.Get(HeaderRequestID)
	_, err := uuid.Parse(rid)
	require.NoError(t, err)

	req := get("/")
	req.Header.Set(HeaderRequestID, "abc-123")
	resp, _ = call(t, app, req)
	assert.Equal(t, "abc-123", resp.Header.Get(HeaderRequestID))

	entries := logs.FilterMessage("http access").All()
	require.Len(t, entries, 2)
	fields := entries[1].ContextMap()
	assert.Equal(t, "abc-123", fields["request_id"])
	assert.Equal(t, int64(fiber.StatusOK), fields["status"])
}

func TestAuthMiddleware(t *testing.T) {
	svc := jwt.NewHMACService("secret", time.Hour, "careeriq")
	id := uuid.New()
	tok, _, err := svc.GenerateAccessToken(id, "ada@example.com", "Ada")
	require.NoError(t, err)

	app := newApp(nil, func(c fiber.Ctx) error {
		return response.Success(c, fiber.StatusOK, "", map[string]any{
			"user_id": c.Locals(CtxUserIDKey).(uuid.UUID).String(),
			"email":   c.Locals(CtxEmailKey),
			"name":    c.Locals(CtxFullNameKey),
		})
	}, NewAuthMiddleware(svc).Middleware())

	t.Run("missing", func(t *testing.T) {
		resp, out := call(t, app, get("/"))
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Unauthorized", out.Message)
	})

	t.Run("garbage", func(t *testing.T) {
		req := get("/")
		req.Header.Set(fiber.HeaderAuthorization, "Bearer nope")
		resp, out := call(t, app, req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid token", out.Message)
	})

	t.Run("header", func(t *testing.T) {
		req := get("/")
		req.Header.Set(fiber.HeaderAuthorization, "bearer "+tok)
		resp, out := call(t, app, req)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		data := out.Data.(map[string]any)
		assert.Equal(t, id.String(), data["user_id"])
		assert.Equal(t, "ada@example.com", data["email"])
		assert.Equal(t, "Ada", data["name"])
	})

	t.Run("query", func(t *testing.T) {
		resp, _ := call(t, app, get("/?access_token="+tok))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestBearerTokenFromHeader(t *testing.T) {
	cases := []struct {
		in   string
		tok  string
		isOK bool
	}{
		{"", "", false},
		{"Bearer", "", false},
		{"Basic abc", "", false},
		{"Bearer   ", "", false},
		{"  Bearer abc  ", "abc", true},
	}
	for _, tc := range cases {
		tok, ok := bearerTokenFromHeader(tc.in)
		assert.Equal(t, tc.isOK, ok, tc.in)
		assert.Equal(t, tc.tok, tok, tc.in)
	}
}
