package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bdgaraj/config"
	deliverycontext "bdgaraj/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidRequestID(t *testing.T) {
	assert.True(t, validRequestID("req-123"))
	assert.False(t, validRequestID(""))
	assert.False(t, validRequestID("has space"))
	assert.False(t, validRequestID("line\nbreak"))
	assert.False(t, validRequestID(strings.Repeat("a", maxRequestIDLength+1)))
}

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.GET("/", func(c echo.Context) error {
		ctx := c.Request().Context()
		deliverycontext.LoggerOrDefault(ctx, nil).Info("inside")

		return c.String(http.StatusOK, deliverycontext.RequestIDFromContext(ctx))
	})

	t.Run("reuses a sane client id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-id", rec.Body.String())
		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "client-id", line["request_id"])
	})

	t.Run("replaces an unusable id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "bad id")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		id := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.NotEqual(t, "bad id", id)
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})
}

func TestLoggerMiddleware(t *testing.T) {
	newServer := func(debug bool) (*echo.Echo, *bytes.Buffer) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		cfg := &config.Config{}
		cfg.Env.Debug = debug

		e := echo.New()
		e.Use(NewLoggerMiddleware(logger, cfg).Handle)
		e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		e.GET("/missing", func(echo.Context) error { return echo.ErrNotFound })

		return e, &buf
	}

	serve := func(e *echo.Echo, path string) int {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		return rec.Code
	}

	t.Run("quiet on success outside debug", func(t *testing.T) {
		e, buf := newServer(false)
		assert.Equal(t, http.StatusOK, serve(e, "/ok"))
		assert.Empty(t, buf.String())
	})

	t.Run("failures are logged with the rendered status", func(t *testing.T) {
		e, buf := newServer(false)
		assert.Equal(t, http.StatusNotFound, serve(e, "/missing"))

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "WARN", line["level"])
		assert.EqualValues(t, http.StatusNotFound, line["status"])
		assert.Equal(t, "/missing", line["route"])
	})

	t.Run("debug logs successes but not health probes", func(t *testing.T) {
		e, buf := newServer(true)
		serve(e, "/health")
		assert.Empty(t, buf.String())

		serve(e, "/ok")
		assert.Contains(t, buf.String(), `"route":"/ok"`)
	})
}
