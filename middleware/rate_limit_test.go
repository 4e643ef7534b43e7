package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func rateLimitedCall(handler echo.HandlerFunc, addr string) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/calendario/agendar", nil)
	req.RemoteAddr = addr
	rec := httptest.NewRecorder()
	return handler(e.NewContext(req, rec))
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{Requests: 3, Window: time.Minute})
	handler := rl.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		assert.NoError(t, rateLimitedCall(handler, "203.0.113.7:1234"))
	}

	err := rateLimitedCall(handler, "203.0.113.7:1234")
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Minute})
	handler := rl.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// Same IP, different source port shares a bucket
	assert.NoError(t, rateLimitedCall(handler, "203.0.113.7:1234"))
	assert.Error(t, rateLimitedCall(handler, "203.0.113.7:9999"))

	// A different client is unaffected
	assert.NoError(t, rateLimitedCall(handler, "198.51.100.4:1234"))
}

func TestRateLimiterWindowReset(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{Requests: 1, Window: 20 * time.Millisecond})
	handler := rl.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, rateLimitedCall(handler, "203.0.113.7:1234"))
	assert.Error(t, rateLimitedCall(handler, "203.0.113.7:1234"))

	time.Sleep(30 * time.Millisecond)
	assert.NoError(t, rateLimitedCall(handler, "203.0.113.7:1234"))
}
