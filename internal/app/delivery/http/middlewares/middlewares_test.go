package middlewares

import (
	"bytes"
	"dental-hms/internal/app/config"
	"dental-hms/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares(app config.App) *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{App: app})
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := newTestMiddlewares(config.App{})

	var seen interface{}
	var isClient interface{}
	handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)
		isClient = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Keeps the client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/clinics", nil)
		req.Header.Set(constvars.HeaderXRequestID, "req-123")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, "req-123", seen)
		assert.Equal(t, true, isClient)
		assert.Equal(t, "req-123", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Generates an id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/clinics", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		generated, ok := seen.(string)
		assert.True(t, ok)
		assert.NotEmpty(t, generated)
		assert.Equal(t, false, isClient)
		assert.Equal(t, generated, rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler(t *testing.T) {
	middlewares := newTestMiddlewares(config.App{})

	handler := middlewares.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/clinics", nil)
	rr := httptest.NewRecorder()

	assert.NotPanics(t, func() { handler.ServeHTTP(rr, req) })
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":false`)
}

func TestBodyLimit(t *testing.T) {
	middlewares := newTestMiddlewares(config.App{RequestBodyLimitInMegabyte: 1})

	handler := middlewares.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Small body passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(`{"firstName":"Ana"}`))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Declared oversize body is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", bytes.NewReader(make([]byte, 2<<20)))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	})
}

func TestRateLimit(t *testing.T) {
	middlewares := newTestMiddlewares(config.App{MaxRequests: 2})

	handler := middlewares.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/clinics", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_BlocksUntilExpiry(t *testing.T) {
	limiter := NewRateLimiter(zap.NewNop(), 1, time.Minute, 10*time.Second)
	current := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	call := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reference/refresh", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusAccepted, call("10.0.0.1:1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:2"))
	assert.Equal(t, http.StatusAccepted, call("10.0.0.2:1"), "other clients keep their own bucket")

	current = current.Add(5 * time.Second)
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:3"), "still blocked")

	current = current.Add(time.Minute)
	assert.Equal(t, http.StatusAccepted, call("10.0.0.1:4"))
}
