package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"choreboard/config"
	"choreboard/infras/otel/mocks"
	cacheMocks "choreboard/shared/cache/mocks"
	"choreboard/shared/constant"
	"choreboard/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAppMiddleware(t *testing.T, cfg *config.Config) (middleware.AppMiddleware, *cacheMocks.MockRedisCache, *mocks.Otel) {
	t.Helper()

	cache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
	ot := mocks.NewOtel()

	return middleware.NewAppMiddleware(ot, cfg, cache), cache, ot
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRecover(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"error value", errors.New("nil map write")},
		{"non error value", "index out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, _, _ := newAppMiddleware(t, &config.Config{})

			handler := mw.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				panic(tt.value)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chores", nil))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
			assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
		})
	}

	t.Run("aborted handler keeps panicking", func(t *testing.T) {
		mw, _, _ := newAppMiddleware(t, &config.Config{})

		handler := mw.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/chores", nil))
		})
	})

	t.Run("no panic passes through", func(t *testing.T) {
		mw, _, _ := newAppMiddleware(t, &config.Config{})

		rec := httptest.NewRecorder()
		mw.Recover(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chores", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func rateLimited(maxRequests int) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	newRequest := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/chores", nil)
		req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 10.0.0.2")
		req.Header.Set(constant.RequestHeaderUserAgent, "chorectl")

		return req
	}

	t.Run("within and over the limit", func(t *testing.T) {
		mw, cache, _ := newAppMiddleware(t, rateLimited(2))

		gomock.InOrder(
			cache.EXPECT().Increment(gomock.Any(), "limiter:10.0.0.1:chorectl", 60*time.Second).Return(int64(2), nil),
			cache.EXPECT().Increment(gomock.Any(), "limiter:10.0.0.1:chorectl", 60*time.Second).Return(int64(3), nil),
		)

		handler := mw.RateLimit()(okHandler)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest())
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
		assert.Equal(t, "0", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		assert.Equal(t, "60", rec.Header().Get(constant.RequestHeaderRateLimitWindow))

		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest())
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
	})

	t.Run("cache failure lets the request through", func(t *testing.T) {
		mw, cache, _ := newAppMiddleware(t, rateLimited(2))

		cache.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("redis down"))

		rec := httptest.NewRecorder()
		mw.RateLimit()(okHandler).ServeHTTP(rec, newRequest())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
	})

	t.Run("disabled", func(t *testing.T) {
		mw, cache, _ := newAppMiddleware(t, &config.Config{})

		cache.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		rec := httptest.NewRecorder()
		mw.RateLimit()(okHandler).ServeHTTP(rec, newRequest())

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCORS(t *testing.T) {
	preflight := func() *http.Request {
		req := httptest.NewRequest(http.MethodOptions, "/chores/create", nil)
		req.Header.Set("Origin", "http://dashboard.test")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		return req
	}

	t.Run("enabled", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.App.CORS.Enable = true
		cfg.App.CORS.AllowedOrigins = []string{"http://dashboard.test"}
		cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

		mw, _, _ := newAppMiddleware(t, cfg)

		rec := httptest.NewRecorder()
		mw.CORS()(okHandler).ServeHTTP(rec, preflight())

		assert.Equal(t, "http://dashboard.test", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disabled", func(t *testing.T) {
		mw, _, _ := newAppMiddleware(t, &config.Config{})

		rec := httptest.NewRecorder()
		mw.CORS()(okHandler).ServeHTTP(rec, preflight())

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestTracingRecordsServerErrors(t *testing.T) {
	mw, _, ot := newAppMiddleware(t, &config.Config{})

	router := chi.NewRouter()
	router.Use(mw.Tracing)
	router.Get("/chores/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	router.Get("/lists", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/lists", nil))
	assert.Empty(t, ot.Errors())

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/chores/7", nil))
	require.Len(t, ot.Errors(), 1)
	assert.EqualError(t, ot.Errors()[0], "Internal Server Error")
}
