package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"kidstrainer/config"
	"kidstrainer/infras/otel/mocks"
	"kidstrainer/shared/cache"
	cacheMocks "kidstrainer/shared/cache/mocks"
	"kidstrainer/shared/constant"
	"kidstrainer/transport/http/middleware"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRequestID(t *testing.T) {
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, cache.NewNoopCache())

	t.Run("generated when absent", func(t *testing.T) {
		var seen string

		handler := mw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
	})

	t.Run("caller id is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "abc-123")

		rec := httptest.NewRecorder()
		mw.RequestID(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
	})
}

func TestTracingAndAccessLog(t *testing.T) {
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, cache.NewNoopCache())

	handler := mw.Tracing(mw.AccessLog(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trainers", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	tests := []struct {
		name      string
		setupMock func(m *cacheMocks.MockRedisCache)
		wantCode  int
		wantLeft  string
	}{
		{
			name: "first request",
			setupMock: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Incr(gomock.Any(), gomock.Any(), 60).Return(int64(1), nil)
			},
			wantCode: http.StatusOK,
			wantLeft: "1",
		},
		{
			name: "last request in the window",
			setupMock: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Incr(gomock.Any(), gomock.Any(), 60).Return(int64(2), nil)
			},
			wantCode: http.StatusOK,
			wantLeft: "0",
		},
		{
			name: "over the limit",
			setupMock: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Incr(gomock.Any(), gomock.Any(), 60).Return(int64(3), nil)
			},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name: "cache failure lets the request through",
			setupMock: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Incr(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection refused"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(mockCache)

			mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache)

			rec := httptest.NewRecorder()
			mw.RateLimit()(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantLeft, rec.Header().Get("X-RateLimit-Remaining"))
		})
	}
}

func TestRateLimit_ConcurrentRequests(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 5
	cfg.App.RateLimiter.WindowSeconds = 60

	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	var counter atomic.Int64
	mockCache.EXPECT().Incr(gomock.Any(), gomock.Any(), 60).
		DoAndReturn(func(context.Context, string, int) (int64, error) {
			return counter.Add(1), nil
		}).
		Times(20)

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache)
	handler := mw.RateLimit()(okHandler)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int64
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			if rec.Code == http.StatusOK {
				allowed.Add(1)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int64(5), allowed.Load())
}

func TestRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, mockCache)

	rec := httptest.NewRecorder()
	mw.RateLimit()(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet}

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache.NewNoopCache())

	req := httptest.NewRequest(http.MethodGet, "/trainers", nil)
	req.Header.Set("Origin", "https://example.com")

	rec := httptest.NewRecorder()
	mw.CORS()(okHandler).ServeHTTP(rec, req)

	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
