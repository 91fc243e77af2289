package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tasker/config"
	"tasker/infras/otel/mocks"
	"tasker/shared/cache"
	cacheMocks "tasker/shared/cache/mocks"
	"tasker/transport/http/middleware"
)

func limiterConfig(enabled bool, maxRequests int) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enabled
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name       string
		cfg        *config.Config
		setupMock  func(mockCache *cacheMocks.MockRedisCache)
		wantStatus int
	}{
		{
			name:       "disabled limiter passes through",
			cfg:        limiterConfig(false, 0),
			setupMock:  func(mockCache *cacheMocks.MockRedisCache) {},
			wantStatus: http.StatusOK,
		},
		{
			name: "first request is allowed",
			cfg:  limiterConfig(true, 5),
			setupMock: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), 1, 60).
					Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "request over the limit is rejected",
			cfg:  limiterConfig(true, 5),
			setupMock: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*(value.(*int)) = 5

						return nil
					})
			},
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name: "cache read failure fails open",
			cfg:  limiterConfig(true, 5),
			setupMock: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("redis down"))
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "cache save failure fails open",
			cfg:  limiterConfig(true, 5),
			setupMock: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("redis down"))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(mockCache)

			appMiddleware := middleware.NewAppMiddleware(mocks.NewOtel(), tt.cfg, mockCache)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			req.Header.Set("User-Agent", "rate-limit-test")

			recorder := httptest.NewRecorder()
			appMiddleware.RateLimit()(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestRateLimit_SetsHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	appMiddleware := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(true, 5), mockCache)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)

	recorder := httptest.NewRecorder()
	appMiddleware.RateLimit()(next).ServeHTTP(recorder, req)

	assert.Equal(t, "5", recorder.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", recorder.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", recorder.Header().Get("X-RateLimit-Window"))
}
