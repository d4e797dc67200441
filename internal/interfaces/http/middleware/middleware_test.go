package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklet-io/tracklet/internal/infrastructure/auth"
	"github.com/tracklet-io/tracklet/internal/infrastructure/ratelimit"
	"github.com/tracklet-io/tracklet/internal/shared/config"
	"github.com/tracklet-io/tracklet/internal/shared/constants"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockLimiter struct {
	AllowFunc func(ctx context.Context, key string, rule config.RateLimitRule) (ratelimit.Decision, error)
	keys      []string
}

func (m *mockLimiter) Allow(ctx context.Context, key string, rule config.RateLimitRule) (ratelimit.Decision, error) {
	m.keys = append(m.keys, key)
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, key, rule)
	}
	return ratelimit.Decision{Allowed: true}, nil
}

func (m *mockLimiter) Reset(ctx context.Context, key string) error {
	return nil
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body struct {
		Success bool           `json:"success"`
		Error   map[string]any `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Error
}

func newJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:           "middleware-secret",
		Issuer:           "tracklet",
		Audience:         "tracklet-users",
		AccessExpMinutes: 5,
	})
}

func TestRequireAuth(t *testing.T) {
	jwtService := newJWTService()
	token, _, err := jwtService.Generate(7, "admin")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid bearer token", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"no token", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/me", NewAuthMiddleware(jwtService, logger.NewNopLogger()).RequireAuth(), func(c *gin.Context) {
				id, ok := GetUserID(c)
				require.True(t, ok)
				c.JSON(http.StatusOK, gin.H{"id": id, "username": c.GetString(constants.ContextKeyUsername)})
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(constants.HeaderAuthorization, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"id":7,"username":"admin"}`, w.Body.String())
			} else {
				assert.NotEmpty(t, decodeError(t, w)["message"])
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyRequestID))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(constants.HeaderXRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderXRequestID, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(constants.HeaderXRequestID))
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:3000"}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(logger.NewNopLogger()))
	router.GET("/", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error occurred", decodeError(t, w)["message"])
}

func TestRateLimiter(t *testing.T) {
	rule := config.RateLimitRule{Limit: 5, WindowSeconds: 60}

	t.Run("allowed requests carry quota headers", func(t *testing.T) {
		limiter := &mockLimiter{AllowFunc: func(context.Context, string, config.RateLimitRule) (ratelimit.Decision, error) {
			return ratelimit.Decision{Allowed: true, Limit: 5, Remaining: 4}, nil
		}}
		router := gin.New()
		router.POST("/login", NewRateLimiter(limiter, rule, logger.NewNopLogger()).Limit(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
		assert.Len(t, limiter.keys, 1)
	})

	t.Run("denied requests get 429 and Retry-After", func(t *testing.T) {
		limiter := &mockLimiter{AllowFunc: func(context.Context, string, config.RateLimitRule) (ratelimit.Decision, error) {
			return ratelimit.Decision{Allowed: false, Limit: 5, RetryAfter: 42 * time.Second}, nil
		}}
		called := false
		router := gin.New()
		router.POST("/login", NewRateLimiter(limiter, rule, logger.NewNopLogger()).Limit(), func(c *gin.Context) {
			called = true
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))

		assert.False(t, called)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "42", w.Header().Get("Retry-After"))
		assert.Equal(t, "rate_limited", decodeError(t, w)["type"])
	})

	t.Run("store failure lets the request through", func(t *testing.T) {
		limiter := &mockLimiter{AllowFunc: func(context.Context, string, config.RateLimitRule) (ratelimit.Decision, error) {
			return ratelimit.Decision{}, fmt.Errorf("connection refused")
		}}
		router := gin.New()
		router.POST("/login", NewRateLimiter(limiter, rule, logger.NewNopLogger()).Limit(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	})
}
