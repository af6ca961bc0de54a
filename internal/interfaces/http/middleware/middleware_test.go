package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/erp/installment/internal/infrastructure/cache"
	"github.com/erp/installment/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(logger.RequestID(), BodyLimit(16))
	r.POST("/echo", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	t.Run("declared length over limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"comment":"far too long for the limit"}`))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), "REQUEST_TOO_LARGE")
	})

	t.Run("chunked body over limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"comment":"far too long for the limit"}`))
		req.ContentLength = -1
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("small body passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"a":1}`)))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSecure(t *testing.T) {
	r := gin.New()
	r.Use(Secure())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestProfiling_PassesThrough(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		r := gin.New()
		r.Use(Profiling(enabled))
		r.GET("/debts/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debts/abc", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}

type failingStore struct{}

func (failingStore) MarkProcessed(context.Context, string, time.Duration) (bool, error) {
	return false, errors.New("redis: connection refused")
}
func (failingStore) IsProcessed(context.Context, string) (bool, error) { return false, nil }
func (failingStore) Release(context.Context, string) error { return nil }
func (failingStore) Close() error { return nil }

func newIdempotentRouter(t *testing.T, status *int, calls *int) (*gin.Engine, *cache.MemoryIdempotencyStore) {
	t.Helper()
	store := cache.NewMemoryIdempotencyStore(time.Minute)
	t.Cleanup(func() { _ = store.Close() })

	r := gin.New()
	r.Use(logger.RequestID())
	r.POST("/payments", Idempotency(store, time.Hour, nil), func(c *gin.Context) {
		*calls++
		c.Status(*status)
	})
	return r, store
}

func post(r *gin.Engine, key string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payments", nil)
	if key != "" {
		req.Header.Set(HeaderIdempotencyKey, key)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	t.Run("replayed key is rejected without reaching the handler", func(t *testing.T) {
		status, calls := http.StatusCreated, 0
		r, _ := newIdempotentRouter(t, &status, &calls)

		assert.Equal(t, http.StatusCreated, post(r, "key-1").Code)
		w := post(r, "key-1")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "DUPLICATE_REQUEST")
		assert.Equal(t, 1, calls)

		assert.Equal(t, http.StatusCreated, post(r, "key-2").Code)
		assert.Equal(t, 2, calls)
	})

	t.Run("requests without a key are not deduplicated", func(t *testing.T) {
		status, calls := http.StatusCreated, 0
		r, store := newIdempotentRouter(t, &status, &calls)

		post(r, "")
		post(r, "")
		assert.Equal(t, 2, calls)
		assert.Zero(t, store.Len())
	})

	t.Run("failed request releases its key", func(t *testing.T) {
		status, calls := http.StatusUnprocessableEntity, 0
		r, store := newIdempotentRouter(t, &status, &calls)

		assert.Equal(t, http.StatusUnprocessableEntity, post(r, "retry-me").Code)
		assert.Zero(t, store.Len())

		status = http.StatusCreated
		assert.Equal(t, http.StatusCreated, post(r, "retry-me").Code)
		assert.Equal(t, 2, calls)
	})

	t.Run("oversized key", func(t *testing.T) {
		status, calls := http.StatusCreated, 0
		r, _ := newIdempotentRouter(t, &status, &calls)

		w := post(r, strings.Repeat("k", MaxIdempotencyKeyLength+1))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, calls)
	})

	t.Run("store failure", func(t *testing.T) {
		r := gin.New()
		calls := 0
		r.POST("/payments", Idempotency(failingStore{}, time.Hour, nil), func(c *gin.Context) {
			calls++
		})
		w := post(r, "k")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Zero(t, calls)
	})
}
