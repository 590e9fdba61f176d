package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newIdempotentRouter(rdb *redis.Client, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/transactions", func(c *gin.Context) {
		c.Set(middleware.ValidatedUserIDKey, "user-1")
		c.Next()
	}, middleware.Idempotency(rdb), func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return r
}

func TestIdempotency(t *testing.T) {
	key := middleware.IdempotencyCacheKey("/transactions", "user-1", "abc")

	t.Run("first request runs and stores the response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := newIdempotentRouter(rdb, &calls)

		stored := []byte(`{"status":201,"body":{"ok":true}}`)

		mock.ExpectGet(key).RedisNil()
		mock.ExpectSetNX(key+":lock", "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(key, stored, 24*time.Hour).SetVal("OK")
		mock.ExpectDel(key + ":lock").SetVal(1)

		req := httptest.NewRequest(http.MethodPost, "/transactions", nil)
		req.Header.Set(middleware.IdempotencyHeader, "abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := newIdempotentRouter(rdb, &calls)

		mock.ExpectGet(key).SetVal(`{"status":201,"body":{"ok":true}}`)

		req := httptest.NewRequest(http.MethodPost, "/transactions", nil)
		req.Header.Set(middleware.IdempotencyHeader, "abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.Equal(t, 0, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in flight duplicate", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := newIdempotentRouter(rdb, &calls)

		mock.ExpectGet(key).RedisNil()
		mock.ExpectSetNX(key+":lock", "locked", 30*time.Second).SetVal(false)

		req := httptest.NewRequest(http.MethodPost, "/transactions", nil)
		req.Header.Set(middleware.IdempotencyHeader, "abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, calls)
	})

	t.Run("no key", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()
		calls := 0
		r := newIdempotentRouter(rdb, &calls)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/transactions", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
	})
}
