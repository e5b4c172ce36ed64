package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Idempotency guards POST endpoints against double submission. A replay of a
// completed request returns the cached response; a replay while the first
// request is still in flight is rejected with 409.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		userID := c.GetString("user_id")

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cachedRes any
			if err := json.Unmarshal([]byte(val), &cachedRes); err == nil {
				c.AbortWithStatusJSON(http.StatusOK, gin.H{"ok": true, "data": cachedRes, "replayed": true})
				return
			}
		}

		// Short lock expiry so a crashed request releases itself.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "A request with this idempotency key is still being processed",
			})
			return
		}

		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}

// StoreIdempotentResult caches the handler result and releases the lock.
// Handlers call this after a successful write.
func StoreIdempotentResult(c *gin.Context, rdb *redis.Client, result any) {
	cacheKey := c.GetString("idempotency_cache_key")
	lockKey := c.GetString("idempotency_lock_key")
	if cacheKey == "" || rdb == nil {
		return
	}

	if payload, err := json.Marshal(result); err == nil {
		rdb.Set(c.Request.Context(), cacheKey, payload, 24*time.Hour)
	}
	if lockKey != "" {
		rdb.Del(c.Request.Context(), lockKey)
	}
}
