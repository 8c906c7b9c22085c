package middlewares

import (
	"net/http"
	"os"
	"time"

	"villageconnect-be/config"

	"github.com/gin-gonic/gin"
)

// IssueRateLimiter caps how many issues a single client IP can file per day.
// Issue creation is public, so the key is the client address rather than an
// authenticated identity. Without Redis the limiter is a no-op.
func IssueRateLimiter(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.RedisClient == nil {
			c.Next()
			return
		}

		prefix := os.Getenv("REDIS_ISSUE_LIMIT_PREFIX")
		if prefix == "" {
			prefix = "issue-limit"
		}

		ctx := config.Ctx
		clientKey := prefix + ":" + c.ClientIP()

		count, err := config.RedisClient.Incr(ctx, clientKey).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Rate limiter unavailable"})
			c.Abort()
			return
		}

		// TTL starts with the first request in the window
		if count == 1 {
			if err := config.RedisClient.Expire(ctx, clientKey, 24*time.Hour).Err(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Rate limiter unavailable"})
				c.Abort()
				return
			}
		}

		if count > int64(limit) {
			retryAfter, _ := config.RedisClient.TTL(ctx, clientKey).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success":     false,
				"message":     "Rate limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
