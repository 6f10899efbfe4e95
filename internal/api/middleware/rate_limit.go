package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"qc-case/backend/pkg/apperr"
	"qc-case/backend/pkg/redis"
	"qc-case/backend/pkg/response"
)

// RateLimit 基於 Redis 計數窗口的速率限制中間件
// limit: 窗口內允許的最大請求數
// window: 窗口時長
// rdb 為 nil 或 Redis 出錯時降級放行，不因限流元件故障阻斷服務
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		allowed, err := rdb.CheckRateLimit(c.Request.Context(), c.ClientIP(), limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Fail(c, apperr.New("請求次數過多，請稍後再試", 429))
			c.Abort()
			return
		}

		c.Next()
	}
}
