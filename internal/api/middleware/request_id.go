package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMaxLen 限制外部傳入的 Request-ID 最大長度，防止日誌注入
const requestIDMaxLen = 64

// RequestID 請求追蹤 ID 中間件
// 從請求頭 X-Request-ID 讀取，若不存在則自動生成 UUID，
// 注入 gin.Context 並回寫響應頭
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}
