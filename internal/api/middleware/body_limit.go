package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimit 全局請求體大小限制中間件
// maxBytes: 允許的最大請求體字節數（如 10<<10 = 10KB）
// 超限時讀取請求體會失敗，由處理器的解碼錯誤路徑回報
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
