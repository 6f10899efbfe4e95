package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"qc-case/backend/pkg/apperr"
	"qc-case/backend/pkg/response"
)

// ErrorHandler 錯誤正規化中間件
// 處理器將錯誤推入 c.Errors 後直接返回；此處取最後一個錯誤，
// 經正規化器映射為統一錯誤形狀後輸出，保證五個操作共用同一契約。
// 非預期錯誤（IsOperational 未設置）完整記錄於日誌，
// 但對客戶端的揭露程度由正規化器依運行模式決定
func ErrorHandler(normalizer *apperr.Normalizer, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		appErr := normalizer.Normalize(err)

		if !appErr.IsOperational {
			logger.Error("未預期錯誤",
				zap.Error(err),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
		}

		response.Fail(c, appErr)
	}
}
