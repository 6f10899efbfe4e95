package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"qc-case/backend/config"
	"qc-case/backend/internal/api/handler"
	"qc-case/backend/internal/api/middleware"
	"qc-case/backend/pkg/apperr"
	"qc-case/backend/pkg/redis"
)

// 請求體大小上限（對齊前端表單的實際負載規模）
const maxBodyBytes = 10 << 10 // 10KB

// Setup 初始化並返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	normalizer := apperr.NewNormalizer(cfg.Server.IsProduction())

	// ── 全局中間件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))
	r.Use(middleware.ErrorHandler(normalizer, logger))

	// ── 健康檢查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API ──
	api := r.Group("/api")
	api.Use(middleware.RateLimit(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window))
	{
		cases := api.Group("/cases")
		{
			cases.GET("", h.Case.ListCases)
			cases.GET("/:id", h.Case.GetCase)
			cases.POST("", h.Case.CreateCase)
			cases.PUT("/:id", h.Case.UpdateCase)
			cases.DELETE("/:id", h.Case.DeleteCase)
		}
	}

	// ── 未知路徑 ──
	r.NoRoute(func(c *gin.Context) {
		c.Error(apperr.New(fmt.Sprintf("找不到路徑: %s", c.Request.URL.Path), 404))
	})

	return r
}
