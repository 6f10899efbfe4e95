package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"qc-case/backend/config"
	"qc-case/backend/internal/api/handler"
	"qc-case/backend/internal/api/router"
	"qc-case/backend/internal/repository"
	"qc-case/backend/internal/service"
	"qc-case/backend/pkg/database"
	applogger "qc-case/backend/pkg/logger"
	"qc-case/backend/pkg/redis"
)

func main() {
	// 1. 加載配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加載配置失敗: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日誌
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日誌失敗: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("應用啟動中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
	)

	// 3. 連接資料庫
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("資料庫連接失敗", zap.Error(err))
	}

	// 3.1 執行資料庫遷移
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("獲取底層 sql.DB 失敗", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("資料庫遷移失敗", zap.Error(err))
	}

	// 4. 連接 Redis（可選：連接失敗時降級運行，速率限制不可用）
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 連接失敗，速率限制功能將不可用", zap.Error(err))
		rdb = nil
	}

	// 5. 依賴注入: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, logger)
	h := handler.NewHandler(svc)

	// 6. 初始化路由
	engine := router.Setup(cfg, h, rdb, logger)

	// 7. 啟動 HTTP 伺服器（優雅關閉）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 伺服器已啟動", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 伺服器異常", zap.Error(err))
		}
	}()

	// 8. 監聽系統信號，優雅關閉
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到關閉信號，開始優雅關閉...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("伺服器關閉異常", zap.Error(err))
	}

	if closeDB, err := db.DB(); err == nil && closeDB != nil {
		closeDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("伺服器已關閉")
}
