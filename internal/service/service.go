package service

import (
	"go.uber.org/zap"

	"qc-case/backend/config"
	"qc-case/backend/internal/repository"
	"qc-case/backend/internal/validation"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Case CaseService
}

// NewService 創建 Service 聚合
func NewService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) *Service {
	registry := validation.NewRegistry(&cfg.Validation)
	return &Service{
		Case: NewCaseService(repo, registry, logger),
	}
}
