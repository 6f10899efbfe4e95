package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Case CaseRepository
}

// NewRepository 創建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Case: NewCaseRepo(db),
	}
}
