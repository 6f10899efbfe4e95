package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"qc-case/backend/internal/model"
)

// CaseFilter 列表查詢的過濾條件
// 只有白名單內的鍵會被寫入，未知查詢參數不可能到達此處
type CaseFilter struct {
	InspectionType string
	MarketType     string
	Department     string
	Inspector      string
	DefectCategory string
	StartDate      *time.Time // date >= StartDate
	EndDate        *time.Time // date <= EndDate
}

// CaseRepository 案件數據訪問接口
// 查無記錄時返回 gorm.ErrRecordNotFound，由呼叫端轉譯為業務錯誤
type CaseRepository interface {
	Create(ctx context.Context, c *model.Case) error
	List(ctx context.Context, filter *CaseFilter, offset, limit int) ([]model.Case, int64, error)
	GetByID(ctx context.Context, id string) (*model.Case, error)
	UpdateByID(ctx context.Context, id string, updates map[string]interface{}) (*model.Case, error)
	DeleteByID(ctx context.Context, id string) (*model.Case, error)
}

// caseRepo CaseRepository 的 GORM 實現
type caseRepo struct {
	db *gorm.DB
}

// NewCaseRepo 創建 CaseRepository 實例
func NewCaseRepo(db *gorm.DB) CaseRepository {
	return &caseRepo{db: db}
}

func (r *caseRepo) Create(ctx context.Context, c *model.Case) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// List 過濾後按建立時間倒序，再套用分頁窗口；總數以同一條件計算
func (r *caseRepo) List(ctx context.Context, filter *CaseFilter, offset, limit int) ([]model.Case, int64, error) {
	query := applyFilter(r.db.WithContext(ctx).Model(&model.Case{}), filter)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cases []model.Case
	err := query.Session(&gorm.Session{}).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&cases).Error
	if err != nil {
		return nil, 0, err
	}

	return cases, total, nil
}

func (r *caseRepo) GetByID(ctx context.Context, id string) (*model.Case, error) {
	var c model.Case
	err := r.db.WithContext(ctx).
		Where("case_id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateByID 局部更新：只寫入傳入的欄位，返回更新後的記錄
func (r *caseRepo) UpdateByID(ctx context.Context, id string, updates map[string]interface{}) (*model.Case, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		err = r.db.WithContext(ctx).
			Model(c).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}

	return r.GetByID(ctx, id)
}

// DeleteByID 刪除並返回被刪除的記錄；記錄不存在時返回 ErrRecordNotFound
func (r *caseRepo) DeleteByID(ctx context.Context, id string) (*model.Case, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Where("case_id = ?", id).
		Delete(&model.Case{}).Error
	if err != nil {
		return nil, err
	}

	return c, nil
}

func applyFilter(query *gorm.DB, filter *CaseFilter) *gorm.DB {
	if filter == nil {
		return query
	}
	if filter.InspectionType != "" {
		query = query.Where("inspection_type = ?", filter.InspectionType)
	}
	if filter.MarketType != "" {
		query = query.Where("market_type = ?", filter.MarketType)
	}
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}
	if filter.Inspector != "" {
		query = query.Where("inspector = ?", filter.Inspector)
	}
	if filter.DefectCategory != "" {
		query = query.Where("defect_category = ?", filter.DefectCategory)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	return query
}
