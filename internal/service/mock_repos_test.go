package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"qc-case/backend/internal/model"
	"qc-case/backend/internal/repository"
)

// ── Mock CaseRepository ──

// 預置案件的識別碼（合法 UUID，識別碼格式驗證在倉儲之前）
const seedCaseID = "5b8f1c2e-7d3a-4e9b-8c1f-2a6d4e8b0c35"

type mockCaseRepo struct {
	cases map[string]*model.Case
	seq   int

	createCalls int
	listCalls   int
	getCalls    int
}

func newMockCaseRepo() *mockCaseRepo {
	m := &mockCaseRepo{cases: make(map[string]*model.Case)}
	m.cases[seedCaseID] = &model.Case{
		CaseID:          seedCaseID,
		InspectionType:  "首件",
		MarketType:      "內銷",
		Customer:        "測試客戶",
		Department:      "塑膠射出課",
		Date:            time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Time:            "08:30",
		WorkOrder:       "WO-SEED",
		ProductNumber:   "P-001",
		ProductName:     "測試品",
		Quantity:        100,
		InspectionHours: 1.5,
		Timestamps: model.Timestamps{
			CreatedAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		},
	}
	return m
}

func (m *mockCaseRepo) Create(_ context.Context, c *model.Case) error {
	m.createCalls++

	// 模擬 uq_cases_work_order 部分唯一索引
	if c.WorkOrder != "" {
		for _, existing := range m.cases {
			if existing.WorkOrder == c.WorkOrder {
				return &pgconn.PgError{
					Code:   "23505",
					Detail: fmt.Sprintf("Key (work_order)=(%s) already exists.", c.WorkOrder),
				}
			}
		}
	}

	m.seq++
	if c.CaseID == "" {
		c.CaseID = fmt.Sprintf("00000000-0000-4000-8000-%012d", m.seq)
	}
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(m.seq) * time.Minute)
	c.CreatedAt = now
	c.UpdatedAt = now
	m.cases[c.CaseID] = c
	return nil
}

func (m *mockCaseRepo) List(_ context.Context, filter *repository.CaseFilter, offset, limit int) ([]model.Case, int64, error) {
	m.listCalls++

	var matched []model.Case
	for _, c := range m.cases {
		if matches(c, filter) {
			matched = append(matched, *c)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *mockCaseRepo) GetByID(_ context.Context, id string) (*model.Case, error) {
	m.getCalls++
	if c, ok := m.cases[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCaseRepo) UpdateByID(_ context.Context, id string, updates map[string]interface{}) (*model.Case, error) {
	c, ok := m.cases[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for column, value := range updates {
		applyColumn(c, column, value)
	}
	c.UpdatedAt = c.UpdatedAt.Add(time.Minute)
	return c, nil
}

func (m *mockCaseRepo) DeleteByID(_ context.Context, id string) (*model.Case, error) {
	c, ok := m.cases[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	delete(m.cases, id)
	return c, nil
}

func matches(c *model.Case, f *repository.CaseFilter) bool {
	if f == nil {
		return true
	}
	if f.InspectionType != "" && c.InspectionType != f.InspectionType {
		return false
	}
	if f.MarketType != "" && c.MarketType != f.MarketType {
		return false
	}
	if f.Department != "" && c.Department != f.Department {
		return false
	}
	if f.Inspector != "" && c.Inspector != f.Inspector {
		return false
	}
	if f.DefectCategory != "" && c.DefectCategory != f.DefectCategory {
		return false
	}
	if f.StartDate != nil && c.Date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && c.Date.After(*f.EndDate) {
		return false
	}
	return true
}

func applyColumn(c *model.Case, column string, value interface{}) {
	switch column {
	case "inspection_type":
		c.InspectionType = value.(string)
	case "market_type":
		c.MarketType = value.(string)
	case "customer":
		c.Customer = value.(string)
	case "department":
		c.Department = value.(string)
	case "date":
		c.Date = value.(time.Time)
	case "time":
		c.Time = value.(string)
	case "work_order":
		c.WorkOrder = value.(string)
	case "operator":
		c.Operator = value.(string)
	case "drawing_version":
		c.DrawingVersion = value.(string)
	case "product_number":
		c.ProductNumber = value.(string)
	case "product_name":
		c.ProductName = value.(string)
	case "quantity":
		c.Quantity = value.(int)
	case "inspector":
		c.Inspector = value.(string)
	case "defect_category":
		c.DefectCategory = value.(string)
	case "defect_description":
		c.DefectDescription = value.(string)
	case "solution":
		c.Solution = value.(string)
	case "inspection_hours":
		c.InspectionHours = value.(float64)
	}
}
