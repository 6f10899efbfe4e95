package service

import (
	"context"
	"errors"
	"net/url"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"qc-case/backend/internal/dto"
	"qc-case/backend/internal/model"
	"qc-case/backend/internal/repository"
	"qc-case/backend/internal/validation"
	"qc-case/backend/pkg/apperr"
)

// ── 案件模組業務錯誤 ──

var ErrCaseNotFound = apperr.New("找不到該案件", 404)

// CaseService 案件業務接口
// 輸入為未經驗證的原始負載；驗證失敗時返回 validation.Violations，
// 已知的業務錯誤返回 *apperr.AppError，其餘錯誤原樣上拋交由正規化器處理
type CaseService interface {
	Create(ctx context.Context, body map[string]interface{}) (*dto.CaseResponse, error)
	List(ctx context.Context, query url.Values) (*dto.ListResult, error)
	GetByID(ctx context.Context, id string) (*dto.CaseResponse, error)
	Update(ctx context.Context, id string, body map[string]interface{}) (*dto.CaseResponse, error)
	Delete(ctx context.Context, id string) error
}

type caseService struct {
	repo   *repository.Repository
	rules  *validation.Registry
	logger *zap.Logger
}

// NewCaseService 創建 CaseService 實例
func NewCaseService(repo *repository.Repository, rules *validation.Registry, logger *zap.Logger) CaseService {
	return &caseService{repo: repo, rules: rules, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *caseService) Create(ctx context.Context, body map[string]interface{}) (*dto.CaseResponse, error) {
	violations := s.rules.Validate(validation.OpCreate, validation.Input{Body: body})
	if len(violations) > 0 {
		return nil, violations
	}

	c := buildCase(body)
	if err := s.repo.Case.Create(ctx, c); err != nil {
		s.logger.Error("創建案件失敗", zap.Error(err))
		return nil, err
	}

	return dto.NewCaseResponse(c), nil
}

// ────────────────────── List ──────────────────────

func (s *caseService) List(ctx context.Context, query url.Values) (*dto.ListResult, error) {
	violations := s.rules.Validate(validation.OpList, validation.Input{Query: query})
	if len(violations) > 0 {
		return nil, violations
	}

	filter, page, limit := buildListQuery(query)

	cases, total, err := s.repo.Case.List(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		s.logger.Error("查詢案件列表失敗", zap.Error(err))
		return nil, err
	}

	return &dto.ListResult{
		Cases: dto.NewCaseResponseList(cases),
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *caseService) GetByID(ctx context.Context, id string) (*dto.CaseResponse, error) {
	violations := s.rules.Validate(validation.OpGetByID, idInput(id))
	if len(violations) > 0 {
		return nil, violations
	}

	c, err := s.repo.Case.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseNotFound
		}
		s.logger.Error("查詢案件失敗", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return dto.NewCaseResponse(c), nil
}

// ────────────────────── Update ──────────────────────

func (s *caseService) Update(ctx context.Context, id string, body map[string]interface{}) (*dto.CaseResponse, error) {
	violations := s.rules.Validate(validation.OpUpdate, validation.Input{
		Body:   body,
		Params: map[string]string{"id": id},
	})
	if len(violations) > 0 {
		return nil, violations
	}

	c, err := s.repo.Case.UpdateByID(ctx, id, buildUpdates(body))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseNotFound
		}
		s.logger.Error("更新案件失敗", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return dto.NewCaseResponse(c), nil
}

// ────────────────────── Delete ──────────────────────

func (s *caseService) Delete(ctx context.Context, id string) error {
	violations := s.rules.Validate(validation.OpDelete, idInput(id))
	if len(violations) > 0 {
		return violations
	}

	if _, err := s.repo.Case.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCaseNotFound
		}
		s.logger.Error("刪除案件失敗", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 內部輔助 ──

func idInput(id string) validation.Input {
	return validation.Input{Params: map[string]string{"id": id}}
}

// buildCase 由已通過 create 驗證的負載組裝模型
func buildCase(body map[string]interface{}) *model.Case {
	date, _ := validation.ParseDate(getString(body, "date"))
	return &model.Case{
		InspectionType:    getString(body, "inspectionType"),
		MarketType:        getString(body, "marketType"),
		Customer:          getString(body, "customer"),
		Department:        getString(body, "department"),
		Date:              date,
		Time:              getString(body, "time"),
		WorkOrder:         getString(body, "workOrder"),
		Operator:          getString(body, "operator"),
		DrawingVersion:    getString(body, "drawingVersion"),
		ProductNumber:     getString(body, "productNumber"),
		ProductName:       getString(body, "productName"),
		Quantity:          getInt(body, "quantity"),
		Inspector:         getString(body, "inspector"),
		DefectCategory:    getString(body, "defectCategory"),
		DefectDescription: getString(body, "defectDescription"),
		Solution:          getString(body, "solution"),
		InspectionHours:   getFloat(body, "inspectionHours"),
	}
}

// 案件欄位 → 資料表欄位；buildUpdates 只放行此表內的鍵
var caseColumns = map[string]string{
	"inspectionType":    "inspection_type",
	"marketType":        "market_type",
	"customer":          "customer",
	"department":        "department",
	"date":              "date",
	"time":              "time",
	"workOrder":         "work_order",
	"operator":          "operator",
	"drawingVersion":    "drawing_version",
	"productNumber":     "product_number",
	"productName":       "product_name",
	"quantity":          "quantity",
	"inspector":         "inspector",
	"defectCategory":    "defect_category",
	"defectDescription": "defect_description",
	"solution":          "solution",
	"inspectionHours":   "inspection_hours",
}

// buildUpdates 由已通過 update 驗證的負載組裝局部更新
// 未提供的欄位不出現在結果中，識別碼與時間戳不可經此路徑改寫
func buildUpdates(body map[string]interface{}) map[string]interface{} {
	updates := make(map[string]interface{}, len(body))
	for field, column := range caseColumns {
		value, ok := body[field]
		if !ok || value == nil {
			continue
		}
		switch field {
		case "date":
			d, _ := validation.ParseDate(getString(body, field))
			updates[column] = d
		case "quantity":
			updates[column] = getInt(body, field)
		case "inspectionHours":
			updates[column] = getFloat(body, field)
		default:
			updates[column] = value
		}
	}
	return updates
}

func getString(body map[string]interface{}, key string) string {
	s, _ := body[key].(string)
	return s
}

// 數值取值沿用驗證層的轉換：通過數值斷言的值（含字串形式的數字）
// 在此必定轉換成功，不會靜默落回零值
func getInt(body map[string]interface{}, key string) int {
	n, _ := validation.AsInt(body[key])
	return n
}

func getFloat(body map[string]interface{}, key string) float64 {
	f, _ := validation.AsFloat(body[key])
	return f
}
