package dto

import (
	"qc-case/backend/internal/model"
)

// CaseResponse 案件響應
// 檢驗工時在此層統一四捨五入至小數點後兩位
type CaseResponse struct {
	ID                string  `json:"id"`
	InspectionType    string  `json:"inspectionType"`
	MarketType        string  `json:"marketType"`
	Customer          string  `json:"customer"`
	Department        string  `json:"department"`
	Date              string  `json:"date"`
	Time              string  `json:"time"`
	WorkOrder         string  `json:"workOrder"`
	Operator          string  `json:"operator"`
	DrawingVersion    string  `json:"drawingVersion"`
	ProductNumber     string  `json:"productNumber"`
	ProductName       string  `json:"productName"`
	Quantity          int     `json:"quantity"`
	Inspector         string  `json:"inspector"`
	DefectCategory    string  `json:"defectCategory"`
	DefectDescription string  `json:"defectDescription"`
	Solution          string  `json:"solution"`
	InspectionHours   float64 `json:"inspectionHours"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
}

// NewCaseResponse 由模型轉換為響應
func NewCaseResponse(c *model.Case) *CaseResponse {
	return &CaseResponse{
		ID:                c.CaseID,
		InspectionType:    c.InspectionType,
		MarketType:        c.MarketType,
		Customer:          c.Customer,
		Department:        c.Department,
		Date:              c.Date.Format("2006-01-02"),
		Time:              c.Time,
		WorkOrder:         c.WorkOrder,
		Operator:          c.Operator,
		DrawingVersion:    c.DrawingVersion,
		ProductNumber:     c.ProductNumber,
		ProductName:       c.ProductName,
		Quantity:          c.Quantity,
		Inspector:         c.Inspector,
		DefectCategory:    c.DefectCategory,
		DefectDescription: c.DefectDescription,
		Solution:          c.Solution,
		InspectionHours:   model.RoundHours(c.InspectionHours),
		CreatedAt:         c.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt:         c.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// NewCaseResponseList 批次轉換
func NewCaseResponseList(cases []model.Case) []CaseResponse {
	result := make([]CaseResponse, 0, len(cases))
	for i := range cases {
		result = append(result, *NewCaseResponse(&cases[i]))
	}
	return result
}

// ListResult 列表查詢結果與分頁元數據
type ListResult struct {
	Cases []CaseResponse
	Total int64
	Page  int
	Limit int
}
