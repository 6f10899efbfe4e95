package model

import (
	"math"
	"time"
)

// Case 品質檢驗案件 — 對應 cases 表
// 一筆記錄代表一次首件或巡檢事件，含產品、不良與處置資料
type Case struct {
	CaseID            string    `gorm:"column:case_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	InspectionType    string    `gorm:"type:varchar(10);not null"          json:"inspectionType"`
	MarketType        string    `gorm:"type:varchar(10);not null"          json:"marketType"`
	Customer          string    `gorm:"type:varchar(100);not null"         json:"customer"`
	Department        string    `gorm:"type:varchar(50);not null;default:''" json:"department"`
	Date              time.Time `gorm:"type:date;not null"                 json:"date"`
	Time              string    `gorm:"type:varchar(5);not null"           json:"time"`
	WorkOrder         string    `gorm:"type:varchar(100);not null;default:''" json:"workOrder"`
	Operator          string    `gorm:"type:varchar(50);not null;default:''"  json:"operator"`
	DrawingVersion    string    `gorm:"type:varchar(50);not null;default:''"  json:"drawingVersion"`
	ProductNumber     string    `gorm:"type:varchar(100);not null"         json:"productNumber"`
	ProductName       string    `gorm:"type:varchar(200);not null"         json:"productName"`
	Quantity          int       `gorm:"not null;default:0"                 json:"quantity"`
	Inspector         string    `gorm:"type:varchar(50);not null;default:''"  json:"inspector"`
	DefectCategory    string    `gorm:"type:varchar(50);not null;default:''"  json:"defectCategory"`
	DefectDescription string    `gorm:"type:text;not null;default:''"      json:"defectDescription"`
	Solution          string    `gorm:"type:text;not null;default:''"      json:"solution"`
	InspectionHours   float64   `gorm:"type:numeric(6,3);not null;default:0"  json:"inspectionHours"`
	Timestamps
}

// TableName 指定表名
func (Case) TableName() string { return "cases" }

// RoundHours 檢驗工時讀取時四捨五入至小數點後兩位
// 採遠離零方向進位（0.005 → 0.01）
func RoundHours(v float64) float64 {
	return math.Round(v*100) / 100
}
