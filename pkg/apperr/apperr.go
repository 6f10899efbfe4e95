// Package apperr 定義對外統一的錯誤形狀與錯誤正規化器。
// 所有失敗路徑（驗證、資料庫約束、找不到資源、未預期錯誤）
// 在離開系統前都會收斂成同一個 AppError 結構。
package apperr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// 錯誤狀態類別
const (
	StatusFail  = "fail"  // 4xx：客戶端問題
	StatusError = "error" // 其他：伺服器問題
)

// AppError 統一錯誤結構
// IsOperational 標記可預期的業務錯誤；未標記者視為程式缺陷，
// 生產模式下不向客戶端揭露細節
type AppError struct {
	StatusCode    int
	Status        string
	Message       string
	IsOperational bool
}

// Error 實現 error 介面
func (e *AppError) Error() string {
	return e.Message
}

// New 建立可預期的業務錯誤，Status 由狀態碼推導
func New(message string, statusCode int) *AppError {
	return &AppError{
		StatusCode:    statusCode,
		Status:        StatusClass(statusCode),
		Message:       message,
		IsOperational: true,
	}
}

// StatusClass 由 HTTP 狀態碼推導狀態類別：4xx 為 fail，其餘為 error
func StatusClass(statusCode int) string {
	if statusCode >= 400 && statusCode < 500 {
		return StatusFail
	}
	return StatusError
}

// ViolationList 驗證器產生的違規集合。
// 以介面解耦，讓正規化器不需依賴驗證層
type ViolationList interface {
	error
	Messages() []string
}

// PostgreSQL 錯誤碼
const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
	pgInvalidText     = "22P02"
)

var (
	// 23505 的 Detail 格式：Key (column)=(value) already exists.
	reDuplicateDetail = regexp.MustCompile(`Key \((.+?)\)=\((.+?)\)`)
	// 22P02 的 Message 格式：invalid input syntax for type uuid: "xxx"
	reInvalidSyntax = regexp.MustCompile(`invalid input syntax for type (\S+): "(.*)"`)
)

// Normalizer 錯誤正規化器
// 生產/開發模式於建構時注入，而非在錯誤發生時讀取全局狀態
type Normalizer struct {
	production bool
}

// NewNormalizer 建立正規化器
func NewNormalizer(production bool) *Normalizer {
	return &Normalizer{production: production}
}

// Normalize 將任意錯誤映射為統一的 AppError
//
// 映射優先序：
//  1. 驗證違規集合 → 400，訊息依序以逗號串接
//  2. 已是 AppError → 重新推導 Status 後原樣返回
//  3. PostgreSQL 型別轉換錯誤（如格式不正確的 ID）→ 400
//  4. PostgreSQL 唯一鍵衝突 → 400，指出衝突欄位與值
//  5. PostgreSQL 檢查約束（資料庫層的最後防線）→ 400
//  6. 查無記錄 → 404 固定訊息
//  7. 其餘 → 500；生產模式下僅返回通用訊息
func (n *Normalizer) Normalize(err error) *AppError {
	var violations ViolationList
	if errors.As(err, &violations) {
		return New(strings.Join(violations.Messages(), ", "), 400)
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		// Status 以狀態碼為準重新推導，保證此處策略唯一權威；
		// 複製一份以免改動被多個請求共享的哨兵錯誤
		out := *appErr
		out.Status = StatusClass(out.StatusCode)
		return &out
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInvalidText:
			if m := reInvalidSyntax.FindStringSubmatch(pgErr.Message); m != nil {
				return New(fmt.Sprintf("無效的 %s: %s", m[1], m[2]), 400)
			}
			return New("無效的輸入數據", 400)
		case pgUniqueViolation:
			if m := reDuplicateDetail.FindStringSubmatch(pgErr.Detail); m != nil {
				return New(fmt.Sprintf("重複的 %s 值: %s", m[1], m[2]), 400)
			}
			return New("重複的鍵值", 400)
		case pgCheckViolation:
			return New(fmt.Sprintf("無效的輸入數據: 違反約束 %s", pgErr.ConstraintName), 400)
		}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return New("重複的鍵值", 400)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return New("找不到該案件", 404)
	}

	// 未預期錯誤：生產模式下不洩露內部細節
	message := err.Error()
	if n.production {
		message = "發生錯誤"
	}
	return &AppError{
		StatusCode:    500,
		Status:        StatusError,
		Message:       message,
		IsOperational: false,
	}
}
