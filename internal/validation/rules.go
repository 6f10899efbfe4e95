// Package validation 實現案件欄位的聲明式驗證：
// 單一規則表配合每個操作的視圖推導（update 由 create 鬆綁而來），
// 執行時收集全部違規而非在首個錯誤即中止。
package validation

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Operation 操作名稱，決定套用哪一組規則
type Operation string

const (
	OpCreate  Operation = "create"
	OpUpdate  Operation = "update"
	OpList    Operation = "list"
	OpGetByID Operation = "getById"
	OpDelete  Operation = "delete"
)

// Location 欄位來源
type Location int

const (
	InBody Location = iota
	InQuery
	InParam
)

// Check 單一斷言：失敗時以 Message 回報
type Check struct {
	Message string
	OK      func(value interface{}) bool
}

// Rule 綁定一個欄位與其斷言
// Required 欄位缺席時只產生 RequiredMessage 一條違規，不再執行 Checks
type Rule struct {
	Field           string
	Location        Location
	Required        bool
	RequiredMessage string
	Checks          []Check
}

// ── 斷言族 ──

// IsIn 值必須是集合成員
func IsIn(set []string, message string) Check {
	members := make(map[string]struct{}, len(set))
	for _, s := range set {
		members[s] = struct{}{}
	}
	return Check{Message: message, OK: func(v interface{}) bool {
		s, ok := asString(v)
		if !ok {
			return false
		}
		_, ok = members[s]
		return ok
	}}
}

// NotEmpty 值必須是非空字串
func NotEmpty(message string) Check {
	return Check{Message: message, OK: func(v interface{}) bool {
		s, ok := asString(v)
		return ok && s != ""
	}}
}

// IsString 值必須是字串
func IsString(message string) Check {
	return Check{Message: message, OK: func(v interface{}) bool {
		_, ok := asString(v)
		return ok
	}}
}

// IsIntMin 值必須是不小於 min 的整數
func IsIntMin(min int, message string) Check {
	return Check{Message: message, OK: func(v interface{}) bool {
		n, ok := AsInt(v)
		return ok && n >= min
	}}
}

// IsIntRange 值必須是 [min,max] 之間的整數
func IsIntRange(min, max int, message string) Check {
	return Check{Message: message, OK: func(v interface{}) bool {
		n, ok := AsInt(v)
		return ok && n >= min && n <= max
	}}
}

// IsFloatRange 值必須是 [min,max] 之間的小數
func IsFloatRange(min, max float64, message string) Check {
	return Check{Message: message, OK: func(v interface{}) bool {
		f, ok := AsFloat(v)
		return ok && f >= min && f <= max
	}}
}

// IsDate 值必須是可解析的 ISO-8601 日期
func IsDate(message string) Check {
	return Check{Message: message, OK: func(v interface{}) bool {
		s, ok := asString(v)
		if !ok {
			return false
		}
		_, err := ParseDate(s)
		return err == nil
	}}
}

// MatchesPattern 值必須符合正則
func MatchesPattern(re *regexp.Regexp, message string) Check {
	return Check{Message: message, OK: func(v interface{}) bool {
		s, ok := asString(v)
		return ok && re.MatchString(s)
	}}
}

// IsUUID 值必須是合法的 UUID（案件識別碼格式）
func IsUUID(message string) Check {
	return Check{Message: message, OK: func(v interface{}) bool {
		s, ok := asString(v)
		if !ok {
			return false
		}
		_, err := uuid.Parse(s)
		return err == nil
	}}
}

// ── 值轉換 ──

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate 解析 ISO-8601 日期（僅日期或含時間）
func ParseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// AsFloat 接受 JSON 數字（float64）與字串形式的數字。
// 驗證與取值共用同一轉換：凡通過數值斷言的值，此處必定可轉換
func AsFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// AsInt 整數轉換。字串採 strconv.Atoi 語義："10.0" 不是整數
func AsInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case string:
		i, err := strconv.Atoi(n)
		return i, err == nil
	default:
		return 0, false
	}
}
