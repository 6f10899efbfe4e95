package validation

import (
	"net/url"
	"strings"
)

// Violation 單一欄位的規則違反
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations 有序的違規集合，實現 error 與 apperr.ViolationList
type Violations []Violation

// Error 實現 error 介面
func (v Violations) Error() string {
	return strings.Join(v.Messages(), ", ")
}

// Messages 依規則順序返回所有違規訊息
func (v Violations) Messages() []string {
	msgs := make([]string, len(v))
	for i, violation := range v {
		msgs[i] = violation.Message
	}
	return msgs
}

// Input 一次請求中可供驗證的原始輸入
type Input struct {
	Body   map[string]interface{}
	Query  url.Values
	Params map[string]string
}

// Validate 對指定操作執行全部適用規則，收集所有違規後一次返回
//
//   - 欄位缺席且 optional：不產生違規
//   - 欄位缺席且 required：恰好產生一條違規
//   - 欄位存在：依序執行每條斷言，失敗者各記一條
//
// 無副作用：結果僅由輸入與註冊表決定
func (r *Registry) Validate(op Operation, in Input) Violations {
	var violations Violations

	for _, rule := range r.RulesFor(op) {
		value, present := lookup(rule, in)
		if !present {
			if rule.Required {
				violations = append(violations, Violation{
					Field:   rule.Field,
					Message: rule.RequiredMessage,
				})
			}
			continue
		}
		for _, check := range rule.Checks {
			if !check.OK(value) {
				violations = append(violations, Violation{
					Field:   rule.Field,
					Message: check.Message,
				})
			}
		}
	}

	return violations
}

// lookup 取出規則指向的值
// 查詢參數與路徑參數的空字串視為未提供（前端以空值表示未選擇）；
// JSON null 同樣視為未提供
func lookup(rule Rule, in Input) (interface{}, bool) {
	switch rule.Location {
	case InBody:
		if in.Body == nil {
			return nil, false
		}
		v, ok := in.Body[rule.Field]
		if !ok || v == nil {
			return nil, false
		}
		return v, true
	case InQuery:
		if in.Query == nil {
			return nil, false
		}
		s := in.Query.Get(rule.Field)
		if s == "" {
			return nil, false
		}
		return s, true
	case InParam:
		s := in.Params[rule.Field]
		if s == "" {
			return nil, false
		}
		return s, true
	default:
		return nil, false
	}
}
