package validation

import (
	"regexp"

	"qc-case/backend/config"
)

// 首件巡檢與內/外銷為結構性枚舉，固定於程式碼；
// 部門、巡檢員、不良分類屬業務資料，由配置注入
var (
	InspectionTypes = []string{"首件", "巡檢"}
	MarketTypes     = []string{"內銷", "外銷"}
)

// 24 小時制 HH:mm
var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// Registry 欄位規則註冊表
// create 為唯一的基礎規則表，update 規則由其推導（required 全數鬆綁為
// optional），避免兩組規則各自維護而逐漸分歧
type Registry struct {
	create  []Rule
	update  []Rule
	list    []Rule
	getByID []Rule
	delete  []Rule
}

// NewRegistry 依配置中的枚舉成員清單建立註冊表
func NewRegistry(cfg *config.ValidationConfig) *Registry {
	create := caseBodyRules(cfg)

	idRule := Rule{
		Field:           "id",
		Location:        InParam,
		Required:        true,
		RequiredMessage: "案件 ID 不能為空",
		Checks:          []Check{IsUUID("無效的案件 ID")},
	}

	update := make([]Rule, 0, len(create)+1)
	update = append(update, idRule)
	update = append(update, relaxRequired(create)...)

	return &Registry{
		create:  create,
		update:  update,
		list:    listQueryRules(cfg),
		getByID: []Rule{idRule},
		delete:  []Rule{idRule},
	}
}

// RulesFor 返回指定操作的有序規則
func (r *Registry) RulesFor(op Operation) []Rule {
	switch op {
	case OpCreate:
		return r.create
	case OpUpdate:
		return r.update
	case OpList:
		return r.list
	case OpGetByID:
		return r.getByID
	case OpDelete:
		return r.delete
	default:
		return nil
	}
}

// relaxRequired 將每條規則的 required 鬆綁為 optional（update 推導）
func relaxRequired(rules []Rule) []Rule {
	relaxed := make([]Rule, len(rules))
	for i, rule := range rules {
		rule.Required = false
		relaxed[i] = rule
	}
	return relaxed
}

// caseBodyRules 案件欄位的基礎規則表（create 視圖）
func caseBodyRules(cfg *config.ValidationConfig) []Rule {
	return []Rule{
		// 首件巡檢
		{
			Field: "inspectionType", Location: InBody, Required: true,
			RequiredMessage: "首件巡檢必須是「首件」或「巡檢」",
			Checks:          []Check{IsIn(InspectionTypes, "首件巡檢必須是「首件」或「巡檢」")},
		},
		// 內/外銷
		{
			Field: "marketType", Location: InBody, Required: true,
			RequiredMessage: "內/外銷必須是「內銷」或「外銷」",
			Checks:          []Check{IsIn(MarketTypes, "內/外銷必須是「內銷」或「外銷」")},
		},
		// 客戶
		{
			Field: "customer", Location: InBody, Required: true,
			RequiredMessage: "客戶不能為空",
			Checks:          []Check{IsString("客戶必須是字串"), NotEmpty("客戶不能為空")},
		},
		// 部門（空字串為合法的「未設定」成員）
		{
			Field: "department", Location: InBody, Required: true,
			RequiredMessage: "部門必須是有效的選項",
			Checks:          []Check{IsIn(cfg.Departments, "部門必須是有效的選項")},
		},
		// 日期
		{
			Field: "date", Location: InBody, Required: true,
			RequiredMessage: "日期不能為空",
			Checks:          []Check{IsDate("日期格式無效")},
		},
		// 時間
		{
			Field: "time", Location: InBody, Required: true,
			RequiredMessage: "時間不能為空",
			Checks:          []Check{MatchesPattern(timePattern, "時間格式必須是 HH:mm")},
		},
		// 製令編號
		{
			Field: "workOrder", Location: InBody,
			Checks: []Check{IsString("製令編號必須是字串")},
		},
		// 作業人員
		{
			Field: "operator", Location: InBody,
			Checks: []Check{IsString("作業人員必須是字串")},
		},
		// 圖面版次
		{
			Field: "drawingVersion", Location: InBody,
			Checks: []Check{IsString("圖面版次必須是字串")},
		},
		// 品號
		{
			Field: "productNumber", Location: InBody, Required: true,
			RequiredMessage: "品號不能為空",
			Checks:          []Check{IsString("品號必須是字串"), NotEmpty("品號不能為空")},
		},
		// 品名
		{
			Field: "productName", Location: InBody, Required: true,
			RequiredMessage: "品名不能為空",
			Checks:          []Check{IsString("品名必須是字串"), NotEmpty("品名不能為空")},
		},
		// 數量
		{
			Field: "quantity", Location: InBody, Required: true,
			RequiredMessage: "數量不能為空",
			Checks:          []Check{IsIntMin(0, "數量必須是非負整數")},
		},
		// 巡檢員
		{
			Field: "inspector", Location: InBody,
			Checks: []Check{IsIn(cfg.Inspectors, "巡檢員必須是有效的選項")},
		},
		// 不良分類
		{
			Field: "defectCategory", Location: InBody,
			Checks: []Check{IsIn(cfg.DefectCategories, "不良分類必須是有效的選項")},
		},
		// 不良狀況
		{
			Field: "defectDescription", Location: InBody,
			Checks: []Check{IsString("不良狀況必須是字串")},
		},
		// 處置對策
		{
			Field: "solution", Location: InBody,
			Checks: []Check{IsString("處置對策必須是字串")},
		},
		// 檢驗工時
		{
			Field: "inspectionHours", Location: InBody,
			Checks: []Check{IsFloatRange(0, 24, "檢驗工時必須是 0-24 之間的小數")},
		},
	}
}

// listQueryRules 列表查詢參數規則
// 分頁之外的查詢鍵與案件的分類欄位同名，未列於此者一律忽略
func listQueryRules(cfg *config.ValidationConfig) []Rule {
	return []Rule{
		{
			Field: "page", Location: InQuery,
			Checks: []Check{IsIntMin(1, "page 必須是正整數")},
		},
		{
			Field: "limit", Location: InQuery,
			Checks: []Check{IsIntRange(1, 100, "limit 必須是 1-100 之間的整數")},
		},
		{
			Field: "inspectionType", Location: InQuery,
			Checks: []Check{IsIn(InspectionTypes, "首件巡檢必須是「首件」或「巡檢」")},
		},
		{
			Field: "marketType", Location: InQuery,
			Checks: []Check{IsIn(MarketTypes, "內/外銷必須是「內銷」或「外銷」")},
		},
		{
			Field: "department", Location: InQuery,
			Checks: []Check{IsIn(cfg.Departments, "部門必須是有效的選項")},
		},
		{
			Field: "inspector", Location: InQuery,
			Checks: []Check{IsIn(cfg.Inspectors, "巡檢員必須是有效的選項")},
		},
		{
			Field: "defectCategory", Location: InQuery,
			Checks: []Check{IsIn(cfg.DefectCategories, "不良分類必須是有效的選項")},
		},
		{
			Field: "startDate", Location: InQuery,
			Checks: []Check{IsDate("startDate 日期格式無效")},
		},
		{
			Field: "endDate", Location: InQuery,
			Checks: []Check{IsDate("endDate 日期格式無效")},
		},
	}
}
