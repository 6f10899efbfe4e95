package validation

import (
	"net/url"
	"testing"

	"qc-case/backend/config"
)

// ── 測試輔助 ──

func testConfig() *config.ValidationConfig {
	return &config.ValidationConfig{
		Departments:      []string{"", "塑膠射出課", "射出加工組", "機械加工課"},
		Inspectors:       []string{"", "吳小男", "謝小宸", "黃小瀅", "蔡小函", "徐小棉", "杜小綾"},
		DefectCategories: []string{"", "無圖面", "圖物不符", "無工單", "無檢驗表單", "尺寸NG", "外觀NG"},
	}
}

func validCreateBody() map[string]interface{} {
	return map[string]interface{}{
		"inspectionType": "首件",
		"marketType":     "內銷",
		"customer":       "測試客戶",
		"department":     "塑膠射出課",
		"date":           "2024-06-01",
		"time":           "08:30",
		"productNumber":  "P-001",
		"productName":    "測試品",
		"quantity":       100,
	}
}

const testCaseID = "3f1e9c4a-8a32-4f0e-9d41-6c2b5a7e8f10"

// ── Create 驗證 ──

func TestValidate_Create_Valid(t *testing.T) {
	r := NewRegistry(testConfig())

	violations := r.Validate(OpCreate, Input{Body: validCreateBody()})
	if len(violations) != 0 {
		t.Fatalf("合法負載不應產生違規: %v", violations)
	}
}

func TestValidate_Create_EmptyBody_AccumulatesAllRequired(t *testing.T) {
	r := NewRegistry(testConfig())

	violations := r.Validate(OpCreate, Input{Body: map[string]interface{}{}})

	// 必填欄位各產生恰好一條違規，不會在首個錯誤即中止
	wantFields := []string{
		"inspectionType", "marketType", "customer", "department",
		"date", "time", "productNumber", "productName", "quantity",
	}
	if len(violations) != len(wantFields) {
		t.Fatalf("期望 %d 條違規，實際 %d: %v", len(wantFields), len(violations), violations)
	}
	for i, field := range wantFields {
		if violations[i].Field != field {
			t.Errorf("第 %d 條違規期望欄位 %s，實際 %s", i, field, violations[i].Field)
		}
	}
}

func TestValidate_Create_MissingRequired_ExactlyOneViolation(t *testing.T) {
	r := NewRegistry(testConfig())

	body := validCreateBody()
	delete(body, "customer")

	violations := r.Validate(OpCreate, Input{Body: body})
	if len(violations) != 1 {
		t.Fatalf("期望恰好 1 條違規，實際 %d: %v", len(violations), violations)
	}
	if violations[0].Field != "customer" || violations[0].Message != "客戶不能為空" {
		t.Errorf("違規不符: %+v", violations[0])
	}
}

func TestValidate_Create_Quantity(t *testing.T) {
	r := NewRegistry(testConfig())

	body := validCreateBody()
	body["quantity"] = -1
	if v := r.Validate(OpCreate, Input{Body: body}); len(v) != 1 {
		t.Errorf("quantity=-1 應被拒絕: %v", v)
	}

	body["quantity"] = 0
	if v := r.Validate(OpCreate, Input{Body: body}); len(v) != 0 {
		t.Errorf("quantity=0 應被接受: %v", v)
	}

	body["quantity"] = 1.5
	if v := r.Validate(OpCreate, Input{Body: body}); len(v) != 1 {
		t.Errorf("非整數 quantity 應被拒絕: %v", v)
	}

	// 字串形式的整數照舊放行（取值層以同一轉換存入）
	body["quantity"] = "50"
	if v := r.Validate(OpCreate, Input{Body: body}); len(v) != 0 {
		t.Errorf("quantity=\"50\" 應被接受: %v", v)
	}

	body["quantity"] = "1.5"
	if v := r.Validate(OpCreate, Input{Body: body}); len(v) != 1 {
		t.Errorf("quantity=\"1.5\" 應被拒絕: %v", v)
	}
}

func TestValidate_Create_InspectionHoursBoundary(t *testing.T) {
	r := NewRegistry(testConfig())

	body := validCreateBody()
	body["inspectionHours"] = 24.0
	if v := r.Validate(OpCreate, Input{Body: body}); len(v) != 0 {
		t.Errorf("inspectionHours=24.0 應被接受: %v", v)
	}

	body["inspectionHours"] = 24.1
	v := r.Validate(OpCreate, Input{Body: body})
	if len(v) != 1 {
		t.Fatalf("inspectionHours=24.1 應被拒絕: %v", v)
	}
	if v[0].Message != "檢驗工時必須是 0-24 之間的小數" {
		t.Errorf("違規訊息不符: %s", v[0].Message)
	}
}

func TestValidate_Create_EnumMembership(t *testing.T) {
	r := NewRegistry(testConfig())

	body := validCreateBody()
	body["inspectionType"] = "抽檢"
	body["department"] = "不存在的課"
	body["inspector"] = "路人甲"

	violations := r.Validate(OpCreate, Input{Body: body})
	if len(violations) != 3 {
		t.Fatalf("期望 3 條枚舉違規，實際 %d: %v", len(violations), violations)
	}
	// 違規順序跟隨規則表順序
	if violations[0].Field != "inspectionType" ||
		violations[1].Field != "department" ||
		violations[2].Field != "inspector" {
		t.Errorf("違規順序不符: %v", violations)
	}
}

func TestValidate_Create_EmptyStringIsValidUnset(t *testing.T) {
	r := NewRegistry(testConfig())

	// 空字串是 department / inspector / defectCategory 的合法「未設定」成員
	body := validCreateBody()
	body["department"] = ""
	body["inspector"] = ""
	body["defectCategory"] = ""

	if v := r.Validate(OpCreate, Input{Body: body}); len(v) != 0 {
		t.Errorf("空字串成員不應產生違規: %v", v)
	}
}

func TestValidate_Create_TimePattern(t *testing.T) {
	r := NewRegistry(testConfig())

	valid := []string{"00:00", "8:30", "08:30", "23:59"}
	invalid := []string{"24:00", "8:5", "0830", "25:10", "12:60"}

	for _, tc := range valid {
		body := validCreateBody()
		body["time"] = tc
		if v := r.Validate(OpCreate, Input{Body: body}); len(v) != 0 {
			t.Errorf("time=%q 應被接受: %v", tc, v)
		}
	}
	for _, tc := range invalid {
		body := validCreateBody()
		body["time"] = tc
		if v := r.Validate(OpCreate, Input{Body: body}); len(v) != 1 {
			t.Errorf("time=%q 應被拒絕: %v", tc, v)
		}
	}
}

func TestValidate_Create_TypeViolationsAccumulate(t *testing.T) {
	r := NewRegistry(testConfig())

	body := validCreateBody()
	body["customer"] = 123
	body["workOrder"] = 456

	violations := r.Validate(OpCreate, Input{Body: body})
	// customer: 非字串 + 非空檢查皆失敗各記一條；workOrder: 非字串一條
	if len(violations) != 3 {
		t.Fatalf("期望 3 條違規，實際 %d: %v", len(violations), violations)
	}
}

// ── Update 驗證（由 create 推導） ──

func TestValidate_Update_OnlyIDRequired(t *testing.T) {
	r := NewRegistry(testConfig())

	violations := r.Validate(OpUpdate, Input{
		Body:   map[string]interface{}{},
		Params: map[string]string{"id": testCaseID},
	})
	if len(violations) != 0 {
		t.Fatalf("僅帶識別碼的 update 應通過: %v", violations)
	}
}

func TestValidate_Update_PresentFieldMustSatisfyRule(t *testing.T) {
	r := NewRegistry(testConfig())

	violations := r.Validate(OpUpdate, Input{
		Body:   map[string]interface{}{"quantity": -5},
		Params: map[string]string{"id": testCaseID},
	})
	if len(violations) != 1 || violations[0].Field != "quantity" {
		t.Fatalf("提供的欄位仍須滿足型別規則: %v", violations)
	}
}

func TestValidate_Update_MalformedID(t *testing.T) {
	r := NewRegistry(testConfig())

	violations := r.Validate(OpUpdate, Input{
		Body:   map[string]interface{}{},
		Params: map[string]string{"id": "not-an-id"},
	})
	if len(violations) != 1 || violations[0].Message != "無效的案件 ID" {
		t.Fatalf("格式不正確的識別碼應被拒絕: %v", violations)
	}
}

func TestValidate_Update_MissingID(t *testing.T) {
	r := NewRegistry(testConfig())

	violations := r.Validate(OpUpdate, Input{Body: map[string]interface{}{}})
	if len(violations) != 1 || violations[0].Message != "案件 ID 不能為空" {
		t.Fatalf("缺少識別碼應被拒絕: %v", violations)
	}
}

// ── List 驗證 ──

func TestValidate_List_LimitBoundaries(t *testing.T) {
	r := NewRegistry(testConfig())

	// "10.0" 可解析為整數值的浮點，但不是整數字面量，必須拒絕：
	// 放行後取值層無法轉換，limit 會落回零值
	for _, bad := range []string{"0", "101", "abc", "-3", "2.5", "10.0"} {
		q := url.Values{"limit": {bad}}
		if v := r.Validate(OpList, Input{Query: q}); len(v) != 1 {
			t.Errorf("limit=%q 應被拒絕: %v", bad, v)
		}
	}

	for _, good := range []string{"1", "10", "100"} {
		q := url.Values{"limit": {good}}
		if v := r.Validate(OpList, Input{Query: q}); len(v) != 0 {
			t.Errorf("limit=%q 應被接受: %v", good, v)
		}
	}

	// 缺席時不產生違規（使用默認值 10）
	if v := r.Validate(OpList, Input{Query: url.Values{}}); len(v) != 0 {
		t.Errorf("無查詢參數應通過: %v", v)
	}
}

func TestValidate_List_PageMustBePositive(t *testing.T) {
	r := NewRegistry(testConfig())

	for _, bad := range []string{"0", "-1", "abc", "2.0"} {
		q := url.Values{"page": {bad}}
		if v := r.Validate(OpList, Input{Query: q}); len(v) != 1 {
			t.Errorf("page=%q 應被拒絕: %v", bad, v)
		}
	}
}

func TestValidate_List_CategoricalFilters(t *testing.T) {
	r := NewRegistry(testConfig())

	q := url.Values{
		"inspectionType": {"首件"},
		"inspector":      {"吳小男"},
		"startDate":      {"2024-01-01"},
		"endDate":        {"2024-01-31"},
	}
	if v := r.Validate(OpList, Input{Query: q}); len(v) != 0 {
		t.Errorf("合法過濾參數應通過: %v", v)
	}

	q = url.Values{"inspector": {"路人甲"}, "startDate": {"not-a-date"}}
	if v := r.Validate(OpList, Input{Query: q}); len(v) != 2 {
		t.Errorf("非法過濾參數應各記一條違規: %v", v)
	}
}

func TestValidate_List_EmptyParamTreatedAsAbsent(t *testing.T) {
	r := NewRegistry(testConfig())

	q := url.Values{"inspector": {""}, "department": {""}}
	if v := r.Validate(OpList, Input{Query: q}); len(v) != 0 {
		t.Errorf("空查詢參數視為未提供: %v", v)
	}
}

func TestValidate_List_UnknownParamsIgnored(t *testing.T) {
	r := NewRegistry(testConfig())

	q := url.Values{"$where": {"1=1"}, "foo": {"bar"}}
	if v := r.Validate(OpList, Input{Query: q}); len(v) != 0 {
		t.Errorf("未知查詢參數應被忽略: %v", v)
	}
}

// ── GetByID / Delete 驗證 ──

func TestValidate_GetByID_MalformedID(t *testing.T) {
	r := NewRegistry(testConfig())

	violations := r.Validate(OpGetByID, Input{Params: map[string]string{"id": "not-an-id"}})
	if len(violations) != 1 {
		t.Fatalf("格式不正確的識別碼應被拒絕: %v", violations)
	}

	violations = r.Validate(OpDelete, Input{Params: map[string]string{"id": testCaseID}})
	if len(violations) != 0 {
		t.Errorf("合法 UUID 應通過: %v", violations)
	}
}
