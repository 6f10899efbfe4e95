package handler

import (
	"github.com/gin-gonic/gin"

	"qc-case/backend/internal/service"
	"qc-case/backend/pkg/apperr"
	"qc-case/backend/pkg/response"
)

// CaseHandler 案件模組 HTTP 處理器
// 僅負責解碼與轉發；所有失敗路徑統一推入 c.Errors，
// 由錯誤正規化中間件輸出一致的錯誤形狀
type CaseHandler struct {
	caseSvc service.CaseService
}

// NewCaseHandler 創建 CaseHandler
func NewCaseHandler(caseSvc service.CaseService) *CaseHandler {
	return &CaseHandler{caseSvc: caseSvc}
}

// ListCases 獲取案件列表（過濾 + 分頁）
// GET /api/cases
func (h *CaseHandler) ListCases(c *gin.Context) {
	result, err := h.caseSvc.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		c.Error(err)
		return
	}

	response.OKPage(c, result.Cases, result.Total, result.Page, result.Limit)
}

// GetCase 獲取單個案件
// GET /api/cases/:id
func (h *CaseHandler) GetCase(c *gin.Context) {
	result, err := h.caseSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, result)
}

// CreateCase 創建新案件
// POST /api/cases
func (h *CaseHandler) CreateCase(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(apperr.New("無效的 JSON 請求體", 400))
		return
	}

	result, err := h.caseSvc.Create(c.Request.Context(), body)
	if err != nil {
		c.Error(err)
		return
	}

	response.Created(c, result)
}

// UpdateCase 局部更新案件
// PUT /api/cases/:id
func (h *CaseHandler) UpdateCase(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(apperr.New("無效的 JSON 請求體", 400))
		return
	}

	result, err := h.caseSvc.Update(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, result)
}

// DeleteCase 刪除案件
// DELETE /api/cases/:id
func (h *CaseHandler) DeleteCase(c *gin.Context) {
	if err := h.caseSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.OKMessage(c, "案例已刪除")
}
