package handler

import "qc-case/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Case *CaseHandler
}

// NewHandler 創建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Case: NewCaseHandler(svc.Case),
	}
}
