package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qc-case/backend/pkg/apperr"
)

// Response 統一成功響應結構
type Response struct {
	Status     string      `json:"status"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination 分頁元數據
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// ErrorResponse 統一錯誤響應結構
type ErrorResponse struct {
	Status  string `json:"status"` // fail | error
	Message string `json:"message"`
}

// OK 200 成功響應
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status: "success",
		Data:   data,
	})
}

// Created 201 創建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Status: "success",
		Data:   data,
	})
}

// OKPage 200 分頁成功
func OKPage(c *gin.Context, list interface{}, total int64, page, limit int) {
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}
	c.JSON(http.StatusOK, Response{
		Status:     "success",
		Data:       list,
		Pagination: &Pagination{Total: total, Page: page, Limit: limit, Pages: pages},
	})
}

// OKMessage 200 僅帶訊息的成功響應（如刪除完成）
func OKMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{
		Status:  "success",
		Message: message,
	})
}

// Fail 依正規化後的 AppError 輸出錯誤響應
func Fail(c *gin.Context, err *apperr.AppError) {
	c.JSON(err.StatusCode, ErrorResponse{
		Status:  err.Status,
		Message: err.Message,
	})
}
