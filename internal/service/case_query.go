package service

import (
	"net/url"
	"time"

	"qc-case/backend/internal/repository"
	"qc-case/backend/internal/validation"
)

// 分頁默認值與上限
const (
	defaultPage  = 1
	defaultLimit = 10
)

// buildListQuery 由已通過 list 驗證的查詢字串組裝過濾條件與分頁
//
// 分類過濾只在參數存在且非空時寫入；startDate / endDate 合併為
// 對 date 欄位的閉區間約束，兩端皆可獨立提供。
// 只讀取白名單內的鍵，任意其他查詢參數不會進入過濾條件
func buildListQuery(query url.Values) (*repository.CaseFilter, int, int) {
	// 轉換與驗證共用 AsInt：通過 list 規則的值必定可轉換，
	// 轉換失敗時保留默認值而非寫入零值
	page := defaultPage
	if s := query.Get("page"); s != "" {
		if n, ok := validation.AsInt(s); ok {
			page = n
		}
	}
	limit := defaultLimit
	if s := query.Get("limit"); s != "" {
		if n, ok := validation.AsInt(s); ok {
			limit = n
		}
	}

	filter := &repository.CaseFilter{
		InspectionType: query.Get("inspectionType"),
		MarketType:     query.Get("marketType"),
		Department:     query.Get("department"),
		Inspector:      query.Get("inspector"),
		DefectCategory: query.Get("defectCategory"),
		StartDate:      parseDateParam(query.Get("startDate")),
		EndDate:        parseDateParam(query.Get("endDate")),
	}

	return filter, page, limit
}

func parseDateParam(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := validation.ParseDate(s)
	if err != nil {
		return nil
	}
	return &t
}
