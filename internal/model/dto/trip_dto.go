package dto

import (
	"time"

	"Tripweave/internal/model"
)

// ========== Trip 相关 DTO ==========

// TripItem 行程列表项
type TripItem struct {
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Destination string     `json:"destination"`
	Visibility  string     `json:"visibility"`
	ShareCode   string     `json:"share_code,omitempty"` // 仅所有者可见
	DayCount    int        `json:"day_count"`
	ItemCount   int        `json:"item_count"`
	LoveCount   int        `json:"love_count"`
	CloneCount  int        `json:"clone_count"`
	IsPast      bool       `json:"is_past"`
}

// TripDetail 行程详情（规范形态，mutation 一律整体返回它）
type TripDetail struct {
	TripItem
	OwnerID    string                 `json:"owner_id"`
	Travelers  []model.Traveler       `json:"travelers"`
	Itinerary  []model.ItineraryDay   `json:"itinerary"`
	CostTotals CostTotals             `json:"cost_totals"`
	Actions    TripActions            `json:"actions"`
	Images     []TripImageItem        `json:"images,omitempty"`
}

// TripActions 当前调用者对该行程的可用操作
type TripActions struct {
	CanEdit        bool `json:"can_edit"`
	CanDelete      bool `json:"can_delete"`
	CanClone       bool `json:"can_clone"`
	CanCollaborate bool `json:"can_collaborate"`
}

// CostTotals 费用汇总
type CostTotals struct {
	Total  string            `json:"total"`
	PerDay map[int]string    `json:"per_day"`
	Payers map[string]string `json:"payers,omitempty"` // travelerID -> 应付金额
}

// CreateTripRequest 创建行程请求
type CreateTripRequest struct {
	Title       string  `json:"title" binding:"required"`
	Destination string  `json:"destination"`
	StartDate   *string `json:"start_date"` // "2006-01-02"
	Days        int     `json:"days"`       // 超界会被钳制到 [1,90]
	Travelers   int     `json:"travelers"`  // 超界会被钳制到 [1,20]
}

// UpdateTripRequest 更新行程标量字段
type UpdateTripRequest struct {
	Title       *string `json:"title"`
	Destination *string `json:"destination"`
	StartDate   *string `json:"start_date"`
	Visibility  *string `json:"visibility"`
}

// TripListQuery 行程列表查询参数
type TripListQuery struct {
	Visibility string `query:"visibility"`
	Cursor     string `query:"cursor"`
	Limit      int    `query:"limit"`
}

// MarketplaceQuery 集市浏览查询参数
type MarketplaceQuery struct {
	Destination string `query:"destination"`
	Curated     bool   `query:"curated"`
	Cursor      string `query:"cursor"`
	Limit       int    `query:"limit"`
}

// TripImageItem 行程图片
type TripImageItem struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	UploadURL string `json:"upload_url,omitempty"` // presigned PUT，仅创建响应携带
	Position  int    `json:"position"`
}

// AttachImageRequest 登记图片请求，响应返回 presigned 上传地址
type AttachImageRequest struct {
	ContentType string `json:"content_type" binding:"required"`
	Position    int    `json:"position"`
}
