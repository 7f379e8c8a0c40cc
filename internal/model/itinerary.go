package model

import "github.com/shopspring/decimal"

// 活动类别，accommodation / hotel 在一天内恒排最前，不参与普通排序
const (
	CategoryActivity      = "activity"
	CategoryAccommodation = "accommodation"
	CategoryHotel         = "hotel"
	CategoryFood          = "food"
	CategoryTransport     = "transport"
	CategorySight         = "sight"
)

// PayerSplit 表示费用由全体旅客均摊
const PayerSplit = "split"

// ItineraryDay 行程中的一天，Day 为 1 起始的连续序号
type ItineraryDay struct {
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

// Activity 一天内的单个活动
// 被最终确认（is_final）后对投票、删除和大部分编辑不可变
type Activity struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Summary       string           `json:"summary,omitempty"` // 展示用覆盖文案
	Description   string           `json:"description,omitempty"`
	Category      string           `json:"category"`
	StartTime     string           `json:"start_time,omitempty"` // "15:04"
	EndTime       string           `json:"end_time,omitempty"`
	EstimatedCost decimal.Decimal  `json:"estimated_cost"`
	Location      ActivityLocation `json:"location"`
	SourceURL     string           `json:"source_url,omitempty"`
	IsFinal       bool             `json:"is_final"`
	OrderIndex    int              `json:"order_index"`
	Votes         VoteTally        `json:"votes"`
	Payer         string           `json:"payer,omitempty"` // 旅客 ID 或 "split"
}

// ActivityLocation 活动地点
type ActivityLocation struct {
	Lat     float64 `json:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty"`
	Address string  `json:"address,omitempty"`
}

// VoteTally 活动投票计数
type VoteTally struct {
	Up   int `json:"up"`
	Down int `json:"down"`
}

// Traveler 同行旅客，用于人数展示与费用均摊
type Traveler struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsChild     bool   `json:"is_child"`
	Contact     string `json:"contact,omitempty"`
}
