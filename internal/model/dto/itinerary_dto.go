package dto

import "Tripweave/internal/model"

// ========== 行程单编辑相关 DTO ==========

// ReplaceItineraryRequest 整体替换 days（编辑器保存路径）
type ReplaceItineraryRequest struct {
	Travelers []model.Traveler     `json:"travelers"`
	Itinerary []model.ItineraryDay `json:"itinerary" binding:"required"`
}

// MoveDayRequest 拖拽移动某一天
type MoveDayRequest struct {
	From int `json:"from" binding:"required"`
	To   int `json:"to"`
}

// ResizeDaysRequest 调整天数，超界钳制到 [1,90]
type ResizeDaysRequest struct {
	Days int `json:"days" binding:"required"`
}

// SetTravelersRequest 调整旅客，人数超界钳制到 [1,20]
type SetTravelersRequest struct {
	Count     int              `json:"count"`
	Travelers []model.Traveler `json:"travelers"`
}

// AddActivityRequest 新增活动
type AddActivityRequest struct {
	Day      int             `json:"day" binding:"required"`
	Activity *model.Activity `json:"activity"` // 为空时使用占位默认值
}

// PatchItemRequest 单字段 PATCH（description / url / location / summary / price）
type PatchItemRequest struct {
	Value    string                  `json:"value"`
	Location *model.ActivityLocation `json:"location"`
}

// VoteRequest 活动投票
type VoteRequest struct {
	Direction string `json:"direction" binding:"required"` // up / down
}

// FinalizeRequest 活动定稿 / 取消定稿
type FinalizeRequest struct {
	Final bool `json:"final"`
}

// ReorderItemRequest 看板拖拽落点
// Target 形如 "day-3"（投到列尾）或另一个活动的 ID（插到它前面）
type ReorderItemRequest struct {
	Target string `json:"target" binding:"required"`
}

// ReorderResolution 落点解析结果，回传给客户端用于确认
type ReorderResolution struct {
	Day   int  `json:"day"`
	Index int  `json:"index"`
	NoOp  bool `json:"no_op"`
}
