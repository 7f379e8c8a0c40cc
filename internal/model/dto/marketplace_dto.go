package dto

import "time"

// ========== Proposal / Suggestion 相关 DTO ==========

// ProposalItem 投标项
type ProposalItem struct {
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	ID          string    `json:"id"`
	TripID      string    `json:"trip_id"`
	ActivityID  string    `json:"activity_id,omitempty"`
	BusinessID  string    `json:"business_id"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	AmountCents int64     `json:"amount_cents"`
}

// CreateProposalRequest 创建投标请求
type CreateProposalRequest struct {
	ActivityID  string `json:"activity_id"`
	Message     string `json:"message" binding:"required"`
	AmountCents int64  `json:"amount_cents"`
}

// UpdateProposalRequest 投标状态迁移请求
type UpdateProposalRequest struct {
	Status string `json:"status" binding:"required"`
}

// SuggestionItem 推荐项
type SuggestionItem struct {
	CreatedAt  time.Time `json:"created_at"`
	ID         string    `json:"id"`
	TripID     string    `json:"trip_id"`
	ActivityID string    `json:"activity_id,omitempty"`
	CreatorID  string    `json:"creator_id"`
	Title      string    `json:"title"`
	URL        string    `json:"url,omitempty"`
	Note       string    `json:"note,omitempty"`
	Status     string    `json:"status"`
}

// CreateSuggestionRequest 创建推荐请求
type CreateSuggestionRequest struct {
	ActivityID string `json:"activity_id"`
	Title      string `json:"title" binding:"required"`
	URL        string `json:"url"`
	Note       string `json:"note"`
}

// UpdateSuggestionRequest 推荐状态处理请求
type UpdateSuggestionRequest struct {
	Status string `json:"status" binding:"required"` // used / dismissed
}

// MarketplaceListQuery 投标 / 推荐列表查询
type MarketplaceListQuery struct {
	Status string `query:"status"`
	Cursor string `query:"cursor"`
	Limit  int    `query:"limit"`
}
