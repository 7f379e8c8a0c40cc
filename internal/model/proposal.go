package model

import (
	"time"

	"gorm.io/datatypes"
)

// ProposalStatus 商家投标生命周期
type ProposalStatus string

const (
	ProposalStatusPending             ProposalStatus = "pending"
	ProposalStatusAccepted            ProposalStatus = "accepted"
	ProposalStatusDeclined            ProposalStatus = "declined"
	ProposalStatusWithdrawn           ProposalStatus = "withdrawn"
	ProposalStatusWithdrawalRequested ProposalStatus = "withdrawal_requested"
	ProposalStatusExpired             ProposalStatus = "expired"
)

// proposalTransitions 状态转移合法性矩阵
var proposalTransitions = map[ProposalStatus][]ProposalStatus{
	ProposalStatusPending:             {ProposalStatusAccepted, ProposalStatusDeclined, ProposalStatusWithdrawn, ProposalStatusExpired},
	ProposalStatusAccepted:            {ProposalStatusWithdrawalRequested},
	ProposalStatusWithdrawalRequested: {ProposalStatusWithdrawn, ProposalStatusAccepted},
}

// CanTransition 判断 proposal 状态迁移是否合法
func (s ProposalStatus) CanTransition(to ProposalStatus) bool {
	for _, next := range proposalTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Proposal 商家对行程或具体活动的投标
type Proposal struct {
	BaseModel
	PublicID       int64          `gorm:"uniqueIndex;not null" json:"public_id"`
	TripID         int64          `gorm:"not null;index:idx_proposals_trip" json:"trip_id"`
	ActivityID     string         `gorm:"type:varchar(32);not null;default:''" json:"activity_id"` // 可选，空表示整个行程
	BusinessUserID int64          `gorm:"not null;index:idx_proposals_business" json:"business_user_id"`
	Message        string         `gorm:"type:text;not null;default:''" json:"message"`
	AmountCents    int64          `gorm:"not null;default:0" json:"amount_cents"`
	Status         ProposalStatus `gorm:"type:varchar(24);not null;default:'pending';index:idx_proposals_status" json:"status"`
	ExpiresAt      time.Time      `gorm:"not null" json:"expires_at"`
	Metadata       datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
}

func (Proposal) TableName() string {
	return "proposals"
}

// SuggestionStatus 达人推荐生命周期
type SuggestionStatus string

const (
	SuggestionStatusPending   SuggestionStatus = "pending"
	SuggestionStatusUsed      SuggestionStatus = "used"
	SuggestionStatusDismissed SuggestionStatus = "dismissed"
)

// IsFinal 推荐是否已被处理
func (s SuggestionStatus) IsFinal() bool {
	return s == SuggestionStatusUsed || s == SuggestionStatusDismissed
}

// Suggestion 达人对行程或具体活动的非商业推荐
type Suggestion struct {
	BaseModel
	PublicID      int64            `gorm:"uniqueIndex;not null" json:"public_id"`
	TripID        int64            `gorm:"not null;index:idx_suggestions_trip" json:"trip_id"`
	ActivityID    string           `gorm:"type:varchar(32);not null;default:''" json:"activity_id"`
	CreatorUserID int64            `gorm:"not null;index:idx_suggestions_creator" json:"creator_user_id"`
	Title         string           `gorm:"type:varchar(200);not null" json:"title"`
	URL           string           `gorm:"type:varchar(512);not null;default:''" json:"url"`
	Note          string           `gorm:"type:text;not null;default:''" json:"note"`
	Status        SuggestionStatus `gorm:"type:varchar(16);not null;default:'pending';index:idx_suggestions_status" json:"status"`
}

func (Suggestion) TableName() string {
	return "suggestions"
}
