package model

import "gorm.io/datatypes"

// ProfileVisibility 用户资料可见性
type ProfileVisibility string

const (
	ProfilePublic  ProfileVisibility = "public"
	ProfilePrivate ProfileVisibility = "private"
)

// UserProfile 用户资料
// AuthSubject 是第三方认证服务下发的 subject，登录交换时用于定位用户
type UserProfile struct {
	BaseModel
	PublicID    int64             `gorm:"uniqueIndex;not null" json:"public_id"`
	AuthSubject string            `gorm:"uniqueIndex;type:varchar(128);not null" json:"-"`
	DisplayName string            `gorm:"type:varchar(64);not null;default:''" json:"display_name"`
	Bio         string            `gorm:"type:text;not null;default:''" json:"bio"` // 上限 600 词，入库前截断
	AvatarURL   string            `gorm:"type:varchar(512);not null;default:''" json:"avatar_url"`
	Location    string            `gorm:"type:varchar(128);not null;default:''" json:"location"`
	Visibility  ProfileVisibility `gorm:"type:varchar(16);not null;default:'public'" json:"visibility"`
	GuideMode   bool              `gorm:"not null;default:false" json:"guide_mode"` // 本地达人 / 商家功能开关
	TipLink     string            `gorm:"type:varchar(512);not null;default:''" json:"tip_link"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// TravelHistoryKind 旅行足迹类型
type TravelHistoryKind string

const (
	HistoryVisited  TravelHistoryKind = "visited"
	HistoryWishlist TravelHistoryKind = "wishlist"
)

// TravelHistoryEntry 旅行足迹（去过 / 想去）
type TravelHistoryEntry struct {
	BaseModel
	UserID      int64             `gorm:"not null;index:idx_history_user" json:"user_id"`
	Kind        TravelHistoryKind `gorm:"type:varchar(16);not null" json:"kind"`
	Place       string            `gorm:"type:varchar(200);not null" json:"place"`
	CountryCode string            `gorm:"type:char(2);not null;default:''" json:"country_code"`
	Year        *int              `json:"year,omitempty"`
	Month       *int              `json:"month,omitempty"`
	Notes       string            `gorm:"type:text;not null;default:''" json:"notes"`
	Lat         *float64          `json:"lat,omitempty"`
	Lng         *float64          `json:"lng,omitempty"`
}

func (TravelHistoryEntry) TableName() string {
	return "travel_history_entries"
}

// SocialLink 社交链接
type SocialLink struct {
	BaseModel
	UserID   int64  `gorm:"not null;index:idx_social_links_user" json:"user_id"`
	Platform string `gorm:"type:varchar(32);not null" json:"platform"`
	URL      string `gorm:"type:varchar(512);not null" json:"url"`
}

func (SocialLink) TableName() string {
	return "social_links"
}

// PaymentLink 收款 / 打赏链接
type PaymentLink struct {
	BaseModel
	UserID   int64  `gorm:"not null;index:idx_payment_links_user" json:"user_id"`
	Provider string `gorm:"type:varchar(32);not null" json:"provider"`
	URL      string `gorm:"type:varchar(512);not null" json:"url"`
}

func (PaymentLink) TableName() string {
	return "payment_links"
}

// ActivityEvent 用户动态（供 /users/me/activity 游标分页读取）
type ActivityEvent struct {
	BaseModel
	UserID      int64          `gorm:"not null;index:idx_events_user" json:"user_id"`
	Verb        string         `gorm:"type:varchar(32);not null" json:"verb"` // created, cloned, loved, finalized, ...
	SubjectType string         `gorm:"type:varchar(32);not null" json:"subject_type"`
	SubjectID   int64          `gorm:"not null" json:"subject_id"`
	Payload     datatypes.JSON `gorm:"type:jsonb" json:"payload,omitempty"`
}

func (ActivityEvent) TableName() string {
	return "activity_events"
}
