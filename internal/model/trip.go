package model

import "time"

// TripVisibility 行程可见性枚举
type TripVisibility string

const (
	VisibilityPrivate     TripVisibility = "private"     // 仅本人与协作者
	VisibilityPublic      TripVisibility = "public"      // 公开浏览
	VisibilityMarketplace TripVisibility = "marketplace" // 开放商家投标与达人推荐
	VisibilityCurated     TripVisibility = "curated"     // 本地达人精选发布
)

// ValidVisibilities 可见性合法值集合
var ValidVisibilities = map[TripVisibility]bool{
	VisibilityPrivate:     true,
	VisibilityPublic:      true,
	VisibilityMarketplace: true,
	VisibilityCurated:     true,
}

// Trip 行程模型
// generated_content 内嵌旅客与按天组织的活动数组；当不存在关系型条目时，
// itinerary 数组的长度就是行程天数的唯一事实来源
type Trip struct {
	BaseModel
	PublicID    int64            `gorm:"uniqueIndex;not null" json:"public_id"`
	UserID      int64            `gorm:"not null;index:idx_trips_user" json:"user_id"` // 所有者 public_id
	Title       string           `gorm:"type:varchar(200);not null;default:''" json:"title"`
	Destination string           `gorm:"type:varchar(200);not null;default:''" json:"destination"`
	Visibility  TripVisibility   `gorm:"type:varchar(16);not null;default:'private';index:idx_trips_visibility" json:"visibility"`
	ShareCode   string           `gorm:"uniqueIndex;type:varchar(36);not null" json:"share_code"`
	StartDate   *time.Time       `gorm:"type:date" json:"start_date"`
	LoveCount   int              `gorm:"not null;default:0" json:"love_count"`
	CloneCount  int              `gorm:"not null;default:0" json:"clone_count"`
	ItemCount   int              `gorm:"not null;default:0" json:"item_count"`
	Content     GeneratedContent `gorm:"type:jsonb;serializer:json" json:"generated_content"`
}

func (Trip) TableName() string {
	return "trips"
}

// GeneratedContent 行程内容 blob（JSONB）
type GeneratedContent struct {
	Travelers []Traveler     `json:"travelers"`
	Itinerary []ItineraryDay `json:"itinerary"`
}

// CollaboratorRole 协作角色
type CollaboratorRole string

const (
	RoleOwner  CollaboratorRole = "owner"
	RoleEditor CollaboratorRole = "editor"
	RoleViewer CollaboratorRole = "viewer"
)

// TripCollaborator 行程协作者
type TripCollaborator struct {
	BaseModel
	TripID int64            `gorm:"not null;uniqueIndex:idx_collab_trip_user" json:"trip_id"`
	UserID int64            `gorm:"not null;uniqueIndex:idx_collab_trip_user" json:"user_id"`
	Role   CollaboratorRole `gorm:"type:varchar(16);not null;default:'viewer'" json:"role"`
}

func (TripCollaborator) TableName() string {
	return "trip_collaborators"
}

// TripImage 行程图片元数据，对象本体在 S3 兼容存储里
type TripImage struct {
	BaseModel
	TripID    int64  `gorm:"not null;index:idx_trip_images_trip" json:"trip_id"`
	ObjectKey string `gorm:"type:varchar(255);not null" json:"object_key"`
	URL       string `gorm:"type:varchar(512);not null;default:''" json:"url"`
	Position  int    `gorm:"not null;default:0" json:"position"`
}

func (TripImage) TableName() string {
	return "trip_images"
}

// TripLove 点赞去重记录（redis 命中失效后的兜底）
type TripLove struct {
	BaseModel
	TripID int64 `gorm:"not null;uniqueIndex:idx_loves_trip_user" json:"trip_id"`
	UserID int64 `gorm:"not null;uniqueIndex:idx_loves_trip_user" json:"user_id"`
}

func (TripLove) TableName() string {
	return "trip_loves"
}
