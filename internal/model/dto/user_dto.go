package dto

import "time"

// ========== User 相关 DTO ==========

// UserProfileData 用户资料数据
type UserProfileData struct {
	ID          string `json:"id"`
	PublicID    string `json:"public_id"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Location    string `json:"location,omitempty"`
	Visibility  string `json:"visibility"`
	GuideMode   bool   `json:"guide_mode"`
	TipLink     string `json:"tip_link,omitempty"`

	SocialLinks  []LinkItem          `json:"social_links"`
	PaymentLinks []LinkItem          `json:"payment_links"`
	Badges       []BadgeProgress     `json:"badges,omitempty"`
	History      []TravelHistoryItem `json:"travel_history,omitempty"`
}

// UpdateProfileRequest 更新资料请求，bio 超过 600 词会被截断
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
	Location    *string `json:"location"`
	Visibility  *string `json:"visibility"`
	TipLink     *string `json:"tip_link"`
}

// GuideModeRequest 达人 / 商家模式开关
type GuideModeRequest struct {
	Enabled bool `json:"enabled"`
}

// GuideModeData 开关当前状态
type GuideModeData struct {
	Enabled bool `json:"enabled"`
}

// LinkItem 社交 / 收款链接
type LinkItem struct {
	ID       string `json:"id"`
	Platform string `json:"platform,omitempty"`
	Provider string `json:"provider,omitempty"`
	URL      string `json:"url"`
}

// CreateLinkRequest 新增链接请求
type CreateLinkRequest struct {
	Platform string `json:"platform"`
	Provider string `json:"provider"`
	URL      string `json:"url" binding:"required"`
}

// TravelHistoryItem 旅行足迹项
type TravelHistoryItem struct {
	ID          string   `json:"id"`
	Kind        string   `json:"kind"`
	Place       string   `json:"place"`
	CountryCode string   `json:"country_code,omitempty"`
	Year        *int     `json:"year,omitempty"`
	Month       *int     `json:"month,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

// CreateHistoryRequest 新增旅行足迹请求
type CreateHistoryRequest struct {
	Kind        string   `json:"kind" binding:"required"` // visited / wishlist
	Place       string   `json:"place" binding:"required"`
	CountryCode string   `json:"country_code"`
	Year        *int     `json:"year"`
	Month       *int     `json:"month"`
	Notes       string   `json:"notes"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}

// BadgeProgress 徽章进度
type BadgeProgress struct {
	Track     string `json:"track"` // countries, trips, clones, curated
	Level     int    `json:"level"`
	Progress  int    `json:"progress"`
	NextLevel int    `json:"next_level_at,omitempty"` // 0 表示已满级
}

// AvatarUploadRequest 头像直传请求
type AvatarUploadRequest struct {
	ContentType string `json:"content_type"`
}

// AvatarUploadData 头像直传凭据，客户端 PUT 到 UploadURL 后资料里的头像即生效
type AvatarUploadData struct {
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
}

// ActivityFeedItem 用户动态项
type ActivityFeedItem struct {
	OccurredAt  time.Time `json:"occurred_at"`
	ID          string    `json:"id"`
	Verb        string    `json:"verb"`
	SubjectType string    `json:"subject_type"`
	SubjectID   string    `json:"subject_id"`
}

// ActivityFeedQuery 用户动态查询
type ActivityFeedQuery struct {
	Cursor string `query:"cursor"`
	Limit  int    `query:"limit"`
}

// ========== Auth 相关 DTO ==========

// ProviderExchangeRequest 用第三方认证服务的授权码换取本服务的 JWT
type ProviderExchangeRequest struct {
	Code        string `json:"code" binding:"required"`
	RedirectURI string `json:"redirect_uri"`
}

// RefreshTokenRequest 刷新令牌请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenPairData 令牌对
type TokenPairData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	UserID       string `json:"user_id"`
	IsNewUser    bool   `json:"is_new_user"`
}

// ========== Place / Hotel 相关 DTO ==========

// PlacePreviewRequest URL -> 地点元数据
type PlacePreviewRequest struct {
	URL string `json:"url" binding:"required"`
}

// PlacePreviewData 抓取到的地点元数据
type PlacePreviewData struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Address     string  `json:"address,omitempty"`
	Lat         float64 `json:"lat,omitempty"`
	Lng         float64 `json:"lng,omitempty"`
	SourceURL   string  `json:"source_url"`
	Cached      bool    `json:"cached"`
}

// HotelSearchQuery 酒店搜索参数
type HotelSearchQuery struct {
	City     string `query:"city"`
	CheckIn  string `query:"check_in"`  // "2006-01-02"
	CheckOut string `query:"check_out"` // "2006-01-02"
	Guests   int    `query:"guests"`
}

// HotelItem 酒店搜索结果项
type HotelItem struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Lat           float64 `json:"lat,omitempty"`
	Lng           float64 `json:"lng,omitempty"`
	PricePerNight string  `json:"price_per_night"`
	Currency      string  `json:"currency"`
	Rating        float64 `json:"rating,omitempty"`
	SourceURL     string  `json:"source_url,omitempty"`
}
