package errors

import "fmt"

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 认证相关错误。
var (
	Unauthorized          = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized"}
	AuthExchangeFailed    = Definition{Code: "AUTH_EXCHANGE_FAILED", Message: "Auth provider exchange failed"}
	InvalidUserID         = Definition{Code: "INVALID_USER_ID", Message: "Invalid user ID format"}
	ErrUserNotFound       = Definition{Code: "USER_NOT_FOUND", Message: "User not found"}
	ErrInvalidToken       = Definition{Code: "INVALID_TOKEN", Message: "Invalid token"}
	ErrInvalidTokenType   = Definition{Code: "INVALID_TOKEN_TYPE", Message: "Invalid token type"}
	ErrInvalidTokenClaims = Definition{Code: "INVALID_TOKEN_CLAIMS", Message: "Invalid token claims"}
)

// 行程模块错误。
var (
	TripNotFound      = Definition{Code: "TRIP_NOT_FOUND", Message: "Trip not found"}
	NotTripOwner      = Definition{Code: "NOT_TRIP_OWNER", Message: "Only the trip owner may do this"}
	TripPast          = Definition{Code: "TRIP_PAST", Message: "Trip is already over"}
	CloneNotAllowed   = Definition{Code: "CLONE_NOT_ALLOWED", Message: "Trip cannot be cloned"}
	VisibilityInvalid = Definition{Code: "VISIBILITY_INVALID", Message: "Invalid trip visibility"}
	ShareCodeNotFound = Definition{Code: "SHARE_CODE_NOT_FOUND", Message: "Share code not found"}
	InvalidDate       = Definition{Code: "INVALID_DATE", Message: "Date must be YYYY-MM-DD"}
	AlreadyLoved      = Definition{Code: "ALREADY_LOVED", Message: "Trip already loved by this user"}
	CollabRoleDenied  = Definition{Code: "COLLAB_ROLE_DENIED", Message: "Collaboration requires owner or editor role"}
)

// 行程单（天 / 活动）模块错误。
var (
	DayOutOfRange     = Definition{Code: "DAY_OUT_OF_RANGE", Message: "Day index out of range"}
	ItemNotFound      = Definition{Code: "ITEM_NOT_FOUND", Message: "Itinerary item not found"}
	ItemIndexInvalid  = Definition{Code: "ITEM_INDEX_INVALID", Message: "Activity index out of range"}
	ActivityFinalized = Definition{Code: "ACTIVITY_FINALIZED", Message: "Activity is finalized and locked"}
	InvalidVote       = Definition{Code: "INVALID_VOTE", Message: "Vote direction must be up or down"}
	InvalidCost       = Definition{Code: "INVALID_COST", Message: "Invalid cost amount"}
	TravelerNotFound  = Definition{Code: "TRAVELER_NOT_FOUND", Message: "Traveler not found"}
)

// 集市（proposal / suggestion）模块错误。
var (
	ProposalNotFound       = Definition{Code: "PROPOSAL_NOT_FOUND", Message: "Proposal not found"}
	ProposalStatusInvalid  = Definition{Code: "PROPOSAL_STATUS_INVALID", Message: "Illegal proposal status transition"}
	SuggestionNotFound     = Definition{Code: "SUGGESTION_NOT_FOUND", Message: "Suggestion not found"}
	SuggestionStatusFinal  = Definition{Code: "SUGGESTION_STATUS_FINAL", Message: "Suggestion already resolved"}
	MarketplaceRequired    = Definition{Code: "MARKETPLACE_REQUIRED", Message: "Trip is not open to the marketplace"}
	ProposalAlreadyExpired = Definition{Code: "PROPOSAL_ALREADY_EXPIRED", Message: "Proposal already expired"}
)

// 用户资料模块错误。
var (
	HistoryEntryNotFound = Definition{Code: "HISTORY_ENTRY_NOT_FOUND", Message: "Travel history entry not found"}
	LinkNotFound         = Definition{Code: "LINK_NOT_FOUND", Message: "Link not found"}
	InvalidHistoryKind   = Definition{Code: "INVALID_HISTORY_KIND", Message: "History kind must be visited or wishlist"}
	AvatarUploadFailed   = Definition{Code: "AVATAR_UPLOAD_FAILED", Message: "Avatar upload failed"}
)

// 地点预览 / 酒店搜索错误。
var (
	PreviewURLInvalid   = Definition{Code: "PREVIEW_URL_INVALID", Message: "Preview URL is not valid"}
	PreviewFetchFailed  = Definition{Code: "PREVIEW_FETCH_FAILED", Message: "Place preview fetch failed"}
	HotelSearchFailed   = Definition{Code: "HOTEL_SEARCH_FAILED", Message: "Hotel search failed"}
	RateLimited         = Definition{Code: "RATE_LIMITED", Message: "Too many requests"}
	ImageNotFound       = Definition{Code: "IMAGE_NOT_FOUND", Message: "Trip image not found"}
	ImageUploadFailed   = Definition{Code: "IMAGE_UPLOAD_FAILED", Message: "Trip image upload failed"}
	ObjectStoreDisabled = Definition{Code: "OBJECT_STORE_DISABLED", Message: "Object storage is not configured"}
)

// 基础设施侧的哨兵错误，不直接对外。
var (
	ErrTokenGeneratorNotInitialized = Definition{Code: "TOKEN_GENERATOR_UNINITIALIZED", Message: "Token generator not initialized"}
	ErrUnexpectedSigningMethod      = Definition{Code: "UNEXPECTED_SIGNING_METHOD", Message: "Unexpected JWT signing method"}
	ErrDatabaseConnectionNil        = Definition{Code: "DATABASE_CONNECTION_NIL", Message: "Database connection is nil"}
)

// SkipMessageError 消费者使用：消息应当被确认但不再处理（幂等去重命中）。
type SkipMessageError struct {
	Reason string
}

func (e *SkipMessageError) Error() string {
	return fmt.Sprintf("skip message: %s", e.Reason)
}

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	Unauthorized.Code:           Unauthorized,
	AuthExchangeFailed.Code:     AuthExchangeFailed,
	InvalidUserID.Code:          InvalidUserID,
	ErrUserNotFound.Code:        ErrUserNotFound,
	TripNotFound.Code:           TripNotFound,
	NotTripOwner.Code:           NotTripOwner,
	TripPast.Code:               TripPast,
	CloneNotAllowed.Code:        CloneNotAllowed,
	VisibilityInvalid.Code:      VisibilityInvalid,
	ShareCodeNotFound.Code:      ShareCodeNotFound,
	InvalidDate.Code:            InvalidDate,
	AlreadyLoved.Code:           AlreadyLoved,
	CollabRoleDenied.Code:       CollabRoleDenied,
	DayOutOfRange.Code:          DayOutOfRange,
	ItemNotFound.Code:           ItemNotFound,
	ItemIndexInvalid.Code:       ItemIndexInvalid,
	ActivityFinalized.Code:      ActivityFinalized,
	InvalidVote.Code:            InvalidVote,
	InvalidCost.Code:            InvalidCost,
	TravelerNotFound.Code:       TravelerNotFound,
	ProposalNotFound.Code:       ProposalNotFound,
	ProposalStatusInvalid.Code:  ProposalStatusInvalid,
	SuggestionNotFound.Code:     SuggestionNotFound,
	SuggestionStatusFinal.Code:  SuggestionStatusFinal,
	MarketplaceRequired.Code:    MarketplaceRequired,
	ProposalAlreadyExpired.Code: ProposalAlreadyExpired,
	HistoryEntryNotFound.Code:   HistoryEntryNotFound,
	LinkNotFound.Code:           LinkNotFound,
	InvalidHistoryKind.Code:     InvalidHistoryKind,
	AvatarUploadFailed.Code:     AvatarUploadFailed,
	PreviewURLInvalid.Code:      PreviewURLInvalid,
	PreviewFetchFailed.Code:     PreviewFetchFailed,
	HotelSearchFailed.Code:      HotelSearchFailed,
	RateLimited.Code:            RateLimited,
	ImageNotFound.Code:          ImageNotFound,
	ImageUploadFailed.Code:      ImageUploadFailed,
	ObjectStoreDisabled.Code:    ObjectStoreDisabled,
}

// Get 根据错误码返回 Definition，若不存在则返回空 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}
