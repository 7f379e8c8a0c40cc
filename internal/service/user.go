package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"Tripweave/config"
	"Tripweave/internal/itinerary"
	"Tripweave/internal/model"
	"Tripweave/internal/model/dto"
	"Tripweave/internal/repository/query"
	pkgerrors "Tripweave/pkg/errors"
	"Tripweave/pkg/logger"
	"Tripweave/pkg/objstore"
	"Tripweave/storage/database"
)

type UserService struct{}

var (
	userService *UserService
	userOnce    sync.Once
)

func User() *UserService {
	userOnce.Do(func() {
		userService = &UserService{}
	})
	return userService
}

// GetProfile 查看资料。私密资料只有本人能看，对外表现为不存在
func (s *UserService) GetProfile(ctx context.Context, viewerID, targetID int64) (*dto.UserProfileData, error) {
	profile, err := s.loadProfile(ctx, targetID)
	if err != nil {
		return nil, err
	}

	isSelf := viewerID == targetID
	if profile.Visibility == model.ProfilePrivate && !isSelf {
		return nil, pkgerrors.ErrUserNotFound
	}

	return s.buildProfile(ctx, profile, isSelf)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*dto.UserProfileData, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.DisplayName != nil {
		updates["display_name"] = strings.TrimSpace(*req.DisplayName)
	}
	if req.Bio != nil {
		updates["bio"] = itinerary.TruncateBioWords(*req.Bio, config.Cfg.BioMaxWords)
	}
	if req.Location != nil {
		updates["location"] = strings.TrimSpace(*req.Location)
	}
	if req.TipLink != nil {
		updates["tip_link"] = strings.TrimSpace(*req.TipLink)
	}
	if req.Visibility != nil {
		v := model.ProfileVisibility(*req.Visibility)
		if v != model.ProfilePublic && v != model.ProfilePrivate {
			return nil, pkgerrors.VisibilityInvalid
		}
		updates["visibility"] = v
	}

	if len(updates) > 0 {
		if err := database.DB().WithContext(ctx).Model(&model.UserProfile{}).
			Where("public_id = ?", userID).
			Updates(updates).Error; err != nil {
			logger.Logger.Error("Failed to update user profile",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
		profile, err = s.loadProfile(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	return s.buildProfile(ctx, profile, true)
}

func (s *UserService) GetGuideMode(ctx context.Context, userID int64) (bool, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return false, err
	}
	return profile.GuideMode, nil
}

func (s *UserService) SetGuideMode(ctx context.Context, userID int64, enabled bool) (*dto.UserProfileData, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if profile.GuideMode != enabled {
		if err := database.DB().WithContext(ctx).Model(&model.UserProfile{}).
			Where("public_id = ?", userID).
			Update("guide_mode", enabled).Error; err != nil {
			return nil, fmt.Errorf("failed to toggle guide mode: %w", err)
		}
		profile.GuideMode = enabled
	}

	return s.buildProfile(ctx, profile, true)
}

// PresignAvatar 头像直传。入库公开地址，客户端上传完成即生效
func (s *UserService) PresignAvatar(ctx context.Context, userID int64, contentType string) (*dto.AvatarUploadData, error) {
	if !objstore.Enabled() {
		return nil, pkgerrors.ObjectStoreDisabled
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key := fmt.Sprintf("avatars/%d/%s", userID, uuid.NewString())
	uploadURL, err := objstore.PresignPut(ctx, key, contentType)
	if err != nil {
		logger.Logger.Error("Failed to presign avatar upload",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, pkgerrors.AvatarUploadFailed
	}

	publicURL := objstore.PublicURL(key)
	if err := database.DB().WithContext(ctx).Model(&model.UserProfile{}).
		Where("public_id = ?", userID).
		Update("avatar_url", publicURL).Error; err != nil {
		return nil, fmt.Errorf("failed to save avatar url: %w", err)
	}

	return &dto.AvatarUploadData{UploadURL: uploadURL, PublicURL: publicURL}, nil
}

// ========== 旅行足迹 ==========

func (s *UserService) AddHistory(ctx context.Context, userID int64, req dto.CreateHistoryRequest) (*dto.TravelHistoryItem, error) {
	kind := model.TravelHistoryKind(req.Kind)
	if kind != model.HistoryVisited && kind != model.HistoryWishlist {
		return nil, pkgerrors.InvalidHistoryKind
	}

	entry := &model.TravelHistoryEntry{
		UserID:      userID,
		Kind:        kind,
		Place:       strings.TrimSpace(req.Place),
		CountryCode: strings.ToUpper(req.CountryCode),
		Year:        req.Year,
		Month:       req.Month,
		Notes:       req.Notes,
		Lat:         req.Lat,
		Lng:         req.Lng,
	}
	if err := database.DB().WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create history entry: %w", err)
	}
	return buildHistoryItem(entry), nil
}

func (s *UserService) ListHistory(ctx context.Context, userID int64, kind string) ([]dto.TravelHistoryItem, error) {
	tx := database.DB().WithContext(ctx).Where("user_id = ?", userID)
	if kind != "" {
		tx = tx.Where("kind = ?", kind)
	}

	var entries []model.TravelHistoryEntry
	if err := tx.Order("id DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	items := make([]dto.TravelHistoryItem, 0, len(entries))
	for i := range entries {
		items = append(items, *buildHistoryItem(&entries[i]))
	}
	return items, nil
}

func (s *UserService) DeleteHistory(ctx context.Context, userID, entryID int64) error {
	result := database.DB().WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&model.TravelHistoryEntry{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete history entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgerrors.HistoryEntryNotFound
	}
	return nil
}

// ========== 社交 / 收款链接 ==========

func (s *UserService) AddSocialLink(ctx context.Context, userID int64, req dto.CreateLinkRequest) (*dto.LinkItem, error) {
	link := &model.SocialLink{
		UserID:   userID,
		Platform: strings.TrimSpace(req.Platform),
		URL:      strings.TrimSpace(req.URL),
	}
	if err := database.DB().WithContext(ctx).Create(link).Error; err != nil {
		return nil, fmt.Errorf("failed to create social link: %w", err)
	}
	return &dto.LinkItem{
		ID:       strconv.FormatInt(int64(link.ID), 10),
		Platform: link.Platform,
		URL:      link.URL,
	}, nil
}

func (s *UserService) ListSocialLinks(ctx context.Context, userID int64) ([]dto.LinkItem, error) {
	var links []model.SocialLink
	if err := database.DB().WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to list social links: %w", err)
	}
	items := make([]dto.LinkItem, 0, len(links))
	for _, link := range links {
		items = append(items, dto.LinkItem{
			ID:       strconv.FormatInt(int64(link.ID), 10),
			Platform: link.Platform,
			URL:      link.URL,
		})
	}
	return items, nil
}

func (s *UserService) DeleteSocialLink(ctx context.Context, userID, linkID int64) error {
	result := database.DB().WithContext(ctx).
		Where("id = ? AND user_id = ?", linkID, userID).
		Delete(&model.SocialLink{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete social link: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgerrors.LinkNotFound
	}
	return nil
}

func (s *UserService) AddPaymentLink(ctx context.Context, userID int64, req dto.CreateLinkRequest) (*dto.LinkItem, error) {
	link := &model.PaymentLink{
		UserID:   userID,
		Provider: strings.TrimSpace(req.Provider),
		URL:      strings.TrimSpace(req.URL),
	}
	if err := database.DB().WithContext(ctx).Create(link).Error; err != nil {
		return nil, fmt.Errorf("failed to create payment link: %w", err)
	}
	return &dto.LinkItem{
		ID:       strconv.FormatInt(int64(link.ID), 10),
		Provider: link.Provider,
		URL:      link.URL,
	}, nil
}

func (s *UserService) ListPaymentLinks(ctx context.Context, userID int64) ([]dto.LinkItem, error) {
	var links []model.PaymentLink
	if err := database.DB().WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to list payment links: %w", err)
	}
	items := make([]dto.LinkItem, 0, len(links))
	for _, link := range links {
		items = append(items, dto.LinkItem{
			ID:       strconv.FormatInt(int64(link.ID), 10),
			Provider: link.Provider,
			URL:      link.URL,
		})
	}
	return items, nil
}

func (s *UserService) DeletePaymentLink(ctx context.Context, userID, linkID int64) error {
	result := database.DB().WithContext(ctx).
		Where("id = ? AND user_id = ?", linkID, userID).
		Delete(&model.PaymentLink{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete payment link: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgerrors.LinkNotFound
	}
	return nil
}

// ========== 徽章 / 动态 ==========

// badgeLevels 各条线的升级阈值，达到阈值即点亮下一级
var badgeLevels = map[string][]int{
	"countries": {1, 5, 10, 20, 40},
	"trips":     {1, 5, 15, 30, 60},
	"clones":    {1, 5, 25, 100, 500},
	"curated":   {1, 3, 10, 25, 50},
}

var badgeTracks = []string{"countries", "trips", "clones", "curated"}

// GetBadges 徽章全部按当前数据实时计算，不落库
func (s *UserService) GetBadges(ctx context.Context, userID int64) ([]dto.BadgeProgress, error) {
	countries, err := query.TravelHistoryEntry.CountDistinctCountries(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count visited countries: %w", err)
	}

	trips, err := query.Trip.CountByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count trips: %w", err)
	}

	clones, err := query.Trip.SumCloneCountByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum clones: %w", err)
	}

	curated, err := query.Trip.CountCuratedByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count curated trips: %w", err)
	}

	progress := map[string]int{
		"countries": int(countries),
		"trips":     int(trips),
		"clones":    int(clones),
		"curated":   int(curated),
	}

	badges := make([]dto.BadgeProgress, 0, len(badgeTracks))
	for _, track := range badgeTracks {
		badges = append(badges, buildBadge(track, progress[track]))
	}
	return badges, nil
}

func buildBadge(track string, progress int) dto.BadgeProgress {
	levels := badgeLevels[track]
	badge := dto.BadgeProgress{Track: track, Progress: progress}
	for _, threshold := range levels {
		if progress >= threshold {
			badge.Level++
		} else {
			badge.NextLevel = threshold
			break
		}
	}
	return badge
}

// GetActivityFeed 用户动态，id 倒序游标分页
func (s *UserService) GetActivityFeed(ctx context.Context, userID int64, q dto.ActivityFeedQuery) ([]dto.ActivityFeedItem, string, error) {
	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}

	tx := database.DB().WithContext(ctx).Where("user_id = ?", userID)
	if cursor := parseCursor(q.Cursor); cursor > 0 {
		tx = tx.Where("id < ?", cursor)
	}

	var events []model.ActivityEvent
	if err := tx.Order("id DESC").Limit(limit + 1).Find(&events).Error; err != nil {
		return nil, "", fmt.Errorf("failed to list activity events: %w", err)
	}

	var nextCursor string
	if len(events) > limit {
		events = events[:limit]
		nextCursor = strconv.FormatInt(int64(events[limit-1].ID), 10)
	}

	items := make([]dto.ActivityFeedItem, 0, len(events))
	for i := range events {
		e := &events[i]
		items = append(items, dto.ActivityFeedItem{
			ID:          strconv.FormatInt(int64(e.ID), 10),
			Verb:        e.Verb,
			SubjectType: e.SubjectType,
			SubjectID:   strconv.FormatInt(e.SubjectID, 10),
			OccurredAt:  e.CreatedAt,
		})
	}
	return items, nextCursor, nil
}

// ========== 内部 ==========

func (s *UserService) loadProfile(ctx context.Context, userID int64) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := database.DB().WithContext(ctx).
		Where("public_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user profile: %w", err)
	}
	return &profile, nil
}

func (s *UserService) buildProfile(ctx context.Context, profile *model.UserProfile, isSelf bool) (*dto.UserProfileData, error) {
	db := database.DB().WithContext(ctx)

	var socials []model.SocialLink
	if err := db.Where("user_id = ?", profile.PublicID).Order("id ASC").Find(&socials).Error; err != nil {
		return nil, fmt.Errorf("failed to list social links: %w", err)
	}
	var payments []model.PaymentLink
	if err := db.Where("user_id = ?", profile.PublicID).Order("id ASC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to list payment links: %w", err)
	}

	data := &dto.UserProfileData{
		ID:           strconv.FormatInt(profile.PublicID, 10),
		PublicID:     strconv.FormatInt(profile.PublicID, 10),
		DisplayName:  profile.DisplayName,
		Bio:          profile.Bio,
		AvatarURL:    profile.AvatarURL,
		Location:     profile.Location,
		Visibility:   string(profile.Visibility),
		GuideMode:    profile.GuideMode,
		TipLink:      profile.TipLink,
		SocialLinks:  make([]dto.LinkItem, 0, len(socials)),
		PaymentLinks: make([]dto.LinkItem, 0, len(payments)),
	}

	for i := range socials {
		data.SocialLinks = append(data.SocialLinks, dto.LinkItem{
			ID:       strconv.FormatInt(int64(socials[i].ID), 10),
			Platform: socials[i].Platform,
			URL:      socials[i].URL,
		})
	}
	for i := range payments {
		data.PaymentLinks = append(data.PaymentLinks, dto.LinkItem{
			ID:       strconv.FormatInt(int64(payments[i].ID), 10),
			Provider: payments[i].Provider,
			URL:      payments[i].URL,
		})
	}

	// 足迹和徽章只在资料页完整展示时附带
	history, err := s.ListHistory(ctx, profile.PublicID, "")
	if err != nil {
		return nil, err
	}
	data.History = history

	if isSelf || profile.Visibility == model.ProfilePublic {
		badges, err := s.GetBadges(ctx, profile.PublicID)
		if err != nil {
			logger.Logger.Warn("Failed to compute badges",
				zap.Int64("user_id", profile.PublicID),
				zap.Error(err),
			)
		} else {
			data.Badges = badges
		}
	}

	return data, nil
}

func buildHistoryItem(e *model.TravelHistoryEntry) *dto.TravelHistoryItem {
	return &dto.TravelHistoryItem{
		ID:          strconv.FormatInt(int64(e.ID), 10),
		Kind:        string(e.Kind),
		Place:       e.Place,
		CountryCode: e.CountryCode,
		Year:        e.Year,
		Month:       e.Month,
		Notes:       e.Notes,
		Lat:         e.Lat,
		Lng:         e.Lng,
	}
}
