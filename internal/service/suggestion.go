package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"Tripweave/internal/model"
	"Tripweave/internal/model/dto"
	pkgerrors "Tripweave/pkg/errors"
	"Tripweave/pkg/logger"
	"Tripweave/pkg/snowflake"
	"Tripweave/storage/database"
)

// 推荐是达人给公开行程的非商业建议，只有 pending -> used | dismissed 两条出路

type SuggestionService struct{}

var (
	suggestionService *SuggestionService
	suggestionOnce    sync.Once
)

func Suggestion() *SuggestionService {
	suggestionOnce.Do(func() {
		suggestionService = &SuggestionService{}
	})
	return suggestionService
}

func (s *SuggestionService) CreateSuggestion(ctx context.Context, creatorID, tripID int64, req dto.CreateSuggestionRequest) (*dto.SuggestionItem, error) {
	trip, err := Trip().loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Visibility == model.VisibilityPrivate {
		return nil, pkgerrors.TripNotFound
	}

	creator, err := User().loadProfile(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if !creator.GuideMode {
		return nil, pkgerrors.CollabRoleDenied
	}

	id, err := snowflake.NextID(snowflake.GeneratorTypeSuggestion)
	if err != nil {
		return nil, fmt.Errorf("failed to generate suggestion id: %w", err)
	}

	suggestion := &model.Suggestion{
		PublicID:      id,
		TripID:        tripID,
		ActivityID:    req.ActivityID,
		CreatorUserID: creatorID,
		Title:         req.Title,
		URL:           req.URL,
		Note:          req.Note,
		Status:        model.SuggestionStatusPending,
	}

	if err := database.DB().WithContext(ctx).Create(suggestion).Error; err != nil {
		logger.Logger.Error("Failed to create suggestion",
			zap.Int64("trip_id", tripID),
			zap.Int64("creator_id", creatorID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to create suggestion: %w", err)
	}

	return buildSuggestionItem(suggestion), nil
}

func (s *SuggestionService) ListSuggestions(ctx context.Context, userID, tripID int64, q dto.MarketplaceListQuery) ([]*dto.SuggestionItem, string, error) {
	trip, err := Trip().loadTrip(ctx, tripID)
	if err != nil {
		return nil, "", err
	}

	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}

	tx := database.DB().WithContext(ctx).Where("trip_id = ?", tripID)
	if trip.UserID != userID {
		tx = tx.Where("creator_user_id = ?", userID)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if cursor := parseCursor(q.Cursor); cursor > 0 {
		tx = tx.Where("public_id < ?", cursor)
	}

	var suggestions []model.Suggestion
	if err := tx.Order("public_id DESC").Limit(limit + 1).Find(&suggestions).Error; err != nil {
		return nil, "", fmt.Errorf("failed to list suggestions: %w", err)
	}

	var nextCursor string
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
		nextCursor = strconv.FormatInt(suggestions[limit-1].PublicID, 10)
	}

	items := make([]*dto.SuggestionItem, 0, len(suggestions))
	for i := range suggestions {
		items = append(items, buildSuggestionItem(&suggestions[i]))
	}
	return items, nextCursor, nil
}

// ResolveSuggestion 行程所有者把推荐标记为 used 或 dismissed，已处理的不能再改
func (s *SuggestionService) ResolveSuggestion(ctx context.Context, userID, tripID, suggestionID int64, req dto.UpdateSuggestionRequest) (*dto.SuggestionItem, error) {
	trip, err := Trip().loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.UserID != userID {
		return nil, pkgerrors.NotTripOwner
	}

	target := model.SuggestionStatus(req.Status)
	if target != model.SuggestionStatusUsed && target != model.SuggestionStatusDismissed {
		return nil, pkgerrors.SuggestionStatusFinal
	}

	db := database.DB().WithContext(ctx)
	var suggestion model.Suggestion
	if err := db.Where("public_id = ? AND trip_id = ?", suggestionID, tripID).First(&suggestion).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.SuggestionNotFound
		}
		return nil, fmt.Errorf("failed to query suggestion: %w", err)
	}
	if suggestion.Status.IsFinal() {
		return nil, pkgerrors.SuggestionStatusFinal
	}

	if err := db.Model(&model.Suggestion{}).
		Where("public_id = ?", suggestionID).
		Update("status", target).Error; err != nil {
		return nil, fmt.Errorf("failed to update suggestion status: %w", err)
	}
	suggestion.Status = target

	return buildSuggestionItem(&suggestion), nil
}

func buildSuggestionItem(s *model.Suggestion) *dto.SuggestionItem {
	return &dto.SuggestionItem{
		ID:         strconv.FormatInt(s.PublicID, 10),
		TripID:     strconv.FormatInt(s.TripID, 10),
		ActivityID: s.ActivityID,
		CreatorID:  strconv.FormatInt(s.CreatorUserID, 10),
		Title:      s.Title,
		URL:        s.URL,
		Note:       s.Note,
		Status:     string(s.Status),
		CreatedAt:  s.CreatedAt,
	}
}
