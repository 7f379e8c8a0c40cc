package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"Tripweave/config"
	"Tripweave/internal/itinerary"
	"Tripweave/internal/model"
	"Tripweave/internal/model/dto"
	"Tripweave/internal/queue"
	pkgerrors "Tripweave/pkg/errors"
	"Tripweave/pkg/logger"
	"Tripweave/storage/database"
)

// 编辑器里的天 / 活动操作。内容整体存在 trips.content JSONB 列里，
// 每次修改都整体写回并同步 item_count 冗余列

type ItemService struct{}

// 行程边界优先读配置，非法配置回落到包内默认值
func maxDays() int {
	if config.Cfg.MaxItineraryDays > 0 {
		return config.Cfg.MaxItineraryDays
	}
	return itinerary.MaxDays
}

func maxTravelers() int {
	if config.Cfg.MaxTravelers > 0 {
		return config.Cfg.MaxTravelers
	}
	return itinerary.MaxTravelers
}

var (
	itemService *ItemService
	itemOnce    sync.Once
)

func Item() *ItemService {
	itemOnce.Do(func() {
		itemService = &ItemService{}
	})
	return itemService
}

// ReplaceItinerary 编辑器保存路径，整体替换 travelers 和 days
func (s *ItemService) ReplaceItinerary(ctx context.Context, userID, tripID int64, req dto.ReplaceItineraryRequest) (*dto.TripDetail, error) {
	trip, err := s.loadEditable(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	days := req.Itinerary
	if len(days) > maxDays() {
		days = days[:maxDays()]
	}
	itinerary.Renumber(days)

	travelers := req.Travelers
	if len(travelers) > maxTravelers() {
		travelers = travelers[:maxTravelers()]
	}

	trip.Content.Itinerary = days
	if travelers != nil {
		trip.Content.Travelers = travelers
	}

	if err := s.saveContent(ctx, trip); err != nil {
		return nil, err
	}
	return Trip().buildDetail(ctx, trip, userID), nil
}

// MoveDay 拖拽移动某一天，移动与重编号原子完成
func (s *ItemService) MoveDay(ctx context.Context, userID, tripID int64, req dto.MoveDayRequest) (*dto.TripDetail, error) {
	trip, err := s.loadEditable(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	// 请求里的 from/to 是 1 起始的天序号
	days, err := itinerary.MoveDay(trip.Content.Itinerary, req.From-1, req.To-1)
	if err != nil {
		return nil, err
	}
	trip.Content.Itinerary = days

	if err := s.saveContent(ctx, trip); err != nil {
		return nil, err
	}
	return Trip().buildDetail(ctx, trip, userID), nil
}

// AddDay 在末尾追加一个空白天，已到天数上限则拒绝
func (s *ItemService) AddDay(ctx context.Context, userID, tripID int64) (*dto.TripDetail, error) {
	trip, err := s.loadEditable(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	if len(trip.Content.Itinerary) >= maxDays() {
		return nil, pkgerrors.DayOutOfRange
	}
	trip.Content.Itinerary = itinerary.AddDay(trip.Content.Itinerary)

	if err := s.saveContent(ctx, trip); err != nil {
		return nil, err
	}
	return Trip().buildDetail(ctx, trip, userID), nil
}

// ResizeDays 调整天数，超界钳制到配置的上限内
func (s *ItemService) ResizeDays(ctx context.Context, userID, tripID int64, req dto.ResizeDaysRequest) (*dto.TripDetail, error) {
	trip, err := s.loadEditable(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	trip.Content.Itinerary = itinerary.ResizeDays(trip.Content.Itinerary, req.Days, maxDays())

	if err := s.saveContent(ctx, trip); err != nil {
		return nil, err
	}
	return Trip().buildDetail(ctx, trip, userID), nil
}

// SetTravelers 指定完整旅客数组，或只给 count 由服务端补占位
func (s *ItemService) SetTravelers(ctx context.Context, userID, tripID int64, req dto.SetTravelersRequest) (*dto.TripDetail, error) {
	trip, err := s.loadEditable(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	if req.Travelers != nil {
		travelers := req.Travelers
		if len(travelers) > maxTravelers() {
			travelers = travelers[:maxTravelers()]
		}
		trip.Content.Travelers = travelers
	} else {
		trip.Content.Travelers = itinerary.ResizeTravelers(trip.Content.Travelers, req.Count, maxTravelers(), newTravelerID)
	}

	if err := s.saveContent(ctx, trip); err != nil {
		return nil, err
	}
	return Trip().buildDetail(ctx, trip, userID), nil
}

// AddActivity 向某一天追加活动，空请求体用占位默认值
func (s *ItemService) AddActivity(ctx context.Context, userID, tripID int64, req dto.AddActivityRequest) (*dto.TripDetail, error) {
	trip, err := s.loadEditable(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	var act model.Activity
	if req.Activity != nil {
		act = *req.Activity
	}
	if act.Title == "" && act.Category == "" {
		act = itinerary.NewActivity(newActivityID(), act.Title)
	} else {
		act.ID = newActivityID()
		if act.Category == "" {
			act.Category = model.CategoryActivity
		}
	}
	act.IsFinal = false
	act.Votes = model.VoteTally{}

	dayIdx := -1
	for i := range trip.Content.Itinerary {
		if trip.Content.Itinerary[i].Day == req.Day {
			dayIdx = i
			break
		}
	}
	if dayIdx < 0 {
		return nil, pkgerrors.DayOutOfRange
	}

	if err := itinerary.InsertActivity(trip.Content.Itinerary, req.Day, len(trip.Content.Itinerary[dayIdx].Activities), act); err != nil {
		return nil, err
	}

	if err := s.saveContent(ctx, trip); err != nil {
		return nil, err
	}
	return Trip().buildDetail(ctx, trip, userID), nil
}

// PatchItem 单字段修改：description / url / summary / price / location
func (s *ItemService) PatchItem(ctx context.Context, userID, tripID int64, activityID, field string, req dto.PatchItemRequest) (*dto.TripDetail, error) {
	trip, err := s.loadEditable(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	di, ai, ok := itinerary.FindActivity(trip.Content.Itinerary, activityID)
	if !ok {
		return nil, pkgerrors.ItemNotFound
	}
	act := &trip.Content.Itinerary[di].Activities[ai]

	if !itinerary.CanEditActivity(*act) {
		return nil, pkgerrors.ActivityFinalized
	}

	switch field {
	case "description":
		act.Description = req.Value
	case "summary":
		act.Summary = req.Value
	case "url":
		act.SourceURL = req.Value
	case "price":
		cost, err := decimal.NewFromString(req.Value)
		if err != nil || cost.IsNegative() {
			return nil, pkgerrors.InvalidCost
		}
		act.EstimatedCost = cost
	case "location":
		if req.Location == nil {
			return nil, pkgerrors.ItemIndexInvalid
		}
		act.Location = *req.Location
	default:
		return nil, pkgerrors.ItemNotFound
	}

	if err := s.saveContent(ctx, trip); err != nil {
		return nil, err
	}
	return Trip().buildDetail(ctx, trip, userID), nil
}

// DeleteItem 删除活动，已定稿的不可删
func (s *ItemService) DeleteItem(ctx context.Context, userID, tripID int64, activityID string) (*dto.TripDetail, error) {
	trip, err := s.loadEditable(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	di, ai, ok := itinerary.FindActivity(trip.Content.Itinerary, activityID)
	if !ok {
		return nil, pkgerrors.ItemNotFound
	}
	if !itinerary.CanEditActivity(trip.Content.Itinerary[di].Activities[ai]) {
		return nil, pkgerrors.ActivityFinalized
	}

	if err := itinerary.RemoveActivity(trip.Content.Itinerary, activityID); err != nil {
		return nil, err
	}

	if err := s.saveContent(ctx, trip); err != nil {
		return nil, err
	}
	return Trip().buildDetail(ctx, trip, userID), nil
}

// Vote 给活动投票，定稿后不再接受
func (s *ItemService) Vote(ctx context.Context, userID, tripID int64, activityID string, req dto.VoteRequest) (*dto.TripDetail, error) {
	trip, err := s.loadEditable(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	di, ai, ok := itinerary.FindActivity(trip.Content.Itinerary, activityID)
	if !ok {
		return nil, pkgerrors.ItemNotFound
	}
	act := &trip.Content.Itinerary[di].Activities[ai]

	if !itinerary.CanVote(*act) {
		return nil, pkgerrors.ActivityFinalized
	}

	switch req.Direction {
	case "up":
		act.Votes.Up++
	case "down":
		act.Votes.Down++
	default:
		return nil, pkgerrors.InvalidVote
	}

	if err := s.saveContent(ctx, trip); err != nil {
		return nil, err
	}
	return Trip().buildDetail(ctx, trip, userID), nil
}

// Finalize 定稿 / 取消定稿
func (s *ItemService) Finalize(ctx context.Context, userID, tripID int64, activityID string, req dto.FinalizeRequest) (*dto.TripDetail, error) {
	trip, err := s.loadEditable(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	// 取消定稿只有行程主人可以做，编辑者不能解锁别人定下的项
	if !req.Final && trip.UserID != userID {
		return nil, pkgerrors.NotTripOwner
	}

	di, ai, ok := itinerary.FindActivity(trip.Content.Itinerary, activityID)
	if !ok {
		return nil, pkgerrors.ItemNotFound
	}
	trip.Content.Itinerary[di].Activities[ai].IsFinal = req.Final

	if err := s.saveContent(ctx, trip); err != nil {
		return nil, err
	}

	if req.Final {
		recordEvent(ctx, userID, "finalized", "trip", tripID)
	}
	return Trip().buildDetail(ctx, trip, userID), nil
}

// Reorder 看板拖拽：解析落点并落库，随后发事件做计数对账
func (s *ItemService) Reorder(ctx context.Context, userID, tripID int64, activityID string, req dto.ReorderItemRequest) (*dto.ReorderResolution, *dto.TripDetail, error) {
	trip, err := s.loadEditable(ctx, userID, tripID)
	if err != nil {
		return nil, nil, err
	}

	res, err := itinerary.ResolveDrop(trip.Content.Itinerary, activityID, req.Target)
	if err != nil {
		return nil, nil, err
	}

	resolution := &dto.ReorderResolution{Day: res.Day, Index: res.Index, NoOp: res.NoOp}
	if res.NoOp {
		return resolution, Trip().buildDetail(ctx, trip, userID), nil
	}

	if err := itinerary.ApplyReorder(trip.Content.Itinerary, activityID, res.Day, res.Index); err != nil {
		return nil, nil, err
	}

	if err := s.saveContent(ctx, trip); err != nil {
		return nil, nil, err
	}

	if err := queue.PublishItineraryReordered(model.ItineraryReorderedMessage{
		TripID:     tripID,
		ActorID:    userID,
		ActivityID: activityID,
		TargetDay:  res.Day,
		TargetIdx:  res.Index,
		OccurredAt: time.Now().Format(time.RFC3339),
	}); err != nil {
		logger.Logger.Warn("Failed to publish reorder event",
			zap.Int64("trip_id", tripID),
			zap.Error(err),
		)
	}

	return resolution, Trip().buildDetail(ctx, trip, userID), nil
}

// ==================== 内部方法 ====================

// loadEditable 加载行程并校验编辑权限（owner 或 editor）
func (s *ItemService) loadEditable(ctx context.Context, userID, tripID int64) (*model.Trip, error) {
	trip, err := Trip().loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	role := Trip().RoleFor(ctx, trip, userID)
	if !itinerary.CanCollaborate(role) {
		if role == "" {
			return nil, pkgerrors.TripNotFound
		}
		return nil, pkgerrors.CollabRoleDenied
	}
	return trip, nil
}

func (s *ItemService) saveContent(ctx context.Context, trip *model.Trip) error {
	trip.ItemCount = countItems(trip.Content.Itinerary)

	db := database.DB().WithContext(ctx)
	err := db.Model(&model.Trip{}).
		Where("public_id = ?", trip.PublicID).
		Select("content", "item_count").
		Updates(&model.Trip{Content: trip.Content, ItemCount: trip.ItemCount}).Error
	if err != nil {
		logger.Logger.Error("Failed to save itinerary content",
			zap.Int64("trip_id", trip.PublicID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to save itinerary: %w", err)
	}
	return nil
}
