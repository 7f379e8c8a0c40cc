package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"Tripweave/internal/cache"
	"Tripweave/internal/itinerary"
	"Tripweave/internal/model"
	"Tripweave/internal/model/dto"
	"Tripweave/internal/queue"
	pkgerrors "Tripweave/pkg/errors"
	"Tripweave/pkg/logger"
	"Tripweave/pkg/objstore"
	"Tripweave/pkg/snowflake"
	"Tripweave/storage/database"
)

// 所有 mutation 都整体返回规范化的 TripDetail，客户端用它整体替换本地副本，
// 不做字段级合并

type TripService struct{}

var (
	tripService *TripService
	tripOnce    sync.Once
)

func Trip() *TripService {
	tripOnce.Do(func() {
		tripService = &TripService{}
	})
	return tripService
}

const defaultListLimit = 20

func (s *TripService) CreateTrip(ctx context.Context, userID int64, req dto.CreateTripRequest) (*dto.TripDetail, error) {
	id, err := snowflake.NextID(snowflake.GeneratorTypeTrip)
	if err != nil {
		return nil, fmt.Errorf("failed to generate trip id: %w", err)
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	days := itinerary.ResizeDays(nil, req.Days, maxDays())
	travelers := itinerary.ResizeTravelers(nil, req.Travelers, maxTravelers(), newTravelerID)

	trip := &model.Trip{
		PublicID:    id,
		UserID:      userID,
		Title:       req.Title,
		Destination: req.Destination,
		Visibility:  model.VisibilityPrivate,
		ShareCode:   uuid.NewString(),
		StartDate:   startDate,
		Content: model.GeneratedContent{
			Travelers: travelers,
			Itinerary: days,
		},
	}

	db := database.DB().WithContext(ctx)
	if err := db.Create(trip).Error; err != nil {
		logger.Logger.Error("Failed to create trip",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	recordEvent(ctx, userID, "created", "trip", trip.PublicID)

	return s.buildDetail(ctx, trip, userID), nil
}

func (s *TripService) GetTrip(ctx context.Context, viewerID, tripID int64) (*dto.TripDetail, error) {
	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if !s.canView(ctx, trip, viewerID) {
		// 私有行程对外表现为不存在
		return nil, pkgerrors.TripNotFound
	}

	return s.buildDetail(ctx, trip, viewerID), nil
}

// GetTripByShareCode 分享链接访问，持码即可读
func (s *TripService) GetTripByShareCode(ctx context.Context, viewerID int64, code string) (*dto.TripDetail, error) {
	db := database.DB().WithContext(ctx)

	if tripID, err := cache.GetTripIDByShareCode(ctx, code); err == nil && tripID != 0 {
		trip, err := s.loadTrip(ctx, tripID)
		if err == nil {
			return s.buildDetail(ctx, trip, viewerID), nil
		}
	}

	var trip model.Trip
	if err := db.Where("share_code = ?", code).First(&trip).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.ShareCodeNotFound
		}
		return nil, fmt.Errorf("failed to query trip by share code: %w", err)
	}

	if err := cache.SetShareCode(ctx, code, trip.PublicID); err != nil {
		logger.Logger.Warn("Failed to cache share code mapping", zap.Error(err))
	}

	return s.buildDetail(ctx, &trip, viewerID), nil
}

func (s *TripService) UpdateTrip(ctx context.Context, userID, tripID int64, req dto.UpdateTripRequest) (*dto.TripDetail, error) {
	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.UserID != userID {
		return nil, pkgerrors.NotTripOwner
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
		trip.Title = *req.Title
	}
	if req.Destination != nil {
		updates["destination"] = *req.Destination
		trip.Destination = *req.Destination
	}
	if req.Visibility != nil {
		v := model.TripVisibility(*req.Visibility)
		if !model.ValidVisibilities[v] {
			return nil, pkgerrors.VisibilityInvalid
		}
		updates["visibility"] = v
		trip.Visibility = v
	}
	if req.StartDate != nil {
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			return nil, err
		}
		updates["start_date"] = startDate
		trip.StartDate = startDate

		// 日期变了，允许行前提醒重新投放
		if err := cache.UnmarkTripReminderScheduled(ctx, trip.PublicID); err != nil {
			logger.Logger.Warn("Failed to unmark trip reminder", zap.Error(err))
		}
	}

	if len(updates) > 0 {
		db := database.DB().WithContext(ctx)
		if err := db.Model(&model.Trip{}).Where("public_id = ?", tripID).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update trip: %w", err)
		}
	}

	return s.buildDetail(ctx, trip, userID), nil
}

func (s *TripService) DeleteTrip(ctx context.Context, userID, tripID int64) error {
	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return err
	}

	if trip.UserID != userID {
		return pkgerrors.NotTripOwner
	}
	if itinerary.IsPast(trip.StartDate, len(trip.Content.Itinerary), time.Now()) {
		return pkgerrors.TripPast
	}

	db := database.DB().WithContext(ctx)
	if err := db.Where("public_id = ?", tripID).Delete(&model.Trip{}).Error; err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	if err := cache.DeleteShareCode(ctx, trip.ShareCode); err != nil {
		logger.Logger.Warn("Failed to drop share code mapping", zap.Error(err))
	}

	return nil
}

func (s *TripService) ListTrips(ctx context.Context, userID int64, q dto.TripListQuery) ([]*dto.TripItem, string, error) {
	db := database.DB().WithContext(ctx)

	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}

	tx := db.Where("user_id = ?", userID)
	if q.Visibility != "" {
		if !model.ValidVisibilities[model.TripVisibility(q.Visibility)] {
			return nil, "", pkgerrors.VisibilityInvalid
		}
		tx = tx.Where("visibility = ?", q.Visibility)
	}
	if cursor := parseCursor(q.Cursor); cursor > 0 {
		tx = tx.Where("public_id < ?", cursor)
	}

	var trips []model.Trip
	if err := tx.Order("public_id DESC").Limit(limit + 1).Find(&trips).Error; err != nil {
		logger.Logger.Error("Failed to list trips",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, "", fmt.Errorf("failed to list trips: %w", err)
	}

	var nextCursor string
	if len(trips) > limit {
		trips = trips[:limit]
		nextCursor = strconv.FormatInt(trips[limit-1].PublicID, 10)
	}

	items := make([]*dto.TripItem, 0, len(trips))
	for i := range trips {
		item := buildItem(&trips[i], trips[i].UserID == userID)
		items = append(items, &item)
	}
	return items, nextCursor, nil
}

// ListMarketplace 公开浏览，只返回 public / curated 行程
func (s *TripService) ListMarketplace(ctx context.Context, q dto.MarketplaceQuery) ([]*dto.TripItem, string, error) {
	db := database.DB().WithContext(ctx)

	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}

	tx := db.Where("visibility IN ?", []model.TripVisibility{model.VisibilityPublic, model.VisibilityCurated})
	if q.Curated {
		tx = db.Where("visibility = ?", model.VisibilityCurated)
	}
	if q.Destination != "" {
		tx = tx.Where("destination ILIKE ?", "%"+q.Destination+"%")
	}
	if cursor := parseCursor(q.Cursor); cursor > 0 {
		tx = tx.Where("public_id < ?", cursor)
	}

	var trips []model.Trip
	if err := tx.Order("public_id DESC").Limit(limit + 1).Find(&trips).Error; err != nil {
		return nil, "", fmt.Errorf("failed to list marketplace trips: %w", err)
	}

	var nextCursor string
	if len(trips) > limit {
		trips = trips[:limit]
		nextCursor = strconv.FormatInt(trips[limit-1].PublicID, 10)
	}

	items := make([]*dto.TripItem, 0, len(trips))
	for i := range trips {
		item := buildItem(&trips[i], false)
		items = append(items, &item)
	}
	return items, nextCursor, nil
}

// CloneTrip 把别人的公开 / 精选行程复制成自己的私有行程。
// 票数和定稿标记不带过去，克隆出来的是一份干净的草稿
func (s *TripService) CloneTrip(ctx context.Context, userID, tripID int64) (*dto.TripDetail, error) {
	src, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if !itinerary.CanClone(src.Visibility) {
		return nil, pkgerrors.CloneNotAllowed
	}

	id, err := snowflake.NextID(snowflake.GeneratorTypeTrip)
	if err != nil {
		return nil, fmt.Errorf("failed to generate trip id: %w", err)
	}

	content := cloneContent(src.Content)

	clone := &model.Trip{
		PublicID:    id,
		UserID:      userID,
		Title:       src.Title,
		Destination: src.Destination,
		Visibility:  model.VisibilityPrivate,
		ShareCode:   uuid.NewString(),
		StartDate:   nil, // 克隆不继承日期，由新主人自己定
		Content:     content,
	}

	db := database.DB().WithContext(ctx)
	if err := db.Create(clone).Error; err != nil {
		return nil, fmt.Errorf("failed to clone trip: %w", err)
	}

	if err := queue.PublishTripCloned(model.TripClonedMessage{
		SourceTripID: src.PublicID,
		NewTripID:    clone.PublicID,
		ActorID:      userID,
		OccurredAt:   time.Now().Format(time.RFC3339),
	}); err != nil {
		// 克隆已落库，计数对账由 worker 兜底，失败只记日志
		logger.Logger.Warn("Failed to publish trip cloned event",
			zap.Int64("source_trip_id", src.PublicID),
			zap.Error(err),
		)
	}

	recordEvent(ctx, userID, "cloned", "trip", src.PublicID)

	return s.buildDetail(ctx, clone, userID), nil
}

// LoveTrip 点赞。redis SETNX 挡重复，数据库唯一索引兜底
func (s *TripService) LoveTrip(ctx context.Context, userID, tripID int64) (*dto.TripDetail, error) {
	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !s.canView(ctx, trip, userID) {
		return nil, pkgerrors.TripNotFound
	}

	first, err := cache.TryMarkLoved(ctx, tripID, userID)
	if err != nil {
		logger.Logger.Warn("Love dedup cache unavailable, falling through to database",
			zap.Error(err),
		)
	} else if !first {
		return nil, pkgerrors.AlreadyLoved
	}

	db := database.DB().WithContext(ctx)
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.TripLove{TripID: tripID, UserID: userID}).Error; err != nil {
			return err
		}
		return tx.Model(&model.Trip{}).
			Where("public_id = ?", tripID).
			UpdateColumn("love_count", gorm.Expr("love_count + 1")).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pkgerrors.AlreadyLoved
		}
		if unmarkErr := cache.UnmarkLoved(ctx, tripID, userID); unmarkErr != nil {
			logger.Logger.Warn("Failed to roll back love mark", zap.Error(unmarkErr))
		}
		return nil, fmt.Errorf("failed to record love: %w", err)
	}

	trip.LoveCount++
	recordEvent(ctx, userID, "loved", "trip", tripID)
	return s.buildDetail(ctx, trip, userID), nil
}

// AttachImage 登记一张行程图片并返回预签名上传地址
func (s *TripService) AttachImage(ctx context.Context, userID, tripID int64, req dto.AttachImageRequest) (*dto.TripImageItem, error) {
	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.UserID != userID {
		return nil, pkgerrors.NotTripOwner
	}
	if !objstore.Enabled() {
		return nil, pkgerrors.ObjectStoreDisabled
	}

	objectKey := fmt.Sprintf("trips/%d/%s", tripID, uuid.NewString())
	uploadURL, err := objstore.PresignPut(ctx, objectKey, req.ContentType)
	if err != nil {
		logger.Logger.Error("Failed to presign trip image upload",
			zap.Int64("trip_id", tripID),
			zap.Error(err),
		)
		return nil, pkgerrors.ImageUploadFailed
	}

	image := &model.TripImage{
		TripID:    tripID,
		ObjectKey: objectKey,
		URL:       objstore.PublicURL(objectKey),
		Position:  req.Position,
	}

	db := database.DB().WithContext(ctx)
	if err := db.Create(image).Error; err != nil {
		return nil, fmt.Errorf("failed to record trip image: %w", err)
	}

	return &dto.TripImageItem{
		ID:        strconv.FormatInt(image.ID, 10),
		URL:       image.URL,
		UploadURL: uploadURL,
		Position:  image.Position,
	}, nil
}

func (s *TripService) ListImages(ctx context.Context, viewerID, tripID int64) ([]dto.TripImageItem, error) {
	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !s.canView(ctx, trip, viewerID) {
		return nil, pkgerrors.TripNotFound
	}
	return s.loadImages(ctx, tripID), nil
}

func (s *TripService) DeleteImage(ctx context.Context, userID, tripID, imageID int64) error {
	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if trip.UserID != userID {
		return pkgerrors.NotTripOwner
	}

	db := database.DB().WithContext(ctx)
	var image model.TripImage
	if err := db.Where("id = ? AND trip_id = ?", imageID, tripID).First(&image).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return pkgerrors.ImageNotFound
		}
		return fmt.Errorf("failed to query trip image: %w", err)
	}

	if err := db.Delete(&image).Error; err != nil {
		return fmt.Errorf("failed to delete trip image: %w", err)
	}

	if objstore.Enabled() {
		if err := objstore.Delete(ctx, image.ObjectKey); err != nil {
			logger.Logger.Warn("Failed to delete image object",
				zap.String("object_key", image.ObjectKey),
				zap.Error(err),
			)
		}
	}
	return nil
}

// RoleFor 当前用户在行程里的协作角色，无任何关系时返回空串
func (s *TripService) RoleFor(ctx context.Context, trip *model.Trip, userID int64) model.CollaboratorRole {
	if userID == 0 {
		return ""
	}
	if trip.UserID == userID {
		return model.RoleOwner
	}

	db := database.DB().WithContext(ctx)
	var collab model.TripCollaborator
	if err := db.Where("trip_id = ? AND user_id = ?", trip.PublicID, userID).First(&collab).Error; err != nil {
		return ""
	}
	return collab.Role
}

// ==================== 内部方法 ====================

func (s *TripService) loadTrip(ctx context.Context, tripID int64) (*model.Trip, error) {
	db := database.DB().WithContext(ctx)

	var trip model.Trip
	if err := db.Where("public_id = ?", tripID).First(&trip).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.TripNotFound
		}
		return nil, fmt.Errorf("failed to query trip: %w", err)
	}
	return &trip, nil
}

func (s *TripService) canView(ctx context.Context, trip *model.Trip, viewerID int64) bool {
	if trip.Visibility != model.VisibilityPrivate {
		return true
	}
	return s.RoleFor(ctx, trip, viewerID) != ""
}

func (s *TripService) loadImages(ctx context.Context, tripID int64) []dto.TripImageItem {
	db := database.DB().WithContext(ctx)

	var images []model.TripImage
	if err := db.Where("trip_id = ?", tripID).Order("position ASC, id ASC").Find(&images).Error; err != nil {
		logger.Logger.Warn("Failed to load trip images",
			zap.Int64("trip_id", tripID),
			zap.Error(err),
		)
		return nil
	}

	items := make([]dto.TripImageItem, 0, len(images))
	for _, img := range images {
		items = append(items, dto.TripImageItem{
			ID:       strconv.FormatInt(img.ID, 10),
			URL:      img.URL,
			Position: img.Position,
		})
	}
	return items
}

func (s *TripService) buildDetail(ctx context.Context, trip *model.Trip, viewerID int64) *dto.TripDetail {
	role := s.RoleFor(ctx, trip, viewerID)
	isOwner := role == model.RoleOwner
	isPast := itinerary.IsPast(trip.StartDate, len(trip.Content.Itinerary), time.Now())

	costs := itinerary.ComputeCosts(trip.Content.Itinerary, trip.Content.Travelers)

	detail := &dto.TripDetail{
		TripItem:  buildItem(trip, isOwner),
		OwnerID:   strconv.FormatInt(trip.UserID, 10),
		Travelers: trip.Content.Travelers,
		Itinerary: trip.Content.Itinerary,
		CostTotals: dto.CostTotals{
			Total:  costs.Total.StringFixed(2),
			PerDay: make(map[int]string, len(costs.PerDay)),
			Payers: make(map[string]string, len(costs.Payers)),
		},
		Actions: dto.TripActions{
			CanEdit:        itinerary.CanCollaborate(role),
			CanDelete:      itinerary.CanDelete(isOwner, isPast),
			CanClone:       itinerary.CanClone(trip.Visibility),
			CanCollaborate: itinerary.CanCollaborate(role),
		},
		Images: s.loadImages(ctx, trip.PublicID),
	}
	for day, sum := range costs.PerDay {
		detail.CostTotals.PerDay[day] = sum.StringFixed(2)
	}
	for payer, sum := range costs.Payers {
		detail.CostTotals.Payers[payer] = sum.StringFixed(2)
	}
	return detail
}

func buildItem(trip *model.Trip, isOwner bool) dto.TripItem {
	dayCount := len(trip.Content.Itinerary)
	item := dto.TripItem{
		ID:          strconv.FormatInt(trip.PublicID, 10),
		Title:       trip.Title,
		Destination: trip.Destination,
		Visibility:  string(trip.Visibility),
		StartDate:   trip.StartDate,
		EndDate:     itinerary.EndDate(trip.StartDate, dayCount),
		DayCount:    dayCount,
		ItemCount:   countItems(trip.Content.Itinerary),
		LoveCount:   trip.LoveCount,
		CloneCount:  trip.CloneCount,
		IsPast:      itinerary.IsPast(trip.StartDate, dayCount, time.Now()),
		CreatedAt:   trip.CreatedAt,
		UpdatedAt:   trip.UpdatedAt,
	}
	if isOwner {
		item.ShareCode = trip.ShareCode
	}
	return item
}

func countItems(days []model.ItineraryDay) int {
	total := 0
	for _, d := range days {
		total += len(d.Activities)
	}
	return total
}

func cloneContent(src model.GeneratedContent) model.GeneratedContent {
	out := model.GeneratedContent{
		Travelers: append([]model.Traveler(nil), src.Travelers...),
		Itinerary: make([]model.ItineraryDay, 0, len(src.Itinerary)),
	}

	for _, day := range src.Itinerary {
		cp := day
		cp.Activities = make([]model.Activity, 0, len(day.Activities))
		for _, act := range day.Activities {
			a := act
			a.ID = newActivityID()
			a.IsFinal = false
			a.Votes = model.VoteTally{}
			cp.Activities = append(cp.Activities, a)
		}
		out.Itinerary = append(out.Itinerary, cp)
	}
	return out
}

// ==================== 包级工具 ====================

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, pkgerrors.InvalidDate
	}
	return &t, nil
}

func parseCursor(s string) int64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func newTravelerID() string {
	id, err := snowflake.NextID(snowflake.GeneratorTypeItem)
	if err != nil {
		return uuid.NewString()
	}
	return strconv.FormatInt(id, 10)
}

func newActivityID() string {
	id, err := snowflake.NextID(snowflake.GeneratorTypeItem)
	if err != nil {
		return uuid.NewString()
	}
	return strconv.FormatInt(id, 10)
}

// recordEvent 写用户动态，失败不影响主流程
func recordEvent(ctx context.Context, userID int64, verb, subjectType string, subjectID int64) {
	db := database.DB().WithContext(ctx)
	event := &model.ActivityEvent{
		UserID:      userID,
		Verb:        verb,
		SubjectType: subjectType,
		SubjectID:   subjectID,
	}
	if err := db.Create(event).Error; err != nil {
		logger.Logger.Warn("Failed to record activity event",
			zap.Int64("user_id", userID),
			zap.String("verb", verb),
			zap.Error(err),
		)
	}
}
