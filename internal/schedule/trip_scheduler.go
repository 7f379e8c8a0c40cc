package schedule

// 行程提醒调度器：每天扫描明天开始的行程，给所有者和协作者投递延迟提醒

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"Tripweave/config"
	"Tripweave/internal/cache"
	"Tripweave/internal/model"
	"Tripweave/internal/queue"
	"Tripweave/internal/repository/query"
	"Tripweave/pkg/logger"
	"Tripweave/storage/database"
)

var (
	tripSchedulerOnce sync.Once
	tripSchedulerInst *TripScheduler
)

type TripScheduler struct {
	logger     *zap.Logger
	jobRunning bool
	jobMu      sync.Mutex
}

func GetTripScheduler() *TripScheduler {
	tripSchedulerOnce.Do(func() {
		tripSchedulerInst = &TripScheduler{
			logger: logger.Logger,
		}
	})
	return tripSchedulerInst
}

// ScheduleTripReminders 扫描明天开始的行程并投递提醒消息
// 多实例部署时靠 redis 锁保证同一轮只有一个实例执行
func (s *TripScheduler) ScheduleTripReminders(ctx context.Context) error {
	s.jobMu.Lock()
	if s.jobRunning {
		s.jobMu.Unlock()
		s.logger.Info("Trip reminder job already running, skipping")
		return nil
	}
	s.jobRunning = true
	s.jobMu.Unlock()

	defer func() {
		s.jobMu.Lock()
		s.jobRunning = false
		s.jobMu.Unlock()
	}()

	locked, err := cache.TryLock(ctx, "schedule:trip_reminder", 5*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to acquire scheduler lock: %w", err)
	}
	if !locked {
		s.logger.Info("Another instance holds the trip reminder lock, skipping")
		return nil
	}
	defer func() {
		if err := cache.Unlock(context.Background(), "schedule:trip_reminder"); err != nil {
			s.logger.Warn("Failed to release scheduler lock", zap.Error(err))
		}
	}()

	startTime := time.Now()
	tomorrow := startTime.AddDate(0, 0, 1)
	dayStart := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	trips, err := query.Trip.ListStartingBetween(
		dayStart.Format("2006-01-02"), dayEnd.Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("failed to query trips starting tomorrow: %w", err)
	}

	if len(trips) == 0 {
		s.logger.Info("No trips starting tomorrow")
		return nil
	}

	s.logger.Info("Found trips to remind",
		zap.Int("trip_count", len(trips)),
	)

	scheduled := 0
	for i := range trips {
		trip := trips[i]

		already, err := cache.IsTripReminderScheduled(ctx, trip.PublicID)
		if err != nil {
			s.logger.Warn("Failed to check reminder scheduled status",
				zap.Int64("trip_id", trip.PublicID),
				zap.Error(err),
			)
			continue
		}
		if already {
			continue
		}

		if err := s.scheduleTripReminder(ctx, trip); err != nil {
			s.logger.Error("Failed to schedule trip reminder",
				zap.Int64("trip_id", trip.PublicID),
				zap.Error(err),
			)
			continue
		}
		scheduled++
	}

	s.logger.Info("Trip reminder scheduler completed",
		zap.Duration("duration", time.Since(startTime)),
		zap.Int("scheduled", scheduled),
	)
	return nil
}

func (s *TripScheduler) scheduleTripReminder(ctx context.Context, trip *model.Trip) error {
	userIDs := []int64{trip.UserID}

	var collaborators []model.TripCollaborator
	if err := database.DB().WithContext(ctx).
		Where("trip_id = ?", trip.PublicID).
		Find(&collaborators).Error; err != nil {
		s.logger.Warn("Failed to load collaborators, reminding owner only",
			zap.Int64("trip_id", trip.PublicID),
			zap.Error(err),
		)
	} else {
		for i := range collaborators {
			if collaborators[i].UserID != trip.UserID {
				userIDs = append(userIDs, collaborators[i].UserID)
			}
		}
	}

	// 提醒时刻固定在开始前一天的 TripReminderHour（UTC）
	now := time.Now()
	remindAt := time.Date(now.Year(), now.Month(), now.Day(),
		config.Cfg.TripReminderHour, 0, 0, 0, time.UTC)
	if !remindAt.After(now) {
		// 今天的提醒时刻已过就立即投递
		remindAt = now
	}
	delay := time.Until(remindAt)
	if delay < 0 {
		delay = 0
	}
	if config.Cfg.IsDevelopment() {
		delay = time.Minute
	}

	startDate := ""
	if trip.StartDate != nil {
		startDate = trip.StartDate.Format("2006-01-02")
	}

	if err := queue.PublishTripReminder(model.TripReminderMessage{
		TripID:       trip.PublicID,
		UserIDs:      userIDs,
		StartDate:    startDate,
		ScheduledAt:  now.Format(time.RFC3339),
		DelaySeconds: int(delay.Seconds()),
	}); err != nil {
		return err
	}

	if err := cache.MarkTripReminderScheduled(ctx, trip.PublicID); err != nil {
		s.logger.Warn("Failed to mark trip reminder scheduled",
			zap.Int64("trip_id", trip.PublicID),
			zap.Error(err),
		)
	}
	return nil
}
