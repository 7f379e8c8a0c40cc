package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"Tripweave/internal/cache"
	"Tripweave/internal/model"
	"Tripweave/internal/repository/query"
	"Tripweave/pkg/errors"
	"Tripweave/pkg/logger"
	"Tripweave/storage/database"
	"Tripweave/storage/mq"
)

// StartTripClonedConsumer 克隆事件消费者，累加源行程的克隆计数
func StartTripClonedConsumer(ctx context.Context) error {
	handler := func(body []byte) error {
		var msg model.TripClonedMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal trip cloned message: %w", err)
		}

		processed, err := cache.TryMarkMessageProcessing(ctx, msg.MessageID, 24*time.Hour)
		if err != nil {
			logger.Logger.Warn("Failed to check message processed status",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
			// 检查失败时继续处理，可能重复但不阻塞业务
		} else if !processed {
			return &errors.SkipMessageError{Reason: fmt.Sprintf("Message %s already processed", msg.MessageID)}
		}

		db := database.DB().WithContext(ctx)
		err = db.Model(&model.Trip{}).
			Where("public_id = ?", msg.SourceTripID).
			UpdateColumn("clone_count", gorm.Expr("clone_count + 1")).Error
		if err != nil {
			cache.UnmarkMessageProcessing(ctx, msg.MessageID)
			return fmt.Errorf("failed to increment clone count: %w", err)
		}

		logger.Logger.Info("Incremented trip clone count",
			zap.String("message_id", msg.MessageID),
			zap.Int64("source_trip_id", msg.SourceTripID),
		)

		if err := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); err != nil {
			logger.Logger.Warn("Failed to mark message as processed",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}
		return nil
	}

	return mq.Consume(mq.ConsumeOptions{
		Queue:         "events.trip.cloned",
		ConsumerTag:   "trip_cloned_consumer",
		PrefetchCount: 10,
		Handler:       handler,
	})
}

// StartItineraryReorderedConsumer 重排事件消费者，对账行程的 item_count
func StartItineraryReorderedConsumer(ctx context.Context) error {
	handler := func(body []byte) error {
		var msg model.ItineraryReorderedMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal itinerary reordered message: %w", err)
		}

		processed, err := cache.TryMarkMessageProcessing(ctx, msg.MessageID, 24*time.Hour)
		if err != nil {
			logger.Logger.Warn("Failed to check message processed status",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		} else if !processed {
			return &errors.SkipMessageError{Reason: fmt.Sprintf("Message %s already processed", msg.MessageID)}
		}

		if err := reconcileItemCount(ctx, msg.TripID); err != nil {
			cache.UnmarkMessageProcessing(ctx, msg.MessageID)
			return err
		}

		if err := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); err != nil {
			logger.Logger.Warn("Failed to mark message as processed",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}
		return nil
	}

	return mq.Consume(mq.ConsumeOptions{
		Queue:         "events.itinerary.reordered",
		ConsumerTag:   "itinerary_reordered_consumer",
		PrefetchCount: 10,
		Handler:       handler,
	})
}

// reconcileItemCount 用 JSONB 内容重算 item_count 冗余列
func reconcileItemCount(ctx context.Context, tripID int64) error {
	db := database.DB().WithContext(ctx)

	var trip model.Trip
	if err := db.Where("public_id = ?", tripID).First(&trip).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// 行程已删除，消息作废
			return nil
		}
		return fmt.Errorf("failed to query trip for reconcile: %w", err)
	}

	count := 0
	for _, day := range trip.Content.Itinerary {
		count += len(day.Activities)
	}

	if count == trip.ItemCount {
		return nil
	}

	err := db.Model(&model.Trip{}).
		Where("public_id = ?", tripID).
		UpdateColumn("item_count", count).Error
	if err != nil {
		return fmt.Errorf("failed to reconcile item count: %w", err)
	}

	logger.Logger.Info("Reconciled trip item count",
		zap.Int64("trip_id", tripID),
		zap.Int("item_count", count),
	)
	return nil
}

// StartProposalCreatedConsumer 投标创建事件消费者，给行程所有者写一条动态
func StartProposalCreatedConsumer(ctx context.Context) error {
	handler := func(body []byte) error {
		var msg model.ProposalCreatedMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal proposal created message: %w", err)
		}

		processed, err := cache.TryMarkMessageProcessing(ctx, msg.MessageID, 24*time.Hour)
		if err != nil {
			logger.Logger.Warn("Failed to check message processed status",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		} else if !processed {
			return &errors.SkipMessageError{Reason: fmt.Sprintf("Message %s already processed", msg.MessageID)}
		}

		db := database.DB().WithContext(ctx)
		event := &model.ActivityEvent{
			UserID:      msg.OwnerID,
			Verb:        "received_proposal",
			SubjectType: "proposal",
			SubjectID:   msg.ProposalID,
		}
		if err := db.Create(event).Error; err != nil {
			cache.UnmarkMessageProcessing(ctx, msg.MessageID)
			return fmt.Errorf("failed to record proposal event: %w", err)
		}

		if err := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); err != nil {
			logger.Logger.Warn("Failed to mark message as processed",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}
		return nil
	}

	return mq.Consume(mq.ConsumeOptions{
		Queue:         "events.proposal.created",
		ConsumerTag:   "proposal_created_consumer",
		PrefetchCount: 10,
		Handler:       handler,
	})
}

// StartProposalExpireConsumer 投标过期消费者，到期仍 pending 的投标置为 expired
func StartProposalExpireConsumer(ctx context.Context) error {
	handler := func(body []byte) error {
		var msg model.ProposalExpireMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal proposal expire message: %w", err)
		}

		processed, err := cache.TryMarkMessageProcessing(ctx, msg.MessageID, 24*time.Hour)
		if err != nil {
			logger.Logger.Warn("Failed to check message processed status",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		} else if !processed {
			return &errors.SkipMessageError{Reason: fmt.Sprintf("Message %s already processed", msg.MessageID)}
		}

		db := database.DB().WithContext(ctx)
		result := db.Model(&model.Proposal{}).
			Where("public_id = ? AND status = ? AND expires_at <= ?",
				msg.ProposalID, model.ProposalStatusPending, time.Now()).
			Update("status", model.ProposalStatusExpired)
		if result.Error != nil {
			cache.UnmarkMessageProcessing(ctx, msg.MessageID)
			return fmt.Errorf("failed to expire proposal: %w", result.Error)
		}

		if result.RowsAffected > 0 {
			logger.Logger.Info("Expired proposal",
				zap.String("message_id", msg.MessageID),
				zap.Int64("proposal_id", msg.ProposalID),
			)
		}

		if err := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); err != nil {
			logger.Logger.Warn("Failed to mark message as processed",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}
		return nil
	}

	return mq.Consume(mq.ConsumeOptions{
		Queue:         "scheduler.proposal.expire",
		ConsumerTag:   "proposal_expire_consumer",
		PrefetchCount: 10,
		Handler:       handler,
	})
}

// StartTripReminderConsumer 行前提醒消费者，给所有者和协作者写提醒动态
func StartTripReminderConsumer(ctx context.Context) error {
	handler := func(body []byte) error {
		var msg model.TripReminderMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal trip reminder message: %w", err)
		}

		processed, err := cache.TryMarkMessageProcessing(ctx, msg.MessageID, 24*time.Hour)
		if err != nil {
			logger.Logger.Warn("Failed to check message processed status",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		} else if !processed {
			return &errors.SkipMessageError{Reason: fmt.Sprintf("Message %s already processed", msg.MessageID)}
		}

		db := database.DB().WithContext(ctx)
		q := query.Use(db)

		// 投递前确认行程还在，调度和投递之间可能已被删除
		if _, err := q.Trip.GetByPublicID(msg.TripID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return &errors.SkipMessageError{Reason: fmt.Sprintf("Trip %d no longer exists", msg.TripID)}
			}
			cache.UnmarkMessageProcessing(ctx, msg.MessageID)
			return fmt.Errorf("failed to query trip: %w", err)
		}

		for _, userID := range msg.UserIDs {
			event := &model.ActivityEvent{
				UserID:      userID,
				Verb:        "trip_reminder",
				SubjectType: "trip",
				SubjectID:   msg.TripID,
			}
			if err := db.Create(event).Error; err != nil {
				logger.Logger.Warn("Failed to record reminder event",
					zap.Int64("user_id", userID),
					zap.Int64("trip_id", msg.TripID),
					zap.Error(err),
				)
			}
		}

		logger.Logger.Info("Delivered trip reminders",
			zap.String("message_id", msg.MessageID),
			zap.Int64("trip_id", msg.TripID),
			zap.Int("user_count", len(msg.UserIDs)),
		)

		if err := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); err != nil {
			logger.Logger.Warn("Failed to mark message as processed",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}
		return nil
	}

	return mq.Consume(mq.ConsumeOptions{
		Queue:         "scheduler.trip.reminder",
		ConsumerTag:   "trip_reminder_consumer",
		PrefetchCount: 10,
		Handler:       handler,
	})
}

// StartAllConsumers 启动所有消费者（worker 启动时调用）
func StartAllConsumers(ctx context.Context) {
	var wg sync.WaitGroup

	consumers := []struct {
		name     string
		consumer func(context.Context) error
	}{
		{"trip_cloned", StartTripClonedConsumer},
		{"itinerary_reordered", StartItineraryReorderedConsumer},
		{"proposal_created", StartProposalCreatedConsumer},
		{"proposal_expire", StartProposalExpireConsumer},
		{"trip_reminder", StartTripReminderConsumer},
	}

	for _, c := range consumers {
		wg.Add(1)
		go func(name string, consumer func(context.Context) error) {
			defer wg.Done()

			logger.Logger.Info("Starting consumer",
				zap.String("consumer_name", name),
			)

			if err := consumer(ctx); err != nil {
				logger.Logger.Error("Consumer exited with error",
					zap.String("consumer_name", name),
					zap.Error(err),
				)
			}
		}(c.name, c.consumer)
	}

	wg.Wait()
}
