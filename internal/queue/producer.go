package queue

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"Tripweave/internal/model"
	"Tripweave/pkg/logger"
	"Tripweave/pkg/snowflake"
	"Tripweave/storage/mq"
)

// PublishTripCloned 发布克隆事件，worker 侧累加源行程的克隆计数
func PublishTripCloned(msg model.TripClonedMessage) error {
	if msg.MessageID == "" {
		id, err := snowflake.NextID(snowflake.GeneratorTypeMessage)
		if err != nil {
			logger.Logger.Error("Failed to generate message ID",
				zap.Int64("source_trip_id", msg.SourceTripID),
				zap.Error(err),
			)
			return fmt.Errorf("failed to generate message ID: %w", err)
		}
		msg.MessageID = fmt.Sprintf("trip_cloned_%d", id)
	}

	err := mq.PublishMessage(
		mq.EventsExchange,
		"trip.cloned",
		msg,
	)

	if err != nil {
		logger.Logger.Error("Failed to publish trip cloned message",
			zap.Int64("source_trip_id", msg.SourceTripID),
			zap.Int64("new_trip_id", msg.NewTripID),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Published trip cloned message",
		zap.String("message_id", msg.MessageID),
		zap.Int64("source_trip_id", msg.SourceTripID),
	)

	return nil
}

// PublishItineraryReordered 发布看板重排事件，驱动计数对账与协作方通知
func PublishItineraryReordered(msg model.ItineraryReorderedMessage) error {
	if msg.MessageID == "" {
		id, err := snowflake.NextID(snowflake.GeneratorTypeMessage)
		if err != nil {
			return fmt.Errorf("failed to generate message ID: %w", err)
		}
		msg.MessageID = fmt.Sprintf("reorder_%d", id)
	}

	err := mq.PublishMessage(
		mq.EventsExchange,
		"itinerary.reordered",
		msg,
	)

	if err != nil {
		logger.Logger.Error("Failed to publish itinerary reordered message",
			zap.Int64("trip_id", msg.TripID),
			zap.String("activity_id", msg.ActivityID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// PublishProposalCreated 发布投标创建事件，通知行程所有者
func PublishProposalCreated(msg model.ProposalCreatedMessage) error {
	if msg.MessageID == "" {
		id, err := snowflake.NextID(snowflake.GeneratorTypeMessage)
		if err != nil {
			return fmt.Errorf("failed to generate message ID: %w", err)
		}
		msg.MessageID = fmt.Sprintf("proposal_created_%d", id)
	}

	err := mq.PublishMessage(
		mq.EventsExchange,
		"proposal.created",
		msg,
	)

	if err != nil {
		logger.Logger.Error("Failed to publish proposal created message",
			zap.Int64("proposal_id", msg.ProposalID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// PublishProposalExpire 发布投标过期延迟消息
func PublishProposalExpire(msg model.ProposalExpireMessage) error {
	if msg.MessageID == "" {
		id, err := snowflake.NextID(snowflake.GeneratorTypeMessage)
		if err != nil {
			return fmt.Errorf("failed to generate message ID: %w", err)
		}
		msg.MessageID = fmt.Sprintf("proposal_expire_%d", id)
	}

	delay := time.Duration(msg.DelaySeconds) * time.Second

	err := mq.PublishDelayedMessage(
		mq.DelayedExchange,
		"scheduler.proposal.expire",
		delay,
		msg,
	)

	if err != nil {
		logger.Logger.Error("Failed to publish proposal expire message",
			zap.Int64("proposal_id", msg.ProposalID),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Published proposal expire message",
		zap.String("message_id", msg.MessageID),
		zap.Int64("proposal_id", msg.ProposalID),
		zap.Duration("delay", delay),
	)

	return nil
}

// PublishTripReminder 发布行前提醒延迟消息
func PublishTripReminder(msg model.TripReminderMessage) error {
	if msg.MessageID == "" {
		id, err := snowflake.NextID(snowflake.GeneratorTypeMessage)
		if err != nil {
			return fmt.Errorf("failed to generate message ID: %w", err)
		}
		msg.MessageID = fmt.Sprintf("trip_reminder_%d", id)
	}

	delay := time.Duration(msg.DelaySeconds) * time.Second

	err := mq.PublishDelayedMessage(
		mq.DelayedExchange,
		"scheduler.trip.reminder",
		delay,
		msg,
	)

	if err != nil {
		logger.Logger.Error("Failed to publish trip reminder message",
			zap.Int64("trip_id", msg.TripID),
			zap.Int("user_count", len(msg.UserIDs)),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Published trip reminder message",
		zap.String("message_id", msg.MessageID),
		zap.Int64("trip_id", msg.TripID),
		zap.Int("user_count", len(msg.UserIDs)),
		zap.Duration("delay", delay),
	)

	return nil
}
