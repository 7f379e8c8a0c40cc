package cache

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"Tripweave/storage/redis"
)

const (
	shareCodePrefix         = "trip:share"
	loveMarkPrefix          = "trip:love"
	reminderScheduledPrefix = "trip:reminder:scheduled"

	shareCodeTTL         = 6 * time.Hour
	loveMarkTTL          = 30 * 24 * time.Hour
	reminderScheduledTTL = 48 * time.Hour
)

// GetTripIDByShareCode 分享码 -> 行程 public_id，未命中返回 (0, nil)
func GetTripIDByShareCode(ctx context.Context, code string) (int64, error) {
	key := redis.Key(shareCodePrefix, code)
	id, err := redis.Client().Get(ctx, key).Int64()
	if err != nil {
		if err == goredis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get share code mapping: %w", err)
	}
	return id, nil
}

// SetShareCode 写入分享码映射
func SetShareCode(ctx context.Context, code string, tripID int64) error {
	key := redis.Key(shareCodePrefix, code)
	return redis.Client().Set(ctx, key, tripID, shareCodeTTL).Err()
}

// DeleteShareCode 行程删除或分享码轮换时清除映射
func DeleteShareCode(ctx context.Context, code string) error {
	key := redis.Key(shareCodePrefix, code)
	return redis.Client().Del(ctx, key).Err()
}

// TryMarkLoved 点赞去重的快路径，SETNX 命中失败说明已点过。
// 数据库唯一索引兜底，这里只是挡掉绝大多数重复请求
func TryMarkLoved(ctx context.Context, tripID, userID int64) (bool, error) {
	key := redis.Key(loveMarkPrefix, fmt.Sprintf("%d", tripID), fmt.Sprintf("%d", userID))
	result, err := redis.Client().SetNX(ctx, key, 1, loveMarkTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark trip loved: %w", err)
	}
	return result, nil
}

// UnmarkLoved 数据库写入失败时回滚点赞标记
func UnmarkLoved(ctx context.Context, tripID, userID int64) error {
	key := redis.Key(loveMarkPrefix, fmt.Sprintf("%d", tripID), fmt.Sprintf("%d", userID))
	return redis.Client().Del(ctx, key).Err()
}

// IsTripReminderScheduled 检查行前提醒消息是否已投放
func IsTripReminderScheduled(ctx context.Context, tripID int64) (bool, error) {
	key := redis.Key(reminderScheduledPrefix, fmt.Sprintf("%d", tripID))
	result, err := redis.Client().Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check trip reminder scheduled status: %w", err)
	}
	return result > 0, nil
}

// MarkTripReminderScheduled 标记行前提醒消息已投放
func MarkTripReminderScheduled(ctx context.Context, tripID int64) error {
	key := redis.Key(reminderScheduledPrefix, fmt.Sprintf("%d", tripID))
	return redis.Client().Set(ctx, key, "1", reminderScheduledTTL).Err()
}

// UnmarkTripReminderScheduled 行程日期变更后清除标记，允许重新投放
func UnmarkTripReminderScheduled(ctx context.Context, tripID int64) error {
	key := redis.Key(reminderScheduledPrefix, fmt.Sprintf("%d", tripID))
	return redis.Client().Del(ctx, key).Err()
}
