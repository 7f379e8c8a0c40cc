package model

// 队列消息体定义。MessageID 由 snowflake 生成，消费侧用它做幂等去重。

// ItineraryReorderedMessage 行程重排事件，驱动计数对账与协作方通知
type ItineraryReorderedMessage struct {
	MessageID  string `json:"message_id"`
	TripID     int64  `json:"trip_id"`
	ActorID    int64  `json:"actor_id"`
	ActivityID string `json:"activity_id"`
	TargetDay  int    `json:"target_day"`
	TargetIdx  int    `json:"target_index"`
	OccurredAt string `json:"occurred_at"` // RFC3339
}

// TripClonedMessage 克隆事件，worker 侧累加源行程的 clone 计数
type TripClonedMessage struct {
	MessageID    string `json:"message_id"`
	SourceTripID int64  `json:"source_trip_id"`
	NewTripID    int64  `json:"new_trip_id"`
	ActorID      int64  `json:"actor_id"`
	OccurredAt   string `json:"occurred_at"`
}

// ProposalCreatedMessage 投标创建事件，通知行程所有者
type ProposalCreatedMessage struct {
	MessageID  string `json:"message_id"`
	ProposalID int64  `json:"proposal_id"`
	TripID     int64  `json:"trip_id"`
	OwnerID    int64  `json:"owner_id"`
	OccurredAt string `json:"occurred_at"`
}

// ProposalExpireMessage 投标过期延迟消息
// 延迟超过 24 小时的由 scheduler 扫描兜底，不走延迟队列
type ProposalExpireMessage struct {
	MessageID    string `json:"message_id"`
	ProposalID   int64  `json:"proposal_id"`
	ScheduledAt  string `json:"scheduled_at"`
	DelaySeconds int    `json:"delay_seconds"`
}

// TripReminderMessage 行前提醒延迟消息
type TripReminderMessage struct {
	MessageID    string  `json:"message_id"`
	TripID       int64   `json:"trip_id"`
	UserIDs      []int64 `json:"user_ids"` // 所有者 + 协作者
	StartDate    string  `json:"start_date"`
	ScheduledAt  string  `json:"scheduled_at"`
	DelaySeconds int     `json:"delay_seconds"`
}
