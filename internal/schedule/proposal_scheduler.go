package schedule

// 投标过期兜底：延迟队列只接 24 小时内到期的消息，
// 更远的过期时间靠这里的周期扫描收口

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"Tripweave/internal/cache"
	"Tripweave/internal/model"
	"Tripweave/internal/repository/query"
	"Tripweave/pkg/logger"
)

var (
	proposalSchedulerOnce sync.Once
	proposalSchedulerInst *ProposalScheduler
)

type ProposalScheduler struct {
	logger *zap.Logger
}

func GetProposalScheduler() *ProposalScheduler {
	proposalSchedulerOnce.Do(func() {
		proposalSchedulerInst = &ProposalScheduler{
			logger: logger.Logger,
		}
	})
	return proposalSchedulerInst
}

// ExpirePendingProposals 把已过 ExpiresAt 仍 pending 的投标批量置为 expired
func (s *ProposalScheduler) ExpirePendingProposals(ctx context.Context) error {
	locked, err := cache.TryLock(ctx, "schedule:proposal_expire", 2*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to acquire scheduler lock: %w", err)
	}
	if !locked {
		s.logger.Info("Another instance holds the proposal expire lock, skipping")
		return nil
	}
	defer func() {
		if err := cache.Unlock(context.Background(), "schedule:proposal_expire"); err != nil {
			s.logger.Warn("Failed to release scheduler lock", zap.Error(err))
		}
	}()

	result, err := query.Proposal.WithContext(ctx).
		Where(query.Proposal.Status.Eq(string(model.ProposalStatusPending))).
		Where(query.Proposal.ExpiresAt.Lte(time.Now())).
		Update(query.Proposal.Status, model.ProposalStatusExpired)
	if err != nil {
		return fmt.Errorf("failed to expire proposals: %w", err)
	}

	if result.RowsAffected > 0 {
		s.logger.Info("Expired pending proposals",
			zap.Int64("count", result.RowsAffected),
		)
	}
	return nil
}
