package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"Tripweave/config"
	"Tripweave/internal/model"
	"Tripweave/internal/model/dto"
	"Tripweave/internal/queue"
	pkgerrors "Tripweave/pkg/errors"
	"Tripweave/pkg/logger"
	"Tripweave/pkg/snowflake"
	"Tripweave/storage/database"
)

// 投标只对 marketplace 可见性的行程开放。
// 状态机：pending -> accepted | declined | withdrawn | expired，
// accepted -> withdrawal_requested -> withdrawn | accepted

type ProposalService struct{}

var (
	proposalService *ProposalService
	proposalOnce    sync.Once
)

func Proposal() *ProposalService {
	proposalOnce.Do(func() {
		proposalService = &ProposalService{}
	})
	return proposalService
}

// 延迟消息只负责 24 小时内的过期，更久的由 scheduler 扫描兜底
const maxExpireDelay = 24 * time.Hour

func (s *ProposalService) CreateProposal(ctx context.Context, businessID, tripID int64, req dto.CreateProposalRequest) (*dto.ProposalItem, error) {
	trip, err := Trip().loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Visibility != model.VisibilityMarketplace {
		return nil, pkgerrors.MarketplaceRequired
	}

	business, err := User().loadProfile(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if !business.GuideMode {
		return nil, pkgerrors.CollabRoleDenied
	}

	id, err := snowflake.NextID(snowflake.GeneratorTypeProposal)
	if err != nil {
		return nil, fmt.Errorf("failed to generate proposal id: %w", err)
	}

	expireDays := config.Cfg.ProposalExpireDays
	if expireDays <= 0 {
		expireDays = 14
	}

	proposal := &model.Proposal{
		PublicID:       id,
		TripID:         tripID,
		ActivityID:     req.ActivityID,
		BusinessUserID: businessID,
		Message:        req.Message,
		AmountCents:    req.AmountCents,
		Status:         model.ProposalStatusPending,
		ExpiresAt:      time.Now().AddDate(0, 0, expireDays),
	}

	db := database.DB().WithContext(ctx)
	if err := db.Create(proposal).Error; err != nil {
		logger.Logger.Error("Failed to create proposal",
			zap.Int64("trip_id", tripID),
			zap.Int64("business_id", businessID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}

	if err := queue.PublishProposalCreated(model.ProposalCreatedMessage{
		ProposalID: proposal.PublicID,
		TripID:     tripID,
		OwnerID:    trip.UserID,
		OccurredAt: time.Now().Format(time.RFC3339),
	}); err != nil {
		logger.Logger.Warn("Failed to publish proposal created event", zap.Error(err))
	}

	if delay := time.Until(proposal.ExpiresAt); delay <= maxExpireDelay {
		if err := queue.PublishProposalExpire(model.ProposalExpireMessage{
			ProposalID:   proposal.PublicID,
			ScheduledAt:  time.Now().Format(time.RFC3339),
			DelaySeconds: int(delay.Seconds()),
		}); err != nil {
			logger.Logger.Warn("Failed to publish proposal expire message", zap.Error(err))
		}
	}

	return buildProposalItem(proposal), nil
}

func (s *ProposalService) ListProposals(ctx context.Context, userID, tripID int64, q dto.MarketplaceListQuery) ([]*dto.ProposalItem, string, error) {
	trip, err := Trip().loadTrip(ctx, tripID)
	if err != nil {
		return nil, "", err
	}

	db := database.DB().WithContext(ctx)

	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}

	tx := db.Where("trip_id = ?", tripID)
	// 所有者看全部，商家只看自己的
	if trip.UserID != userID {
		tx = tx.Where("business_user_id = ?", userID)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if cursor := parseCursor(q.Cursor); cursor > 0 {
		tx = tx.Where("public_id < ?", cursor)
	}

	var proposals []model.Proposal
	if err := tx.Order("public_id DESC").Limit(limit + 1).Find(&proposals).Error; err != nil {
		return nil, "", fmt.Errorf("failed to list proposals: %w", err)
	}

	var nextCursor string
	if len(proposals) > limit {
		proposals = proposals[:limit]
		nextCursor = strconv.FormatInt(proposals[limit-1].PublicID, 10)
	}

	items := make([]*dto.ProposalItem, 0, len(proposals))
	for i := range proposals {
		items = append(items, buildProposalItem(&proposals[i]))
	}
	return items, nextCursor, nil
}

// UpdateProposal 状态迁移。所有者处理 accept / decline 和撤回审批，
// 商家自己只能撤回或发起撤回请求
func (s *ProposalService) UpdateProposal(ctx context.Context, userID, tripID, proposalID int64, req dto.UpdateProposalRequest) (*dto.ProposalItem, error) {
	trip, err := Trip().loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	db := database.DB().WithContext(ctx)
	var proposal model.Proposal
	if err := db.Where("public_id = ? AND trip_id = ?", proposalID, tripID).First(&proposal).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.ProposalNotFound
		}
		return nil, fmt.Errorf("failed to query proposal: %w", err)
	}

	target := model.ProposalStatus(req.Status)
	if proposal.Status == model.ProposalStatusExpired {
		return nil, pkgerrors.ProposalAlreadyExpired
	}
	if !proposal.Status.CanTransition(target) {
		return nil, pkgerrors.ProposalStatusInvalid
	}

	isOwner := trip.UserID == userID
	isBusiness := proposal.BusinessUserID == userID
	if !allowedTransition(proposal.Status, target, isOwner, isBusiness) {
		return nil, pkgerrors.CollabRoleDenied
	}

	if err := db.Model(&model.Proposal{}).
		Where("public_id = ?", proposalID).
		Update("status", target).Error; err != nil {
		return nil, fmt.Errorf("failed to update proposal status: %w", err)
	}
	proposal.Status = target

	return buildProposalItem(&proposal), nil
}

// allowedTransition 按当前状态和角色划分可操作的目标状态
func allowedTransition(current, target model.ProposalStatus, isOwner, isBusiness bool) bool {
	switch target {
	case model.ProposalStatusAccepted, model.ProposalStatusDeclined:
		return isOwner
	case model.ProposalStatusWithdrawn:
		// pending 的商家直接撤，withdrawal_requested 的只能由所有者批
		if current == model.ProposalStatusWithdrawalRequested {
			return isOwner
		}
		return isBusiness
	case model.ProposalStatusWithdrawalRequested:
		return isBusiness
	default:
		return false
	}
}

func buildProposalItem(p *model.Proposal) *dto.ProposalItem {
	return &dto.ProposalItem{
		ID:          strconv.FormatInt(p.PublicID, 10),
		TripID:      strconv.FormatInt(p.TripID, 10),
		ActivityID:  p.ActivityID,
		BusinessID:  strconv.FormatInt(p.BusinessUserID, 10),
		Message:     p.Message,
		Status:      string(p.Status),
		AmountCents: p.AmountCents,
		CreatedAt:   p.CreatedAt,
		ExpiresAt:   p.ExpiresAt,
	}
}
