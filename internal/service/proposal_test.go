package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tripweave/internal/model"
	"Tripweave/internal/model/dto"
	pkgerrors "Tripweave/pkg/errors"
	"Tripweave/storage/database"
)

func TestCreateProposal(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	seedProfile(t, 300, true)
	seedProfile(t, 400, false)
	open := seedTrip(t, 100, model.VisibilityMarketplace, 2)
	closed := seedTrip(t, 100, model.VisibilityPublic, 2)

	req := dto.CreateProposalRequest{Message: "Private tea ceremony, group rate", AmountCents: 48000}

	_, err := Proposal().CreateProposal(ctx, 300, closed.PublicID, req)
	assert.ErrorIs(t, err, pkgerrors.MarketplaceRequired)

	_, err = Proposal().CreateProposal(ctx, 400, open.PublicID, req)
	assert.ErrorIs(t, err, pkgerrors.CollabRoleDenied)

	item, err := Proposal().CreateProposal(ctx, 300, open.PublicID, req)
	require.NoError(t, err)
	assert.Equal(t, string(model.ProposalStatusPending), item.Status)
	assert.Equal(t, int64(48000), item.AmountCents)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 14), item.ExpiresAt, time.Minute)
}

func TestUpdateProposalRoleGating(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	seedProfile(t, 300, true)
	trip := seedTrip(t, 100, model.VisibilityMarketplace, 1)

	item, err := Proposal().CreateProposal(ctx, 300, trip.PublicID, dto.CreateProposalRequest{Message: "Bid"})
	require.NoError(t, err)
	proposalID := mustParseID(t, item.ID)

	// 商家不能替所有者拍板
	_, err = Proposal().UpdateProposal(ctx, 300, trip.PublicID, proposalID, dto.UpdateProposalRequest{Status: "accepted"})
	assert.ErrorIs(t, err, pkgerrors.CollabRoleDenied)

	got, err := Proposal().UpdateProposal(ctx, 100, trip.PublicID, proposalID, dto.UpdateProposalRequest{Status: "accepted"})
	require.NoError(t, err)
	assert.Equal(t, string(model.ProposalStatusAccepted), got.Status)

	// accepted 不能直接 declined
	_, err = Proposal().UpdateProposal(ctx, 100, trip.PublicID, proposalID, dto.UpdateProposalRequest{Status: "declined"})
	assert.ErrorIs(t, err, pkgerrors.ProposalStatusInvalid)

	// 商家发起撤回，批准只能由所有者做，商家自己批不动
	got, err = Proposal().UpdateProposal(ctx, 300, trip.PublicID, proposalID, dto.UpdateProposalRequest{Status: "withdrawal_requested"})
	require.NoError(t, err)
	assert.Equal(t, string(model.ProposalStatusWithdrawalRequested), got.Status)

	_, err = Proposal().UpdateProposal(ctx, 300, trip.PublicID, proposalID, dto.UpdateProposalRequest{Status: "withdrawn"})
	assert.ErrorIs(t, err, pkgerrors.CollabRoleDenied)

	got, err = Proposal().UpdateProposal(ctx, 100, trip.PublicID, proposalID, dto.UpdateProposalRequest{Status: "withdrawn"})
	require.NoError(t, err)
	assert.Equal(t, string(model.ProposalStatusWithdrawn), got.Status)
}

func TestUpdateProposalPendingWithdraw(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	seedProfile(t, 300, true)
	trip := seedTrip(t, 100, model.VisibilityMarketplace, 1)

	item, err := Proposal().CreateProposal(ctx, 300, trip.PublicID, dto.CreateProposalRequest{Message: "Bid"})
	require.NoError(t, err)

	got, err := Proposal().UpdateProposal(ctx, 300, trip.PublicID, mustParseID(t, item.ID), dto.UpdateProposalRequest{Status: "withdrawn"})
	require.NoError(t, err)
	assert.Equal(t, string(model.ProposalStatusWithdrawn), got.Status)
}

func TestUpdateProposalExpiredGuard(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	seedProfile(t, 300, true)
	trip := seedTrip(t, 100, model.VisibilityMarketplace, 1)

	item, err := Proposal().CreateProposal(ctx, 300, trip.PublicID, dto.CreateProposalRequest{Message: "Bid"})
	require.NoError(t, err)
	proposalID := mustParseID(t, item.ID)

	require.NoError(t, database.DB().Model(&model.Proposal{}).
		Where("public_id = ?", proposalID).
		Update("status", model.ProposalStatusExpired).Error)

	_, err = Proposal().UpdateProposal(ctx, 100, trip.PublicID, proposalID, dto.UpdateProposalRequest{Status: "accepted"})
	assert.ErrorIs(t, err, pkgerrors.ProposalAlreadyExpired)
}

func TestListProposalsVisibility(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	seedProfile(t, 300, true)
	seedProfile(t, 301, true)
	trip := seedTrip(t, 100, model.VisibilityMarketplace, 1)

	_, err := Proposal().CreateProposal(ctx, 300, trip.PublicID, dto.CreateProposalRequest{Message: "A"})
	require.NoError(t, err)
	_, err = Proposal().CreateProposal(ctx, 301, trip.PublicID, dto.CreateProposalRequest{Message: "B"})
	require.NoError(t, err)

	all, _, err := Proposal().ListProposals(ctx, 100, trip.PublicID, dto.MarketplaceListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, _, err := Proposal().ListProposals(ctx, 300, trip.PublicID, dto.MarketplaceListQuery{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "A", mine[0].Message)
}
