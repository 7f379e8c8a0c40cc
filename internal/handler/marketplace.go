package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"Tripweave/internal/model/dto"
	"Tripweave/internal/service"
	"Tripweave/pkg/response"
)

// ========== Proposal ==========

// ListProposals 投标列表，所有者看全部，商家只看自己的
// GET /v1/trips/:trip_id/proposals
func ListProposals(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}

	var query dto.MarketplaceListQuery
	if err := c.Bind(&query); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	items, nextCursor, err := service.Proposal().ListProposals(ctx, userID, tripID, query)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.SuccessWithMeta(ctx, c, items, listMeta(nextCursor))
}

// CreateProposal 商家投标，仅 marketplace 可见性的行程接受
// POST /v1/trips/:trip_id/proposals
func CreateProposal(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}

	var req dto.CreateProposalRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	item, err := service.Proposal().CreateProposal(ctx, userID, tripID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Created(ctx, c, item)
}

// UpdateProposal 投标状态迁移
// PATCH /v1/trips/:trip_id/proposals/:proposal_id
func UpdateProposal(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}
	proposalID, ok := paramID(ctx, c, "proposal_id")
	if !ok {
		return
	}

	var req dto.UpdateProposalRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	item, err := service.Proposal().UpdateProposal(ctx, userID, tripID, proposalID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, item)
}

// ========== Suggestion ==========

// ListSuggestions 推荐列表
// GET /v1/trips/:trip_id/suggestions
func ListSuggestions(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}

	var query dto.MarketplaceListQuery
	if err := c.Bind(&query); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	items, nextCursor, err := service.Suggestion().ListSuggestions(ctx, userID, tripID, query)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.SuccessWithMeta(ctx, c, items, listMeta(nextCursor))
}

// CreateSuggestion 达人提交推荐
// POST /v1/trips/:trip_id/suggestions
func CreateSuggestion(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}

	var req dto.CreateSuggestionRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	item, err := service.Suggestion().CreateSuggestion(ctx, userID, tripID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Created(ctx, c, item)
}

// ResolveSuggestion 所有者处理推荐（used / dismissed）
// PATCH /v1/trips/:trip_id/suggestions/:suggestion_id
func ResolveSuggestion(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}
	suggestionID, ok := paramID(ctx, c, "suggestion_id")
	if !ok {
		return
	}

	var req dto.UpdateSuggestionRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	item, err := service.Suggestion().ResolveSuggestion(ctx, userID, tripID, suggestionID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, item)
}
