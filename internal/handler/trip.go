package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"Tripweave/internal/model/dto"
	"Tripweave/internal/service"
	pkgerrors "Tripweave/pkg/errors"
	"Tripweave/pkg/response"
)

// ListTrips 行程列表
// GET /v1/trips
func ListTrips(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var query dto.TripListQuery
	if err := c.Bind(&query); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	items, nextCursor, err := service.Trip().ListTrips(ctx, userID, query)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.SuccessWithMeta(ctx, c, items, listMeta(nextCursor))
}

// CreateTrip 创建行程
// POST /v1/trips
func CreateTrip(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	detail, err := service.Trip().CreateTrip(ctx, userID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Created(ctx, c, detail)
}

// GetTrip 行程详情
// GET /v1/trips/:trip_id
func GetTrip(ctx context.Context, c *app.RequestContext) {
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}

	detail, err := service.Trip().GetTrip(ctx, optionalUser(ctx, c), tripID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, detail)
}

// UpdateTrip 更新行程标量字段
// PATCH /v1/trips/:trip_id
func UpdateTrip(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}

	var req dto.UpdateTripRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	detail, err := service.Trip().UpdateTrip(ctx, userID, tripID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, detail)
}

// DeleteTrip 删除行程（所有者且未成行）
// DELETE /v1/trips/:trip_id
func DeleteTrip(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}

	if err := service.Trip().DeleteTrip(ctx, userID, tripID); err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.NoContent(ctx, c)
}

// CloneTrip 克隆公开 / 精选行程
// POST /v1/trips/:trip_id/clone
func CloneTrip(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}

	detail, err := service.Trip().CloneTrip(ctx, userID, tripID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Created(ctx, c, detail)
}

// LoveTrip 点赞，同一用户只计一次
// POST /v1/trips/:trip_id/love
func LoveTrip(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}

	detail, err := service.Trip().LoveTrip(ctx, userID, tripID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, detail)
}

// GetSharedTrip 分享码查看行程
// GET /v1/trips/shared/:share_code
func GetSharedTrip(ctx context.Context, c *app.RequestContext) {
	code := c.Param("share_code")
	if code == "" {
		response.Error(ctx, c, pkgerrors.ShareCodeNotFound)
		return
	}

	detail, err := service.Trip().GetTripByShareCode(ctx, optionalUser(ctx, c), code)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, detail)
}

// ListMarketplaceTrips 集市浏览
// GET /v1/marketplace/trips
func ListMarketplaceTrips(ctx context.Context, c *app.RequestContext) {
	var query dto.MarketplaceQuery
	if err := c.Bind(&query); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	items, nextCursor, err := service.Trip().ListMarketplace(ctx, query)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.SuccessWithMeta(ctx, c, items, listMeta(nextCursor))
}
