package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"Tripweave/internal/model/dto"
	"Tripweave/internal/service"
	pkgerrors "Tripweave/pkg/errors"
	"Tripweave/pkg/response"
)

// 行程单编辑接口。所有 mutation 都返回行程的完整规范形态，
// 客户端用它整体替换本地状态

// ReplaceItinerary 整体替换行程单
// PUT /v1/trips/:trip_id/itinerary
func ReplaceItinerary(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}

	var req dto.ReplaceItineraryRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	detail, err := service.Item().ReplaceItinerary(ctx, userID, tripID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, detail)
}

// AddDay 追加一天
// POST /v1/trips/:trip_id/days
func AddDay(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}

	detail, err := service.Item().AddDay(ctx, userID, tripID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, detail)
}

// MoveDay 拖拽移动某一天
// POST /v1/trips/:trip_id/days/move
func MoveDay(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}

	var req dto.MoveDayRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	detail, err := service.Item().MoveDay(ctx, userID, tripID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, detail)
}

// ResizeDays 调整天数
// PUT /v1/trips/:trip_id/days/count
func ResizeDays(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}

	var req dto.ResizeDaysRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	detail, err := service.Item().ResizeDays(ctx, userID, tripID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, detail)
}

// SetTravelers 调整旅客
// PUT /v1/trips/:trip_id/travelers
func SetTravelers(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}

	var req dto.SetTravelersRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	detail, err := service.Item().SetTravelers(ctx, userID, tripID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, detail)
}

// AddActivity 新增活动
// POST /v1/trips/:trip_id/items
func AddActivity(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}

	var req dto.AddActivityRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	detail, err := service.Item().AddActivity(ctx, userID, tripID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Created(ctx, c, detail)
}

// PatchItem 单字段修改活动
// PATCH /v1/trips/:trip_id/items/:item_id/:field
func PatchItem(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}
	itemID := c.Param("item_id")
	field := c.Param("field")
	if itemID == "" || field == "" {
		response.Error(ctx, c, pkgerrors.ItemNotFound)
		return
	}

	var req dto.PatchItemRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	detail, err := service.Item().PatchItem(ctx, userID, tripID, itemID, field, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, detail)
}

// DeleteItem 删除活动，已定稿的拒绝
// DELETE /v1/trips/:trip_id/items/:item_id
func DeleteItem(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}
	itemID := c.Param("item_id")
	if itemID == "" {
		response.Error(ctx, c, pkgerrors.ItemNotFound)
		return
	}

	detail, err := service.Item().DeleteItem(ctx, userID, tripID, itemID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, detail)
}

// VoteItem 活动投票
// POST /v1/trips/:trip_id/items/:item_id/vote
func VoteItem(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}
	itemID := c.Param("item_id")
	if itemID == "" {
		response.Error(ctx, c, pkgerrors.ItemNotFound)
		return
	}

	var req dto.VoteRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	detail, err := service.Item().Vote(ctx, userID, tripID, itemID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, detail)
}

// FinalizeItem 定稿 / 取消定稿
// POST /v1/trips/:trip_id/items/:item_id/finalize
func FinalizeItem(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}
	itemID := c.Param("item_id")
	if itemID == "" {
		response.Error(ctx, c, pkgerrors.ItemNotFound)
		return
	}

	var req dto.FinalizeRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	detail, err := service.Item().Finalize(ctx, userID, tripID, itemID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, detail)
}

// ReorderItem 看板拖拽
// POST /v1/trips/:trip_id/items/:item_id/reorder
func ReorderItem(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}
	itemID := c.Param("item_id")
	if itemID == "" {
		response.Error(ctx, c, pkgerrors.ItemNotFound)
		return
	}

	var req dto.ReorderItemRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	resolution, detail, err := service.Item().Reorder(ctx, userID, tripID, itemID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.SuccessWithMeta(ctx, c, detail, map[string]interface{}{
		"resolution": resolution,
	})
}
