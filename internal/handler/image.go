package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"Tripweave/internal/model/dto"
	"Tripweave/internal/service"
	"Tripweave/pkg/response"
)

// ListTripImages 行程图片列表
// GET /v1/trips/:trip_id/images
func ListTripImages(ctx context.Context, c *app.RequestContext) {
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}

	images, err := service.Trip().ListImages(ctx, optionalUser(ctx, c), tripID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, images)
}

// AttachTripImage 登记图片并返回直传地址
// POST /v1/trips/:trip_id/images
func AttachTripImage(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}

	var req dto.AttachImageRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	image, err := service.Trip().AttachImage(ctx, userID, tripID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Created(ctx, c, image)
}

// DeleteTripImage 删除图片
// DELETE /v1/trips/:trip_id/images/:image_id
func DeleteTripImage(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	tripID, ok := paramID(ctx, c, "trip_id")
	if !ok {
		return
	}
	imageID, ok := paramID(ctx, c, "image_id")
	if !ok {
		return
	}

	if err := service.Trip().DeleteImage(ctx, userID, tripID, imageID); err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.NoContent(ctx, c)
}
