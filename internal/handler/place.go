package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"Tripweave/internal/model/dto"
	"Tripweave/internal/service"
	"Tripweave/pkg/response"
)

// PreviewPlace URL 换地点元数据
// POST /v1/places/preview
func PreviewPlace(ctx context.Context, c *app.RequestContext) {
	if _, ok := currentUser(ctx, c); !ok {
		return
	}

	var req dto.PlacePreviewRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	data, err := service.Place().Preview(ctx, req.URL)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, data)
}

// SearchHotels 酒店搜索
// GET /v1/hotels/search
func SearchHotels(ctx context.Context, c *app.RequestContext) {
	if _, ok := currentUser(ctx, c); !ok {
		return
	}

	var query dto.HotelSearchQuery
	if err := c.Bind(&query); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	items, err := service.Hotel().Search(ctx, query)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, items)
}
