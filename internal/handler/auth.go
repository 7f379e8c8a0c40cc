package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"Tripweave/internal/model/dto"
	"Tripweave/internal/service"
	"Tripweave/pkg/response"
)

// ExchangeProviderCode 授权码换取令牌对
// POST /v1/auth/provider/exchange
func ExchangeProviderCode(ctx context.Context, c *app.RequestContext) {
	var req dto.ProviderExchangeRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	data, err := service.Auth().ExchangeCode(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, data)
}

// RefreshToken 刷新访问令牌
// POST /v1/auth/token/refresh
func RefreshToken(ctx context.Context, c *app.RequestContext) {
	var req dto.RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	data, err := service.Auth().Refresh(ctx, req.RefreshToken)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, data)
}
