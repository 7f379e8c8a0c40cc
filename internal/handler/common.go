package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"Tripweave/internal/middleware"
	pkgerrors "Tripweave/pkg/errors"
	"Tripweave/pkg/response"
)

// currentUser 取已认证用户的 public_id，缺失时直接写 401 响应
func currentUser(ctx context.Context, c *app.RequestContext) (int64, bool) {
	userID, ok := middleware.GetUserIDInt64(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return 0, false
	}
	return userID, true
}

// optionalUser 公开路由上尽量取用户，未登录返回 0
func optionalUser(ctx context.Context, c *app.RequestContext) int64 {
	userID, _ := middleware.GetUserIDInt64(ctx, c)
	return userID
}

// paramID 解析路径里的数字 ID，非法时写 400 响应
func paramID(ctx context.Context, c *app.RequestContext, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		response.Error(ctx, c, pkgerrors.Definition{
			Code:    "INVALID_REQUEST",
			Message: "Invalid path parameter: " + name,
		})
		return 0, false
	}
	return id, true
}

// listMeta 游标分页的 meta 块
func listMeta(nextCursor string) map[string]interface{} {
	meta := map[string]interface{}{}
	if nextCursor != "" {
		meta["next_cursor"] = nextCursor
	}
	return meta
}
