package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"Tripweave/internal/model/dto"
	"Tripweave/internal/service"
	"Tripweave/pkg/response"
)

// GetMyProfile 当前用户资料
// GET /v1/users/me
func GetMyProfile(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	data, err := service.User().GetProfile(ctx, userID, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, data)
}

// GetUserProfile 查看他人资料，私密资料对外表现为不存在
// GET /v1/users/:user_id
func GetUserProfile(ctx context.Context, c *app.RequestContext) {
	targetID, ok := paramID(ctx, c, "user_id")
	if !ok {
		return
	}

	data, err := service.User().GetProfile(ctx, optionalUser(ctx, c), targetID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, data)
}

// UpdateMyProfile 更新资料，bio 超过 600 词会被截断
// PUT /v1/users/me
func UpdateMyProfile(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	data, err := service.User().UpdateProfile(ctx, userID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, data)
}

// GetGuideMode 开关当前状态
// GET /v1/users/me/guide-mode
func GetGuideMode(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	enabled, err := service.User().GetGuideMode(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, dto.GuideModeData{Enabled: enabled})
}

// SetGuideMode 达人 / 商家模式开关
// PATCH /v1/users/me/guide-mode
func SetGuideMode(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.GuideModeRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	data, err := service.User().SetGuideMode(ctx, userID, req.Enabled)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, data)
}

// PresignAvatar 头像直传
// POST /v1/users/me/avatar
func PresignAvatar(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.AvatarUploadRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	data, err := service.User().PresignAvatar(ctx, userID, req.ContentType)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Created(ctx, c, data)
}

// ListTravelHistory 旅行足迹
// GET /v1/users/me/travel-history
func ListTravelHistory(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	items, err := service.User().ListHistory(ctx, userID, c.Query("kind"))
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, items)
}

// AddTravelHistory 新增足迹
// POST /v1/users/me/travel-history
func AddTravelHistory(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.CreateHistoryRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	item, err := service.User().AddHistory(ctx, userID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Created(ctx, c, item)
}

// DeleteTravelHistory 删除足迹
// DELETE /v1/users/me/travel-history/:entry_id
func DeleteTravelHistory(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	entryID, ok := paramID(ctx, c, "entry_id")
	if !ok {
		return
	}

	if err := service.User().DeleteHistory(ctx, userID, entryID); err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.NoContent(ctx, c)
}

// AddSocialLink 新增社交链接
// POST /v1/users/me/social-links
func AddSocialLink(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	item, err := service.User().AddSocialLink(ctx, userID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Created(ctx, c, item)
}

// ListSocialLinks 社交链接列表
// GET /v1/users/me/social-links
func ListSocialLinks(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	items, err := service.User().ListSocialLinks(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, items)
}

// DeleteSocialLink 删除社交链接
// DELETE /v1/users/me/social-links/:link_id
func DeleteSocialLink(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	linkID, ok := paramID(ctx, c, "link_id")
	if !ok {
		return
	}

	if err := service.User().DeleteSocialLink(ctx, userID, linkID); err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.NoContent(ctx, c)
}

// AddPaymentLink 新增收款链接
// POST /v1/users/me/payment-links
func AddPaymentLink(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	item, err := service.User().AddPaymentLink(ctx, userID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Created(ctx, c, item)
}

// ListPaymentLinks 收款链接列表
// GET /v1/users/me/payment-links
func ListPaymentLinks(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	items, err := service.User().ListPaymentLinks(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, items)
}

// DeletePaymentLink 删除收款链接
// DELETE /v1/users/me/payment-links/:link_id
func DeletePaymentLink(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	linkID, ok := paramID(ctx, c, "link_id")
	if !ok {
		return
	}

	if err := service.User().DeletePaymentLink(ctx, userID, linkID); err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.NoContent(ctx, c)
}

// GetUserBadges 徽章进度
// GET /v1/users/:user_id/badges
func GetUserBadges(ctx context.Context, c *app.RequestContext) {
	targetID, ok := paramID(ctx, c, "user_id")
	if !ok {
		return
	}

	badges, err := service.User().GetBadges(ctx, targetID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, badges)
}

// GetMyActivity 用户动态
// GET /v1/users/me/activity
func GetMyActivity(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var query dto.ActivityFeedQuery
	if err := c.Bind(&query); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	items, nextCursor, err := service.User().GetActivityFeed(ctx, userID, query)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.SuccessWithMeta(ctx, c, items, listMeta(nextCursor))
}
