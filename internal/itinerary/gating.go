package itinerary

import "Tripweave/internal/model"

// 操作门禁，handler 和 service 共用同一套判定

// CanDelete 仅所有者可删，且行程未过期
func CanDelete(isOwner, isPast bool) bool {
	return isOwner && !isPast
}

// CanClone 公开和精选行程任何人都可以克隆，与所有权和过期无关
func CanClone(visibility model.TripVisibility) bool {
	return visibility == model.VisibilityPublic || visibility == model.VisibilityCurated
}

// CanCollaborate 所有者和编辑者可进协作面板
func CanCollaborate(role model.CollaboratorRole) bool {
	return role == model.RoleOwner || role == model.RoleEditor
}

// CanVote 已定稿的活动不再接受投票
func CanVote(a model.Activity) bool {
	return !a.IsFinal
}

// CanEditActivity 已定稿的活动对删除和大部分编辑不可变
func CanEditActivity(a model.Activity) bool {
	return !a.IsFinal
}
