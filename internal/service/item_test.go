package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tripweave/internal/itinerary"
	"Tripweave/internal/model"
	"Tripweave/internal/model/dto"
	pkgerrors "Tripweave/pkg/errors"
)

func TestAddDayAndCap(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	trip := seedTrip(t, 100, model.VisibilityPrivate, 2)

	detail, err := Item().AddDay(ctx, 100, trip.PublicID)
	require.NoError(t, err)
	assert.Equal(t, 3, detail.DayCount)
	assert.Equal(t, 3, detail.Itinerary[2].Day)

	full := seedTrip(t, 100, model.VisibilityPrivate, itinerary.MaxDays)
	_, err = Item().AddDay(ctx, 100, full.PublicID)
	assert.ErrorIs(t, err, pkgerrors.DayOutOfRange)
}

func TestResizeDaysTruncates(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	trip := seedTrip(t, 100, model.VisibilityPrivate, 5)

	detail, err := Item().ResizeDays(ctx, 100, trip.PublicID, dto.ResizeDaysRequest{Days: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, detail.DayCount)

	detail, err = Item().ResizeDays(ctx, 100, trip.PublicID, dto.ResizeDaysRequest{Days: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, detail.DayCount)
	assert.Equal(t, "Day 4", detail.Itinerary[3].Title)
}

func TestMoveDayRenumbers(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	trip := seedTrip(t, 100, model.VisibilityPrivate, 3)
	seedActivity(t, trip, 3, "Arashiyama")

	detail, err := Item().MoveDay(ctx, 100, trip.PublicID, dto.MoveDayRequest{From: 3, To: 1})
	require.NoError(t, err)

	// 移动后重编号，原第 3 天的内容现在是第 1 天
	assert.Equal(t, 1, detail.Itinerary[0].Day)
	require.Len(t, detail.Itinerary[0].Activities, 1)
	assert.Equal(t, "Arashiyama", detail.Itinerary[0].Activities[0].Title)
}

func TestAddActivity(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	trip := seedTrip(t, 100, model.VisibilityPrivate, 2)

	detail, err := Item().AddActivity(ctx, 100, trip.PublicID, dto.AddActivityRequest{
		Day:      1,
		Activity: &model.Activity{Title: "Nishiki market"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, detail.ItemCount)
	require.Len(t, detail.Itinerary[0].Activities, 1)
	assert.Equal(t, model.CategoryActivity, detail.Itinerary[0].Activities[0].Category)
	assert.NotEmpty(t, detail.Itinerary[0].Activities[0].ID)

	_, err = Item().AddActivity(ctx, 100, trip.PublicID, dto.AddActivityRequest{Day: 99})
	assert.ErrorIs(t, err, pkgerrors.DayOutOfRange)
}

func TestPatchItemFields(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	trip := seedTrip(t, 100, model.VisibilityPrivate, 1)
	act := seedActivity(t, trip, 1, "Kinkaku-ji")

	_, err := Item().PatchItem(ctx, 100, trip.PublicID, act.ID, "price", dto.PatchItemRequest{Value: "banana"})
	assert.ErrorIs(t, err, pkgerrors.InvalidCost)

	_, err = Item().PatchItem(ctx, 100, trip.PublicID, act.ID, "price", dto.PatchItemRequest{Value: "-3"})
	assert.ErrorIs(t, err, pkgerrors.InvalidCost)

	detail, err := Item().PatchItem(ctx, 100, trip.PublicID, act.ID, "price", dto.PatchItemRequest{Value: "12.50"})
	require.NoError(t, err)
	assert.Equal(t, "12.50", detail.CostTotals.Total)

	detail, err = Item().PatchItem(ctx, 100, trip.PublicID, act.ID, "description", dto.PatchItemRequest{Value: "Golden pavilion"})
	require.NoError(t, err)
	assert.Equal(t, "Golden pavilion", detail.Itinerary[0].Activities[0].Description)

	_, err = Item().PatchItem(ctx, 100, trip.PublicID, act.ID, "color", dto.PatchItemRequest{Value: "red"})
	assert.ErrorIs(t, err, pkgerrors.ItemNotFound)

	_, err = Item().PatchItem(ctx, 100, trip.PublicID, "missing", "description", dto.PatchItemRequest{Value: "x"})
	assert.ErrorIs(t, err, pkgerrors.ItemNotFound)
}

func TestVoteAndFinalizeLock(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	trip := seedTrip(t, 100, model.VisibilityPrivate, 1)
	act := seedActivity(t, trip, 1, "Gion walk")

	_, err := Item().Vote(ctx, 100, trip.PublicID, act.ID, dto.VoteRequest{Direction: "sideways"})
	assert.ErrorIs(t, err, pkgerrors.InvalidVote)

	detail, err := Item().Vote(ctx, 100, trip.PublicID, act.ID, dto.VoteRequest{Direction: "up"})
	require.NoError(t, err)
	assert.Equal(t, 1, detail.Itinerary[0].Activities[0].Votes.Up)

	detail, err = Item().Finalize(ctx, 100, trip.PublicID, act.ID, dto.FinalizeRequest{Final: true})
	require.NoError(t, err)
	assert.True(t, detail.Itinerary[0].Activities[0].IsFinal)

	// 定稿后投票、编辑、删除全部拒绝
	_, err = Item().Vote(ctx, 100, trip.PublicID, act.ID, dto.VoteRequest{Direction: "down"})
	assert.ErrorIs(t, err, pkgerrors.ActivityFinalized)
	_, err = Item().PatchItem(ctx, 100, trip.PublicID, act.ID, "description", dto.PatchItemRequest{Value: "x"})
	assert.ErrorIs(t, err, pkgerrors.ActivityFinalized)
	_, err = Item().DeleteItem(ctx, 100, trip.PublicID, act.ID)
	assert.ErrorIs(t, err, pkgerrors.ActivityFinalized)

	// 取消定稿后恢复可删
	_, err = Item().Finalize(ctx, 100, trip.PublicID, act.ID, dto.FinalizeRequest{Final: false})
	require.NoError(t, err)
	detail, err = Item().DeleteItem(ctx, 100, trip.PublicID, act.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, detail.ItemCount)
}

func TestUnfinalizeOwnerOnly(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	trip := seedTrip(t, 100, model.VisibilityPrivate, 1)
	act := seedActivity(t, trip, 1, "Nishiki market")
	seedCollaborator(t, trip.PublicID, 200, model.RoleEditor)

	// 编辑者可以定稿
	detail, err := Item().Finalize(ctx, 200, trip.PublicID, act.ID, dto.FinalizeRequest{Final: true})
	require.NoError(t, err)
	assert.True(t, detail.Itinerary[0].Activities[0].IsFinal)

	// 取消定稿只有主人能做
	_, err = Item().Finalize(ctx, 200, trip.PublicID, act.ID, dto.FinalizeRequest{Final: false})
	assert.ErrorIs(t, err, pkgerrors.NotTripOwner)

	detail, err = Item().Finalize(ctx, 100, trip.PublicID, act.ID, dto.FinalizeRequest{Final: false})
	require.NoError(t, err)
	assert.False(t, detail.Itinerary[0].Activities[0].IsFinal)
}

func TestReorderAcrossDays(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	trip := seedTrip(t, 100, model.VisibilityPrivate, 2)
	first := seedActivity(t, trip, 1, "Morning tea")
	second := seedActivity(t, trip, 2, "Evening show")

	res, detail, err := Item().Reorder(ctx, 100, trip.PublicID, first.ID, dto.ReorderItemRequest{Target: "day-2"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Day)
	assert.False(t, res.NoOp)
	assert.Empty(t, detail.Itinerary[0].Activities)
	require.Len(t, detail.Itinerary[1].Activities, 2)
	assert.Equal(t, second.ID, detail.Itinerary[1].Activities[0].ID)
	assert.Equal(t, first.ID, detail.Itinerary[1].Activities[1].ID)

	// 目标是另一个活动时插到它前面
	res, detail, err = Item().Reorder(ctx, 100, trip.PublicID, first.ID, dto.ReorderItemRequest{Target: second.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Day)
	assert.Equal(t, 0, res.Index)
	assert.Equal(t, first.ID, detail.Itinerary[1].Activities[0].ID)

	// 拖到自己身上是 no-op
	res, _, err = Item().Reorder(ctx, 100, trip.PublicID, first.ID, dto.ReorderItemRequest{Target: first.ID})
	require.NoError(t, err)
	assert.True(t, res.NoOp)
}

func TestEditorRoleGating(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	trip := seedTrip(t, 100, model.VisibilityPrivate, 1)

	// 陌生人视角私有行程直接不存在
	_, err := Item().AddDay(ctx, 200, trip.PublicID)
	assert.ErrorIs(t, err, pkgerrors.TripNotFound)

	seedCollaborator(t, trip.PublicID, 200, model.RoleViewer)
	_, err = Item().AddDay(ctx, 200, trip.PublicID)
	assert.ErrorIs(t, err, pkgerrors.CollabRoleDenied)

	seedCollaborator(t, trip.PublicID, 300, model.RoleEditor)
	detail, err := Item().AddDay(ctx, 300, trip.PublicID)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.DayCount)
}

func TestReplaceItinerary(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	trip := seedTrip(t, 100, model.VisibilityPrivate, 1)

	detail, err := Item().ReplaceItinerary(ctx, 100, trip.PublicID, dto.ReplaceItineraryRequest{
		Itinerary: []model.ItineraryDay{
			{Day: 7, Title: "Osaka", Activities: []model.Activity{{ID: "a1", Title: "Dotonbori", Category: model.CategoryFood}}},
			{Day: 9, Title: "Nara", Activities: []model.Activity{}},
		},
	})
	require.NoError(t, err)

	// 保存时强制重编号为 1 起始连续
	assert.Equal(t, 2, detail.DayCount)
	assert.Equal(t, 1, detail.Itinerary[0].Day)
	assert.Equal(t, 2, detail.Itinerary[1].Day)
	assert.Equal(t, 1, detail.ItemCount)
}
