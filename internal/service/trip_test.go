package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tripweave/config"
	"Tripweave/internal/cache"
	"Tripweave/internal/model"
	"Tripweave/internal/model/dto"
	pkgerrors "Tripweave/pkg/errors"
	"Tripweave/storage/database"
)

func TestCreateTripDefaults(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	detail, err := Trip().CreateTrip(ctx, 100, dto.CreateTripRequest{Title: "Weekend"})
	require.NoError(t, err)

	assert.Equal(t, "Weekend", detail.Title)
	assert.Equal(t, string(model.VisibilityPrivate), detail.Visibility)
	assert.Equal(t, 1, detail.DayCount)
	assert.Len(t, detail.Travelers, 1)
	assert.NotEmpty(t, detail.ShareCode)
	assert.Nil(t, detail.StartDate)
	assert.True(t, detail.Actions.CanEdit)
	assert.True(t, detail.Actions.CanDelete)
	assert.False(t, detail.Actions.CanClone)
}

func TestCreateTripClampsDaysAndTravelers(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	detail, err := Trip().CreateTrip(ctx, 100, dto.CreateTripRequest{
		Title:     "Grand tour",
		Days:      500,
		Travelers: 99,
	})
	require.NoError(t, err)

	assert.Equal(t, 90, detail.DayCount)
	assert.Len(t, detail.Travelers, 20)

	// 上限可以通过配置收紧
	orig := config.Cfg
	t.Cleanup(func() { config.Cfg = orig })
	config.Cfg.MaxItineraryDays = 5
	config.Cfg.MaxTravelers = 3

	detail, err = Trip().CreateTrip(ctx, 100, dto.CreateTripRequest{
		Title:     "Short tour",
		Days:      10,
		Travelers: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, detail.DayCount)
	assert.Len(t, detail.Travelers, 3)
}

func TestCreateTripInvalidDate(t *testing.T) {
	setupTest(t)

	bad := "03/15/2026"
	_, err := Trip().CreateTrip(context.Background(), 100, dto.CreateTripRequest{
		Title:     "Bad date",
		StartDate: &bad,
	})
	assert.ErrorIs(t, err, pkgerrors.InvalidDate)
}

func TestGetTripPrivateHiddenFromStrangers(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	trip := seedTrip(t, 100, model.VisibilityPrivate, 3)

	_, err := Trip().GetTrip(ctx, 200, trip.PublicID)
	assert.ErrorIs(t, err, pkgerrors.TripNotFound)

	detail, err := Trip().GetTrip(ctx, 100, trip.PublicID)
	require.NoError(t, err)
	assert.Equal(t, trip.ShareCode, detail.ShareCode)

	// 协作者可见，但分享码只给所有者
	seedCollaborator(t, trip.PublicID, 200, model.RoleViewer)
	detail, err = Trip().GetTrip(ctx, 200, trip.PublicID)
	require.NoError(t, err)
	assert.Empty(t, detail.ShareCode)
	assert.False(t, detail.Actions.CanEdit)
}

func TestGetTripByShareCode(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	trip := seedTrip(t, 100, model.VisibilityPrivate, 2)

	detail, err := Trip().GetTripByShareCode(ctx, 0, trip.ShareCode)
	require.NoError(t, err)
	assert.Equal(t, trip.Title, detail.Title)

	// 第二次命中缓存映射
	detail, err = Trip().GetTripByShareCode(ctx, 0, trip.ShareCode)
	require.NoError(t, err)
	assert.Equal(t, trip.Title, detail.Title)

	_, err = Trip().GetTripByShareCode(ctx, 0, "no-such-code")
	assert.ErrorIs(t, err, pkgerrors.ShareCodeNotFound)
}

func TestUpdateTrip(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	trip := seedTrip(t, 100, model.VisibilityPrivate, 2)

	title := "Renamed"
	_, err := Trip().UpdateTrip(ctx, 200, trip.PublicID, dto.UpdateTripRequest{Title: &title})
	assert.ErrorIs(t, err, pkgerrors.NotTripOwner)

	bogus := "friends-only"
	_, err = Trip().UpdateTrip(ctx, 100, trip.PublicID, dto.UpdateTripRequest{Visibility: &bogus})
	assert.ErrorIs(t, err, pkgerrors.VisibilityInvalid)

	public := string(model.VisibilityPublic)
	detail, err := Trip().UpdateTrip(ctx, 100, trip.PublicID, dto.UpdateTripRequest{
		Title:      &title,
		Visibility: &public,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", detail.Title)
	assert.Equal(t, public, detail.Visibility)
	assert.True(t, detail.Actions.CanClone)
}

func TestDeleteTrip(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	trip := seedTrip(t, 100, model.VisibilityPrivate, 2)

	assert.ErrorIs(t, Trip().DeleteTrip(ctx, 200, trip.PublicID), pkgerrors.NotTripOwner)

	require.NoError(t, Trip().DeleteTrip(ctx, 100, trip.PublicID))
	_, err := Trip().GetTrip(ctx, 100, trip.PublicID)
	assert.ErrorIs(t, err, pkgerrors.TripNotFound)
}

func TestDeleteTripPastRefused(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	trip := seedTrip(t, 100, model.VisibilityPrivate, 2)
	past := time.Now().AddDate(0, 0, -10)
	require.NoError(t, database.DB().Model(&model.Trip{}).
		Where("public_id = ?", trip.PublicID).
		Update("start_date", past).Error)

	assert.ErrorIs(t, Trip().DeleteTrip(ctx, 100, trip.PublicID), pkgerrors.TripPast)
}

func TestCloneTripResetsCollaborativeState(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	src := seedTrip(t, 100, model.VisibilityPublic, 2)
	start := time.Now().AddDate(0, 1, 0)
	require.NoError(t, database.DB().Model(&model.Trip{}).
		Where("public_id = ?", src.PublicID).
		Update("start_date", start).Error)

	act := seedActivity(t, src, 1, "Fushimi Inari")
	src.Content.Itinerary[0].Activities[0].IsFinal = true
	src.Content.Itinerary[0].Activities[0].Votes = model.VoteTally{Up: 4, Down: 1}
	require.NoError(t, database.DB().Model(&model.Trip{}).
		Where("public_id = ?", src.PublicID).
		Updates(&model.Trip{Content: src.Content}).Error)

	clone, err := Trip().CloneTrip(ctx, 200, src.PublicID)
	require.NoError(t, err)

	assert.NotEqual(t, strconv.FormatInt(src.PublicID, 10), clone.TripItem.ID)
	assert.Equal(t, string(model.VisibilityPrivate), clone.Visibility)
	assert.Nil(t, clone.StartDate)
	require.Len(t, clone.Itinerary[0].Activities, 1)

	cloned := clone.Itinerary[0].Activities[0]
	assert.Equal(t, "Fushimi Inari", cloned.Title)
	assert.NotEqual(t, act.ID, cloned.ID)
	assert.False(t, cloned.IsFinal)
	assert.Equal(t, model.VoteTally{}, cloned.Votes)
}

func TestCloneTripPrivateNotAllowed(t *testing.T) {
	setupTest(t)
	trip := seedTrip(t, 100, model.VisibilityPrivate, 1)

	_, err := Trip().CloneTrip(context.Background(), 200, trip.PublicID)
	assert.ErrorIs(t, err, pkgerrors.CloneNotAllowed)
}

func TestLoveTripDedup(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	trip := seedTrip(t, 100, model.VisibilityPublic, 1)

	detail, err := Trip().LoveTrip(ctx, 200, trip.PublicID)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.LoveCount)

	_, err = Trip().LoveTrip(ctx, 200, trip.PublicID)
	assert.ErrorIs(t, err, pkgerrors.AlreadyLoved)

	// 另一个用户不受影响
	detail, err = Trip().LoveTrip(ctx, 300, trip.PublicID)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.LoveCount)

	// 缓存标记丢了也要靠唯一索引兜底，报重复而不是报底层错误
	require.NoError(t, cache.UnmarkLoved(ctx, trip.PublicID, 200))
	_, err = Trip().LoveTrip(ctx, 200, trip.PublicID)
	assert.ErrorIs(t, err, pkgerrors.AlreadyLoved)
}

func TestListTripsCursorPagination(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		seedTrip(t, 100, model.VisibilityPrivate, 1)
	}
	seedTrip(t, 200, model.VisibilityPrivate, 1)

	items, cursor, err := Trip().ListTrips(ctx, 100, dto.TripListQuery{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	require.NotEmpty(t, cursor)

	rest, cursor, err := Trip().ListTrips(ctx, 100, dto.TripListQuery{Limit: 2, Cursor: cursor})
	require.NoError(t, err)
	assert.Len(t, rest, 1)
	assert.Empty(t, cursor)

	// public_id 倒序，新建的排前面
	assert.Greater(t, items[0].ID, items[1].ID)
}

func TestListMarketplace(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	seedTrip(t, 100, model.VisibilityPrivate, 1)
	seedTrip(t, 100, model.VisibilityPublic, 1)
	curated := seedTrip(t, 200, model.VisibilityCurated, 1)

	items, _, err := Trip().ListMarketplace(ctx, dto.MarketplaceQuery{})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	for _, item := range items {
		assert.Empty(t, item.ShareCode)
	}

	items, _, err = Trip().ListMarketplace(ctx, dto.MarketplaceQuery{Curated: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, string(model.VisibilityCurated), items[0].Visibility)
	assert.Equal(t, curated.Title, items[0].Title)
}
