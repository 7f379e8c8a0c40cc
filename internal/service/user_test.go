package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tripweave/internal/model"
	"Tripweave/internal/model/dto"
	pkgerrors "Tripweave/pkg/errors"
	"Tripweave/storage/database"
)

func TestGetProfileVisibility(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	seedProfile(t, 100, false)
	require.NoError(t, database.DB().Model(&model.UserProfile{}).
		Where("public_id = ?", 100).
		Update("visibility", model.ProfilePrivate).Error)

	// 私有资料对外表现为不存在
	_, err := User().GetProfile(ctx, 200, 100)
	assert.ErrorIs(t, err, pkgerrors.ErrUserNotFound)

	data, err := User().GetProfile(ctx, 100, 100)
	require.NoError(t, err)
	assert.Equal(t, "user-100", data.DisplayName)

	_, err = User().GetProfile(ctx, 100, 999)
	assert.ErrorIs(t, err, pkgerrors.ErrUserNotFound)
}

func TestUpdateProfileBioTruncation(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	seedProfile(t, 100, false)

	bio := strings.Repeat("wander ", 700)
	data, err := User().UpdateProfile(ctx, 100, dto.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	assert.Len(t, strings.Fields(data.Bio), 600)
}

func TestUpdateProfileInvalidVisibility(t *testing.T) {
	setupTest(t)
	seedProfile(t, 100, false)

	bogus := "friends"
	_, err := User().UpdateProfile(context.Background(), 100, dto.UpdateProfileRequest{Visibility: &bogus})
	assert.ErrorIs(t, err, pkgerrors.VisibilityInvalid)
}

func TestSetGuideMode(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	seedProfile(t, 100, false)

	data, err := User().SetGuideMode(ctx, 100, true)
	require.NoError(t, err)
	assert.True(t, data.GuideMode)

	data, err = User().SetGuideMode(ctx, 100, false)
	require.NoError(t, err)
	assert.False(t, data.GuideMode)
}

func TestTravelHistory(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	seedProfile(t, 100, false)

	_, err := User().AddHistory(ctx, 100, dto.CreateHistoryRequest{Kind: "lived", Place: "Lisbon"})
	assert.ErrorIs(t, err, pkgerrors.InvalidHistoryKind)

	item, err := User().AddHistory(ctx, 100, dto.CreateHistoryRequest{Kind: "visited", Place: "Lisbon", CountryCode: "pt"})
	require.NoError(t, err)
	assert.Equal(t, "PT", item.CountryCode)

	_, err = User().AddHistory(ctx, 100, dto.CreateHistoryRequest{Kind: "wishlist", Place: "Patagonia", CountryCode: "ar"})
	require.NoError(t, err)

	visited, err := User().ListHistory(ctx, 100, "visited")
	require.NoError(t, err)
	require.Len(t, visited, 1)
	assert.Equal(t, "Lisbon", visited[0].Place)

	all, err := User().ListHistory(ctx, 100, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	assert.ErrorIs(t, User().DeleteHistory(ctx, 100, 9999), pkgerrors.HistoryEntryNotFound)
	require.NoError(t, User().DeleteHistory(ctx, 100, mustParseID(t, visited[0].ID)))

	// 别人的足迹删不到
	assert.ErrorIs(t, User().DeleteHistory(ctx, 200, mustParseID(t, all[0].ID)), pkgerrors.HistoryEntryNotFound)
}

func TestLinks(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	seedProfile(t, 100, false)

	social, err := User().AddSocialLink(ctx, 100, dto.CreateLinkRequest{Platform: "instagram", URL: " https://instagram.com/wanderer "})
	require.NoError(t, err)
	assert.Equal(t, "https://instagram.com/wanderer", social.URL)

	payment, err := User().AddPaymentLink(ctx, 100, dto.CreateLinkRequest{Provider: "kofi", URL: "https://ko-fi.com/wanderer"})
	require.NoError(t, err)

	data, err := User().GetProfile(ctx, 100, 100)
	require.NoError(t, err)
	assert.Len(t, data.SocialLinks, 1)
	assert.Len(t, data.PaymentLinks, 1)

	assert.ErrorIs(t, User().DeleteSocialLink(ctx, 200, mustParseID(t, social.ID)), pkgerrors.LinkNotFound)
	require.NoError(t, User().DeleteSocialLink(ctx, 100, mustParseID(t, social.ID)))
	require.NoError(t, User().DeletePaymentLink(ctx, 100, mustParseID(t, payment.ID)))
	assert.ErrorIs(t, User().DeletePaymentLink(ctx, 100, mustParseID(t, payment.ID)), pkgerrors.LinkNotFound)
}

func TestGetBadges(t *testing.T) {
	setupTest(t)
	ctx := context.Background()
	seedProfile(t, 100, false)

	// 2 个国家、1 次行程；wishlist 和重复国家不计入
	for _, cc := range []string{"JP", "JP", "PT"} {
		_, err := User().AddHistory(ctx, 100, dto.CreateHistoryRequest{Kind: "visited", Place: "x", CountryCode: cc})
		require.NoError(t, err)
	}
	_, err := User().AddHistory(ctx, 100, dto.CreateHistoryRequest{Kind: "wishlist", Place: "y", CountryCode: "BR"})
	require.NoError(t, err)
	seedTrip(t, 100, model.VisibilityPrivate, 1)

	badges, err := User().GetBadges(ctx, 100)
	require.NoError(t, err)

	byTrack := map[string]dto.BadgeProgress{}
	for _, b := range badges {
		byTrack[b.Track] = b
	}

	assert.Equal(t, 2, byTrack["countries"].Progress)
	assert.Equal(t, 1, byTrack["countries"].Level)
	assert.Equal(t, 5, byTrack["countries"].NextLevel)

	assert.Equal(t, 1, byTrack["trips"].Level)
	assert.Equal(t, 0, byTrack["clones"].Level)
	assert.Equal(t, 1, byTrack["clones"].NextLevel)
	assert.Equal(t, 0, byTrack["curated"].Progress)
}

func TestActivityFeed(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	detail, err := Trip().CreateTrip(ctx, 100, dto.CreateTripRequest{Title: "Logbook"})
	require.NoError(t, err)

	items, cursor, err := User().GetActivityFeed(ctx, 100, dto.ActivityFeedQuery{})
	require.NoError(t, err)
	assert.Empty(t, cursor)
	require.Len(t, items, 1)
	assert.Equal(t, "created", items[0].Verb)
	assert.Equal(t, "trip", items[0].SubjectType)
	assert.Equal(t, detail.TripItem.ID, items[0].SubjectID)
}
