package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tripweave/internal/model"
	"Tripweave/internal/model/dto"
	pkgerrors "Tripweave/pkg/errors"
)

func TestCreateSuggestion(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	seedProfile(t, 300, true)
	seedProfile(t, 400, false)
	private := seedTrip(t, 100, model.VisibilityPrivate, 1)
	public := seedTrip(t, 100, model.VisibilityPublic, 1)

	req := dto.CreateSuggestionRequest{Title: "Try the kaiseki place near the river"}

	_, err := Suggestion().CreateSuggestion(ctx, 300, private.PublicID, req)
	assert.ErrorIs(t, err, pkgerrors.TripNotFound)

	_, err = Suggestion().CreateSuggestion(ctx, 400, public.PublicID, req)
	assert.ErrorIs(t, err, pkgerrors.CollabRoleDenied)

	item, err := Suggestion().CreateSuggestion(ctx, 300, public.PublicID, req)
	require.NoError(t, err)
	assert.Equal(t, string(model.SuggestionStatusPending), item.Status)
	assert.Equal(t, req.Title, item.Title)
}

func TestResolveSuggestion(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	seedProfile(t, 300, true)
	trip := seedTrip(t, 100, model.VisibilityPublic, 1)

	item, err := Suggestion().CreateSuggestion(ctx, 300, trip.PublicID, dto.CreateSuggestionRequest{Title: "Tip"})
	require.NoError(t, err)
	suggestionID := mustParseID(t, item.ID)

	// 只有行程所有者能处理
	_, err = Suggestion().ResolveSuggestion(ctx, 300, trip.PublicID, suggestionID, dto.UpdateSuggestionRequest{Status: "used"})
	assert.ErrorIs(t, err, pkgerrors.NotTripOwner)

	_, err = Suggestion().ResolveSuggestion(ctx, 100, trip.PublicID, suggestionID, dto.UpdateSuggestionRequest{Status: "archived"})
	assert.ErrorIs(t, err, pkgerrors.SuggestionStatusFinal)

	got, err := Suggestion().ResolveSuggestion(ctx, 100, trip.PublicID, suggestionID, dto.UpdateSuggestionRequest{Status: "used"})
	require.NoError(t, err)
	assert.Equal(t, string(model.SuggestionStatusUsed), got.Status)

	// 已处理的不能再改
	_, err = Suggestion().ResolveSuggestion(ctx, 100, trip.PublicID, suggestionID, dto.UpdateSuggestionRequest{Status: "dismissed"})
	assert.ErrorIs(t, err, pkgerrors.SuggestionStatusFinal)
}

func TestListSuggestionsVisibility(t *testing.T) {
	setupTest(t)
	ctx := context.Background()

	seedProfile(t, 300, true)
	seedProfile(t, 301, true)
	trip := seedTrip(t, 100, model.VisibilityPublic, 1)

	_, err := Suggestion().CreateSuggestion(ctx, 300, trip.PublicID, dto.CreateSuggestionRequest{Title: "A"})
	require.NoError(t, err)
	_, err = Suggestion().CreateSuggestion(ctx, 301, trip.PublicID, dto.CreateSuggestionRequest{Title: "B"})
	require.NoError(t, err)

	all, _, err := Suggestion().ListSuggestions(ctx, 100, trip.PublicID, dto.MarketplaceListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, _, err := Suggestion().ListSuggestions(ctx, 301, trip.PublicID, dto.MarketplaceListQuery{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "B", mine[0].Title)
}
