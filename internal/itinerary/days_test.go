package itinerary

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tripweave/internal/model"
	"Tripweave/pkg/errors"
)

func makeDays(counts ...int) []model.ItineraryDay {
	days := make([]model.ItineraryDay, len(counts))
	for i, c := range counts {
		acts := make([]model.Activity, c)
		for j := range acts {
			acts[j] = model.Activity{
				ID:         fmt.Sprintf("act-%d-%d", i+1, j),
				Title:      fmt.Sprintf("Activity %d.%d", i+1, j),
				Category:   model.CategoryActivity,
				OrderIndex: j,
			}
		}
		days[i] = model.ItineraryDay{
			Day:        i + 1,
			Title:      fmt.Sprintf("Day %d", i+1),
			Activities: acts,
		}
	}
	return days
}

func TestMoveDayRenumbers(t *testing.T) {
	days := makeDays(1, 2, 3, 0)

	moved, err := MoveDay(days, 2, 0)
	require.NoError(t, err)

	require.Len(t, moved, 4)
	for i, d := range moved {
		assert.Equal(t, i+1, d.Day, "day field must equal 1-based position")
	}
	// 原第 3 天（3 个活动）现在在最前
	assert.Len(t, moved[0].Activities, 3)
	assert.Len(t, moved[1].Activities, 1)
}

func TestMoveDayAllPermutations(t *testing.T) {
	for from := 0; from < 4; from++ {
		for to := 0; to < 4; to++ {
			days := makeDays(0, 1, 2, 3)
			moved, err := MoveDay(days, from, to)
			require.NoError(t, err)
			for i, d := range moved {
				assert.Equal(t, i+1, d.Day, "from=%d to=%d pos=%d", from, to, i)
			}
		}
	}
}

func TestMoveDayOutOfRange(t *testing.T) {
	days := makeDays(1, 1)

	_, err := MoveDay(days, 0, 5)
	assert.ErrorIs(t, err, errors.DayOutOfRange)

	_, err = MoveDay(days, -1, 0)
	assert.ErrorIs(t, err, errors.DayOutOfRange)
}

func TestAddDay(t *testing.T) {
	days := makeDays(2)
	days = AddDay(days)

	require.Len(t, days, 2)
	assert.Equal(t, 2, days[1].Day)
	assert.Equal(t, "Day 2", days[1].Title)
	assert.Empty(t, days[1].Activities)
	assert.NotNil(t, days[1].Activities)
}

func TestClampDays(t *testing.T) {
	assert.Equal(t, 1, ClampDays(0, MaxDays))
	assert.Equal(t, 1, ClampDays(-5, MaxDays))
	assert.Equal(t, 90, ClampDays(150, MaxDays))
	assert.Equal(t, 45, ClampDays(45, MaxDays))

	// 自定义上限与非正上限回落
	assert.Equal(t, 30, ClampDays(45, 30))
	assert.Equal(t, 90, ClampDays(150, 0))
}

func TestClampTravelers(t *testing.T) {
	assert.Equal(t, 1, ClampTravelers(0, MaxTravelers))
	assert.Equal(t, 20, ClampTravelers(25, MaxTravelers))
	assert.Equal(t, 4, ClampTravelers(4, MaxTravelers))
	assert.Equal(t, 10, ClampTravelers(25, 10))
}

func TestResizeDaysGrow(t *testing.T) {
	days := makeDays(1, 2)
	days = ResizeDays(days, 5, MaxDays)

	require.Len(t, days, 5)
	for i := 2; i < 5; i++ {
		assert.Equal(t, i+1, days[i].Day)
		assert.Equal(t, fmt.Sprintf("Day %d", i+1), days[i].Title)
		assert.Empty(t, days[i].Activities)
	}
	// 已有的天保持原样
	assert.Len(t, days[1].Activities, 2)
}

func TestResizeDaysShrinkKeepsNumbers(t *testing.T) {
	days := makeDays(0, 0, 0, 0, 0)
	days = ResizeDays(days, 2, MaxDays)

	require.Len(t, days, 2)
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, 2, days[1].Day)
}

func TestResizeDaysClamps(t *testing.T) {
	days := makeDays(0, 0, 0)

	assert.Len(t, ResizeDays(days, 0, MaxDays), 1)
	assert.Len(t, ResizeDays(makeDays(0), 150, MaxDays), 90)
}

func TestResizeTravelers(t *testing.T) {
	var seq int
	newID := func() string {
		seq++
		return fmt.Sprintf("t-%d", seq)
	}

	trav := ResizeTravelers(nil, 3, MaxTravelers, newID)
	require.Len(t, trav, 3)
	assert.Equal(t, "Traveler 2", trav[1].DisplayName)

	trav = ResizeTravelers(trav, 0, MaxTravelers, newID)
	assert.Len(t, trav, 1)

	trav = ResizeTravelers(trav, 25, MaxTravelers, newID)
	assert.Len(t, trav, 20)
}

func TestInsertAndRemoveActivity(t *testing.T) {
	days := makeDays(2)

	err := InsertActivity(days, 1, 1, model.Activity{ID: "new", Title: "Lunch"})
	require.NoError(t, err)
	require.Len(t, days[0].Activities, 3)
	assert.Equal(t, "new", days[0].Activities[1].ID)
	for i, a := range days[0].Activities {
		assert.Equal(t, i, a.OrderIndex)
	}

	err = RemoveActivity(days, "new")
	require.NoError(t, err)
	assert.Len(t, days[0].Activities, 2)

	err = RemoveActivity(days, "missing")
	assert.ErrorIs(t, err, errors.ItemNotFound)
}

func TestInsertActivityIndexOverflowAppends(t *testing.T) {
	days := makeDays(1)

	err := InsertActivity(days, 1, 99, model.Activity{ID: "tail"})
	require.NoError(t, err)
	assert.Equal(t, "tail", days[0].Activities[1].ID)
}

func TestNewActivityDefaults(t *testing.T) {
	a := NewActivity("id-1", "")
	assert.Equal(t, model.CategoryActivity, a.Category)
	assert.True(t, a.EstimatedCost.Equal(decimal.Zero))
	assert.Equal(t, "New activity", a.Title)
	assert.False(t, a.IsFinal)
}

func TestEndDateAndIsPast(t *testing.T) {
	assert.Nil(t, EndDate(nil, 10))
	assert.False(t, IsPast(nil, 10, time.Now()))
	assert.False(t, IsPast(nil, 0, time.Now()))

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := EndDate(&start, 3)
	require.NotNil(t, end)
	assert.Equal(t, time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC), *end)

	after := time.Date(2020, 1, 4, 0, 0, 0, 0, time.UTC)
	before := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsPast(&start, 3, after))
	assert.False(t, IsPast(&start, 3, before))
	// 结束日当天不算过期
	assert.False(t, IsPast(&start, 3, *end))
}

func TestGating(t *testing.T) {
	assert.False(t, CanDelete(true, true))
	assert.False(t, CanDelete(false, false))
	assert.True(t, CanDelete(true, false))

	assert.True(t, CanClone(model.VisibilityPublic))
	assert.True(t, CanClone(model.VisibilityCurated))
	assert.False(t, CanClone(model.VisibilityPrivate))
	assert.False(t, CanClone(model.VisibilityMarketplace))

	assert.True(t, CanCollaborate(model.RoleOwner))
	assert.True(t, CanCollaborate(model.RoleEditor))
	assert.False(t, CanCollaborate(model.RoleViewer))
	assert.False(t, CanCollaborate(""))

	assert.False(t, CanVote(model.Activity{IsFinal: true}))
	assert.True(t, CanVote(model.Activity{}))
}

func TestTruncateBioWords(t *testing.T) {
	long := ""
	for i := 0; i < 601; i++ {
		long += fmt.Sprintf("w%d  ", i)
	}

	got := TruncateBioWords(long, BioMaxWords)
	words := 1
	for _, r := range got {
		if r == ' ' {
			words++
		}
	}
	assert.Equal(t, 600, words)
	assert.NotContains(t, got, "  ")
	assert.NotContains(t, got, "w600")

	assert.Equal(t, "a b", TruncateBioWords("  a   b  ", BioMaxWords))
}

func TestComputeCosts(t *testing.T) {
	travelers := []model.Traveler{{ID: "t1"}, {ID: "t2"}}
	days := []model.ItineraryDay{
		{Day: 1, Activities: []model.Activity{
			{ID: "a", EstimatedCost: decimal.NewFromInt(100), Payer: "t1"},
			{ID: "b", EstimatedCost: decimal.NewFromInt(50), Payer: model.PayerSplit},
		}},
		{Day: 2, Activities: []model.Activity{
			{ID: "c", EstimatedCost: decimal.NewFromInt(30)},
		}},
	}

	c := ComputeCosts(days, travelers)
	assert.True(t, c.Total.Equal(decimal.NewFromInt(180)))
	assert.True(t, c.PerDay[1].Equal(decimal.NewFromInt(150)))
	assert.True(t, c.PerDay[2].Equal(decimal.NewFromInt(30)))
	assert.True(t, c.Payers["t1"].Equal(decimal.NewFromInt(125)))
	assert.True(t, c.Payers["t2"].Equal(decimal.NewFromInt(25)))
}

func TestSortDayActivitiesLodgingFirst(t *testing.T) {
	acts := []model.Activity{
		{ID: "x", Category: model.CategoryFood, OrderIndex: 0},
		{ID: "y", Category: model.CategoryHotel, OrderIndex: 5},
		{ID: "z", Category: model.CategoryActivity, OrderIndex: 1},
	}

	SortDayActivities(acts)
	assert.Equal(t, "y", acts[0].ID)
	assert.Equal(t, "x", acts[1].ID)
	assert.Equal(t, "z", acts[2].ID)
}
