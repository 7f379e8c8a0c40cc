package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tripweave/pkg/errors"
)

func TestResolveDropOntoColumn(t *testing.T) {
	days := makeDays(1, 2, 2)

	// day-3 当前有 2 个活动，落点是末尾下标 2
	r, err := ResolveDrop(days, "act-1-0", "day-3")
	require.NoError(t, err)
	assert.Equal(t, Resolution{Day: 3, Index: 2}, r)
}

func TestResolveDropOntoActivity(t *testing.T) {
	days := makeDays(1, 3)

	// act-2-1 位于第 2 天下标 1
	r, err := ResolveDrop(days, "act-1-0", "act-2-1")
	require.NoError(t, err)
	assert.Equal(t, Resolution{Day: 2, Index: 1}, r)
}

func TestResolveDropNoOp(t *testing.T) {
	days := makeDays(2)

	r, err := ResolveDrop(days, "act-1-0", "act-1-0")
	require.NoError(t, err)
	assert.True(t, r.NoOp)
}

func TestResolveDropUnknownTargets(t *testing.T) {
	days := makeDays(1)

	_, err := ResolveDrop(days, "act-1-0", "day-9")
	assert.ErrorIs(t, err, errors.DayOutOfRange)

	_, err = ResolveDrop(days, "act-1-0", "ghost")
	assert.ErrorIs(t, err, errors.ItemNotFound)

	// "day-x" 不是合法列标识，按活动 ID 解析
	_, err = ResolveDrop(days, "act-1-0", "day-x")
	assert.ErrorIs(t, err, errors.ItemNotFound)
}

func TestApplyReorderAcrossDays(t *testing.T) {
	days := makeDays(2, 2)

	err := ApplyReorder(days, "act-1-0", 2, 1)
	require.NoError(t, err)

	assert.Len(t, days[0].Activities, 1)
	require.Len(t, days[1].Activities, 3)
	assert.Equal(t, "act-1-0", days[1].Activities[1].ID)
	for i, a := range days[1].Activities {
		assert.Equal(t, i, a.OrderIndex)
	}
}

func TestApplyReorderSameDayForward(t *testing.T) {
	days := makeDays(3)

	// 0 号活动移到下标 2；先删后插要补偿位移
	err := ApplyReorder(days, "act-1-0", 1, 2)
	require.NoError(t, err)

	require.Len(t, days[0].Activities, 3)
	assert.Equal(t, "act-1-1", days[0].Activities[0].ID)
	assert.Equal(t, "act-1-0", days[0].Activities[1].ID)
	assert.Equal(t, "act-1-2", days[0].Activities[2].ID)
}

func TestApplyReorderMissing(t *testing.T) {
	days := makeDays(1)

	err := ApplyReorder(days, "ghost", 1, 0)
	assert.ErrorIs(t, err, errors.ItemNotFound)

	err = ApplyReorder(days, "act-1-0", 7, 0)
	assert.ErrorIs(t, err, errors.DayOutOfRange)
}
