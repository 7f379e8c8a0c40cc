package itinerary

import (
	"strconv"
	"strings"

	"Tripweave/internal/model"
	"Tripweave/pkg/errors"
)

// Resolution 拖放目标解析结果
type Resolution struct {
	Day   int
	Index int
	NoOp  bool
}

// ResolveDrop 把拖放目标解析成 (目标天, 插入下标)：
//   - 目标是 "day-<N>" 形式的列标识，追加到该天末尾
//   - 目标是另一个活动，落在该活动当前所在的位置
//   - 源和目标是同一个元素时为 no-op
func ResolveDrop(days []model.ItineraryDay, activityID, target string) (Resolution, error) {
	if target == activityID {
		return Resolution{NoOp: true}, nil
	}

	if n, ok := parseDayTarget(target); ok {
		di := dayIndex(days, n)
		if di < 0 {
			return Resolution{}, errors.DayOutOfRange
		}
		return Resolution{Day: n, Index: len(days[di].Activities)}, nil
	}

	di, ai, ok := FindActivity(days, target)
	if !ok {
		return Resolution{}, errors.ItemNotFound
	}
	return Resolution{Day: days[di].Day, Index: ai}, nil
}

// ApplyReorder 把活动移动到目标天的目标下标
func ApplyReorder(days []model.ItineraryDay, activityID string, dayNumber, index int) error {
	sdi, sai, ok := FindActivity(days, activityID)
	if !ok {
		return errors.ItemNotFound
	}

	tdi := dayIndex(days, dayNumber)
	if tdi < 0 {
		return errors.DayOutOfRange
	}

	act := days[sdi].Activities[sai]
	src := days[sdi].Activities
	days[sdi].Activities = append(src[:sai], src[sai+1:]...)

	// 同一天内先删后插，删除导致的位移要补偿
	if sdi == tdi && sai < index {
		index--
	}

	dst := days[tdi].Activities
	if index < 0 || index > len(dst) {
		index = len(dst)
	}

	dst = append(dst, model.Activity{})
	copy(dst[index+1:], dst[index:])
	dst[index] = act
	days[tdi].Activities = dst

	reindex(days[sdi].Activities)
	reindex(days[tdi].Activities)
	return nil
}

func parseDayTarget(target string) (int, bool) {
	rest, ok := strings.CutPrefix(target, "day-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
