package itinerary

import (
	"fmt"

	"github.com/shopspring/decimal"

	"Tripweave/internal/model"
	"Tripweave/pkg/errors"
)

// 行程天数与人数的边界
const (
	MinDays      = 1
	MaxDays      = 90
	MinTravelers = 1
	MaxTravelers = 20
)

// Renumber 按数组位置重写每天的 day 序号，1 起始连续
func Renumber(days []model.ItineraryDay) {
	for i := range days {
		days[i].Day = i + 1
	}
}

// MoveDay 把 from 位置的天移动到 to 位置，移动和重编号是一个整体，
// 不存在只移动不编号的中间态
func MoveDay(days []model.ItineraryDay, from, to int) ([]model.ItineraryDay, error) {
	if from < 0 || from >= len(days) || to < 0 || to >= len(days) {
		return nil, errors.DayOutOfRange
	}
	if from == to {
		return days, nil
	}

	moved := days[from]
	days = append(days[:from], days[from+1:]...)

	days = append(days, model.ItineraryDay{})
	copy(days[to+1:], days[to:])
	days[to] = moved

	Renumber(days)
	return days, nil
}

// AddDay 末尾追加一个空天
func AddDay(days []model.ItineraryDay) []model.ItineraryDay {
	n := len(days) + 1
	return append(days, model.ItineraryDay{
		Day:        n,
		Title:      fmt.Sprintf("Day %d", n),
		Activities: []model.Activity{},
	})
}

// ClampDays 把请求的天数收敛到 [1, max]，max 非正时用包内默认上限
func ClampDays(n, max int) int {
	if max <= 0 {
		max = MaxDays
	}
	if n < MinDays {
		return MinDays
	}
	if n > max {
		return max
	}
	return n
}

// ClampTravelers 把请求的人数收敛到 [1, max]，max 非正时用包内默认上限
func ClampTravelers(n, max int) int {
	if max <= 0 {
		max = MaxTravelers
	}
	if n < MinTravelers {
		return MinTravelers
	}
	if n > max {
		return max
	}
	return n
}

// ResizeDays 调整总天数。增加时在末尾补 "Day {n}" 空天，
// 减少时直接截断，保留的天序号本来就正确，不做重编号
func ResizeDays(days []model.ItineraryDay, count, max int) []model.ItineraryDay {
	count = ClampDays(count, max)

	if count <= len(days) {
		return days[:count]
	}

	for n := len(days) + 1; n <= count; n++ {
		days = append(days, model.ItineraryDay{
			Day:        n,
			Title:      fmt.Sprintf("Day %d", n),
			Activities: []model.Activity{},
		})
	}
	return days
}

// ResizeTravelers 调整旅行者数组长度，ID 由调用方注入的生成器产生
func ResizeTravelers(travelers []model.Traveler, count, max int, newID func() string) []model.Traveler {
	count = ClampTravelers(count, max)

	if count <= len(travelers) {
		return travelers[:count]
	}

	for n := len(travelers) + 1; n <= count; n++ {
		travelers = append(travelers, model.Traveler{
			ID:          newID(),
			DisplayName: fmt.Sprintf("Traveler %d", n),
		})
	}
	return travelers
}

// InsertActivity 在指定天的指定下标插入活动，index 超界则追加到末尾
func InsertActivity(days []model.ItineraryDay, dayNumber, index int, act model.Activity) error {
	di := dayIndex(days, dayNumber)
	if di < 0 {
		return errors.DayOutOfRange
	}

	acts := days[di].Activities
	if index < 0 || index > len(acts) {
		index = len(acts)
	}

	acts = append(acts, model.Activity{})
	copy(acts[index+1:], acts[index:])
	acts[index] = act
	days[di].Activities = acts

	reindex(days[di].Activities)
	return nil
}

// RemoveActivity 从所在天中删除活动
func RemoveActivity(days []model.ItineraryDay, activityID string) error {
	di, ai, ok := FindActivity(days, activityID)
	if !ok {
		return errors.ItemNotFound
	}

	acts := days[di].Activities
	days[di].Activities = append(acts[:ai], acts[ai+1:]...)
	reindex(days[di].Activities)
	return nil
}

// FindActivity 返回活动所在的天下标和天内下标
func FindActivity(days []model.ItineraryDay, activityID string) (dayIdx, actIdx int, ok bool) {
	for di := range days {
		for ai := range days[di].Activities {
			if days[di].Activities[ai].ID == activityID {
				return di, ai, true
			}
		}
	}
	return -1, -1, false
}

// NewActivity 带默认占位字段的新活动
func NewActivity(id, title string) model.Activity {
	if title == "" {
		title = "New activity"
	}
	return model.Activity{
		ID:            id,
		Title:         title,
		Category:      model.CategoryActivity,
		EstimatedCost: decimal.Zero,
	}
}

func dayIndex(days []model.ItineraryDay, dayNumber int) int {
	for i := range days {
		if days[i].Day == dayNumber {
			return i
		}
	}
	return -1
}

func reindex(acts []model.Activity) {
	for i := range acts {
		acts[i].OrderIndex = i
	}
}
