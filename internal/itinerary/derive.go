package itinerary

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"Tripweave/internal/model"
)

// 个人资料简介的词数上限
const BioMaxWords = 600

// EndDate 计算行程结束日期 = start_date + (天数 - 1)。
// 没有开始日期时返回 nil
func EndDate(startDate *time.Time, dayCount int) *time.Time {
	if startDate == nil {
		return nil
	}
	if dayCount < 1 {
		dayCount = 1
	}
	end := startDate.AddDate(0, 0, dayCount-1)
	return &end
}

// IsPast 行程是否已结束。无开始日期的行程永远不算过期
func IsPast(startDate *time.Time, dayCount int, now time.Time) bool {
	end := EndDate(startDate, dayCount)
	if end == nil {
		return false
	}
	return now.After(*end)
}

// Costs 费用汇总，金额用 decimal 避免浮点误差
type Costs struct {
	Total  decimal.Decimal
	PerDay map[int]decimal.Decimal
	Payers map[string]decimal.Decimal
}

// ComputeCosts 汇总每天和整个行程的预估费用。
// payer 为 split 的活动按旅行者人数均摊
func ComputeCosts(days []model.ItineraryDay, travelers []model.Traveler) Costs {
	c := Costs{
		Total:  decimal.Zero,
		PerDay: make(map[int]decimal.Decimal, len(days)),
		Payers: make(map[string]decimal.Decimal),
	}

	for _, d := range days {
		daySum := decimal.Zero
		for _, a := range d.Activities {
			daySum = daySum.Add(a.EstimatedCost)
			addPayerShare(&c, a, travelers)
		}
		c.PerDay[d.Day] = daySum
		c.Total = c.Total.Add(daySum)
	}

	return c
}

func addPayerShare(c *Costs, a model.Activity, travelers []model.Traveler) {
	if a.EstimatedCost.IsZero() {
		return
	}

	if a.Payer == model.PayerSplit {
		if len(travelers) == 0 {
			return
		}
		share := a.EstimatedCost.Div(decimal.NewFromInt(int64(len(travelers))))
		for _, t := range travelers {
			c.Payers[t.ID] = c.Payers[t.ID].Add(share)
		}
		return
	}

	if a.Payer != "" {
		c.Payers[a.Payer] = c.Payers[a.Payer].Add(a.EstimatedCost)
	}
}

// SortDayActivities 天内展示排序：住宿类永远排最前，其余按 order_index
func SortDayActivities(acts []model.Activity) {
	sort.SliceStable(acts, func(i, j int) bool {
		li, lj := isLodging(acts[i].Category), isLodging(acts[j].Category)
		if li != lj {
			return li
		}
		return acts[i].OrderIndex < acts[j].OrderIndex
	})
}

func isLodging(category string) bool {
	return category == model.CategoryAccommodation || category == model.CategoryHotel
}

// TruncateBioWords 保留前 max 个词，词间归一为单个空格
func TruncateBioWords(bio string, max int) string {
	words := strings.Fields(bio)
	if len(words) > max {
		words = words[:max]
	}
	return strings.Join(words, " ")
}
