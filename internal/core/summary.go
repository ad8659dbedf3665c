package core

import "sort"

// ItemAmount represents an amount aggregated by item name.
type ItemAmount struct {
	Item   string
	Amount Money
}

// Summary is a compact aggregate over one owner's expenses.
type Summary struct {
	Total  Money
	Count  int
	ByItem []ItemAmount
}

// Summarize computes total, count and per-item totals over the given
// expenses. Per-item rows are ordered by amount descending (ties by name)
// so the chart renders largest-first.
func Summarize(expenses []Expense) Summary {
	s := Summary{Count: len(expenses)}

	byItem := make(map[string]int64)
	for _, e := range expenses {
		s.Total.Cents += e.Cost.Cents
		byItem[e.Item] += e.Cost.Cents
	}

	s.ByItem = make([]ItemAmount, 0, len(byItem))
	for item, cents := range byItem {
		s.ByItem = append(s.ByItem, ItemAmount{Item: item, Amount: Money{Cents: cents}})
	}
	sort.Slice(s.ByItem, func(i, j int) bool {
		if s.ByItem[i].Amount.Cents != s.ByItem[j].Amount.Cents {
			return s.ByItem[i].Amount.Cents > s.ByItem[j].Amount.Cents
		}
		return s.ByItem[i].Item < s.ByItem[j].Item
	})

	return s
}

// Average returns total/count. The second return is false when there are no
// expenses and the average is undefined.
func (s Summary) Average() (Money, bool) {
	if s.Count == 0 {
		return Money{}, false
	}
	return Money{Cents: s.Total.Cents / int64(s.Count)}, true
}
