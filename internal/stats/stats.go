// Package stats derives aggregate views from an expense list. Every function
// is pure: it never mutates its input, never fails, and takes the current
// time as an explicit parameter wherever bucketing is month- or day-relative.
package stats

import (
	"sort"
	"time"

	"spendlog/internal/core"
)

// CategoryStat is the aggregate for one category over an expense list.
type CategoryStat struct {
	Category   core.CategoryID
	Label      string
	Color      string
	Total      float64
	Count      int
	Percentage float64
}

// MonthBucket is one calendar month's summed total.
type MonthBucket struct {
	Label string // short month name, e.g. "Feb"
	Year  int
	Month time.Month
	Total float64
}

// DayBucket is one calendar day's summed total.
type DayBucket struct {
	Label string // short weekday name, e.g. "Wed"
	Date  core.Date
	Total float64
}

// PieSlice is chart input: one category's share of spending.
type PieSlice struct {
	Name  string
	Value float64
	Color string
}

// BudgetSummary relates current-month spending to the configured budget.
type BudgetSummary struct {
	Spent      float64
	Budget     float64
	Percentage float64
	Remaining  float64
	AvgPerDay  float64
}

// Total sums the amounts of the given expenses.
func Total(list []core.Expense) float64 {
	var sum float64
	for _, e := range list {
		sum += e.Amount
	}
	return sum
}

// FilterCurrentMonth keeps expenses dated in now's calendar month.
func FilterCurrentMonth(list []core.Expense, now time.Time) []core.Expense {
	return filterMonth(list, now.Year(), now.Month())
}

// FilterPreviousMonth keeps expenses dated in the calendar month before
// now's. This is a month comparison, not a rolling 30-day window.
func FilterPreviousMonth(list []core.Expense, now time.Time) []core.Expense {
	prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return filterMonth(list, prev.Year(), prev.Month())
}

func filterMonth(list []core.Expense, year int, month time.Month) []core.Expense {
	out := make([]core.Expense, 0, len(list))
	for _, e := range list {
		if e.Date.SameMonth(year, month) {
			out = append(out, e)
		}
	}
	return out
}

// CategoryStats aggregates per-category totals, counts and percentages.
// Categories with zero total are excluded. The result is sorted descending
// by total; equal totals keep the fixed category declaration order.
func CategoryStats(list []core.Expense) []CategoryStat {
	grand := Total(list)

	totals := make(map[core.CategoryID]float64, len(core.Categories))
	counts := make(map[core.CategoryID]int, len(core.Categories))
	for _, e := range list {
		totals[e.Category] += e.Amount
		counts[e.Category]++
	}

	out := make([]CategoryStat, 0, len(core.Categories))
	for _, c := range core.Categories {
		total := totals[c.ID]
		if total <= 0 {
			continue
		}
		pct := 0.0
		if grand > 0 {
			pct = total / grand * 100
		}
		out = append(out, CategoryStat{
			Category:   c.ID,
			Label:      c.Label,
			Color:      c.Color,
			Total:      total,
			Count:      counts[c.ID],
			Percentage: pct,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

// MonthlySeries returns exactly n buckets covering the n calendar months
// ending at and including now's month, oldest first.
func MonthlySeries(list []core.Expense, n int, now time.Time) []MonthBucket {
	if n <= 0 {
		return []MonthBucket{}
	}
	out := make([]MonthBucket, 0, n)
	for i := 0; i < n; i++ {
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, i-(n-1), 0)
		var total float64
		for _, e := range list {
			if e.Date.SameMonth(m.Year(), m.Month()) {
				total += e.Amount
			}
		}
		out = append(out, MonthBucket{
			Label: m.Month().String()[:3],
			Year:  m.Year(),
			Month: m.Month(),
			Total: total,
		})
	}
	return out
}

// DailySeries returns exactly 7 buckets for the 7 calendar days ending at
// and including now's date, oldest first.
func DailySeries(list []core.Expense, now time.Time) []DayBucket {
	out := make([]DayBucket, 0, 7)
	for i := 6; i >= 0; i-- {
		day := core.DateOf(now.AddDate(0, 0, -i))
		var total float64
		for _, e := range list {
			if e.Date.SameDay(day) {
				total += e.Amount
			}
		}
		out = append(out, DayBucket{
			Label: day.Weekday().String()[:3],
			Date:  day,
			Total: total,
		})
	}
	return out
}

// TopCategory returns the highest-total category stat. ok is false when the
// list has no positive-total category.
func TopCategory(list []core.Expense) (CategoryStat, bool) {
	all := CategoryStats(list)
	if len(all) == 0 {
		return CategoryStat{}, false
	}
	return all[0], true
}

// PieSeries shapes category stats for chart consumption, preserving the
// CategoryStats ordering.
func PieSeries(list []core.Expense) []PieSlice {
	all := CategoryStats(list)
	out := make([]PieSlice, 0, len(all))
	for _, s := range all {
		out = append(out, PieSlice{Name: s.Label, Value: s.Total, Color: s.Color})
	}
	return out
}

// Budget summarizes now's month against the configured budget. A zero budget
// yields a zero percentage rather than a division error.
func Budget(list []core.Expense, settings core.Settings, now time.Time) BudgetSummary {
	spent := Total(FilterCurrentMonth(list, now))
	s := BudgetSummary{
		Spent:     spent,
		Budget:    settings.Budget,
		Remaining: settings.Budget - spent,
		AvgPerDay: spent / float64(now.Day()),
	}
	if settings.Budget > 0 {
		s.Percentage = spent / settings.Budget * 100
	}
	return s
}
