package http

import (
	"net/http"
	"sort"
	"time"

	"spendlog/internal/core"
	"spendlog/internal/notify"
	"spendlog/internal/stats"
)

type dashboardView struct {
	MonthTotal  string
	TrendValue  string
	TrendClass  string
	TopCategory string
	TopAmount   string
	Budget      stats.BudgetSummary
	BudgetPct   string
	BudgetSpent string
	BudgetLeft  string
	AvgPerDay   string
	OverBudget  bool
	Days        []dayBar
	Recent      []core.Expense
	Toasts      []notify.Toast
	ActivePage  string
}

type dayBar struct {
	Label string
	Total string
	Width string
}

const dashCacheKey = "dashboard"

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	view, ok := s.dashCache.Get(dashCacheKey)
	if !ok {
		view = s.buildDashboard(time.Now())
		s.dashCache.Set(dashCacheKey, view)
	}
	view.Toasts = s.toasts.Items()
	view.ActivePage = "dashboard"
	s.render(w, r, "dashboard_page", view)
}

func (s *Server) buildDashboard(now time.Time) dashboardView {
	list := s.expenses.List()
	settings := s.settings.Settings()

	current := stats.FilterCurrentMonth(list, now)
	currentTotal := stats.Total(current)
	prevTotal := stats.Total(stats.FilterPreviousMonth(list, now))

	view := dashboardView{
		MonthTotal: formatCurrency(currentTotal),
	}

	switch diff := currentTotal - prevTotal; {
	case prevTotal <= 0:
		// No basis for a trend on the first tracked month.
	case diff > 0:
		view.TrendValue = formatCurrency(diff) + " more than last month"
		view.TrendClass = "trend--up"
	case diff < 0:
		view.TrendValue = formatCurrency(-diff) + " less than last month"
		view.TrendClass = "trend--down"
	default:
		view.TrendValue = "same as last month"
		view.TrendClass = "trend--neutral"
	}

	if top, ok := stats.TopCategory(current); ok {
		view.TopCategory = top.Label
		view.TopAmount = formatCurrency(top.Total)
	}

	budget := stats.Budget(list, settings, now)
	view.Budget = budget
	view.BudgetPct = pctString(budget.Percentage)
	view.BudgetSpent = formatCurrency(budget.Spent)
	view.BudgetLeft = formatCurrency(budget.Remaining)
	view.AvgPerDay = formatCurrency(budget.AvgPerDay)
	view.OverBudget = budget.Budget > 0 && budget.Spent > budget.Budget

	days := stats.DailySeries(list, now)
	var maxDay float64
	for _, d := range days {
		if d.Total > maxDay {
			maxDay = d.Total
		}
	}
	for _, d := range days {
		width := "0%"
		if maxDay > 0 {
			width = pctString(d.Total / maxDay * 100)
		}
		view.Days = append(view.Days, dayBar{
			Label: d.Label,
			Total: formatCurrency(d.Total),
			Width: width,
		})
	}

	view.Recent = recentExpenses(list, 5)
	return view
}

// recentExpenses returns the n most recent records by expense date.
func recentExpenses(list []core.Expense, n int) []core.Expense {
	out := make([]core.Expense, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
