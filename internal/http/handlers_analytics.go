package http

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"spendlog/internal/notify"
	"spendlog/internal/stats"
)

type analyticsView struct {
	GrandTotal  string
	MonthTotal  string
	Categories  []categoryRow
	Pie         []stats.PieSlice
	PieGradient template.CSS
	Months      []monthBar
	Toasts      []notify.Toast
	ActivePage  string
}

type categoryRow struct {
	stats.CategoryStat
	Amount string
	Pct    string
	Width  string
}

type monthBar struct {
	Label  string
	Total  string
	Height string
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	list := s.expenses.List()
	now := time.Now()

	view := analyticsView{
		GrandTotal: formatCurrency(stats.Total(list)),
		MonthTotal: formatCurrency(stats.Total(stats.FilterCurrentMonth(list, now))),
		Pie:        stats.PieSeries(list),
		Toasts:     s.toasts.Items(),
		ActivePage: "analytics",
	}

	view.PieGradient = pieGradient(view.Pie)

	for _, c := range stats.CategoryStats(list) {
		view.Categories = append(view.Categories, categoryRow{
			CategoryStat: c,
			Amount:       formatCurrency(c.Total),
			Pct:          pctString(c.Percentage),
			Width:        pctString(c.Percentage),
		})
	}

	months := stats.MonthlySeries(list, 6, now)
	var max float64
	for _, m := range months {
		if m.Total > max {
			max = m.Total
		}
	}
	for _, m := range months {
		height := "0%"
		if max > 0 {
			height = pctString(m.Total / max * 100)
		}
		view.Months = append(view.Months, monthBar{
			Label:  m.Label,
			Total:  formatCurrency(m.Total),
			Height: height,
		})
	}

	s.render(w, r, "analytics_page", view)
}

// pieGradient turns pie slices into a conic-gradient the stylesheet can use
// directly, one colored arc per category.
func pieGradient(slices []stats.PieSlice) template.CSS {
	var total float64
	for _, p := range slices {
		total += p.Value
	}
	if total <= 0 {
		return ""
	}

	var stops []string
	var acc float64
	for _, p := range slices {
		from := acc / total * 360
		acc += p.Value
		to := acc / total * 360
		stops = append(stops, fmt.Sprintf("%s %.1fdeg %.1fdeg", p.Color, from, to))
	}
	return template.CSS("conic-gradient(" + strings.Join(stops, ", ") + ")")
}
