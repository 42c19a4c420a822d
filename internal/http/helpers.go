package http

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"spendlog/internal/core"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"currency": formatCurrency,
		"pct":      pctString,
		"catLabel": func(id core.CategoryID) string { return core.CategoryByID(id).Label },
		"catBadge": func(id core.CategoryID) string { return core.CategoryByID(id).BadgeClass },
		"barWidth": func(value, max float64) string {
			if max <= 0 {
				return "0%"
			}
			return fmt.Sprintf("%.1f%%", value/max*100)
		},
	}
}

func pctString(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// formatCurrency renders an amount as dollars with thousands separators,
// e.g. 1234.5 -> "$1,234.50".
func formatCurrency(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "$" + b.String() + "." + fracPart
	if neg {
		return "-" + out
	}
	return out
}

// parseDraft reads an expense draft from form values, collecting per-field
// errors. This is the only validation in the system; the store accepts any
// well-typed record.
func parseDraft(r *http.Request) (core.Draft, map[string]string) {
	errs := make(map[string]string)
	draft := core.Draft{
		Title:    strings.TrimSpace(r.FormValue("title")),
		Category: core.CategoryID(r.FormValue("category")),
		Payment:  core.Payment(r.FormValue("payment")),
		Notes:    strings.TrimSpace(r.FormValue("notes")),
	}

	if draft.Title == "" {
		errs["title"] = "Title is required"
	}

	amount, err := core.ParseAmount(r.FormValue("amount"))
	if err != nil {
		errs["amount"] = "Amount must be a positive number"
	}
	draft.Amount = amount

	if _, ok := core.LookupCategory(draft.Category); !ok {
		errs["category"] = "Pick a category"
	}

	date, err := core.ParseDate(r.FormValue("date"))
	if err != nil {
		errs["date"] = "Date is required"
	}
	draft.Date = date

	if draft.Payment == "" {
		draft.Payment = core.PaymentCreditCard
	}

	return draft, errs
}
