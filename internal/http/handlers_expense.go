package http

import (
	"net/http"
	"time"

	"spendlog/internal/core"
	"spendlog/internal/notify"
	"spendlog/internal/stats"
)

// expenseFormDelay mimics a brief submit latency so the pending state of the
// form is visible. Purely cosmetic.
const expenseFormDelay = 400 * time.Millisecond

type expensesView struct {
	Expenses   []core.Expense
	Filter     string
	Total      string
	Count      int
	Categories []core.Category
	Payments   []core.Payment
	Form       formState
	Toasts     []notify.Toast
	ActivePage string
}

type formState struct {
	Values map[string]string
	Errors map[string]string
}

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.renderExpenses(w, r, formState{})
	case http.MethodPost:
		s.handleExpenseAdd(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) renderExpenses(w http.ResponseWriter, r *http.Request, form formState) {
	list := s.expenses.List()

	filter := r.URL.Query().Get("filter")
	switch filter {
	case "current":
		list = stats.FilterCurrentMonth(list, time.Now())
	case "previous":
		list = stats.FilterPreviousMonth(list, time.Now())
	default:
		filter = "all"
	}

	if form.Values == nil {
		form.Values = map[string]string{"date": core.DateOf(time.Now()).String()}
	}

	s.render(w, r, "expenses_page", expensesView{
		Expenses:   list,
		Filter:     filter,
		Total:      formatCurrency(stats.Total(list)),
		Count:      len(list),
		Categories: core.Categories,
		Payments:   core.PaymentMethods,
		Form:       form,
		Toasts:     s.toasts.Items(),
		ActivePage: "expenses",
	})
}

func (s *Server) handleExpenseAdd(w http.ResponseWriter, r *http.Request) {
	draft, errs := parseDraft(r)
	if len(errs) > 0 {
		w.WriteHeader(http.StatusUnprocessableEntity)
		s.renderExpenses(w, r, formState{Values: formValues(r), Errors: errs})
		return
	}

	time.Sleep(expenseFormDelay)
	s.expenses.Add(r.Context(), draft)
	s.invalidate()
	http.Redirect(w, r, "/expenses", http.StatusSeeOther)
}

func (s *Server) handleExpenseUpdate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	id := r.FormValue("id")
	draft, errs := parseDraft(r)
	if id == "" || len(errs) > 0 {
		http.Redirect(w, r, "/expenses", http.StatusSeeOther)
		return
	}

	updated := core.Expense{
		ID:       id,
		Title:    draft.Title,
		Amount:   draft.Amount,
		Category: draft.Category,
		Date:     draft.Date,
		Payment:  draft.Payment,
		Notes:    draft.Notes,
	}
	// Keep the original creation timestamp when the record is known.
	for _, e := range s.expenses.List() {
		if e.ID == id {
			updated.CreatedAt = e.CreatedAt
			break
		}
	}

	s.expenses.Update(r.Context(), updated)
	s.invalidate()
	http.Redirect(w, r, "/expenses", http.StatusSeeOther)
}

func (s *Server) handleExpenseDelete(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	if id := r.FormValue("id"); id != "" {
		s.expenses.Delete(r.Context(), id)
		s.invalidate()
	}
	http.Redirect(w, r, redirectTarget(r), http.StatusSeeOther)
}

func formValues(r *http.Request) map[string]string {
	return map[string]string{
		"title":    r.FormValue("title"),
		"amount":   r.FormValue("amount"),
		"category": r.FormValue("category"),
		"date":     r.FormValue("date"),
		"payment":  r.FormValue("payment"),
		"notes":    r.FormValue("notes"),
	}
}

// redirectTarget keeps the user on the page they acted from, with a safe
// fallback for missing or external referers.
func redirectTarget(r *http.Request) string {
	if ref := r.FormValue("from"); ref == "dashboard" {
		return "/"
	}
	return "/expenses"
}
