package http

import (
	"net/http"
	"strconv"
	"strings"

	"spendlog/internal/core"
	"spendlog/internal/notify"
	"spendlog/internal/store"
)

type settingsView struct {
	Settings   core.Settings
	Saved      bool
	Toasts     []notify.Toast
	ActivePage string
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.render(w, r, "settings_page", settingsView{
			Settings:   s.settings.Settings(),
			Saved:      r.URL.Query().Get("saved") == "1",
			Toasts:     s.toasts.Items(),
			ActivePage: "settings",
		})
	case http.MethodPost:
		s.handleSettingsSave(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleSettingsSave applies whichever settings section was submitted.
// Fields absent from the form are left untouched.
func (s *Server) handleSettingsSave(w http.ResponseWriter, r *http.Request) {
	var patch store.SettingsPatch

	if r.Form == nil {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if v, ok := formField(r, "name"); ok {
		patch.Name = &v
	}
	if v, ok := formField(r, "email"); ok {
		patch.Email = &v
	}
	if v, ok := formField(r, "budget"); ok {
		if budget, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && budget >= 0 {
			patch.Budget = &budget
		}
	}
	if v, ok := formField(r, "theme"); ok {
		patch.Theme = &v
	}

	// Checkboxes arrive only when checked, so their section carries a
	// marker field that tells unchecked apart from absent.
	if r.PostForm.Has("notifications") {
		alerts := r.PostForm.Has("budgetAlerts")
		reminders := r.PostForm.Has("expenseReminders")
		reports := r.PostForm.Has("monthlyReports")
		patch.BudgetAlerts = &alerts
		patch.ExpenseReminders = &reminders
		patch.MonthlyReports = &reports
	}

	s.settings.Update(r.Context(), patch)
	s.invalidate()
	http.Redirect(w, r, "/settings?saved=1", http.StatusSeeOther)
}

func (s *Server) handleSettingsClear(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	s.expenses.Clear(r.Context())
	s.invalidate()
	http.Redirect(w, r, "/settings", http.StatusSeeOther)
}

func formField(r *http.Request, name string) (string, bool) {
	if !r.PostForm.Has(name) {
		return "", false
	}
	return r.PostForm.Get(name), true
}
