package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"spendlog/internal/log"
	"spendlog/internal/notify"
	"spendlog/internal/storage"
	"spendlog/internal/store"
)

func newTestServer(t *testing.T) (*Server, *store.ExpenseStore, *notify.Queue) {
	t.Helper()

	gw, err := storage.NewFileGateway(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileGateway: %v", err)
	}
	t.Cleanup(func() { gw.Close() })

	toasts := notify.NewQueue()
	t.Cleanup(toasts.Stop)

	expenses := store.NewExpenseStore(context.Background(), gw, toasts)
	settings := store.NewSettingsStore(context.Background(), gw)

	logger := log.New(log.DefaultConfig())
	return NewServer(":0", expenses, settings, toasts, logger), expenses, toasts
}

func TestDashboardRenders(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	if body := rec.Body.String(); !strings.Contains(body, "This Month") {
		t.Errorf("dashboard body missing summary cards")
	}
}

func TestUnknownPathIs404(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestSecurityHeaders(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	for header, want := range map[string]string{
		"X-Frame-Options":        "DENY",
		"X-Content-Type-Options": "nosniff",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if csp := rec.Header().Get("Content-Security-Policy"); csp == "" {
		t.Error("Content-Security-Policy missing")
	}
}

func TestAddExpenseRedirectsAndPersists(t *testing.T) {
	srv, expenses, toasts := newTestServer(t)
	before := len(expenses.List())

	form := url.Values{
		"title":    {"Team lunch"},
		"amount":   {"42.50"},
		"category": {"food"},
		"date":     {"2026-02-10"},
		"payment":  {"Cash"},
	}
	req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/expenses" {
		t.Errorf("Location = %q, want /expenses", loc)
	}

	list := expenses.List()
	if len(list) != before+1 {
		t.Fatalf("len(list) = %d, want %d", len(list), before+1)
	}
	if list[0].Title != "Team lunch" {
		t.Errorf("newest title = %q, want %q", list[0].Title, "Team lunch")
	}
	if len(toasts.Items()) == 0 {
		t.Error("expected a toast after adding")
	}
}

func TestAddExpenseRejectsInvalidForm(t *testing.T) {
	srv, expenses, _ := newTestServer(t)
	before := len(expenses.List())

	form := url.Values{
		"title":  {""},
		"amount": {"abc"},
	}
	req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if got := len(expenses.List()); got != before {
		t.Errorf("len(list) = %d, want unchanged %d", got, before)
	}
}

func TestDeleteRequiresPost(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/expenses/delete", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
	if allow := rec.Header().Get("Allow"); allow != "POST" {
		t.Errorf("Allow = %q, want POST", allow)
	}
}

func TestCSVExportHeaders(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export/csv", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.HasPrefix(cd, "attachment; filename=expenses-") || !strings.HasSuffix(cd, ".csv") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "Title,Amount,Category,Date,Payment,Notes\n") {
		t.Errorf("body missing CSV header row")
	}
}

func TestSettingsSaveMergesAndRedirects(t *testing.T) {
	srv, _, _ := newTestServer(t)

	form := url.Values{"budget": {"1800"}}
	req := httptest.NewRequest(http.MethodPost, "/settings", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/settings", nil))
	if body := rec.Body.String(); !strings.Contains(body, "1800") {
		t.Errorf("settings page missing updated budget")
	}
	if body := rec.Body.String(); !strings.Contains(body, "John Doe") {
		t.Errorf("settings page lost untouched profile name")
	}
}

func TestToastDismiss(t *testing.T) {
	srv, _, toasts := newTestServer(t)

	id := toasts.Push("hello", notify.Info, nil)

	form := url.Values{"id": {strconv.FormatInt(id, 10)}}
	req := httptest.NewRequest(http.MethodPost, "/toasts/dismiss", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := len(toasts.Items()); got != 0 {
		t.Errorf("len(toasts) = %d, want 0", got)
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5.5, "$5.50"},
		{1234.5, "$1,234.50"},
		{1234567.89, "$1,234,567.89"},
		{-42, "-$42.00"},
	}
	for _, tt := range tests {
		if got := formatCurrency(tt.in); got != tt.want {
			t.Errorf("formatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
