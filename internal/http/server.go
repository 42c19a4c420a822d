// Package http is the presentation layer: server-rendered pages over the
// stores, the aggregation functions and the toast queue. It holds no domain
// state of its own; every view is derived from the stores on request.
package http

import (
	"context"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"spendlog/internal/cache"
	"spendlog/internal/log"
	"spendlog/internal/notify"
	"spendlog/internal/store"
	"spendlog/web"
)

// Server wires routes, templates and middleware around the application
// stores.
type Server struct {
	http.Server

	templates *template.Template
	expenses  *store.ExpenseStore
	settings  *store.SettingsStore
	toasts    *notify.Queue

	// Dashboard view models are recomputed on every mutation, cached
	// between them.
	dashCache *cache.LRU[dashboardView]

	shutdownOnce sync.Once
}

// NewServer configures routes and templates, returning a ready-to-run server.
func NewServer(addr string, expenses *store.ExpenseStore, settings *store.SettingsStore, toasts *notify.Queue, logger *log.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: log.Middleware(logger)(securityHeaders(mux)),

			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 16,
		},
		expenses:  expenses,
		settings:  settings,
		toasts:    toasts,
		dashCache: cache.NewLRU[dashboardView](8, 5*time.Minute),
	}

	t, err := template.New("").Funcs(templateFuncs()).ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	if sub, err := fs.Sub(web.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600")
			static.ServeHTTP(w, r)
		}))
	} else {
		slog.Warn("Failed to mount embedded static FS", "error", err)
	}

	mux.HandleFunc("/", s.handleDashboard)
	mux.HandleFunc("/expenses", s.handleExpenses)
	mux.HandleFunc("/expenses/update", s.handleExpenseUpdate)
	mux.HandleFunc("/expenses/delete", s.handleExpenseDelete)
	mux.HandleFunc("/analytics", s.handleAnalytics)
	mux.HandleFunc("/settings", s.handleSettings)
	mux.HandleFunc("/settings/clear", s.handleSettingsClear)
	mux.HandleFunc("/export/csv", s.handleExportCSV)
	mux.HandleFunc("/export/xlsx", s.handleExportXLSX)
	mux.HandleFunc("/toasts", s.handleToasts)
	mux.HandleFunc("/toasts/dismiss", s.handleToastDismiss)
	mux.HandleFunc("/toasts/undo", s.handleToastUndo)

	return s
}

// Shutdown stops the server and the toast expiry timers.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		if s.toasts != nil {
			s.toasts.Stop()
		}
		err = s.Server.Shutdown(ctx)
	})
	return err
}

// invalidate drops derived views after a mutation.
func (s *Server) invalidate() {
	s.dashCache.Purge()
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded")
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution failed", "template", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}
