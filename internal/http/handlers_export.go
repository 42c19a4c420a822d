package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"spendlog/internal/export"
)

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	body := export.CSV(s.expenses.List())

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", exportDisposition("csv"))
	if _, err := w.Write([]byte(body)); err != nil {
		slog.ErrorContext(r.Context(), "CSV export write failed", "error", err)
	}
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", exportDisposition("xlsx"))
	if err := export.XLSX(w, s.expenses.List()); err != nil {
		slog.ErrorContext(r.Context(), "XLSX export failed", "error", err)
	}
}

func exportDisposition(ext string) string {
	return fmt.Sprintf("attachment; filename=expenses-%s.%s", time.Now().Format("2006-01-02"), ext)
}
