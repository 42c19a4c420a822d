package http

import (
	"net/http"
	"strconv"

	"spendlog/internal/notify"
)

type toastView struct {
	Toasts []notify.Toast
}

// handleToasts renders the toast stack as a standalone partial so pages can
// refresh it without a full reload.
func (s *Server) handleToasts(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "toast_stack", toastView{Toasts: s.toasts.Items()})
}

func (s *Server) handleToastDismiss(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if id, err := strconv.ParseInt(r.FormValue("id"), 10, 64); err == nil {
		s.toasts.Dismiss(id)
	}
	http.Redirect(w, r, redirectTarget(r), http.StatusSeeOther)
}

func (s *Server) handleToastUndo(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if id, err := strconv.ParseInt(r.FormValue("id"), 10, 64); err == nil {
		s.toasts.InvokeUndo(id)
		s.invalidate()
	}
	http.Redirect(w, r, redirectTarget(r), http.StatusSeeOther)
}
