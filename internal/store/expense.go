package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"spendlog/internal/core"
	"spendlog/internal/notify"
	"spendlog/internal/storage"
)

// ExpenseStore holds the ordered expense list, newest-first after each add.
// It is the sole owner of Expense records: ids and creation timestamps are
// assigned here and nowhere else. Every mutation persists the full list
// immediately and pushes a toast; persistence failures are logged and never
// surfaced, since the in-memory list is the source of truth for the session.
type ExpenseStore struct {
	mu     sync.Mutex
	gw     storage.Gateway
	toasts *notify.Queue

	expenses []core.Expense
}

// NewExpenseStore loads the persisted list, falling back to the bundled
// seed dataset on first run. A nil toasts queue disables notifications.
func NewExpenseStore(ctx context.Context, gw storage.Gateway, toasts *notify.Queue) *ExpenseStore {
	s := &ExpenseStore{gw: gw, toasts: toasts}
	loaded := storage.Load(ctx, gw, storage.KeyExpenses, core.SeedExpenses())
	s.expenses = Reduce(nil, LoadCmd{Expenses: loaded})
	slog.InfoContext(ctx, "Expense store loaded", "count", len(s.expenses))
	return s
}

// List returns a copy of the current list; callers never alias store state.
func (s *ExpenseStore) List() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Add creates an expense from the draft, assigning a fresh id and creation
// timestamp, and prepends it. Returns the stored record.
func (s *ExpenseStore) Add(ctx context.Context, draft core.Draft) core.Expense {
	e := core.Expense{
		ID:        newID(),
		Title:     draft.Title,
		Amount:    draft.Amount,
		Category:  draft.Category,
		Date:      draft.Date,
		Payment:   draft.Payment,
		Notes:     draft.Notes,
		CreatedAt: time.Now().UTC(),
	}
	s.apply(ctx, AddCmd{Expense: e})
	s.push("Expense added successfully", nil)
	slog.InfoContext(ctx, "Expense added", "id", e.ID, "title", e.Title, "amount", e.Amount)
	return e
}

// Update replaces the entry whose id matches. An unknown id is a silent
// no-op: nothing is inserted and no error is raised, but the toast is still
// pushed (kept from the original behavior).
func (s *ExpenseStore) Update(ctx context.Context, e core.Expense) {
	s.apply(ctx, UpdateCmd{Expense: e})
	s.push("Expense updated successfully", nil)
	slog.InfoContext(ctx, "Expense updated", "id", e.ID)
}

// Delete removes the entry whose id matches and pushes a toast carrying an
// undo command that restores the removed record verbatim. Deleting an
// unknown id leaves the list unchanged but still pushes the toast.
func (s *ExpenseStore) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	var removed *core.Expense
	for _, e := range s.expenses {
		if e.ID == id {
			removed = &e
			break
		}
	}
	s.expenses = Reduce(s.expenses, DeleteCmd{ID: id})
	s.persistLocked(ctx)
	s.mu.Unlock()

	var undo notify.UndoCommand
	if removed != nil {
		undo = reinsert{store: s, Record: *removed}
	}
	s.push("Expense deleted", undo)
	slog.InfoContext(ctx, "Expense deleted", "id", id, "existed", removed != nil)
}

// Clear empties the list. Used by the settings page's clear-all-data action.
func (s *ExpenseStore) Clear(ctx context.Context) {
	s.apply(ctx, LoadCmd{Expenses: nil})
	s.push("All expenses cleared", nil)
	slog.InfoContext(ctx, "Expense list cleared")
}

// reinsert is the undo of Delete: an explicit command value carrying the
// removed record, so the action is inspectable rather than a bare closure.
type reinsert struct {
	store  *ExpenseStore
	Record core.Expense
}

func (c reinsert) Apply() {
	ctx := context.Background()
	c.store.apply(ctx, ReinsertCmd{Expense: c.Record})
	slog.InfoContext(ctx, "Expense restored", "id", c.Record.ID)
}

func (s *ExpenseStore) apply(ctx context.Context, cmd Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = Reduce(s.expenses, cmd)
	s.persistLocked(ctx)
}

// persistLocked writes the full list; must be called with the mutex held.
func (s *ExpenseStore) persistLocked(ctx context.Context) {
	storage.Save(ctx, s.gw, storage.KeyExpenses, s.expenses)
}

func (s *ExpenseStore) push(message string, undo notify.UndoCommand) {
	if s.toasts == nil {
		return
	}
	s.toasts.Push(message, notify.Success, undo)
}

// newID builds a time-based id with a random suffix. Uniqueness within the
// store is what matters; the exact shape mirrors the persisted records.
func newID() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + hex.EncodeToString(buf)
}
