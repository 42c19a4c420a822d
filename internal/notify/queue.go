// Package notify holds the short-lived queue of user-facing toasts. Each
// toast auto-expires after a fixed delay unless dismissed first; a toast may
// carry an undo command (currently only "re-insert a deleted expense").
package notify

import (
	"sync"
	"time"
)

// Severity classifies a toast for display.
type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
)

// DefaultTTL is how long a toast stays up without explicit dismissal.
const DefaultTTL = 4500 * time.Millisecond

// UndoCommand reverses the mutation that produced a toast. Implementations
// are explicit command values carrying the data they re-apply, not opaque
// closures over store internals.
type UndoCommand interface {
	Apply()
}

// Toast is one queued message. IDs are monotonically increasing per process
// run and never reused, so a late-firing expiry timer can never remove a
// newer toast.
type Toast struct {
	ID       int64
	Message  string
	Severity Severity
	Undo     UndoCommand
}

// Queue is the toast queue. Expiry timers fire on their own goroutines, so
// all state is mutex-guarded even though the application mutates from a
// single request at a time.
type Queue struct {
	mu     sync.Mutex
	nextID int64
	ttl    time.Duration
	items  []Toast
	timers map[int64]*time.Timer
}

// NewQueue returns a queue with the standard auto-dismiss delay.
func NewQueue() *Queue {
	return NewQueueTTL(DefaultTTL)
}

// NewQueueTTL is NewQueue with a custom delay, for tests.
func NewQueueTTL(ttl time.Duration) *Queue {
	return &Queue{
		ttl:    ttl,
		timers: make(map[int64]*time.Timer),
	}
}

// Push appends a toast and arms its expiry timer, returning the assigned id.
// A nil undo is fine; multiple toasts coexist without deduplication.
func (q *Queue) Push(message string, severity Severity, undo UndoCommand) int64 {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.nextID++
	id := q.nextID
	q.items = append(q.items, Toast{ID: id, Message: message, Severity: severity, Undo: undo})
	q.timers[id] = time.AfterFunc(q.ttl, func() { q.Dismiss(id) })
	return id
}

// Dismiss removes the toast immediately and cancels its pending expiry.
// Unknown ids are a no-op.
func (q *Queue) Dismiss(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.remove(id)
}

// InvokeUndo runs the toast's undo command, if any, then dismisses it.
func (q *Queue) InvokeUndo(id int64) {
	q.mu.Lock()
	var undo UndoCommand
	for _, t := range q.items {
		if t.ID == id {
			undo = t.Undo
			break
		}
	}
	q.remove(id)
	q.mu.Unlock()

	// Run outside the lock: the command re-enters the store, which may
	// push back into this queue.
	if undo != nil {
		undo.Apply()
	}
}

// Items returns a snapshot in insertion order.
func (q *Queue) Items() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Toast, len(q.items))
	copy(out, q.items)
	return out
}

// Stop cancels all pending expiry timers; used on shutdown.
func (q *Queue) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for id, t := range q.timers {
		t.Stop()
		delete(q.timers, id)
	}
	q.items = nil
}

// remove must be called with the mutex held.
func (q *Queue) remove(id int64) {
	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}
	for i, item := range q.items {
		if item.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}
