// Package store owns the canonical expense list and the settings record.
// Mutations are expressed as commands processed by a pure transition
// function; the stores wrap that function with persistence and toasts.
package store

import "spendlog/internal/core"

// Command is a tagged mutation of the expense list.
type Command interface {
	isCommand()
}

type (
	// LoadCmd replaces the whole list, used at startup.
	LoadCmd struct {
		Expenses []core.Expense
	}

	// AddCmd prepends a newly created expense.
	AddCmd struct {
		Expense core.Expense
	}

	// UpdateCmd replaces the entry with a matching id. No match, no change.
	UpdateCmd struct {
		Expense core.Expense
	}

	// DeleteCmd removes the entry with a matching id. No match, no change.
	DeleteCmd struct {
		ID string
	}

	// ReinsertCmd restores a previously deleted record verbatim, original
	// id and creation timestamp included. It prepends like AddCmd but is
	// not a new add: nothing is reassigned.
	ReinsertCmd struct {
		Expense core.Expense
	}
)

func (LoadCmd) isCommand()     {}
func (AddCmd) isCommand()      {}
func (UpdateCmd) isCommand()   {}
func (DeleteCmd) isCommand()   {}
func (ReinsertCmd) isCommand() {}

// Reduce maps (state, command) to the next state. It is pure: the input
// slice is never mutated and the result is always freshly allocated.
func Reduce(state []core.Expense, cmd Command) []core.Expense {
	switch c := cmd.(type) {
	case LoadCmd:
		return append([]core.Expense(nil), c.Expenses...)
	case AddCmd:
		return prepend(state, c.Expense)
	case ReinsertCmd:
		return prepend(state, c.Expense)
	case UpdateCmd:
		out := make([]core.Expense, len(state))
		for i, e := range state {
			if e.ID == c.Expense.ID {
				out[i] = c.Expense
			} else {
				out[i] = e
			}
		}
		return out
	case DeleteCmd:
		out := make([]core.Expense, 0, len(state))
		for _, e := range state {
			if e.ID != c.ID {
				out = append(out, e)
			}
		}
		return out
	default:
		return append([]core.Expense(nil), state...)
	}
}

func prepend(state []core.Expense, e core.Expense) []core.Expense {
	out := make([]core.Expense, 0, len(state)+1)
	out = append(out, e)
	return append(out, state...)
}
