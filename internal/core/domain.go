package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// CategoryID identifies one of the fixed spending categories.
	CategoryID string

	// Payment is one of the fixed payment methods.
	Payment string

	// Date is a calendar date without a time component. It marshals to
	// and from the "YYYY-MM-DD" form used by the persisted records.
	Date struct {
		time.Time
	}

	// Expense is a single spending record. Only the expense store may
	// construct or mutate one; everything else treats it as a value.
	Expense struct {
		ID        string     `json:"id"`
		Title     string     `json:"title"`
		Amount    float64    `json:"amount"`
		Category  CategoryID `json:"category"`
		Date      Date       `json:"date"`
		Payment   Payment    `json:"payment"`
		Notes     string     `json:"notes"`
		CreatedAt time.Time  `json:"createdAt"`
	}

	// Draft carries the caller-supplied fields of a new expense. The
	// store assigns the id and creation timestamp.
	Draft struct {
		Title    string
		Amount   float64
		Category CategoryID
		Date     Date
		Payment  Payment
		Notes    string
	}

	// Settings is the per-installation profile and budget record.
	Settings struct {
		Name             string  `json:"name"`
		Email            string  `json:"email"`
		Budget           float64 `json:"budget"`
		BudgetAlerts     bool    `json:"budgetAlerts"`
		ExpenseReminders bool    `json:"expenseReminders"`
		MonthlyReports   bool    `json:"monthlyReports"`
		Theme            string  `json:"theme"`
	}
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrEmptyTitle      = errors.New("empty title")
	ErrInvalidDate     = errors.New("invalid date")
	ErrUnknownCategory = errors.New("unknown category")
)

// NewDate builds a Date normalized to midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses the "YYYY-MM-DD" form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// SameDay reports whether both dates fall on the same calendar day.
func (d Date) SameDay(other Date) bool {
	return d.Year() == other.Year() && d.YearDay() == other.YearDay()
}

// SameMonth reports whether the date falls in the given month and year.
func (d Date) SameMonth(year int, month time.Month) bool {
	return d.Year() == year && d.Month() == month
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Validate checks the draft invariants the store relies on.
func (dr Draft) Validate() error {
	if strings.TrimSpace(dr.Title) == "" {
		return ErrEmptyTitle
	}
	if dr.Amount <= 0 {
		return ErrInvalidAmount
	}
	if _, ok := LookupCategory(dr.Category); !ok {
		return ErrUnknownCategory
	}
	if dr.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// DefaultSettings returns the settings used when nothing was persisted yet.
func DefaultSettings() Settings {
	return Settings{
		Name:             "John Doe",
		Email:            "john@example.com",
		Budget:           2000,
		BudgetAlerts:     true,
		ExpenseReminders: false,
		MonthlyReports:   true,
		Theme:            "light",
	}
}
