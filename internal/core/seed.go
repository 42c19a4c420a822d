package core

import "time"

// SeedExpenses returns the bundled example dataset used on first run, when
// no expense record has been persisted yet. Each call returns a fresh slice
// so callers cannot alias each other's state.
func SeedExpenses() []Expense {
	seed := []struct {
		id      string
		title   string
		amount  float64
		cat     CategoryID
		date    string
		payment Payment
		created string
	}{
		{"1", "Grocery Shopping", 125.50, CategoryFood, "2026-02-25", PaymentCreditCard, "2026-02-25T10:00:00Z"},
		{"2", "Uber to Airport", 45.00, CategoryTransport, "2026-02-24", PaymentDigitalWallet, "2026-02-24T08:30:00Z"},
		{"3", "Movie Tickets", 28.00, CategoryEntertainment, "2026-02-23", PaymentCreditCard, "2026-02-23T19:00:00Z"},
		{"4", "Internet Bill", 79.99, CategoryBills, "2026-02-22", PaymentBankTransfer, "2026-02-22T09:00:00Z"},
		{"5", "New Shoes", 89.99, CategoryShopping, "2026-02-21", PaymentCreditCard, "2026-02-21T14:00:00Z"},
		{"6", "Lunch at Restaurant", 42.50, CategoryFood, "2026-02-20", PaymentCash, "2026-02-20T12:30:00Z"},
		{"7", "Doctor Consultation", 150.00, CategoryHealth, "2026-02-19", PaymentCreditCard, "2026-02-19T11:00:00Z"},
		{"8", "Online Course", 199.00, CategoryEducation, "2026-02-18", PaymentCreditCard, "2026-02-18T16:00:00Z"},
		{"9", "Coffee Shop", 12.50, CategoryFood, "2026-02-17", PaymentCash, "2026-02-17T08:00:00Z"},
		{"10", "Gas Station", 55.80, CategoryTransport, "2026-02-16", PaymentCreditCard, "2026-02-16T17:00:00Z"},
		{"11", "Streaming Service", 15.99, CategoryEntertainment, "2026-02-15", PaymentCreditCard, "2026-02-15T00:00:00Z"},
		{"12", "Dinner with Friends", 68.00, CategoryFood, "2026-02-14", PaymentCreditCard, "2026-02-14T20:00:00Z"},
		{"13", "Electricity Bill", 95.00, CategoryBills, "2026-02-13", PaymentBankTransfer, "2026-02-13T09:00:00Z"},
		{"14", "Gym Membership", 49.99, CategoryHealth, "2026-02-12", PaymentCreditCard, "2026-02-12T07:00:00Z"},
		{"15", "Books", 38.00, CategoryEducation, "2026-02-11", PaymentCreditCard, "2026-02-11T15:00:00Z"},
		{"16", "Groceries", 95.00, CategoryFood, "2026-01-10", PaymentCreditCard, "2026-01-10T10:00:00Z"},
		{"17", "Bus Pass", 40.00, CategoryTransport, "2026-01-15", PaymentCash, "2026-01-15T09:00:00Z"},
		{"18", "Rent", 900.00, CategoryBills, "2026-01-01", PaymentBankTransfer, "2026-01-01T09:00:00Z"},
		{"19", "Concert", 80.00, CategoryEntertainment, "2025-12-20", PaymentCreditCard, "2025-12-20T20:00:00Z"},
		{"20", "Pharmacy", 35.00, CategoryHealth, "2025-12-15", PaymentCash, "2025-12-15T11:00:00Z"},
		{"21", "Online Shopping", 120.00, CategoryShopping, "2025-11-25", PaymentCreditCard, "2025-11-25T14:00:00Z"},
		{"22", "Water Bill", 45.00, CategoryBills, "2025-11-10", PaymentBankTransfer, "2025-11-10T09:00:00Z"},
		{"23", "Taxi", 22.00, CategoryTransport, "2025-10-18", PaymentCash, "2025-10-18T18:00:00Z"},
	}

	out := make([]Expense, 0, len(seed))
	for _, s := range seed {
		date, _ := ParseDate(s.date)
		created, _ := time.Parse(time.RFC3339, s.created)
		out = append(out, Expense{
			ID:        s.id,
			Title:     s.title,
			Amount:    s.amount,
			Category:  s.cat,
			Date:      date,
			Payment:   s.payment,
			Notes:     "",
			CreatedAt: created,
		})
	}
	return out
}
