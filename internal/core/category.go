package core

// Category is a static spending classification. The set is fixed and not
// user-editable; colors and badge classes feed the templates directly.
type Category struct {
	ID         CategoryID
	Label      string
	Color      string
	BadgeClass string
}

const (
	CategoryFood          CategoryID = "food"
	CategoryTransport     CategoryID = "transport"
	CategoryEntertainment CategoryID = "entertainment"
	CategoryBills         CategoryID = "bills"
	CategoryShopping      CategoryID = "shopping"
	CategoryHealth        CategoryID = "health"
	CategoryEducation     CategoryID = "education"
	CategoryOther         CategoryID = "other"
)

const (
	PaymentCreditCard    Payment = "Credit Card"
	PaymentCash          Payment = "Cash"
	PaymentBankTransfer  Payment = "Bank Transfer"
	PaymentDigitalWallet Payment = "Digital Wallet"
)

// Categories lists the fixed categories in declaration order. The order is
// load-bearing: aggregation uses it to break ties between equal totals.
var Categories = []Category{
	{ID: CategoryFood, Label: "Food & Dining", Color: "#f97316", BadgeClass: "badge--amber"},
	{ID: CategoryTransport, Label: "Transport", Color: "#3b82f6", BadgeClass: "badge--blue"},
	{ID: CategoryEntertainment, Label: "Entertainment", Color: "#ec4899", BadgeClass: "badge--pink"},
	{ID: CategoryBills, Label: "Bills & Utilities", Color: "#0ea5e9", BadgeClass: "badge--sky"},
	{ID: CategoryShopping, Label: "Shopping", Color: "#8b5cf6", BadgeClass: "badge--violet"},
	{ID: CategoryHealth, Label: "Health", Color: "#10b981", BadgeClass: "badge--emerald"},
	{ID: CategoryEducation, Label: "Education", Color: "#f59e0b", BadgeClass: "badge--yellow"},
	{ID: CategoryOther, Label: "Other", Color: "#64748b", BadgeClass: "badge--slate"},
}

// PaymentMethods lists the fixed payment methods in display order.
var PaymentMethods = []Payment{
	PaymentCreditCard,
	PaymentCash,
	PaymentBankTransfer,
	PaymentDigitalWallet,
}

// LookupCategory finds a category by id. ok is false for unrecognized ids.
func LookupCategory(id CategoryID) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryByID resolves an id to its category, falling back to the "other"
// entry for anything unrecognized. It never fails.
func CategoryByID(id CategoryID) Category {
	if c, ok := LookupCategory(id); ok {
		return c
	}
	return Categories[len(Categories)-1]
}
