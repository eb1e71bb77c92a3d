package core

import (
	"errors"
	"strings"
)

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

const (
	Food          Category = "food"
	Transport     Category = "transport"
	Shopping      Category = "shopping"
	Entertainment Category = "entertainment"
	Bills         Category = "bills"
	Health        Category = "health"
	Education     Category = "education"
	Salary        Category = "salary"
	Freelance     Category = "freelance"
	Investment    Category = "investment"
	Other         Category = "other"
)

// Categories is the fixed enumeration in canonical order. Alerts are emitted
// and top-category ties are broken by iterating in this order.
var Categories = []Category{
	Food, Transport, Shopping, Entertainment, Bills, Health,
	Education, Salary, Freelance, Investment, Other,
}

type (
	Kind     string
	Category string

	// Transaction is immutable once created; invalid values are rejected by
	// Validate before anything reaches the store.
	Transaction struct {
		ID          string
		Description string
		Amount      Money
		Category    Category
		Kind        Kind
		Timestamp   int64 // epoch milliseconds; identity aid and sort key
	}
)

// MaxAmountCents caps a single transaction at 10,000,000.00.
const MaxAmountCents int64 = 10_000_000_00

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrAmountTooLarge   = errors.New("amount exceeds maximum")
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidKind      = errors.New("invalid transaction kind")
	ErrInvalidCategory  = errors.New("invalid category")
)

func (k Kind) Valid() bool {
	return k == Income || k == Expense
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (t Transaction) Validate() error {
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if t.Amount.Cents > MaxAmountCents {
		return ErrAmountTooLarge
	}
	if !t.Kind.Valid() {
		return ErrInvalidKind
	}
	if !t.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}
