package core

import "math"

// Summary is the aggregate snapshot derived from a transaction list. It is
// never stored; callers recompute it from the current transactions.
type Summary struct {
	Income      Money `json:"income"`
	Expense     Money `json:"expense"`
	Balance     Money `json:"balance"`
	SavingsRate int   `json:"savingsRate"`
}

// Summarize computes totals over the given transactions. SavingsRate is
// round(balance/income*100), half away from zero, and exactly 0 when income
// is zero so it is never NaN or infinite.
func Summarize(txs []Transaction) Summary {
	var income, expense int64
	for _, t := range txs {
		switch t.Kind {
		case Income:
			income += t.Amount.Cents
		case Expense:
			expense += t.Amount.Cents
		}
	}

	balance := income - expense
	rate := 0
	if income > 0 {
		rate = int(math.Round(float64(balance) / float64(income) * 100))
	}

	return Summary{
		Income:      Money{Cents: income},
		Expense:     Money{Cents: expense},
		Balance:     Money{Cents: balance},
		SavingsRate: rate,
	}
}

// CategoryTotals sums expense-kind amounts per category. Categories with no
// expense transactions are absent from the map, not present with zero.
func CategoryTotals(txs []Transaction) map[Category]Money {
	totals := make(map[Category]Money)
	for _, t := range txs {
		if t.Kind != Expense {
			continue
		}
		totals[t.Category] = Money{Cents: totals[t.Category].Cents + t.Amount.Cents}
	}
	return totals
}

// TopCategory returns the category with the highest expense total. Ties are
// broken by the Categories enumeration order; ok is false when there are no
// expense totals at all.
func TopCategory(totals map[Category]Money) (Category, bool) {
	var top Category
	var best int64
	found := false
	for _, c := range Categories {
		spent, ok := totals[c]
		if !ok {
			continue
		}
		if !found || spent.Cents > best {
			top = c
			best = spent.Cents
			found = true
		}
	}
	return top, found
}
