package core

import (
	"fmt"
	"strings"
)

const (
	TierEmpty      Tier = "empty"
	TierOverBudget Tier = "overBudget"
	TierExcellent  Tier = "excellent"
	TierModerate   Tier = "moderate"
	TierLow        Tier = "low"
)

type (
	Tier string

	// Advice is the generated advisory: one summary sentence keyed by tier
	// and, except for the empty tier, exactly two suggestions.
	Advice struct {
		Tier        Tier     `json:"tier"`
		Summary     string   `json:"summary"`
		Suggestions []string `json:"suggestions"`
	}
)

const emptyStateMessage = "Nothing to analyze yet. Record a few transactions first."

// Tier summaries. The rate placeholder is the savings rate in percent.
const (
	summaryOverBudget = "You are spending more than you earn. Expenses currently exceed income."
	summaryExcellent  = "Excellent: you are saving %d%% of your income."
	summaryModerate   = "Good progress: you are saving %d%% of your income."
	summaryLow        = "Your savings rate is %d%%. There is room to trim spending."
)

const (
	suggestTopCategory   = "Your largest expense category is %s (%s spent). Review it for easy cuts."
	suggestOverBudget    = "Over budget in: %s. Bring these categories back under their limits."
	suggestSavingsTarget = "Aim to set aside 20%% of your income, about %s per period."
	suggestEmergencyFund = "Build an emergency fund of at least %s, three times your current expenses."
)

// Advise generates the advisory for the given transactions and budget table.
// The tier table is evaluated in priority order, first match wins:
// empty list, rate < 0, rate >= 30, rate >= 10, otherwise low. It never
// fails: empty lists, zero income and a limit-free table all produce a
// complete Advice.
func Advise(txs []Transaction, budgets BudgetTable) Advice {
	if len(txs) == 0 {
		return Advice{Tier: TierEmpty, Summary: emptyStateMessage, Suggestions: []string{}}
	}

	sum := Summarize(txs)
	totals := CategoryTotals(txs)

	var tier Tier
	var summary string
	switch {
	case sum.SavingsRate < 0:
		tier = TierOverBudget
		summary = summaryOverBudget
	case sum.SavingsRate >= 30:
		tier = TierExcellent
		summary = fmt.Sprintf(summaryExcellent, sum.SavingsRate)
	case sum.SavingsRate >= 10:
		tier = TierModerate
		summary = fmt.Sprintf(summaryModerate, sum.SavingsRate)
	default:
		tier = TierLow
		summary = fmt.Sprintf(summaryLow, sum.SavingsRate)
	}

	fallback := fmt.Sprintf(suggestEmergencyFund, Money{Cents: sum.Expense.Cents * 3})

	var suggestions []string
	if top, ok := TopCategory(totals); ok {
		suggestions = append(suggestions, fmt.Sprintf(suggestTopCategory, top, totals[top]))
	}
	if over := budgets.OverBudget(totals); len(over) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(suggestOverBudget, joinCategories(over)))
	} else if sum.SavingsRate < 20 && sum.Income.Cents > 0 {
		suggestions = append(suggestions, fmt.Sprintf(suggestSavingsTarget, Money{Cents: sum.Income.Cents / 5}))
	}
	// Exactly two suggestion slots; pad with the generic fallback.
	for len(suggestions) < 2 {
		suggestions = append(suggestions, fallback)
	}

	return Advice{Tier: tier, Summary: summary, Suggestions: suggestions[:2]}
}

func joinCategories(cats []Category) string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
