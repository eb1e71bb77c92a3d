package core

import "math"

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// alertThresholdPercent is the usage percentage at which a category starts
// raising alerts; at or above 100 the alert becomes critical.
const alertThresholdPercent = 80

type (
	Severity string

	// BudgetTable maps categories to their spending limit. Categories absent
	// from the table are exempt from alerting.
	BudgetTable map[Category]Money

	// Alert reports a category approaching or exceeding its limit. Ephemeral,
	// recomputed per evaluation.
	Alert struct {
		Category Category `json:"category"`
		Spent    Money    `json:"spent"`
		Limit    Money    `json:"limit"`
		Percent  int      `json:"percent"`
		Severity Severity `json:"severity"`
	}
)

// DefaultBudgets returns the built-in limit table for expense categories.
// Pure income categories carry no entry and can never alert.
func DefaultBudgets() BudgetTable {
	return BudgetTable{
		Food:          {Cents: 15_000_00},
		Transport:     {Cents: 5_000_00},
		Shopping:      {Cents: 10_000_00},
		Entertainment: {Cents: 8_000_00},
		Bills:         {Cents: 12_000_00},
		Health:        {Cents: 6_000_00},
		Education:     {Cents: 7_000_00},
		Other:         {Cents: 5_000_00},
	}
}

// EvaluateAlerts compares per-category expense totals against the budget
// table. Output is in Categories enumeration order for determinism.
func EvaluateAlerts(totals map[Category]Money, budgets BudgetTable) []Alert {
	alerts := []Alert{}
	for _, c := range Categories {
		spent, ok := totals[c]
		if !ok {
			continue
		}
		limit, ok := budgets[c]
		if !ok || limit.Cents <= 0 {
			continue
		}
		percent := usagePercent(spent, limit)
		if percent < alertThresholdPercent {
			continue
		}
		severity := SeverityWarning
		if percent >= 100 {
			severity = SeverityCritical
		}
		alerts = append(alerts, Alert{
			Category: c,
			Spent:    spent,
			Limit:    limit,
			Percent:  percent,
			Severity: severity,
		})
	}
	return alerts
}

// OverBudget lists categories whose spend strictly exceeds their limit, in
// Categories enumeration order. Categories without a limit never appear.
func (b BudgetTable) OverBudget(totals map[Category]Money) []Category {
	var over []Category
	for _, c := range Categories {
		spent, ok := totals[c]
		if !ok {
			continue
		}
		limit, ok := b[c]
		if !ok || limit.Cents <= 0 {
			continue
		}
		if spent.Cents > limit.Cents {
			over = append(over, c)
		}
	}
	return over
}

func usagePercent(spent, limit Money) int {
	return int(math.Round(float64(spent.Cents) / float64(limit.Cents) * 100))
}
