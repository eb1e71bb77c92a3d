package core

import "testing"

func TestEvaluateAlertsThresholds(t *testing.T) {
	budgets := BudgetTable{Food: {Cents: 100_00}}

	cases := []struct {
		name     string
		spent    int64 // cents
		percent  int
		severity Severity
		emitted  bool
	}{
		{"well under", 33_00, 0, "", false},
		{"just under threshold", 79_00, 0, "", false},
		{"rounds up to threshold", 79_50, 80, SeverityWarning, true},
		{"at threshold", 80_00, 80, SeverityWarning, true},
		{"upper warning", 99_00, 99, SeverityWarning, true},
		{"at limit", 100_00, 100, SeverityCritical, true},
		{"over limit", 107_00, 107, SeverityCritical, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			totals := map[Category]Money{Food: {Cents: tc.spent}}
			alerts := EvaluateAlerts(totals, budgets)
			if !tc.emitted {
				if len(alerts) != 0 {
					t.Fatalf("expected no alerts, got %v", alerts)
				}
				return
			}
			if len(alerts) != 1 {
				t.Fatalf("expected 1 alert, got %v", alerts)
			}
			a := alerts[0]
			if a.Category != Food || a.Percent != tc.percent || a.Severity != tc.severity {
				t.Fatalf("unexpected alert %+v", a)
			}
		})
	}
}

func TestEvaluateAlertsScenario(t *testing.T) {
	// 16000 spent on food against the default 15000 limit: 107% critical.
	totals := CategoryTotals([]Transaction{expense(Food, 16000)})
	alerts := EvaluateAlerts(totals, DefaultBudgets())
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %v", alerts)
	}
	a := alerts[0]
	if a.Percent != 107 || a.Severity != SeverityCritical {
		t.Fatalf("unexpected alert %+v", a)
	}

	over := DefaultBudgets().OverBudget(totals)
	if len(over) != 1 || over[0] != Food {
		t.Fatalf("expected food over budget, got %v", over)
	}
}

func TestEvaluateAlertsSkipsUnbudgetedCategories(t *testing.T) {
	totals := map[Category]Money{
		Salary:     {Cents: 1_000_000_00}, // no limit configured
		Investment: {Cents: 500_00},
	}
	if alerts := EvaluateAlerts(totals, DefaultBudgets()); len(alerts) != 0 {
		t.Fatalf("categories without limits must never alert, got %v", alerts)
	}
	if over := DefaultBudgets().OverBudget(totals); len(over) != 0 {
		t.Fatalf("categories without limits can never be over budget, got %v", over)
	}
}

func TestEvaluateAlertsDeterministicOrder(t *testing.T) {
	totals := map[Category]Money{
		Bills:     {Cents: 12_000_00},
		Food:      {Cents: 15_000_00},
		Transport: {Cents: 5_000_00},
	}
	alerts := EvaluateAlerts(totals, DefaultBudgets())
	want := []Category{Food, Transport, Bills}
	if len(alerts) != len(want) {
		t.Fatalf("expected %d alerts, got %v", len(want), alerts)
	}
	for i, c := range want {
		if alerts[i].Category != c {
			t.Fatalf("position %d: expected %s, got %s", i, c, alerts[i].Category)
		}
	}
}

func TestEvaluateAlertsEmptyTotals(t *testing.T) {
	if alerts := EvaluateAlerts(map[Category]Money{}, DefaultBudgets()); len(alerts) != 0 {
		t.Fatalf("expected no alerts, got %v", alerts)
	}
}
