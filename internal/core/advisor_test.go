package core

import (
	"strings"
	"testing"
)

func TestAdviseEmptyList(t *testing.T) {
	adv := Advise(nil, DefaultBudgets())
	if adv.Tier != TierEmpty {
		t.Fatalf("expected empty tier, got %q", adv.Tier)
	}
	if adv.Summary != emptyStateMessage {
		t.Fatalf("unexpected summary %q", adv.Summary)
	}
	if len(adv.Suggestions) != 0 {
		t.Fatalf("empty state must carry no suggestions, got %v", adv.Suggestions)
	}
}

func TestAdviseTiers(t *testing.T) {
	cases := []struct {
		name string
		txs  []Transaction
		want Tier
	}{
		{"negative rate", []Transaction{income(100), expense(Food, 150)}, TierOverBudget},
		{"excellent at 30", []Transaction{income(100), expense(Food, 70)}, TierExcellent},
		{"moderate at 10", []Transaction{income(100), expense(Food, 90)}, TierModerate},
		{"moderate below 30", []Transaction{income(100), expense(Food, 75)}, TierModerate},
		{"low below 10", []Transaction{income(100), expense(Food, 95)}, TierLow},
		{"low at zero", []Transaction{income(100), expense(Food, 100)}, TierLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			adv := Advise(tc.txs, DefaultBudgets())
			if adv.Tier != tc.want {
				t.Fatalf("got %q, want %q", adv.Tier, tc.want)
			}
			if adv.Summary == "" {
				t.Fatalf("summary must not be empty")
			}
			if len(adv.Suggestions) != 2 {
				t.Fatalf("expected exactly 2 suggestions, got %v", adv.Suggestions)
			}
		})
	}
}

func TestAdviseTopCategorySuggestion(t *testing.T) {
	txs := []Transaction{income(20000), expense(Food, 5000), expense(Transport, 100)}
	adv := Advise(txs, DefaultBudgets())
	if !strings.Contains(adv.Suggestions[0], string(Food)) {
		t.Fatalf("first suggestion should name the top category: %q", adv.Suggestions[0])
	}
}

func TestAdviseOverBudgetTakesPriority(t *testing.T) {
	// Food blows its default 15000 limit; rate is negative too.
	txs := []Transaction{expense(Food, 16000)}
	adv := Advise(txs, DefaultBudgets())
	found := false
	for _, s := range adv.Suggestions {
		if strings.Contains(s, "Over budget") && strings.Contains(s, string(Food)) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an over-budget suggestion naming food, got %v", adv.Suggestions)
	}
}

func TestAdviseSavingsTargetWhenRateLow(t *testing.T) {
	// Rate 5%, nothing over budget, income present: 20% target expected.
	txs := []Transaction{income(1000), expense(Food, 950)}
	adv := Advise(txs, DefaultBudgets())
	found := false
	for _, s := range adv.Suggestions {
		if strings.Contains(s, "20%") && strings.Contains(s, "200.00") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a 20%% savings target of 200.00, got %v", adv.Suggestions)
	}
}

func TestAdviseZeroIncome(t *testing.T) {
	// Zero income, under budget: no savings target, fallback fund instead.
	txs := []Transaction{expense(Food, 100)}
	adv := Advise(txs, DefaultBudgets())
	if adv.Tier != TierLow {
		t.Fatalf("zero income pins the rate at 0, expected low tier, got %q", adv.Tier)
	}
	if len(adv.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %v", adv.Suggestions)
	}
	if !strings.Contains(adv.Suggestions[1], "emergency fund") {
		t.Fatalf("expected emergency fund fallback, got %q", adv.Suggestions[1])
	}
	if !strings.Contains(adv.Suggestions[1], "300.00") {
		t.Fatalf("fund should be three times expenses (300.00), got %q", adv.Suggestions[1])
	}
}

func TestAdviseIncomeOnlyPadsToTwo(t *testing.T) {
	// No expenses: no top-category slot, both slots fall back.
	adv := Advise([]Transaction{income(500)}, DefaultBudgets())
	if len(adv.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %v", adv.Suggestions)
	}
	for _, s := range adv.Suggestions {
		if s == "" {
			t.Fatalf("suggestion slots must never be empty")
		}
	}
}

func TestAdviseNoLimitTableNeverOverBudget(t *testing.T) {
	txs := []Transaction{income(100), expense(Food, 1_000_0)}
	adv := Advise(txs, BudgetTable{})
	for _, s := range adv.Suggestions {
		if strings.Contains(s, "Over budget") {
			t.Fatalf("empty budget table must never yield over-budget advice: %q", s)
		}
	}
}
