package ledger

import (
	"context"
	"errors"
	"testing"

	"bilancio/internal/core"
	"bilancio/internal/kv/memory"
)

func TestBudgetsDefaultsWhenAbsent(t *testing.T) {
	b := NewBudgets(memory.New(), "")
	b.Load(context.Background())
	table := b.Table()
	if table[core.Food].Cents != 15_000_00 {
		t.Fatalf("expected default food limit, got %v", table[core.Food])
	}
	if _, ok := table[core.Salary]; ok {
		t.Fatalf("income categories carry no default limit")
	}
}

func TestBudgetsReplaceAndReload(t *testing.T) {
	ctx := context.Background()
	gw := memory.New()
	b := NewBudgets(gw, "")

	table := core.BudgetTable{core.Food: {Cents: 200_00}, core.Transport: {Cents: 50_00}}
	if err := b.Replace(ctx, table); err != nil {
		t.Fatalf("replace: %v", err)
	}

	fresh := NewBudgets(gw, "")
	fresh.Load(ctx)
	got := fresh.Table()
	if len(got) != 2 || got[core.Food].Cents != 200_00 || got[core.Transport].Cents != 50_00 {
		t.Fatalf("reload mismatch: %v", got)
	}
}

func TestBudgetsReplaceValidation(t *testing.T) {
	ctx := context.Background()
	b := NewBudgets(memory.New(), "")

	err := b.Replace(ctx, core.BudgetTable{"crypto": {Cents: 100}})
	if !errors.Is(err, core.ErrInvalidCategory) {
		t.Fatalf("expected invalid category, got %v", err)
	}

	err = b.Replace(ctx, core.BudgetTable{core.Food: {Cents: 0}})
	if !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}

	// The default table must still be intact after rejected replacements.
	if b.Table()[core.Food].Cents != 15_000_00 {
		t.Fatalf("rejected replace mutated the table")
	}
}

func TestBudgetsCorruptBlobKeepsDefaults(t *testing.T) {
	ctx := context.Background()
	gw := memory.New()
	gw.Set(ctx, DefaultBudgetsKey, "][")

	b := NewBudgets(gw, "")
	b.Load(ctx)
	if b.Table()[core.Food].Cents != 15_000_00 {
		t.Fatalf("corrupt blob must leave defaults in place")
	}
}
