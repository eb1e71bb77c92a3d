package ledger

import (
	"context"
	"errors"
	"testing"

	"bilancio/internal/core"
	"bilancio/internal/kv"
	"bilancio/internal/kv/memory"
)

type failingGateway struct {
	getErr error
	setErr error
	value  string
	has    bool
}

func (f *failingGateway) Get(context.Context, string) (string, bool, error) {
	return f.value, f.has, f.getErr
}
func (f *failingGateway) Set(context.Context, string, string) error { return f.setErr }
func (f *failingGateway) Close() error                              { return nil }

type recordingPublisher struct {
	created []string
	deleted []string
	cleared int
}

func (p *recordingPublisher) PublishCreated(_ context.Context, t core.Transaction) error {
	p.created = append(p.created, t.ID)
	return nil
}
func (p *recordingPublisher) PublishDeleted(_ context.Context, id string) error {
	p.deleted = append(p.deleted, id)
	return nil
}
func (p *recordingPublisher) PublishCleared(context.Context) error {
	p.cleared++
	return nil
}

func money(units int64) core.Money { return core.Money{Cents: units * 100} }

func TestAddPersistsAndAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	gw := memory.New()
	store := NewStore(gw, "", nil)

	t1, err := store.Add(ctx, "salary", money(20000), core.Salary, core.Income)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	t2, err := store.Add(ctx, "groceries", money(5000), core.Food, core.Expense)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if t1.ID == "" || t2.ID == "" || t1.ID == t2.ID {
		t.Fatalf("ids must be unique and non-empty: %q vs %q", t1.ID, t2.ID)
	}
	if t1.Timestamp == 0 {
		t.Fatalf("timestamp must be assigned")
	}

	// A fresh store over the same gateway sees both, in insertion order.
	reloaded := NewStore(gw, "", nil)
	reloaded.Load(ctx)
	txs := reloaded.Transactions()
	if len(txs) != 2 || txs[0].ID != t1.ID || txs[1].ID != t2.ID {
		t.Fatalf("round trip broke order or content: %+v", txs)
	}
	if txs[1].Amount.Cents != 5000_00 || txs[1].Category != core.Food {
		t.Fatalf("round trip corrupted fields: %+v", txs[1])
	}
}

func TestAddRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.New(), "", nil)

	cases := []struct {
		name   string
		desc   string
		amount core.Money
		want   error
	}{
		{"zero amount", "x", core.Money{Cents: 0}, core.ErrInvalidAmount},
		{"negative amount", "x", core.Money{Cents: -50_00}, core.ErrInvalidAmount},
		{"over ceiling", "x", core.Money{Cents: core.MaxAmountCents + 1}, core.ErrAmountTooLarge},
		{"empty description", "", money(1), core.ErrEmptyDescription},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.Add(ctx, tc.desc, tc.amount, core.Food, core.Expense)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if store.Len() != 0 {
		t.Fatalf("rejected input must never be stored, have %d", store.Len())
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	gw := memory.New()
	store := NewStore(gw, "", nil)

	tx, _ := store.Add(ctx, "coffee", money(3), core.Food, core.Expense)

	removed, err := store.Remove(ctx, "no-such-id")
	if err != nil || removed {
		t.Fatalf("absent id must be a no-op: removed=%v err=%v", removed, err)
	}
	if store.Len() != 1 {
		t.Fatalf("no-op remove changed the store")
	}

	removed, err = store.Remove(ctx, tx.ID)
	if err != nil || !removed {
		t.Fatalf("expected removal: removed=%v err=%v", removed, err)
	}

	reloaded := NewStore(gw, "", nil)
	reloaded.Load(ctx)
	if reloaded.Len() != 0 {
		t.Fatalf("removal must persist")
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	gw := memory.New()
	store := NewStore(gw, "", nil)
	store.Add(ctx, "a", money(1), core.Food, core.Expense)
	store.Add(ctx, "b", money(2), core.Bills, core.Expense)

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("clear left %d transactions", store.Len())
	}

	reloaded := NewStore(gw, "", nil)
	reloaded.Load(ctx)
	if reloaded.Len() != 0 {
		t.Fatalf("clear must persist the empty list")
	}
}

func TestLoadFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()

	t.Run("gateway error", func(t *testing.T) {
		store := NewStore(&failingGateway{getErr: errors.New("boom")}, "", nil)
		store.Load(ctx)
		if store.Len() != 0 {
			t.Fatalf("expected empty store")
		}
	})

	t.Run("corrupt blob", func(t *testing.T) {
		store := NewStore(&failingGateway{value: "{not json", has: true}, "", nil)
		store.Load(ctx)
		if store.Len() != 0 {
			t.Fatalf("expected empty store")
		}
	})

	t.Run("absent key", func(t *testing.T) {
		store := NewStore(memory.New(), "", nil)
		store.Load(ctx)
		if store.Len() != 0 {
			t.Fatalf("expected empty store")
		}
	})
}

func TestLoadDropsInvalidRows(t *testing.T) {
	ctx := context.Background()
	gw := memory.New()
	// One valid row, one with a zero amount, one with an unknown category.
	blob := `[
		{"id":"a","desc":"ok","amount":10,"category":"food","type":"expense","timestamp":1},
		{"id":"b","desc":"bad","amount":0,"category":"food","type":"expense","timestamp":2},
		{"id":"c","desc":"bad","amount":5,"category":"crypto","type":"expense","timestamp":3}
	]`
	gw.Set(ctx, DefaultStorageKey, blob)

	store := NewStore(gw, "", nil)
	store.Load(ctx)
	txs := store.Transactions()
	if len(txs) != 1 || txs[0].ID != "a" {
		t.Fatalf("expected only the valid row, got %+v", txs)
	}
}

func TestPersistenceFailureKeepsMemoryAuthoritative(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&failingGateway{setErr: errors.New("disk full")}, "", nil)

	tx, err := store.Add(ctx, "rent", money(800), core.Bills, core.Expense)
	if !errors.Is(err, kv.ErrWrite) {
		t.Fatalf("expected kv.ErrWrite, got %v", err)
	}
	if tx.ID == "" || store.Len() != 1 {
		t.Fatalf("transaction must survive in memory despite the write failure")
	}
}

func TestQueriesDeriveFromCurrentState(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.New(), "", nil)
	store.Add(ctx, "salary", money(20000), core.Salary, core.Income)
	store.Add(ctx, "groceries", money(5000), core.Food, core.Expense)

	sum := store.Summary()
	if sum.Balance.Cents != 15000_00 || sum.SavingsRate != 75 {
		t.Fatalf("unexpected summary %+v", sum)
	}
	totals := store.CategoryTotals()
	if totals[core.Food].Cents != 5000_00 {
		t.Fatalf("unexpected totals %v", totals)
	}
	// Food at 5000 of 15000: 33%, no alert.
	if alerts := store.Alerts(core.DefaultBudgets()); len(alerts) != 0 {
		t.Fatalf("expected no alerts, got %v", alerts)
	}
	if adv := store.Advice(core.DefaultBudgets()); adv.Tier != core.TierExcellent {
		t.Fatalf("expected excellent tier, got %q", adv.Tier)
	}
}

func TestMutationEvents(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	store := NewStore(memory.New(), "", pub)

	tx, _ := store.Add(ctx, "a", money(1), core.Food, core.Expense)
	store.Remove(ctx, tx.ID)
	store.Clear(ctx)

	if len(pub.created) != 1 || pub.created[0] != tx.ID {
		t.Fatalf("created events: %v", pub.created)
	}
	if len(pub.deleted) != 1 || pub.deleted[0] != tx.ID {
		t.Fatalf("deleted events: %v", pub.deleted)
	}
	if pub.cleared != 1 {
		t.Fatalf("cleared events: %d", pub.cleared)
	}
}
