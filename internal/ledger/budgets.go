package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"bilancio/internal/core"
	"bilancio/internal/kv"
)

// DefaultBudgetsKey is the gateway key holding the budget limit table. The
// persistence contract only mandates the transaction key; limits use a
// second key as the documented extension.
const DefaultBudgetsKey = "bilancio:budgets"

// Budgets holds the configured budget-limit table. It is not derived from
// transactions; it starts from core.DefaultBudgets and can be replaced at
// runtime.
type Budgets struct {
	mu      sync.Mutex
	gateway kv.Gateway
	key     string
	table   core.BudgetTable
}

func NewBudgets(gateway kv.Gateway, key string) *Budgets {
	if key == "" {
		key = DefaultBudgetsKey
	}
	return &Budgets{gateway: gateway, key: key, table: core.DefaultBudgets()}
}

// Load reads the persisted table. Absent or unreadable data leaves the
// default table in place; never fatal.
func (b *Budgets) Load(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	value, ok, err := b.gateway.Get(ctx, b.key)
	if err != nil {
		slog.WarnContext(ctx, "Gateway unreadable on budget load, keeping defaults",
			"key", b.key, "error", err)
		return
	}
	if !ok {
		return
	}

	var table core.BudgetTable
	if err := json.Unmarshal([]byte(value), &table); err != nil {
		slog.WarnContext(ctx, "Stored budgets corrupt, keeping defaults",
			"key", b.key, "error", err)
		return
	}
	for c, limit := range table {
		if !c.Valid() || limit.Cents <= 0 {
			slog.WarnContext(ctx, "Dropping invalid stored budget entry",
				"category", c, "limit_cents", limit.Cents)
			delete(table, c)
		}
	}
	b.table = table

	slog.InfoContext(ctx, "Loaded budget table", "key", b.key, "entries", len(table))
}

// Table returns a copy of the current budget table.
func (b *Budgets) Table() core.BudgetTable {
	b.mu.Lock()
	defer b.mu.Unlock()
	table := make(core.BudgetTable, len(b.table))
	for c, limit := range b.table {
		table[c] = limit
	}
	return table
}

// Replace swaps in a new table and persists it. Every entry must name a
// known category with a positive limit. A persistence failure keeps the new
// table in memory and returns a wrapped kv.ErrWrite, mirroring Store.
func (b *Budgets) Replace(ctx context.Context, table core.BudgetTable) error {
	for c, limit := range table {
		if !c.Valid() {
			return fmt.Errorf("%w: %s", core.ErrInvalidCategory, c)
		}
		if limit.Cents <= 0 {
			return fmt.Errorf("%w: limit for %s", core.ErrInvalidAmount, c)
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.table = table
	data, err := json.Marshal(table)
	if err != nil {
		return kv.WriteError(err)
	}
	if err := b.gateway.Set(ctx, b.key, string(data)); err != nil {
		slog.ErrorContext(ctx, "Failed to persist budget table",
			"key", b.key, "error", err)
		return kv.WriteError(err)
	}
	return nil
}
