// Package ledger owns the transaction store: the single source of truth for
// recorded transactions, persisted through the kv gateway after every
// mutation and queried through pure derivations from internal/core.
package ledger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bilancio/internal/core"
	"bilancio/internal/kv"

	"github.com/google/uuid"
)

// DefaultStorageKey is the gateway key holding the transaction array.
const DefaultStorageKey = "bilancio:transactions"

// EventPublisher receives mutation notifications. Publish failures never
// fail the mutation; the store logs and moves on.
type EventPublisher interface {
	PublishCreated(ctx context.Context, t core.Transaction) error
	PublishDeleted(ctx context.Context, id string) error
	PublishCleared(ctx context.Context) error
}

// Store holds the ordered transaction list. Mutations go through Add,
// Remove and Clear only; every mutation writes the full encoded list to the
// gateway before returning. All operations run to completion synchronously;
// the mutex only serializes callers, it never reorders them.
type Store struct {
	mu      sync.Mutex
	gateway kv.Gateway
	key     string
	events  EventPublisher // optional
	txs     []core.Transaction
}

func NewStore(gateway kv.Gateway, key string, events EventPublisher) *Store {
	if key == "" {
		key = DefaultStorageKey
	}
	return &Store{gateway: gateway, key: key, events: events}
}

// Load reads the persisted transactions at startup. An absent key, an
// unreadable gateway or a corrupt blob all leave the store empty; load
// problems are logged, never propagated.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok, err := s.gateway.Get(ctx, s.key)
	if err != nil {
		slog.WarnContext(ctx, "Gateway unreadable on load, starting empty",
			"key", s.key, "error", err)
		s.txs = nil
		return
	}
	if !ok {
		s.txs = nil
		return
	}

	txs, dropped, err := decodeTransactions(value)
	if err != nil {
		slog.WarnContext(ctx, "Stored transactions corrupt, starting empty",
			"key", s.key, "error", err)
		s.txs = nil
		return
	}
	if dropped > 0 {
		slog.WarnContext(ctx, "Dropped invalid stored transactions",
			"key", s.key, "dropped", dropped)
	}
	s.txs = txs

	slog.InfoContext(ctx, "Loaded transactions", "key", s.key, "count", len(txs))
}

// Add validates and appends a new transaction, persists, then notifies.
// Validation failures reject the record before anything is stored. A
// persistence failure keeps the transaction in memory and returns a wrapped
// kv.ErrWrite so the caller can notify the user; there is no retry.
func (s *Store) Add(ctx context.Context, description string, amount core.Money, category core.Category, kind core.Kind) (core.Transaction, error) {
	t := core.Transaction{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      amount,
		Category:    category,
		Kind:        kind,
		Timestamp:   time.Now().UnixMilli(),
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}

	s.mu.Lock()
	s.txs = append(s.txs, t)
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.notifyCreated(ctx, t)

	slog.InfoContext(ctx, "Transaction recorded",
		"id", t.ID,
		"kind", t.Kind,
		"category", t.Category,
		"amount_cents", t.Amount.Cents)

	return t, err
}

// Remove deletes the transaction with the given id. Absence is a no-op, not
// an error; removed reports whether anything changed.
func (s *Store) Remove(ctx context.Context, id string) (removed bool, err error) {
	s.mu.Lock()
	for i, t := range s.txs {
		if t.ID == id {
			s.txs = append(s.txs[:i], s.txs[i+1:]...)
			removed = true
			break
		}
	}
	if removed {
		err = s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if removed {
		s.notifyDeleted(ctx, id)
		slog.InfoContext(ctx, "Transaction removed", "id", id)
	}
	return removed, err
}

// Clear empties the store and persists the empty list.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.txs = nil
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.notifyCleared(ctx)

	slog.InfoContext(ctx, "Transactions cleared")
	return err
}

// Transactions returns a copy of the current list in insertion order.
func (s *Store) Transactions() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.txs...)
}

// Len reports the current number of transactions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.txs)
}

// Summary recomputes the aggregate snapshot from the current transactions.
func (s *Store) Summary() core.Summary {
	return core.Summarize(s.Transactions())
}

// CategoryTotals recomputes per-category expense sums.
func (s *Store) CategoryTotals() map[core.Category]core.Money {
	return core.CategoryTotals(s.Transactions())
}

// Alerts evaluates the current totals against the given budget table.
func (s *Store) Alerts(budgets core.BudgetTable) []core.Alert {
	return core.EvaluateAlerts(s.CategoryTotals(), budgets)
}

// Advice generates the advisory for the current transactions.
func (s *Store) Advice(budgets core.BudgetTable) core.Advice {
	return core.Advise(s.Transactions(), budgets)
}

func (s *Store) persistLocked(ctx context.Context) error {
	value, err := encodeTransactions(s.txs)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to encode transactions", "error", err)
		return kv.WriteError(err)
	}
	if err := s.gateway.Set(ctx, s.key, value); err != nil {
		slog.ErrorContext(ctx, "Failed to persist transactions",
			"key", s.key, "count", len(s.txs), "error", err)
		return kv.WriteError(err)
	}
	return nil
}

func (s *Store) notifyCreated(ctx context.Context, t core.Transaction) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishCreated(ctx, t); err != nil {
		slog.WarnContext(ctx, "Failed to publish created event", "id", t.ID, "error", err)
	}
}

func (s *Store) notifyDeleted(ctx context.Context, id string) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishDeleted(ctx, id); err != nil {
		slog.WarnContext(ctx, "Failed to publish deleted event", "id", id, "error", err)
	}
}

func (s *Store) notifyCleared(ctx context.Context) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishCleared(ctx); err != nil {
		slog.WarnContext(ctx, "Failed to publish cleared event", "error", err)
	}
}
