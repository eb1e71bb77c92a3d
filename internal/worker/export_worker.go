// Package worker turns ledger mutation events into export-sheet rows.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bilancio/internal/amqp"
	"bilancio/internal/sheets"
)

// ExportWorker appends created transactions to the export sheet. The export
// is an append-only audit log, so deletes and clears are acknowledged and
// skipped.
type ExportWorker struct {
	appender sheets.RowAppender
}

func NewExportWorker(appender sheets.RowAppender) *ExportWorker {
	return &ExportWorker{appender: appender}
}

// HandleEvent processes one transaction event. Returning an error requeues
// the delivery.
func (w *ExportWorker) HandleEvent(event *amqp.TransactionEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch event.Action {
	case amqp.ActionCreated:
		return w.exportCreated(ctx, event)
	case amqp.ActionDeleted, amqp.ActionCleared:
		slog.InfoContext(ctx, "Skipping non-append event; export log is append-only",
			"action", event.Action, "id", event.ID)
		return nil
	default:
		// Unknown actions are acked so they never requeue forever.
		slog.WarnContext(ctx, "Ignoring unknown event action", "action", event.Action)
		return nil
	}
}

func (w *ExportWorker) exportCreated(ctx context.Context, event *amqp.TransactionEvent) error {
	if event.Record == nil {
		return fmt.Errorf("created event %s carries no record", event.ID)
	}
	r := event.Record

	row := []any{
		time.UnixMilli(r.Timestamp).UTC().Format("2006-01-02"),
		r.Description,
		r.Amount.Units(),
		string(r.Category),
		string(r.Kind),
		r.ID,
	}
	if err := w.appender.AppendRow(ctx, row); err != nil {
		return fmt.Errorf("export transaction %s: %w", r.ID, err)
	}

	slog.InfoContext(ctx, "Exported transaction",
		"id", r.ID,
		"category", r.Category,
		"amount_cents", r.Amount.Cents)

	return nil
}
