// Package sheets defines the export port the worker writes through.
package sheets

import "context"

// RowAppender appends a single row to the export target.
type RowAppender interface {
	AppendRow(ctx context.Context, row []any) error
}
