package shared

import (
	"context"

	"pharmalink/internal/infra/db"
)

// TxRunner abstracts transaction boundaries away from the command layer so
// usecases stay testable without a live pool. Repositories receive the
// db.DBTX handed to the closure.
type TxRunner interface {
	// Within runs fn inside a read-committed transaction.
	Within(ctx context.Context, fn func(tx db.DBTX) error) error
	// WithinRetry behaves like Within but retries serialization failures.
	WithinRetry(ctx context.Context, fn func(tx db.DBTX) error) error
	// DB exposes the pool for single-statement operations that need no
	// explicit transaction.
	DB() db.DBTX
}
