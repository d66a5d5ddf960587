//go:build unit

package testutil

import (
	"context"

	"pharmalink/internal/infra/db"
)

// StubTxRunner satisfies shared.TxRunner without a database. The closure
// receives a nil DBTX, which mocked repositories never touch.
type StubTxRunner struct{}

func (StubTxRunner) Within(_ context.Context, fn func(tx db.DBTX) error) error {
	return fn(nil)
}

func (StubTxRunner) WithinRetry(_ context.Context, fn func(tx db.DBTX) error) error {
	return fn(nil)
}

func (StubTxRunner) DB() db.DBTX { return nil }
