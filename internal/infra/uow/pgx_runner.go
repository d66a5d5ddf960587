package uow

import (
	"context"

	"pharmalink/internal/infra/db"
	"pharmalink/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultMaxRetries = 3

type PgxTxRunner struct {
	pool *pgxpool.Pool
}

func NewPgxTxRunner(pool *pgxpool.Pool) shared.TxRunner {
	return &PgxTxRunner{pool: pool}
}

func (r *PgxTxRunner) Within(ctx context.Context, fn func(tx db.DBTX) error) error {
	_, err := shared.RunInTx(ctx, r.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, fn(tx)
	})
	return err
}

func (r *PgxTxRunner) WithinRetry(ctx context.Context, fn func(tx db.DBTX) error) error {
	_, err := shared.RunInTxWithRetry(ctx, r.pool, defaultMaxRetries, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, fn(tx)
	})
	return err
}

func (r *PgxTxRunner) DB() db.DBTX {
	return r.pool
}
