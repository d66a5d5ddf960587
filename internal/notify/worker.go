package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pharmalink/internal/infra/db"
	"pharmalink/internal/pkg/config"
	"pharmalink/internal/usecase/shared"

	"github.com/google/uuid"
)

// Job is one queued notification, claimed from the outbox.
type Job struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      Kind
	Title     string
	Message   string
	RelatedID *uuid.UUID
	Attempts  int32
}

// Sender delivers one notification to the external channel (push, SMS, ...).
type Sender interface {
	Send(ctx context.Context, job Job) error
}

type JobStore interface {
	ClaimPending(ctx context.Context, tx db.DBTX, limit int) ([]Job, error)
	MarkSent(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	MarkFailed(ctx context.Context, tx db.DBTX, id uuid.UUID, sendErr string, maxAttempts int) error
}

// Worker drains the notification outbox in the background. Delivery is
// fire-and-forget from the caller's point of view: a failed send is retried
// up to MaxAttempts and never affects the state change that enqueued it.
type Worker struct {
	store  JobStore
	sender Sender
	tx     shared.TxRunner
	cfg    config.NotifyConfig
	logger *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewWorker(store JobStore, sender Sender, tx shared.TxRunner, cfg config.NotifyConfig, logger *slog.Logger) *Worker {
	return &Worker{
		store:  store,
		sender: sender,
		tx:     tx,
		cfg:    cfg,
		logger: logger,
	}
}

func (w *Worker) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.wg.Add(1)
	go w.run(ctx)
}

func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := w.DrainOnce(ctx); err != nil {
				w.logger.Error("notification drain failed", slog.String("error", err.Error()))
			}
		}
	}
}

// DrainOnce claims and delivers one batch, returning how many jobs it
// processed. Claim and acknowledgement share one transaction so a crashed
// worker releases its claims and another picks them up.
func (w *Worker) DrainOnce(ctx context.Context) (int, error) {
	processed := 0
	err := w.tx.Within(ctx, func(tx db.DBTX) error {
		jobs, err := w.store.ClaimPending(ctx, tx, w.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			processed++
			if sendErr := w.sender.Send(ctx, job); sendErr != nil {
				w.logger.Warn("notification send failed",
					slog.String("job_id", job.ID.String()),
					slog.String("kind", string(job.Kind)),
					slog.Int("attempts", int(job.Attempts)+1),
					slog.String("error", sendErr.Error()),
				)
				if err := w.store.MarkFailed(ctx, tx, job.ID, sendErr.Error(), w.cfg.MaxAttempts); err != nil {
					return err
				}
				continue
			}
			if err := w.store.MarkSent(ctx, tx, job.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return processed, nil
}
