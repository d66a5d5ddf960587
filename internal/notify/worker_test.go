//go:build unit

package notify_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"pharmalink/internal/infra/db"
	"pharmalink/internal/notify"
	"pharmalink/internal/pkg/config"
	"pharmalink/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobStore struct {
	jobs   []notify.Job
	sent   []uuid.UUID
	failed []uuid.UUID
}

func (f *fakeJobStore) ClaimPending(_ context.Context, _ db.DBTX, limit int) ([]notify.Job, error) {
	if limit > len(f.jobs) {
		limit = len(f.jobs)
	}
	claimed := f.jobs[:limit]
	f.jobs = f.jobs[limit:]
	return claimed, nil
}

func (f *fakeJobStore) MarkSent(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakeJobStore) MarkFailed(_ context.Context, _ db.DBTX, id uuid.UUID, _ string, _ int) error {
	f.failed = append(f.failed, id)
	return nil
}

type fakeSender struct {
	failFor map[uuid.UUID]error
	sent    []notify.Job
}

func (f *fakeSender) Send(_ context.Context, job notify.Job) error {
	if err, ok := f.failFor[job.ID]; ok {
		return err
	}
	f.sent = append(f.sent, job)
	return nil
}

func newTestWorker(store notify.JobStore, sender notify.Sender) *notify.Worker {
	cfg := config.NotifyConfig{BatchSize: 10, MaxAttempts: 3}
	return notify.NewWorker(store, sender, testutil.StubTxRunner{}, cfg, slog.New(slog.DiscardHandler))
}

func job(kind notify.Kind) notify.Job {
	return notify.Job{ID: uuid.New(), UserID: uuid.New(), Kind: kind, Title: "t", Message: "m"}
}

func TestDrainOnce(t *testing.T) {
	t.Run("delivers every claimed job and acknowledges it", func(t *testing.T) {
		jobs := []notify.Job{job(notify.KindNewRequest), job(notify.KindOrderPaid)}
		store := &fakeJobStore{jobs: jobs}
		sender := &fakeSender{}
		w := newTestWorker(store, sender)

		processed, err := w.DrainOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, processed)
		assert.Len(t, sender.sent, 2)
		assert.ElementsMatch(t, []uuid.UUID{jobs[0].ID, jobs[1].ID}, store.sent)
		assert.Empty(t, store.failed)
	})

	t.Run("a failed send marks only that job and the batch continues", func(t *testing.T) {
		broken := job(notify.KindOrderReady)
		healthy := job(notify.KindOrderCompleted)
		store := &fakeJobStore{jobs: []notify.Job{broken, healthy}}
		sender := &fakeSender{failFor: map[uuid.UUID]error{broken.ID: errors.New("push gateway down")}}
		w := newTestWorker(store, sender)

		processed, err := w.DrainOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, processed)
		assert.Equal(t, []uuid.UUID{broken.ID}, store.failed)
		assert.Equal(t, []uuid.UUID{healthy.ID}, store.sent)
	})

	t.Run("empty outbox is a no-op", func(t *testing.T) {
		store := &fakeJobStore{}
		sender := &fakeSender{}
		w := newTestWorker(store, sender)

		processed, err := w.DrainOnce(context.Background())
		require.NoError(t, err)
		assert.Zero(t, processed)
		assert.Empty(t, sender.sent)
	})

	t.Run("batch size caps one drain", func(t *testing.T) {
		store := &fakeJobStore{}
		for range 15 {
			store.jobs = append(store.jobs, job(notify.KindNewRequest))
		}
		sender := &fakeSender{}
		w := newTestWorker(store, sender)

		processed, err := w.DrainOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 10, processed)
		assert.Len(t, store.jobs, 5)
	})
}
