package repository

import (
	"context"

	"pharmalink/internal/infra"
	"pharmalink/internal/infra/db"
	"pharmalink/internal/notify"
	"pharmalink/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// NotificationRepository is the outbox: commands enqueue jobs inside their
// transaction, the notify worker drains them afterwards. A crashed send never
// rolls back the state change that caused it.
type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

const enqueueNotificationSQL = `
INSERT INTO notification_jobs (id, user_id, kind, title, message, related_id, status, attempts, created_at)
VALUES ($1, $2, $3, $4, $5, $6, 'pending', 0, now())
`

func (r *NotificationRepository) Enqueue(ctx context.Context, tx db.DBTX, userID uuid.UUID, kind notify.Kind, title, message string, relatedID uuid.UUID) error {
	_, err := tx.Exec(ctx, enqueueNotificationSQL,
		pgconv.UUIDToPgtype(uuid.New()),
		pgconv.UUIDToPgtype(userID),
		string(kind),
		title,
		message,
		pgconv.UUIDToPgtype(relatedID),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification", err)
	}
	return nil
}

const claimPendingSQL = `
SELECT id, user_id, kind, title, message, related_id, attempts
FROM notification_jobs
WHERE status = 'pending'
ORDER BY created_at
LIMIT $1
FOR UPDATE SKIP LOCKED
`

// ClaimPending locks up to limit pending jobs for this worker pass. SKIP
// LOCKED keeps concurrent workers from delivering the same job twice.
func (r *NotificationRepository) ClaimPending(ctx context.Context, tx db.DBTX, limit int) ([]notify.Job, error) {
	rows, err := tx.Query(ctx, claimPendingSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim pending notifications", err)
	}
	defer rows.Close()

	var jobs []notify.Job
	for rows.Next() {
		var (
			id        pgtype.UUID
			userID    pgtype.UUID
			kind      string
			relatedID pgtype.UUID
			job       notify.Job
		)
		if err := rows.Scan(&id, &userID, &kind, &job.Title, &job.Message, &relatedID, &job.Attempts); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		job.ID = uuid.UUID(id.Bytes)
		job.UserID = uuid.UUID(userID.Bytes)
		job.Kind = notify.Kind(kind)
		job.RelatedID = pgconv.UUIDPtrFromPgtype(relatedID)
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification jobs", err)
	}
	return jobs, nil
}

const markSentSQL = `
UPDATE notification_jobs
SET status = 'sent', sent_at = now(), attempts = attempts + 1
WHERE id = $1
`

func (r *NotificationRepository) MarkSent(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	_, err := tx.Exec(ctx, markSentSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification sent", err)
	}
	return nil
}

const markFailedSQL = `
UPDATE notification_jobs
SET attempts = attempts + 1,
    last_error = $2,
    status = CASE WHEN attempts + 1 >= $3 THEN 'failed' ELSE 'pending' END
WHERE id = $1
`

// MarkFailed re-queues the job until maxAttempts is exhausted, then parks it
// as failed for operators to inspect.
func (r *NotificationRepository) MarkFailed(ctx context.Context, tx db.DBTX, id uuid.UUID, sendErr string, maxAttempts int) error {
	_, err := tx.Exec(ctx, markFailedSQL, pgconv.UUIDToPgtype(id), sendErr, maxAttempts)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification failed", err)
	}
	return nil
}
