package readstore

import (
	"context"

	"pharmalink/internal/infra"
	"pharmalink/internal/infra/db"
	"pharmalink/internal/pkg/pgconv"
	"pharmalink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(db db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: db}
}

const findNotificationsByUserSQL = `
SELECT id, user_id, kind, title, message, related_id, status, created_at
FROM notification_jobs
WHERE user_id = $1
ORDER BY created_at DESC
`

func (s *NotificationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.NotificationView, error) {
	rows, err := s.db.Query(ctx, findNotificationsByUserSQL, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	views := make([]*queries.NotificationView, 0)
	for rows.Next() {
		var (
			id        pgtype.UUID
			uid       pgtype.UUID
			relatedID pgtype.UUID
			createdAt pgtype.Timestamptz
			view      queries.NotificationView
		)
		if err := rows.Scan(&id, &uid, &view.Kind, &view.Title, &view.Message, &relatedID, &view.Status, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification", err)
		}
		view.ID = uuid.UUID(id.Bytes)
		view.UserID = uuid.UUID(uid.Bytes)
		view.RelatedID = pgconv.UUIDPtrFromPgtype(relatedID)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notifications", err)
	}
	return views, nil
}
