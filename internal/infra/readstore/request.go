package readstore

import (
	"context"

	"pharmalink/internal/infra"
	"pharmalink/internal/infra/db"
	"pharmalink/internal/pkg/pgconv"
	"pharmalink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(db db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: db}
}

const findRequestSQL = `
SELECT id, requester_id, status, priority, latitude, longitude, order_id, created_at, updated_at
FROM requests
WHERE id = $1
`

func (s *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	var (
		reqID       pgtype.UUID
		requesterID pgtype.UUID
		orderID     pgtype.UUID
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
		view        queries.RequestView
	)
	err := s.db.QueryRow(ctx, findRequestSQL, pgconv.UUIDToPgtype(id)).Scan(
		&reqID, &requesterID, &view.Status, &view.Priority,
		&view.Latitude, &view.Longitude, &orderID, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request", err)
	}
	view.ID = uuid.UUID(reqID.Bytes)
	view.RequesterID = uuid.UUID(requesterID.Bytes)
	view.OrderID = pgconv.UUIDPtrFromPgtype(orderID)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	if view.Lines, err = s.findLines(ctx, id); err != nil {
		return nil, err
	}
	if view.ConfirmedPharmacies, err = s.findConfirmations(ctx, id); err != nil {
		return nil, err
	}
	if view.Availabilities, err = s.findAvailabilities(ctx, id); err != nil {
		return nil, err
	}
	if view.RestockNotes, err = s.findRestockNotes(ctx, id); err != nil {
		return nil, err
	}
	if view.Orders, err = s.findOrderProgress(ctx, id); err != nil {
		return nil, err
	}
	return &view, nil
}

const findRequestLinesSQL = `
SELECT medication_id, name, dosage, description
FROM request_lines
WHERE request_id = $1
ORDER BY position
`

func (s *RequestReadStore) findLines(ctx context.Context, requestID uuid.UUID) ([]queries.RequestLineView, error) {
	rows, err := s.db.Query(ctx, findRequestLinesSQL, pgconv.UUIDToPgtype(requestID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find request lines", err)
	}
	defer rows.Close()

	lines := make([]queries.RequestLineView, 0)
	for rows.Next() {
		var (
			medicationID pgtype.UUID
			line         queries.RequestLineView
		)
		if err := rows.Scan(&medicationID, &line.Name, &line.Dosage, &line.Description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request line", err)
		}
		line.MedicationID = uuid.UUID(medicationID.Bytes)
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

const findConfirmationsSQL = `
SELECT pharmacy_id
FROM request_confirmations
WHERE request_id = $1
ORDER BY confirmed_at
`

func (s *RequestReadStore) findConfirmations(ctx context.Context, requestID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.db.Query(ctx, findConfirmationsSQL, pgconv.UUIDToPgtype(requestID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find confirmations", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id pgtype.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan confirmation", err)
		}
		ids = append(ids, uuid.UUID(id.Bytes))
	}
	return ids, rows.Err()
}

const findAvailabilitiesSQL = `
SELECT pharmacy_id, medication_id, available, price, comment, updated_at
FROM availabilities
WHERE request_id = $1
ORDER BY updated_at
`

func (s *RequestReadStore) findAvailabilities(ctx context.Context, requestID uuid.UUID) ([]queries.AvailabilityView, error) {
	rows, err := s.db.Query(ctx, findAvailabilitiesSQL, pgconv.UUIDToPgtype(requestID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find availabilities", err)
	}
	defer rows.Close()

	views := make([]queries.AvailabilityView, 0)
	for rows.Next() {
		var (
			pharmacyID   pgtype.UUID
			medicationID pgtype.UUID
			price        pgtype.Int8
			comment      pgtype.Text
			updatedAt    pgtype.Timestamptz
			v            queries.AvailabilityView
		)
		if err := rows.Scan(&pharmacyID, &medicationID, &v.Available, &price, &comment, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability", err)
		}
		v.PharmacyID = uuid.UUID(pharmacyID.Bytes)
		v.MedicationID = uuid.UUID(medicationID.Bytes)
		v.Price = pgconv.Int64PtrFromPgtype(price)
		v.Comment = pgconv.StringPtrFromPgtype(comment)
		v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		views = append(views, v)
	}
	return views, rows.Err()
}

const findRestockNotesSQL = `
SELECT pharmacy_id, medication_id, restock_on
FROM restock_notes
WHERE request_id = $1
ORDER BY created_at
`

func (s *RequestReadStore) findRestockNotes(ctx context.Context, requestID uuid.UUID) ([]queries.RestockNoteView, error) {
	rows, err := s.db.Query(ctx, findRestockNotesSQL, pgconv.UUIDToPgtype(requestID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find restock notes", err)
	}
	defer rows.Close()

	views := make([]queries.RestockNoteView, 0)
	for rows.Next() {
		var (
			pharmacyID   pgtype.UUID
			medicationID pgtype.UUID
			restockOn    pgtype.Date
			v            queries.RestockNoteView
		)
		if err := rows.Scan(&pharmacyID, &medicationID, &restockOn); err != nil {
			return nil, infra.WrapRepoErr("failed to scan restock note", err)
		}
		v.PharmacyID = uuid.UUID(pharmacyID.Bytes)
		v.MedicationID = uuid.UUID(medicationID.Bytes)
		v.RestockOn = pgconv.DateFromPgtype(restockOn)
		views = append(views, v)
	}
	return views, rows.Err()
}

const findOrderProgressSQL = `
SELECT id, pharmacy_id, status
FROM orders
WHERE request_id = $1
ORDER BY created_at
`

func (s *RequestReadStore) findOrderProgress(ctx context.Context, requestID uuid.UUID) ([]queries.OrderProgressView, error) {
	rows, err := s.db.Query(ctx, findOrderProgressSQL, pgconv.UUIDToPgtype(requestID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find order progress", err)
	}
	defer rows.Close()

	views := make([]queries.OrderProgressView, 0)
	for rows.Next() {
		var (
			orderID    pgtype.UUID
			pharmacyID pgtype.UUID
			v          queries.OrderProgressView
		)
		if err := rows.Scan(&orderID, &pharmacyID, &v.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order progress", err)
		}
		v.OrderID = uuid.UUID(orderID.Bytes)
		v.PharmacyID = uuid.UUID(pharmacyID.Bytes)
		views = append(views, v)
	}
	return views, rows.Err()
}

const findByRequesterSQL = `
SELECT r.id, r.status, r.priority, count(rl.medication_id), r.created_at
FROM requests r
LEFT JOIN request_lines rl ON rl.request_id = r.id
WHERE r.requester_id = $1
GROUP BY r.id
ORDER BY r.created_at DESC
`

func (s *RequestReadStore) FindByRequesterID(ctx context.Context, requesterID uuid.UUID) ([]*queries.RequestListItem, error) {
	rows, err := s.db.Query(ctx, findByRequesterSQL, pgconv.UUIDToPgtype(requesterID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests", err)
	}
	defer rows.Close()
	return scanRequestListItems(rows)
}

const findFeedSQL = `
SELECT r.id, r.status, r.priority, count(rl.medication_id), r.created_at
FROM requests r
LEFT JOIN request_lines rl ON rl.request_id = r.id
WHERE r.status IN ('pending', 'confirmed')
   OR EXISTS (
        SELECT 1 FROM availabilities a
        WHERE a.request_id = r.id AND a.pharmacy_id = $1
   )
GROUP BY r.id
ORDER BY r.created_at DESC
`

// FindFeedForPharmacy is the pharmacy's work queue: every open request plus
// the ones this pharmacy already answered, so it can track their progress.
func (s *RequestReadStore) FindFeedForPharmacy(ctx context.Context, pharmacyID uuid.UUID) ([]*queries.RequestListItem, error) {
	rows, err := s.db.Query(ctx, findFeedSQL, pgconv.UUIDToPgtype(pharmacyID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list request feed", err)
	}
	defer rows.Close()
	return scanRequestListItems(rows)
}

func scanRequestListItems(rows pgx.Rows) ([]*queries.RequestListItem, error) {
	items := make([]*queries.RequestListItem, 0)
	for rows.Next() {
		var (
			id        pgtype.UUID
			createdAt pgtype.Timestamptz
			item      queries.RequestListItem
		)
		if err := rows.Scan(&id, &item.Status, &item.Priority, &item.LineCount, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request list item", err)
		}
		item.ID = uuid.UUID(id.Bytes)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request list", err)
	}
	return items, nil
}
