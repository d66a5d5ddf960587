package repository

import (
	"context"

	"pharmalink/internal/domain/request"
	"pharmalink/internal/infra"
	"pharmalink/internal/infra/db"
	"pharmalink/internal/pkg/pgconv"
	"pharmalink/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestRepository struct{}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{}
}

const insertRequestSQL = `
INSERT INTO requests (id, requester_id, status, priority, latitude, longitude, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

const insertRequestLineSQL = `
INSERT INTO request_lines (request_id, medication_id, name, dosage, description, position)
VALUES ($1, $2, $3, $4, $5, $6)
`

func (r *RequestRepository) Create(ctx context.Context, tx db.DBTX, req *request.Request) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, insertRequestSQL,
		pgconv.UUIDToPgtype(req.ID()),
		pgconv.UUIDToPgtype(req.RequesterID()),
		string(req.Status()),
		string(req.Priority()),
		req.Location().Latitude,
		req.Location().Longitude,
		pgconv.TimeToPgtype(req.CreatedAt()),
		pgconv.TimeToPgtype(req.UpdatedAt()),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert request", err)
	}

	for i, line := range req.Lines() {
		_, err := tx.Exec(ctx, insertRequestLineSQL,
			pgconv.UUIDToPgtype(req.ID()),
			pgconv.UUIDToPgtype(line.MedicationID),
			line.Name,
			line.Dosage,
			line.Description,
			i,
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to insert request line", err)
		}
	}
	return req.ID(), nil
}

const selectRequestSnapshotSQL = `
SELECT id, requester_id, status, order_id
FROM requests
WHERE id = $1
`

const selectRequestLinesSQL = `
SELECT medication_id, name, dosage, description
FROM request_lines
WHERE request_id = $1
ORDER BY position
`

func (r *RequestRepository) FindSnapshot(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.RequestSnapshot, error) {
	var (
		reqID       pgtype.UUID
		requesterID pgtype.UUID
		status      string
		orderID     pgtype.UUID
	)
	err := dbtx.QueryRow(ctx, selectRequestSnapshotSQL, pgconv.UUIDToPgtype(id)).
		Scan(&reqID, &requesterID, &status, &orderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request", err)
	}

	rows, err := dbtx.Query(ctx, selectRequestLinesSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find request lines", err)
	}
	defer rows.Close()

	var lines []request.Line
	for rows.Next() {
		var (
			medicationID pgtype.UUID
			line         request.Line
		)
		if err := rows.Scan(&medicationID, &line.Name, &line.Dosage, &line.Description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request line", err)
		}
		line.MedicationID = uuid.UUID(medicationID.Bytes)
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request lines", err)
	}

	return &commands.RequestSnapshot{
		ID:          uuid.UUID(reqID.Bytes),
		RequesterID: uuid.UUID(requesterID.Bytes),
		Status:      request.Status(status),
		OrderID:     pgconv.UUIDPtrFromPgtype(orderID),
		Lines:       lines,
	}, nil
}

const upsertAvailabilitySQL = `
INSERT INTO availabilities (request_id, pharmacy_id, medication_id, available, price, comment, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
ON CONFLICT (request_id, pharmacy_id, medication_id)
DO UPDATE SET available = EXCLUDED.available,
              price     = EXCLUDED.price,
              comment   = EXCLUDED.comment,
              updated_at = now()
`

func (r *RequestRepository) UpsertAvailability(ctx context.Context, tx db.DBTX, requestID, pharmacyID uuid.UUID, entries []request.AvailabilityEntry) error {
	for _, e := range entries {
		_, err := tx.Exec(ctx, upsertAvailabilitySQL,
			pgconv.UUIDToPgtype(requestID),
			pgconv.UUIDToPgtype(pharmacyID),
			pgconv.UUIDToPgtype(e.MedicationID),
			e.Available,
			pgconv.Int64PtrToPgtype(e.Price),
			pgconv.StringPtrToPgtype(e.Comment),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to upsert availability", err)
		}
	}
	return nil
}

const insertConfirmationSQL = `
INSERT INTO request_confirmations (request_id, pharmacy_id, confirmed_at)
VALUES ($1, $2, now())
ON CONFLICT (request_id, pharmacy_id) DO NOTHING
`

func (r *RequestRepository) ConfirmPharmacy(ctx context.Context, tx db.DBTX, requestID, pharmacyID uuid.UUID) error {
	_, err := tx.Exec(ctx, insertConfirmationSQL,
		pgconv.UUIDToPgtype(requestID),
		pgconv.UUIDToPgtype(pharmacyID),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to confirm pharmacy", err)
	}
	return r.AdvanceStatus(ctx, tx, requestID, request.StatusConfirmed)
}

const insertRestockNoteSQL = `
INSERT INTO restock_notes (id, request_id, pharmacy_id, medication_id, restock_on, created_at)
VALUES ($1, $2, $3, $4, $5, now())
`

func (r *RequestRepository) AddRestockNote(ctx context.Context, tx db.DBTX, requestID uuid.UUID, note request.RestockNote) error {
	_, err := tx.Exec(ctx, insertRestockNoteSQL,
		pgconv.UUIDToPgtype(uuid.New()),
		pgconv.UUIDToPgtype(requestID),
		pgconv.UUIDToPgtype(note.PharmacyID),
		pgconv.UUIDToPgtype(note.MedicationID),
		pgconv.DateToPgtype(note.RestockOn),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert restock note", err)
	}
	return nil
}

const setOrderRefSQL = `
UPDATE requests SET order_id = $2, updated_at = now()
WHERE id = $1
`

func (r *RequestRepository) SetOrderRef(ctx context.Context, tx db.DBTX, requestID, orderID uuid.UUID) error {
	tag, err := tx.Exec(ctx, setOrderRefSQL,
		pgconv.UUIDToPgtype(requestID),
		pgconv.UUIDToPgtype(orderID),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set order reference", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	return nil
}

const advanceRequestStatusSQL = `
UPDATE requests SET status = $2, updated_at = now()
WHERE id = $1
  AND ` + `CASE status
	WHEN 'pending' THEN 1
	WHEN 'confirmed' THEN 2
	WHEN 'preparing' THEN 3
	WHEN 'ready' THEN 4
	WHEN 'completed' THEN 5
	ELSE 0
END < CASE $2
	WHEN 'pending' THEN 1
	WHEN 'confirmed' THEN 2
	WHEN 'preparing' THEN 3
	WHEN 'ready' THEN 4
	WHEN 'completed' THEN 5
	ELSE 0
END`

// AdvanceStatus moves the request status forward. The rank guard makes a
// same-or-earlier target affect zero rows, which is deliberately not an
// error: concurrent orders may race to advance the same request.
func (r *RequestRepository) AdvanceStatus(ctx context.Context, tx db.DBTX, requestID uuid.UUID, target request.Status) error {
	_, err := tx.Exec(ctx, advanceRequestStatusSQL,
		pgconv.UUIDToPgtype(requestID),
		string(target),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to advance request status", err)
	}
	return nil
}
