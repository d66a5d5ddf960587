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

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(db db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

const findOrderSQL = `
SELECT id, request_id, requester_id, pharmacy_id, status, payment_status, payment_method,
       total_amount, created_at, paid_at, prepared_at, ready_at, completed_at
FROM orders
WHERE id = $1
`

const findOrderLinesSQL = `
SELECT medication_id, name, dosage, price
FROM order_lines
WHERE order_id = $1
ORDER BY position
`

func (s *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	var (
		orderID       pgtype.UUID
		requestID     pgtype.UUID
		requesterID   pgtype.UUID
		pharmacyID    pgtype.UUID
		paymentMethod pgtype.Text
		createdAt     pgtype.Timestamptz
		paidAt        pgtype.Timestamptz
		preparedAt    pgtype.Timestamptz
		readyAt       pgtype.Timestamptz
		completedAt   pgtype.Timestamptz
		view          queries.OrderView
	)
	err := s.db.QueryRow(ctx, findOrderSQL, pgconv.UUIDToPgtype(id)).Scan(
		&orderID, &requestID, &requesterID, &pharmacyID, &view.Status, &view.PaymentStatus,
		&paymentMethod, &view.TotalAmount, &createdAt, &paidAt, &preparedAt, &readyAt, &completedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	view.ID = uuid.UUID(orderID.Bytes)
	view.RequestID = uuid.UUID(requestID.Bytes)
	view.RequesterID = uuid.UUID(requesterID.Bytes)
	view.PharmacyID = uuid.UUID(pharmacyID.Bytes)
	view.PaymentMethod = pgconv.StringPtrFromPgtype(paymentMethod)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.PaidAt = pgconv.TimePtrFromPgtype(paidAt)
	view.PreparedAt = pgconv.TimePtrFromPgtype(preparedAt)
	view.ReadyAt = pgconv.TimePtrFromPgtype(readyAt)
	view.CompletedAt = pgconv.TimePtrFromPgtype(completedAt)

	rows, err := s.db.Query(ctx, findOrderLinesSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find order lines", err)
	}
	defer rows.Close()

	view.Lines = make([]queries.OrderLineView, 0)
	for rows.Next() {
		var (
			medicationID pgtype.UUID
			line         queries.OrderLineView
		)
		if err := rows.Scan(&medicationID, &line.Name, &line.Dosage, &line.Price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order line", err)
		}
		line.MedicationID = uuid.UUID(medicationID.Bytes)
		view.Lines = append(view.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order lines", err)
	}
	return &view, nil
}

const listOrdersByRequesterSQL = `
SELECT id, request_id, pharmacy_id, status, total_amount, created_at
FROM orders
WHERE requester_id = $1
ORDER BY created_at DESC
`

func (s *OrderReadStore) FindByRequesterID(ctx context.Context, requesterID uuid.UUID) ([]*queries.OrderListItem, error) {
	rows, err := s.db.Query(ctx, listOrdersByRequesterSQL, pgconv.UUIDToPgtype(requesterID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()
	return scanOrderListItems(rows)
}

const listOrdersByPharmacySQL = `
SELECT id, request_id, pharmacy_id, status, total_amount, created_at
FROM orders
WHERE pharmacy_id = $1
ORDER BY created_at DESC
`

func (s *OrderReadStore) FindByPharmacyID(ctx context.Context, pharmacyID uuid.UUID) ([]*queries.OrderListItem, error) {
	rows, err := s.db.Query(ctx, listOrdersByPharmacySQL, pgconv.UUIDToPgtype(pharmacyID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()
	return scanOrderListItems(rows)
}

func scanOrderListItems(rows pgx.Rows) ([]*queries.OrderListItem, error) {
	items := make([]*queries.OrderListItem, 0)
	for rows.Next() {
		var (
			id         pgtype.UUID
			requestID  pgtype.UUID
			pharmacyID pgtype.UUID
			createdAt  pgtype.Timestamptz
			item       queries.OrderListItem
		)
		if err := rows.Scan(&id, &requestID, &pharmacyID, &item.Status, &item.TotalAmount, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order list item", err)
		}
		item.ID = uuid.UUID(id.Bytes)
		item.RequestID = uuid.UUID(requestID.Bytes)
		item.PharmacyID = uuid.UUID(pharmacyID.Bytes)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order list", err)
	}
	return items, nil
}
