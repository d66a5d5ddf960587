package repository

import (
	"context"
	"time"

	"pharmalink/internal/domain/order"
	"pharmalink/internal/infra"
	"pharmalink/internal/infra/db"
	"pharmalink/internal/pkg/pgconv"
	"pharmalink/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

const insertOrderSQL = `
INSERT INTO orders (id, request_id, requester_id, pharmacy_id, status, payment_status, total_amount, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

const insertOrderLineSQL = `
INSERT INTO order_lines (order_id, medication_id, name, dosage, price, position)
VALUES ($1, $2, $3, $4, $5, $6)
`

// Create persists the order and its price-snapshotted lines. The unique
// index on (request_id, pharmacy_id) surfaces as KindDuplicateKey when the
// same client orders twice from the same pharmacy for one request.
func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, insertOrderSQL,
		pgconv.UUIDToPgtype(o.ID()),
		pgconv.UUIDToPgtype(o.RequestID()),
		pgconv.UUIDToPgtype(o.RequesterID()),
		pgconv.UUIDToPgtype(o.PharmacyID()),
		string(o.Status()),
		string(o.PaymentStatus()),
		o.Total(),
		pgconv.TimeToPgtype(o.CreatedAt()),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert order", err)
	}

	for i, line := range o.Lines() {
		_, err := tx.Exec(ctx, insertOrderLineSQL,
			pgconv.UUIDToPgtype(o.ID()),
			pgconv.UUIDToPgtype(line.MedicationID),
			line.Name,
			line.Dosage,
			line.Price,
			i,
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to insert order line", err)
		}
	}
	return o.ID(), nil
}

const selectOrderSnapshotSQL = `
SELECT id, request_id, requester_id, pharmacy_id, status, payment_status, total_amount
FROM orders
WHERE id = $1
`

func (r *OrderRepository) FindSnapshot(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.OrderSnapshot, error) {
	var (
		orderID       pgtype.UUID
		requestID     pgtype.UUID
		requesterID   pgtype.UUID
		pharmacyID    pgtype.UUID
		status        string
		paymentStatus string
		total         int64
	)
	err := dbtx.QueryRow(ctx, selectOrderSnapshotSQL, pgconv.UUIDToPgtype(id)).
		Scan(&orderID, &requestID, &requesterID, &pharmacyID, &status, &paymentStatus, &total)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	return &commands.OrderSnapshot{
		ID:            uuid.UUID(orderID.Bytes),
		RequestID:     uuid.UUID(requestID.Bytes),
		RequesterID:   uuid.UUID(requesterID.Bytes),
		PharmacyID:    uuid.UUID(pharmacyID.Bytes),
		Status:        order.Status(status),
		PaymentStatus: order.PaymentStatus(paymentStatus),
		Total:         total,
	}, nil
}

const markPaidSQL = `
UPDATE orders
SET status = 'paid',
    payment_status = 'completed',
    payment_method = $2,
    paid_at = $3
WHERE id = $1 AND status = 'pending'
`

// MarkPaid is the idempotency anchor for payment capture: the WHERE clause
// lets exactly one concurrent capture win, the rest see zero rows affected.
func (r *OrderRepository) MarkPaid(ctx context.Context, tx db.DBTX, id uuid.UUID, method order.PaymentMethod, paidAt time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, markPaidSQL,
		pgconv.UUIDToPgtype(id),
		string(method),
		pgconv.TimeToPgtype(paidAt),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark order paid", err)
	}
	return tag.RowsAffected() > 0, nil
}

const advanceOrderStatusSQL = `
UPDATE orders
SET status = $3,
    prepared_at  = CASE WHEN $3 = 'preparing' THEN $4 ELSE prepared_at END,
    ready_at     = CASE WHEN $3 = 'ready' THEN $4 ELSE ready_at END,
    completed_at = CASE WHEN $3 = 'completed' THEN $4 ELSE completed_at END
WHERE id = $1 AND status = $2
`

func (r *OrderRepository) AdvanceStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to order.Status, at time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, advanceOrderStatusSQL,
		pgconv.UUIDToPgtype(id),
		string(from),
		string(to),
		pgconv.TimeToPgtype(at),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to advance order status", err)
	}
	return tag.RowsAffected() > 0, nil
}
