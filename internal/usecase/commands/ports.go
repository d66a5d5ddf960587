package commands

import (
	"context"
	"time"

	"pharmalink/internal/domain/order"
	"pharmalink/internal/domain/request"
	"pharmalink/internal/infra/db"
	"pharmalink/internal/notify"

	"github.com/google/uuid"
)

// Write-side snapshots keep the command layer independent from the read models.
type RequestSnapshot struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	Status      request.Status
	OrderID     *uuid.UUID
	Lines       []request.Line
}

type OrderSnapshot struct {
	ID            uuid.UUID
	RequestID     uuid.UUID
	RequesterID   uuid.UUID
	PharmacyID    uuid.UUID
	Status        order.Status
	PaymentStatus order.PaymentStatus
	Total         int64
}

type MedicationSnapshot struct {
	ID         uuid.UUID
	PharmacyID uuid.UUID
	Name       string
	Dosage     string
	Price      int64
}

// MatchedLine is one line a pharmacy marked available, with the effective
// price: the pharmacy's offer when present, the catalog price otherwise.
type MatchedLine struct {
	MedicationID uuid.UUID
	Name         string
	Dosage       string
	Price        int64
	Comment      *string
}

type RequestRepository interface {
	Create(ctx context.Context, tx db.DBTX, req *request.Request) (uuid.UUID, error)
	FindSnapshot(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*RequestSnapshot, error)
	UpsertAvailability(ctx context.Context, tx db.DBTX, requestID, pharmacyID uuid.UUID, entries []request.AvailabilityEntry) error
	// ConfirmPharmacy adds the pharmacy to the confirmed set and moves the
	// request from pending to confirmed. Both are no-ops when already done.
	ConfirmPharmacy(ctx context.Context, tx db.DBTX, requestID, pharmacyID uuid.UUID) error
	AddRestockNote(ctx context.Context, tx db.DBTX, requestID uuid.UUID, note request.RestockNote) error
	SetOrderRef(ctx context.Context, tx db.DBTX, requestID, orderID uuid.UUID) error
	// AdvanceStatus moves the request status forward. A target at or behind
	// the current status is silently skipped, never regressed.
	AdvanceStatus(ctx context.Context, tx db.DBTX, requestID uuid.UUID, target request.Status) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error)
	FindSnapshot(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*OrderSnapshot, error)
	// MarkPaid applies pending→paid with the payment fields in one guarded
	// update. It reports false without error when the order already left
	// pending, which makes payment capture idempotent under races.
	MarkPaid(ctx context.Context, tx db.DBTX, id uuid.UUID, method order.PaymentMethod, paidAt time.Time) (bool, error)
	// AdvanceStatus applies from→to only when the order is currently in
	// exactly from, reporting whether the row changed.
	AdvanceStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to order.Status, at time.Time) (bool, error)
}

type CatalogReader interface {
	MedicationByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*MedicationSnapshot, error)
}

type MatchReader interface {
	AvailableLines(ctx context.Context, dbtx db.DBTX, requestID, pharmacyID uuid.UUID) ([]MatchedLine, error)
}

type PharmacyDirectory interface {
	ListPharmacyIDs(ctx context.Context, dbtx db.DBTX) ([]uuid.UUID, error)
	PharmacyName(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (string, error)
}

type NotificationRepository interface {
	Enqueue(ctx context.Context, tx db.DBTX, userID uuid.UUID, kind notify.Kind, title, message string, relatedID uuid.UUID) error
}
