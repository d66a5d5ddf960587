package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoLines              = errors.New("order needs at least one line")
	ErrDuplicateLine        = errors.New("order lists the same medication twice")
	ErrNegativePrice        = errors.New("line price cannot be negative")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidTransition    = errors.New("order status transition out of sequence")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// Line is one medication in the order with its price snapshotted at
// creation time. The snapshot never changes afterwards.
type Line struct {
	MedicationID uuid.UUID
	Name         string
	Dosage       string
	Price        int64
}

// Order binds a requester to exactly one pharmacy for a subset of a
// request's lines. The total is the sum of the snapshotted line prices,
// computed once here and never recomputed.
type Order struct {
	id            uuid.UUID
	requestID     uuid.UUID
	requesterID   uuid.UUID
	pharmacyID    uuid.UUID
	lines         []Line
	status        Status
	paymentStatus PaymentStatus
	paymentMethod *PaymentMethod
	total         int64
	createdAt     time.Time
	paidAt        *time.Time
	preparedAt    *time.Time
	readyAt       *time.Time
	completedAt   *time.Time
}

func NewOrder(requestID, requesterID, pharmacyID uuid.UUID, lines []Line, now time.Time) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	seen := make(map[uuid.UUID]struct{}, len(lines))
	var total int64
	for _, l := range lines {
		if l.Price < 0 {
			return nil, ErrNegativePrice
		}
		if _, dup := seen[l.MedicationID]; dup {
			return nil, ErrDuplicateLine
		}
		seen[l.MedicationID] = struct{}{}
		total += l.Price
	}

	return &Order{
		id:            uuid.New(),
		requestID:     requestID,
		requesterID:   requesterID,
		pharmacyID:    pharmacyID,
		lines:         lines,
		status:        StatusPending,
		paymentStatus: PaymentPending,
		total:         total,
		createdAt:     now,
	}, nil
}

func ReconstructOrder(
	id, requestID, requesterID, pharmacyID uuid.UUID,
	lines []Line,
	status Status,
	paymentStatus PaymentStatus,
	paymentMethod *PaymentMethod,
	total int64,
	createdAt time.Time,
	paidAt, preparedAt, readyAt, completedAt *time.Time,
) *Order {
	return &Order{
		id:            id,
		requestID:     requestID,
		requesterID:   requesterID,
		pharmacyID:    pharmacyID,
		lines:         lines,
		status:        status,
		paymentStatus: paymentStatus,
		paymentMethod: paymentMethod,
		total:         total,
		createdAt:     createdAt,
		paidAt:        paidAt,
		preparedAt:    preparedAt,
		readyAt:       readyAt,
		completedAt:   completedAt,
	}
}

// MarkPaid captures the mocked payment. Calling it on an order that is
// already paid or later is a no-op: payment providers retry webhooks.
// The bool reports whether the transition was applied.
func (o *Order) MarkPaid(method PaymentMethod, now time.Time) (bool, error) {
	if !method.IsValid() {
		return false, ErrInvalidPaymentMethod
	}
	if !o.status.Before(StatusPaid) {
		return false, nil
	}
	o.status = StatusPaid
	o.paymentStatus = PaymentCompleted
	o.paymentMethod = &method
	o.paidAt = &now
	return true, nil
}

// AdvanceTo applies one forward step of the lifecycle. The order must be in
// exactly the preceding status, otherwise the state is left untouched.
func (o *Order) AdvanceTo(target Status, now time.Time) error {
	prev, ok := target.Prev()
	if !ok || target == StatusPaid {
		return ErrInvalidStatus
	}
	if o.status != prev {
		return ErrInvalidTransition
	}
	o.status = target
	switch target {
	case StatusPreparing:
		o.preparedAt = &now
	case StatusReady:
		o.readyAt = &now
	case StatusCompleted:
		o.completedAt = &now
	}
	return nil
}

func (o *Order) ID() uuid.UUID                  { return o.id }
func (o *Order) RequestID() uuid.UUID           { return o.requestID }
func (o *Order) RequesterID() uuid.UUID         { return o.requesterID }
func (o *Order) PharmacyID() uuid.UUID          { return o.pharmacyID }
func (o *Order) Lines() []Line                  { return o.lines }
func (o *Order) Status() Status                 { return o.status }
func (o *Order) PaymentStatus() PaymentStatus   { return o.paymentStatus }
func (o *Order) PaymentMethod() *PaymentMethod  { return o.paymentMethod }
func (o *Order) Total() int64                   { return o.total }
func (o *Order) CreatedAt() time.Time           { return o.createdAt }
func (o *Order) PaidAt() *time.Time             { return o.paidAt }
func (o *Order) PreparedAt() *time.Time         { return o.preparedAt }
func (o *Order) ReadyAt() *time.Time            { return o.readyAt }
func (o *Order) CompletedAt() *time.Time        { return o.completedAt }
