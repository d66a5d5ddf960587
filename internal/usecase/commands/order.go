package commands

import (
	"context"
	"fmt"

	"pharmalink/internal/domain/order"
	"pharmalink/internal/domain/request"
	"pharmalink/internal/infra"
	"pharmalink/internal/infra/db"
	"pharmalink/internal/notify"
	"pharmalink/internal/pkg/clock"
	"pharmalink/internal/pkg/errs"
	"pharmalink/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateOrderParams struct {
	RequesterID   uuid.UUID
	PharmacyID    uuid.UUID
	RequestID     uuid.UUID
	MedicationIDs []uuid.UUID
}

type CreateOrderResult struct {
	OrderID     uuid.UUID
	TotalAmount int64
}

type MarkPaidParams struct {
	OrderID     uuid.UUID
	RequesterID uuid.UUID
	Method      order.PaymentMethod
}

type MarkPaidResult struct {
	// Replayed is true when the order was already paid and nothing changed.
	Replayed bool
}

type AdvanceOrderParams struct {
	OrderID    uuid.UUID
	PharmacyID uuid.UUID
	Target     order.Status
}

type OrderCommands interface {
	// CreateOrder turns a client's selection of matched lines into a binding
	// order for one pharmacy, snapshotting prices at this moment.
	CreateOrder(ctx context.Context, p CreateOrderParams) (*CreateOrderResult, error)
	// MarkPaid captures the (mocked) payment. Safe to call repeatedly:
	// providers retry webhooks.
	MarkPaid(ctx context.Context, p MarkPaidParams) (*MarkPaidResult, error)
	// Advance applies a pharmacy-side lifecycle step
	// (paid→preparing→ready→completed).
	Advance(ctx context.Context, p AdvanceOrderParams) error
}

type orderCommandsImpl struct {
	orderRepo   OrderRepository
	requestRepo RequestRepository
	matchReader MatchReader
	notifRepo   NotificationRepository
	tx          shared.TxRunner
	clock       clock.Clock
}

func NewOrderCommands(
	orderRepo OrderRepository,
	requestRepo RequestRepository,
	matchReader MatchReader,
	notifRepo NotificationRepository,
	tx shared.TxRunner,
	clock clock.Clock,
) OrderCommands {
	return &orderCommandsImpl{
		orderRepo:   orderRepo,
		requestRepo: requestRepo,
		matchReader: matchReader,
		notifRepo:   notifRepo,
		tx:          tx,
		clock:       clock,
	}
}

func (c *orderCommandsImpl) CreateOrder(ctx context.Context, p CreateOrderParams) (*CreateOrderResult, error) {
	if len(p.MedicationIDs) == 0 {
		return nil, errs.ErrEmptySelection
	}

	var result *CreateOrderResult
	err := c.tx.Within(ctx, func(tx db.DBTX) error {
		snap, err := c.requestRepo.FindSnapshot(ctx, tx, p.RequestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRequestNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if snap.RequesterID != p.RequesterID {
			return errs.ErrRequestNotFound
		}

		matched, err := c.matchReader.AvailableLines(ctx, tx, p.RequestID, p.PharmacyID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		matchedByID := make(map[uuid.UUID]MatchedLine, len(matched))
		for _, m := range matched {
			matchedByID[m.MedicationID] = m
		}

		lines := make([]order.Line, 0, len(p.MedicationIDs))
		for _, medicationID := range p.MedicationIDs {
			m, ok := matchedByID[medicationID]
			if !ok {
				return errs.ErrInvalidSelection
			}
			lines = append(lines, order.Line{
				MedicationID: m.MedicationID,
				Name:         m.Name,
				Dosage:       m.Dosage,
				Price:        m.Price,
			})
		}

		entity, err := order.NewOrder(p.RequestID, p.RequesterID, p.PharmacyID, lines, c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		orderID, err := c.orderRepo.Create(ctx, tx, entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrDuplicateOrder
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := c.requestRepo.SetOrderRef(ctx, tx, p.RequestID, orderID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = &CreateOrderResult{OrderID: orderID, TotalAmount: entity.Total()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *orderCommandsImpl) MarkPaid(ctx context.Context, p MarkPaidParams) (*MarkPaidResult, error) {
	if !p.Method.IsValid() {
		return nil, errs.Mark(order.ErrInvalidPaymentMethod, errs.ErrDomainValidation)
	}

	var result *MarkPaidResult
	err := c.tx.WithinRetry(ctx, func(tx db.DBTX) error {
		snap, err := c.orderRepo.FindSnapshot(ctx, tx, p.OrderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrOrderNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if snap.RequesterID != p.RequesterID {
			return errs.ErrOrderNotFound
		}

		if !snap.Status.Before(order.StatusPaid) {
			result = &MarkPaidResult{Replayed: true}
			return nil
		}

		applied, err := c.orderRepo.MarkPaid(ctx, tx, p.OrderID, p.Method, c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !applied {
			// Lost the race against another capture of the same payment.
			// The status only moves forward, so the order is paid already.
			result = &MarkPaidResult{Replayed: true}
			return nil
		}

		if err := c.requestRepo.AdvanceStatus(ctx, tx, snap.RequestID, request.StatusPreparing); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := c.notifRepo.Enqueue(ctx, tx, snap.RequesterID, notify.KindOrderPaid,
			"Payment confirmed", fmt.Sprintf("Your payment of %d FCFA was received", snap.Total), p.OrderID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := c.notifRepo.Enqueue(ctx, tx, snap.PharmacyID, notify.KindOrderPaid,
			"Order to prepare", "A paid order is waiting for preparation", p.OrderID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = &MarkPaidResult{Replayed: false}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *orderCommandsImpl) Advance(ctx context.Context, p AdvanceOrderParams) error {
	from, ok := p.Target.Prev()
	if !ok || p.Target == order.StatusPaid {
		return errs.ErrInvalidTransition
	}

	return c.tx.WithinRetry(ctx, func(tx db.DBTX) error {
		snap, err := c.orderRepo.FindSnapshot(ctx, tx, p.OrderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrOrderNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if snap.PharmacyID != p.PharmacyID {
			return errs.ErrOrderNotFound
		}

		applied, err := c.orderRepo.AdvanceStatus(ctx, tx, p.OrderID, from, p.Target, c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !applied {
			return errs.ErrInvalidTransition
		}

		switch p.Target {
		case order.StatusPreparing:
			err = c.notifRepo.Enqueue(ctx, tx, snap.RequesterID, notify.KindOrderPreparing,
				"Order in preparation", "The pharmacy started preparing your order", p.OrderID)
		case order.StatusReady:
			err = c.notifRepo.Enqueue(ctx, tx, snap.RequesterID, notify.KindOrderReady,
				"Order ready for pickup", "Your order is ready at the pharmacy", p.OrderID)
		case order.StatusCompleted:
			if advErr := c.requestRepo.AdvanceStatus(ctx, tx, snap.RequestID, request.StatusCompleted); advErr != nil {
				return errs.Mark(advErr, errs.ErrDatabaseOperationFailed)
			}
			// The completion notice doubles as the rating prompt; rating
			// collection itself lives in the external notification service.
			err = c.notifRepo.Enqueue(ctx, tx, snap.RequesterID, notify.KindOrderCompleted,
				"Order picked up", "Thanks for your pickup. You can now rate the pharmacy", p.OrderID)
		}
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
