package queries

import (
	"context"

	"pharmalink/internal/infra"
	"pharmalink/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrOrderAccess   = errs.New("order access denied")
)

type OrderQueries interface {
	// GetByID returns the order when the actor is one of its two parties.
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*OrderView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*OrderListItem, error)
	ListByPharmacy(ctx context.Context, pharmacyID uuid.UUID) ([]*OrderListItem, error)
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByRequesterID(ctx context.Context, requesterID uuid.UUID) ([]*OrderListItem, error)
	FindByPharmacyID(ctx context.Context, pharmacyID uuid.UUID) ([]*OrderListItem, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*OrderView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if view.RequesterID != actorID && view.PharmacyID != actorID {
		return nil, ErrOrderAccess
	}
	return view, nil
}

func (q *orderQueriesImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*OrderListItem, error) {
	return q.readStore.FindByRequesterID(ctx, requesterID)
}

func (q *orderQueriesImpl) ListByPharmacy(ctx context.Context, pharmacyID uuid.UUID) ([]*OrderListItem, error) {
	return q.readStore.FindByPharmacyID(ctx, pharmacyID)
}
