package queries

import (
	"context"

	"pharmalink/internal/infra"
	"pharmalink/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRequestNotFound = errs.New("request not found")

type RequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestListItem, error)
	// ListForPharmacy returns the broadcast feed: open requests plus any
	// request this pharmacy already answered, newest first.
	ListForPharmacy(ctx context.Context, pharmacyID uuid.UUID) ([]*RequestListItem, error)
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindByRequesterID(ctx context.Context, requesterID uuid.UUID) ([]*RequestListItem, error)
	FindFeedForPharmacy(ctx context.Context, pharmacyID uuid.UUID) ([]*RequestListItem, error)
}

type requestQueriesImpl struct {
	readStore RequestReadStore
}

func NewRequestQueries(readStore RequestReadStore) RequestQueries {
	return &requestQueriesImpl{readStore: readStore}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *requestQueriesImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestListItem, error) {
	return q.readStore.FindByRequesterID(ctx, requesterID)
}

func (q *requestQueriesImpl) ListForPharmacy(ctx context.Context, pharmacyID uuid.UUID) ([]*RequestListItem, error) {
	return q.readStore.FindFeedForPharmacy(ctx, pharmacyID)
}
