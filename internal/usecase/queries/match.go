package queries

import (
	"context"

	"github.com/google/uuid"
)

// MatchedRow is one raw availability hit: a requested line one confirmed
// pharmacy marked available, before the price fallback is applied.
type MatchedRow struct {
	PharmacyID    uuid.UUID
	MedicationID  uuid.UUID
	Name          string
	Dosage        string
	PharmacyPrice *int64
	CatalogPrice  int64
	Comment       *string
}

type MatchReadStore interface {
	FindMatchedRows(ctx context.Context, requestID uuid.UUID) ([]MatchedRow, error)
}

// MatchQueries computes the availability matrix the client picks from.
type MatchQueries interface {
	// MatchedLines returns, per confirmed pharmacy, the requested lines it
	// marked available, priced with the pharmacy's offer when present and
	// the catalog price otherwise.
	MatchedLines(ctx context.Context, requestID uuid.UUID) (map[uuid.UUID][]*MatchedLineView, error)
	// HasMultipleAvailableLines gates the "bundle more lines into this
	// order" prompt in the client UI.
	HasMultipleAvailableLines(ctx context.Context, requestID, pharmacyID uuid.UUID) (bool, error)
}

type matchQueriesImpl struct {
	readStore MatchReadStore
}

func NewMatchQueries(readStore MatchReadStore) MatchQueries {
	return &matchQueriesImpl{readStore: readStore}
}

func (q *matchQueriesImpl) MatchedLines(ctx context.Context, requestID uuid.UUID) (map[uuid.UUID][]*MatchedLineView, error) {
	rows, err := q.readStore.FindMatchedRows(ctx, requestID)
	if err != nil {
		return nil, err
	}

	matrix := make(map[uuid.UUID][]*MatchedLineView)
	for _, row := range rows {
		matrix[row.PharmacyID] = append(matrix[row.PharmacyID], toMatchedLineView(row))
	}
	return matrix, nil
}

func (q *matchQueriesImpl) HasMultipleAvailableLines(ctx context.Context, requestID, pharmacyID uuid.UUID) (bool, error) {
	rows, err := q.readStore.FindMatchedRows(ctx, requestID)
	if err != nil {
		return false, err
	}

	count := 0
	for _, row := range rows {
		if row.PharmacyID == pharmacyID {
			count++
			if count > 1 {
				return true, nil
			}
		}
	}
	return false, nil
}

func toMatchedLineView(row MatchedRow) *MatchedLineView {
	price := row.CatalogPrice
	if row.PharmacyPrice != nil {
		price = *row.PharmacyPrice
	}
	return &MatchedLineView{
		MedicationID:  row.MedicationID,
		Name:          row.Name,
		Dosage:        row.Dosage,
		Price:         price,
		PharmacyPrice: row.PharmacyPrice,
		CatalogPrice:  row.CatalogPrice,
		Comment:       row.Comment,
	}
}
