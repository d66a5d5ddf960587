//go:build unit

package queries_test

import (
	"context"
	"testing"

	"pharmalink/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMatchReadStore struct {
	rows []queries.MatchedRow
	err  error
}

func (f *fakeMatchReadStore) FindMatchedRows(_ context.Context, _ uuid.UUID) ([]queries.MatchedRow, error) {
	return f.rows, f.err
}

func int64Ptr(v int64) *int64 { return &v }

func TestMatchedLines(t *testing.T) {
	pharmacyA := uuid.New()
	pharmacyB := uuid.New()
	medX := uuid.New()
	medY := uuid.New()

	t.Run("groups rows per pharmacy and prefers the pharmacy price", func(t *testing.T) {
		store := &fakeMatchReadStore{rows: []queries.MatchedRow{
			{PharmacyID: pharmacyA, MedicationID: medX, Name: "Paracetamol", Dosage: "500mg", PharmacyPrice: int64Ptr(1200), CatalogPrice: 1500},
			{PharmacyID: pharmacyA, MedicationID: medY, Name: "Amoxicillin", Dosage: "250mg", CatalogPrice: 3200},
			{PharmacyID: pharmacyB, MedicationID: medX, Name: "Paracetamol", Dosage: "500mg", PharmacyPrice: int64Ptr(1000), CatalogPrice: 1500},
		}}
		q := queries.NewMatchQueries(store)

		matrix, err := q.MatchedLines(context.Background(), uuid.New())
		require.NoError(t, err)

		want := map[uuid.UUID][]*queries.MatchedLineView{
			pharmacyA: {
				{MedicationID: medX, Name: "Paracetamol", Dosage: "500mg", Price: 1200, PharmacyPrice: int64Ptr(1200), CatalogPrice: 1500},
				{MedicationID: medY, Name: "Amoxicillin", Dosage: "250mg", Price: 3200, CatalogPrice: 3200},
			},
			pharmacyB: {
				{MedicationID: medX, Name: "Paracetamol", Dosage: "500mg", Price: 1000, PharmacyPrice: int64Ptr(1000), CatalogPrice: 1500},
			},
		}
		if diff := cmp.Diff(want, matrix); diff != "" {
			t.Errorf("matrix mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no availability yields an empty matrix", func(t *testing.T) {
		q := queries.NewMatchQueries(&fakeMatchReadStore{})

		matrix, err := q.MatchedLines(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.Empty(t, matrix)
	})

	t.Run("read store failure is passed through", func(t *testing.T) {
		q := queries.NewMatchQueries(&fakeMatchReadStore{err: assert.AnError})

		_, err := q.MatchedLines(context.Background(), uuid.New())
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestHasMultipleAvailableLines(t *testing.T) {
	pharmacyA := uuid.New()
	pharmacyB := uuid.New()

	rows := []queries.MatchedRow{
		{PharmacyID: pharmacyA, MedicationID: uuid.New(), CatalogPrice: 100},
		{PharmacyID: pharmacyA, MedicationID: uuid.New(), CatalogPrice: 200},
		{PharmacyID: pharmacyB, MedicationID: uuid.New(), CatalogPrice: 300},
	}
	q := queries.NewMatchQueries(&fakeMatchReadStore{rows: rows})

	t.Run("two lines from the same pharmacy", func(t *testing.T) {
		got, err := q.HasMultipleAvailableLines(context.Background(), uuid.New(), pharmacyA)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("single line is not enough", func(t *testing.T) {
		got, err := q.HasMultipleAvailableLines(context.Background(), uuid.New(), pharmacyB)
		require.NoError(t, err)
		assert.False(t, got)
	})
}
