package readstore

import (
	"context"

	"pharmalink/internal/infra"
	"pharmalink/internal/infra/db"
	"pharmalink/internal/pkg/pgconv"
	"pharmalink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type MatchReadStore struct {
	db db.DBTX
}

func NewMatchReadStore(db db.DBTX) *MatchReadStore {
	return &MatchReadStore{db: db}
}

const findMatchedRowsSQL = `
SELECT a.pharmacy_id, rl.medication_id, rl.name, rl.dosage, a.price, COALESCE(m.price, 0), a.comment
FROM availabilities a
JOIN request_confirmations rc ON rc.request_id = a.request_id AND rc.pharmacy_id = a.pharmacy_id
JOIN request_lines rl ON rl.request_id = a.request_id AND rl.medication_id = a.medication_id
LEFT JOIN medications m ON m.id = a.medication_id
WHERE a.request_id = $1 AND a.available
ORDER BY a.pharmacy_id, rl.position
`

// FindMatchedRows builds the raw availability matrix for one request,
// restricted to pharmacies that actually confirmed.
func (s *MatchReadStore) FindMatchedRows(ctx context.Context, requestID uuid.UUID) ([]queries.MatchedRow, error) {
	rows, err := s.db.Query(ctx, findMatchedRowsSQL, pgconv.UUIDToPgtype(requestID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find matched rows", err)
	}
	defer rows.Close()

	matched := make([]queries.MatchedRow, 0)
	for rows.Next() {
		var (
			pharmacyID    pgtype.UUID
			medicationID  pgtype.UUID
			pharmacyPrice pgtype.Int8
			comment       pgtype.Text
			row           queries.MatchedRow
		)
		if err := rows.Scan(&pharmacyID, &medicationID, &row.Name, &row.Dosage, &pharmacyPrice, &row.CatalogPrice, &comment); err != nil {
			return nil, infra.WrapRepoErr("failed to scan matched row", err)
		}
		row.PharmacyID = uuid.UUID(pharmacyID.Bytes)
		row.MedicationID = uuid.UUID(medicationID.Bytes)
		row.PharmacyPrice = pgconv.Int64PtrFromPgtype(pharmacyPrice)
		row.Comment = pgconv.StringPtrFromPgtype(comment)
		matched = append(matched, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate matched rows", err)
	}
	return matched, nil
}
