package repository

import (
	"context"

	"pharmalink/internal/infra"
	"pharmalink/internal/infra/db"
	"pharmalink/internal/pkg/pgconv"
	"pharmalink/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// MatchRepository resolves, inside the ordering transaction, which requested
// lines a pharmacy currently marks available. Reading it transactionally
// pins the price snapshot to the moment the order is created.
type MatchRepository struct{}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{}
}

const selectAvailableLinesSQL = `
SELECT rl.medication_id, rl.name, rl.dosage, a.price, m.price, a.comment
FROM availabilities a
JOIN request_lines rl ON rl.request_id = a.request_id AND rl.medication_id = a.medication_id
LEFT JOIN medications m ON m.id = a.medication_id
WHERE a.request_id = $1 AND a.pharmacy_id = $2 AND a.available
ORDER BY rl.position
`

func (r *MatchRepository) AvailableLines(ctx context.Context, dbtx db.DBTX, requestID, pharmacyID uuid.UUID) ([]commands.MatchedLine, error) {
	rows, err := dbtx.Query(ctx, selectAvailableLinesSQL,
		pgconv.UUIDToPgtype(requestID),
		pgconv.UUIDToPgtype(pharmacyID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find available lines", err)
	}
	defer rows.Close()

	var lines []commands.MatchedLine
	for rows.Next() {
		var (
			medicationID  pgtype.UUID
			pharmacyPrice pgtype.Int8
			catalogPrice  pgtype.Int8
			comment       pgtype.Text
			line          commands.MatchedLine
		)
		if err := rows.Scan(&medicationID, &line.Name, &line.Dosage, &pharmacyPrice, &catalogPrice, &comment); err != nil {
			return nil, infra.WrapRepoErr("failed to scan available line", err)
		}
		line.MedicationID = uuid.UUID(medicationID.Bytes)
		line.Comment = pgconv.StringPtrFromPgtype(comment)
		// Pharmacy offer wins, catalog price is the fallback.
		switch {
		case pharmacyPrice.Valid:
			line.Price = pharmacyPrice.Int64
		case catalogPrice.Valid:
			line.Price = catalogPrice.Int64
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate available lines", err)
	}
	return lines, nil
}
