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

type CatalogRepository struct{}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

const selectMedicationSQL = `
SELECT id, pharmacy_id, name, dosage, price
FROM medications
WHERE id = $1
`

func (r *CatalogRepository) MedicationByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.MedicationSnapshot, error) {
	var (
		medID      pgtype.UUID
		pharmacyID pgtype.UUID
		snap       commands.MedicationSnapshot
	)
	err := dbtx.QueryRow(ctx, selectMedicationSQL, pgconv.UUIDToPgtype(id)).
		Scan(&medID, &pharmacyID, &snap.Name, &snap.Dosage, &snap.Price)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("medication not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find medication", err)
	}
	snap.ID = uuid.UUID(medID.Bytes)
	snap.PharmacyID = uuid.UUID(pharmacyID.Bytes)
	return &snap, nil
}
