package repository

import (
	"context"

	"pharmalink/internal/infra"
	"pharmalink/internal/infra/db"
	"pharmalink/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const selectPharmacyIDsSQL = `
SELECT id FROM users
WHERE role = 'pharmacy' AND is_active
`

// ListPharmacyIDs returns the fan-out targets for a new request broadcast.
func (r *UserRepository) ListPharmacyIDs(ctx context.Context, dbtx db.DBTX) ([]uuid.UUID, error) {
	rows, err := dbtx.Query(ctx, selectPharmacyIDsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pharmacies", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id pgtype.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pharmacy id", err)
		}
		ids = append(ids, uuid.UUID(id.Bytes))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pharmacies", err)
	}
	return ids, nil
}

const selectPharmacyNameSQL = `
SELECT name FROM users
WHERE id = $1 AND role = 'pharmacy'
`

// PharmacyName resolves the display name used in notification payloads.
func (r *UserRepository) PharmacyName(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (string, error) {
	var name string
	err := dbtx.QueryRow(ctx, selectPharmacyNameSQL, pgconv.UUIDToPgtype(id)).Scan(&name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("pharmacy not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to find pharmacy", err)
	}
	return name, nil
}
