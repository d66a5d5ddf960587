package readstore

import (
	"context"

	"pharmalink/internal/domain/user"
	"pharmalink/internal/infra"
	"pharmalink/internal/infra/db"
	"pharmalink/internal/pkg/pgconv"
	"pharmalink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

const findUserByEmailSQL = `
SELECT id, email, password_hash, role, name, is_active
FROM users
WHERE email = $1
`

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.CredentialRecord, error) {
	var (
		id   pgtype.UUID
		role string
		rec  queries.CredentialRecord
	)
	err := s.db.QueryRow(ctx, findUserByEmailSQL, email).
		Scan(&id, &rec.Email, &rec.PasswordHash, &role, &rec.Name, &rec.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	rec.ID = uuid.UUID(id.Bytes)
	rec.Role = user.Role(role)
	return &rec, nil
}

const findUserByIDSQL = `
SELECT id, email, role, name, is_active
FROM users
WHERE id = $1
`

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var (
		userID pgtype.UUID
		view   queries.AuthorizedUserView
	)
	err := s.db.QueryRow(ctx, findUserByIDSQL, pgconv.UUIDToPgtype(id)).
		Scan(&userID, &view.Email, &view.Role, &view.Name, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	view.ID = uuid.UUID(userID.Bytes)
	return &view, nil
}
