//go:build e2e

package dbtest

import (
	"context"
	"time"

	"pharmalink/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultPassword is the plaintext used for every seeded account.
const DefaultPassword = "Secret123!"

// truncate order does not matter with CASCADE, users last because
// everything references it.
var truncateTables = []string{
	"notification_jobs",
	"order_lines",
	"orders",
	"restock_notes",
	"request_confirmations",
	"availabilities",
	"request_lines",
	"requests",
	"medications",
	"users",
}

// ResetDB empties every domain table between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, table := range truncateTables {
		if _, err := pool.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			return err
		}
	}
	return nil
}

// CreateUser inserts an active account with the default password and
// returns its id.
func CreateUser(pool *pgxpool.Pool, email, role, name string) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hash, err := password.HashPassword(DefaultPassword)
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, name, is_active)
		 VALUES ($1, $2, $3, $4, $5, true)`,
		id, email, hash, role, name)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// CreateMedication inserts one catalog entry owned by the pharmacy.
func CreateMedication(pool *pgxpool.Pool, pharmacyID uuid.UUID, name, dosage string, price int64) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id := uuid.New()
	_, err := pool.Exec(ctx,
		`INSERT INTO medications (id, pharmacy_id, name, dosage, price)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, pharmacyID, name, dosage, price)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// CountRows is a small assertion helper for outbox checks.
func CountRows(pool *pgxpool.Pool, table, where string, args ...any) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	err := pool.QueryRow(ctx, query, args...).Scan(&n)
	return n, err
}
