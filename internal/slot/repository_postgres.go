package slot

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PostgresRepository implements Repository using a single `slots` table
// (name TEXT PRIMARY KEY, value TEXT, "updatedAt" TEXT).
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Read(ctx context.Context, name string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE name = $1`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r *PostgresRepository) Write(ctx context.Context, name, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, `INSERT INTO slots (name, value, "updatedAt") VALUES ($1, $2, $3)
        ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, "updatedAt" = EXCLUDED."updatedAt"`, name, value, now)
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, name string) error {
	// deleting a slot that does not exist is fine
	_, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE name = $1`, name)
	return err
}
