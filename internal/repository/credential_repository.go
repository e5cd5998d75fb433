package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CredentialRepository manages stored password hashes.
type CredentialRepository interface {
	SetPasswordHash(ctx context.Context, userID, hash string) error
}

type credentialRepository struct {
	pool *pgxpool.Pool
}

// NewCredentialRepository constructs repository.
func NewCredentialRepository(pool *pgxpool.Pool) CredentialRepository {
	return &credentialRepository{pool: pool}
}

func (r *credentialRepository) SetPasswordHash(ctx context.Context, userID, hash string) error {
	const query = `
        INSERT INTO auth_credentials (user_id, password_hash)
        VALUES ($1,$2)
        ON CONFLICT (user_id) DO UPDATE SET password_hash=EXCLUDED.password_hash, updated_at=NOW()`
	_, err := r.pool.Exec(ctx, query, userID, hash)
	return err
}
