package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TokenBlacklistRepository persiste tokens invalidados por logout.
type TokenBlacklistRepository interface {
	// Add inserta el token. Es idempotente: insertar un token ya
	// presente no es un error, ambos llamadores observan exito.
	Add(ctx context.Context, token string) error
	Exists(ctx context.Context, token string) (bool, error)
}

// PgTokenBlacklistRepository implementa la blacklist sobre Postgres.
type PgTokenBlacklistRepository struct {
	pool *pgxpool.Pool
}

func NewPgTokenBlacklistRepository(pool *pgxpool.Pool) *PgTokenBlacklistRepository {
	return &PgTokenBlacklistRepository{pool: pool}
}

func (r *PgTokenBlacklistRepository) Add(ctx context.Context, token string) error {
	// ON CONFLICT absorbe la carrera de dos logouts concurrentes con el
	// mismo token: la fila queda exactamente una vez.
	const query = `
		INSERT INTO token_blacklist (token)
		VALUES ($1)
		ON CONFLICT (token) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query, token)
	return err
}

func (r *PgTokenBlacklistRepository) Exists(ctx context.Context, token string) (bool, error) {
	const query = `
		SELECT EXISTS (SELECT 1 FROM token_blacklist WHERE token = $1)
	`
	var exists bool
	err := r.pool.QueryRow(ctx, query, token).Scan(&exists)
	return exists, err
}
