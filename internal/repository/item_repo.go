package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blue-star-api/internal/domain"
)

// ItemRepository define persistencia para items de inventario.
type ItemRepository interface {
	Create(ctx context.Context, name string, categoryID int64) (domain.Item, error)
	GetByID(ctx context.Context, id int64) (domain.Item, error)
	GetByName(ctx context.Context, name string) (domain.Item, error)
	Search(ctx context.Context, query string, categoryID int64, limit int) ([]domain.Item, error)
	Update(ctx context.Context, item domain.Item) error
	Delete(ctx context.Context, id int64) error
}

// PgItemRepository implementa ItemRepository usando pgxpool.
type PgItemRepository struct {
	pool *pgxpool.Pool
}

func NewPgItemRepository(pool *pgxpool.Pool) *PgItemRepository {
	return &PgItemRepository{pool: pool}
}

func (r *PgItemRepository) Create(ctx context.Context, name string, categoryID int64) (domain.Item, error) {
	const query = `
		INSERT INTO items (name, category_id)
		VALUES ($1, $2)
		RETURNING id, name, category_id, created_at
	`
	var it domain.Item
	err := r.pool.QueryRow(ctx, query, name, categoryID).Scan(&it.ID, &it.Name, &it.CategoryID, &it.CreatedAt)
	if err != nil {
		return domain.Item{}, translateUnique(err)
	}
	return it, nil
}

func (r *PgItemRepository) GetByID(ctx context.Context, id int64) (domain.Item, error) {
	const query = `SELECT id, name, category_id, created_at FROM items WHERE id = $1`
	return r.scanItem(r.pool.QueryRow(ctx, query, id))
}

func (r *PgItemRepository) GetByName(ctx context.Context, name string) (domain.Item, error) {
	const query = `SELECT id, name, category_id, created_at FROM items WHERE name = $1`
	return r.scanItem(r.pool.QueryRow(ctx, query, name))
}

// Search filtra por subcadena de nombre y opcionalmente por categoria
// (categoryID = 0 significa sin filtro).
func (r *PgItemRepository) Search(ctx context.Context, query string, categoryID int64, limit int) ([]domain.Item, error) {
	const sql = `
		SELECT id, name, category_id, created_at
		FROM items
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		  AND ($2 = 0 OR category_id = $2)
		ORDER BY name
		LIMIT $3
	`
	rows, err := r.pool.Query(ctx, sql, query, categoryID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.CategoryID, &it.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PgItemRepository) Update(ctx context.Context, item domain.Item) error {
	const query = `
		UPDATE items
		SET name = COALESCE(NULLIF($2, ''), name),
		    category_id = CASE WHEN $3 = 0 THEN category_id ELSE $3 END
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, item.ID, item.Name, item.CategoryID)
	if err != nil {
		return translateUnique(err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgItemRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM items WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgItemRepository) scanItem(row pgx.Row) (domain.Item, error) {
	var it domain.Item
	err := row.Scan(&it.ID, &it.Name, &it.CategoryID, &it.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Item{}, err
	}
	return it, err
}
