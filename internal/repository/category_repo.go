package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blue-star-api/internal/domain"
)

// CategoryRepository define persistencia para categorias de inventario.
type CategoryRepository interface {
	Create(ctx context.Context, name string) (domain.Category, error)
	GetByID(ctx context.Context, id int64) (domain.Category, error)
	GetByName(ctx context.Context, name string) (domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Search(ctx context.Context, name string) ([]domain.Category, error)
	Update(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}

// PgCategoryRepository implementa CategoryRepository usando pgxpool.
type PgCategoryRepository struct {
	pool *pgxpool.Pool
}

func NewPgCategoryRepository(pool *pgxpool.Pool) *PgCategoryRepository {
	return &PgCategoryRepository{pool: pool}
}

func (r *PgCategoryRepository) Create(ctx context.Context, name string) (domain.Category, error) {
	const query = `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, name, created_at
	`
	var c domain.Category
	err := r.pool.QueryRow(ctx, query, name).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		return domain.Category{}, translateUnique(err)
	}
	return c, nil
}

func (r *PgCategoryRepository) GetByID(ctx context.Context, id int64) (domain.Category, error) {
	const query = `SELECT id, name, created_at FROM categories WHERE id = $1`
	return r.scanCategory(r.pool.QueryRow(ctx, query, id))
}

func (r *PgCategoryRepository) GetByName(ctx context.Context, name string) (domain.Category, error) {
	const query = `SELECT id, name, created_at FROM categories WHERE name = $1`
	return r.scanCategory(r.pool.QueryRow(ctx, query, name))
}

func (r *PgCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	const query = `SELECT id, name, created_at FROM categories ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCategories(rows)
}

func (r *PgCategoryRepository) Search(ctx context.Context, name string) ([]domain.Category, error) {
	const query = `
		SELECT id, name, created_at
		FROM categories
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCategories(rows)
}

func (r *PgCategoryRepository) Update(ctx context.Context, id int64, name string) error {
	const query = `UPDATE categories SET name = $2 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, name)
	if err != nil {
		return translateUnique(err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgCategoryRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM categories WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgCategoryRepository) scanCategory(row pgx.Row) (domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.Name, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Category{}, err
	}
	return c, err
}

func collectCategories(rows pgx.Rows) ([]domain.Category, error) {
	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
