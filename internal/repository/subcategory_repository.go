package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/finance-api/internal/domain"
)

// SubcategoryRepository defines persistence access for subcategories.
type SubcategoryRepository interface {
	Create(ctx context.Context, subcategory *domain.Subcategory) error
	Update(ctx context.Context, subcategory *domain.Subcategory) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Subcategory, error)
	ListByOwner(ctx context.Context, userID string, categoryID *string, limit, offset int) ([]domain.Subcategory, error)
	CountByOwner(ctx context.Context, userID string, categoryID *string) (int64, error)
	ListByCategory(ctx context.Context, categoryID string) ([]domain.Subcategory, error)
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
}

type subcategoryRepository struct {
	pool *pgxpool.Pool
}

// NewSubcategoryRepository returns a Postgres-backed implementation.
func NewSubcategoryRepository(pool *pgxpool.Pool) SubcategoryRepository {
	return &subcategoryRepository{pool: pool}
}

func (r *subcategoryRepository) Create(ctx context.Context, subcategory *domain.Subcategory) error {
	const query = `
        INSERT INTO subcategories (user_id, category_id, name)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		subcategory.UserID,
		subcategory.CategoryID,
		subcategory.Name,
	).Scan(&subcategory.ID, &subcategory.CreatedAt, &subcategory.UpdatedAt)
}

func (r *subcategoryRepository) Update(ctx context.Context, subcategory *domain.Subcategory) error {
	const query = `
        UPDATE subcategories SET category_id=$1, name=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query,
		subcategory.CategoryID,
		subcategory.Name,
		subcategory.ID,
	).Scan(&subcategory.UpdatedAt)
}

func (r *subcategoryRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM subcategories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *subcategoryRepository) GetByID(ctx context.Context, id string) (*domain.Subcategory, error) {
	const query = `
        SELECT id, user_id, category_id, name, created_at, updated_at
        FROM subcategories WHERE id=$1`

	var subcategory domain.Subcategory
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&subcategory.ID,
		&subcategory.UserID,
		&subcategory.CategoryID,
		&subcategory.Name,
		&subcategory.CreatedAt,
		&subcategory.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &subcategory, nil
}

func (r *subcategoryRepository) ListByOwner(ctx context.Context, userID string, categoryID *string, limit, offset int) ([]domain.Subcategory, error) {
	const query = `
        SELECT id, user_id, category_id, name, created_at, updated_at
        FROM subcategories
        WHERE user_id=$1 AND ($2::uuid IS NULL OR category_id=$2)
        ORDER BY created_at
        LIMIT $3 OFFSET $4`

	rows, err := r.pool.Query(ctx, query, userID, categoryID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSubcategories(rows)
}

func (r *subcategoryRepository) CountByOwner(ctx context.Context, userID string, categoryID *string) (int64, error) {
	const query = `
        SELECT COUNT(*) FROM subcategories
        WHERE user_id=$1 AND ($2::uuid IS NULL OR category_id=$2)`

	var count int64
	err := r.pool.QueryRow(ctx, query, userID, categoryID).Scan(&count)
	return count, err
}

func (r *subcategoryRepository) ListByCategory(ctx context.Context, categoryID string) ([]domain.Subcategory, error) {
	const query = `
        SELECT id, user_id, category_id, name, created_at, updated_at
        FROM subcategories WHERE category_id=$1
        ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSubcategories(rows)
}

func (r *subcategoryRepository) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM subcategories WHERE category_id=$1`, categoryID).Scan(&count)
	return count, err
}

func scanSubcategories(rows pgx.Rows) ([]domain.Subcategory, error) {
	subcategories := make([]domain.Subcategory, 0)
	for rows.Next() {
		var subcategory domain.Subcategory
		if err := rows.Scan(
			&subcategory.ID,
			&subcategory.UserID,
			&subcategory.CategoryID,
			&subcategory.Name,
			&subcategory.CreatedAt,
			&subcategory.UpdatedAt,
		); err != nil {
			return nil, err
		}
		subcategories = append(subcategories, subcategory)
	}
	return subcategories, rows.Err()
}
