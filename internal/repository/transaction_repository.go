package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/finance-api/internal/domain"
)

// TransactionRepository exposes the read-only surface transactions currently
// need: dependent counts for delete vetoes and recent entries for summaries.
type TransactionRepository interface {
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
	CountBySubcategory(ctx context.Context, subcategoryID string) (int64, error)
	ListRecentByCategory(ctx context.Context, categoryID string, limit int) ([]domain.Transaction, error)
	ListRecentBySubcategory(ctx context.Context, subcategoryID string, limit int) ([]domain.Transaction, error)
}

type transactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository returns a Postgres-backed implementation.
func NewTransactionRepository(pool *pgxpool.Pool) TransactionRepository {
	return &transactionRepository{pool: pool}
}

func (r *transactionRepository) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE category_id=$1`, categoryID).Scan(&count)
	return count, err
}

func (r *transactionRepository) CountBySubcategory(ctx context.Context, subcategoryID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE subcategory_id=$1`, subcategoryID).Scan(&count)
	return count, err
}

func (r *transactionRepository) ListRecentByCategory(ctx context.Context, categoryID string, limit int) ([]domain.Transaction, error) {
	const query = `
        SELECT id, amount, date, description
        FROM transactions WHERE category_id=$1
        ORDER BY date DESC
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, categoryID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactionSummaries(rows)
}

func (r *transactionRepository) ListRecentBySubcategory(ctx context.Context, subcategoryID string, limit int) ([]domain.Transaction, error) {
	const query = `
        SELECT id, amount, date, description
        FROM transactions WHERE subcategory_id=$1
        ORDER BY date DESC
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, subcategoryID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactionSummaries(rows)
}

func scanTransactionSummaries(rows pgx.Rows) ([]domain.Transaction, error) {
	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.Amount, &tx.Date, &tx.Description); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}
