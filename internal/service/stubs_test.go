package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/finance-api/internal/domain"
)

// In-memory repository stand-ins for service tests. They mimic the store's
// behavior closely enough for the flows under test: row-not-found is
// pgx.ErrNoRows, ids are assigned on insert.

type stubUserRepo struct {
	users     map[string]*domain.User
	seq       int
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type stubAccountRepo struct {
	accounts map[string]*domain.Account
	seq      int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) error {
	r.seq++
	account.ID = fmt.Sprintf("account-%d", r.seq)
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	stored := *account
	r.accounts[account.ID] = &stored
	return nil
}

func (r *stubAccountRepo) Update(_ context.Context, account *domain.Account) error {
	if _, ok := r.accounts[account.ID]; !ok {
		return pgx.ErrNoRows
	}
	account.UpdatedAt = time.Now()
	stored := *account
	r.accounts[account.ID] = &stored
	return nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.accounts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.accounts, id)
	return nil
}

func (r *stubAccountRepo) GetByID(_ context.Context, id string) (*domain.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *account
	return &copied, nil
}

func (r *stubAccountRepo) ListByOwner(_ context.Context, userID string, limit, offset int) ([]domain.Account, error) {
	out := make([]domain.Account, 0)
	for _, account := range r.accounts {
		if account.UserID == userID {
			out = append(out, *account)
		}
	}
	if offset >= len(out) {
		return []domain.Account{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubAccountRepo) CountByOwner(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, account := range r.accounts {
		if account.UserID == userID {
			count++
		}
	}
	return count, nil
}

type stubCategoryRepo struct {
	categories map[string]*domain.Category
	seq        int
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, category *domain.Category) error {
	r.seq++
	category.ID = fmt.Sprintf("category-%d", r.seq)
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	stored := *category
	r.categories[category.ID] = &stored
	return nil
}

func (r *stubCategoryRepo) Update(_ context.Context, category *domain.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return pgx.ErrNoRows
	}
	category.UpdatedAt = time.Now()
	stored := *category
	r.categories[category.ID] = &stored
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.categories, id)
	return nil
}

func (r *stubCategoryRepo) GetByID(_ context.Context, id string) (*domain.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *category
	return &copied, nil
}

func (r *stubCategoryRepo) ListByOwner(_ context.Context, userID string, limit, offset int) ([]domain.Category, error) {
	out := make([]domain.Category, 0)
	for _, category := range r.categories {
		if category.UserID == userID {
			out = append(out, *category)
		}
	}
	if offset >= len(out) {
		return []domain.Category{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubCategoryRepo) CountByOwner(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, category := range r.categories {
		if category.UserID == userID {
			count++
		}
	}
	return count, nil
}

type stubSubcategoryRepo struct {
	subcategories map[string]*domain.Subcategory
	seq           int
}

func newStubSubcategoryRepo() *stubSubcategoryRepo {
	return &stubSubcategoryRepo{subcategories: make(map[string]*domain.Subcategory)}
}

func (r *stubSubcategoryRepo) Create(_ context.Context, subcategory *domain.Subcategory) error {
	r.seq++
	subcategory.ID = fmt.Sprintf("subcategory-%d", r.seq)
	subcategory.CreatedAt = time.Now()
	subcategory.UpdatedAt = subcategory.CreatedAt
	stored := *subcategory
	r.subcategories[subcategory.ID] = &stored
	return nil
}

func (r *stubSubcategoryRepo) Update(_ context.Context, subcategory *domain.Subcategory) error {
	if _, ok := r.subcategories[subcategory.ID]; !ok {
		return pgx.ErrNoRows
	}
	subcategory.UpdatedAt = time.Now()
	stored := *subcategory
	r.subcategories[subcategory.ID] = &stored
	return nil
}

func (r *stubSubcategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.subcategories[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.subcategories, id)
	return nil
}

func (r *stubSubcategoryRepo) GetByID(_ context.Context, id string) (*domain.Subcategory, error) {
	subcategory, ok := r.subcategories[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *subcategory
	return &copied, nil
}

func (r *stubSubcategoryRepo) ListByOwner(_ context.Context, userID string, categoryID *string, limit, offset int) ([]domain.Subcategory, error) {
	out := make([]domain.Subcategory, 0)
	for _, subcategory := range r.subcategories {
		if subcategory.UserID != userID {
			continue
		}
		if categoryID != nil && subcategory.CategoryID != *categoryID {
			continue
		}
		out = append(out, *subcategory)
	}
	if offset >= len(out) {
		return []domain.Subcategory{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubSubcategoryRepo) CountByOwner(_ context.Context, userID string, categoryID *string) (int64, error) {
	var count int64
	for _, subcategory := range r.subcategories {
		if subcategory.UserID != userID {
			continue
		}
		if categoryID != nil && subcategory.CategoryID != *categoryID {
			continue
		}
		count++
	}
	return count, nil
}

func (r *stubSubcategoryRepo) ListByCategory(_ context.Context, categoryID string) ([]domain.Subcategory, error) {
	out := make([]domain.Subcategory, 0)
	for _, subcategory := range r.subcategories {
		if subcategory.CategoryID == categoryID {
			out = append(out, *subcategory)
		}
	}
	return out, nil
}

func (r *stubSubcategoryRepo) CountByCategory(_ context.Context, categoryID string) (int64, error) {
	var count int64
	for _, subcategory := range r.subcategories {
		if subcategory.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

type stubTransactionRepo struct {
	transactions []domain.Transaction
}

func (r *stubTransactionRepo) CountByCategory(_ context.Context, categoryID string) (int64, error) {
	var count int64
	for _, tx := range r.transactions {
		if tx.CategoryID != nil && *tx.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *stubTransactionRepo) CountBySubcategory(_ context.Context, subcategoryID string) (int64, error) {
	var count int64
	for _, tx := range r.transactions {
		if tx.SubcategoryID != nil && *tx.SubcategoryID == subcategoryID {
			count++
		}
	}
	return count, nil
}

func (r *stubTransactionRepo) ListRecentByCategory(_ context.Context, categoryID string, limit int) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0)
	for _, tx := range r.transactions {
		if tx.CategoryID != nil && *tx.CategoryID == categoryID && len(out) < limit {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *stubTransactionRepo) ListRecentBySubcategory(_ context.Context, subcategoryID string, limit int) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0)
	for _, tx := range r.transactions {
		if tx.SubcategoryID != nil && *tx.SubcategoryID == subcategoryID && len(out) < limit {
			out = append(out, tx)
		}
	}
	return out, nil
}
