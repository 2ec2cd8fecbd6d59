package http_test

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/finance-api/internal/domain"
)

// In-memory stores backing the end-to-end tests. Row-not-found surfaces as
// pgx.ErrNoRows so the services treat them exactly like the SQL repositories.

type memStores struct {
	users         *memUserStore
	accounts      *memAccountStore
	categories    *memCategoryStore
	subcategories *memSubcategoryStore
	transactions  *memTransactionStore
}

func newMemStores() *memStores {
	return &memStores{
		users:         &memUserStore{users: map[string]*domain.User{}},
		accounts:      &memAccountStore{accounts: map[string]*domain.Account{}},
		categories:    &memCategoryStore{categories: map[string]*domain.Category{}},
		subcategories: &memSubcategoryStore{subcategories: map[string]*domain.Subcategory{}},
		transactions:  &memTransactionStore{},
	}
}

type memUserStore struct {
	users map[string]*domain.User
	seq   int
}

func (s *memUserStore) Create(_ context.Context, user *domain.User) error {
	s.seq++
	user.ID = fmt.Sprintf("user-%d", s.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *memUserStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type memAccountStore struct {
	accounts map[string]*domain.Account
	seq      int
}

func (s *memAccountStore) Create(_ context.Context, account *domain.Account) error {
	s.seq++
	account.ID = fmt.Sprintf("account-%d", s.seq)
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	stored := *account
	s.accounts[account.ID] = &stored
	return nil
}

func (s *memAccountStore) Update(_ context.Context, account *domain.Account) error {
	if _, ok := s.accounts[account.ID]; !ok {
		return pgx.ErrNoRows
	}
	account.UpdatedAt = time.Now()
	stored := *account
	s.accounts[account.ID] = &stored
	return nil
}

func (s *memAccountStore) Delete(_ context.Context, id string) error {
	if _, ok := s.accounts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.accounts, id)
	return nil
}

func (s *memAccountStore) GetByID(_ context.Context, id string) (*domain.Account, error) {
	account, ok := s.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *account
	return &copied, nil
}

func (s *memAccountStore) ListByOwner(_ context.Context, userID string, limit, offset int) ([]domain.Account, error) {
	out := make([]domain.Account, 0)
	for _, account := range s.accounts {
		if account.UserID == userID {
			out = append(out, *account)
		}
	}
	return window(out, limit, offset), nil
}

func (s *memAccountStore) CountByOwner(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, account := range s.accounts {
		if account.UserID == userID {
			count++
		}
	}
	return count, nil
}

type memCategoryStore struct {
	categories map[string]*domain.Category
	seq        int
}

func (s *memCategoryStore) Create(_ context.Context, category *domain.Category) error {
	s.seq++
	category.ID = fmt.Sprintf("category-%d", s.seq)
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	stored := *category
	s.categories[category.ID] = &stored
	return nil
}

func (s *memCategoryStore) Update(_ context.Context, category *domain.Category) error {
	if _, ok := s.categories[category.ID]; !ok {
		return pgx.ErrNoRows
	}
	category.UpdatedAt = time.Now()
	stored := *category
	s.categories[category.ID] = &stored
	return nil
}

func (s *memCategoryStore) Delete(_ context.Context, id string) error {
	if _, ok := s.categories[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.categories, id)
	return nil
}

func (s *memCategoryStore) GetByID(_ context.Context, id string) (*domain.Category, error) {
	category, ok := s.categories[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *category
	return &copied, nil
}

func (s *memCategoryStore) ListByOwner(_ context.Context, userID string, limit, offset int) ([]domain.Category, error) {
	out := make([]domain.Category, 0)
	for _, category := range s.categories {
		if category.UserID == userID {
			out = append(out, *category)
		}
	}
	return window(out, limit, offset), nil
}

func (s *memCategoryStore) CountByOwner(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, category := range s.categories {
		if category.UserID == userID {
			count++
		}
	}
	return count, nil
}

type memSubcategoryStore struct {
	subcategories map[string]*domain.Subcategory
	seq           int
}

func (s *memSubcategoryStore) Create(_ context.Context, subcategory *domain.Subcategory) error {
	s.seq++
	subcategory.ID = fmt.Sprintf("subcategory-%d", s.seq)
	subcategory.CreatedAt = time.Now()
	subcategory.UpdatedAt = subcategory.CreatedAt
	stored := *subcategory
	s.subcategories[subcategory.ID] = &stored
	return nil
}

func (s *memSubcategoryStore) Update(_ context.Context, subcategory *domain.Subcategory) error {
	if _, ok := s.subcategories[subcategory.ID]; !ok {
		return pgx.ErrNoRows
	}
	subcategory.UpdatedAt = time.Now()
	stored := *subcategory
	s.subcategories[subcategory.ID] = &stored
	return nil
}

func (s *memSubcategoryStore) Delete(_ context.Context, id string) error {
	if _, ok := s.subcategories[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.subcategories, id)
	return nil
}

func (s *memSubcategoryStore) GetByID(_ context.Context, id string) (*domain.Subcategory, error) {
	subcategory, ok := s.subcategories[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *subcategory
	return &copied, nil
}

func (s *memSubcategoryStore) ListByOwner(_ context.Context, userID string, categoryID *string, limit, offset int) ([]domain.Subcategory, error) {
	out := make([]domain.Subcategory, 0)
	for _, subcategory := range s.subcategories {
		if subcategory.UserID != userID {
			continue
		}
		if categoryID != nil && subcategory.CategoryID != *categoryID {
			continue
		}
		out = append(out, *subcategory)
	}
	return window(out, limit, offset), nil
}

func (s *memSubcategoryStore) CountByOwner(_ context.Context, userID string, categoryID *string) (int64, error) {
	var count int64
	for _, subcategory := range s.subcategories {
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

func (s *memSubcategoryStore) ListByCategory(_ context.Context, categoryID string) ([]domain.Subcategory, error) {
	out := make([]domain.Subcategory, 0)
	for _, subcategory := range s.subcategories {
		if subcategory.CategoryID == categoryID {
			out = append(out, *subcategory)
		}
	}
	return out, nil
}

func (s *memSubcategoryStore) CountByCategory(_ context.Context, categoryID string) (int64, error) {
	var count int64
	for _, subcategory := range s.subcategories {
		if subcategory.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

type memTransactionStore struct {
	transactions []domain.Transaction
}

func (s *memTransactionStore) CountByCategory(_ context.Context, categoryID string) (int64, error) {
	var count int64
	for _, tx := range s.transactions {
		if tx.CategoryID != nil && *tx.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (s *memTransactionStore) CountBySubcategory(_ context.Context, subcategoryID string) (int64, error) {
	var count int64
	for _, tx := range s.transactions {
		if tx.SubcategoryID != nil && *tx.SubcategoryID == subcategoryID {
			count++
		}
	}
	return count, nil
}

func (s *memTransactionStore) ListRecentByCategory(_ context.Context, categoryID string, limit int) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.CategoryID != nil && *tx.CategoryID == categoryID && len(out) < limit {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (s *memTransactionStore) ListRecentBySubcategory(_ context.Context, subcategoryID string, limit int) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.SubcategoryID != nil && *tx.SubcategoryID == subcategoryID && len(out) < limit {
			out = append(out, tx)
		}
	}
	return out, nil
}

func window[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
