package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/finance-api/internal/domain"
	"github.com/spec-kit/finance-api/internal/events"
	"github.com/spec-kit/finance-api/internal/repository"
	apperrors "github.com/spec-kit/finance-api/pkg/util"
)

// recentTransactionLimit caps the per-category activity preview on reads.
const recentTransactionLimit = 5

// CategoryCreateInput describes category creation payload.
type CategoryCreateInput struct {
	Name  string
	Type  domain.CategoryType
	Color *string
}

// CategoryUpdateInput describes a partial category update.
type CategoryUpdateInput struct {
	ID    string
	Name  *string
	Type  *domain.CategoryType
	Color *string
}

// CategoryView is a category with its subcategories and recent activity.
type CategoryView struct {
	Category           domain.Category
	Subcategories      []domain.Subcategory
	RecentTransactions []domain.Transaction
}

// CategoryService coordinates category CRUD for the owning user.
type CategoryService struct {
	categories    repository.CategoryRepository
	subcategories repository.SubcategoryRepository
	transactions  repository.TransactionRepository
	dispatcher    events.Dispatcher
}

// NewCategoryService constructs the service.
func NewCategoryService(
	categories repository.CategoryRepository,
	subcategories repository.SubcategoryRepository,
	transactions repository.TransactionRepository,
	dispatcher events.Dispatcher,
) *CategoryService {
	return &CategoryService{
		categories:    categories,
		subcategories: subcategories,
		transactions:  transactions,
		dispatcher:    dispatcher,
	}
}

// List returns the caller's categories, each with subcategories and up to
// five recent transactions.
func (s *CategoryService) List(ctx context.Context, userID string, page, pageSize int) ([]CategoryView, Pagination, error) {
	page, pageSize, limit, offset := normalizePage(page, pageSize)

	categories, err := s.categories.ListByOwner(ctx, userID, limit, offset)
	if err != nil {
		return nil, Pagination{}, err
	}

	views := make([]CategoryView, 0, len(categories))
	for _, category := range categories {
		subcategories, err := s.subcategories.ListByCategory(ctx, category.ID)
		if err != nil {
			return nil, Pagination{}, err
		}
		recent, err := s.transactions.ListRecentByCategory(ctx, category.ID, recentTransactionLimit)
		if err != nil {
			return nil, Pagination{}, err
		}
		views = append(views, CategoryView{
			Category:           category,
			Subcategories:      subcategories,
			RecentTransactions: recent,
		})
	}

	total, err := s.categories.CountByOwner(ctx, userID)
	if err != nil {
		return nil, Pagination{}, err
	}
	return views, newPagination(page, pageSize, total), nil
}

// Create adds a category owned by the caller.
func (s *CategoryService) Create(ctx context.Context, userID string, input CategoryCreateInput) (*domain.Category, error) {
	category := &domain.Category{
		UserID: userID,
		Name:   strings.TrimSpace(input.Name),
		Type:   input.Type,
		Color:  input.Color,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventCategoryCreated, userID, category.ID, category.Name)
	return category, nil
}

// Update applies a partial update after the ownership check.
func (s *CategoryService) Update(ctx context.Context, userID string, input CategoryUpdateInput) (*domain.Category, error) {
	fetched, err := s.categories.GetByID(ctx, input.ID)
	category, err := loadOwned("category", fetched, err, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		category.Name = strings.TrimSpace(*input.Name)
	}
	if input.Type != nil {
		category.Type = *input.Type
	}
	if input.Color != nil {
		category.Color = input.Color
	}

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category after the ownership check, refusing while any
// subcategory or transaction still references it.
func (s *CategoryService) Delete(ctx context.Context, userID, categoryID string) error {
	fetched, err := s.categories.GetByID(ctx, categoryID)
	category, err := loadOwned("category", fetched, err, userID)
	if err != nil {
		return err
	}

	subcategoryCount, err := s.subcategories.CountByCategory(ctx, category.ID)
	if err != nil {
		return err
	}
	if subcategoryCount > 0 {
		return apperrors.NewConflict("cannot delete category with subcategories; delete or reassign subcategories first", nil)
	}

	transactionCount, err := s.transactions.CountByCategory(ctx, category.ID)
	if err != nil {
		return err
	}
	if transactionCount > 0 {
		return apperrors.NewConflict("cannot delete category with transactions; delete or reassign transactions first", nil)
	}

	if err := s.categories.Delete(ctx, category.ID); err != nil {
		return err
	}
	s.publish(ctx, events.EventCategoryDeleted, userID, category.ID, category.Name)
	return nil
}

func (s *CategoryService) publish(ctx context.Context, eventType events.EventType, userID, resourceID, name string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   events.ResourcePayload{ResourceID: resourceID, Name: name},
	})
}
