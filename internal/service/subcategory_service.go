package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/finance-api/internal/domain"
	"github.com/spec-kit/finance-api/internal/events"
	"github.com/spec-kit/finance-api/internal/repository"
	apperrors "github.com/spec-kit/finance-api/pkg/util"
)

// SubcategoryCreateInput describes subcategory creation payload.
type SubcategoryCreateInput struct {
	Name       string
	CategoryID string
}

// SubcategoryUpdateInput describes a partial subcategory update.
type SubcategoryUpdateInput struct {
	ID         string
	Name       *string
	CategoryID *string
}

// SubcategoryView is a subcategory with its parent summary and recent activity.
type SubcategoryView struct {
	Subcategory        domain.Subcategory
	Category           domain.Category
	RecentTransactions []domain.Transaction
}

// SubcategoryService coordinates subcategory CRUD for the owning user.
type SubcategoryService struct {
	subcategories repository.SubcategoryRepository
	categories    repository.CategoryRepository
	transactions  repository.TransactionRepository
	dispatcher    events.Dispatcher
}

// NewSubcategoryService constructs the service.
func NewSubcategoryService(
	subcategories repository.SubcategoryRepository,
	categories repository.CategoryRepository,
	transactions repository.TransactionRepository,
	dispatcher events.Dispatcher,
) *SubcategoryService {
	return &SubcategoryService{
		subcategories: subcategories,
		categories:    categories,
		transactions:  transactions,
		dispatcher:    dispatcher,
	}
}

// List returns the caller's subcategories, optionally narrowed to one parent
// category.
func (s *SubcategoryService) List(ctx context.Context, userID string, categoryID *string, page, pageSize int) ([]SubcategoryView, Pagination, error) {
	page, pageSize, limit, offset := normalizePage(page, pageSize)

	subcategories, err := s.subcategories.ListByOwner(ctx, userID, categoryID, limit, offset)
	if err != nil {
		return nil, Pagination{}, err
	}

	views := make([]SubcategoryView, 0, len(subcategories))
	for _, subcategory := range subcategories {
		category, err := s.categories.GetByID(ctx, subcategory.CategoryID)
		if err != nil {
			return nil, Pagination{}, err
		}
		recent, err := s.transactions.ListRecentBySubcategory(ctx, subcategory.ID, recentTransactionLimit)
		if err != nil {
			return nil, Pagination{}, err
		}
		views = append(views, SubcategoryView{
			Subcategory:        subcategory,
			Category:           *category,
			RecentTransactions: recent,
		})
	}

	total, err := s.subcategories.CountByOwner(ctx, userID, categoryID)
	if err != nil {
		return nil, Pagination{}, err
	}
	return views, newPagination(page, pageSize, total), nil
}

// Create adds a subcategory under a category the caller owns.
func (s *SubcategoryService) Create(ctx context.Context, userID string, input SubcategoryCreateInput) (*domain.Subcategory, error) {
	if err := s.verifyParent(ctx, userID, input.CategoryID); err != nil {
		return nil, err
	}

	subcategory := &domain.Subcategory{
		UserID:     userID,
		CategoryID: input.CategoryID,
		Name:       strings.TrimSpace(input.Name),
	}
	if err := s.subcategories.Create(ctx, subcategory); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventSubcategoryCreated, userID, subcategory.ID, subcategory.Name)
	return subcategory, nil
}

// Update applies a partial update after the ownership check. Moving to a new
// parent re-verifies that parent.
func (s *SubcategoryService) Update(ctx context.Context, userID string, input SubcategoryUpdateInput) (*domain.Subcategory, error) {
	fetched, err := s.subcategories.GetByID(ctx, input.ID)
	subcategory, err := loadOwned("subcategory", fetched, err, userID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil && *input.CategoryID != subcategory.CategoryID {
		if err := s.verifyParent(ctx, userID, *input.CategoryID); err != nil {
			return nil, err
		}
		subcategory.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		subcategory.Name = strings.TrimSpace(*input.Name)
	}

	if err := s.subcategories.Update(ctx, subcategory); err != nil {
		return nil, err
	}
	return subcategory, nil
}

// Delete removes a subcategory after the ownership check, refusing while any
// transaction still references it.
func (s *SubcategoryService) Delete(ctx context.Context, userID, subcategoryID string) error {
	fetched, err := s.subcategories.GetByID(ctx, subcategoryID)
	subcategory, err := loadOwned("subcategory", fetched, err, userID)
	if err != nil {
		return err
	}

	transactionCount, err := s.transactions.CountBySubcategory(ctx, subcategory.ID)
	if err != nil {
		return err
	}
	if transactionCount > 0 {
		return apperrors.NewConflict("cannot delete subcategory with transactions; delete or reassign transactions first", nil)
	}

	if err := s.subcategories.Delete(ctx, subcategory.ID); err != nil {
		return err
	}
	s.publish(ctx, events.EventSubcategoryDeleted, userID, subcategory.ID, subcategory.Name)
	return nil
}

// verifyParent confirms the parent category exists and belongs to the caller.
// Foreign categories read as not-found so subcategory operations disclose
// nothing about other users' data.
func (s *SubcategoryService) verifyParent(ctx context.Context, userID, categoryID string) error {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("category", nil)
		}
		return err
	}
	if category.UserID != userID {
		return apperrors.NewNotFound("category", nil)
	}
	return nil
}

func (s *SubcategoryService) publish(ctx context.Context, eventType events.EventType, userID, resourceID, name string) {
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
