package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/finance-api/internal/domain"
	"github.com/spec-kit/finance-api/internal/events"
	"github.com/spec-kit/finance-api/internal/repository"
)

// AccountCreateInput describes account creation payload.
type AccountCreateInput struct {
	Name     string
	Type     *string
	Currency *string
	Balance  *float64
}

// AccountUpdateInput describes a partial account update.
type AccountUpdateInput struct {
	AccountID string
	Name      *string
	Type      *string
	Currency  *string
	Balance   *float64
}

// AccountService coordinates account CRUD for the owning user.
type AccountService struct {
	accounts   repository.AccountRepository
	dispatcher events.Dispatcher
}

// NewAccountService constructs the service.
func NewAccountService(accounts repository.AccountRepository, dispatcher events.Dispatcher) *AccountService {
	return &AccountService{accounts: accounts, dispatcher: dispatcher}
}

// List returns the caller's accounts with pagination metadata.
func (s *AccountService) List(ctx context.Context, userID string, page, pageSize int) ([]domain.Account, Pagination, error) {
	page, pageSize, limit, offset := normalizePage(page, pageSize)

	accounts, err := s.accounts.ListByOwner(ctx, userID, limit, offset)
	if err != nil {
		return nil, Pagination{}, err
	}
	total, err := s.accounts.CountByOwner(ctx, userID)
	if err != nil {
		return nil, Pagination{}, err
	}
	return accounts, newPagination(page, pageSize, total), nil
}

// Create adds an account owned by the caller.
func (s *AccountService) Create(ctx context.Context, userID string, input AccountCreateInput) (*domain.Account, error) {
	account := &domain.Account{
		UserID:   userID,
		Name:     strings.TrimSpace(input.Name),
		Type:     input.Type,
		Currency: input.Currency,
	}
	if input.Balance != nil {
		account.Balance = *input.Balance
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventAccountCreated, userID, account)
	return account, nil
}

// Update applies a partial update after the ownership check.
func (s *AccountService) Update(ctx context.Context, userID string, input AccountUpdateInput) (*domain.Account, error) {
	fetched, err := s.accounts.GetByID(ctx, input.AccountID)
	account, err := loadOwned("account", fetched, err, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		account.Name = strings.TrimSpace(*input.Name)
	}
	if input.Type != nil {
		account.Type = input.Type
	}
	if input.Currency != nil {
		account.Currency = input.Currency
	}
	if input.Balance != nil {
		account.Balance = *input.Balance
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventAccountUpdated, userID, account)
	return account, nil
}

// Delete removes an account after the ownership check.
func (s *AccountService) Delete(ctx context.Context, userID, accountID string) error {
	fetched, err := s.accounts.GetByID(ctx, accountID)
	account, err := loadOwned("account", fetched, err, userID)
	if err != nil {
		return err
	}

	if err := s.accounts.Delete(ctx, account.ID); err != nil {
		return err
	}
	s.publish(ctx, events.EventAccountDeleted, userID, account)
	return nil
}

func (s *AccountService) publish(ctx context.Context, eventType events.EventType, userID string, account *domain.Account) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   events.ResourcePayload{ResourceID: account.ID, Name: account.Name},
	})
}
