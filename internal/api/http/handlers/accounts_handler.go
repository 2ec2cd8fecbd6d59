package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/finance-api/internal/api/dto"
	"github.com/spec-kit/finance-api/internal/auth"
	"github.com/spec-kit/finance-api/internal/domain"
	"github.com/spec-kit/finance-api/internal/service"
	apperrors "github.com/spec-kit/finance-api/pkg/util"
)

// AccountsHandler manages account endpoints.
type AccountsHandler struct {
	service *service.AccountService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(accountService *service.AccountService) *AccountsHandler {
	return &AccountsHandler{service: accountService}
}

// List GET /api/v1/accounts.
func (h *AccountsHandler) List(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no user id found")
	}

	accounts, pagination, err := h.service.List(c.Context(), userID, c.QueryInt("page", 1), c.QueryInt("pageSize", 25))
	if err != nil {
		return err
	}

	items := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		items = append(items, accountResponse(&accounts[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": pagination})
}

// Create POST /api/v1/accounts.
func (h *AccountsHandler) Create(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no user id found")
	}

	var req dto.CreateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	account, err := h.service.Create(c.Context(), userID, service.AccountCreateInput{
		Name:     req.Name,
		Type:     req.Type,
		Currency: req.Currency,
		Balance:  req.Balance,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": accountResponse(account)})
}

// Update PATCH /api/v1/accounts.
func (h *AccountsHandler) Update(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no user id found")
	}

	var req dto.UpdateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	account, err := h.service.Update(c.Context(), userID, service.AccountUpdateInput{
		AccountID: req.AccountID,
		Name:      req.Name,
		Type:      req.Type,
		Currency:  req.Currency,
		Balance:   req.Balance,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": accountResponse(account)})
}

// Delete DELETE /api/v1/accounts.
func (h *AccountsHandler) Delete(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no user id found")
	}

	var req dto.DeleteAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	if err := h.service.Delete(c.Context(), userID, req.AccountID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func accountResponse(account *domain.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Type:      account.Type,
		Currency:  account.Currency,
		Balance:   account.Balance,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
