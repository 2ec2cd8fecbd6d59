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

// CategoriesHandler manages category endpoints.
type CategoriesHandler struct {
	service *service.CategoryService
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(categoryService *service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{service: categoryService}
}

// List GET /api/v1/categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no user id found")
	}

	views, pagination, err := h.service.List(c.Context(), userID, c.QueryInt("page", 1), c.QueryInt("pageSize", 25))
	if err != nil {
		return err
	}

	items := make([]dto.CategoryResponse, 0, len(views))
	for i := range views {
		items = append(items, categoryViewResponse(&views[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": pagination})
}

// Create POST /api/v1/categories.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no user id found")
	}

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	category, err := h.service.Create(c.Context(), userID, service.CategoryCreateInput{
		Name:  req.Name,
		Type:  domain.CategoryType(req.Type),
		Color: req.Color,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": categoryResponse(category)})
}

// Update PATCH /api/v1/categories.
func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no user id found")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	input := service.CategoryUpdateInput{
		ID:    req.ID,
		Name:  req.Name,
		Color: req.Color,
	}
	if req.Type != nil {
		categoryType := domain.CategoryType(*req.Type)
		input.Type = &categoryType
	}

	category, err := h.service.Update(c.Context(), userID, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": categoryResponse(category)})
}

// Delete DELETE /api/v1/categories.
func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no user id found")
	}

	var req dto.DeleteCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	if err := h.service.Delete(c.Context(), userID, req.ID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func categoryResponse(category *domain.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Type:      string(category.Type),
		Color:     category.Color,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func categoryViewResponse(view *service.CategoryView) dto.CategoryResponse {
	resp := categoryResponse(&view.Category)
	resp.Subcategories = make([]dto.SubcategoryResponse, 0, len(view.Subcategories))
	for i := range view.Subcategories {
		resp.Subcategories = append(resp.Subcategories, subcategoryResponse(&view.Subcategories[i]))
	}
	resp.Transactions = transactionSummaries(view.RecentTransactions)
	return resp
}

func transactionSummaries(transactions []domain.Transaction) []dto.TransactionSummary {
	out := make([]dto.TransactionSummary, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, dto.TransactionSummary{
			ID:          tx.ID,
			Amount:      tx.Amount,
			Date:        tx.Date,
			Description: tx.Description,
		})
	}
	return out
}
