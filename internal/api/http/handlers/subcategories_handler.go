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

// SubcategoriesHandler manages subcategory endpoints.
type SubcategoriesHandler struct {
	service *service.SubcategoryService
}

// NewSubcategoriesHandler constructs handler.
func NewSubcategoriesHandler(subcategoryService *service.SubcategoryService) *SubcategoriesHandler {
	return &SubcategoriesHandler{service: subcategoryService}
}

// List GET /api/v1/categories/subcategories.
func (h *SubcategoriesHandler) List(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no user id found")
	}

	var categoryID *string
	if raw := c.Query("categoryId"); raw != "" {
		categoryID = &raw
	}

	views, pagination, err := h.service.List(c.Context(), userID, categoryID, c.QueryInt("page", 1), c.QueryInt("pageSize", 25))
	if err != nil {
		return err
	}

	items := make([]dto.SubcategoryResponse, 0, len(views))
	for i := range views {
		items = append(items, subcategoryViewResponse(&views[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": pagination})
}

// Create POST /api/v1/categories/subcategories.
func (h *SubcategoriesHandler) Create(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no user id found")
	}

	var req dto.CreateSubcategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	subcategory, err := h.service.Create(c.Context(), userID, service.SubcategoryCreateInput{
		Name:       req.Name,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": subcategoryResponse(subcategory)})
}

// Update PATCH /api/v1/categories/subcategories.
func (h *SubcategoriesHandler) Update(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no user id found")
	}

	var req dto.UpdateSubcategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	subcategory, err := h.service.Update(c.Context(), userID, service.SubcategoryUpdateInput{
		ID:         req.ID,
		Name:       req.Name,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": subcategoryResponse(subcategory)})
}

// Delete DELETE /api/v1/categories/subcategories.
func (h *SubcategoriesHandler) Delete(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no user id found")
	}

	var req dto.DeleteSubcategoryRequest
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

func subcategoryResponse(subcategory *domain.Subcategory) dto.SubcategoryResponse {
	return dto.SubcategoryResponse{
		ID:         subcategory.ID,
		Name:       subcategory.Name,
		CategoryID: subcategory.CategoryID,
		CreatedAt:  subcategory.CreatedAt,
		UpdatedAt:  subcategory.UpdatedAt,
	}
}

func subcategoryViewResponse(view *service.SubcategoryView) dto.SubcategoryResponse {
	resp := subcategoryResponse(&view.Subcategory)
	resp.Category = &dto.CategorySummary{
		ID:    view.Category.ID,
		Name:  view.Category.Name,
		Type:  string(view.Category.Type),
		Color: view.Category.Color,
	}
	resp.Transactions = transactionSummaries(view.RecentTransactions)
	return resp
}
