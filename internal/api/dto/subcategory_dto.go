package dto

import "time"

// CreateSubcategoryRequest payload for new subcategories.
type CreateSubcategoryRequest struct {
	Name       string `json:"name" validate:"required,min=1"`
	CategoryID string `json:"categoryId" validate:"required"`
}

// UpdateSubcategoryRequest payload for partial subcategory updates.
type UpdateSubcategoryRequest struct {
	ID         string  `json:"id" validate:"required"`
	Name       *string `json:"name" validate:"omitempty,min=1"`
	CategoryID *string `json:"categoryId" validate:"omitempty,min=1"`
}

// DeleteSubcategoryRequest payload for subcategory deletion.
type DeleteSubcategoryRequest struct {
	ID string `json:"id" validate:"required"`
}

// SubcategoryResponse is the serialized subcategory.
type SubcategoryResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	CategoryID   string               `json:"categoryId"`
	Category     *CategorySummary     `json:"category,omitempty"`
	Transactions []TransactionSummary `json:"transactions,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}
