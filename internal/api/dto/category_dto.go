package dto

import "time"

// CreateCategoryRequest payload for new categories.
type CreateCategoryRequest struct {
	Name  string  `json:"name" validate:"required,min=1"`
	Type  string  `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}

// UpdateCategoryRequest payload for partial category updates.
type UpdateCategoryRequest struct {
	ID    string  `json:"id" validate:"required"`
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Type  *string `json:"type" validate:"omitempty,oneof=INCOME EXPENSE"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}

// DeleteCategoryRequest payload for category deletion.
type DeleteCategoryRequest struct {
	ID string `json:"id" validate:"required"`
}

// CategoryResponse is the serialized category.
type CategoryResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Type          string                `json:"type"`
	Color         *string               `json:"color"`
	Subcategories []SubcategoryResponse `json:"subcategories,omitempty"`
	Transactions  []TransactionSummary  `json:"transactions,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// CategorySummary is the compact parent reference embedded in subcategories.
type CategorySummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Color *string `json:"color"`
}

// TransactionSummary is the recent-activity preview line.
type TransactionSummary struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Description *string   `json:"description"`
}
