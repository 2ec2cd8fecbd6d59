package dto

import "time"

// CreateAccountRequest payload for new accounts.
type CreateAccountRequest struct {
	Name     string   `json:"name" validate:"required,min=1"`
	Type     *string  `json:"type"`
	Currency *string  `json:"currency"`
	Balance  *float64 `json:"balance" validate:"omitempty,gte=0"`
}

// UpdateAccountRequest payload for partial account updates; the target is
// addressed in the body.
type UpdateAccountRequest struct {
	AccountID string   `json:"accountId" validate:"required"`
	Name      *string  `json:"name" validate:"omitempty,min=1"`
	Type      *string  `json:"type"`
	Currency  *string  `json:"currency"`
	Balance   *float64 `json:"balance" validate:"omitempty,gte=0"`
}

// DeleteAccountRequest payload for account deletion.
type DeleteAccountRequest struct {
	AccountID string `json:"accountId" validate:"required"`
}

// AccountResponse is the serialized account.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      *string   `json:"type"`
	Currency  *string   `json:"currency"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
