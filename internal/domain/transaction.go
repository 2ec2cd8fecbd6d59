package domain

import "time"

// Transaction is a single bookkeeping entry. There is no mutation surface for
// transactions yet; they exist as dependents that block category and
// subcategory deletion, and as recent-activity summaries on reads.
type Transaction struct {
	ID            string
	UserID        string
	AccountID     *string
	CategoryID    *string
	SubcategoryID *string
	Amount        float64
	Date          time.Time
	Description   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
