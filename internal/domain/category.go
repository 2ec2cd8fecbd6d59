package domain

import "time"

// CategoryType classifies a category as money in or money out.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "INCOME"
	CategoryTypeExpense CategoryType = "EXPENSE"
)

// Category groups transactions under a user-defined label.
type Category struct {
	ID        string
	UserID    string
	Name      string
	Type      CategoryType
	Color     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerID returns the owning user id.
func (c *Category) OwnerID() string { return c.UserID }

// Subcategory refines a Category; it shares the parent's owner.
type Subcategory struct {
	ID         string
	UserID     string
	CategoryID string
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OwnerID returns the owning user id.
func (s *Subcategory) OwnerID() string { return s.UserID }
