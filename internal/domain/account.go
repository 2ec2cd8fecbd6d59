package domain

import "time"

// Account is a user-owned money account (checking, savings, cash...).
type Account struct {
	ID        string
	UserID    string
	Name      string
	Type      *string
	Currency  *string
	Balance   float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerID returns the owning user id.
func (a *Account) OwnerID() string { return a.UserID }
