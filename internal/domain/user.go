package domain

import "time"

// User is the domain model for registered account holders. PasswordHash is
// never serialized into a response.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
