package dto

// RegisterRequest payload for new users.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=2"`
	Password string `json:"password" validate:"required,min=5"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
}

// SessionResponse is the identity-check body. It never carries the password
// hash.
type SessionResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}
