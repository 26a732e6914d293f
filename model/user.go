package model

import "time"

// UserEntity is one account in the persisted user registry.
type UserEntity struct {
	ID           uint64    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	Role         string    `json:"role"`
}

// SessionUser is a UserEntity without password material.
type SessionUser struct {
	ID        uint64    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	Role      string    `json:"role"`
}

// Redact returns the session-safe copy of u.
func (u *UserEntity) Redact() *SessionUser {
	return &SessionUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		Role:      u.Role,
	}
}

// UserFilter for querying the registry
type UserFilter struct {
	ID    uint64
	Email string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,notblank"`
	LastName  string `json:"last_name" validate:"required,notblank"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,notblank"`
	Password  string `json:"password" validate:"required,strongpassword"`
}

// LoginRequest for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,strongpassword"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  *SessionUser `json:"user"`
	Token string       `json:"token"`
}
