package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	Email     string    `json:"email" db:"email" example:"ab123@campus.edu"`             // Login principal
	Password  string    `json:"-" db:"password"`                                         // Bcrypt hash (excluded from JSON)
	Name      string    `json:"name" db:"name" example:"John Doe"`                       // Display name
	RoleType  RoleType  `json:"roleType" db:"role_type" example:"STUDENT"`               // STUDENT or STAFF
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Account creation timestamp
}

// RefreshToken defines a stored refresh token based on the 'refresh_tokens'
// table. A token is single use: redeeming it revokes it and issues a new one.
type RefreshToken struct {
	ID        int64     `db:"id"`
	Token     string    `db:"token"`
	UserID    int64     `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	IsRevoked bool      `db:"is_revoked"`
	CreatedAt time.Time `db:"created_at"`
}
