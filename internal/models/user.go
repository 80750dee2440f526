package models

import (
	"time"
)

// User represents a user record in the database
type User struct {
	ID               int64      `json:"id" db:"id"`                 // Primary key
	Username         string     `json:"username" db:"username"`     // Unique username
	Email            string     `json:"email" db:"email"`           // Unique email
	PasswordHash     string     `json:"-" db:"password_hash"`       // bcrypt hash, never plaintext
	IsAdmin          bool       `json:"is_admin" db:"is_admin"`     // Admin flag
	CreatedAt        time.Time  `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"` // Last update timestamp
	ResetToken       *string    `json:"-" db:"reset_token"`         // Pending password reset token
	ResetTokenExpiry *time.Time `json:"-" db:"reset_token_expiry"`  // Reset token expiry
}

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID    int64
	Username  string
	IsAdmin   bool
	TokenID   string
	ExpiresAt time.Time
}
