package models

import "time"

// Feedback is a free-text experience report with an optional rating.
type Feedback struct {
	ID        int64     `json:"id" db:"id"`
	UserID    *int64    `json:"user_id,omitempty" db:"user_id"` // Nil when submitted without a resolvable caller
	Content   string    `json:"content" db:"content"`
	Rating    *int      `json:"rating,omitempty" db:"rating"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
