package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID  `json:"id" db:"user_id"`              // Primary key
	Name         string     `json:"name" db:"name"`               // Display name
	Email        string     `json:"email" db:"email"`             // Unique email, used as login
	PasswordHash string     `json:"-" db:"password_hash"`         // Bcrypt hash, never serialized
	Birthdate    time.Time  `json:"birthdate" db:"birthdate"`     // Date of birth
	ZodiacSign   ZodiacSign `json:"zodiac_sign" db:"zodiac_sign"` // Derived from birthdate at signup
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`   // Last update timestamp
}
