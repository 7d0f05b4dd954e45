package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `db:"id"`

	// Username is the unique login and display name.
	Username string `db:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `db:"password_hash"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `db:"created_at"`

	// UpdatedAt is the Unix timestamp of the last account change.
	UpdatedAt int64 `db:"updated_at"`
}

// NewUser builds a user with a fresh ID and timestamps.
func NewUser(username, passwordHash string) *User {
	now := time.Now().Unix()
	return &User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// UserRef is the public projection of a user used in pickers and rosters.
type UserRef struct {
	ID       string `db:"id"`
	Username string `db:"username"`
}

// Profile holds free-form profile text for a user.
type Profile struct {
	UserID string `db:"user_id"`
	Bio    string `db:"bio"`
}

// UserLocation is the last position a user's device reported.
type UserLocation struct {
	UserID   string   `db:"user_id"`
	Lat      float64  `db:"lat"`
	Lng      float64  `db:"lng"`
	Accuracy *float64 `db:"accuracy"`
	LastSeen int64    `db:"last_seen"`
}
