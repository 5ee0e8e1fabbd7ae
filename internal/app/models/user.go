package models

import (
	"time"
)

// User is an application account from the 'app_user' table
type User struct {
	ID           int64     `json:"id" db:"user_id" example:"1"`
	Username     string    `json:"username" db:"username" example:"alice"`
	Email        *string   `json:"email,omitempty" db:"email" example:"alice@example.com"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Identity is what a session remembers about the logged-in user.
type Identity struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// IdentityOf builds the session identity for an account row.
func IdentityOf(u *User) Identity {
	id := Identity{Username: u.Username}
	if u.Email != nil {
		id.Email = *u.Email
	}
	return id
}
