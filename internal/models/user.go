package models

import "time"

// User captures application-facing fields for an authenticated identity.
// PasswordHash is never serialized; IsActive is read here but only mutated
// by administrative processes outside this service.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
