package dto

import (
	"time"

	"github.com/kaiwenlow/simple-auth-be/internal/models"
)

// UserSummary is the list projection of a user: id, email, username,
// full name, and creation time only. The hash and active flag stay out.
type UserSummary struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse wraps a page of users with pagination counters.
type UserListResponse struct {
	Total   int64         `json:"total"`
	Showing int           `json:"showing"`
	Users   []UserSummary `json:"users"`
}

// SummarizeUsers converts store records into the public list projection.
func SummarizeUsers(users []models.User) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, UserSummary{
			ID:        u.ID,
			Email:     u.Email,
			Username:  u.Username,
			FullName:  u.FullName,
			CreatedAt: u.CreatedAt,
		})
	}
	return out
}
