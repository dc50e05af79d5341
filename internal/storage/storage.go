package storage

import (
	"context"
	"errors"

	"github.com/kaiwenlow/simple-auth-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict on email or username.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures persistence operations needed by handlers. The backing
// store must enforce email/username uniqueness itself so that concurrent
// check-then-insert sequences fail atomically at insert time.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	// ListUsers returns a page ordered by id ascending plus the total count.
	ListUsers(ctx context.Context, skip, limit int) ([]models.User, int64, error)
}
