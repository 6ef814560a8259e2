package users

import (
	"context"
)

// Repository persists accounts. Lookups of unknown users return
// common.ErrNotFound; Create rejects a taken email or username with
// ErrEmailTaken or ErrUsernameTaken, both wrapping common.ErrAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	Update(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
