package users

import "context"

type Repository interface {
	// Create persiste la cuenta. Username duplicado => ErrUsernameTaken.
	Create(ctx context.Context, u User) error
	GetByUsername(ctx context.Context, username string) (User, error)
}
