package identity

import (
	"context"
	"errors"
)

// ErrUserNotFound is returned when no account exists for the requested ID
var ErrUserNotFound = errors.New("user account not found")

// Directory defines the interface for UserAccount-related operations
type Directory interface {
	Create(ctx context.Context, account *UserAccount) error
	GetByID(ctx context.Context, userID string) (*UserAccount, error)
	List(ctx context.Context) ([]*UserAccount, error)
}
