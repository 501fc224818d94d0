package repositories

import (
	"context"

	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
)

// UserRepository persists registered users.
type UserRepository interface {
	// SaveUserWithAccount inserts the user row and their wallet account in a
	// single database transaction. Returns apperrors.ErrDuplicate if the
	// email is already registered.
	SaveUserWithAccount(ctx context.Context, user domain.User, account domain.Account) error

	// FindUserByID retrieves a user by ID. Returns apperrors.ErrNotFound if absent.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email. Returns apperrors.ErrNotFound if absent.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
