package repositories

import (
	"context"

	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
)

// AccountRepository persists wallet accounts. Balance mutation is not exposed
// here: balances only change through LedgerRepository.RecordEntry and
// BookingRepository.SaveBookingWithDebit, which pair every change with a
// ledger entry inside one database transaction.
type AccountRepository interface {
	// SaveAccount inserts a new wallet account with a zero balance.
	SaveAccount(ctx context.Context, account domain.Account) error

	// FindAccountByID retrieves an account by its primary key.
	// Returns apperrors.ErrNotFound if absent.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByUserID retrieves the wallet for a user.
	// Returns apperrors.ErrNotFound if the user has no wallet.
	FindAccountByUserID(ctx context.Context, userID string) (*domain.Account, error)
}
