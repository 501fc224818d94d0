package repositories

import (
	"context"

	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
)

// LedgerRepository owns the append-only ledger and the balance updates paired
// with it.
type LedgerRepository interface {
	// RecordEntry applies entry.Amount to the account balance and appends the
	// entry, both inside a single database transaction with the account row
	// locked. A debit (negative amount) larger than the current balance is
	// refused with apperrors.ErrInsufficientBalance and leaves balance and
	// ledger unchanged. Returns apperrors.ErrNotFound if the account does not
	// exist, apperrors.ErrConflict on a serialization failure.
	RecordEntry(ctx context.Context, entry domain.LedgerEntry) error

	// ListEntriesByAccount returns the account's ledger entries, most recent
	// first, with keyset pagination. The returned token is nil when there are
	// no further pages.
	ListEntriesByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}
