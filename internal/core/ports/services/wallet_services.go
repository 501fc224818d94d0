package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
	"github.com/smarttravel/smart_travel_backend/internal/dto"
)

// WalletSvcFacade exposes wallet ledger operations. All balance-changing
// operations are atomic against the store and pair the change 1:1 with a
// ledger entry.
type WalletSvcFacade interface {
	// GetBalance returns the user's wallet balance. A user without a wallet
	// row reads as zero; this never fails on absence.
	GetBalance(ctx context.Context, userID string) (decimal.Decimal, error)

	// Deposit credits the wallet. Amount must be positive
	// (apperrors.ErrValidation otherwise); an unregistered user fails with
	// apperrors.ErrNotFound. Returns the appended entry and the new balance.
	Deposit(ctx context.Context, userID string, amount decimal.Decimal, method string) (*domain.LedgerEntry, decimal.Decimal, error)

	// HasSufficientBalance reports whether the wallet covers amount. Read-only.
	HasSufficientBalance(ctx context.Context, userID string, amount decimal.Decimal) (bool, error)

	// Debit removes amount from the wallet, appending a negative WALLET entry
	// referencing bookingID. Fails with apperrors.ErrInsufficientBalance
	// without mutating state when the balance does not cover amount.
	Debit(ctx context.Context, userID string, amount decimal.Decimal, bookingID string) (*domain.LedgerEntry, error)

	// ListEntries returns the user's ledger history, most recent first.
	ListEntries(ctx context.Context, userID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}
