package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smarttravel/smart_travel_backend/internal/apperrors"
	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
	portsrepo "github.com/smarttravel/smart_travel_backend/internal/core/ports/repositories"
	portssvc "github.com/smarttravel/smart_travel_backend/internal/core/ports/services"
	"github.com/smarttravel/smart_travel_backend/internal/dto"
	"github.com/smarttravel/smart_travel_backend/internal/middleware"
)

// maxConflictRetries bounds the internal retry of a single wallet mutation
// when the repository reports a serialization conflict.
const maxConflictRetries = 3

// walletService provides core wallet ledger operations.
type walletService struct {
	accountRepo portsrepo.AccountRepository
	ledgerRepo  portsrepo.LedgerRepository
}

// NewWalletService creates a new WalletService.
func NewWalletService(accountRepo portsrepo.AccountRepository, ledgerRepo portsrepo.LedgerRepository) portssvc.WalletSvcFacade {
	return &walletService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// Ensure walletService implements the portssvc.WalletSvcFacade interface
var _ portssvc.WalletSvcFacade = (*walletService)(nil)

// GetBalance returns the user's wallet balance; absence reads as zero.
func (s *walletService) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to fetch wallet for user %s: %w", userID, err)
	}
	return account.Balance, nil
}

// Deposit credits the wallet and appends the matching ledger entry.
func (s *walletService) Deposit(ctx context.Context, userID string, amount decimal.Decimal, method string) (*domain.LedgerEntry, decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, decimal.Zero, fmt.Errorf("%w: deposit amount must be positive, got %s", apperrors.ErrValidation, amount)
	}
	if method == "" {
		method = domain.MethodDemo
	}

	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to fetch wallet for deposit", slog.String("error", err.Error()))
		}
		return nil, decimal.Zero, err
	}

	entry := domain.LedgerEntry{
		EntryID:   uuid.NewString(),
		AccountID: account.AccountID,
		Amount:    amount,
		Method:    method,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.recordWithRetry(ctx, entry); err != nil {
		logger.Error("Failed to record deposit", slog.String("error", err.Error()), slog.String("entry_id", entry.EntryID))
		return nil, decimal.Zero, err
	}

	newBalance := account.Balance.Add(amount)
	logger.Info("Deposit recorded", slog.String("entry_id", entry.EntryID), slog.String("amount", amount.String()))
	return &entry, newBalance, nil
}

// HasSufficientBalance reports whether the wallet covers amount. Read-only;
// the authoritative check happens again under the account row lock when a
// debit is actually applied.
func (s *walletService) HasSufficientBalance(ctx context.Context, userID string, amount decimal.Decimal) (bool, error) {
	balance, err := s.GetBalance(ctx, userID)
	if err != nil {
		return false, err
	}
	return balance.GreaterThanOrEqual(amount), nil
}

// Debit removes amount from the wallet, appending the negative WALLET entry
// referencing the booking being paid for.
func (s *walletService) Debit(ctx context.Context, userID string, amount decimal.Decimal, bookingID string) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: debit amount must be positive, got %s", apperrors.ErrValidation, amount)
	}
	if bookingID == "" {
		return nil, fmt.Errorf("%w: debit requires a booking reference", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := domain.LedgerEntry{
		EntryID:   uuid.NewString(),
		AccountID: account.AccountID,
		BookingID: &bookingID,
		Amount:    amount.Neg(),
		Method:    domain.MethodWallet,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.recordWithRetry(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrInsufficientBalance) {
			logger.Info("Debit refused, insufficient balance", slog.String("booking_id", bookingID))
		} else {
			logger.Error("Failed to record debit", slog.String("error", err.Error()), slog.String("booking_id", bookingID))
		}
		return nil, err
	}

	logger.Info("Debit recorded", slog.String("entry_id", entry.EntryID), slog.String("booking_id", bookingID), slog.String("amount", amount.String()))
	return &entry, nil
}

// ListEntries returns the user's ledger history, most recent first.
func (s *walletService) ListEntries(ctx context.Context, userID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &dto.ListEntriesResponse{Entries: []dto.LedgerEntryResponse{}}, nil
		}
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, nextToken, err := s.ledgerRepo.ListEntriesByAccount(ctx, account.AccountID, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve ledger entries: %w", err)
	}

	return &dto.ListEntriesResponse{
		Entries:   dto.ToLedgerEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

// recordWithRetry applies a ledger entry, retrying a bounded number of times
// when the store reports a serialization conflict. Any other error, including
// insufficient balance, is returned as-is.
func (s *walletService) recordWithRetry(ctx context.Context, entry domain.LedgerEntry) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	var err error
	for attempt := 1; attempt <= maxConflictRetries; attempt++ {
		err = s.ledgerRepo.RecordEntry(ctx, entry)
		if err == nil || !errors.Is(err, apperrors.ErrConflict) {
			return err
		}
		logger.Warn("Ledger write conflicted, retrying", slog.Int("attempt", attempt), slog.String("entry_id", entry.EntryID))
	}
	return err
}
