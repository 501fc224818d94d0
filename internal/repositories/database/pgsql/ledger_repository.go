package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/smarttravel/smart_travel_backend/internal/apperrors"
	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
	portsrepo "github.com/smarttravel/smart_travel_backend/internal/core/ports/repositories"
	"github.com/smarttravel/smart_travel_backend/internal/middleware"
	"github.com/smarttravel/smart_travel_backend/internal/models"
	"github.com/smarttravel/smart_travel_backend/internal/utils/mapping"
	"github.com/smarttravel/smart_travel_backend/internal/utils/pagination"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepository
var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

// RecordEntry appends the ledger entry and applies its amount to the account
// balance in one transaction. The account row is locked first so the
// sufficiency check and the balance update see the same value even under
// concurrent writers.
func (r *PgxLedgerRepository) RecordEntry(ctx context.Context, entry domain.LedgerEntry) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("Failed to rollback ledger transaction", slog.String("error", rbErr.Error()))
		}
	}()

	balance, err := lockAccountBalance(ctx, tx, entry.AccountID)
	if err != nil {
		return err
	}

	if entry.Amount.IsNegative() && balance.LessThan(entry.Amount.Neg()) {
		return apperrors.NewInsufficientBalance(entry.Amount.Neg(), balance)
	}

	if err := insertLedgerEntry(ctx, tx, mapping.ToModelLedgerEntry(entry)); err != nil {
		return err
	}
	if err := applyBalanceDelta(ctx, tx, entry.AccountID, entry.Amount, entry.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ListEntriesByAccount returns one page of ledger entries, newest first.
func (r *PgxLedgerRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	query := `
		SELECT entry_id, account_id, booking_id, amount, method, created_at
		FROM ledger_entries
		WHERE account_id = $1
	`
	args := []interface{}{accountID}

	if nextToken != nil && *nextToken != "" {
		afterTime, afterID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` AND (created_at, entry_id) < ($2, $3)`
		args = append(args, afterTime, afterID)
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC, entry_id DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query ledger entries for account %s: %w", accountID, err)
	}
	defer rows.Close()

	var entries []models.LedgerEntry
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(&m.EntryID, &m.AccountID, &m.BookingID, &m.Amount, &m.Method, &m.CreatedAt); err != nil {
			return nil, nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating ledger entries: %w", err)
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.EntryID)
		token = &t
	}

	return mapping.ToDomainLedgerEntrySlice(entries), token, nil
}

// lockAccountBalance reads the account balance under FOR UPDATE, holding the
// row lock for the remainder of the transaction.
func lockAccountBalance(ctx context.Context, tx pgx.Tx, accountID string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	query := `SELECT balance FROM accounts WHERE account_id = $1 FOR UPDATE;`
	err := tx.QueryRow(ctx, query, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("%w: account %s not found", apperrors.ErrNotFound, accountID)
		}
		return decimal.Zero, fmt.Errorf("failed to lock account %s: %w", accountID, translatePgError(err))
	}
	return balance, nil
}

// insertLedgerEntry appends one row to the ledger inside the transaction.
func insertLedgerEntry(ctx context.Context, tx pgx.Tx, m models.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (entry_id, account_id, booking_id, amount, method, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := tx.Exec(ctx, query, m.EntryID, m.AccountID, m.BookingID, m.Amount, m.Method, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert ledger entry %s: %w", m.EntryID, translatePgError(err))
	}
	return nil
}

// applyBalanceDelta adjusts the already-locked account row by delta.
func applyBalanceDelta(ctx context.Context, tx pgx.Tx, accountID string, delta decimal.Decimal, at time.Time) error {
	query := `
		UPDATE accounts
		SET balance = balance + $2, last_updated_at = $3
		WHERE account_id = $1;
	`
	tag, err := tx.Exec(ctx, query, accountID, delta, at)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %s: %w", accountID, translatePgError(err))
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("%w: account %s not found during balance update", apperrors.ErrNotFound, accountID)
	}
	return nil
}
