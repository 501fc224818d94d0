package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smarttravel/smart_travel_backend/internal/apperrors"
	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
	portsrepo "github.com/smarttravel/smart_travel_backend/internal/core/ports/repositories"
	"github.com/smarttravel/smart_travel_backend/internal/middleware"
	"github.com/smarttravel/smart_travel_backend/internal/models"
	"github.com/smarttravel/smart_travel_backend/internal/utils/mapping"
	"github.com/smarttravel/smart_travel_backend/internal/utils/pagination"
)

type PgxBookingRepository struct {
	BaseRepository
}

// newPgxBookingRepository creates a new repository for booking data.
func newPgxBookingRepository(pool *pgxpool.Pool) portsrepo.BookingRepository {
	return &PgxBookingRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxBookingRepository implements portsrepo.BookingRepository
var _ portsrepo.BookingRepository = (*PgxBookingRepository)(nil)

// SaveBookingWithDebit inserts the booking, its debit ledger entry, and the
// balance decrement as one transaction. The account row lock is taken before
// the sufficiency check, so two concurrent bookings against the same wallet
// serialize and the second sees the balance left by the first. Any failure
// rolls back all three writes.
func (r *PgxBookingRepository) SaveBookingWithDebit(ctx context.Context, booking domain.Booking, entry domain.LedgerEntry) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("Failed to rollback booking transaction", slog.String("error", rbErr.Error()))
		}
	}()

	balance, err := lockAccountBalance(ctx, tx, entry.AccountID)
	if err != nil {
		return err
	}

	debit := entry.Amount.Neg()
	if balance.LessThan(debit) {
		return apperrors.NewInsufficientBalance(debit, balance)
	}

	modelBooking := mapping.ToModelBooking(booking)
	query := `
		INSERT INTO bookings (booking_id, account_id, passenger_name, transport_mode, origin, destination, travel_at, fare, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		modelBooking.BookingID,
		modelBooking.AccountID,
		modelBooking.PassengerName,
		modelBooking.TransportMode,
		modelBooking.Origin,
		modelBooking.Destination,
		modelBooking.TravelAt,
		modelBooking.Fare,
		modelBooking.Status,
		modelBooking.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking %s: %w", modelBooking.BookingID, translatePgError(err))
	}

	if err := insertLedgerEntry(ctx, tx, mapping.ToModelLedgerEntry(entry)); err != nil {
		return err
	}
	if err := applyBalanceDelta(ctx, tx, entry.AccountID, entry.Amount, entry.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ListBookingsByAccount returns one page of bookings, newest first.
func (r *PgxBookingRepository) ListBookingsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Booking, *string, error) {
	query := `
		SELECT booking_id, account_id, passenger_name, transport_mode, origin, destination, travel_at, fare, status, created_at
		FROM bookings
		WHERE account_id = $1
	`
	args := []interface{}{accountID}

	if nextToken != nil && *nextToken != "" {
		afterTime, afterID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` AND (created_at, booking_id) < ($2, $3)`
		args = append(args, afterTime, afterID)
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC, booking_id DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query bookings for account %s: %w", accountID, err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var m models.Booking
		if err := scanBooking(rows, &m); err != nil {
			return nil, nil, err
		}
		bookings = append(bookings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	var token *string
	if len(bookings) > limit {
		bookings = bookings[:limit]
		last := bookings[len(bookings)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.BookingID)
		token = &t
	}

	return mapping.ToDomainBookingSlice(bookings), token, nil
}

// FindBookingByID retrieves a booking by its primary key.
func (r *PgxBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	query := `
		SELECT booking_id, account_id, passenger_name, transport_mode, origin, destination, travel_at, fare, status, created_at
		FROM bookings
		WHERE booking_id = $1;
	`
	var m models.Booking
	if err := scanBooking(r.Pool.QueryRow(ctx, query, bookingID), &m); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: booking %s not found", apperrors.ErrNotFound, bookingID)
		}
		return nil, err
	}
	booking := mapping.ToDomainBooking(m)
	return &booking, nil
}

func scanBooking(row pgx.Row, m *models.Booking) error {
	err := row.Scan(
		&m.BookingID,
		&m.AccountID,
		&m.PassengerName,
		&m.TransportMode,
		&m.Origin,
		&m.Destination,
		&m.TravelAt,
		&m.Fare,
		&m.Status,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to scan booking: %w", err)
	}
	return nil
}
