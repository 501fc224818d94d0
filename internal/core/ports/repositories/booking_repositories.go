package repositories

import (
	"context"

	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
)

// BookingRepository persists bookings together with their payment.
type BookingRepository interface {
	// SaveBookingWithDebit inserts the booking, appends its debit ledger
	// entry, and decrements the account balance as one database transaction
	// with the account row locked. If the balance cannot cover entry.Amount
	// the whole transaction rolls back with apperrors.ErrInsufficientBalance:
	// a CONFIRMED booking row never exists without its successful debit.
	SaveBookingWithDebit(ctx context.Context, booking domain.Booking, entry domain.LedgerEntry) error

	// ListBookingsByAccount returns the account's bookings, most recent
	// first, with keyset pagination.
	ListBookingsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Booking, *string, error)

	// FindBookingByID retrieves a booking by its primary key.
	FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error)
}
