package services

import (
	"context"

	"github.com/smarttravel/smart_travel_backend/internal/dto"
)

// BookingSvcFacade orchestrates fare quoting and the book-and-pay flow.
type BookingSvcFacade interface {
	// QuoteFare resolves the route distance and prices it for the requested
	// transport mode. No state is mutated.
	QuoteFare(ctx context.Context, req dto.FareQuoteRequest) (*dto.FareQuoteResponse, error)

	// BookRide books a trip and debits the wallet atomically. On
	// insufficient balance it fails with apperrors.ErrInsufficientBalance
	// (carrying required/available) and neither a booking nor a ledger entry
	// is created.
	BookRide(ctx context.Context, userID string, req dto.BookRideRequest) (*dto.BookRideResponse, error)

	// ListBookings returns the user's bookings, most recent first.
	ListBookings(ctx context.Context, userID string, params dto.ListBookingsParams) (*dto.ListBookingsResponse, error)
}
