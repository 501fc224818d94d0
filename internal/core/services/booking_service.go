package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/smarttravel/smart_travel_backend/internal/apperrors"
	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
	portsrepo "github.com/smarttravel/smart_travel_backend/internal/core/ports/repositories"
	portssvc "github.com/smarttravel/smart_travel_backend/internal/core/ports/services"
	"github.com/smarttravel/smart_travel_backend/internal/dto"
	"github.com/smarttravel/smart_travel_backend/internal/middleware"
	"github.com/smarttravel/smart_travel_backend/internal/utils/fare"
)

// bookingService composes the fare calculator, the distance provider, and the
// wallet-backed booking repository into the book-and-pay flow.
type bookingService struct {
	bookingRepo portsrepo.BookingRepository
	accountRepo portsrepo.AccountRepository
	distanceSvc portssvc.DistanceSvcFacade
}

// NewBookingService creates a new BookingService.
func NewBookingService(bookingRepo portsrepo.BookingRepository, accountRepo portsrepo.AccountRepository, distanceSvc portssvc.DistanceSvcFacade) portssvc.BookingSvcFacade {
	return &bookingService{
		bookingRepo: bookingRepo,
		accountRepo: accountRepo,
		distanceSvc: distanceSvc,
	}
}

// Ensure bookingService implements the portssvc.BookingSvcFacade interface
var _ portssvc.BookingSvcFacade = (*bookingService)(nil)

// QuoteFare resolves the route distance and prices it. Unknown transport
// modes quote at the default rate rather than failing, matching the legacy
// fare table behavior.
func (s *bookingService) QuoteFare(ctx context.Context, req dto.FareQuoteRequest) (*dto.FareQuoteResponse, error) {
	modeStr := req.Mode
	if modeStr == "" {
		modeStr = "cab"
	}
	mode, _ := domain.ParseTransportMode(modeStr)

	distance, err := s.distanceSvc.Distance(ctx, req.Origin, req.Destination, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve route distance: %w", err)
	}

	amount, err := fare.Calculate(distance, mode)
	if err != nil {
		return nil, err
	}

	return &dto.FareQuoteResponse{
		Origin:      req.Origin,
		Destination: req.Destination,
		Mode:        mode,
		DistanceKm:  distance,
		Fare:        amount,
		Currency:    domain.DefaultCurrencyCode,
	}, nil
}

// BookRide books a trip and debits the wallet in one database transaction.
// The fast-path sufficiency check here gives a friendly early failure; the
// authoritative check runs again inside the repository with the account row
// locked, so a concurrent debit can never leave a confirmed booking unpaid.
func (s *bookingService) BookRide(ctx context.Context, userID string, req dto.BookRideRequest) (*dto.BookRideResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Bookings require a recognized transport mode; only fare quotes accept
	// free-text fallback.
	mode, ok := domain.ParseTransportMode(req.Mode)
	if !ok {
		return nil, fmt.Errorf("%w: unknown transport mode %q", apperrors.ErrValidation, req.Mode)
	}

	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	distance, err := s.distanceSvc.Distance(ctx, req.Origin, req.Destination, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve route distance: %w", err)
	}

	rideFare, err := fare.Calculate(distance, mode)
	if err != nil {
		return nil, err
	}

	if account.Balance.LessThan(rideFare) {
		return nil, apperrors.NewInsufficientBalance(rideFare, account.Balance)
	}

	now := time.Now().UTC()
	booking := domain.Booking{
		BookingID:     uuid.NewString(),
		AccountID:     account.AccountID,
		PassengerName: req.PassengerName,
		TransportMode: mode,
		Origin:        req.Origin,
		Destination:   req.Destination,
		TravelAt:      req.TravelAt,
		Fare:          rideFare,
		Status:        domain.BookingConfirmed,
		CreatedAt:     now,
	}
	entry := domain.LedgerEntry{
		EntryID:   uuid.NewString(),
		AccountID: account.AccountID,
		BookingID: &booking.BookingID,
		Amount:    rideFare.Neg(),
		Method:    domain.MethodWallet,
		CreatedAt: now,
	}

	if err := s.saveWithRetry(ctx, booking, entry); err != nil {
		if errors.Is(err, apperrors.ErrInsufficientBalance) {
			logger.Info("Booking refused, insufficient balance", slog.String("booking_id", booking.BookingID))
		} else {
			logger.Error("Failed to save booking", slog.String("error", err.Error()), slog.String("booking_id", booking.BookingID))
		}
		return nil, err
	}

	logger.Info("Ride booked",
		slog.String("booking_id", booking.BookingID),
		slog.String("mode", string(mode)),
		slog.String("fare", rideFare.String()),
	)

	return &dto.BookRideResponse{
		Booking:    dto.ToBookingResponse(&booking),
		Payment:    dto.ToLedgerEntryResponse(&entry),
		NewBalance: account.Balance.Sub(rideFare),
		Currency:   domain.DefaultCurrencyCode,
	}, nil
}

// ListBookings returns the user's bookings, most recent first.
func (s *bookingService) ListBookings(ctx context.Context, userID string, params dto.ListBookingsParams) (*dto.ListBookingsResponse, error) {
	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &dto.ListBookingsResponse{Bookings: []dto.BookingResponse{}}, nil
		}
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	bookings, nextToken, err := s.bookingRepo.ListBookingsByAccount(ctx, account.AccountID, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}

	return &dto.ListBookingsResponse{
		Bookings:  dto.ToBookingResponses(bookings),
		NextToken: nextToken,
	}, nil
}

// saveWithRetry persists the booking+debit pair, retrying a bounded number of
// times on serialization conflicts.
func (s *bookingService) saveWithRetry(ctx context.Context, booking domain.Booking, entry domain.LedgerEntry) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	var err error
	for attempt := 1; attempt <= maxConflictRetries; attempt++ {
		err = s.bookingRepo.SaveBookingWithDebit(ctx, booking, entry)
		if err == nil || !errors.Is(err, apperrors.ErrConflict) {
			return err
		}
		logger.Warn("Booking write conflicted, retrying", slog.Int("attempt", attempt), slog.String("booking_id", booking.BookingID))
	}
	return err
}
