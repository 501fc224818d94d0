package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
)

// BookRideRequest defines the data needed to book and pay for a trip.
// The strongly-typed schema replaces the legacy free-form key/value payload.
type BookRideRequest struct {
	PassengerName string    `json:"passengerName" binding:"required"`
	Mode          string    `json:"mode" binding:"required,transportmode"`
	Origin        string    `json:"origin" binding:"required"`
	Destination   string    `json:"destination" binding:"required"`
	TravelAt      time.Time `json:"travelAt" binding:"required"`
}

// BookingResponse is the wire form of a booking.
type BookingResponse struct {
	BookingID     string               `json:"bookingID"`
	PassengerName string               `json:"passengerName"`
	Mode          domain.TransportMode `json:"mode"`
	Origin        string               `json:"origin"`
	Destination   string               `json:"destination"`
	TravelAt      time.Time            `json:"travelAt"`
	Fare          decimal.Decimal      `json:"fare"`
	Status        domain.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ToBookingResponse converts a domain.Booking to its response DTO.
func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:     b.BookingID,
		PassengerName: b.PassengerName,
		Mode:          b.TransportMode,
		Origin:        b.Origin,
		Destination:   b.Destination,
		TravelAt:      b.TravelAt,
		Fare:          b.Fare,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
}

// ToBookingResponses converts a slice of bookings.
func ToBookingResponses(bookings []domain.Booking) []BookingResponse {
	res := make([]BookingResponse, len(bookings))
	for i := range bookings {
		res[i] = ToBookingResponse(&bookings[i])
	}
	return res
}

// BookRideResponse reports a successful book-and-pay.
type BookRideResponse struct {
	Booking    BookingResponse     `json:"booking"`
	Payment    LedgerEntryResponse `json:"payment"`
	NewBalance decimal.Decimal     `json:"newBalance"`
	Currency   string              `json:"currency"`
}

// ListBookingsParams defines query parameters for listing bookings.
type ListBookingsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListBookingsResponse wraps a page of bookings, most recent first.
type ListBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// InsufficientBalanceResponse is the structured error payload returned when a
// debit or booking is refused for lack of funds.
type InsufficientBalanceResponse struct {
	Error     string          `json:"error"`
	Required  decimal.Decimal `json:"required"`
	Available decimal.Decimal `json:"available"`
}
