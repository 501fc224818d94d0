package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus indicates the state of a booking.
type BookingStatus string

const (
	// BookingConfirmed is the only persisted status: a booking row is written
	// in the same database transaction as its debit, so a booking never
	// exists without a successful payment.
	BookingConfirmed BookingStatus = "CONFIRMED"
)

// Booking ties an account to a trip and its fare. Immutable once paid.
type Booking struct {
	BookingID     string          `json:"bookingID"` // Primary Key (UUID)
	AccountID     string          `json:"accountID"` // FK -> accounts.account_id (Not Null)
	PassengerName string          `json:"passengerName"`
	TransportMode TransportMode   `json:"transportMode"`
	Origin        string          `json:"origin"`
	Destination   string          `json:"destination"`
	TravelAt      time.Time       `json:"travelAt"` // Scheduled departure
	Fare          decimal.Decimal `json:"fare"`
	Status        BookingStatus   `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}
