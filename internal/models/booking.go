package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking represents a row in the bookings table.
type Booking struct {
	BookingID     string          `db:"booking_id"`
	AccountID     string          `db:"account_id"`
	PassengerName string          `db:"passenger_name"`
	TransportMode string          `db:"transport_mode"`
	Origin        string          `db:"origin"`
	Destination   string          `db:"destination"`
	TravelAt      time.Time       `db:"travel_at"`
	Fare          decimal.Decimal `db:"fare"`
	Status        string          `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
}
