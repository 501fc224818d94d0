package mapping

import (
	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
	"github.com/smarttravel/smart_travel_backend/internal/models"
)

// ToModelBooking converts a domain.Booking for DB storage.
func ToModelBooking(d domain.Booking) models.Booking {
	return models.Booking{
		BookingID:     d.BookingID,
		AccountID:     d.AccountID,
		PassengerName: d.PassengerName,
		TransportMode: string(d.TransportMode),
		Origin:        d.Origin,
		Destination:   d.Destination,
		TravelAt:      d.TravelAt,
		Fare:          d.Fare,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainBooking converts a models.Booking from the DB.
func ToDomainBooking(m models.Booking) domain.Booking {
	return domain.Booking{
		BookingID:     m.BookingID,
		AccountID:     m.AccountID,
		PassengerName: m.PassengerName,
		TransportMode: domain.TransportMode(m.TransportMode),
		Origin:        m.Origin,
		Destination:   m.Destination,
		TravelAt:      m.TravelAt,
		Fare:          m.Fare,
		Status:        domain.BookingStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainBookingSlice converts a slice of booking rows.
func ToDomainBookingSlice(ms []models.Booking) []domain.Booking {
	ds := make([]domain.Booking, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBooking(m)
	}
	return ds
}
