package fare

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/smarttravel/smart_travel_backend/internal/apperrors"
	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
)

// Per-kilometre rates by transport mode. ModeOther doubles as the explicit
// default rate for unrecognized modes; keep the table total over the enum.
var ratePerKm = map[domain.TransportMode]decimal.Decimal{
	domain.ModeCab:    decimal.NewFromInt(15),
	domain.ModeAuto:   decimal.NewFromInt(12),
	domain.ModeBus:    decimal.NewFromInt(8),
	domain.ModeMetro:  decimal.NewFromInt(10),
	domain.ModeTrain:  decimal.NewFromInt(5),
	domain.ModeFlight: decimal.NewFromInt(25),
	domain.ModeOther:  decimal.NewFromInt(10),
}

// RateFor returns the per-kilometre rate for a transport mode. Modes outside
// the enum get the ModeOther rate.
func RateFor(mode domain.TransportMode) decimal.Decimal {
	if rate, ok := ratePerKm[mode]; ok {
		return rate
	}
	return ratePerKm[domain.ModeOther]
}

// Calculate computes the fare for a trip as rate * distance, with decimal
// arithmetic throughout and no intermediate rounding. It is a pure function;
// the only failure mode is a negative distance.
func Calculate(distanceKm decimal.Decimal, mode domain.TransportMode) (decimal.Decimal, error) {
	if distanceKm.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: distance must be non-negative, got %s", apperrors.ErrValidation, distanceKm)
	}
	return RateFor(mode).Mul(distanceKm), nil
}
