package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
)

// DistanceSvcFacade resolves the travel distance for a route. Implemented by
// an external mapping collaborator; the in-repo adapter is a deterministic
// stub.
type DistanceSvcFacade interface {
	// Distance returns the route length in kilometres, always non-negative.
	Distance(ctx context.Context, origin, destination string, mode domain.TransportMode) (decimal.Decimal, error)
}
