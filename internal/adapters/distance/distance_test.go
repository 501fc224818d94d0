package distance_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/smarttravel/smart_travel_backend/internal/adapters/distance"
	"github.com/smarttravel/smart_travel_backend/internal/apperrors"
	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceIsDeterministic(t *testing.T) {
	p := distance.NewStubProvider()
	ctx := context.Background()

	first, err := p.Distance(ctx, "Indiranagar", "Airport", domain.ModeCab)
	require.NoError(t, err)
	second, err := p.Distance(ctx, "Indiranagar", "Airport", domain.ModeCab)
	require.NoError(t, err)

	assert.True(t, first.Equal(second), "same route should yield the same distance")
}

func TestDistanceIgnoresCaseAndWhitespace(t *testing.T) {
	p := distance.NewStubProvider()
	ctx := context.Background()

	a, err := p.Distance(ctx, "Indiranagar", "Airport", domain.ModeCab)
	require.NoError(t, err)
	b, err := p.Distance(ctx, "  indiranagar ", "AIRPORT", domain.ModeBus)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}

func TestDistanceIsBounded(t *testing.T) {
	p := distance.NewStubProvider()
	ctx := context.Background()

	routes := [][2]string{
		{"A", "B"},
		{"Koramangala", "Whitefield"},
		{"Majestic", "Electronic City"},
		{"x", "y"},
	}
	for _, route := range routes {
		d, err := p.Distance(ctx, route[0], route[1], domain.ModeCab)
		require.NoError(t, err)
		assert.True(t, d.GreaterThanOrEqual(decimal.NewFromInt(2)), "distance %s below lower bound", d)
		assert.True(t, d.LessThan(decimal.NewFromInt(50)), "distance %s above upper bound", d)
	}
}

func TestDistanceRejectsEmptyEndpoints(t *testing.T) {
	p := distance.NewStubProvider()
	ctx := context.Background()

	_, err := p.Distance(ctx, "", "Airport", domain.ModeCab)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = p.Distance(ctx, "Indiranagar", "   ", domain.ModeCab)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
