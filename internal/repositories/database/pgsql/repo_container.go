package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/smarttravel/smart_travel_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider constructs all pgsql-backed repositories over one
// shared connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(pool),
		LedgerRepo:  newPgxLedgerRepository(pool),
		BookingRepo: newPgxBookingRepository(pool),
		UserRepo:    newPgxUserRepository(pool),
	}
}
