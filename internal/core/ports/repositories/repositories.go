package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// layer. Constructed once at startup from the database pool.
type RepositoryProvider struct {
	AccountRepo AccountRepository
	LedgerRepo  LedgerRepository
	BookingRepo BookingRepository
	UserRepo    UserRepository
}
