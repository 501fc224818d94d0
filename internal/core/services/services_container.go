package services

import (
	portsrepo "github.com/smarttravel/smart_travel_backend/internal/core/ports/repositories"
	portssvc "github.com/smarttravel/smart_travel_backend/internal/core/ports/services"
	"github.com/smarttravel/smart_travel_backend/pkg/config"
)

// NewServiceContainer creates the service container with properly initialized
// dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, distanceSvc portssvc.DistanceSvcFacade) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.Wallet = NewWalletService(repos.AccountRepo, repos.LedgerRepo)
	container.Booking = NewBookingService(repos.BookingRepo, repos.AccountRepo, distanceSvc)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade    = (*userService)(nil)
	_ portssvc.WalletSvcFacade  = (*walletService)(nil)
	_ portssvc.BookingSvcFacade = (*bookingService)(nil)
)
