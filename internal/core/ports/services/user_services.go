package services

import (
	"context"
	"time"

	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
	"github.com/smarttravel/smart_travel_backend/internal/dto"
)

// UserSvcFacade handles registration and credential checks.
type UserSvcFacade interface {
	// RegisterUser creates a user and their wallet account in one
	// transaction. Fails with apperrors.ErrDuplicate if the email is taken.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// AuthenticateUser verifies email+password. Fails with
	// apperrors.ErrUnauthorized on bad credentials.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// TokenSvcFacade issues access tokens for authenticated users.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
