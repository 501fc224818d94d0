package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smarttravel/smart_travel_backend/internal/apperrors"
	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
	portsrepo "github.com/smarttravel/smart_travel_backend/internal/core/ports/repositories"
	portssvc "github.com/smarttravel/smart_travel_backend/internal/core/ports/services"
	"github.com/smarttravel/smart_travel_backend/internal/dto"
	"github.com/smarttravel/smart_travel_backend/internal/middleware"
	"github.com/smarttravel/smart_travel_backend/internal/utils"
)

// userService handles registration and credential checks.
type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// RegisterUser creates the user and their empty wallet in one transaction.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: passwordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "SELF_REGISTRATION",
			LastUpdatedAt: now,
			LastUpdatedBy: "SELF_REGISTRATION",
		},
	}
	account := domain.Account{
		AccountID:    uuid.NewString(),
		UserID:       user.UserID,
		Balance:      decimal.Zero,
		CurrencyCode: domain.DefaultCurrencyCode,
		AuditFields:  user.AuditFields,
	}

	if err := s.userRepo.SaveUserWithAccount(ctx, user, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Registration with existing email refused")
			return nil, err
		}
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// AuthenticateUser verifies email+password against the stored bcrypt hash.
// Bad email and bad password are indistinguishable to the caller.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}
