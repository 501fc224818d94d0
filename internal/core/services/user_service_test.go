package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smarttravel/smart_travel_backend/internal/apperrors"
	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
	"github.com/smarttravel/smart_travel_backend/internal/core/services"
	"github.com/smarttravel/smart_travel_backend/internal/dto"
	"github.com/smarttravel/smart_travel_backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	portssvc "github.com/smarttravel/smart_travel_backend/internal/core/ports/services"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUserWithAccount(ctx context.Context, user domain.User, account domain.Account) error {
	args := m.Called(ctx, user, account)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
	ctx          context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(MockUserRepository)
	s.service = services.NewUserService(s.mockUserRepo)
	s.ctx = context.Background()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestRegisterUserSuccess() {
	req := dto.RegisterUserRequest{
		Name:     "Asha Rao",
		Email:    "Asha@Example.com",
		Password: "sup3r-secret",
	}

	s.mockUserRepo.On("SaveUserWithAccount", s.ctx,
		mock.MatchedBy(func(user domain.User) bool {
			return user.Email == "asha@example.com" &&
				user.PasswordHash != req.Password &&
				user.UserID != ""
		}),
		mock.MatchedBy(func(account domain.Account) bool {
			return account.Balance.Equal(decimal.Zero) &&
				account.CurrencyCode == domain.DefaultCurrencyCode
		}),
	).Return(nil).Once()

	user, err := s.service.RegisterUser(s.ctx, req)

	s.Require().NoError(err)
	s.Require().NotNil(user)
	s.Equal("asha@example.com", user.Email)
	s.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestRegisterUserDuplicateEmail() {
	req := dto.RegisterUserRequest{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "sup3r-secret",
	}
	s.mockUserRepo.On("SaveUserWithAccount", s.ctx, mock.AnythingOfType("domain.User"), mock.AnythingOfType("domain.Account")).
		Return(apperrors.ErrDuplicate).Once()

	user, err := s.service.RegisterUser(s.ctx, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.Nil(user)
}

func (s *UserServiceTestSuite) TestAuthenticateUserSuccess() {
	password := "sup3r-secret"
	hash, err := utils.HashPassword(password)
	s.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "asha@example.com",
		PasswordHash: hash,
	}
	s.mockUserRepo.On("FindUserByEmail", s.ctx, "asha@example.com").Return(stored, nil).Once()

	user, err := s.service.AuthenticateUser(s.ctx, "Asha@Example.com ", password)

	s.Require().NoError(err)
	s.Equal(stored.UserID, user.UserID)
}

func (s *UserServiceTestSuite) TestAuthenticateUserWrongPassword() {
	hash, err := utils.HashPassword("right-password")
	s.Require().NoError(err)

	stored := &domain.User{UserID: uuid.NewString(), PasswordHash: hash}
	s.mockUserRepo.On("FindUserByEmail", s.ctx, "asha@example.com").Return(stored, nil).Once()

	user, err := s.service.AuthenticateUser(s.ctx, "asha@example.com", "wrong-password")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.Nil(user)
}

func (s *UserServiceTestSuite) TestAuthenticateUserUnknownEmail() {
	s.mockUserRepo.On("FindUserByEmail", s.ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	user, err := s.service.AuthenticateUser(s.ctx, "ghost@example.com", "whatever-password")

	// Unknown email reads the same as a wrong password
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.Nil(user)
}
