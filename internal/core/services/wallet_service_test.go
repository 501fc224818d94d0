package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smarttravel/smart_travel_backend/internal/apperrors"
	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
	"github.com/smarttravel/smart_travel_backend/internal/core/services"
	"github.com/smarttravel/smart_travel_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	portssvc "github.com/smarttravel/smart_travel_backend/internal/core/ports/services"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindAccountByUserID(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) RecordEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

// --- Test Suite ---
type WalletServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockLedgerRepo  *MockLedgerRepository
	service         portssvc.WalletSvcFacade
	ctx             context.Context
	account         *domain.Account
}

func (s *WalletServiceTestSuite) SetupTest() {
	s.mockAccountRepo = new(MockAccountRepository)
	s.mockLedgerRepo = new(MockLedgerRepository)
	s.service = services.NewWalletService(s.mockAccountRepo, s.mockLedgerRepo)
	s.ctx = context.Background()
	s.account = &domain.Account{
		AccountID:    uuid.NewString(),
		UserID:       uuid.NewString(),
		Balance:      decimal.NewFromInt(500),
		CurrencyCode: domain.DefaultCurrencyCode,
	}
}

func TestWalletServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}

func (s *WalletServiceTestSuite) TestGetBalanceSuccess() {
	s.mockAccountRepo.On("FindAccountByUserID", s.ctx, s.account.UserID).Return(s.account, nil).Once()

	balance, err := s.service.GetBalance(s.ctx, s.account.UserID)

	s.Require().NoError(err)
	s.True(balance.Equal(decimal.NewFromInt(500)))
	s.mockAccountRepo.AssertExpectations(s.T())
}

func (s *WalletServiceTestSuite) TestGetBalanceMissingWalletReadsZero() {
	s.mockAccountRepo.On("FindAccountByUserID", s.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	balance, err := s.service.GetBalance(s.ctx, "ghost")

	s.Require().NoError(err)
	s.True(balance.IsZero())
	s.mockAccountRepo.AssertExpectations(s.T())
}

func (s *WalletServiceTestSuite) TestDepositSuccess() {
	amount := decimal.NewFromInt(200)
	s.mockAccountRepo.On("FindAccountByUserID", s.ctx, s.account.UserID).Return(s.account, nil).Once()
	s.mockLedgerRepo.On("RecordEntry", s.ctx, mock.MatchedBy(func(entry domain.LedgerEntry) bool {
		return entry.AccountID == s.account.AccountID &&
			entry.Amount.Equal(amount) &&
			entry.Method == domain.MethodDemo &&
			entry.BookingID == nil
	})).Return(nil).Once()

	entry, newBalance, err := s.service.Deposit(s.ctx, s.account.UserID, amount, "")

	s.Require().NoError(err)
	s.Require().NotNil(entry)
	s.True(entry.Amount.Equal(amount))
	s.True(newBalance.Equal(decimal.NewFromInt(700)))
	s.mockLedgerRepo.AssertExpectations(s.T())
}

func (s *WalletServiceTestSuite) TestDepositRejectsNonPositiveAmount() {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-50)} {
		entry, _, err := s.service.Deposit(s.ctx, s.account.UserID, amount, domain.MethodDemo)

		s.Require().Error(err)
		s.ErrorIs(err, apperrors.ErrValidation)
		s.Nil(entry)
	}
	s.mockLedgerRepo.AssertNotCalled(s.T(), "RecordEntry", mock.Anything, mock.Anything)
}

func (s *WalletServiceTestSuite) TestDepositUnregisteredUserFails() {
	s.mockAccountRepo.On("FindAccountByUserID", s.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	entry, _, err := s.service.Deposit(s.ctx, "ghost", decimal.NewFromInt(100), domain.MethodDemo)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(entry)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "RecordEntry", mock.Anything, mock.Anything)
}

func (s *WalletServiceTestSuite) TestDebitSuccess() {
	bookingID := uuid.NewString()
	amount := decimal.NewFromInt(150)
	s.mockAccountRepo.On("FindAccountByUserID", s.ctx, s.account.UserID).Return(s.account, nil).Once()
	s.mockLedgerRepo.On("RecordEntry", s.ctx, mock.MatchedBy(func(entry domain.LedgerEntry) bool {
		return entry.Amount.Equal(amount.Neg()) &&
			entry.Method == domain.MethodWallet &&
			entry.BookingID != nil && *entry.BookingID == bookingID
	})).Return(nil).Once()

	entry, err := s.service.Debit(s.ctx, s.account.UserID, amount, bookingID)

	s.Require().NoError(err)
	s.Require().NotNil(entry)
	s.True(entry.Amount.IsNegative())
	s.mockLedgerRepo.AssertExpectations(s.T())
}

func (s *WalletServiceTestSuite) TestDebitInsufficientBalance() {
	bookingID := uuid.NewString()
	amount := decimal.NewFromInt(900)
	s.mockAccountRepo.On("FindAccountByUserID", s.ctx, s.account.UserID).Return(s.account, nil).Once()
	s.mockLedgerRepo.On("RecordEntry", s.ctx, mock.AnythingOfType("domain.LedgerEntry")).
		Return(apperrors.NewInsufficientBalance(amount, s.account.Balance)).Once()

	entry, err := s.service.Debit(s.ctx, s.account.UserID, amount, bookingID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInsufficientBalance)
	s.Nil(entry)

	var insufficientErr *apperrors.InsufficientBalanceError
	s.Require().ErrorAs(err, &insufficientErr)
	s.True(insufficientErr.Required.Equal(amount))
	s.True(insufficientErr.Available.Equal(s.account.Balance))
}

func (s *WalletServiceTestSuite) TestDebitRequiresBookingReference() {
	entry, err := s.service.Debit(s.ctx, s.account.UserID, decimal.NewFromInt(10), "")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(entry)
}

func (s *WalletServiceTestSuite) TestDebitRetriesOnConflict() {
	bookingID := uuid.NewString()
	amount := decimal.NewFromInt(100)
	s.mockAccountRepo.On("FindAccountByUserID", s.ctx, s.account.UserID).Return(s.account, nil).Once()
	s.mockLedgerRepo.On("RecordEntry", s.ctx, mock.AnythingOfType("domain.LedgerEntry")).
		Return(apperrors.ErrConflict).Twice()
	s.mockLedgerRepo.On("RecordEntry", s.ctx, mock.AnythingOfType("domain.LedgerEntry")).
		Return(nil).Once()

	entry, err := s.service.Debit(s.ctx, s.account.UserID, amount, bookingID)

	s.Require().NoError(err)
	s.Require().NotNil(entry)
	s.mockLedgerRepo.AssertNumberOfCalls(s.T(), "RecordEntry", 3)
}

func (s *WalletServiceTestSuite) TestDebitGivesUpAfterRepeatedConflicts() {
	s.mockAccountRepo.On("FindAccountByUserID", s.ctx, s.account.UserID).Return(s.account, nil).Once()
	s.mockLedgerRepo.On("RecordEntry", s.ctx, mock.AnythingOfType("domain.LedgerEntry")).
		Return(apperrors.ErrConflict).Times(3)

	entry, err := s.service.Debit(s.ctx, s.account.UserID, decimal.NewFromInt(10), uuid.NewString())

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.Nil(entry)
	s.mockLedgerRepo.AssertNumberOfCalls(s.T(), "RecordEntry", 3)
}

func (s *WalletServiceTestSuite) TestHasSufficientBalance() {
	s.mockAccountRepo.On("FindAccountByUserID", s.ctx, s.account.UserID).Return(s.account, nil).Twice()

	ok, err := s.service.HasSufficientBalance(s.ctx, s.account.UserID, decimal.NewFromInt(500))
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.service.HasSufficientBalance(s.ctx, s.account.UserID, decimal.NewFromInt(501))
	s.Require().NoError(err)
	s.False(ok)
}

func (s *WalletServiceTestSuite) TestListEntries() {
	now := time.Now().UTC()
	entries := []domain.LedgerEntry{
		{EntryID: uuid.NewString(), AccountID: s.account.AccountID, Amount: decimal.NewFromInt(-150), Method: domain.MethodWallet, CreatedAt: now},
		{EntryID: uuid.NewString(), AccountID: s.account.AccountID, Amount: decimal.NewFromInt(500), Method: domain.MethodDemo, CreatedAt: now.Add(-time.Hour)},
	}
	s.mockAccountRepo.On("FindAccountByUserID", s.ctx, s.account.UserID).Return(s.account, nil).Once()
	s.mockLedgerRepo.On("ListEntriesByAccount", s.ctx, s.account.AccountID, 20, (*string)(nil)).
		Return(entries, nil, nil).Once()

	res, err := s.service.ListEntries(s.ctx, s.account.UserID, dto.ListEntriesParams{})

	s.Require().NoError(err)
	s.Len(res.Entries, 2)
	s.Nil(res.NextToken)
	s.mockLedgerRepo.AssertExpectations(s.T())
}

func (s *WalletServiceTestSuite) TestListEntriesMissingWalletIsEmpty() {
	s.mockAccountRepo.On("FindAccountByUserID", s.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	res, err := s.service.ListEntries(s.ctx, "ghost", dto.ListEntriesParams{})

	s.Require().NoError(err)
	s.Empty(res.Entries)
	s.Nil(res.NextToken)
}
