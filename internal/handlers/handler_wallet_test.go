package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smarttravel/smart_travel_backend/internal/apperrors"
	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
	"github.com/smarttravel/smart_travel_backend/internal/dto"
	"github.com/smarttravel/smart_travel_backend/internal/handlers"
	"github.com/smarttravel/smart_travel_backend/internal/middleware"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	portssvc "github.com/smarttravel/smart_travel_backend/internal/core/ports/services"
)

// --- Mock WalletService ---
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockWalletService) Deposit(ctx context.Context, userID string, amount decimal.Decimal, method string) (*domain.LedgerEntry, decimal.Decimal, error) {
	args := m.Called(ctx, userID, amount, method)
	var entry *domain.LedgerEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.LedgerEntry)
	}
	return entry, args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockWalletService) HasSufficientBalance(ctx context.Context, userID string, amount decimal.Decimal) (bool, error) {
	args := m.Called(ctx, userID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockWalletService) Debit(ctx context.Context, userID string, amount decimal.Decimal, bookingID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, userID, amount, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockWalletService) ListEntries(ctx context.Context, userID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.WalletSvcFacade = (*MockWalletService)(nil)

// --- Mock BookingService ---
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) QuoteFare(ctx context.Context, req dto.FareQuoteRequest) (*dto.FareQuoteResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FareQuoteResponse), args.Error(1)
}

func (m *MockBookingService) BookRide(ctx context.Context, userID string, req dto.BookRideRequest) (*dto.BookRideResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BookRideResponse), args.Error(1)
}

func (m *MockBookingService) ListBookings(ctx context.Context, userID string, params dto.ListBookingsParams) (*dto.ListBookingsResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListBookingsResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.BookingSvcFacade = (*MockBookingService)(nil)

// --- Test Suite ---
type WalletHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockWalletService  *MockWalletService
	mockBookingService *MockBookingService
	jwtSecret          string
	userID             string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *WalletHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "stb-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *WalletHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.mockWalletService = new(MockWalletService)
	suite.mockBookingService = new(MockBookingService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterWalletRoutes(v1, suite.mockWalletService, suite.mockBookingService)
	handlers.RegisterBookingRoutes(v1, suite.mockBookingService)
}

func TestWalletHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}

func (suite *WalletHandlerTestSuite) doRequest(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		suite.Require().NoError(err)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *WalletHandlerTestSuite) TestGetBalance() {
	suite.mockWalletService.On("GetBalance", mock.Anything, suite.userID).
		Return(decimal.NewFromInt(350), nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/wallet/balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.BalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(suite.userID, res.UserID)
	suite.True(res.Balance.Equal(decimal.NewFromInt(350)))
	suite.Equal(domain.DefaultCurrencyCode, res.Currency)
}

func (suite *WalletHandlerTestSuite) TestGetBalanceRequiresAuth() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallet/balance", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *WalletHandlerTestSuite) TestDeposit() {
	amount := decimal.NewFromInt(500)
	entry := &domain.LedgerEntry{
		EntryID:   uuid.NewString(),
		Amount:    amount,
		Method:    domain.MethodDemo,
		CreatedAt: time.Now().UTC(),
	}
	suite.mockWalletService.On("Deposit", mock.Anything, suite.userID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(amount)
	}), "").Return(entry, decimal.NewFromInt(500), nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/wallet/deposit", gin.H{"amount": "500"})

	suite.Equal(http.StatusOK, w.Code)
	var res dto.DepositResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.NewBalance.Equal(decimal.NewFromInt(500)))
	suite.Equal(entry.EntryID, res.Entry.EntryID)
}

func (suite *WalletHandlerTestSuite) TestDepositInvalidAmount() {
	suite.mockWalletService.On("Deposit", mock.Anything, suite.userID, mock.AnythingOfType("decimal.Decimal"), "").
		Return(nil, decimal.Zero, apperrors.ErrValidation).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/wallet/deposit", gin.H{"amount": "-10"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *WalletHandlerTestSuite) TestBookRideInsufficientBalance() {
	suite.mockBookingService.On("BookRide", mock.Anything, suite.userID, mock.AnythingOfType("dto.BookRideRequest")).
		Return(nil, apperrors.NewInsufficientBalance(decimal.NewFromInt(150), decimal.NewFromInt(20))).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/bookings", gin.H{
		"passengerName": "Asha Rao",
		"mode":          "cab",
		"origin":        "Indiranagar",
		"destination":   "Airport",
		"travelAt":      time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})

	suite.Equal(http.StatusPaymentRequired, w.Code)
	var res dto.InsufficientBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.Required.Equal(decimal.NewFromInt(150)))
	suite.True(res.Available.Equal(decimal.NewFromInt(20)))
}

func (suite *WalletHandlerTestSuite) TestBookRideUnknownModeRejectedAtBinding() {
	w := suite.doRequest(http.MethodPost, "/api/v1/bookings", gin.H{
		"passengerName": "Asha Rao",
		"mode":          "hovercraft",
		"origin":        "A",
		"destination":   "B",
		"travelAt":      time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBookingService.AssertNotCalled(suite.T(), "BookRide", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WalletHandlerTestSuite) TestBookRideMissingFields() {
	w := suite.doRequest(http.MethodPost, "/api/v1/bookings", gin.H{"mode": "cab"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBookingService.AssertNotCalled(suite.T(), "BookRide", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WalletHandlerTestSuite) TestQuoteFare() {
	quote := &dto.FareQuoteResponse{
		Origin:      "A",
		Destination: "B",
		Mode:        domain.ModeBus,
		DistanceKm:  decimal.NewFromInt(10),
		Fare:        decimal.NewFromInt(80),
		Currency:    domain.DefaultCurrencyCode,
	}
	suite.mockBookingService.On("QuoteFare", mock.Anything, mock.AnythingOfType("dto.FareQuoteRequest")).
		Return(quote, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/wallet/quote", gin.H{
		"origin":      "A",
		"destination": "B",
		"mode":        "bus",
	})

	suite.Equal(http.StatusOK, w.Code)
	var res dto.FareQuoteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.Fare.Equal(decimal.NewFromInt(80)))
}

func (suite *WalletHandlerTestSuite) TestListEntries() {
	res := &dto.ListEntriesResponse{
		Entries: []dto.LedgerEntryResponse{
			{EntryID: uuid.NewString(), Amount: decimal.NewFromInt(500), Method: domain.MethodDemo, CreatedAt: time.Now().UTC()},
		},
	}
	suite.mockWalletService.On("ListEntries", mock.Anything, suite.userID, mock.AnythingOfType("dto.ListEntriesParams")).
		Return(res, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/wallet/entries?limit=10", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.ListEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got.Entries, 1)
}
