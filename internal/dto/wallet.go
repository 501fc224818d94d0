package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
)

// BalanceResponse is the wallet balance payload.
type BalanceResponse struct {
	UserID   string          `json:"userID"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// DepositRequest defines the data needed to add money to the wallet.
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Method string          `json:"method"` // Optional, defaults to DEMO
}

// DepositResponse confirms a deposit and reports the new balance.
type DepositResponse struct {
	Entry      LedgerEntryResponse `json:"entry"`
	NewBalance decimal.Decimal     `json:"newBalance"`
	Currency   string              `json:"currency"`
}

// LedgerEntryResponse is the wire form of a ledger entry.
type LedgerEntryResponse struct {
	EntryID   string          `json:"entryID"`
	BookingID *string         `json:"bookingID,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its response DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:   e.EntryID,
		BookingID: e.BookingID,
		Amount:    e.Amount,
		Method:    e.Method,
		CreatedAt: e.CreatedAt,
	}
}

// ToLedgerEntryResponses converts a slice of ledger entries.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToLedgerEntryResponse(&entries[i])
	}
	return res
}

// ListEntriesParams defines query parameters for listing ledger entries.
type ListEntriesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListEntriesResponse wraps a page of ledger entries, most recent first.
type ListEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// FareQuoteRequest asks for a fare estimate for a route.
type FareQuoteRequest struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Mode        string `json:"mode"` // Optional, defaults to cab; unknown modes quote at the default rate
}

// FareQuoteResponse reports the resolved distance and priced fare.
type FareQuoteResponse struct {
	Origin      string               `json:"origin"`
	Destination string               `json:"destination"`
	Mode        domain.TransportMode `json:"mode"`
	DistanceKm  decimal.Decimal      `json:"distanceKm"`
	Fare        decimal.Decimal      `json:"fare"`
	Currency    string               `json:"currency"`
}
