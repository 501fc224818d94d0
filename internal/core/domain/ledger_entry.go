package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Well-known payment method tags. The method column is free-form; these are
// the values the backend itself writes.
const (
	MethodDemo   = "DEMO"   // demo top-up
	MethodWallet = "WALLET" // booking debit
)

// LedgerEntry is an immutable, signed monetary ledger record for an account.
// Positive amounts are credits (deposits), negative amounts are debits
// (payments). Entries are append-only; they are never updated or deleted.
type LedgerEntry struct {
	EntryID   string          `json:"entryID"`   // Primary Key (UUID)
	AccountID string          `json:"accountID"` // FK -> accounts.account_id (Not Null)
	BookingID *string         `json:"bookingID"` // FK -> bookings.booking_id; nil for deposits
	Amount    decimal.Decimal `json:"amount"`    // Signed: positive credit, negative debit
	Method    string          `json:"method"`    // e.g. "DEMO", "WALLET"
	CreatedAt time.Time       `json:"createdAt"`
}

// IsCredit reports whether the entry adds money to the wallet.
func (e LedgerEntry) IsCredit() bool {
	return e.Amount.IsPositive()
}
