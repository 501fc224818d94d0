package domain

import (
	"github.com/shopspring/decimal"
)

// Account is a user's wallet: a stable identifier plus the current balance.
// The balance is only ever mutated together with an appended LedgerEntry, so
// at all times balance == sum of the account's ledger entry amounts.
type Account struct {
	AccountID    string          `json:"accountID"`    // Primary Key (UUID)
	UserID       string          `json:"userID"`       // FK -> users.user_id (unique, one wallet per user)
	Balance      decimal.Decimal `json:"balance"`      // Non-negative invariant
	CurrencyCode string          `json:"currencyCode"` // Fixed to DefaultCurrencyCode for this deployment
	AuditFields
}
