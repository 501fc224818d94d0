package models

import (
	"github.com/shopspring/decimal"
)

// Account represents a wallet row as stored in the accounts table.
type Account struct {
	AccountID    string          `db:"account_id"`
	UserID       string          `db:"user_id"`
	Balance      decimal.Decimal `db:"balance"`
	CurrencyCode string          `db:"currency_code"`
	AuditFields
}
