package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry represents a row in the append-only ledger_entries table.
// Rows are inserted once and never updated or deleted.
type LedgerEntry struct {
	EntryID   string          `db:"entry_id"`
	AccountID string          `db:"account_id"`
	BookingID *string         `db:"booking_id"` // NULL for deposits
	Amount    decimal.Decimal `db:"amount"`     // Signed
	Method    string          `db:"method"`
	CreatedAt time.Time       `db:"created_at"`
}
