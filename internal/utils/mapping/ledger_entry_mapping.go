package mapping

import (
	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
	"github.com/smarttravel/smart_travel_backend/internal/models"
)

// ToModelLedgerEntry converts a domain.LedgerEntry for DB storage.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:   d.EntryID,
		AccountID: d.AccountID,
		BookingID: d.BookingID,
		Amount:    d.Amount,
		Method:    d.Method,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainLedgerEntry converts a models.LedgerEntry from the DB.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:   m.EntryID,
		AccountID: m.AccountID,
		BookingID: m.BookingID,
		Amount:    m.Amount,
		Method:    m.Method,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainLedgerEntrySlice converts a slice of ledger entry rows.
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
