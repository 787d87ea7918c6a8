package service

import "parcel-ledger/internal/features/ledger/domain"

// identifierSlot is where enrichment columns are inserted: right after CN #.
const identifierSlot = 1

// EnsureColumns adds the enrichment columns the ledger is missing and reports
// whether the header changed.
//
// Status and Recent Location are each inserted at position 1, so a ledger
// lacking both ends up as "CN #, Recent Location, Status, ...". Existing
// ledgers depend on that layout. COD Amount, Booking Date and Payment
// Received are appended in that order.
func EnsureColumns(l *domain.Ledger) bool {
	changed := false

	for _, name := range []string{domain.ColumnStatus, domain.ColumnRecentLocation} {
		if !l.HasColumn(name) {
			l.InsertColumn(identifierSlot, name)
			changed = true
		}
	}

	for _, name := range []string{domain.ColumnCODAmount, domain.ColumnBookingDate, domain.ColumnPaymentReceived} {
		if !l.HasColumn(name) {
			l.AppendColumn(name)
			changed = true
		}
	}

	return changed
}
