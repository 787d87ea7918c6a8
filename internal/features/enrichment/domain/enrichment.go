package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects which ledger fields a sync run refreshes.
type Mode string

const (
	// ModeTracking refreshes status, recent location and booking date.
	ModeTracking Mode = "tracking"
	// ModePayment refreshes the payment received column.
	ModePayment Mode = "payment"
)

var (
	// ErrNoRowsToProcess is returned when the ledger has a header but no data rows.
	ErrNoRowsToProcess = errors.New("no rows to process")
	// ErrRowEnrichmentFailed marks a per-row failure; the run continues.
	ErrRowEnrichmentFailed = errors.New("row enrichment failed")
	// ErrBatchEnrichmentFailed marks a per-batch failure; the run continues.
	ErrBatchEnrichmentFailed = errors.New("batch enrichment failed")
	// ErrPersistenceFailed is returned when the enriched ledger cannot be saved.
	ErrPersistenceFailed = errors.New("failed to persist ledger")
	// ErrInvalidMode is returned for an unsupported sync mode.
	ErrInvalidMode = errors.New("invalid sync mode")
)

// ParseMode converts a string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeTracking, ModePayment:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// TrackingResult is the courier's view of one parcel.
// A zero value means the courier had no data; it is not an error.
type TrackingResult struct {
	Status      string `json:"status"`
	Checkpoint  string `json:"checkpoint"`
	BookingDate string `json:"booking_date"`
}

// IsEmpty reports whether the courier returned nothing usable.
func (r TrackingResult) IsEmpty() bool {
	return r.Status == "" && r.Checkpoint == "" && r.BookingDate == ""
}

// PaymentResult is the courier's settlement record for one parcel.
type PaymentResult struct {
	// Status is nil when the courier reports no payment status.
	Status *string `json:"status"`
	Date   string  `json:"date"`
}
