package domain

import "github.com/shopspring/decimal"

// Summary holds the payment aggregates of a ledger. Return-group rows are excluded.
type Summary struct {
	// Total is the COD amount of all counted rows.
	Total decimal.Decimal `json:"total"`
	// Pending is the COD amount not yet reconciled.
	Pending decimal.Decimal `json:"pending"`
	// DeliveredPending is the unreconciled COD amount of delivered parcels.
	DeliveredPending decimal.Decimal `json:"delivered_pending"`
}

// SummaryReport is the summary plus the count of placeholder payments.
type SummaryReport struct {
	Summary
	PendingCount int `json:"pending_count"`
}
