package domain

import (
	"strings"

	ledgerdomain "parcel-ledger/internal/features/ledger/domain"

	"github.com/shopspring/decimal"
)

// Level is the highlight decision for one cell.
type Level string

const (
	LevelNone      Level = ""
	LevelAttention Level = "attention"
	LevelGood      Level = "good"
	LevelWarning   Level = "warning"
	LevelCritical  Level = "critical"
)

// HighCODThreshold is the amount above which COD cells need attention.
var HighCODThreshold = decimal.NewFromInt(5000)

// RowHighlight holds the per-column highlight decisions for a ledger row.
type RowHighlight struct {
	TrackingID string `json:"tracking_id"`
	Row        int    `json:"row"`
	Amount     Level  `json:"amount,omitempty"`
	Status     Level  `json:"status,omitempty"`
	Location   Level  `json:"location,omitempty"`
	Payment    Level  `json:"payment,omitempty"`
}

// Highlight decides how each enriched column of a row should be flagged.
func Highlight(rec ledgerdomain.ShipmentRecord) RowHighlight {
	h := RowHighlight{TrackingID: rec.TrackingID}

	if amount, err := rec.COD(); err == nil && amount.GreaterThan(HighCODThreshold) {
		h.Amount = LevelAttention
	}

	if strings.Contains(strings.ToLower(rec.Status), "delivered") {
		h.Status = LevelGood
	}

	location := strings.ToLower(rec.RecentLocation)
	if strings.Contains(location, "return") || strings.Contains(location, "pending") {
		h.Location = LevelCritical
	}

	payment := strings.ToLower(rec.PaymentReceived.String())
	switch {
	case strings.Contains(payment, "paid"):
		h.Payment = LevelGood
	case strings.Contains(payment, "pending"):
		h.Payment = LevelWarning
	default:
		h.Payment = LevelCritical
	}

	return h
}
