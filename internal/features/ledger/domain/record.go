package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BookingDateLayout is the single textual format booking dates are written in.
const BookingDateLayout = "02/01/2006"

// bookingDateLayouts are the formats accepted from the courier and from older ledgers.
var bookingDateLayouts = []string{
	BookingDateLayout,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"02-01-2006",
	"02/01/2006 15:04",
	"Jan 2, 2006",
	"02 Jan 2006",
}

// ShipmentRecord is the named view of one ledger row.
type ShipmentRecord struct {
	TrackingID      string       `json:"tracking_id"`
	Destination     string       `json:"destination"`
	ShipperName     string       `json:"shipper_name"`
	ConsigneeName   string       `json:"consignee_name"`
	OrderID         string       `json:"order_id"`
	CODAmount       string       `json:"cod_amount"`
	Status          string       `json:"status"`
	RecentLocation  string       `json:"recent_location"`
	BookingDate     string       `json:"booking_date"`
	PaymentReceived PaymentState `json:"payment_received"`
}

// IsDelivered reports whether the courier status is the terminal "delivered" state.
func (r ShipmentRecord) IsDelivered() bool {
	return strings.EqualFold(r.Status, "delivered")
}

// COD parses the cash-on-delivery amount. Thousands separators are tolerated.
func (r ShipmentRecord) COD() (decimal.Decimal, error) {
	return ParseAmount(r.CODAmount)
}

// ParseAmount parses a ledger amount such as "6000", "6,000" or "1250.50".
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return amount, nil
}

// ParseBookingDate parses a booking date in any accepted layout.
func ParseBookingDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range bookingDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeBookingDate rewrites a booking date as DD/MM/YYYY.
// Values that cannot be parsed are kept verbatim (trimmed).
func NormalizeBookingDate(raw string) string {
	if t, ok := ParseBookingDate(raw); ok {
		return t.Format(BookingDateLayout)
	}
	return strings.TrimSpace(raw)
}
