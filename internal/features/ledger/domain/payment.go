package domain

import (
	"encoding/json"
	"strings"
)

// PaymentPlaceholder marks a row whose payment was queried without a settlement.
const PaymentPlaceholder = "-"

// PaymentKind is the tri-state of the Payment Received column.
type PaymentKind string

const (
	// PaymentUnset means the row has never been reconciled.
	PaymentUnset PaymentKind = "UNSET"
	// PaymentPending means the courier had no settlement for the row ("-").
	PaymentPending PaymentKind = "PENDING"
	// PaymentSettled means the courier returned a payment status, usually with a date.
	PaymentSettled PaymentKind = "SETTLED"
)

// PaymentState is the typed form of the Payment Received column.
// The stored text is preserved exactly; String returns it unchanged.
type PaymentState struct {
	Kind   PaymentKind
	Status string
	Date   string
	raw    string
}

// ParsePaymentState reads a stored Payment Received value.
func ParsePaymentState(raw string) PaymentState {
	trimmed := strings.TrimSpace(raw)
	switch trimmed {
	case "":
		return PaymentState{Kind: PaymentUnset, raw: raw}
	case PaymentPlaceholder:
		return PaymentState{Kind: PaymentPending, raw: raw}
	}
	status, date, _ := strings.Cut(trimmed, " ")
	return PaymentState{
		Kind:   PaymentSettled,
		Status: status,
		Date:   strings.TrimSpace(date),
		raw:    raw,
	}
}

// NewPaymentState builds the value written after a payment lookup.
// A nil status yields the placeholder dash.
func NewPaymentState(status *string, date string) PaymentState {
	if status == nil {
		return PaymentState{Kind: PaymentPending, raw: PaymentPlaceholder}
	}
	raw := strings.TrimSpace(*status + " " + date)
	if raw == "" {
		return PaymentState{Kind: PaymentUnset}
	}
	return ParsePaymentState(raw)
}

// String returns the stored serialization.
func (p PaymentState) String() string {
	return p.raw
}

// IsPaid reports whether the stored value is exactly "paid" (any case), the terminal state.
func (p PaymentState) IsPaid() bool {
	return strings.EqualFold(strings.TrimSpace(p.raw), "paid")
}

// IsReconciled reports whether a settlement has been recorded.
// Empty and placeholder values still count towards pending payments.
func (p PaymentState) IsReconciled() bool {
	return p.Kind == PaymentSettled
}

// MarshalJSON renders the stored text.
func (p PaymentState) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.raw)
}

// UnmarshalJSON parses the stored text.
func (p *PaymentState) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = ParsePaymentState(raw)
	return nil
}
