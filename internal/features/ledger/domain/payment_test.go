package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentState(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		kind       PaymentKind
		status     string
		date       string
		paid       bool
		reconciled bool
	}{
		{name: "Empty", raw: "", kind: PaymentUnset},
		{name: "Placeholder", raw: "-", kind: PaymentPending},
		{name: "PaidMarker", raw: "paid", kind: PaymentSettled, status: "paid", paid: true, reconciled: true},
		{name: "PaidUpper", raw: "PAID", kind: PaymentSettled, status: "PAID", paid: true, reconciled: true},
		{name: "Settlement", raw: "Paid 2024-01-05", kind: PaymentSettled, status: "Paid", date: "2024-01-05", reconciled: true},
		{name: "PendingSettlement", raw: "Pending 2024-01-05", kind: PaymentSettled, status: "Pending", date: "2024-01-05", reconciled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePaymentState(tt.raw)
			assert.Equal(t, tt.kind, p.Kind)
			assert.Equal(t, tt.status, p.Status)
			assert.Equal(t, tt.date, p.Date)
			assert.Equal(t, tt.paid, p.IsPaid())
			assert.Equal(t, tt.reconciled, p.IsReconciled())
			assert.Equal(t, tt.raw, p.String())
		})
	}
}

func TestNewPaymentState(t *testing.T) {
	paid := "Paid"
	blank := ""

	assert.Equal(t, "-", NewPaymentState(nil, "2024-01-05").String())
	assert.Equal(t, "Paid 2024-01-05", NewPaymentState(&paid, "2024-01-05").String())
	assert.Equal(t, "Paid", NewPaymentState(&paid, "").String())
	assert.Equal(t, "2024-01-05", NewPaymentState(&blank, "2024-01-05").String())
	assert.Equal(t, PaymentUnset, NewPaymentState(&blank, "").Kind)
}

func TestPaymentState_JSON(t *testing.T) {
	data, err := json.Marshal(ParsePaymentState("Paid 2024-01-05"))
	require.NoError(t, err)
	assert.JSONEq(t, `"Paid 2024-01-05"`, string(data))

	var p PaymentState
	require.NoError(t, json.Unmarshal([]byte(`"-"`), &p))
	assert.Equal(t, PaymentPending, p.Kind)
}
