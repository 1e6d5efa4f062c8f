package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

// A snapshot handed to the document renderer must survive serialization with
// every derived money field intact.
func TestInvoiceSnapshot_RoundTrip(t *testing.T) {
	t.Parallel()

	due := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	inv := entity.Invoice{
		ID:             uuid.Must(uuid.NewV4()),
		Number:         "INV-2026-014",
		Kind:           entity.InvoiceKindStandard,
		Status:         entity.InvoiceStatusPending,
		IssueDate:      time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		DueDate:        &due,
		PaymentTerms:   entity.PaymentTerms30Days,
		TaxRatePercent: d("7.5"),
		Subtotal:       d("250.00"),
		TaxAmount:      d("18.75"),
		Total:          d("268.75"),
		AmountPaid:     d("100.00"),
		Outstanding:    d("168.75"),
	}

	lineItems := items([2]string{"2", "100.00"}, [2]string{"1", "50.00"})
	paid := payments("100.00")

	snapshot := entity.NewInvoiceSnapshot(inv, &entity.Client{Name: "Dangote Cement"}, lineItems, paid)

	b, err := json.Marshal(snapshot)
	require.NoError(t, err)

	var got entity.InvoiceSnapshot
	require.NoError(t, json.Unmarshal(b, &got))

	requireDecimalEqual(t, "7.5", got.TaxRatePercent, "tax rate")
	requireDecimalEqual(t, "250.00", got.Subtotal, "subtotal")
	requireDecimalEqual(t, "18.75", got.TaxAmount, "tax amount")
	requireDecimalEqual(t, "268.75", got.Total, "total")
	requireDecimalEqual(t, "100.00", got.AmountPaid, "amount paid")
	requireDecimalEqual(t, "168.75", got.Outstanding, "outstanding")

	require.Equal(t, inv.Number, got.Number)
	require.Len(t, got.Items, 2)
	requireDecimalEqual(t, "200.00", got.Items[0].Total, "first item total")
	require.Len(t, got.Payments, 1)
}
