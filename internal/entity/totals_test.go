package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func items(rows ...[2]string) []entity.LineItem {
	out := make([]entity.LineItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.LineItem{
			Description: "haulage",
			Quantity:    d(r[0]),
			UnitPrice:   d(r[1]),
		})
	}

	return out
}

func payments(amounts ...string) []entity.Payment {
	out := make([]entity.Payment, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, entity.Payment{
			Amount: d(a),
			Method: entity.PaymentMethodBankTransfer,
		})
	}

	return out
}

func TestComputeTotals(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name            string
		taxRate         string
		items           []entity.LineItem
		payments        []entity.Payment
		wantSubtotal    string
		wantTaxAmount   string
		wantTotal       string
		wantAmountPaid  string
		wantOutstanding string
	}{
		{
			name:            "empty invoice",
			taxRate:         "7.5",
			wantSubtotal:    "0",
			wantTaxAmount:   "0",
			wantTotal:       "0",
			wantAmountPaid:  "0",
			wantOutstanding: "0",
		},
		{
			name:            "two items no payments",
			taxRate:         "7.5",
			items:           items([2]string{"2", "100.00"}, [2]string{"1", "50.00"}),
			wantSubtotal:    "250.00",
			wantTaxAmount:   "18.75",
			wantTotal:       "268.75",
			wantAmountPaid:  "0",
			wantOutstanding: "268.75",
		},
		{
			name:            "full payment clears outstanding",
			taxRate:         "7.5",
			items:           items([2]string{"2", "100.00"}, [2]string{"1", "50.00"}),
			payments:        payments("268.75"),
			wantSubtotal:    "250.00",
			wantTaxAmount:   "18.75",
			wantTotal:       "268.75",
			wantAmountPaid:  "268.75",
			wantOutstanding: "0",
		},
		{
			name:            "overpayment is stored but outstanding clamps to zero",
			taxRate:         "0",
			items:           items([2]string{"1", "100.00"}),
			payments:        payments("100.00", "50.00"),
			wantSubtotal:    "100.00",
			wantTaxAmount:   "0",
			wantTotal:       "100.00",
			wantAmountPaid:  "150.00",
			wantOutstanding: "0",
		},
		{
			name:            "partial payment",
			taxRate:         "0",
			items:           items([2]string{"4", "25.00"}),
			payments:        payments("30.00"),
			wantSubtotal:    "100.00",
			wantTaxAmount:   "0",
			wantTotal:       "100.00",
			wantAmountPaid:  "30.00",
			wantOutstanding: "70.00",
		},
		{
			name:            "tax rounds half away from zero",
			taxRate:         "7.5",
			items:           items([2]string{"1", "0.10"}),
			wantSubtotal:    "0.10",
			wantTaxAmount:   "0.01", // 0.0075 -> 0.01
			wantTotal:       "0.11",
			wantAmountPaid:  "0",
			wantOutstanding: "0.11",
		},
		{
			name:            "fractional quantity",
			taxRate:         "7.5",
			items:           items([2]string{"2.5", "33.33"}),
			wantSubtotal:    "83.325",
			wantTaxAmount:   "6.25", // 6.249375 -> 6.25
			wantTotal:       "89.575",
			wantAmountPaid:  "0",
			wantOutstanding: "89.575",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := entity.ComputeTotals(d(tt.taxRate), tt.items, tt.payments)

			requireDecimalEqual(t, tt.wantSubtotal, got.Subtotal, "subtotal")
			requireDecimalEqual(t, tt.wantTaxAmount, got.TaxAmount, "tax amount")
			requireDecimalEqual(t, tt.wantTotal, got.Total, "total")
			requireDecimalEqual(t, tt.wantAmountPaid, got.AmountPaid, "amount paid")
			requireDecimalEqual(t, tt.wantOutstanding, got.Outstanding, "outstanding")
		})
	}
}

func TestComputeTotals_Idempotent(t *testing.T) {
	t.Parallel()

	lineItems := items([2]string{"3", "199.99"}, [2]string{"0.5", "1200.00"})
	paid := payments("500.00")

	first := entity.ComputeTotals(d("7.5"), lineItems, paid)
	second := entity.ComputeTotals(d("7.5"), lineItems, paid)

	require.True(t, first.Subtotal.Equal(second.Subtotal))
	require.True(t, first.TaxAmount.Equal(second.TaxAmount))
	require.True(t, first.Total.Equal(second.Total))
	require.True(t, first.AmountPaid.Equal(second.AmountPaid))
	require.True(t, first.Outstanding.Equal(second.Outstanding))
}

func TestDeriveStatus(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
	pastDue := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	futureDue := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	totals := func(total, paid string) entity.Totals {
		outstanding := d(total).Sub(d(paid))
		if outstanding.IsNegative() {
			outstanding = decimal.Zero
		}

		return entity.Totals{
			Total:       d(total),
			AmountPaid:  d(paid),
			Outstanding: outstanding,
		}
	}

	for _, tt := range []struct {
		name    string
		current entity.InvoiceStatus
		totals  entity.Totals
		dueDate *time.Time
		want    entity.InvoiceStatus
	}{
		{
			name:    "fully paid",
			current: entity.InvoiceStatusSent,
			totals:  totals("268.75", "268.75"),
			want:    entity.InvoiceStatusPaid,
		},
		{
			name:    "fully paid past due is never overdue",
			current: entity.InvoiceStatusOverdue,
			totals:  totals("268.75", "268.75"),
			dueDate: &pastDue,
			want:    entity.InvoiceStatusPaid,
		},
		{
			name:    "overpaid",
			current: entity.InvoiceStatusSent,
			totals:  totals("100.00", "150.00"),
			want:    entity.InvoiceStatusPaid,
		},
		{
			name:    "partially paid",
			current: entity.InvoiceStatusSent,
			totals:  totals("100.00", "30.00"),
			want:    entity.InvoiceStatusPending,
		},
		{
			name:    "partial payment suppresses overdue",
			current: entity.InvoiceStatusSent,
			totals:  totals("100.00", "30.00"),
			dueDate: &pastDue,
			want:    entity.InvoiceStatusPending,
		},
		{
			name:    "unpaid past due",
			current: entity.InvoiceStatusSent,
			totals:  totals("100.00", "0"),
			dueDate: &pastDue,
			want:    entity.InvoiceStatusOverdue,
		},
		{
			name:    "unpaid before due keeps explicit status",
			current: entity.InvoiceStatusSent,
			totals:  totals("100.00", "0"),
			dueDate: &futureDue,
			want:    entity.InvoiceStatusSent,
		},
		{
			name:    "cancelled is not flipped to overdue",
			current: entity.InvoiceStatusCancelled,
			totals:  totals("100.00", "0"),
			dueDate: &pastDue,
			want:    entity.InvoiceStatusCancelled,
		},
		{
			name:    "empty invoice with zero total is not paid",
			current: entity.InvoiceStatusDraft,
			totals:  totals("0", "0"),
			want:    entity.InvoiceStatusDraft,
		},
		{
			name:    "paid reverts to draft after payment deletion",
			current: entity.InvoiceStatusPaid,
			totals:  totals("100.00", "0"),
			want:    entity.InvoiceStatusDraft,
		},
		{
			name:    "pending reverts to overdue after payment deletion past due",
			current: entity.InvoiceStatusPending,
			totals:  totals("100.00", "0"),
			dueDate: &pastDue,
			want:    entity.InvoiceStatusOverdue,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := entity.DeriveStatus(tt.current, tt.totals, tt.dueDate, today)
			require.Equal(t, tt.want, got)
		})
	}
}

func requireDecimalEqual(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()

	if !got.Equal(d(want)) {
		t.Errorf("%s = %s, want %s", field, got, want)
	}
}
