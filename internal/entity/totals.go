package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Totals is the derived financial state of an invoice. All five numbers are
// produced together by ComputeTotals so they can never drift apart.
type Totals struct {
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	Total       decimal.Decimal
	AmountPaid  decimal.Decimal
	Outstanding decimal.Decimal
}

//nolint:mnd
var oneHundred = decimal.New(100, 0)

// ComputeTotals recomputes invoice totals from the current line items and payments.
//
// Subtotal is the sum of quantity * unit price over all items. The tax amount is
// subtotal * taxRatePercent / 100 rounded half away from zero to 2 decimal places.
// Outstanding is total minus the payment sum, floored at zero: an overpayment is
// reported in AmountPaid but never as a negative balance.
//
// Empty item or payment slices yield zero values. The function is pure, so
// calling it twice with the same inputs returns identical decimals.
func ComputeTotals(taxRatePercent decimal.Decimal, items []LineItem, payments []Payment) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total())
	}

	taxAmount := decimal.Zero
	if taxRatePercent.IsPositive() {
		taxAmount = subtotal.Mul(taxRatePercent).Div(oneHundred).Round(2)
	}

	total := subtotal.Add(taxAmount)

	amountPaid := decimal.Zero
	for _, p := range payments {
		amountPaid = amountPaid.Add(p.Amount)
	}

	outstanding := total.Sub(amountPaid)
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}

	return Totals{
		Subtotal:    subtotal,
		TaxAmount:   taxAmount,
		Total:       total,
		AmountPaid:  amountPaid,
		Outstanding: outstanding,
	}
}

// DeriveStatus maps the recomputed totals and due date onto an invoice status.
//
// Priority order: fully paid beats everything, so a late but settled invoice is
// never OVERDUE; any positive payment reads PENDING; an unpaid invoice past its
// due date reads OVERDUE unless it was cancelled. Otherwise the user-controlled
// status (DRAFT, SENT, CANCELLED) is kept. PAID, PENDING and OVERDUE are derived
// states: when the numbers no longer justify them (say the only payment was
// deleted) the invoice falls back to DRAFT rather than keeping a stale flag.
func DeriveStatus(current InvoiceStatus, t Totals, dueDate *time.Time, today time.Time) InvoiceStatus {
	switch {
	case t.Outstanding.Sign() <= 0 && t.Total.IsPositive():
		return InvoiceStatusPaid

	case t.AmountPaid.IsPositive():
		return InvoiceStatusPending

	case dueDate != nil && dueDate.Before(startOfDay(today)) && current != InvoiceStatusCancelled:
		return InvoiceStatusOverdue
	}

	switch current {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusCancelled:
		return current
	default:
		return InvoiceStatusDraft
	}
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
