package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// InvoiceSnapshot is the read-only view handed to the document renderer and
// the notifier. Consumers format what is here; they never recompute totals.
type InvoiceSnapshot struct {
	ID           uuid.UUID     `json:"id"`
	Number       string        `json:"number"`
	Kind         InvoiceKind   `json:"kind"`
	Title        string        `json:"title"`
	Status       InvoiceStatus `json:"status"`
	IssueDate    time.Time     `json:"issueDate"`
	DueDate      *time.Time    `json:"dueDate,omitempty"`
	PaymentTerms PaymentTerms  `json:"paymentTerms"`
	Notes        string        `json:"notes,omitempty"`

	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	Total          decimal.Decimal `json:"total"`
	AmountPaid     decimal.Decimal `json:"amountPaid"`
	Outstanding    decimal.Decimal `json:"outstanding"`

	Client   *Client           `json:"client,omitempty"`
	Items    []SnapshotItem    `json:"items"`
	Payments []SnapshotPayment `json:"payments"`
}

type SnapshotItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

type SnapshotPayment struct {
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     time.Time       `json:"paymentDate"`
	Method          PaymentMethod   `json:"method"`
	ReferenceNumber string          `json:"referenceNumber,omitempty"`
}

// NewInvoiceSnapshot freezes the invoice and its children for rendering.
func NewInvoiceSnapshot(inv Invoice, client *Client, items []LineItem, payments []Payment) InvoiceSnapshot {
	s := InvoiceSnapshot{
		ID:             inv.ID,
		Number:         inv.Number,
		Kind:           inv.Kind,
		Title:          inv.Title,
		Status:         inv.Status,
		IssueDate:      inv.IssueDate,
		DueDate:        inv.DueDate,
		PaymentTerms:   inv.PaymentTerms,
		Notes:          inv.Notes,
		TaxRatePercent: inv.TaxRatePercent,
		Subtotal:       inv.Subtotal,
		TaxAmount:      inv.TaxAmount,
		Total:          inv.Total,
		AmountPaid:     inv.AmountPaid,
		Outstanding:    inv.Outstanding,
		Client:         client,
		Items:          make([]SnapshotItem, 0, len(items)),
		Payments:       make([]SnapshotPayment, 0, len(payments)),
	}

	for _, item := range items {
		s.Items = append(s.Items, SnapshotItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total(),
		})
	}

	for _, p := range payments {
		s.Payments = append(s.Payments, SnapshotPayment{
			Amount:          p.Amount,
			PaymentDate:     p.PaymentDate,
			Method:          p.Method,
			ReferenceNumber: p.ReferenceNumber,
		})
	}

	return s
}
