package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// DefaultTaxRatePercent is the VAT rate applied to new invoices unless overridden.
var DefaultTaxRatePercent = decimal.RequireFromString("7.5")

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusSent      InvoiceStatus = "SENT"
	InvoiceStatusPending   InvoiceStatus = "PENDING"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPending,
		InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return nil
	default:
		return fmt.Errorf("%w: unknown invoice status %q", ErrInvalidArgument, s)
	}
}

type InvoiceKind string

const (
	// InvoiceKindStandard bills products or ad-hoc services as line items.
	InvoiceKindStandard InvoiceKind = "STANDARD"
	// InvoiceKindManifest bills completed trips/containers as line items.
	InvoiceKindManifest InvoiceKind = "MANIFEST"
)

func (k InvoiceKind) String() string {
	return string(k)
}

func (k InvoiceKind) Validate() error {
	switch k {
	case InvoiceKindStandard, InvoiceKindManifest:
		return nil
	default:
		return fmt.Errorf("%w: unknown invoice kind %q", ErrInvalidArgument, k)
	}
}

type PaymentTerms string

const (
	PaymentTerms14Days PaymentTerms = "14 days"
	PaymentTerms30Days PaymentTerms = "30 days"
	PaymentTerms60Days PaymentTerms = "60 days"
)

func (t PaymentTerms) Validate() error {
	switch t {
	case PaymentTerms14Days, PaymentTerms30Days, PaymentTerms60Days:
		return nil
	default:
		return fmt.Errorf("%w: unknown payment terms %q", ErrInvalidArgument, t)
	}
}

// Days returns the number of days the client has to settle the invoice.
func (t PaymentTerms) Days() int {
	switch t {
	case PaymentTerms30Days:
		return 30
	case PaymentTerms60Days:
		return 60
	default:
		return 14
	}
}

type Invoice struct {
	ID     uuid.UUID
	Number string // User-assigned, unique per user, e.g. INV-2026-001.
	Kind   InvoiceKind
	Title  string

	ClientID uuid.UUID // uuid.Nil when no client is attached or the client was deleted.

	IssueDate    time.Time
	DueDate      *time.Time
	PaymentTerms PaymentTerms

	// Derived money columns. Written only by the totals recompute,
	// never edited directly.
	TaxRatePercent decimal.Decimal
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
	AmountPaid     decimal.Decimal
	Outstanding    decimal.Decimal

	Status InvoiceStatus
	Notes  string

	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

type InvoiceFilter struct {
	Status   *InvoiceStatus
	Kind     *InvoiceKind
	ClientID *uuid.UUID
	Number   *string
	Page     uint64
	Limit    uint64
	SortBy   InvoiceSortCol
	OrderBy  OrderByCol
}

type InvoiceSortCol string

func (c InvoiceSortCol) String() string {
	return string(c)
}

const (
	SortByNumber    InvoiceSortCol = "number"
	SortByIssueDate InvoiceSortCol = "issue_date"
	SortByDueDate   InvoiceSortCol = "due_date"
	SortByTotal     InvoiceSortCol = "total"
	SortByCreatedAt InvoiceSortCol = "created_at"
)

func (c InvoiceSortCol) IsValid() bool {
	switch c {
	case SortByNumber, SortByIssueDate, SortByDueDate, SortByTotal, SortByCreatedAt:
		return true
	}

	return false
}

type OrderByCol string

func (o OrderByCol) String() string {
	return string(o)
}

const (
	DESC OrderByCol = "desc"
	ASC  OrderByCol = "asc"
)

func (o OrderByCol) IsValid() bool {
	switch o {
	case DESC, ASC:
		return true
	}

	return false
}
