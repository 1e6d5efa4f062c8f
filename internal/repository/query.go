package repository

import (
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

func invoiceColumns() []string {
	return []string{
		"id",
		"number",
		"kind",
		"title",
		"client_id",
		"issue_date",
		"due_date",
		"payment_terms",
		"tax_rate_percent",
		"subtotal",
		"tax_amount",
		"total",
		"amount_paid",
		"outstanding",
		"status",
		"notes",
		"created_by",
		"created_at",
		"updated_at",
	}
}

var selectInvoice = "SELECT " + strings.Join(invoiceColumns(), ", ") + " FROM invoices"

// invoiceFields returns scan destinations in invoiceColumns order.
func invoiceFields(inv *entity.Invoice) []any {
	return []any{
		&inv.ID,
		&inv.Number,
		&inv.Kind,
		(*zeronull.Text)(&inv.Title),
		(*zeronull.UUID)(&inv.ClientID),
		&inv.IssueDate,
		&inv.DueDate,
		&inv.PaymentTerms,
		&inv.TaxRatePercent,
		&inv.Subtotal,
		&inv.TaxAmount,
		&inv.Total,
		&inv.AmountPaid,
		&inv.Outstanding,
		&inv.Status,
		(*zeronull.Text)(&inv.Notes),
		&inv.CreatedBy,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	}
}

func scanInvoice(row pgx.Row) (inv entity.Invoice, err error) {
	err = row.Scan(invoiceFields(&inv)...)
	if err != nil {
		return entity.Invoice{}, notFoundOr(err)
	}

	return inv, nil
}
