package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error) {
	const q = `
	INSERT INTO invoices (
		id,
		number,
		kind,
		title,
		client_id,
		issue_date,
		due_date,
		payment_terms,
		tax_rate_percent,
		subtotal,
		tax_amount,
		total,
		amount_paid,
		outstanding,
		status,
		notes,
		created_by,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		inv.ID,
		inv.Number,
		inv.Kind,
		zeronull.Text(inv.Title),
		(zeronull.UUID)(inv.ClientID),
		inv.IssueDate,
		inv.DueDate,
		inv.PaymentTerms,
		inv.TaxRatePercent,
		inv.Subtotal,
		inv.TaxAmount,
		inv.Total,
		inv.AmountPaid,
		inv.Outstanding,
		inv.Status,
		zeronull.Text(inv.Notes),
		inv.CreatedBy,
		inv.CreatedAt,
		inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.Invoice{}, fmt.Errorf("invoice number %q: %w", inv.Number, entity.ErrDuplicateNumber)
		}

		return entity.Invoice{}, err
	}

	return inv, nil
}

func (r *Repository) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	q := selectInvoice + " WHERE id = $1"
	return scanInvoice(r.db.QueryRow(ctx, q, id))
}

// UpdateInvoice rewrites the user-editable header fields. Derived money
// columns and status stay untouched: those belong to UpdateInvoiceTotals.
func (r *Repository) UpdateInvoice(ctx context.Context, inv entity.Invoice) error {
	const q = `
	UPDATE invoices SET
		number = $1,
		title = $2,
		client_id = $3,
		issue_date = $4,
		due_date = $5,
		payment_terms = $6,
		tax_rate_percent = $7,
		notes = $8,
		updated_at = $9
	WHERE id = $10`

	result, err := r.db.Exec(
		ctx,
		q,
		inv.Number,
		zeronull.Text(inv.Title),
		(zeronull.UUID)(inv.ClientID),
		inv.IssueDate,
		inv.DueDate,
		inv.PaymentTerms,
		inv.TaxRatePercent,
		zeronull.Text(inv.Notes),
		inv.UpdatedAt,
		inv.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number %q: %w", inv.Number, entity.ErrDuplicateNumber)
		}

		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// UpdateInvoiceTotals writes the recomputed money columns and the derived
// status in one statement. This is a direct column write on purpose: it is the
// only way the derived fields change, and it cannot re-trigger a recompute.
func (r *Repository) UpdateInvoiceTotals(
	ctx context.Context,
	id uuid.UUID,
	t entity.Totals,
	status entity.InvoiceStatus,
	updatedAt time.Time,
) error {
	const q = `
	UPDATE invoices SET
		subtotal = $1,
		tax_amount = $2,
		total = $3,
		amount_paid = $4,
		outstanding = $5,
		status = $6,
		updated_at = $7
	WHERE id = $8`

	result, err := r.db.Exec(ctx, q, t.Subtotal, t.TaxAmount, t.Total, t.AmountPaid, t.Outstanding, status, updatedAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) UpdateInvoiceStatus(
	ctx context.Context,
	id uuid.UUID,
	status entity.InvoiceStatus,
	updatedAt time.Time,
) error {
	const q = `UPDATE invoices SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, status, updatedAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// DeleteInvoice removes the invoice; line items and payments go with it via
// ON DELETE CASCADE.
func (r *Repository) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) Invoices(
	ctx context.Context,
	userID uuid.UUID,
	f entity.InvoiceFilter,
) ([]entity.Invoice, int, error) {
	stmt := sq.Select(append(invoiceColumns(), "COUNT(*) OVER() AS total_count")...).
		From("invoices").
		Where(sq.Eq{"created_by": userID}).
		PlaceholderFormat(sq.Dollar)

	stmt = applyInvoiceFilter(stmt, f).
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit).
		OrderBy(fmt.Sprintf("%s %s", f.SortBy, f.OrderBy))

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	invoices := make([]entity.Invoice, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var (
			inv   entity.Invoice
			count int
		)

		err = rows.Scan(append(invoiceFields(&inv), &count)...)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		invoices = append(invoices, inv)
	}

	return invoices, totalCount, nil
}

func applyInvoiceFilter(stmt sq.SelectBuilder, f entity.InvoiceFilter) sq.SelectBuilder {
	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	if f.Kind != nil {
		stmt = stmt.Where(sq.Eq{"kind": *f.Kind})
	}

	if f.ClientID != nil {
		stmt = stmt.Where(sq.Eq{"client_id": *f.ClientID})
	}

	if f.Number != nil {
		stmt = stmt.Where(sq.Eq{"number": *f.Number})
	}

	return stmt
}

// InvoicesByStatus returns every invoice currently in the given status,
// regardless of owner. Used by the background jobs.
func (r *Repository) InvoicesByStatus(ctx context.Context, status entity.InvoiceStatus) ([]entity.Invoice, error) {
	q := selectInvoice + " WHERE status = $1 ORDER BY due_date NULLS LAST"

	rows, err := r.db.Query(ctx, q, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []entity.Invoice

	for rows.Next() {
		var inv entity.Invoice

		err = rows.Scan(invoiceFields(&inv)...)
		if err != nil {
			return nil, err
		}

		invoices = append(invoices, inv)
	}

	return invoices, nil
}

// SetOverdue flips unpaid DRAFT and SENT invoices whose due date has passed to
// OVERDUE. PENDING invoices are left alone: a partial payment suppresses the
// overdue flag.
func (r *Repository) SetOverdue(ctx context.Context, before, updatedAt time.Time) (int64, error) {
	const q = `
	UPDATE invoices SET status = $1, updated_at = $2
	WHERE due_date IS NOT NULL AND due_date < $3 AND status IN ($4, $5)`

	result, err := r.db.Exec(ctx, q,
		entity.InvoiceStatusOverdue, updatedAt, before,
		entity.InvoiceStatusDraft, entity.InvoiceStatusSent,
	)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func notFoundOr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.ErrNotFound
	}

	return err
}
