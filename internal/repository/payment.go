package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

const selectPayment = `
	SELECT id, invoice_id, amount, payment_date, payment_method, reference_number, notes, created_at
	FROM payments`

func (r *Repository) CreatePayment(ctx context.Context, p entity.Payment) (entity.Payment, error) {
	const q = `
	INSERT INTO payments (id, invoice_id, amount, payment_date, payment_method, reference_number, notes, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(
		ctx,
		q,
		p.ID,
		p.InvoiceID,
		p.Amount,
		p.PaymentDate,
		p.Method,
		zeronull.Text(p.ReferenceNumber),
		zeronull.Text(p.Notes),
		p.CreatedAt,
	)
	if err != nil {
		return entity.Payment{}, err
	}

	return p, nil
}

func (r *Repository) Payment(ctx context.Context, id uuid.UUID) (entity.Payment, error) {
	q := selectPayment + " WHERE id = $1"
	return scanPayment(r.db.QueryRow(ctx, q, id))
}

// Payments returns the invoice's payments ordered by payment date.
func (r *Repository) Payments(ctx context.Context, invoiceID uuid.UUID) ([]entity.Payment, error) {
	q := selectPayment + " WHERE invoice_id = $1 ORDER BY payment_date, created_at"

	rows, err := r.db.Query(ctx, q, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []entity.Payment

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}

		payments = append(payments, p)
	}

	return payments, nil
}

func (r *Repository) UpdatePayment(ctx context.Context, p entity.Payment) error {
	const q = `
	UPDATE payments SET amount = $1, payment_date = $2, payment_method = $3, reference_number = $4, notes = $5
	WHERE id = $6`

	result, err := r.db.Exec(
		ctx,
		q,
		p.Amount,
		p.PaymentDate,
		p.Method,
		zeronull.Text(p.ReferenceNumber),
		zeronull.Text(p.Notes),
		p.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeletePayment(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanPayment(row pgx.Row) (p entity.Payment, err error) {
	err = row.Scan(
		&p.ID,
		&p.InvoiceID,
		&p.Amount,
		&p.PaymentDate,
		&p.Method,
		(*zeronull.Text)(&p.ReferenceNumber),
		(*zeronull.Text)(&p.Notes),
		&p.CreatedAt,
	)
	if err != nil {
		return entity.Payment{}, notFoundOr(err)
	}

	return p, nil
}
