package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

const selectLineItem = `
	SELECT id, invoice_id, product_id, trip_id, description, quantity, unit_price, created_at
	FROM invoice_items`

func (r *Repository) CreateLineItem(ctx context.Context, item entity.LineItem) (entity.LineItem, error) {
	const q = `
	INSERT INTO invoice_items (id, invoice_id, product_id, trip_id, description, quantity, unit_price, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(
		ctx,
		q,
		item.ID,
		item.InvoiceID,
		(zeronull.UUID)(item.ProductID),
		(zeronull.UUID)(item.TripID),
		item.Description,
		item.Quantity,
		item.UnitPrice,
		item.CreatedAt,
	)
	if err != nil {
		return entity.LineItem{}, err
	}

	return item, nil
}

func (r *Repository) LineItem(ctx context.Context, id uuid.UUID) (entity.LineItem, error) {
	q := selectLineItem + " WHERE id = $1"
	return scanLineItem(r.db.QueryRow(ctx, q, id))
}

// LineItems returns the invoice's rows in insertion order.
func (r *Repository) LineItems(ctx context.Context, invoiceID uuid.UUID) ([]entity.LineItem, error) {
	q := selectLineItem + " WHERE invoice_id = $1 ORDER BY created_at, id"

	rows, err := r.db.Query(ctx, q, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entity.LineItem

	for rows.Next() {
		item, err := scanLineItem(rows)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

func (r *Repository) UpdateLineItem(ctx context.Context, item entity.LineItem) error {
	const q = `
	UPDATE invoice_items SET product_id = $1, trip_id = $2, description = $3, quantity = $4, unit_price = $5
	WHERE id = $6`

	result, err := r.db.Exec(
		ctx,
		q,
		(zeronull.UUID)(item.ProductID),
		(zeronull.UUID)(item.TripID),
		item.Description,
		item.Quantity,
		item.UnitPrice,
		item.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteLineItem(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM invoice_items WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanLineItem(row pgx.Row) (item entity.LineItem, err error) {
	err = row.Scan(
		&item.ID,
		&item.InvoiceID,
		(*zeronull.UUID)(&item.ProductID),
		(*zeronull.UUID)(&item.TripID),
		&item.Description,
		&item.Quantity,
		&item.UnitPrice,
		&item.CreatedAt,
	)
	if err != nil {
		return entity.LineItem{}, notFoundOr(err)
	}

	return item, nil
}
