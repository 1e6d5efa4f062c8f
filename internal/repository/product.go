package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

const selectProduct = `
	SELECT id, title, description, quantity, price, currency, created_at, updated_at
	FROM products`

func (r *Repository) CreateProduct(ctx context.Context, p entity.Product) (entity.Product, error) {
	const q = `
	INSERT INTO products (id, title, description, quantity, price, currency, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(
		ctx,
		q,
		p.ID,
		p.Title,
		zeronull.Text(p.Description),
		p.Quantity,
		p.Price,
		p.Currency,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return entity.Product{}, err
	}

	return p, nil
}

func (r *Repository) Product(ctx context.Context, id uuid.UUID) (entity.Product, error) {
	q := selectProduct + " WHERE id = $1"
	return scanProduct(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) Products(ctx context.Context) ([]entity.Product, error) {
	q := selectProduct + " ORDER BY title"

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []entity.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}

		products = append(products, p)
	}

	return products, nil
}

func (r *Repository) UpdateProduct(ctx context.Context, p entity.Product) error {
	const q = `
	UPDATE products SET title = $1, description = $2, quantity = $3, price = $4, currency = $5, updated_at = $6
	WHERE id = $7`

	result, err := r.db.Exec(
		ctx,
		q,
		p.Title,
		zeronull.Text(p.Description),
		p.Quantity,
		p.Price,
		p.Currency,
		p.UpdatedAt,
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

func (r *Repository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanProduct(row pgx.Row) (p entity.Product, err error) {
	err = row.Scan(
		&p.ID,
		&p.Title,
		(*zeronull.Text)(&p.Description),
		&p.Quantity,
		&p.Price,
		&p.Currency,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return entity.Product{}, notFoundOr(err)
	}

	return p, nil
}
