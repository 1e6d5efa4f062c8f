package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

const selectClient = `
	SELECT id, name, address_line, state, postal_code, phone_number, email, tax_number, created_at, updated_at
	FROM clients`

func (r *Repository) CreateClient(ctx context.Context, c entity.Client) (entity.Client, error) {
	const q = `
	INSERT INTO clients (id, name, address_line, state, postal_code, phone_number, email, tax_number, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(
		ctx,
		q,
		c.ID,
		c.Name,
		zeronull.Text(c.AddressLine),
		zeronull.Text(c.State),
		zeronull.Text(c.PostalCode),
		zeronull.Text(c.PhoneNumber),
		zeronull.Text(c.Email),
		zeronull.Text(c.TaxNumber),
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return entity.Client{}, err
	}

	return c, nil
}

func (r *Repository) Client(ctx context.Context, id uuid.UUID) (entity.Client, error) {
	q := selectClient + " WHERE id = $1"
	return scanClient(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) Clients(ctx context.Context) ([]entity.Client, error) {
	q := selectClient + " ORDER BY name"

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []entity.Client

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}

		clients = append(clients, c)
	}

	return clients, nil
}

func (r *Repository) UpdateClient(ctx context.Context, c entity.Client) error {
	const q = `
	UPDATE clients SET name = $1, address_line = $2, state = $3, postal_code = $4,
		phone_number = $5, email = $6, tax_number = $7, updated_at = $8
	WHERE id = $9`

	result, err := r.db.Exec(
		ctx,
		q,
		c.Name,
		zeronull.Text(c.AddressLine),
		zeronull.Text(c.State),
		zeronull.Text(c.PostalCode),
		zeronull.Text(c.PhoneNumber),
		zeronull.Text(c.Email),
		zeronull.Text(c.TaxNumber),
		c.UpdatedAt,
		c.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// DeleteClient removes the client; invoices referencing it keep existing with
// a nulled client_id (ON DELETE SET NULL).
func (r *Repository) DeleteClient(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanClient(row pgx.Row) (c entity.Client, err error) {
	err = row.Scan(
		&c.ID,
		&c.Name,
		(*zeronull.Text)(&c.AddressLine),
		(*zeronull.Text)(&c.State),
		(*zeronull.Text)(&c.PostalCode),
		(*zeronull.Text)(&c.PhoneNumber),
		(*zeronull.Text)(&c.Email),
		(*zeronull.Text)(&c.TaxNumber),
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return entity.Client{}, notFoundOr(err)
	}

	return c, nil
}
