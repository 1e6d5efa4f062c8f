package repository

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

const selectTruck = `
	SELECT id, plate_number, model, manufacturer, year_of_manufacture, capacity_tons, status,
		driver_name, driver_phone, notes, created_at, updated_at
	FROM trucks`

func (r *Repository) CreateTruck(ctx context.Context, t entity.Truck) (entity.Truck, error) {
	const q = `
	INSERT INTO trucks (
		id, plate_number, model, manufacturer, year_of_manufacture, capacity_tons, status,
		driver_name, driver_phone, notes, created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(
		ctx,
		q,
		t.ID,
		t.PlateNumber,
		t.Model,
		zeronull.Text(t.Manufacturer),
		t.YearOfManufacture,
		t.CapacityTons,
		t.Status,
		zeronull.Text(t.DriverName),
		zeronull.Text(t.DriverPhone),
		zeronull.Text(t.Notes),
		t.CreatedAt,
		t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.Truck{}, fmt.Errorf("plate number %q: %w", t.PlateNumber, entity.ErrDuplicateNumber)
		}

		return entity.Truck{}, err
	}

	return t, nil
}

func (r *Repository) Truck(ctx context.Context, id uuid.UUID) (entity.Truck, error) {
	q := selectTruck + " WHERE id = $1"
	return scanTruck(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) Trucks(ctx context.Context) ([]entity.Truck, error) {
	q := selectTruck + " ORDER BY plate_number"

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trucks []entity.Truck

	for rows.Next() {
		t, err := scanTruck(rows)
		if err != nil {
			return nil, err
		}

		trucks = append(trucks, t)
	}

	return trucks, nil
}

func (r *Repository) UpdateTruck(ctx context.Context, t entity.Truck) error {
	const q = `
	UPDATE trucks SET plate_number = $1, model = $2, manufacturer = $3, year_of_manufacture = $4,
		capacity_tons = $5, status = $6, driver_name = $7, driver_phone = $8, notes = $9, updated_at = $10
	WHERE id = $11`

	result, err := r.db.Exec(
		ctx,
		q,
		t.PlateNumber,
		t.Model,
		zeronull.Text(t.Manufacturer),
		t.YearOfManufacture,
		t.CapacityTons,
		t.Status,
		zeronull.Text(t.DriverName),
		zeronull.Text(t.DriverPhone),
		zeronull.Text(t.Notes),
		t.UpdatedAt,
		t.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteTruck(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM trucks WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanTruck(row pgx.Row) (t entity.Truck, err error) {
	err = row.Scan(
		&t.ID,
		&t.PlateNumber,
		&t.Model,
		(*zeronull.Text)(&t.Manufacturer),
		&t.YearOfManufacture,
		&t.CapacityTons,
		&t.Status,
		(*zeronull.Text)(&t.DriverName),
		(*zeronull.Text)(&t.DriverPhone),
		(*zeronull.Text)(&t.Notes),
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return entity.Truck{}, notFoundOr(err)
	}

	return t, nil
}
