package repository

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

const selectTrip = `
	SELECT id, truck_id, trip_number, origin, destination, distance_km, start_date, end_date,
		status, cargo_description, cargo_weight_tons, revenue, notes, created_at, updated_at
	FROM trips`

func (r *Repository) CreateTrip(ctx context.Context, t entity.Trip) (entity.Trip, error) {
	const q = `
	INSERT INTO trips (
		id, truck_id, trip_number, origin, destination, distance_km, start_date, end_date,
		status, cargo_description, cargo_weight_tons, revenue, notes, created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.Exec(
		ctx,
		q,
		t.ID,
		t.TruckID,
		t.TripNumber,
		t.Origin,
		t.Destination,
		t.DistanceKM,
		t.StartDate,
		t.EndDate,
		t.Status,
		zeronull.Text(t.CargoDescription),
		t.CargoWeightTons,
		t.Revenue,
		zeronull.Text(t.Notes),
		t.CreatedAt,
		t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.Trip{}, fmt.Errorf("trip number %q: %w", t.TripNumber, entity.ErrDuplicateNumber)
		}

		return entity.Trip{}, err
	}

	return t, nil
}

func (r *Repository) Trip(ctx context.Context, id uuid.UUID) (entity.Trip, error) {
	q := selectTrip + " WHERE id = $1"
	return scanTrip(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) Trips(ctx context.Context) ([]entity.Trip, error) {
	q := selectTrip + " ORDER BY start_date DESC"

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []entity.Trip

	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}

		trips = append(trips, t)
	}

	return trips, nil
}

func (r *Repository) UpdateTrip(ctx context.Context, t entity.Trip) error {
	const q = `
	UPDATE trips SET truck_id = $1, trip_number = $2, origin = $3, destination = $4, distance_km = $5,
		start_date = $6, end_date = $7, status = $8, cargo_description = $9, cargo_weight_tons = $10,
		revenue = $11, notes = $12, updated_at = $13
	WHERE id = $14`

	result, err := r.db.Exec(
		ctx,
		q,
		t.TruckID,
		t.TripNumber,
		t.Origin,
		t.Destination,
		t.DistanceKM,
		t.StartDate,
		t.EndDate,
		t.Status,
		zeronull.Text(t.CargoDescription),
		t.CargoWeightTons,
		t.Revenue,
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

// DeleteTrip removes the trip and its expenses (ON DELETE CASCADE).
func (r *Repository) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanTrip(row pgx.Row) (t entity.Trip, err error) {
	err = row.Scan(
		&t.ID,
		&t.TruckID,
		&t.TripNumber,
		&t.Origin,
		&t.Destination,
		&t.DistanceKM,
		&t.StartDate,
		&t.EndDate,
		&t.Status,
		(*zeronull.Text)(&t.CargoDescription),
		&t.CargoWeightTons,
		&t.Revenue,
		(*zeronull.Text)(&t.Notes),
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return entity.Trip{}, notFoundOr(err)
	}

	return t, nil
}

const selectTripExpense = `
	SELECT id, trip_id, expense_type, description, amount, expense_date, receipt_number, notes, created_at
	FROM trip_expenses`

func (r *Repository) CreateTripExpense(ctx context.Context, e entity.TripExpense) (entity.TripExpense, error) {
	const q = `
	INSERT INTO trip_expenses (id, trip_id, expense_type, description, amount, expense_date, receipt_number, notes, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(
		ctx,
		q,
		e.ID,
		e.TripID,
		e.Type,
		e.Description,
		e.Amount,
		e.Date,
		zeronull.Text(e.ReceiptNumber),
		zeronull.Text(e.Notes),
		e.CreatedAt,
	)
	if err != nil {
		return entity.TripExpense{}, err
	}

	return e, nil
}

func (r *Repository) TripExpense(ctx context.Context, id uuid.UUID) (entity.TripExpense, error) {
	q := selectTripExpense + " WHERE id = $1"
	return scanTripExpense(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) TripExpenses(ctx context.Context, tripID uuid.UUID) ([]entity.TripExpense, error) {
	q := selectTripExpense + " WHERE trip_id = $1 ORDER BY expense_date, created_at"

	rows, err := r.db.Query(ctx, q, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []entity.TripExpense

	for rows.Next() {
		e, err := scanTripExpense(rows)
		if err != nil {
			return nil, err
		}

		expenses = append(expenses, e)
	}

	return expenses, nil
}

func (r *Repository) DeleteTripExpense(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM trip_expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanTripExpense(row pgx.Row) (e entity.TripExpense, err error) {
	err = row.Scan(
		&e.ID,
		&e.TripID,
		&e.Type,
		&e.Description,
		&e.Amount,
		&e.Date,
		(*zeronull.Text)(&e.ReceiptNumber),
		(*zeronull.Text)(&e.Notes),
		&e.CreatedAt,
	)
	if err != nil {
		return entity.TripExpense{}, notFoundOr(err)
	}

	return e, nil
}
