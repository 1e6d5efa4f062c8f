package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

func (s *Service) CreateTruck(ctx context.Context, truck entity.Truck) (entity.Truck, error) {
	if truck.PlateNumber == "" {
		return entity.Truck{}, fmt.Errorf("%w: empty plate number", entity.ErrInvalidArgument)
	}

	if truck.Status == "" {
		truck.Status = entity.TruckStatusActive
	}

	err := truck.Status.Validate()
	if err != nil {
		return entity.Truck{}, err
	}

	now := time.Now()
	truck.ID = uuid.Must(uuid.NewV4())
	truck.CreatedAt = now
	truck.UpdatedAt = now

	truck, err = s.repo.CreateTruck(ctx, truck)
	if err != nil {
		return entity.Truck{}, fmt.Errorf("create truck: %w", err)
	}

	return truck, nil
}

func (s *Service) Truck(ctx context.Context, id uuid.UUID) (entity.Truck, error) {
	truck, err := s.repo.Truck(ctx, id)
	if err != nil {
		return entity.Truck{}, fmt.Errorf("get truck %q: %w", id, err)
	}

	return truck, nil
}

func (s *Service) Trucks(ctx context.Context) ([]entity.Truck, error) {
	return s.repo.Trucks(ctx)
}

func (s *Service) UpdateTruck(ctx context.Context, truck entity.Truck) (entity.Truck, error) {
	err := truck.Status.Validate()
	if err != nil {
		return entity.Truck{}, err
	}

	truck.UpdatedAt = time.Now()

	err = s.repo.UpdateTruck(ctx, truck)
	if err != nil {
		return entity.Truck{}, fmt.Errorf("update truck %q: %w", truck.PlateNumber, err)
	}

	return truck, nil
}

func (s *Service) DeleteTruck(ctx context.Context, id uuid.UUID) error {
	err := s.repo.DeleteTruck(ctx, id)
	if err != nil {
		return fmt.Errorf("delete truck %q: %w", id, err)
	}

	return nil
}

func (s *Service) CreateTrip(ctx context.Context, trip entity.Trip) (entity.Trip, error) {
	if trip.TripNumber == "" {
		return entity.Trip{}, fmt.Errorf("%w: empty trip number", entity.ErrInvalidArgument)
	}

	if trip.Revenue.IsNegative() {
		return entity.Trip{}, fmt.Errorf("%w: negative trip revenue %s", entity.ErrInvalidArgument, trip.Revenue)
	}

	if trip.Status == "" {
		trip.Status = entity.TripStatusPlanned
	}

	err := trip.Status.Validate()
	if err != nil {
		return entity.Trip{}, err
	}

	if trip.TruckID != uuid.Nil {
		_, err = s.repo.Truck(ctx, trip.TruckID)
		if err != nil {
			return entity.Trip{}, fmt.Errorf("get truck %q: %w", trip.TruckID, err)
		}
	}

	now := time.Now()
	trip.ID = uuid.Must(uuid.NewV4())
	trip.CreatedAt = now
	trip.UpdatedAt = now

	trip, err = s.repo.CreateTrip(ctx, trip)
	if err != nil {
		return entity.Trip{}, fmt.Errorf("create trip: %w", err)
	}

	return trip, nil
}

func (s *Service) Trip(ctx context.Context, id uuid.UUID) (entity.Trip, error) {
	trip, err := s.repo.Trip(ctx, id)
	if err != nil {
		return entity.Trip{}, fmt.Errorf("get trip %q: %w", id, err)
	}

	return trip, nil
}

func (s *Service) Trips(ctx context.Context) ([]entity.Trip, error) {
	return s.repo.Trips(ctx)
}

func (s *Service) UpdateTrip(ctx context.Context, trip entity.Trip) (entity.Trip, error) {
	if trip.Revenue.IsNegative() {
		return entity.Trip{}, fmt.Errorf("%w: negative trip revenue %s", entity.ErrInvalidArgument, trip.Revenue)
	}

	err := trip.Status.Validate()
	if err != nil {
		return entity.Trip{}, err
	}

	trip.UpdatedAt = time.Now()

	err = s.repo.UpdateTrip(ctx, trip)
	if err != nil {
		return entity.Trip{}, fmt.Errorf("update trip %q: %w", trip.TripNumber, err)
	}

	return trip, nil
}

func (s *Service) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	err := s.repo.DeleteTrip(ctx, id)
	if err != nil {
		return fmt.Errorf("delete trip %q: %w", id, err)
	}

	return nil
}

// TripDetail is a trip with its expenses and the derived profitability view.
type TripDetail struct {
	Trip          entity.Trip
	Expenses      []entity.TripExpense
	Profitability entity.TripProfitability
	Breakdown     map[entity.ExpenseType]decimal.Decimal
}

func (s *Service) TripDetail(ctx context.Context, id uuid.UUID) (TripDetail, error) {
	trip, err := s.repo.Trip(ctx, id)
	if err != nil {
		return TripDetail{}, fmt.Errorf("get trip %q: %w", id, err)
	}

	expenses, err := s.repo.TripExpenses(ctx, trip.ID)
	if err != nil {
		return TripDetail{}, fmt.Errorf("load expenses for trip %q: %w", trip.TripNumber, err)
	}

	return TripDetail{
		Trip:          trip,
		Expenses:      expenses,
		Profitability: entity.ComputeTripProfitability(trip, expenses),
		Breakdown:     entity.ExpenseBreakdown(expenses),
	}, nil
}

func (s *Service) AddTripExpense(ctx context.Context, tripID uuid.UUID, expense entity.TripExpense) (entity.TripExpense, error) {
	trip, err := s.repo.Trip(ctx, tripID)
	if err != nil {
		return entity.TripExpense{}, fmt.Errorf("get trip %q: %w", tripID, err)
	}

	expense.ID = uuid.Must(uuid.NewV4())
	expense.TripID = trip.ID
	expense.CreatedAt = time.Now()

	if expense.Date.IsZero() {
		expense.Date = startOfDay(time.Now())
	}

	err = expense.Validate()
	if err != nil {
		return entity.TripExpense{}, err
	}

	expense, err = s.repo.CreateTripExpense(ctx, expense)
	if err != nil {
		return entity.TripExpense{}, fmt.Errorf("create expense for trip %q: %w", trip.TripNumber, err)
	}

	return expense, nil
}

func (s *Service) DeleteTripExpense(ctx context.Context, id uuid.UUID) error {
	err := s.repo.DeleteTripExpense(ctx, id)
	if err != nil {
		return fmt.Errorf("delete trip expense %q: %w", id, err)
	}

	return nil
}
