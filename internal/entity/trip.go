package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type TripStatus string

const (
	TripStatusPlanned    TripStatus = "PLANNED"
	TripStatusInProgress TripStatus = "IN_PROGRESS"
	TripStatusCompleted  TripStatus = "COMPLETED"
	TripStatusCancelled  TripStatus = "CANCELLED"
)

func (s TripStatus) Validate() error {
	switch s {
	case TripStatusPlanned, TripStatusInProgress, TripStatusCompleted, TripStatusCancelled:
		return nil
	default:
		return fmt.Errorf("%w: unknown trip status %q", ErrInvalidArgument, s)
	}
}

type Trip struct {
	ID      uuid.UUID
	TruckID uuid.UUID

	TripNumber  string // Unique, e.g. TRIP-001-2026.
	Origin      string
	Destination string
	DistanceKM  decimal.Decimal

	StartDate time.Time
	EndDate   *time.Time
	Status    TripStatus

	CargoDescription string
	CargoWeightTons  decimal.Decimal
	Revenue          decimal.Decimal
	Notes            string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t Trip) String() string {
	return fmt.Sprintf("%s %s - %s", t.TripNumber, t.Origin, t.Destination)
}

type ExpenseType string

const (
	ExpenseTypeFuel            ExpenseType = "FUEL"
	ExpenseTypeToll            ExpenseType = "TOLL"
	ExpenseTypeDriverAllowance ExpenseType = "DRIVER_ALLOWANCE"
	ExpenseTypeRepair          ExpenseType = "REPAIR"
	ExpenseTypeAccommodation   ExpenseType = "ACCOMMODATION"
	ExpenseTypeLoading         ExpenseType = "LOADING"
	ExpenseTypeInsurance       ExpenseType = "INSURANCE"
	ExpenseTypeTax             ExpenseType = "TAX"
	ExpenseTypeFood            ExpenseType = "FOOD"
	ExpenseTypeMiscellaneous   ExpenseType = "MISCELLANEOUS"
)

func (t ExpenseType) Validate() error {
	switch t {
	case ExpenseTypeFuel, ExpenseTypeToll, ExpenseTypeDriverAllowance, ExpenseTypeRepair,
		ExpenseTypeAccommodation, ExpenseTypeLoading, ExpenseTypeInsurance,
		ExpenseTypeTax, ExpenseTypeFood, ExpenseTypeMiscellaneous:
		return nil
	default:
		return fmt.Errorf("%w: unknown expense type %q", ErrInvalidArgument, t)
	}
}

type TripExpense struct {
	ID     uuid.UUID
	TripID uuid.UUID

	Type        ExpenseType
	Description string
	Amount      decimal.Decimal
	Date        time.Time

	ReceiptNumber string
	Notes         string

	CreatedAt time.Time
}

func (e TripExpense) Validate() error {
	if !e.Amount.IsPositive() {
		return fmt.Errorf("%w: expense amount %s must be positive", ErrInvalidArgument, e.Amount)
	}

	return e.Type.Validate()
}

// TripProfitability is the derived financial view of a single trip.
type TripProfitability struct {
	Revenue       decimal.Decimal
	TotalExpenses decimal.Decimal
	Profit        decimal.Decimal
	ProfitMargin  decimal.Decimal // Percentage, 0 when revenue is 0.
	IsProfitable  bool
}

// ComputeTripProfitability sums the trip's expenses and derives profit and
// margin. Margin is profit / revenue * 100, rounded to 2 decimal places, and 0
// for a trip with no revenue. Pure, no persistence side effect.
func ComputeTripProfitability(trip Trip, expenses []TripExpense) TripProfitability {
	totalExpenses := decimal.Zero
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
	}

	profit := trip.Revenue.Sub(totalExpenses)

	margin := decimal.Zero
	if trip.Revenue.IsPositive() {
		margin = profit.Div(trip.Revenue).Mul(oneHundred).Round(2)
	}

	return TripProfitability{
		Revenue:       trip.Revenue,
		TotalExpenses: totalExpenses,
		Profit:        profit,
		ProfitMargin:  margin,
		IsProfitable:  profit.IsPositive(),
	}
}

// ExpenseBreakdown groups the trip's expenses by type.
func ExpenseBreakdown(expenses []TripExpense) map[ExpenseType]decimal.Decimal {
	breakdown := make(map[ExpenseType]decimal.Decimal)
	for _, e := range expenses {
		breakdown[e.Type] = breakdown[e.Type].Add(e.Amount)
	}

	return breakdown
}
