package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type TruckStatus string

const (
	TruckStatusActive      TruckStatus = "ACTIVE"
	TruckStatusMaintenance TruckStatus = "MAINTENANCE"
	TruckStatusInactive    TruckStatus = "INACTIVE"
)

func (s TruckStatus) Validate() error {
	switch s {
	case TruckStatusActive, TruckStatusMaintenance, TruckStatusInactive:
		return nil
	default:
		return fmt.Errorf("%w: unknown truck status %q", ErrInvalidArgument, s)
	}
}

type Truck struct {
	ID uuid.UUID

	PlateNumber       string // Unique, e.g. KRD 123 XY.
	Model             string // e.g. Howo 10-ton.
	Manufacturer      string
	YearOfManufacture int
	CapacityTons      decimal.Decimal
	Status            TruckStatus

	DriverName  string
	DriverPhone string
	Notes       string

	CreatedAt time.Time
	UpdatedAt time.Time
}
