package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type LineItem struct {
	ID        uuid.UUID
	InvoiceID uuid.UUID
	ProductID uuid.UUID // Optional, uuid.Nil when the row is ad-hoc.
	TripID    uuid.UUID // Set on manifest invoice rows, uuid.Nil otherwise.

	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal

	CreatedAt time.Time
}

// Total returns quantity * unit price.
func (i LineItem) Total() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

func (i LineItem) Validate() error {
	if i.Description == "" {
		return fmt.Errorf("%w: empty line item description", ErrInvalidArgument)
	}

	if !i.Quantity.IsPositive() {
		return fmt.Errorf("%w: line item quantity %s must be positive", ErrInvalidArgument, i.Quantity)
	}

	if i.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: line item unit price %s must not be negative", ErrInvalidArgument, i.UnitPrice)
	}

	return nil
}
