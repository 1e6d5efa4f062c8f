package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyNGN Currency = "NGN"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyEUR Currency = "EUR"
)

type Product struct {
	ID uuid.UUID

	Title       string
	Description string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	Currency    Currency

	CreatedAt time.Time
	UpdatedAt time.Time
}
