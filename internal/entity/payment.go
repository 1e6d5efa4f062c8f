package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCheque       PaymentMethod = "CHEQUE"
	PaymentMethodOnline       PaymentMethod = "ONLINE"
	PaymentMethodOther        PaymentMethod = "OTHER"
)

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) Validate() error {
	switch p {
	case PaymentMethodBankTransfer, PaymentMethodCash, PaymentMethodCheque,
		PaymentMethodOnline, PaymentMethodOther:
		return nil
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidArgument, p)
	}
}

type Payment struct {
	ID        uuid.UUID
	InvoiceID uuid.UUID

	Amount          decimal.Decimal
	PaymentDate     time.Time
	Method          PaymentMethod
	ReferenceNumber string // Optional, e.g. GTBANK123456.
	Notes           string

	CreatedAt time.Time
}

func (p Payment) Validate() error {
	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: payment amount %s must be positive", ErrInvalidArgument, p.Amount)
	}

	return p.Method.Validate()
}
