package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

type RecordPaymentParams struct {
	Amount          decimal.Decimal
	PaymentDate     time.Time
	Method          entity.PaymentMethod
	ReferenceNumber string
	Notes           string
}

// RecordPayment attaches a payment to the invoice and recomputes totals, which
// may flip the invoice to PENDING or PAID. Overpayment is accepted: the engine
// clamps outstanding at zero.
func (s *Service) RecordPayment(ctx context.Context, invoiceID uuid.UUID, params RecordPaymentParams) (entity.Invoice, error) {
	inv, err := s.ownedInvoice(ctx, invoiceID)
	if err != nil {
		return entity.Invoice{}, err
	}

	if inv.Status == entity.InvoiceStatusCancelled {
		return entity.Invoice{}, fmt.Errorf("invoice %q: %w", inv.Number, entity.ErrAlreadyCancelled)
	}

	if params.Method == "" {
		params.Method = entity.PaymentMethodBankTransfer
	}

	p := entity.Payment{
		ID:              uuid.Must(uuid.NewV4()),
		InvoiceID:       inv.ID,
		Amount:          params.Amount,
		PaymentDate:     params.PaymentDate,
		Method:          params.Method,
		ReferenceNumber: params.ReferenceNumber,
		Notes:           params.Notes,
		CreatedAt:       time.Now(),
	}

	if p.PaymentDate.IsZero() {
		p.PaymentDate = startOfDay(time.Now())
	}

	err = p.Validate()
	if err != nil {
		return entity.Invoice{}, err
	}

	_, err = s.repo.CreatePayment(ctx, p)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("create payment: %w", err)
	}

	inv, err = s.recomputeInvoice(ctx, inv, time.Now())
	if err != nil {
		return entity.Invoice{}, err
	}

	slog.InfoContext(ctx, "payment recorded",
		"invoice", inv.Number,
		"amount", p.Amount,
		"outstanding", inv.Outstanding,
		"status", inv.Status,
	)

	s.producer.SendPaymentRecorded(ctx, inv.ID, inv.Number, p.Amount, inv.Outstanding, inv.Status.String())

	return inv, nil
}

type UpdatePaymentParams struct {
	Amount          *decimal.Decimal
	PaymentDate     *time.Time
	Method          *entity.PaymentMethod
	ReferenceNumber *string
	Notes           *string
}

func (s *Service) UpdatePayment(ctx context.Context, id uuid.UUID, params UpdatePaymentParams) (entity.Invoice, error) {
	p, err := s.repo.Payment(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get payment %q: %w", id, err)
	}

	inv, err := s.ownedInvoice(ctx, p.InvoiceID)
	if err != nil {
		return entity.Invoice{}, err
	}

	if params.Amount != nil {
		p.Amount = *params.Amount
	}

	if params.PaymentDate != nil {
		p.PaymentDate = *params.PaymentDate
	}

	if params.Method != nil {
		p.Method = *params.Method
	}

	if params.ReferenceNumber != nil {
		p.ReferenceNumber = *params.ReferenceNumber
	}

	if params.Notes != nil {
		p.Notes = *params.Notes
	}

	err = p.Validate()
	if err != nil {
		return entity.Invoice{}, err
	}

	err = s.repo.UpdatePayment(ctx, p)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("update payment %q: %w", id, err)
	}

	return s.recomputeInvoice(ctx, inv, time.Now())
}

// DeletePayment removes a payment and recomputes. A fully paid invoice whose
// only payment is deleted falls back out of PAID.
func (s *Service) DeletePayment(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	p, err := s.repo.Payment(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get payment %q: %w", id, err)
	}

	inv, err := s.ownedInvoice(ctx, p.InvoiceID)
	if err != nil {
		return entity.Invoice{}, err
	}

	err = s.repo.DeletePayment(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("delete payment %q: %w", id, err)
	}

	return s.recomputeInvoice(ctx, inv, time.Now())
}
