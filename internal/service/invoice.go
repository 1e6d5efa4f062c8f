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

type CreateInvoiceParams struct {
	Number         string
	Title          string
	ClientID       uuid.UUID
	IssueDate      time.Time
	DueDate        *time.Time
	PaymentTerms   entity.PaymentTerms
	TaxRatePercent *decimal.Decimal
	Notes          string
}

func (s *Service) CreateInvoice(ctx context.Context, params CreateInvoiceParams) (entity.Invoice, error) {
	return s.createInvoice(ctx, entity.InvoiceKindStandard, params)
}

func (s *Service) createInvoice(ctx context.Context, kind entity.InvoiceKind, params CreateInvoiceParams) (entity.Invoice, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	if params.Number == "" {
		return entity.Invoice{}, fmt.Errorf("%w: empty invoice number", entity.ErrInvalidArgument)
	}

	if params.PaymentTerms == "" {
		params.PaymentTerms = entity.PaymentTerms14Days
	}

	err = params.PaymentTerms.Validate()
	if err != nil {
		return entity.Invoice{}, err
	}

	taxRate := entity.DefaultTaxRatePercent
	if params.TaxRatePercent != nil {
		if params.TaxRatePercent.IsNegative() {
			return entity.Invoice{}, fmt.Errorf("%w: negative tax rate %s", entity.ErrInvalidArgument, params.TaxRatePercent)
		}

		taxRate = *params.TaxRatePercent
	}

	now := time.Now()

	issueDate := params.IssueDate
	if issueDate.IsZero() {
		issueDate = startOfDay(now)
	}

	dueDate := params.DueDate
	if dueDate == nil {
		d := issueDate.AddDate(0, 0, params.PaymentTerms.Days())
		dueDate = &d
	}

	inv := entity.Invoice{
		ID:             uuid.Must(uuid.NewV4()),
		Number:         params.Number,
		Kind:           kind,
		Title:          params.Title,
		ClientID:       params.ClientID,
		IssueDate:      issueDate,
		DueDate:        dueDate,
		PaymentTerms:   params.PaymentTerms,
		TaxRatePercent: taxRate,
		Subtotal:       decimal.Zero,
		TaxAmount:      decimal.Zero,
		Total:          decimal.Zero,
		AmountPaid:     decimal.Zero,
		Outstanding:    decimal.Zero,
		Status:         entity.InvoiceStatusDraft,
		Notes:          params.Notes,
		CreatedBy:      user.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	inv, err = s.repo.CreateInvoice(ctx, inv)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("create invoice: %w", err)
	}

	slog.InfoContext(ctx, "invoice created", "invoice", inv.Number, "kind", kind)

	return inv, nil
}

type ManifestInvoiceParams struct {
	CreateInvoiceParams
	TripIDs []uuid.UUID
}

// CreateManifestInvoice bundles completed trips into one bill: a line item per
// trip, priced at the trip's revenue. The totals contract is identical to a
// standard invoice.
func (s *Service) CreateManifestInvoice(ctx context.Context, params ManifestInvoiceParams) (entity.Invoice, error) {
	if len(params.TripIDs) == 0 {
		return entity.Invoice{}, fmt.Errorf("%w: manifest invoice needs at least one trip", entity.ErrInvalidArgument)
	}

	trips := make([]entity.Trip, 0, len(params.TripIDs))

	for _, tripID := range params.TripIDs {
		trip, err := s.repo.Trip(ctx, tripID)
		if err != nil {
			return entity.Invoice{}, fmt.Errorf("get trip %q: %w", tripID, err)
		}

		trips = append(trips, trip)
	}

	inv, err := s.createInvoice(ctx, entity.InvoiceKindManifest, params.CreateInvoiceParams)
	if err != nil {
		return entity.Invoice{}, err
	}

	now := time.Now()

	for _, trip := range trips {
		item := entity.LineItem{
			ID:          uuid.Must(uuid.NewV4()),
			InvoiceID:   inv.ID,
			TripID:      trip.ID,
			Description: fmt.Sprintf("Container haulage %s to %s (%s)", trip.Origin, trip.Destination, trip.TripNumber),
			Quantity:    decimal.New(1, 0),
			UnitPrice:   trip.Revenue,
			CreatedAt:   now,
		}

		_, err = s.repo.CreateLineItem(ctx, item)
		if err != nil {
			return entity.Invoice{}, fmt.Errorf("create line item for trip %q: %w", trip.TripNumber, err)
		}
	}

	inv, err = s.recomputeInvoice(ctx, inv, time.Now())
	if err != nil {
		return entity.Invoice{}, err
	}

	return inv, nil
}

func (s *Service) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	return s.ownedInvoice(ctx, id)
}

// InvoiceDetail returns the invoice together with its child rows, ready for a
// detail screen or a render.
func (s *Service) InvoiceDetail(ctx context.Context, id uuid.UUID) (entity.Invoice, []entity.LineItem, []entity.Payment, error) {
	inv, err := s.ownedInvoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, nil, nil, err
	}

	items, err := s.repo.LineItems(ctx, inv.ID)
	if err != nil {
		return entity.Invoice{}, nil, nil, fmt.Errorf("load line items for invoice %q: %w", inv.Number, err)
	}

	payments, err := s.repo.Payments(ctx, inv.ID)
	if err != nil {
		return entity.Invoice{}, nil, nil, fmt.Errorf("load payments for invoice %q: %w", inv.Number, err)
	}

	return inv, items, payments, nil
}

func (s *Service) Invoices(ctx context.Context, filter entity.InvoiceFilter) ([]entity.Invoice, int, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	if filter.Page == 0 {
		filter.Page = 1
	}

	if filter.Limit == 0 {
		filter.Limit = 20
	}

	if !filter.SortBy.IsValid() {
		filter.SortBy = entity.SortByCreatedAt
	}

	if !filter.OrderBy.IsValid() {
		filter.OrderBy = entity.DESC
	}

	invoices, count, err := s.repo.Invoices(ctx, user.ID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("get invoices: %w", err)
	}

	return invoices, count, nil
}

type UpdateInvoiceParams struct {
	Number         *string
	Title          *string
	ClientID       *uuid.UUID
	IssueDate      *time.Time
	DueDate        *time.Time
	PaymentTerms   *entity.PaymentTerms
	TaxRatePercent *decimal.Decimal
	Notes          *string
}

// UpdateInvoice rewrites header fields and re-fires the totals engine, since a
// changed tax rate or due date shifts the derived columns and status.
func (s *Service) UpdateInvoice(ctx context.Context, id uuid.UUID, params UpdateInvoiceParams) (entity.Invoice, error) {
	inv, err := s.ownedInvoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, err
	}

	if params.Number != nil {
		if *params.Number == "" {
			return entity.Invoice{}, fmt.Errorf("%w: empty invoice number", entity.ErrInvalidArgument)
		}

		inv.Number = *params.Number
	}

	if params.Title != nil {
		inv.Title = *params.Title
	}

	if params.ClientID != nil {
		inv.ClientID = *params.ClientID
	}

	if params.IssueDate != nil {
		inv.IssueDate = *params.IssueDate
	}

	if params.DueDate != nil {
		inv.DueDate = params.DueDate
	}

	if params.PaymentTerms != nil {
		err = params.PaymentTerms.Validate()
		if err != nil {
			return entity.Invoice{}, err
		}

		inv.PaymentTerms = *params.PaymentTerms
	}

	if params.TaxRatePercent != nil {
		if params.TaxRatePercent.IsNegative() {
			return entity.Invoice{}, fmt.Errorf("%w: negative tax rate %s", entity.ErrInvalidArgument, params.TaxRatePercent)
		}

		inv.TaxRatePercent = *params.TaxRatePercent
	}

	if params.Notes != nil {
		inv.Notes = *params.Notes
	}

	inv.UpdatedAt = time.Now()

	err = s.repo.UpdateInvoice(ctx, inv)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("update invoice %q: %w", inv.Number, err)
	}

	return s.recomputeInvoice(ctx, inv, time.Now())
}

func (s *Service) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	inv, err := s.ownedInvoice(ctx, id)
	if err != nil {
		return err
	}

	err = s.repo.DeleteInvoice(ctx, inv.ID)
	if err != nil {
		return fmt.Errorf("delete invoice %q: %w", inv.Number, err)
	}

	slog.InfoContext(ctx, "invoice deleted", "invoice", inv.Number)

	return nil
}

// MarkSent is the explicit user transition from DRAFT to SENT.
func (s *Service) MarkSent(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	inv, err := s.ownedInvoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, err
	}

	if inv.Status != entity.InvoiceStatusDraft {
		return entity.Invoice{}, fmt.Errorf("%w: cannot mark %s invoice %q as sent", entity.ErrInvalidArgument, inv.Status, inv.Number)
	}

	err = s.repo.UpdateInvoiceStatus(ctx, inv.ID, entity.InvoiceStatusSent, time.Now())
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("mark invoice %q sent: %w", inv.Number, err)
	}

	inv.Status = entity.InvoiceStatusSent

	return inv, nil
}

func (s *Service) CancelInvoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	inv, err := s.ownedInvoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, err
	}

	switch inv.Status {
	case entity.InvoiceStatusCancelled:
		return entity.Invoice{}, fmt.Errorf("invoice %q: %w", inv.Number, entity.ErrAlreadyCancelled)
	case entity.InvoiceStatusPaid:
		return entity.Invoice{}, fmt.Errorf("invoice %q: %w", inv.Number, entity.ErrAlreadyPaid)
	}

	err = s.repo.UpdateInvoiceStatus(ctx, inv.ID, entity.InvoiceStatusCancelled, time.Now())
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("cancel invoice %q: %w", inv.Number, err)
	}

	inv.Status = entity.InvoiceStatusCancelled

	return inv, nil
}

func (s *Service) Dashboard(ctx context.Context) (entity.DashboardSummary, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.DashboardSummary{}, err
	}

	summary, err := s.repo.DashboardSummary(ctx, user.ID)
	if err != nil {
		return entity.DashboardSummary{}, fmt.Errorf("dashboard summary: %w", err)
	}

	return summary, nil
}

// recomputeInvoice is the single recompute path: it loads the invoice's child
// rows, derives totals and status, and writes them back with a direct column
// update. Called exactly once by every mutation of a line item or payment.
// When loading or persisting fails the stored totals stay as they were.
func (s *Service) recomputeInvoice(ctx context.Context, inv entity.Invoice, now time.Time) (entity.Invoice, error) {
	items, err := s.repo.LineItems(ctx, inv.ID)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("load line items for invoice %q: %w", inv.Number, err)
	}

	payments, err := s.repo.Payments(ctx, inv.ID)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("load payments for invoice %q: %w", inv.Number, err)
	}

	totals := entity.ComputeTotals(inv.TaxRatePercent, items, payments)
	status := entity.DeriveStatus(inv.Status, totals, inv.DueDate, now)

	err = s.repo.UpdateInvoiceTotals(ctx, inv.ID, totals, status, now)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("persist totals for invoice %q: %w", inv.Number, err)
	}

	inv.Subtotal = totals.Subtotal
	inv.TaxAmount = totals.TaxAmount
	inv.Total = totals.Total
	inv.AmountPaid = totals.AmountPaid
	inv.Outstanding = totals.Outstanding
	inv.Status = status
	inv.UpdatedAt = now

	return inv, nil
}

func (s *Service) ownedInvoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	inv, err := s.repo.Invoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %q: %w", id, err)
	}

	if inv.CreatedBy != user.ID {
		return entity.Invoice{}, fmt.Errorf("%w: invoice %q belongs to another user", entity.ErrForbidden, inv.Number)
	}

	return inv, nil
}
