package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

type AddLineItemParams struct {
	ProductID   uuid.UUID
	TripID      uuid.UUID
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// AddLineItem appends a row to the invoice and recomputes its totals. When the
// row references a product, description and unit price fall back to the
// product's values unless supplied.
func (s *Service) AddLineItem(ctx context.Context, invoiceID uuid.UUID, params AddLineItemParams) (entity.Invoice, error) {
	inv, err := s.ownedInvoice(ctx, invoiceID)
	if err != nil {
		return entity.Invoice{}, err
	}

	if inv.Status == entity.InvoiceStatusCancelled {
		return entity.Invoice{}, fmt.Errorf("invoice %q: %w", inv.Number, entity.ErrAlreadyCancelled)
	}

	item := entity.LineItem{
		ID:          uuid.Must(uuid.NewV4()),
		InvoiceID:   inv.ID,
		ProductID:   params.ProductID,
		TripID:      params.TripID,
		Description: params.Description,
		Quantity:    params.Quantity,
		UnitPrice:   params.UnitPrice,
		CreatedAt:   time.Now(),
	}

	if params.ProductID != uuid.Nil {
		product, err := s.repo.Product(ctx, params.ProductID)
		if err != nil {
			return entity.Invoice{}, fmt.Errorf("get product %q: %w", params.ProductID, err)
		}

		if item.Description == "" {
			item.Description = product.Title
		}

		if item.UnitPrice.IsZero() {
			item.UnitPrice = product.Price
		}
	}

	if item.Quantity.IsZero() {
		item.Quantity = decimal.New(1, 0)
	}

	err = item.Validate()
	if err != nil {
		return entity.Invoice{}, err
	}

	_, err = s.repo.CreateLineItem(ctx, item)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("create line item: %w", err)
	}

	return s.recomputeInvoice(ctx, inv, time.Now())
}

type UpdateLineItemParams struct {
	Description *string
	Quantity    *decimal.Decimal
	UnitPrice   *decimal.Decimal
}

func (s *Service) UpdateLineItem(ctx context.Context, id uuid.UUID, params UpdateLineItemParams) (entity.Invoice, error) {
	item, err := s.repo.LineItem(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get line item %q: %w", id, err)
	}

	inv, err := s.ownedInvoice(ctx, item.InvoiceID)
	if err != nil {
		return entity.Invoice{}, err
	}

	if params.Description != nil {
		item.Description = *params.Description
	}

	if params.Quantity != nil {
		item.Quantity = *params.Quantity
	}

	if params.UnitPrice != nil {
		item.UnitPrice = *params.UnitPrice
	}

	err = item.Validate()
	if err != nil {
		return entity.Invoice{}, err
	}

	err = s.repo.UpdateLineItem(ctx, item)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("update line item %q: %w", id, err)
	}

	return s.recomputeInvoice(ctx, inv, time.Now())
}

func (s *Service) DeleteLineItem(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	item, err := s.repo.LineItem(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get line item %q: %w", id, err)
	}

	inv, err := s.ownedInvoice(ctx, item.InvoiceID)
	if err != nil {
		return entity.Invoice{}, err
	}

	err = s.repo.DeleteLineItem(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("delete line item %q: %w", id, err)
	}

	return s.recomputeInvoice(ctx, inv, time.Now())
}
