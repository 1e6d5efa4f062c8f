package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/idrisalani/knlLogistics/internal/entity"
	"github.com/idrisalani/knlLogistics/internal/repository"
	"github.com/idrisalani/knlLogistics/pkg/postgres"
)

func newRepo(t *testing.T) *repository.Repository {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	ctx := context.Background()

	pool, err := postgres.Connect(ctx, dsn, 4)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.UpMigrations(dsn))

	return repository.New(pool)
}

func newDraftInvoice(userID uuid.UUID) entity.Invoice {
	now := time.Now().UTC().Truncate(time.Microsecond)

	return entity.Invoice{
		ID:             uuid.Must(uuid.NewV4()),
		Number:         fmt.Sprintf("INV-TEST-%s", uuid.Must(uuid.NewV4()).String()[:8]),
		Kind:           entity.InvoiceKindStandard,
		IssueDate:      now,
		PaymentTerms:   entity.PaymentTerms14Days,
		TaxRatePercent: entity.DefaultTaxRatePercent,
		Subtotal:       decimal.Zero,
		TaxAmount:      decimal.Zero,
		Total:          decimal.Zero,
		AmountPaid:     decimal.Zero,
		Outstanding:    decimal.Zero,
		Status:         entity.InvoiceStatusDraft,
		CreatedBy:      userID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestRepository_InvoiceRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)
	ctx := context.Background()

	userID := uuid.Must(uuid.NewV4())
	inv := newDraftInvoice(userID)

	_, err := repo.CreateInvoice(ctx, inv)
	require.NoError(t, err)

	got, err := repo.Invoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, inv.Number, got.Number)
	require.Equal(t, entity.InvoiceStatusDraft, got.Status)
	require.True(t, got.TaxRatePercent.Equal(inv.TaxRatePercent))
	require.Nil(t, got.DueDate)

	// Duplicate number for the same user must be rejected.
	dup := newDraftInvoice(userID)
	dup.Number = inv.Number
	_, err = repo.CreateInvoice(ctx, dup)
	require.ErrorIs(t, err, entity.ErrDuplicateNumber)

	// The same number is fine for another user.
	other := newDraftInvoice(uuid.Must(uuid.NewV4()))
	other.Number = inv.Number
	_, err = repo.CreateInvoice(ctx, other)
	require.NoError(t, err)
}

func TestRepository_UpdateInvoiceTotals(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)
	ctx := context.Background()

	inv := newDraftInvoice(uuid.Must(uuid.NewV4()))
	_, err := repo.CreateInvoice(ctx, inv)
	require.NoError(t, err)

	totals := entity.Totals{
		Subtotal:    decimal.RequireFromString("250000"),
		TaxAmount:   decimal.RequireFromString("18750"),
		Total:       decimal.RequireFromString("268750"),
		AmountPaid:  decimal.RequireFromString("100000"),
		Outstanding: decimal.RequireFromString("168750"),
	}

	err = repo.UpdateInvoiceTotals(ctx, inv.ID, totals, entity.InvoiceStatusPending, time.Now())
	require.NoError(t, err)

	got, err := repo.Invoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusPending, got.Status)
	require.True(t, got.Subtotal.Equal(totals.Subtotal))
	require.True(t, got.Outstanding.Equal(totals.Outstanding))

	err = repo.UpdateInvoiceTotals(ctx, uuid.Must(uuid.NewV4()), totals, entity.InvoiceStatusPending, time.Now())
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_LineItemsAndPaymentsCascade(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)
	ctx := context.Background()

	inv := newDraftInvoice(uuid.Must(uuid.NewV4()))
	_, err := repo.CreateInvoice(ctx, inv)
	require.NoError(t, err)

	item := entity.LineItem{
		ID:          uuid.Must(uuid.NewV4()),
		InvoiceID:   inv.ID,
		Description: "Container haulage",
		Quantity:    decimal.RequireFromString("2"),
		UnitPrice:   decimal.RequireFromString("125000"),
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err = repo.CreateLineItem(ctx, item)
	require.NoError(t, err)

	p := entity.Payment{
		ID:          uuid.Must(uuid.NewV4()),
		InvoiceID:   inv.ID,
		Amount:      decimal.RequireFromString("50000"),
		PaymentDate: time.Now().UTC().Truncate(time.Microsecond),
		Method:      entity.PaymentMethodBankTransfer,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err = repo.CreatePayment(ctx, p)
	require.NoError(t, err)

	items, err := repo.LineItems(ctx, inv.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, uuid.Nil, items[0].ProductID)
	require.Equal(t, uuid.Nil, items[0].TripID)

	payments, err := repo.Payments(ctx, inv.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.True(t, payments[0].Amount.Equal(p.Amount))

	// Children go with the invoice.
	require.NoError(t, repo.DeleteInvoice(ctx, inv.ID))

	items, err = repo.LineItems(ctx, inv.ID)
	require.NoError(t, err)
	require.Empty(t, items)

	payments, err = repo.Payments(ctx, inv.ID)
	require.NoError(t, err)
	require.Empty(t, payments)
}

func TestRepository_InvoicesFilter(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)
	ctx := context.Background()

	userID := uuid.Must(uuid.NewV4())

	for range 3 {
		inv := newDraftInvoice(userID)
		_, err := repo.CreateInvoice(ctx, inv)
		require.NoError(t, err)
	}

	sent := newDraftInvoice(userID)
	sent.Status = entity.InvoiceStatusSent
	_, err := repo.CreateInvoice(ctx, sent)
	require.NoError(t, err)

	status := entity.InvoiceStatusDraft
	invoices, total, err := repo.Invoices(ctx, userID, entity.InvoiceFilter{
		Status:  &status,
		Page:    1,
		Limit:   2,
		SortBy:  entity.SortByCreatedAt,
		OrderBy: entity.DESC,
	})
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	require.Equal(t, 3, total)
}

func TestRepository_SetOverdue(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)
	ctx := context.Background()

	userID := uuid.Must(uuid.NewV4())

	pastDue := time.Now().AddDate(0, 0, -5)

	sent := newDraftInvoice(userID)
	sent.Status = entity.InvoiceStatusSent
	sent.DueDate = &pastDue
	_, err := repo.CreateInvoice(ctx, sent)
	require.NoError(t, err)

	// A partially paid invoice is PENDING and must not be flipped.
	pending := newDraftInvoice(userID)
	pending.Status = entity.InvoiceStatusPending
	pending.DueDate = &pastDue
	_, err = repo.CreateInvoice(ctx, pending)
	require.NoError(t, err)

	_, err = repo.SetOverdue(ctx, time.Now(), time.Now())
	require.NoError(t, err)

	got, err := repo.Invoice(ctx, sent.ID)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusOverdue, got.Status)

	got, err = repo.Invoice(ctx, pending.ID)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusPending, got.Status)
}
