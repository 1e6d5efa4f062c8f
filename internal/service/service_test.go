package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/idrisalani/knlLogistics/internal/entity"
	"github.com/idrisalani/knlLogistics/internal/mocks"
	"github.com/idrisalani/knlLogistics/internal/service"
)

type fixture struct {
	repo     *mocks.MockRepository
	renderer *mocks.MockRenderer
	notifier *mocks.MockNotifier
	producer *mocks.MockProducer
	svc      *service.Service
	user     entity.User
	ctx      context.Context
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:     mocks.NewMockRepository(ctrl),
		renderer: mocks.NewMockRenderer(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		producer: mocks.NewMockProducer(ctrl),
		user: entity.User{
			ID:    uuid.Must(uuid.NewV4()),
			Email: "accounts@knl.example",
		},
	}

	f.svc = service.New(f.repo, f.renderer, f.notifier, f.producer, "KNL Logistics Ltd")
	f.ctx = entity.CtxWithUser(context.Background(), f.user)

	return f
}

func (f fixture) draftInvoice() entity.Invoice {
	return entity.Invoice{
		ID:             uuid.Must(uuid.NewV4()),
		Number:         "INV-2026-001",
		Kind:           entity.InvoiceKindStandard,
		IssueDate:      time.Now(),
		PaymentTerms:   entity.PaymentTerms14Days,
		TaxRatePercent: entity.DefaultTaxRatePercent,
		Status:         entity.InvoiceStatusDraft,
		CreatedBy:      f.user.ID,
	}
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

func TestService_AddLineItem_RecomputesTotals(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	inv := f.draftInvoice()

	item := entity.LineItem{
		InvoiceID:   inv.ID,
		Description: "Container haulage Apapa to Kaduna",
		Quantity:    decimal.RequireFromString("10"),
		UnitPrice:   decimal.RequireFromString("25"),
	}

	f.repo.EXPECT().Invoice(f.ctx, inv.ID).Return(inv, nil)
	f.repo.EXPECT().CreateLineItem(f.ctx, gomock.Any()).Return(item, nil)
	f.repo.EXPECT().LineItems(f.ctx, inv.ID).Return([]entity.LineItem{item}, nil)
	f.repo.EXPECT().Payments(f.ctx, inv.ID).Return(nil, nil)
	f.repo.EXPECT().
		UpdateInvoiceTotals(f.ctx, inv.ID, gomock.Any(), entity.InvoiceStatusDraft, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, totals entity.Totals, _ entity.InvoiceStatus, _ time.Time) error {
			requireDecimal(t, "250", totals.Subtotal)
			requireDecimal(t, "18.75", totals.TaxAmount)
			requireDecimal(t, "268.75", totals.Total)
			requireDecimal(t, "0", totals.AmountPaid)
			requireDecimal(t, "268.75", totals.Outstanding)
			return nil
		})

	got, err := f.svc.AddLineItem(f.ctx, inv.ID, service.AddLineItemParams{
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
	})
	require.NoError(t, err)
	requireDecimal(t, "268.75", got.Total)
	require.Equal(t, entity.InvoiceStatusDraft, got.Status)
}

func TestService_AddLineItem_LoadFailureLeavesTotals(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	inv := f.draftInvoice()

	f.repo.EXPECT().Invoice(f.ctx, inv.ID).Return(inv, nil)
	f.repo.EXPECT().CreateLineItem(f.ctx, gomock.Any()).Return(entity.LineItem{}, nil)
	f.repo.EXPECT().LineItems(f.ctx, inv.ID).Return(nil, errors.New("connection reset"))
	// No UpdateInvoiceTotals expectation: a failed load must not touch the
	// stored totals.

	_, err := f.svc.AddLineItem(f.ctx, inv.ID, service.AddLineItemParams{
		Description: "Diesel surcharge",
		Quantity:    decimal.New(1, 0),
		UnitPrice:   decimal.New(5000, 0),
	})
	require.Error(t, err)
}

func TestService_RecordPayment_MarksPaid(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	inv := f.draftInvoice()
	inv.Status = entity.InvoiceStatusSent

	item := entity.LineItem{
		InvoiceID:   inv.ID,
		Description: "Haulage",
		Quantity:    decimal.New(1, 0),
		UnitPrice:   decimal.RequireFromString("100000"),
	}
	payment := entity.Payment{
		InvoiceID: inv.ID,
		Amount:    decimal.RequireFromString("107500"),
		Method:    entity.PaymentMethodBankTransfer,
	}

	f.repo.EXPECT().Invoice(f.ctx, inv.ID).Return(inv, nil)
	f.repo.EXPECT().CreatePayment(f.ctx, gomock.Any()).Return(payment, nil)
	f.repo.EXPECT().LineItems(f.ctx, inv.ID).Return([]entity.LineItem{item}, nil)
	f.repo.EXPECT().Payments(f.ctx, inv.ID).Return([]entity.Payment{payment}, nil)
	f.repo.EXPECT().
		UpdateInvoiceTotals(f.ctx, inv.ID, gomock.Any(), entity.InvoiceStatusPaid, gomock.Any()).
		Return(nil)
	f.producer.EXPECT().
		SendPaymentRecorded(f.ctx, inv.ID, inv.Number, gomock.Any(), gomock.Any(), entity.InvoiceStatusPaid.String())

	got, err := f.svc.RecordPayment(f.ctx, inv.ID, service.RecordPaymentParams{
		Amount: payment.Amount,
		Method: payment.Method,
	})
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusPaid, got.Status)
	requireDecimal(t, "0", got.Outstanding)
}

func TestService_DeletePayment_RevertsStatus(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	inv := f.draftInvoice()
	inv.Status = entity.InvoiceStatusPaid

	payment := entity.Payment{
		ID:        uuid.Must(uuid.NewV4()),
		InvoiceID: inv.ID,
		Amount:    decimal.RequireFromString("107500"),
		Method:    entity.PaymentMethodCash,
	}
	item := entity.LineItem{
		InvoiceID: inv.ID,
		Quantity:  decimal.New(1, 0),
		UnitPrice: decimal.RequireFromString("100000"),
	}

	f.repo.EXPECT().Payment(f.ctx, payment.ID).Return(payment, nil)
	f.repo.EXPECT().Invoice(f.ctx, inv.ID).Return(inv, nil)
	f.repo.EXPECT().DeletePayment(f.ctx, payment.ID).Return(nil)
	f.repo.EXPECT().LineItems(f.ctx, inv.ID).Return([]entity.LineItem{item}, nil)
	f.repo.EXPECT().Payments(f.ctx, inv.ID).Return(nil, nil)
	f.repo.EXPECT().
		UpdateInvoiceTotals(f.ctx, inv.ID, gomock.Any(), entity.InvoiceStatusDraft, gomock.Any()).
		Return(nil)

	got, err := f.svc.DeletePayment(f.ctx, payment.ID)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusDraft, got.Status)
	requireDecimal(t, "107500", got.Outstanding)
}

func TestService_Invoice_Forbidden(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	inv := f.draftInvoice()
	inv.CreatedBy = uuid.Must(uuid.NewV4())

	f.repo.EXPECT().Invoice(f.ctx, inv.ID).Return(inv, nil)

	_, err := f.svc.Invoice(f.ctx, inv.ID)
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_CreateInvoice_DefaultsDueDate(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	issue := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	f.repo.EXPECT().
		CreateInvoice(f.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inv entity.Invoice) (entity.Invoice, error) {
			return inv, nil
		})

	inv, err := f.svc.CreateInvoice(f.ctx, service.CreateInvoiceParams{
		Number:       "INV-2026-042",
		IssueDate:    issue,
		PaymentTerms: entity.PaymentTerms30Days,
	})
	require.NoError(t, err)
	require.NotNil(t, inv.DueDate)
	require.Equal(t, issue.AddDate(0, 0, 30), *inv.DueDate)
	require.Equal(t, entity.InvoiceStatusDraft, inv.Status)
	require.Equal(t, f.user.ID, inv.CreatedBy)
	requireDecimal(t, "7.5", inv.TaxRatePercent)
}

func TestService_SendInvoice(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	inv := f.draftInvoice()
	inv.ClientID = uuid.Must(uuid.NewV4())
	inv.Total = decimal.RequireFromString("268750")

	client := entity.Client{
		ID:    inv.ClientID,
		Name:  "Dangote Cement",
		Email: "ap@dangote.example",
	}
	pdf := []byte("%PDF-1.4 stub")

	f.repo.EXPECT().Invoice(f.ctx, inv.ID).Return(inv, nil)
	f.repo.EXPECT().LineItems(f.ctx, inv.ID).Return(nil, nil)
	f.repo.EXPECT().Payments(f.ctx, inv.ID).Return(nil, nil)
	f.repo.EXPECT().Client(f.ctx, inv.ClientID).Return(client, nil)
	f.renderer.EXPECT().RenderInvoice(gomock.Any()).Return(pdf, nil)
	f.notifier.EXPECT().
		Send(gomock.Any()).
		DoAndReturn(func(msg entity.EmailMessage) error {
			require.Equal(t, []string{client.Email}, msg.Recipients)
			require.Equal(t, "INV-2026-001.pdf", msg.AttachmentName)
			require.Equal(t, pdf, msg.Attachment)
			require.Contains(t, msg.Body, "₦268,750.00")
			return nil
		})
	f.repo.EXPECT().
		UpdateInvoiceStatus(f.ctx, inv.ID, entity.InvoiceStatusSent, gomock.Any()).
		Return(nil)
	f.producer.EXPECT().SendInvoiceSent(f.ctx, inv.ID, inv.Number, client.Email)

	got, err := f.svc.SendInvoice(f.ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusSent, got.Status)
}

func TestService_SendInvoice_NoRecipient(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	inv := f.draftInvoice()

	f.repo.EXPECT().Invoice(f.ctx, inv.ID).Return(inv, nil)
	f.repo.EXPECT().LineItems(f.ctx, inv.ID).Return(nil, nil)
	f.repo.EXPECT().Payments(f.ctx, inv.ID).Return(nil, nil)

	_, err := f.svc.SendInvoice(f.ctx, inv.ID)
	require.ErrorIs(t, err, entity.ErrNoRecipient)
}

func TestService_MarkOverdueInvoices(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	ctx := context.Background()

	f.repo.EXPECT().SetOverdue(ctx, gomock.Any(), gomock.Any()).Return(int64(3), nil)

	err := f.svc.MarkOverdueInvoices(ctx)
	require.NoError(t, err)
}

func TestService_SendPaymentReminders_ContinuesPastFailures(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	ctx := context.Background()

	clientA := entity.Client{ID: uuid.Must(uuid.NewV4()), Name: "A", Email: "a@example.com"}
	clientB := entity.Client{ID: uuid.Must(uuid.NewV4()), Name: "B", Email: "b@example.com"}

	overdue := []entity.Invoice{
		{ID: uuid.Must(uuid.NewV4()), Number: "INV-1", ClientID: clientA.ID, Status: entity.InvoiceStatusOverdue},
		{ID: uuid.Must(uuid.NewV4()), Number: "INV-2", ClientID: clientB.ID, Status: entity.InvoiceStatusOverdue},
	}

	f.repo.EXPECT().InvoicesByStatus(ctx, entity.InvoiceStatusOverdue).Return(overdue, nil)
	f.repo.EXPECT().Client(ctx, clientA.ID).Return(clientA, nil)
	f.repo.EXPECT().Client(ctx, clientB.ID).Return(clientB, nil)

	gomock.InOrder(
		f.notifier.EXPECT().Send(gomock.Any()).Return(errors.New("smtp timeout")),
		f.notifier.EXPECT().Send(gomock.Any()).Return(nil),
	)

	err := f.svc.SendPaymentReminders(ctx)
	require.ErrorContains(t, err, "INV-1")
}

func TestService_CreateManifestInvoice(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	trip := entity.Trip{
		ID:          uuid.Must(uuid.NewV4()),
		TripNumber:  "TRIP-001-2026",
		Origin:      "Apapa",
		Destination: "Kano",
		Revenue:     decimal.RequireFromString("450000"),
	}

	f.repo.EXPECT().Trip(f.ctx, trip.ID).Return(trip, nil)
	f.repo.EXPECT().
		CreateInvoice(f.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inv entity.Invoice) (entity.Invoice, error) {
			require.Equal(t, entity.InvoiceKindManifest, inv.Kind)
			return inv, nil
		})

	var created entity.LineItem

	f.repo.EXPECT().
		CreateLineItem(f.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, item entity.LineItem) (entity.LineItem, error) {
			require.Equal(t, trip.ID, item.TripID)
			requireDecimal(t, "1", item.Quantity)
			requireDecimal(t, "450000", item.UnitPrice)
			created = item
			return item, nil
		})
	f.repo.EXPECT().
		LineItems(f.ctx, gomock.Any()).
		DoAndReturn(func(context.Context, uuid.UUID) ([]entity.LineItem, error) {
			return []entity.LineItem{created}, nil
		})
	f.repo.EXPECT().Payments(f.ctx, gomock.Any()).Return(nil, nil)
	f.repo.EXPECT().
		UpdateInvoiceTotals(f.ctx, gomock.Any(), gomock.Any(), entity.InvoiceStatusDraft, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, totals entity.Totals, _ entity.InvoiceStatus, _ time.Time) error {
			requireDecimal(t, "450000", totals.Subtotal)
			requireDecimal(t, "33750", totals.TaxAmount)
			requireDecimal(t, "483750", totals.Total)
			return nil
		})

	inv, err := f.svc.CreateManifestInvoice(f.ctx, service.ManifestInvoiceParams{
		CreateInvoiceParams: service.CreateInvoiceParams{Number: "INV-2026-077"},
		TripIDs:             []uuid.UUID{trip.ID},
	})
	require.NoError(t, err)
	requireDecimal(t, "483750", inv.Total)
}
