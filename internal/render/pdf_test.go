package render_test

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/idrisalani/knlLogistics/internal/entity"
	"github.com/idrisalani/knlLogistics/internal/render"
)

func TestPDF_RenderInvoice(t *testing.T) {
	t.Parallel()

	r := render.NewPDF(
		"KNL Logistics Ltd",
		"14 Wharf Road, Apapa, Lagos",
		"+234 800 000 0000",
		"accounts@knl.example",
		"GTBank, 0123456789, KNL Logistics Ltd",
	)

	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	snapshot := entity.InvoiceSnapshot{
		ID:             uuid.Must(uuid.NewV4()),
		Number:         "INV-2026-001",
		Kind:           entity.InvoiceKindStandard,
		Status:         entity.InvoiceStatusSent,
		IssueDate:      time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		DueDate:        &due,
		PaymentTerms:   entity.PaymentTerms14Days,
		TaxRatePercent: entity.DefaultTaxRatePercent,
		Subtotal:       decimal.RequireFromString("250000"),
		TaxAmount:      decimal.RequireFromString("18750"),
		Total:          decimal.RequireFromString("268750"),
		AmountPaid:     decimal.RequireFromString("100000"),
		Outstanding:    decimal.RequireFromString("168750"),
		Client: &entity.Client{
			Name:        "Dangote Cement",
			AddressLine: "1 Alfred Rewane Road",
			State:       "Lagos",
		},
		Items: []entity.SnapshotItem{
			{
				Description: "Container haulage Apapa to Kano (TRIP-001-2026)",
				Quantity:    decimal.New(1, 0),
				UnitPrice:   decimal.RequireFromString("250000"),
				Total:       decimal.RequireFromString("250000"),
			},
		},
		Payments: []entity.SnapshotPayment{
			{
				Amount:      decimal.RequireFromString("100000"),
				PaymentDate: time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
				Method:      entity.PaymentMethodBankTransfer,
			},
		},
		Notes: "Thank you for your business.",
	}

	document, err := r.RenderInvoice(snapshot)
	require.NoError(t, err)
	require.NotEmpty(t, document)
	require.Equal(t, "%PDF", string(document[:4]))
}

func TestPDF_RenderInvoice_EmptyInvoice(t *testing.T) {
	t.Parallel()

	r := render.NewPDF("KNL Logistics Ltd", "", "", "", "")

	document, err := r.RenderInvoice(entity.InvoiceSnapshot{
		Number:   "INV-2026-002",
		Subtotal: decimal.Zero,
		Total:    decimal.Zero,
	})
	require.NoError(t, err)
	require.NotEmpty(t, document)
}
