package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error)
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	Invoices(ctx context.Context, userID uuid.UUID, filter entity.InvoiceFilter) ([]entity.Invoice, int, error)
	InvoicesByStatus(ctx context.Context, status entity.InvoiceStatus) ([]entity.Invoice, error)
	UpdateInvoice(ctx context.Context, inv entity.Invoice) error
	UpdateInvoiceTotals(ctx context.Context, id uuid.UUID, t entity.Totals, status entity.InvoiceStatus, updatedAt time.Time) error
	UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus, updatedAt time.Time) error
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
	SetOverdue(ctx context.Context, before, updatedAt time.Time) (int64, error)

	CreateLineItem(ctx context.Context, item entity.LineItem) (entity.LineItem, error)
	LineItem(ctx context.Context, id uuid.UUID) (entity.LineItem, error)
	LineItems(ctx context.Context, invoiceID uuid.UUID) ([]entity.LineItem, error)
	UpdateLineItem(ctx context.Context, item entity.LineItem) error
	DeleteLineItem(ctx context.Context, id uuid.UUID) error

	CreatePayment(ctx context.Context, p entity.Payment) (entity.Payment, error)
	Payment(ctx context.Context, id uuid.UUID) (entity.Payment, error)
	Payments(ctx context.Context, invoiceID uuid.UUID) ([]entity.Payment, error)
	UpdatePayment(ctx context.Context, p entity.Payment) error
	DeletePayment(ctx context.Context, id uuid.UUID) error

	CreateClient(ctx context.Context, c entity.Client) (entity.Client, error)
	Client(ctx context.Context, id uuid.UUID) (entity.Client, error)
	Clients(ctx context.Context) ([]entity.Client, error)
	UpdateClient(ctx context.Context, c entity.Client) error
	DeleteClient(ctx context.Context, id uuid.UUID) error

	CreateProduct(ctx context.Context, p entity.Product) (entity.Product, error)
	Product(ctx context.Context, id uuid.UUID) (entity.Product, error)
	Products(ctx context.Context) ([]entity.Product, error)
	UpdateProduct(ctx context.Context, p entity.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	CreateTruck(ctx context.Context, t entity.Truck) (entity.Truck, error)
	Truck(ctx context.Context, id uuid.UUID) (entity.Truck, error)
	Trucks(ctx context.Context) ([]entity.Truck, error)
	UpdateTruck(ctx context.Context, t entity.Truck) error
	DeleteTruck(ctx context.Context, id uuid.UUID) error

	CreateTrip(ctx context.Context, t entity.Trip) (entity.Trip, error)
	Trip(ctx context.Context, id uuid.UUID) (entity.Trip, error)
	Trips(ctx context.Context) ([]entity.Trip, error)
	UpdateTrip(ctx context.Context, t entity.Trip) error
	DeleteTrip(ctx context.Context, id uuid.UUID) error

	CreateTripExpense(ctx context.Context, e entity.TripExpense) (entity.TripExpense, error)
	TripExpense(ctx context.Context, id uuid.UUID) (entity.TripExpense, error)
	TripExpenses(ctx context.Context, tripID uuid.UUID) ([]entity.TripExpense, error)
	DeleteTripExpense(ctx context.Context, id uuid.UUID) error

	DashboardSummary(ctx context.Context, userID uuid.UUID) (entity.DashboardSummary, error)
}

// Renderer turns an invoice snapshot into document bytes. It must not mutate
// or recompute anything on the snapshot.
type Renderer interface {
	RenderInvoice(snapshot entity.InvoiceSnapshot) ([]byte, error)
}

type Notifier interface {
	Send(msg entity.EmailMessage) error
}

type Producer interface {
	SendInvoiceSent(ctx context.Context, invoiceID uuid.UUID, number, recipient string)
	SendPaymentRecorded(ctx context.Context, invoiceID uuid.UUID, number string, amount, outstanding decimal.Decimal, status string)
}

type Service struct {
	repo     Repository
	renderer Renderer
	notifier Notifier
	producer Producer
	company  string
}

func New(repo Repository, renderer Renderer, notifier Notifier, producer Producer, companyName string) *Service {
	return &Service{
		repo:     repo,
		renderer: renderer,
		notifier: notifier,
		producer: producer,
		company:  companyName,
	}
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
