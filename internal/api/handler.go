package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/idrisalani/knlLogistics/internal/entity"
	"github.com/idrisalani/knlLogistics/internal/service"
)

type Service interface {
	CreateInvoice(ctx context.Context, params service.CreateInvoiceParams) (entity.Invoice, error)
	CreateManifestInvoice(ctx context.Context, params service.ManifestInvoiceParams) (entity.Invoice, error)
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	InvoiceDetail(ctx context.Context, id uuid.UUID) (entity.Invoice, []entity.LineItem, []entity.Payment, error)
	Invoices(ctx context.Context, filter entity.InvoiceFilter) ([]entity.Invoice, int, error)
	UpdateInvoice(ctx context.Context, id uuid.UUID, params service.UpdateInvoiceParams) (entity.Invoice, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
	MarkSent(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	CancelInvoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	SendInvoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	RenderInvoicePDF(ctx context.Context, id uuid.UUID) ([]byte, string, error)

	AddLineItem(ctx context.Context, invoiceID uuid.UUID, params service.AddLineItemParams) (entity.Invoice, error)
	UpdateLineItem(ctx context.Context, id uuid.UUID, params service.UpdateLineItemParams) (entity.Invoice, error)
	DeleteLineItem(ctx context.Context, id uuid.UUID) (entity.Invoice, error)

	RecordPayment(ctx context.Context, invoiceID uuid.UUID, params service.RecordPaymentParams) (entity.Invoice, error)
	UpdatePayment(ctx context.Context, id uuid.UUID, params service.UpdatePaymentParams) (entity.Invoice, error)
	DeletePayment(ctx context.Context, id uuid.UUID) (entity.Invoice, error)

	CreateClient(ctx context.Context, client entity.Client) (entity.Client, error)
	Client(ctx context.Context, id uuid.UUID) (entity.Client, error)
	Clients(ctx context.Context) ([]entity.Client, error)
	UpdateClient(ctx context.Context, client entity.Client) (entity.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error

	CreateProduct(ctx context.Context, product entity.Product) (entity.Product, error)
	Product(ctx context.Context, id uuid.UUID) (entity.Product, error)
	Products(ctx context.Context) ([]entity.Product, error)
	UpdateProduct(ctx context.Context, product entity.Product) (entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	CreateTruck(ctx context.Context, truck entity.Truck) (entity.Truck, error)
	Truck(ctx context.Context, id uuid.UUID) (entity.Truck, error)
	Trucks(ctx context.Context) ([]entity.Truck, error)
	UpdateTruck(ctx context.Context, truck entity.Truck) (entity.Truck, error)
	DeleteTruck(ctx context.Context, id uuid.UUID) error

	CreateTrip(ctx context.Context, trip entity.Trip) (entity.Trip, error)
	Trip(ctx context.Context, id uuid.UUID) (entity.Trip, error)
	TripDetail(ctx context.Context, id uuid.UUID) (service.TripDetail, error)
	Trips(ctx context.Context) ([]entity.Trip, error)
	UpdateTrip(ctx context.Context, trip entity.Trip) (entity.Trip, error)
	DeleteTrip(ctx context.Context, id uuid.UUID) error
	AddTripExpense(ctx context.Context, tripID uuid.UUID, expense entity.TripExpense) (entity.TripExpense, error)
	DeleteTripExpense(ctx context.Context, id uuid.UUID) error

	Dashboard(ctx context.Context) (entity.DashboardSummary, error)
	MarkOverdueInvoices(ctx context.Context) error
	SendPaymentReminders(ctx context.Context) error
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

type InvoiceResponse struct {
	ID             uuid.UUID            `json:"id"`
	Number         string               `json:"number"`
	Kind           entity.InvoiceKind   `json:"kind"`
	Title          string               `json:"title,omitempty"`
	ClientID       *uuid.UUID           `json:"clientId,omitempty"`
	IssueDate      time.Time            `json:"issueDate"`
	DueDate        *time.Time           `json:"dueDate,omitempty"`
	PaymentTerms   entity.PaymentTerms  `json:"paymentTerms"`
	TaxRatePercent decimal.Decimal      `json:"taxRatePercent"`
	Subtotal       decimal.Decimal      `json:"subtotal"`
	TaxAmount      decimal.Decimal      `json:"taxAmount"`
	Total          decimal.Decimal      `json:"total"`
	AmountPaid     decimal.Decimal      `json:"amountPaid"`
	Outstanding    decimal.Decimal      `json:"outstanding"`
	Status         entity.InvoiceStatus `json:"status"`
	Notes          string               `json:"notes,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

func newInvoiceResponse(inv entity.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:             inv.ID,
		Number:         inv.Number,
		Kind:           inv.Kind,
		Title:          inv.Title,
		IssueDate:      inv.IssueDate,
		DueDate:        inv.DueDate,
		PaymentTerms:   inv.PaymentTerms,
		TaxRatePercent: inv.TaxRatePercent,
		Subtotal:       inv.Subtotal,
		TaxAmount:      inv.TaxAmount,
		Total:          inv.Total,
		AmountPaid:     inv.AmountPaid,
		Outstanding:    inv.Outstanding,
		Status:         inv.Status,
		Notes:          inv.Notes,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}

	if inv.ClientID != uuid.Nil {
		clientID := inv.ClientID
		resp.ClientID = &clientID
	}

	return resp
}

type CreateInvoiceRequest struct {
	Number         string               `json:"number"`
	Title          string               `json:"title"`
	ClientID       *uuid.UUID           `json:"clientId"`
	IssueDate      *time.Time           `json:"issueDate"`
	DueDate        *time.Time           `json:"dueDate"`
	PaymentTerms   entity.PaymentTerms  `json:"paymentTerms"`
	TaxRatePercent *decimal.Decimal     `json:"taxRatePercent"`
	Notes          string               `json:"notes"`
}

func (req CreateInvoiceRequest) toParams() service.CreateInvoiceParams {
	params := service.CreateInvoiceParams{
		Number:         req.Number,
		Title:          req.Title,
		DueDate:        req.DueDate,
		PaymentTerms:   req.PaymentTerms,
		TaxRatePercent: req.TaxRatePercent,
		Notes:          req.Notes,
	}

	if req.ClientID != nil {
		params.ClientID = *req.ClientID
	}

	if req.IssueDate != nil {
		params.IssueDate = *req.IssueDate
	}

	return params
}

func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateInvoiceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	inv, err := h.s.CreateInvoice(ctx, req.toParams())
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to create invoice")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, newInvoiceResponse(inv))
}

type CreateManifestInvoiceRequest struct {
	CreateInvoiceRequest
	TripIDs []uuid.UUID `json:"tripIds"`
}

func (h *Handler) CreateManifestInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateManifestInvoiceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	inv, err := h.s.CreateManifestInvoice(ctx, service.ManifestInvoiceParams{
		CreateInvoiceParams: req.toParams(),
		TripIDs:             req.TripIDs,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to create manifest invoice")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, newInvoiceResponse(inv))
}

type InvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Total    int               `json:"total"`
}

func (h *Handler) Invoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := invoiceFilterFromQuery(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid filter")
		return
	}

	invoices, total, err := h.s.Invoices(ctx, filter)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to list invoices")
		return
	}

	resp := InvoicesResponse{
		Invoices: make([]InvoiceResponse, 0, len(invoices)),
		Total:    total,
	}

	for _, inv := range invoices {
		resp.Invoices = append(resp.Invoices, newInvoiceResponse(inv))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

func invoiceFilterFromQuery(r *http.Request) (entity.InvoiceFilter, error) {
	var filter entity.InvoiceFilter

	q := r.URL.Query()

	if v := q.Get("status"); v != "" {
		status := entity.InvoiceStatus(v)
		if err := status.Validate(); err != nil {
			return filter, err
		}

		filter.Status = &status
	}

	if v := q.Get("kind"); v != "" {
		kind := entity.InvoiceKind(v)
		if err := kind.Validate(); err != nil {
			return filter, err
		}

		filter.Kind = &kind
	}

	if v := q.Get("clientId"); v != "" {
		clientID, err := uuid.FromString(v)
		if err != nil {
			return filter, fmt.Errorf("parse clientId: %w", err)
		}

		filter.ClientID = &clientID
	}

	if v := q.Get("number"); v != "" {
		filter.Number = &v
	}

	if v := q.Get("page"); v != "" {
		page, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("parse page: %w", err)
		}

		filter.Page = page
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("parse limit: %w", err)
		}

		filter.Limit = limit
	}

	filter.SortBy = entity.InvoiceSortCol(q.Get("sortBy"))
	filter.OrderBy = entity.OrderByCol(q.Get("orderBy"))

	return filter, nil
}

type InvoiceDetailResponse struct {
	InvoiceResponse
	Items    []LineItemResponse `json:"items"`
	Payments []PaymentResponse  `json:"payments"`
}

type LineItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   *uuid.UUID      `json:"productId,omitempty"`
	TripID      *uuid.UUID      `json:"tripId,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

type PaymentResponse struct {
	ID              uuid.UUID            `json:"id"`
	Amount          decimal.Decimal      `json:"amount"`
	PaymentDate     time.Time            `json:"paymentDate"`
	Method          entity.PaymentMethod `json:"method"`
	ReferenceNumber string               `json:"referenceNumber,omitempty"`
	Notes           string               `json:"notes,omitempty"`
}

func (h *Handler) InvoiceDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	inv, items, payments, err := h.s.InvoiceDetail(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get invoice")
		return
	}

	resp := InvoiceDetailResponse{
		InvoiceResponse: newInvoiceResponse(inv),
		Items:           make([]LineItemResponse, 0, len(items)),
		Payments:        make([]PaymentResponse, 0, len(payments)),
	}

	for _, item := range items {
		ir := LineItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total(),
		}

		if item.ProductID != uuid.Nil {
			productID := item.ProductID
			ir.ProductID = &productID
		}

		if item.TripID != uuid.Nil {
			tripID := item.TripID
			ir.TripID = &tripID
		}

		resp.Items = append(resp.Items, ir)
	}

	for _, p := range payments {
		resp.Payments = append(resp.Payments, PaymentResponse{
			ID:              p.ID,
			Amount:          p.Amount,
			PaymentDate:     p.PaymentDate,
			Method:          p.Method,
			ReferenceNumber: p.ReferenceNumber,
			Notes:           p.Notes,
		})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type UpdateInvoiceRequest struct {
	Number         *string              `json:"number"`
	Title          *string              `json:"title"`
	ClientID       *uuid.UUID           `json:"clientId"`
	IssueDate      *time.Time           `json:"issueDate"`
	DueDate        *time.Time           `json:"dueDate"`
	PaymentTerms   *entity.PaymentTerms `json:"paymentTerms"`
	TaxRatePercent *decimal.Decimal     `json:"taxRatePercent"`
	Notes          *string              `json:"notes"`
}

func (h *Handler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	var req UpdateInvoiceRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	inv, err := h.s.UpdateInvoice(ctx, id, service.UpdateInvoiceParams{
		Number:         req.Number,
		Title:          req.Title,
		ClientID:       req.ClientID,
		IssueDate:      req.IssueDate,
		DueDate:        req.DueDate,
		PaymentTerms:   req.PaymentTerms,
		TaxRatePercent: req.TaxRatePercent,
		Notes:          req.Notes,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to update invoice")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newInvoiceResponse(inv))
}

func (h *Handler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	err = h.s.DeleteInvoice(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to delete invoice")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) MarkSent(w http.ResponseWriter, r *http.Request) {
	h.invoiceTransition(w, r, h.s.MarkSent, "Failed to mark invoice as sent")
}

func (h *Handler) CancelInvoice(w http.ResponseWriter, r *http.Request) {
	h.invoiceTransition(w, r, h.s.CancelInvoice, "Failed to cancel invoice")
}

func (h *Handler) SendInvoice(w http.ResponseWriter, r *http.Request) {
	h.invoiceTransition(w, r, h.s.SendInvoice, "Failed to send invoice")
}

func (h *Handler) invoiceTransition(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, id uuid.UUID) (entity.Invoice, error),
	failMsg string,
) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	inv, err := op(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, failMsg)
		return
	}

	SendJSON(ctx, w, http.StatusOK, newInvoiceResponse(inv))
}

func (h *Handler) InvoicePDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	document, filename, err := h.s.RenderInvoicePDF(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to render invoice")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	_, err = w.Write(document)
	if err != nil {
		slog.ErrorContext(ctx, "write pdf response", "error", err)
	}
}

type AddLineItemRequest struct {
	ProductID   *uuid.UUID      `json:"productId"`
	TripID      *uuid.UUID      `json:"tripId"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

func (h *Handler) AddLineItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invoiceID, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	var req AddLineItemRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	params := service.AddLineItemParams{
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	}

	if req.ProductID != nil {
		params.ProductID = *req.ProductID
	}

	if req.TripID != nil {
		params.TripID = *req.TripID
	}

	inv, err := h.s.AddLineItem(ctx, invoiceID, params)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to add line item")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, newInvoiceResponse(inv))
}

type UpdateLineItemRequest struct {
	Description *string          `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
}

func (h *Handler) UpdateLineItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid line item id")
		return
	}

	var req UpdateLineItemRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	inv, err := h.s.UpdateLineItem(ctx, id, service.UpdateLineItemParams{
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to update line item")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newInvoiceResponse(inv))
}

func (h *Handler) DeleteLineItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid line item id")
		return
	}

	inv, err := h.s.DeleteLineItem(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to delete line item")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newInvoiceResponse(inv))
}

type RecordPaymentRequest struct {
	Amount          decimal.Decimal      `json:"amount"`
	PaymentDate     *time.Time           `json:"paymentDate"`
	Method          entity.PaymentMethod `json:"method"`
	ReferenceNumber string               `json:"referenceNumber"`
	Notes           string               `json:"notes"`
}

func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invoiceID, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	var req RecordPaymentRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	params := service.RecordPaymentParams{
		Amount:          req.Amount,
		Method:          req.Method,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
	}

	if req.PaymentDate != nil {
		params.PaymentDate = *req.PaymentDate
	}

	inv, err := h.s.RecordPayment(ctx, invoiceID, params)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to record payment")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, newInvoiceResponse(inv))
}

type UpdatePaymentRequest struct {
	Amount          *decimal.Decimal      `json:"amount"`
	PaymentDate     *time.Time            `json:"paymentDate"`
	Method          *entity.PaymentMethod `json:"method"`
	ReferenceNumber *string               `json:"referenceNumber"`
	Notes           *string               `json:"notes"`
}

func (h *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid payment id")
		return
	}

	var req UpdatePaymentRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	inv, err := h.s.UpdatePayment(ctx, id, service.UpdatePaymentParams{
		Amount:          req.Amount,
		PaymentDate:     req.PaymentDate,
		Method:          req.Method,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to update payment")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newInvoiceResponse(inv))
}

func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid payment id")
		return
	}

	inv, err := h.s.DeletePayment(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to delete payment")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newInvoiceResponse(inv))
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.s.Dashboard(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to load dashboard")
		return
	}

	SendJSON(ctx, w, http.StatusOK, summary)
}

func (h *Handler) RunOverdueSweep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.MarkOverdueInvoices(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to run overdue sweep")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) RunPaymentReminders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.SendPaymentReminders(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to send payment reminders")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error, msgToSend string) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Not found")
	case errors.Is(err, entity.ErrUnauthenticated):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Not authenticated")
	case errors.Is(err, entity.ErrForbidden):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "Action not allowed")
	case errors.Is(err, entity.ErrDuplicateNumber):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Invoice number already used")
	case errors.Is(err, entity.ErrAlreadyPaid):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Invoice is already paid")
	case errors.Is(err, entity.ErrAlreadyCancelled):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Invoice is cancelled")
	case errors.Is(err, entity.ErrNoRecipient):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Client has no email address")
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid input")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, msgToSend)
	}
}
