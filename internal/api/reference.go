package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

type ClientRequest struct {
	Name        string `json:"name"`
	AddressLine string `json:"addressLine"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	TaxNumber   string `json:"taxNumber"`
}

func (req ClientRequest) toEntity() entity.Client {
	return entity.Client{
		Name:        req.Name,
		AddressLine: req.AddressLine,
		State:       req.State,
		PostalCode:  req.PostalCode,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		TaxNumber:   req.TaxNumber,
	}
}

func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ClientRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	client, err := h.s.CreateClient(ctx, req.toEntity())
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to create client")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, client)
}

func (h *Handler) Client(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
		return
	}

	client, err := h.s.Client(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get client")
		return
	}

	SendJSON(ctx, w, http.StatusOK, client)
}

func (h *Handler) Clients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clients, err := h.s.Clients(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to list clients")
		return
	}

	SendJSON(ctx, w, http.StatusOK, clients)
}

func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
		return
	}

	var req ClientRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	client := req.toEntity()
	client.ID = id

	client, err = h.s.UpdateClient(ctx, client)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to update client")
		return
	}

	SendJSON(ctx, w, http.StatusOK, client)
}

func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
		return
	}

	err = h.s.DeleteClient(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to delete client")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type ProductRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Currency    entity.Currency `json:"currency"`
}

type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Currency    entity.Currency `json:"currency"`
}

func newProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Quantity:    p.Quantity,
		Price:       p.Price,
		Currency:    p.Currency,
	}
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProductRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	product, err := h.s.CreateProduct(ctx, entity.Product{
		Title:       req.Title,
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Currency:    req.Currency,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to create product")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, newProductResponse(product))
}

func (h *Handler) Product(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid product id")
		return
	}

	product, err := h.s.Product(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get product")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newProductResponse(product))
}

func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.s.Products(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to list products")
		return
	}

	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, newProductResponse(p))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid product id")
		return
	}

	var req ProductRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	product, err := h.s.UpdateProduct(ctx, entity.Product{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Currency:    req.Currency,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to update product")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newProductResponse(product))
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid product id")
		return
	}

	err = h.s.DeleteProduct(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
