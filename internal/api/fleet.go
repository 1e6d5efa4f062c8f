package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

type TruckRequest struct {
	PlateNumber       string             `json:"plateNumber"`
	Model             string             `json:"model"`
	Manufacturer      string             `json:"manufacturer"`
	YearOfManufacture int                `json:"yearOfManufacture"`
	CapacityTons      decimal.Decimal    `json:"capacityTons"`
	Status            entity.TruckStatus `json:"status"`
	DriverName        string             `json:"driverName"`
	DriverPhone       string             `json:"driverPhone"`
	Notes             string             `json:"notes"`
}

func (req TruckRequest) toEntity() entity.Truck {
	return entity.Truck{
		PlateNumber:       req.PlateNumber,
		Model:             req.Model,
		Manufacturer:      req.Manufacturer,
		YearOfManufacture: req.YearOfManufacture,
		CapacityTons:      req.CapacityTons,
		Status:            req.Status,
		DriverName:        req.DriverName,
		DriverPhone:       req.DriverPhone,
		Notes:             req.Notes,
	}
}

func (h *Handler) CreateTruck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TruckRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	truck, err := h.s.CreateTruck(ctx, req.toEntity())
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to create truck")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, truck)
}

func (h *Handler) Truck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid truck id")
		return
	}

	truck, err := h.s.Truck(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get truck")
		return
	}

	SendJSON(ctx, w, http.StatusOK, truck)
}

func (h *Handler) Trucks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	trucks, err := h.s.Trucks(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to list trucks")
		return
	}

	SendJSON(ctx, w, http.StatusOK, trucks)
}

func (h *Handler) UpdateTruck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid truck id")
		return
	}

	var req TruckRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	truck := req.toEntity()
	truck.ID = id

	truck, err = h.s.UpdateTruck(ctx, truck)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to update truck")
		return
	}

	SendJSON(ctx, w, http.StatusOK, truck)
}

func (h *Handler) DeleteTruck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid truck id")
		return
	}

	err = h.s.DeleteTruck(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to delete truck")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type TripRequest struct {
	TruckID          *uuid.UUID        `json:"truckId"`
	TripNumber       string            `json:"tripNumber"`
	Origin           string            `json:"origin"`
	Destination      string            `json:"destination"`
	DistanceKM       decimal.Decimal   `json:"distanceKm"`
	StartDate        time.Time         `json:"startDate"`
	EndDate          *time.Time        `json:"endDate"`
	Status           entity.TripStatus `json:"status"`
	CargoDescription string            `json:"cargoDescription"`
	CargoWeightTons  decimal.Decimal   `json:"cargoWeightTons"`
	Revenue          decimal.Decimal   `json:"revenue"`
	Notes            string            `json:"notes"`
}

func (req TripRequest) toEntity() entity.Trip {
	trip := entity.Trip{
		TripNumber:       req.TripNumber,
		Origin:           req.Origin,
		Destination:      req.Destination,
		DistanceKM:       req.DistanceKM,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Status:           req.Status,
		CargoDescription: req.CargoDescription,
		CargoWeightTons:  req.CargoWeightTons,
		Revenue:          req.Revenue,
		Notes:            req.Notes,
	}

	if req.TruckID != nil {
		trip.TruckID = *req.TruckID
	}

	return trip
}

func (h *Handler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TripRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	trip, err := h.s.CreateTrip(ctx, req.toEntity())
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to create trip")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, trip)
}

func (h *Handler) Trips(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	trips, err := h.s.Trips(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to list trips")
		return
	}

	SendJSON(ctx, w, http.StatusOK, trips)
}

type TripDetailResponse struct {
	Trip          entity.Trip                            `json:"trip"`
	Expenses      []entity.TripExpense                   `json:"expenses"`
	Profitability entity.TripProfitability               `json:"profitability"`
	Breakdown     map[entity.ExpenseType]decimal.Decimal `json:"expenseBreakdown"`
}

// TripDetail returns the trip with expenses and the profitability numbers the
// back office uses to judge whether a route earns its keep.
func (h *Handler) TripDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid trip id")
		return
	}

	detail, err := h.s.TripDetail(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get trip")
		return
	}

	SendJSON(ctx, w, http.StatusOK, TripDetailResponse{
		Trip:          detail.Trip,
		Expenses:      detail.Expenses,
		Profitability: detail.Profitability,
		Breakdown:     detail.Breakdown,
	})
}

func (h *Handler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid trip id")
		return
	}

	var req TripRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	trip := req.toEntity()
	trip.ID = id

	trip, err = h.s.UpdateTrip(ctx, trip)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to update trip")
		return
	}

	SendJSON(ctx, w, http.StatusOK, trip)
}

func (h *Handler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid trip id")
		return
	}

	err = h.s.DeleteTrip(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to delete trip")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type TripExpenseRequest struct {
	Type          entity.ExpenseType `json:"type"`
	Description   string             `json:"description"`
	Amount        decimal.Decimal    `json:"amount"`
	Date          *time.Time         `json:"date"`
	ReceiptNumber string             `json:"receiptNumber"`
	Notes         string             `json:"notes"`
}

func (h *Handler) AddTripExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tripID, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid trip id")
		return
	}

	var req TripExpenseRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	expense := entity.TripExpense{
		Type:          req.Type,
		Description:   req.Description,
		Amount:        req.Amount,
		ReceiptNumber: req.ReceiptNumber,
		Notes:         req.Notes,
	}

	if req.Date != nil {
		expense.Date = *req.Date
	}

	expense, err = h.s.AddTripExpense(ctx, tripID, expense)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to add trip expense")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, expense)
}

func (h *Handler) DeleteTripExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid expense id")
		return
	}

	err = h.s.DeleteTripExpense(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to delete trip expense")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
