package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)

		r.Route("/invoices", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/", h.Invoices)
			r.Post("/", h.CreateInvoice)
			r.Post("/manifest", h.CreateManifestInvoice)
			r.Get("/{id}", h.InvoiceDetail)
			r.Put("/{id}", h.UpdateInvoice)
			r.Delete("/{id}", h.DeleteInvoice)
			r.Post("/{id}/send", h.SendInvoice)
			r.Post("/{id}/mark-sent", h.MarkSent)
			r.Post("/{id}/cancel", h.CancelInvoice)
			r.Get("/{id}/pdf", h.InvoicePDF)
			r.Post("/{id}/items", h.AddLineItem)
			r.Post("/{id}/payments", h.RecordPayment)
		})

		r.Route("/items", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Put("/{id}", h.UpdateLineItem)
			r.Delete("/{id}", h.DeleteLineItem)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Put("/{id}", h.UpdatePayment)
			r.Delete("/{id}", h.DeletePayment)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/", h.Clients)
			r.Post("/", h.CreateClient)
			r.Get("/{id}", h.Client)
			r.Put("/{id}", h.UpdateClient)
			r.Delete("/{id}", h.DeleteClient)
		})

		r.Route("/products", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/", h.Products)
			r.Post("/", h.CreateProduct)
			r.Get("/{id}", h.Product)
			r.Put("/{id}", h.UpdateProduct)
			r.Delete("/{id}", h.DeleteProduct)
		})

		r.Route("/trucks", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/", h.Trucks)
			r.Post("/", h.CreateTruck)
			r.Get("/{id}", h.Truck)
			r.Put("/{id}", h.UpdateTruck)
			r.Delete("/{id}", h.DeleteTruck)
		})

		r.Route("/trips", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/", h.Trips)
			r.Post("/", h.CreateTrip)
			r.Get("/{id}", h.TripDetail)
			r.Put("/{id}", h.UpdateTrip)
			r.Delete("/{id}", h.DeleteTrip)
			r.Post("/{id}/expenses", h.AddTripExpense)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Delete("/{id}", h.DeleteTripExpense)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/", h.Dashboard)
		})

		// Manual triggers for the scheduled jobs, protected by the shared key.
		r.Route("/internal/jobs", func(r chi.Router) {
			r.Use(mw.APIKeyAuth)
			r.Post("/overdue", h.RunOverdueSweep)
			r.Post("/reminders", h.RunPaymentReminders)
		})
	})

	return mux
}
