package entity

import (
	"github.com/shopspring/decimal"
)

// DashboardSummary aggregates the figures shown on the back-office landing
// page. All sums come straight from the stored derived columns.
type DashboardSummary struct {
	TotalInvoices int                   `json:"totalInvoices"`
	StatusCounts  map[InvoiceStatus]int `json:"statusCounts"`

	// Revenue is the sum of totals over PAID invoices.
	Revenue decimal.Decimal `json:"revenue"`
	// Outstanding is the sum of outstanding balances over open invoices.
	Outstanding decimal.Decimal `json:"outstanding"`

	TotalTrips   int             `json:"totalTrips"`
	TripRevenue  decimal.Decimal `json:"tripRevenue"`
	TripExpenses decimal.Decimal `json:"tripExpenses"`
	TripProfit   decimal.Decimal `json:"tripProfit"`
}
