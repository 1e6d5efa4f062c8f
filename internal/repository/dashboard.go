package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

func (r *Repository) DashboardSummary(ctx context.Context, userID uuid.UUID) (entity.DashboardSummary, error) {
	s := entity.DashboardSummary{
		StatusCounts: make(map[entity.InvoiceStatus]int),
		Revenue:      decimal.Zero,
		Outstanding:  decimal.Zero,
		TripRevenue:  decimal.Zero,
		TripExpenses: decimal.Zero,
		TripProfit:   decimal.Zero,
	}

	const invoiceQ = `
	SELECT status, COUNT(*), COALESCE(SUM(total), 0), COALESCE(SUM(outstanding), 0)
	FROM invoices
	WHERE created_by = $1
	GROUP BY status`

	rows, err := r.db.Query(ctx, invoiceQ, userID)
	if err != nil {
		return entity.DashboardSummary{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status             entity.InvoiceStatus
			count              int
			total, outstanding decimal.Decimal
		)

		err = rows.Scan(&status, &count, &total, &outstanding)
		if err != nil {
			return entity.DashboardSummary{}, err
		}

		s.StatusCounts[status] = count
		s.TotalInvoices += count

		switch status {
		case entity.InvoiceStatusPaid:
			s.Revenue = s.Revenue.Add(total)
		case entity.InvoiceStatusCancelled:
			// Excluded from both revenue and outstanding.
		default:
			s.Outstanding = s.Outstanding.Add(outstanding)
		}
	}

	const tripQ = `
	SELECT COUNT(*),
		COALESCE(SUM(revenue), 0),
		COALESCE((SELECT SUM(amount) FROM trip_expenses), 0)
	FROM trips`

	err = r.db.QueryRow(ctx, tripQ).Scan(&s.TotalTrips, &s.TripRevenue, &s.TripExpenses)
	if err != nil {
		return entity.DashboardSummary{}, err
	}

	s.TripProfit = s.TripRevenue.Sub(s.TripExpenses)

	return s, nil
}
