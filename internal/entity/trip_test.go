package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

func TestComputeTripProfitability(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name             string
		revenue          string
		expenses         []string
		wantExpenses     string
		wantProfit       string
		wantMargin       string
		wantIsProfitable bool
	}{
		{
			name:             "no expenses",
			revenue:          "500000.00",
			wantExpenses:     "0",
			wantProfit:       "500000.00",
			wantMargin:       "100",
			wantIsProfitable: true,
		},
		{
			name:             "profitable trip",
			revenue:          "500000.00",
			expenses:         []string{"120000.00", "80000.00"},
			wantExpenses:     "200000.00",
			wantProfit:       "300000.00",
			wantMargin:       "60",
			wantIsProfitable: true,
		},
		{
			name:             "loss making trip",
			revenue:          "100000.00",
			expenses:         []string{"150000.00"},
			wantExpenses:     "150000.00",
			wantProfit:       "-50000.00",
			wantMargin:       "-50",
			wantIsProfitable: false,
		},
		{
			name:             "zero revenue does not divide by zero",
			revenue:          "0",
			expenses:         []string{"25000.00"},
			wantExpenses:     "25000.00",
			wantProfit:       "-25000.00",
			wantMargin:       "0",
			wantIsProfitable: false,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			trip := entity.Trip{Revenue: d(tt.revenue)}

			expenses := make([]entity.TripExpense, 0, len(tt.expenses))
			for _, a := range tt.expenses {
				expenses = append(expenses, entity.TripExpense{
					Type:   entity.ExpenseTypeFuel,
					Amount: d(a),
				})
			}

			got := entity.ComputeTripProfitability(trip, expenses)

			requireDecimalEqual(t, tt.wantExpenses, got.TotalExpenses, "total expenses")
			requireDecimalEqual(t, tt.wantProfit, got.Profit, "profit")
			requireDecimalEqual(t, tt.wantMargin, got.ProfitMargin, "profit margin")
			require.Equal(t, tt.wantIsProfitable, got.IsProfitable)
		})
	}
}

func TestExpenseBreakdown(t *testing.T) {
	t.Parallel()

	expenses := []entity.TripExpense{
		{Type: entity.ExpenseTypeFuel, Amount: d("100.00")},
		{Type: entity.ExpenseTypeFuel, Amount: d("50.00")},
		{Type: entity.ExpenseTypeToll, Amount: d("20.00")},
	}

	breakdown := entity.ExpenseBreakdown(expenses)

	require.Len(t, breakdown, 2)
	requireDecimalEqual(t, "150.00", breakdown[entity.ExpenseTypeFuel], "fuel total")
	requireDecimalEqual(t, "20.00", breakdown[entity.ExpenseTypeToll], "toll total")
}
