package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

func TestFormatNaira(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"0", "₦0.00"},
		{"5", "₦5.00"},
		{"950.5", "₦950.50"},
		{"1000", "₦1,000.00"},
		{"268750", "₦268,750.00"},
		{"1234567.89", "₦1,234,567.89"},
		{"-45000", "-₦45,000.00"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			got := entity.FormatNaira(decimal.RequireFromString(tc.in))
			require.Equal(t, tc.want, got)
		})
	}
}
