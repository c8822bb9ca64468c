package customerservice

import (
	"testing"

	"github.com/GlebRadaev/clientes/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customer(status, total string) domain.Customer {
	return domain.Customer{Status: status, Total: decimal.RequireFromString(total)}
}

func TestComputeStatistics(t *testing.T) {
	tests := []struct {
		name             string
		customers        []domain.Customer
		expectedTotal    string
		expectedAverage  string
		expectedInactive int64
	}{
		{
			name: "Mixed statuses",
			customers: []domain.Customer{
				customer(domain.StatusActive, "10"),
				customer(domain.StatusActive, "20"),
				customer(domain.StatusInactive, "5"),
				customer(domain.StatusInactive, "-3"),
			},
			expectedTotal:    "32",
			expectedAverage:  "15",
			expectedInactive: 1,
		},
		{
			name: "Average rounds half up at the scale of the totals",
			customers: []domain.Customer{
				customer(domain.StatusActive, "0.01"),
				customer(domain.StatusActive, "0.02"),
			},
			expectedTotal:    "0.03",
			expectedAverage:  "0.02",
			expectedInactive: 0,
		},
		{
			name: "Negative average rounds away from zero",
			customers: []domain.Customer{
				customer(domain.StatusActive, "-0.01"),
				customer(domain.StatusActive, "-0.02"),
			},
			expectedTotal:    "-0.03",
			expectedAverage:  "-0.02",
			expectedInactive: 0,
		},
		{
			name: "Integer totals truncate to integer average",
			customers: []domain.Customer{
				customer(domain.StatusActive, "1"),
				customer(domain.StatusActive, "1"),
				customer(domain.StatusActive, "2"),
			},
			expectedTotal:    "4",
			expectedAverage:  "1",
			expectedInactive: 0,
		},
		{
			name: "Unknown statuses only count towards the total",
			customers: []domain.Customer{
				customer(domain.StatusActive, "100.50"),
				customer("pendiente", "40"),
				customer("INACTIVO", "7"),
				customer(domain.StatusInactive, "0"),
				customer(domain.StatusInactive, "0.01"),
			},
			expectedTotal:    "147.51",
			expectedAverage:  "100.5",
			expectedInactive: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := ComputeStatistics(tt.customers)
			require.NoError(t, err)

			assert.True(t, decimal.RequireFromString(tt.expectedTotal).Equal(stats.TotalSales), "total: %s", stats.TotalSales)
			assert.True(t, decimal.RequireFromString(tt.expectedAverage).Equal(stats.AverageActiveSales), "average: %s", stats.AverageActiveSales)
			assert.Equal(t, tt.expectedInactive, stats.InactivePositiveCount)
		})
	}
}

func TestComputeStatistics_NoActiveCustomers(t *testing.T) {
	tests := []struct {
		name      string
		customers []domain.Customer
	}{
		{name: "Empty input", customers: nil},
		{
			name: "Only inactive customers",
			customers: []domain.Customer{
				customer(domain.StatusInactive, "5"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := ComputeStatistics(tt.customers)
			assert.ErrorIs(t, err, ErrNoActiveCustomers)
			assert.Nil(t, stats)
		})
	}
}
