package customerservice

import (
	"errors"

	"github.com/GlebRadaev/clientes/internal/domain"
	"github.com/shopspring/decimal"
)

var ErrNoActiveCustomers = errors.New("no active customers to average")

// ComputeStatistics aggregates the given customers:
//   - TotalSales is the sum of every total;
//   - AverageActiveSales is the mean total of active customers, rounded half
//     away from zero to the scale of their summed totals;
//   - InactivePositiveCount counts inactive customers with a total above zero.
//
// ErrNoActiveCustomers is returned when there is nothing to average.
func ComputeStatistics(customers []domain.Customer) (*domain.Statistics, error) {
	totalSales := decimal.Zero
	activeSales := decimal.Zero
	var activeCount, inactivePositive int64

	for _, c := range customers {
		totalSales = totalSales.Add(c.Total)

		switch c.Status {
		case domain.StatusActive:
			activeSales = activeSales.Add(c.Total)
			activeCount++
		case domain.StatusInactive:
			if c.Total.IsPositive() {
				inactivePositive++
			}
		}
	}

	if activeCount == 0 {
		return nil, ErrNoActiveCustomers
	}

	return &domain.Statistics{
		TotalSales:            totalSales,
		AverageActiveSales:    activeSales.DivRound(decimal.NewFromInt(activeCount), scale(activeSales)),
		InactivePositiveCount: inactivePositive,
	}, nil
}

func scale(d decimal.Decimal) int32 {
	if exp := d.Exponent(); exp < 0 {
		return -exp
	}
	return 0
}
