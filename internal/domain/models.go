package domain

import "github.com/shopspring/decimal"

const (
	// StatusActive активный клиент, учитывается в среднем по продажам.
	StatusActive string = "activo"
	// StatusInactive неактивный клиент.
	StatusInactive string = "inactivo"
)

type Customer struct {
	ID     int64           `db:"id"`
	Name   string          `db:"nombre"`
	Status string          `db:"estado"`
	Total  decimal.Decimal `db:"total"`
}

type Statistics struct {
	TotalSales            decimal.Decimal
	AverageActiveSales    decimal.Decimal
	InactivePositiveCount int64
}
