package dto

import "github.com/shopspring/decimal"

// Amounts are rendered as JSON numbers, not strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type CreateCustomerRequestDTO struct {
	Nombre string          `json:"nombre" example:"Ana Torres"`
	Estado string          `json:"estado" example:"activo"`
	Total  decimal.Decimal `json:"total" swaggertype:"number" example:"1500.50"`
}

type CustomerResponseDTO struct {
	ID     int64           `json:"id" example:"1"`
	Nombre string          `json:"nombre" example:"Ana Torres"`
	Estado string          `json:"estado" example:"activo"`
	Total  decimal.Decimal `json:"total" swaggertype:"number" example:"1500.50"`
}

type StatisticsResponseDTO struct {
	TotalVentas           decimal.Decimal `json:"totalVentas" swaggertype:"number" example:"32"`
	PromedioVentasActivos decimal.Decimal `json:"promedioVentasActivos" swaggertype:"number" example:"15"`
	CantidadInactivos     int64           `json:"cantidadInactivos" example:"1"`
}
