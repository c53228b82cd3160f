package dto

import "github.com/shopspring/decimal"

// TopProductResponse producto destacado por ganancia mensual estimada.
type TopProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	FinalPrice    decimal.Decimal `json:"final_price"`
	MonthlyProfit decimal.Decimal `json:"monthly_profit"`
	Margin        decimal.Decimal `json:"margin"`
}

// DashboardSummaryResponse resumen de los productos guardados.
type DashboardSummaryResponse struct {
	ProductCount   int                  `json:"product_count"`
	MonthlyRevenue decimal.Decimal      `json:"monthly_revenue"` // Σ precio final × volumen
	MonthlyProfit  decimal.Decimal      `json:"monthly_profit"`  // Σ ganancia unitaria × volumen
	AverageMargin  decimal.Decimal      `json:"average_margin"`  // promedio simple de márgenes
	TopProducts    []TopProductResponse `json:"top_products"`
}
