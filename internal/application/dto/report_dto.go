package dto

import "github.com/shopspring/decimal"

// SelectionItem producto y cantidad vendida en el período.
type SelectionItem struct {
	ProductID string `json:"product_id"`
	Quantity  Number `json:"quantity"`
}

// DRERequest selección explícita para calcular el DRE sin usar la sesión.
type DRERequest struct {
	Items []SelectionItem `json:"items"`
}

// SetQuantityRequest cantidad de un producto seleccionado.
type SetQuantityRequest struct {
	Quantity Number `json:"quantity"`
}

// BreakdownItemResponse costo de compra agrupado por nombre.
type BreakdownItemResponse struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// DRELineResponse fila del estado de resultados.
type DRELineResponse struct {
	Label   string          `json:"label"`
	Value   decimal.Decimal `json:"value"`
	Percent decimal.Decimal `json:"percent"`
	Kind    string          `json:"kind"`
}

// DREResponse totales del DRE y filas listas para mostrar.
type DREResponse struct {
	TotalRevenue          decimal.Decimal         `json:"total_revenue"`
	TotalVariableCosts    decimal.Decimal         `json:"total_variable_costs"`
	VariableCostBreakdown []BreakdownItemResponse `json:"variable_cost_breakdown"`
	TotalCommissions      decimal.Decimal         `json:"total_commissions"`
	TotalTaxesValue       decimal.Decimal         `json:"total_taxes_value"`
	TotalSalesFeesValue   decimal.Decimal         `json:"total_sales_fees_value"`
	TotalSellingCosts     decimal.Decimal         `json:"total_selling_costs"`
	TotalCosts            decimal.Decimal         `json:"total_costs"`
	GrossProfit           decimal.Decimal         `json:"gross_profit"`
	TotalFixedCostsValue  decimal.Decimal         `json:"total_fixed_costs_value"`
	NetProfit             decimal.Decimal         `json:"net_profit"`
	IsProfit              bool                    `json:"is_profit"`
	ProductCount          int                     `json:"product_count"`
	Lines                 []DRELineResponse       `json:"lines"`
}

// SelectionEntryResponse estado de un producto en la selección.
type SelectionEntryResponse struct {
	ProductID string `json:"product_id"`
	Selected  bool   `json:"selected"`
	Quantity  int64  `json:"quantity"`
}
