package dto

import "github.com/shopspring/decimal"

// PricingRequest configuración de la calculadora. Las listas globales son opcionales:
// si faltan se usan las de la configuración de la empresa.
type PricingRequest struct {
	VariableCosts []CostLineInput  `json:"variable_costs"`
	OtherCosts    Number           `json:"other_costs"`
	DesiredMargin Number           `json:"desired_margin"`
	Commission    Number           `json:"commission"`
	Discount      Number           `json:"discount"`
	Volume        Number           `json:"volume"`
	FixedCosts    *[]CostLineInput `json:"fixed_costs,omitempty"`
	Taxes         *[]CostLineInput `json:"taxes,omitempty"`
	SalesFees     *[]CostLineInput `json:"sales_fees,omitempty"`
}

// PricingResultResponse resultado del motor redondeado para presentación.
type PricingResultResponse struct {
	TotalFixedCosts        decimal.Decimal `json:"total_fixed_costs"`
	TotalVariableCostsUnit decimal.Decimal `json:"total_variable_costs_unit"`
	TotalTaxesPercent      decimal.Decimal `json:"total_taxes_percent"`
	TotalSalesFeesPercent  decimal.Decimal `json:"total_sales_fees_percent"`
	SafeVolume             decimal.Decimal `json:"safe_volume"`
	TotalCost              decimal.Decimal `json:"total_cost"`
	UnitCost               decimal.Decimal `json:"unit_cost"`
	BasePrice              decimal.Decimal `json:"base_price"`
	FinalPrice             decimal.Decimal `json:"final_price"`
	UnitProfit             decimal.Decimal `json:"unit_profit"`
	RealMargin             decimal.Decimal `json:"real_margin"`
	MonthlyRevenue         decimal.Decimal `json:"monthly_revenue"`
	MonthlyProfit          decimal.Decimal `json:"monthly_profit"`
	IsValid                bool            `json:"is_valid"`
	MarginBelowTarget      bool            `json:"margin_below_target"`
}

// PricingDefaultsResponse configuración inicial de la calculadora.
type PricingDefaultsResponse struct {
	VariableCosts []CostLineResponse `json:"variable_costs"`
	OtherCosts    decimal.Decimal    `json:"other_costs"`
	DesiredMargin decimal.Decimal    `json:"desired_margin"`
	Commission    decimal.Decimal    `json:"commission"`
	Discount      decimal.Decimal    `json:"discount"`
	Volume        decimal.Decimal    `json:"volume"`
	FixedCosts    []CostLineResponse `json:"fixed_costs"`
	Taxes         []CostLineResponse `json:"taxes"`
	SalesFees     []CostLineResponse `json:"sales_fees"`
	Suggestions   []string           `json:"suggestions"`
}
