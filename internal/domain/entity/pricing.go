package entity

import "github.com/shopspring/decimal"

// PricingConfiguration entradas de la calculadora de precio para un producto.
// Los porcentajes se expresan en puntos (20 = 20%). Volume se fuerza a mínimo 1 antes de dividir.
type PricingConfiguration struct {
	FixedCosts    []CostLine
	VariableCosts []CostLine // costo por unidad
	OtherCosts    decimal.Decimal
	DesiredMargin decimal.Decimal
	Taxes         []CostLine
	SalesFees     []CostLine
	Commission    decimal.Decimal
	Discount      decimal.Decimal
	Volume        decimal.Decimal // unidades vendidas por mes
}

// PricingResult salida derivada de una PricingConfiguration. Nunca se modifica; se recalcula entera.
type PricingResult struct {
	TotalFixedCosts        decimal.Decimal
	TotalVariableCostsUnit decimal.Decimal
	TotalTaxesPercent      decimal.Decimal
	TotalSalesFeesPercent  decimal.Decimal
	SafeVolume             decimal.Decimal
	TotalCost              decimal.Decimal // costo mensual total
	UnitCost               decimal.Decimal
	BasePrice              decimal.Decimal
	FinalPrice             decimal.Decimal
	UnitProfit             decimal.Decimal
	RealMargin             decimal.Decimal // %
	MonthlyRevenue         decimal.Decimal
	MonthlyProfit          decimal.Decimal
	// IsValid es false cuando margen + impuestos + tasas + comisión consumen el 100% o más del precio.
	IsValid bool
}
