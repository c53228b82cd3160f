// Package pricing implementa el motor de precificación (servicio de dominio puro).
//
// Cadena de fórmulas:
//
//	CustoTotal     = Fixos + VariáveisUnit × Volume + Outros
//	CustoUnitário  = CustoTotal / Volume
//	Denominador    = 1 - margem - impostos - taxas - comissão        (frações)
//	PreçoBase      = CustoUnitário / Denominador                     (si Denominador > 0)
//	PreçoFinal     = PreçoBase × (1 - desconto)
//	LucroUnitário  = PreçoFinal - CustoUnitário - PreçoFinal × (impostos + taxas + comissão)
//	MargemReal     = LucroUnitário / PreçoFinal × 100                (si PreçoFinal > 0)
package pricing

import (
	"github.com/jhoicas/integraprice-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SafeVolume fuerza el volumen a mínimo 1 para proteger todas las divisiones.
func SafeVolume(volume decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.NewFromInt(1), volume)
}

// Fraction convierte puntos porcentuales a fracción (20 -> 0.2).
func Fraction(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(hundred)
}

// Compute deriva el resultado completo de una configuración. Es total: nunca falla.
// Una combinación imposible (denominador <= 0) devuelve BasePrice 0 e IsValid false.
func Compute(cfg entity.PricingConfiguration) entity.PricingResult {
	totalFixed := entity.SumCostLines(cfg.FixedCosts)
	totalVariableUnit := entity.SumCostLines(cfg.VariableCosts)
	totalTaxesPct := entity.SumCostLines(cfg.Taxes)
	totalSalesFeesPct := entity.SumCostLines(cfg.SalesFees)

	volume := SafeVolume(cfg.Volume)

	// Los fijos no se multiplican por el volumen; los variables sí.
	totalCost := totalFixed.Add(totalVariableUnit.Mul(volume)).Add(cfg.OtherCosts)
	unitCost := totalCost.Div(volume)

	margin := Fraction(cfg.DesiredMargin)
	taxes := Fraction(totalTaxesPct)
	salesFees := Fraction(totalSalesFeesPct)
	commission := Fraction(cfg.Commission)
	discount := Fraction(cfg.Discount)

	denominator := decimal.NewFromInt(1).Sub(margin).Sub(taxes).Sub(salesFees).Sub(commission)
	valid := denominator.GreaterThan(decimal.Zero)

	basePrice := decimal.Zero
	if valid {
		basePrice = unitCost.Div(denominator)
	}
	finalPrice := basePrice.Mul(decimal.NewFromInt(1).Sub(discount))

	// Impuestos, tasas y comisión se cobran sobre el precio final (deducciones de factura).
	unitProfit := finalPrice.
		Sub(unitCost).
		Sub(finalPrice.Mul(taxes)).
		Sub(finalPrice.Mul(salesFees)).
		Sub(finalPrice.Mul(commission))

	realMargin := decimal.Zero
	if finalPrice.GreaterThan(decimal.Zero) {
		realMargin = unitProfit.Div(finalPrice).Mul(hundred)
	}

	return entity.PricingResult{
		TotalFixedCosts:        totalFixed,
		TotalVariableCostsUnit: totalVariableUnit,
		TotalTaxesPercent:      totalTaxesPct,
		TotalSalesFeesPercent:  totalSalesFeesPct,
		SafeVolume:             volume,
		TotalCost:              totalCost,
		UnitCost:               unitCost,
		BasePrice:              basePrice,
		FinalPrice:             finalPrice,
		UnitProfit:             unitProfit,
		RealMargin:             realMargin,
		MonthlyRevenue:         finalPrice.Mul(volume),
		MonthlyProfit:          unitProfit.Mul(volume),
		IsValid:                valid,
	}
}

// Snapshot congela la configuración y su resultado en un Product.
// Copia las listas para que ediciones posteriores de la configuración no lo alteren.
func Snapshot(id, name, sku string, cfg entity.PricingConfiguration, res entity.PricingResult) entity.Product {
	if name == "" {
		name = entity.DefaultProductName
	}
	variable := entity.CloneCostLines(cfg.VariableCosts)
	if variable == nil {
		variable = []entity.CostLine{}
	}
	return entity.Product{
		ID:            id,
		Name:          name,
		SKU:           sku,
		VariableCosts: variable,
		Volume:        cfg.Volume,
		UnitCost:      res.UnitCost,
		FinalPrice:    res.FinalPrice,
		Commission:    cfg.Commission,
		Taxes:         entity.CloneCostLines(cfg.Taxes),
		SalesFees:     entity.CloneCostLines(cfg.SalesFees),
	}
}
