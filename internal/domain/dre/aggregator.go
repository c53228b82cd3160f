// Package dre agrega productos guardados en un Demonstrativo de Resultado (DRE) simplificado.
//
// Ingresos y deducciones de venta salen del snapshot de cada producto; los costos fijos
// son globales y siempre se leen de la configuración actual de la empresa.
package dre

import (
	"github.com/jhoicas/integraprice-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// BreakdownItem costo variable agrupado por nombre entre todos los productos seleccionados.
type BreakdownItem struct {
	Name  string
	Value decimal.Decimal
}

// Report resultado agregado sobre los productos seleccionados.
type Report struct {
	TotalRevenue          decimal.Decimal
	TotalVariableCosts    decimal.Decimal
	VariableCostBreakdown []BreakdownItem // en orden de primera aparición
	TotalCommissions      decimal.Decimal
	TotalTaxesValue       decimal.Decimal
	TotalSalesFeesValue   decimal.Decimal
	TotalSellingCosts     decimal.Decimal
	TotalCosts            decimal.Decimal
	GrossProfit           decimal.Decimal
	TotalFixedCostsValue  decimal.Decimal
	NetProfit             decimal.Decimal
	IsProfit              bool
	ProductCount          int // productos que efectivamente contribuyeron
}

// Entry producto seleccionado con su cantidad.
type Entry struct {
	ProductID string
	Quantity  int64
}

// Aggregate calcula el DRE. Es total: un ID seleccionado cuyo producto fue eliminado se ignora,
// igual que las cantidades <= 0. El orden de entries define el orden del desglose.
func Aggregate(products []entity.Product, entries []Entry, fixedCosts []entity.CostLine) Report {
	var r Report
	r.TotalRevenue = decimal.Zero
	r.TotalVariableCosts = decimal.Zero
	r.TotalCommissions = decimal.Zero
	r.TotalTaxesValue = decimal.Zero
	r.TotalSalesFeesValue = decimal.Zero
	r.VariableCostBreakdown = []BreakdownItem{}

	index := make(map[string]int)

	for _, e := range entries {
		if e.Quantity <= 0 {
			continue
		}
		p := entity.FindProduct(products, e.ProductID)
		if p == nil {
			continue
		}
		qty := decimal.NewFromInt(e.Quantity)
		r.ProductCount++

		revenue := p.FinalPrice.Mul(qty)
		r.TotalRevenue = r.TotalRevenue.Add(revenue)

		if p.HasVariableBreakdown() {
			for _, vc := range p.VariableCosts {
				lineTotal := vc.Value.Mul(qty)
				r.TotalVariableCosts = r.TotalVariableCosts.Add(lineTotal)
				if i, ok := index[vc.Name]; ok {
					r.VariableCostBreakdown[i].Value = r.VariableCostBreakdown[i].Value.Add(lineTotal)
					continue
				}
				index[vc.Name] = len(r.VariableCostBreakdown)
				r.VariableCostBreakdown = append(r.VariableCostBreakdown, BreakdownItem{Name: vc.Name, Value: lineTotal})
			}
		} else {
			// Sin desglose: se conserva el total pero se pierde el detalle.
			r.TotalVariableCosts = r.TotalVariableCosts.Add(p.UnitCost.Mul(qty))
		}

		r.TotalCommissions = r.TotalCommissions.Add(revenue.Mul(p.Commission).Div(hundred))
		r.TotalTaxesValue = r.TotalTaxesValue.Add(revenue.Mul(p.TaxPercent()).Div(hundred))
		r.TotalSalesFeesValue = r.TotalSalesFeesValue.Add(revenue.Mul(p.SalesFeePercent()).Div(hundred))
	}

	r.TotalSellingCosts = r.TotalCommissions.Add(r.TotalTaxesValue).Add(r.TotalSalesFeesValue)
	r.TotalCosts = r.TotalVariableCosts.Add(r.TotalSellingCosts)
	r.GrossProfit = r.TotalRevenue.Sub(r.TotalCosts)
	r.TotalFixedCostsValue = entity.SumCostLines(fixedCosts)
	r.NetProfit = r.GrossProfit.Sub(r.TotalFixedCostsValue)
	r.IsProfit = r.NetProfit.GreaterThanOrEqual(decimal.Zero)
	return r
}

// PercentOf expresa value como % de total; 0 cuando total <= 0.
// Todas las líneas del DRE usan el ingreso total como base.
func PercentOf(value, total decimal.Decimal) decimal.Decimal {
	if total.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return value.Div(total).Mul(hundred)
}
