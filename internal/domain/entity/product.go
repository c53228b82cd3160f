package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultProductName nombre asignado al guardar un producto sin nombre.
const DefaultProductName = "Produto Sem Nome"

var hundred = decimal.NewFromInt(100)

// Product es la foto congelada de un producto guardado desde la calculadora.
// Copia sus costos variables, impuestos, tasas y comisión en el momento de guardar:
// cambios posteriores en la configuración global no lo afectan. Solo se crea o se elimina.
type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	SKU  string `json:"sku"`
	// VariableCosts nil significa "sin desglose": el DRE usa UnitCost como respaldo.
	VariableCosts []CostLine      `json:"variable_costs"`
	Volume        decimal.Decimal `json:"volume"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	FinalPrice    decimal.Decimal `json:"final_price"`
	Commission    decimal.Decimal `json:"commission"` // %
	Taxes         []CostLine      `json:"taxes"`      // %
	SalesFees     []CostLine      `json:"sales_fees"` // %
	CreatedAt     time.Time       `json:"created_at"`
}

// HasVariableBreakdown indica si el snapshot trae el desglose de costos variables.
func (p *Product) HasVariableBreakdown() bool {
	return p.VariableCosts != nil
}

// TaxPercent suma de los impuestos congelados (%).
func (p *Product) TaxPercent() decimal.Decimal {
	return SumCostLines(p.Taxes)
}

// SalesFeePercent suma de las tasas de venta congeladas (%).
func (p *Product) SalesFeePercent() decimal.Decimal {
	return SumCostLines(p.SalesFees)
}

// VariableUnitCost costo variable por unidad según el snapshot; UnitCost si no hay desglose.
func (p *Product) VariableUnitCost() decimal.Decimal {
	if !p.HasVariableBreakdown() {
		return p.UnitCost
	}
	return SumCostLines(p.VariableCosts)
}

// SnapshotUnitProfit ganancia por unidad calculada solo con datos del snapshot:
// FinalPrice - costo variable - FinalPrice × (impuestos + tasas + comisión) / 100.
func (p *Product) SnapshotUnitProfit() decimal.Decimal {
	pct := p.TaxPercent().Add(p.SalesFeePercent()).Add(p.Commission)
	deductions := p.FinalPrice.Mul(pct).Div(hundred)
	return p.FinalPrice.Sub(p.VariableUnitCost()).Sub(deductions)
}

// FindProduct devuelve el producto con ese ID o nil.
func FindProduct(products []Product, id string) *Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

// PricedUnitProfit ganancia por unidad con el costo unitario congelado, que incluye el
// prorrateo de costos fijos. Coincide con la ganancia que mostró la calculadora al guardar.
func (p *Product) PricedUnitProfit() decimal.Decimal {
	pct := p.TaxPercent().Add(p.SalesFeePercent()).Add(p.Commission)
	deductions := p.FinalPrice.Mul(pct).Div(hundred)
	return p.FinalPrice.Sub(p.UnitCost).Sub(deductions)
}
