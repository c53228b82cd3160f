package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CostList identifica una de las listas de líneas que maneja la calculadora.
type CostList string

const (
	CostListFixed     CostList = "fixed_costs"    // costos fijos mensuales (globales)
	CostListVariable  CostList = "variable_costs" // costos variables por unidad (por producto)
	CostListTaxes     CostList = "taxes"          // impuestos en % (globales)
	CostListSalesFees CostList = "sales_fees"     // tasas de venta en % (globales)
)

// Valid indica si la lista es una de las conocidas.
func (l CostList) Valid() bool {
	switch l {
	case CostListFixed, CostListVariable, CostListTaxes, CostListSalesFees:
		return true
	}
	return false
}

// IsGlobal indica si la lista pertenece a la configuración de la empresa y no al producto.
func (l CostList) IsGlobal() bool {
	return l == CostListFixed || l == CostListTaxes || l == CostListSalesFees
}

// CostLine es un costo o tasa con nombre.
// Value es moneda en costos fijos/variables y puntos porcentuales en impuestos/tasas.
// No se valida el signo: los valores negativos se propagan por las fórmulas.
type CostLine struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// NewCostLine crea una línea con ID único.
func NewCostLine(name string, value decimal.Decimal) CostLine {
	return CostLine{ID: uuid.New().String(), Name: name, Value: value}
}

// SumCostLines suma los valores de todas las líneas.
func SumCostLines(lines []CostLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Value)
	}
	return total
}

// CloneCostLines devuelve una copia independiente. Conserva la diferencia entre nil y vacío:
// un snapshot sin desglose (nil) no es lo mismo que un desglose vacío.
func CloneCostLines(lines []CostLine) []CostLine {
	if lines == nil {
		return nil
	}
	out := make([]CostLine, len(lines))
	copy(out, lines)
	return out
}

// FindCostLine devuelve el índice de la línea con ese ID o -1.
func FindCostLine(lines []CostLine, id string) int {
	for i, l := range lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}
