package entity

import "github.com/shopspring/decimal"

// Valores iniciales de la calculadora cuando no hay nada persistido.
var (
	DefaultDesiredMargin = decimal.NewFromInt(20)
	DefaultVolume        = decimal.NewFromInt(100)
)

// Sugerencias de nombres para cada lista (solo lectura, se muestran al usuario al agregar líneas).
var (
	FixedCostSuggestions = []string{
		"Aluguel", "Condomínio", "IPTU", "Energia Elétrica", "Água/Esgoto",
		"Internet/Telefone", "Salários", "Pro-labore", "Contabilidade",
		"Software/Sistemas", "Material de Limpeza", "Manutenção Predial",
		"Marketing Fixo", "Seguros",
	}
	VariableCostSuggestions = []string{
		"Matéria-prima", "Embalagem", "Etiquetas", "Frete (Entrega)",
		"Taxa de Cartão (Antecipação)", "Brindes", "Mão de obra terceirizada",
		"Combustível", "Comissão extra",
	}
	SalesFeeSuggestions = []string{
		"Taxa Cartão Crédito", "Taxa Cartão Débito", "Taxa Marketplace",
		"Comissão Vendedor", "Taxa Antecipação",
	}
)

// DefaultFixedCosts costos fijos iniciales.
func DefaultFixedCosts() []CostLine {
	return []CostLine{
		NewCostLine("Aluguel", decimal.Zero),
		NewCostLine("Salários", decimal.Zero),
	}
}

// DefaultVariableCosts costos variables iniciales de un producto nuevo.
func DefaultVariableCosts() []CostLine {
	return []CostLine{
		NewCostLine("Matéria-prima", decimal.Zero),
		NewCostLine("Embalagem", decimal.Zero),
	}
}

// DefaultTaxes impuestos iniciales.
func DefaultTaxes() []CostLine {
	return []CostLine{NewCostLine("Simples Nacional", decimal.Zero)}
}

// DefaultSalesFees tasas de venta iniciales.
func DefaultSalesFees() []CostLine {
	return []CostLine{
		NewCostLine("Taxa Cartão Crédito", decimal.Zero),
		NewCostLine("Taxa Marketplace", decimal.Zero),
	}
}

// Suggestions devuelve las sugerencias de nombre para la lista indicada.
func Suggestions(list CostList) []string {
	switch list {
	case CostListFixed:
		return FixedCostSuggestions
	case CostListVariable:
		return VariableCostSuggestions
	case CostListSalesFees:
		return SalesFeeSuggestions
	default:
		return nil
	}
}
