package dre

import "github.com/shopspring/decimal"

// LineKind nivel visual de una línea del demonstrativo.
type LineKind string

const (
	KindHeader    LineKind = "header"
	KindSubHeader LineKind = "subheader"
	KindItem      LineKind = "item"
	KindResult    LineKind = "result"
)

// Line fila del DRE con su valor y el % sobre el ingreso total.
type Line struct {
	Label   string
	Value   decimal.Decimal
	Percent decimal.Decimal
	Kind    LineKind
}

// Etiquetas del demonstrativo.
const (
	LabelRevenue        = "(+) Receita total"
	LabelSales          = "Vendas"
	LabelTotalCost      = "(-) Custo total"
	LabelPurchaseCosts  = "(-) Custo sobre a compra"
	LabelNoBreakdown    = "-"
	LabelSellingCosts   = "(-) Custo sobre a venda"
	LabelCommissions    = "Comissões sobre venda"
	LabelTaxes          = "Impostos"
	LabelSalesFees      = "Taxas de cartão"
	LabelGrossProfit    = "(=) Lucro bruto"
	LabelFixedExpenses  = "(-) Despesas fixas"
	LabelOperatingCosts = "Despesas operacionais"
	LabelNetProfit      = "(=) Lucro líquido"
	LabelNetLoss        = "(=) Prejuízo líquido"
)

// Statement arma las filas del DRE en el orden en que se presentan.
func Statement(r Report) []Line {
	total := r.TotalRevenue
	line := func(label string, v decimal.Decimal, kind LineKind) Line {
		return Line{Label: label, Value: v, Percent: PercentOf(v, total), Kind: kind}
	}

	out := []Line{
		line(LabelRevenue, r.TotalRevenue, KindHeader),
		line(LabelSales, r.TotalRevenue, KindItem),
		line(LabelTotalCost, r.TotalCosts, KindHeader),
		line(LabelPurchaseCosts, r.TotalVariableCosts, KindSubHeader),
	}
	for _, item := range r.VariableCostBreakdown {
		out = append(out, line(item.Name, item.Value, KindItem))
	}
	if len(r.VariableCostBreakdown) == 0 {
		out = append(out, line(LabelNoBreakdown, decimal.Zero, KindItem))
	}

	netLabel := LabelNetProfit
	if !r.IsProfit {
		netLabel = LabelNetLoss
	}
	out = append(out,
		line(LabelSellingCosts, r.TotalSellingCosts, KindSubHeader),
		line(LabelCommissions, r.TotalCommissions, KindItem),
		line(LabelTaxes, r.TotalTaxesValue, KindItem),
		line(LabelSalesFees, r.TotalSalesFeesValue, KindItem),
		line(LabelGrossProfit, r.GrossProfit, KindHeader),
		line(LabelFixedExpenses, r.TotalFixedCostsValue, KindHeader),
		line(LabelOperatingCosts, r.TotalFixedCostsValue, KindItem),
		line(netLabel, r.NetProfit, KindResult),
	)
	return out
}
