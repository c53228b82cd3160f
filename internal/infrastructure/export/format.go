package export

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Currency formatea en reales: "R$ 1.234,56", "-R$ 10,00".
func Currency(d decimal.Decimal) string {
	r := d.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Neg()
	}
	return sign + "R$ " + printer.Sprint(number.Decimal(r.InexactFloat64(), number.Scale(2)))
}

// Percent formatea con dos casas decimales: "12,46%".
func Percent(d decimal.Decimal) string {
	return printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2))) + "%"
}
