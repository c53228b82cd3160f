package dto

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// numericPrefix acepta el prefijo numérico de una cadena ("12.5kg" -> 12.5).
// Grupos: signo, mantisa, exponente.
var numericPrefix = regexp.MustCompile(`^([+-]?)(\d+\.?\d*|\.\d+)(?:[eE]([+-]?\d+))?`)

// Límites de ParseNumber: fuera de ellos el valor se toma como 0.
const (
	maxMagnitude      = 30 // dígitos enteros, exponente incluido
	maxExponent       = 30
	maxFractionDigits = 16
)

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// Number decimal permisivo para entradas: acepta número JSON, cadena numérica o null.
// Cualquier valor no numérico se interpreta como 0; nunca produce error de decodificación.
type Number struct {
	decimal.Decimal
}

// N construye un Number desde un decimal.
func N(d decimal.Decimal) Number {
	return Number{Decimal: d}
}

// UnmarshalJSON implementa json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	n.Decimal = ParseNumber(string(b))
	return nil
}

// MarshalJSON serializa como número JSON.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.Decimal.String()), nil
}

// Count parte entera del valor, saturada al rango de int64.
func (n Number) Count() int64 {
	switch {
	case n.GreaterThan(maxInt64):
		return math.MaxInt64
	case n.LessThan(minInt64):
		return math.MinInt64
	}
	return n.IntPart()
}

// ParseNumber convierte texto libre (o un literal JSON) a decimal; 0 si no es numérico
// o si excede los límites de magnitud.
func ParseNumber(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
	}
	m := numericPrefix.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero
	}
	sign, mantissa, expText := m[1], m[2], m[3]

	exp := 0
	if expText != "" {
		v, err := strconv.Atoi(expText)
		if err != nil || v > maxExponent || v < -maxExponent {
			return decimal.Zero
		}
		exp = v
	}

	intPart, frac, _ := strings.Cut(mantissa, ".")
	intPart = strings.TrimLeft(intPart, "0")
	if len(intPart) > maxMagnitude || len(intPart)+exp > maxMagnitude {
		return decimal.Zero
	}
	if len(frac) > maxFractionDigits {
		frac = frac[:maxFractionDigits]
	}

	text := sign + intPart
	if intPart == "" {
		text += "0"
	}
	if frac != "" {
		text += "." + frac
	}
	if exp != 0 {
		text += "e" + strconv.Itoa(exp)
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero
	}
	return d
}
