package dto

import "github.com/shopspring/decimal"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

// Money redondea a 2 decimales (half-up) para presentación. El dominio nunca redondea.
func Money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
