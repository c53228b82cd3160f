package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveProductRequest guarda la configuración actual de la calculadora como producto.
type SaveProductRequest struct {
	Name          string         `json:"name"`
	SKU           string         `json:"sku"`
	Configuration PricingRequest `json:"configuration"`
}

// ProductResponse snapshot de un producto guardado (valores redondeados).
type ProductResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	SKU           string             `json:"sku"`
	VariableCosts []CostLineResponse `json:"variable_costs"`
	Volume        decimal.Decimal    `json:"volume"`
	UnitCost      decimal.Decimal    `json:"unit_cost"`
	FinalPrice    decimal.Decimal    `json:"final_price"`
	Commission    decimal.Decimal    `json:"commission"`
	Taxes         []CostLineResponse `json:"taxes"`
	SalesFees     []CostLineResponse `json:"sales_fees"`
	UnitProfit    decimal.Decimal    `json:"unit_profit"`
	CreatedAt     time.Time          `json:"created_at"`
}

// ProductListResponse lista de productos guardados.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
