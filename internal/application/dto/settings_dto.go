package dto

import "github.com/shopspring/decimal"

// CostLineInput línea de costo en una solicitud (valor permisivo).
type CostLineInput struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value Number `json:"value"`
}

// CostLineResponse línea de costo de salida.
type CostLineResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// AddCostLineRequest agrega una línea con valor 0.
type AddCostLineRequest struct {
	Name string `json:"name"`
}

// UpdateCostLineRequest cambios parciales de una línea.
type UpdateCostLineRequest struct {
	Name  *string `json:"name"`
	Value *Number `json:"value"`
}

// AddressPatch cambios parciales de la dirección.
type AddressPatch struct {
	Street       *string `json:"street"`
	Number       *string `json:"number"`
	Complement   *string `json:"complement"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	ZipCode      *string `json:"zip_code"`
}

// UpdateCompanyInfoRequest cambios parciales de los datos de la empresa.
type UpdateCompanyInfoRequest struct {
	LegalName *string       `json:"legal_name"`
	TradeName *string       `json:"trade_name"`
	CNPJ      *string       `json:"cnpj"`
	Email     *string       `json:"email"`
	Phone     *string       `json:"phone"`
	Address   *AddressPatch `json:"address"`
}

// AddressResponse dirección de la empresa.
type AddressResponse struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

// CompanyInfoResponse datos de la empresa.
type CompanyInfoResponse struct {
	LegalName string          `json:"legal_name"`
	TradeName string          `json:"trade_name"`
	CNPJ      string          `json:"cnpj"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Address   AddressResponse `json:"address"`
}

// SettingsResponse configuración global completa.
type SettingsResponse struct {
	Company    CompanyInfoResponse `json:"company"`
	FixedCosts []CostLineResponse  `json:"fixed_costs"`
	Taxes      []CostLineResponse  `json:"taxes"`
	SalesFees  []CostLineResponse  `json:"sales_fees"`
	// Totales de referencia para la pantalla de configuración.
	TotalFixedCosts decimal.Decimal `json:"total_fixed_costs"`
	TotalTaxes      decimal.Decimal `json:"total_taxes"`
	TotalSalesFees  decimal.Decimal `json:"total_sales_fees"`
}

// SuggestionsResponse catálogo de nombres sugeridos por lista.
type SuggestionsResponse struct {
	FixedCosts    []string `json:"fixed_costs"`
	VariableCosts []string `json:"variable_costs"`
	SalesFees     []string `json:"sales_fees"`
}
