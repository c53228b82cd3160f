package entity

// Address dirección de la empresa.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

// CompanyInfo datos generales de la empresa (una sola por instalación).
type CompanyInfo struct {
	LegalName string  `json:"legal_name"` // razón social
	TradeName string  `json:"trade_name"` // nombre fantasía
	CNPJ      string  `json:"cnpj"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Address   Address `json:"address"`
}

// CompanySettings configuración global compartida por todas las vistas.
// Los costos fijos se leen siempre en vivo; impuestos y tasas se congelan en cada Product al guardar.
type CompanySettings struct {
	Info       CompanyInfo
	FixedCosts []CostLine
	Taxes      []CostLine
	SalesFees  []CostLine
}

// Lines devuelve la lista global indicada.
func (s *CompanySettings) Lines(list CostList) []CostLine {
	switch list {
	case CostListFixed:
		return s.FixedCosts
	case CostListTaxes:
		return s.Taxes
	case CostListSalesFees:
		return s.SalesFees
	}
	return nil
}

// SetLines reemplaza la lista global indicada.
func (s *CompanySettings) SetLines(list CostList, lines []CostLine) {
	switch list {
	case CostListFixed:
		s.FixedCosts = lines
	case CostListTaxes:
		s.Taxes = lines
	case CostListSalesFees:
		s.SalesFees = lines
	}
}
