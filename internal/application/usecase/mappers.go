package usecase

import (
	"github.com/google/uuid"

	"github.com/jhoicas/integraprice-api/internal/application/dto"
	"github.com/jhoicas/integraprice-api/internal/domain/entity"
)

func toCostLineResponses(lines []entity.CostLine) []dto.CostLineResponse {
	out := make([]dto.CostLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.CostLineResponse{ID: l.ID, Name: l.Name, Value: dto.Money(l.Value)})
	}
	return out
}

// toCostLines convierte líneas de entrada; las que llegan sin ID reciben uno nuevo.
func toCostLines(in []dto.CostLineInput) []entity.CostLine {
	out := make([]entity.CostLine, 0, len(in))
	for _, l := range in {
		id := l.ID
		if id == "" {
			id = uuid.New().String()
		}
		out = append(out, entity.CostLine{ID: id, Name: l.Name, Value: l.Value.Decimal})
	}
	return out
}

func toCompanyInfoResponse(info entity.CompanyInfo) dto.CompanyInfoResponse {
	a := info.Address
	return dto.CompanyInfoResponse{
		LegalName: info.LegalName,
		TradeName: info.TradeName,
		CNPJ:      info.CNPJ,
		Email:     info.Email,
		Phone:     info.Phone,
		Address: dto.AddressResponse{
			Street:       a.Street,
			Number:       a.Number,
			Complement:   a.Complement,
			Neighborhood: a.Neighborhood,
			City:         a.City,
			State:        a.State,
			ZipCode:      a.ZipCode,
		},
	}
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
