package usecase

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/integraprice-api/internal/application/dto"
	"github.com/jhoicas/integraprice-api/internal/domain"
	"github.com/jhoicas/integraprice-api/internal/domain/entity"
	"github.com/jhoicas/integraprice-api/internal/domain/repository"
)

// SettingsUseCase administra la configuración global de la empresa (datos, costos fijos,
// impuestos y tasas). El estado se carga una vez y cada cambio se guarda de inmediato.
type SettingsUseCase struct {
	repo repository.SettingsRepository

	mu       sync.Mutex
	loaded   bool
	settings entity.CompanySettings
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// load debe llamarse con mu tomado.
func (uc *SettingsUseCase) load(ctx context.Context) *entity.CompanySettings {
	if !uc.loaded {
		uc.settings = uc.repo.LoadSettings(ctx)
		uc.loaded = true
	}
	return &uc.settings
}

// Current devuelve una copia independiente de la configuración vigente.
func (uc *SettingsUseCase) Current(ctx context.Context) entity.CompanySettings {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	s := uc.load(ctx)
	return entity.CompanySettings{
		Info:       s.Info,
		FixedCosts: entity.CloneCostLines(s.FixedCosts),
		Taxes:      entity.CloneCostLines(s.Taxes),
		SalesFees:  entity.CloneCostLines(s.SalesFees),
	}
}

// Get devuelve la configuración para presentación.
func (uc *SettingsUseCase) Get(ctx context.Context) *dto.SettingsResponse {
	s := uc.Current(ctx)
	return &dto.SettingsResponse{
		Company:         toCompanyInfoResponse(s.Info),
		FixedCosts:      toCostLineResponses(s.FixedCosts),
		Taxes:           toCostLineResponses(s.Taxes),
		SalesFees:       toCostLineResponses(s.SalesFees),
		TotalFixedCosts: dto.Money(entity.SumCostLines(s.FixedCosts)),
		TotalTaxes:      dto.Money(entity.SumCostLines(s.Taxes)),
		TotalSalesFees:  dto.Money(entity.SumCostLines(s.SalesFees)),
	}
}

// UpdateCompanyInfo aplica los campos presentes en la solicitud y guarda.
func (uc *SettingsUseCase) UpdateCompanyInfo(ctx context.Context, in dto.UpdateCompanyInfoRequest) *dto.CompanyInfoResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	s := uc.load(ctx)

	info := s.Info
	setIf(&info.LegalName, in.LegalName)
	setIf(&info.TradeName, in.TradeName)
	setIf(&info.CNPJ, in.CNPJ)
	setIf(&info.Email, in.Email)
	setIf(&info.Phone, in.Phone)
	if a := in.Address; a != nil {
		setIf(&info.Address.Street, a.Street)
		setIf(&info.Address.Number, a.Number)
		setIf(&info.Address.Complement, a.Complement)
		setIf(&info.Address.Neighborhood, a.Neighborhood)
		setIf(&info.Address.City, a.City)
		setIf(&info.Address.State, a.State)
		setIf(&info.Address.ZipCode, a.ZipCode)
	}
	s.Info = info
	uc.repo.SaveCompanyInfo(ctx, info)

	out := toCompanyInfoResponse(info)
	return &out
}

// AddCostLine agrega una línea con valor 0 al final de la lista.
func (uc *SettingsUseCase) AddCostLine(ctx context.Context, list string, in dto.AddCostLineRequest) (*dto.CostLineResponse, error) {
	cl, err := globalList(list)
	if err != nil {
		return nil, err
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	s := uc.load(ctx)

	line := entity.NewCostLine(in.Name, decimal.Zero)
	lines := append(entity.CloneCostLines(s.Lines(cl)), line)
	uc.persist(ctx, s, cl, lines)

	return &dto.CostLineResponse{ID: line.ID, Name: line.Name, Value: dto.Money(line.Value)}, nil
}

// UpdateCostLine cambia nombre y/o valor de una línea existente.
func (uc *SettingsUseCase) UpdateCostLine(ctx context.Context, list, id string, in dto.UpdateCostLineRequest) (*dto.CostLineResponse, error) {
	cl, err := globalList(list)
	if err != nil {
		return nil, err
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	s := uc.load(ctx)

	lines := entity.CloneCostLines(s.Lines(cl))
	i := entity.FindCostLine(lines, id)
	if i < 0 {
		return nil, domain.ErrCostLineNotFound
	}
	setIf(&lines[i].Name, in.Name)
	if in.Value != nil {
		lines[i].Value = in.Value.Decimal
	}
	uc.persist(ctx, s, cl, lines)

	l := lines[i]
	return &dto.CostLineResponse{ID: l.ID, Name: l.Name, Value: dto.Money(l.Value)}, nil
}

// RemoveCostLine elimina una línea de la lista.
func (uc *SettingsUseCase) RemoveCostLine(ctx context.Context, list, id string) error {
	cl, err := globalList(list)
	if err != nil {
		return err
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	s := uc.load(ctx)

	current := s.Lines(cl)
	i := entity.FindCostLine(current, id)
	if i < 0 {
		return domain.ErrCostLineNotFound
	}
	lines := make([]entity.CostLine, 0, len(current)-1)
	lines = append(lines, current[:i]...)
	lines = append(lines, current[i+1:]...)
	uc.persist(ctx, s, cl, lines)
	return nil
}

// Suggestions catálogo de nombres sugeridos.
func (uc *SettingsUseCase) Suggestions() dto.SuggestionsResponse {
	return dto.SuggestionsResponse{
		FixedCosts:    entity.Suggestions(entity.CostListFixed),
		VariableCosts: entity.Suggestions(entity.CostListVariable),
		SalesFees:     entity.Suggestions(entity.CostListSalesFees),
	}
}

func (uc *SettingsUseCase) persist(ctx context.Context, s *entity.CompanySettings, list entity.CostList, lines []entity.CostLine) {
	s.SetLines(list, lines)
	uc.repo.SaveCostLines(ctx, list, lines)
}

func globalList(list string) (entity.CostList, error) {
	cl := entity.CostList(list)
	if !cl.IsGlobal() {
		return "", domain.ErrUnknownCostList
	}
	return cl, nil
}
