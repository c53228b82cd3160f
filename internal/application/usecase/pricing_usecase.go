package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/integraprice-api/internal/application/dto"
	"github.com/jhoicas/integraprice-api/internal/application/ports"
	"github.com/jhoicas/integraprice-api/internal/domain/entity"
	"github.com/jhoicas/integraprice-api/internal/domain/pricing"
)

// PricingUseCase calculadora de precios sobre la configuración global vigente.
type PricingUseCase struct {
	settings *SettingsUseCase
	metrics  ports.Metrics
}

// NewPricingUseCase construye el caso de uso.
func NewPricingUseCase(settings *SettingsUseCase, metrics ports.Metrics) *PricingUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &PricingUseCase{settings: settings, metrics: metrics}
}

// Configuration arma la configuración del motor: las listas globales ausentes en la
// solicitud se toman de la configuración de la empresa.
func (uc *PricingUseCase) Configuration(ctx context.Context, in dto.PricingRequest) entity.PricingConfiguration {
	s := uc.settings.Current(ctx)
	cfg := entity.PricingConfiguration{
		FixedCosts:    s.FixedCosts,
		VariableCosts: toCostLines(in.VariableCosts),
		OtherCosts:    in.OtherCosts.Decimal,
		DesiredMargin: in.DesiredMargin.Decimal,
		Taxes:         s.Taxes,
		SalesFees:     s.SalesFees,
		Commission:    in.Commission.Decimal,
		Discount:      in.Discount.Decimal,
		Volume:        in.Volume.Decimal,
	}
	if in.FixedCosts != nil {
		cfg.FixedCosts = toCostLines(*in.FixedCosts)
	}
	if in.Taxes != nil {
		cfg.Taxes = toCostLines(*in.Taxes)
	}
	if in.SalesFees != nil {
		cfg.SalesFees = toCostLines(*in.SalesFees)
	}
	return cfg
}

// Calculate ejecuta el motor y marca si el margen real quedó debajo del deseado.
func (uc *PricingUseCase) Calculate(ctx context.Context, in dto.PricingRequest) *dto.PricingResultResponse {
	cfg := uc.Configuration(ctx, in)
	res := pricing.Compute(cfg)
	uc.metrics.PricingCalculated(res.IsValid)
	return toPricingResultResponse(cfg, res)
}

// Defaults configuración inicial de la calculadora con las listas globales vigentes.
func (uc *PricingUseCase) Defaults(ctx context.Context) *dto.PricingDefaultsResponse {
	s := uc.settings.Current(ctx)
	return &dto.PricingDefaultsResponse{
		VariableCosts: toCostLineResponses(entity.DefaultVariableCosts()),
		OtherCosts:    decimal.Zero,
		DesiredMargin: entity.DefaultDesiredMargin,
		Commission:    decimal.Zero,
		Discount:      decimal.Zero,
		Volume:        entity.DefaultVolume,
		FixedCosts:    toCostLineResponses(s.FixedCosts),
		Taxes:         toCostLineResponses(s.Taxes),
		SalesFees:     toCostLineResponses(s.SalesFees),
		Suggestions:   entity.Suggestions(entity.CostListVariable),
	}
}

func toPricingResultResponse(cfg entity.PricingConfiguration, r entity.PricingResult) *dto.PricingResultResponse {
	// Comparación a 2 decimales, igual que en pantalla.
	below := dto.Money(r.RealMargin).LessThan(dto.Money(cfg.DesiredMargin))
	return &dto.PricingResultResponse{
		TotalFixedCosts:        dto.Money(r.TotalFixedCosts),
		TotalVariableCostsUnit: dto.Money(r.TotalVariableCostsUnit),
		TotalTaxesPercent:      dto.Money(r.TotalTaxesPercent),
		TotalSalesFeesPercent:  dto.Money(r.TotalSalesFeesPercent),
		SafeVolume:             r.SafeVolume,
		TotalCost:              dto.Money(r.TotalCost),
		UnitCost:               dto.Money(r.UnitCost),
		BasePrice:              dto.Money(r.BasePrice),
		FinalPrice:             dto.Money(r.FinalPrice),
		UnitProfit:             dto.Money(r.UnitProfit),
		RealMargin:             dto.Money(r.RealMargin),
		MonthlyRevenue:         dto.Money(r.MonthlyRevenue),
		MonthlyProfit:          dto.Money(r.MonthlyProfit),
		IsValid:                r.IsValid,
		MarginBelowTarget:      below,
	}
}
