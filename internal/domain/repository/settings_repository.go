package repository

import (
	"context"

	"github.com/jhoicas/integraprice-api/internal/domain/entity"
)

// SettingsRepository persistencia de la configuración global de la empresa.
// Las lecturas degradan a los valores por defecto y las escrituras no fallan hacia el dominio:
// los errores se registran en la implementación.
type SettingsRepository interface {
	LoadSettings(ctx context.Context) entity.CompanySettings
	SaveCompanyInfo(ctx context.Context, info entity.CompanyInfo)
	SaveCostLines(ctx context.Context, list entity.CostList, lines []entity.CostLine)
}
