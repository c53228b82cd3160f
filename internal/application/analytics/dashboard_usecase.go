// Package analytics contiene el resumen del Dashboard sobre los productos guardados.
package analytics

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/integraprice-api/internal/application/dto"
	"github.com/jhoicas/integraprice-api/internal/domain/entity"
	"github.com/jhoicas/integraprice-api/internal/domain/pricing"
	"github.com/jhoicas/integraprice-api/internal/domain/repository"
)

const dashboardTopProducts = 5 // número de productos en el widget del dashboard

var hundred = decimal.NewFromInt(100)

// DashboardUseCase genera el resumen de facturación y ganancia potencial.
//
// Cada producto se proyecta con su propio volumen mensual y el costo unitario congelado,
// sin depender de la configuración global actual.
type DashboardUseCase struct {
	products repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{products: products}
}

type projection struct {
	product       entity.Product
	monthlyProfit decimal.Decimal
	margin        decimal.Decimal
}

// GetSummary construye el resumen. Sin productos todo queda en 0.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) *dto.DashboardSummaryResponse {
	products := uc.products.LoadProducts(ctx)

	revenue, profit, marginSum := decimal.Zero, decimal.Zero, decimal.Zero
	rows := make([]projection, 0, len(products))
	for _, p := range products {
		volume := pricing.SafeVolume(p.Volume)
		unitProfit := p.PricedUnitProfit()
		margin := decimal.Zero
		if p.FinalPrice.GreaterThan(decimal.Zero) {
			margin = unitProfit.Div(p.FinalPrice).Mul(hundred)
		}
		monthlyProfit := unitProfit.Mul(volume)

		revenue = revenue.Add(p.FinalPrice.Mul(volume))
		profit = profit.Add(monthlyProfit)
		marginSum = marginSum.Add(margin)
		rows = append(rows, projection{product: p, monthlyProfit: monthlyProfit, margin: margin})
	}

	avg := decimal.Zero
	if len(products) > 0 {
		avg = marginSum.Div(decimal.NewFromInt(int64(len(products))))
	}

	// Estable: a igual ganancia se respeta el orden de guardado.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].monthlyProfit.GreaterThan(rows[j].monthlyProfit)
	})
	if len(rows) > dashboardTopProducts {
		rows = rows[:dashboardTopProducts]
	}
	top := make([]dto.TopProductResponse, 0, len(rows))
	for _, r := range rows {
		top = append(top, dto.TopProductResponse{
			ID:            r.product.ID,
			Name:          r.product.Name,
			SKU:           r.product.SKU,
			FinalPrice:    dto.Money(r.product.FinalPrice),
			MonthlyProfit: dto.Money(r.monthlyProfit),
			Margin:        dto.Money(r.margin),
		})
	}

	return &dto.DashboardSummaryResponse{
		ProductCount:   len(products),
		MonthlyRevenue: dto.Money(revenue),
		MonthlyProfit:  dto.Money(profit),
		AverageMargin:  dto.Money(avg),
		TopProducts:    top,
	}
}
