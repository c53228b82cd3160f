package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/integraprice-api/internal/application/dto"
	"github.com/jhoicas/integraprice-api/internal/application/ports"
	"github.com/jhoicas/integraprice-api/internal/domain"
	"github.com/jhoicas/integraprice-api/internal/domain/entity"
	"github.com/jhoicas/integraprice-api/internal/domain/pricing"
	"github.com/jhoicas/integraprice-api/internal/domain/repository"
)

// ProductUseCase guarda, lista y elimina snapshots de productos.
// Un producto guardado no se edita: para cambiarlo se guarda uno nuevo.
type ProductUseCase struct {
	repo    repository.ProductRepository
	pricing *PricingUseCase
	metrics ports.Metrics
	now     func() time.Time

	mu sync.Mutex // serializa leer-modificar-guardar de la colección
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, pricingUC *PricingUseCase, metrics ports.Metrics) *ProductUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &ProductUseCase{repo: repo, pricing: pricingUC, metrics: metrics, now: time.Now}
}

// Save calcula la configuración recibida y la congela como un producto nuevo.
func (uc *ProductUseCase) Save(ctx context.Context, in dto.SaveProductRequest) *dto.ProductResponse {
	cfg := uc.pricing.Configuration(ctx, in.Configuration)
	res := pricing.Compute(cfg)

	p := pricing.Snapshot(uuid.New().String(), in.Name, in.SKU, cfg, res)
	p.CreatedAt = uc.now().UTC()

	uc.mu.Lock()
	products := uc.repo.LoadProducts(ctx)
	products = append(products, p)
	uc.repo.SaveProducts(ctx, products)
	uc.mu.Unlock()

	uc.metrics.ProductSaved()
	return toProductResponse(p)
}

// List devuelve los productos en orden de guardado.
func (uc *ProductUseCase) List(ctx context.Context) *dto.ProductListResponse {
	products := uc.repo.LoadProducts(ctx)
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

// Get devuelve un producto por ID o domain.ErrProductNotFound.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p := entity.FindProduct(uc.repo.LoadProducts(ctx), id)
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(*p), nil
}

// All devuelve los snapshots sin redondear (entrada del DRE y del dashboard).
func (uc *ProductUseCase) All(ctx context.Context) []entity.Product {
	return uc.repo.LoadProducts(ctx)
}

// Delete elimina el producto. Un ID desconocido no es error.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	products := uc.repo.LoadProducts(ctx)
	kept := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return
	}
	uc.repo.SaveProducts(ctx, kept)
	uc.metrics.ProductDeleted()
}

func toProductResponse(p entity.Product) *dto.ProductResponse {
	var variable []dto.CostLineResponse
	if p.HasVariableBreakdown() {
		variable = toCostLineResponses(p.VariableCosts)
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		VariableCosts: variable,
		Volume:        p.Volume,
		UnitCost:      dto.Money(p.UnitCost),
		FinalPrice:    dto.Money(p.FinalPrice),
		Commission:    dto.Money(p.Commission),
		Taxes:         toCostLineResponses(p.Taxes),
		SalesFees:     toCostLineResponses(p.SalesFees),
		UnitProfit:    dto.Money(p.SnapshotUnitProfit()),
		CreatedAt:     p.CreatedAt,
	}
}
