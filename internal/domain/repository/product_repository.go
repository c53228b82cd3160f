package repository

import (
	"context"

	"github.com/jhoicas/integraprice-api/internal/domain/entity"
)

// ProductRepository persistencia de la colección de productos guardados (se guarda entera).
type ProductRepository interface {
	LoadProducts(ctx context.Context) []entity.Product
	SaveProducts(ctx context.Context, products []entity.Product)
}
