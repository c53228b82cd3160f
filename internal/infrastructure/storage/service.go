package storage

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/integraprice-api/internal/domain/entity"
	"github.com/jhoicas/integraprice-api/internal/domain/repository"
	"github.com/jhoicas/integraprice-api/pkg/logger"
)

// Claves de los registros persistidos. Cada una es independiente.
const (
	KeyCompanyInfo   = "integraprice_company_info"
	KeyFixedCosts    = "integraprice_fixed_costs"
	KeyTaxes         = "integraprice_taxes"
	KeySalesFees     = "integraprice_sales_fees"
	KeySavedProducts = "integraprice_saved_products"
	KeyUserSession   = "integraprice_user_session"
)

var (
	_ repository.SettingsRepository = (*Service)(nil)
	_ repository.ProductRepository  = (*Service)(nil)
	_ repository.SessionRepository  = (*Service)(nil)
)

// Service serializa los datos de la aplicación como JSON sobre un KeyValueStore.
// Una lectura fallida o corrupta devuelve el valor por defecto; una escritura fallida
// se registra y se ignora. Ninguna falla de almacenamiento llega al dominio.
type Service struct {
	kv  repository.KeyValueStore
	log *logger.Logger
}

// NewService construye el servicio sobre el almacén indicado.
func NewService(kv repository.KeyValueStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{kv: kv, log: log.Named("storage")}
}

// Load lee key y la decodifica en T; devuelve def si no existe o no se puede leer.
func Load[T any](ctx context.Context, s *Service, key string, def T) T {
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("error leyendo del almacenamiento")
		return def
	}
	if !found {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("registro corrupto, se usa el valor por defecto")
		return def
	}
	return v
}

// Save serializa v y la guarda en key.
func (s *Service) Save(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("error serializando para el almacenamiento")
		return
	}
	if err := s.kv.Put(ctx, key, raw); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("error guardando en el almacenamiento")
	}
}

// Remove elimina key.
func (s *Service) Remove(ctx context.Context, key string) {
	if err := s.kv.Delete(ctx, key); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("error eliminando del almacenamiento")
	}
}

// ── Configuración de la empresa ─────────────────────────────────────────────

// LoadSettings lee en paralelo los cuatro registros de configuración.
func (s *Service) LoadSettings(ctx context.Context) entity.CompanySettings {
	var out entity.CompanySettings
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out.Info = Load(gctx, s, KeyCompanyInfo, entity.CompanyInfo{})
		return nil
	})
	g.Go(func() error {
		out.FixedCosts = Load(gctx, s, KeyFixedCosts, entity.DefaultFixedCosts())
		return nil
	})
	g.Go(func() error {
		out.Taxes = Load(gctx, s, KeyTaxes, entity.DefaultTaxes())
		return nil
	})
	g.Go(func() error {
		out.SalesFees = Load(gctx, s, KeySalesFees, entity.DefaultSalesFees())
		return nil
	})
	_ = g.Wait()
	return out
}

func (s *Service) SaveCompanyInfo(ctx context.Context, info entity.CompanyInfo) {
	s.Save(ctx, KeyCompanyInfo, info)
}

func (s *Service) SaveCostLines(ctx context.Context, list entity.CostList, lines []entity.CostLine) {
	key, ok := costListKey(list)
	if !ok {
		s.log.Warn().Str("list", string(list)).Msg("lista sin registro persistente")
		return
	}
	if lines == nil {
		lines = []entity.CostLine{}
	}
	s.Save(ctx, key, lines)
}

func costListKey(list entity.CostList) (string, bool) {
	switch list {
	case entity.CostListFixed:
		return KeyFixedCosts, true
	case entity.CostListTaxes:
		return KeyTaxes, true
	case entity.CostListSalesFees:
		return KeySalesFees, true
	}
	return "", false
}

// ── Productos guardados ─────────────────────────────────────────────────────

func (s *Service) LoadProducts(ctx context.Context) []entity.Product {
	products := Load(ctx, s, KeySavedProducts, []entity.Product{})
	if products == nil {
		return []entity.Product{}
	}
	return products
}

func (s *Service) SaveProducts(ctx context.Context, products []entity.Product) {
	if products == nil {
		products = []entity.Product{}
	}
	s.Save(ctx, KeySavedProducts, products)
}

// ── Sesión ──────────────────────────────────────────────────────────────────

func (s *Service) LoadSession(ctx context.Context) *entity.UserRecord {
	return Load[*entity.UserRecord](ctx, s, KeyUserSession, nil)
}

func (s *Service) SaveSession(ctx context.Context, user entity.UserRecord) {
	s.Save(ctx, KeyUserSession, user)
}

func (s *Service) ClearSession(ctx context.Context) {
	s.Remove(ctx, KeyUserSession)
}
