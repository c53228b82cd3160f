package usecase_test

import (
	"context"
	"testing"

	"github.com/jhoicas/integraprice-api/internal/application/dto"
	"github.com/jhoicas/integraprice-api/internal/application/ports"
	"github.com/jhoicas/integraprice-api/internal/application/usecase"
	"github.com/jhoicas/integraprice-api/internal/infrastructure/memory"
	"github.com/jhoicas/integraprice-api/internal/infrastructure/storage"
	"github.com/jhoicas/integraprice-api/pkg/logger"
)

// stack casos de uso conectados sobre un almacén en memoria.
type stack struct {
	kv       *memory.KVStore
	store    *storage.Service
	settings *usecase.SettingsUseCase
	pricing  *usecase.PricingUseCase
	products *usecase.ProductUseCase
	reports  *usecase.ReportUseCase
	metrics  *countingMetrics
	exporter *fakeExporter
}

func newStack(t *testing.T) *stack {
	t.Helper()
	kv := memory.NewKVStore()
	store := storage.NewService(kv, logger.Nop())
	m := &countingMetrics{}
	exp := &fakeExporter{}
	settings := usecase.NewSettingsUseCase(store)
	pricingUC := usecase.NewPricingUseCase(settings, m)
	products := usecase.NewProductUseCase(store, pricingUC, m)
	reports := usecase.NewReportUseCase(products, settings, map[string]ports.StatementExporter{"pdf": exp}, m)
	return &stack{kv: kv, store: store, settings: settings, pricing: pricingUC, products: products, reports: reports, metrics: m, exporter: exp}
}

func num(s string) dto.Number { return dto.N(dto.ParseNumber(s)) }

func lineIn(name, value string) dto.CostLineInput {
	return dto.CostLineInput{Name: name, Value: num(value)}
}

// exampleRequest: Aluguel 1000, Material 5, margen 20, impuestos 6, tasas 4, volumen 100.
func exampleRequest() dto.PricingRequest {
	fixed := []dto.CostLineInput{lineIn("Aluguel", "1000")}
	taxes := []dto.CostLineInput{lineIn("Simples Nacional", "6")}
	fees := []dto.CostLineInput{lineIn("Taxa Cartão Crédito", "4")}
	return dto.PricingRequest{
		VariableCosts: []dto.CostLineInput{lineIn("Material", "5")},
		DesiredMargin: num("20"),
		Volume:        num("100"),
		FixedCosts:    &fixed,
		Taxes:         &taxes,
		SalesFees:     &fees,
	}
}

type countingMetrics struct {
	ports.NopMetrics
	calculated, saved, deleted, exported int
}

func (m *countingMetrics) PricingCalculated(bool) { m.calculated++ }
func (m *countingMetrics) ProductSaved()          { m.saved++ }
func (m *countingMetrics) ProductDeleted()        { m.deleted++ }
func (m *countingMetrics) ReportExported(string)  { m.exported++ }

type fakeExporter struct {
	last ports.StatementDocument
}

func (f *fakeExporter) Export(doc ports.StatementDocument) ([]byte, error) {
	f.last = doc
	return []byte("%PDF-fake"), nil
}
func (f *fakeExporter) ContentType() string { return "application/pdf" }
func (f *fakeExporter) Extension() string   { return "pdf" }

var bg = context.Background()
