package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/integraprice-api/internal/application/dto"
	"github.com/jhoicas/integraprice-api/internal/application/ports"
	"github.com/jhoicas/integraprice-api/internal/domain"
	"github.com/jhoicas/integraprice-api/internal/domain/dre"
	"github.com/jhoicas/integraprice-api/internal/domain/entity"
)

// ExportedFile archivo generado por un exportador.
type ExportedFile struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ReportUseCase DRE sobre los productos guardados. Mantiene en memoria una selección
// por usuario (no se persiste) y permite también calcular con una selección explícita.
type ReportUseCase struct {
	products  *ProductUseCase
	settings  *SettingsUseCase
	exporters map[string]ports.StatementExporter
	metrics   ports.Metrics
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*dre.Selection
}

// NewReportUseCase construye el caso de uso. exporters se indexa por formato (pdf, xlsx).
func NewReportUseCase(
	products *ProductUseCase,
	settings *SettingsUseCase,
	exporters map[string]ports.StatementExporter,
	metrics ports.Metrics,
) *ReportUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &ReportUseCase{
		products:  products,
		settings:  settings,
		exporters: exporters,
		metrics:   metrics,
		now:       time.Now,
		sessions:  make(map[string]*dre.Selection),
	}
}

// selection debe llamarse con mu tomado.
func (uc *ReportUseCase) selection(userID string) *dre.Selection {
	s, ok := uc.sessions[userID]
	if !ok {
		s = dre.NewSelection()
		uc.sessions[userID] = s
	}
	return s
}

// ── Selección ───────────────────────────────────────────────────────────────

// Toggle marca o desmarca un producto guardado.
func (uc *ReportUseCase) Toggle(ctx context.Context, userID, productID string) (*dto.SelectionEntryResponse, error) {
	if entity.FindProduct(uc.products.All(ctx), productID) == nil {
		return nil, domain.ErrProductNotFound
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	s := uc.selection(userID)
	selected := s.Toggle(productID)
	return &dto.SelectionEntryResponse{ProductID: productID, Selected: selected, Quantity: s.Quantity(productID)}, nil
}

// SetQuantity fija la cantidad vendida. Se trunca a entero y los negativos quedan en 0.
func (uc *ReportUseCase) SetQuantity(ctx context.Context, userID, productID string, in dto.SetQuantityRequest) (*dto.SelectionEntryResponse, error) {
	if entity.FindProduct(uc.products.All(ctx), productID) == nil {
		return nil, domain.ErrProductNotFound
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	s := uc.selection(userID)
	q := s.SetQuantity(productID, in.Quantity.Count())
	return &dto.SelectionEntryResponse{ProductID: productID, Selected: s.IsSelected(productID), Quantity: q}, nil
}

// Selection productos marcados del usuario, en orden de selección.
func (uc *ReportUseCase) Selection(userID string) []dto.SelectionEntryResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	entries := uc.selection(userID).Entries()
	out := make([]dto.SelectionEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.SelectionEntryResponse{ProductID: e.ProductID, Selected: true, Quantity: e.Quantity})
	}
	return out
}

// Clear vacía la selección del usuario.
func (uc *ReportUseCase) Clear(userID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.sessions, userID)
}

// ── DRE ─────────────────────────────────────────────────────────────────────

// SessionReport DRE de la selección del usuario. Los productos eliminados salen de la selección.
func (uc *ReportUseCase) SessionReport(ctx context.Context, userID string) *dto.DREResponse {
	r, lines := uc.sessionStatement(ctx, userID)
	uc.metrics.ReportGenerated("session")
	return toDREResponse(r, lines)
}

// Report DRE de una selección explícita. Un producto repetido cuenta una vez, con la última cantidad.
func (uc *ReportUseCase) Report(ctx context.Context, in dto.DRERequest) *dto.DREResponse {
	entries := make([]dre.Entry, 0, len(in.Items))
	for _, it := range in.Items {
		entries = append(entries, dre.Entry{ProductID: it.ProductID, Quantity: it.Quantity.Count()})
	}
	r := dre.Aggregate(uc.products.All(ctx), dre.MergeEntries(entries), uc.settings.Current(ctx).FixedCosts)
	uc.metrics.ReportGenerated("explicit")
	return toDREResponse(r, dre.Statement(r))
}

// Export genera el DRE de la selección del usuario en el formato pedido.
func (uc *ReportUseCase) Export(ctx context.Context, userID, format string) (*ExportedFile, error) {
	exp, ok := uc.exporters[format]
	if !ok {
		return nil, fmt.Errorf("formato %q: %w", format, domain.ErrInvalidInput)
	}
	r, lines := uc.sessionStatement(ctx, userID)
	now := uc.now()
	content, err := exp.Export(ports.StatementDocument{
		Company:     uc.settings.Current(ctx).Info,
		Report:      r,
		Lines:       lines,
		GeneratedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("exportar DRE %s: %w", format, err)
	}
	uc.metrics.ReportExported(format)
	return &ExportedFile{
		Content:     content,
		ContentType: exp.ContentType(),
		Filename:    fmt.Sprintf("dre_%s.%s", now.Format("2006-01-02"), exp.Extension()),
	}, nil
}

func (uc *ReportUseCase) sessionStatement(ctx context.Context, userID string) (dre.Report, []dre.Line) {
	products := uc.products.All(ctx)
	fixed := uc.settings.Current(ctx).FixedCosts

	uc.mu.Lock()
	s := uc.selection(userID)
	s.Prune(func(id string) bool { return entity.FindProduct(products, id) != nil })
	entries := s.Entries()
	uc.mu.Unlock()

	r := dre.Aggregate(products, entries, fixed)
	return r, dre.Statement(r)
}

func toDREResponse(r dre.Report, lines []dre.Line) *dto.DREResponse {
	breakdown := make([]dto.BreakdownItemResponse, 0, len(r.VariableCostBreakdown))
	for _, b := range r.VariableCostBreakdown {
		breakdown = append(breakdown, dto.BreakdownItemResponse{Name: b.Name, Value: dto.Money(b.Value)})
	}
	out := make([]dto.DRELineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.DRELineResponse{
			Label:   l.Label,
			Value:   dto.Money(l.Value),
			Percent: dto.Money(l.Percent),
			Kind:    string(l.Kind),
		})
	}
	return &dto.DREResponse{
		TotalRevenue:          dto.Money(r.TotalRevenue),
		TotalVariableCosts:    dto.Money(r.TotalVariableCosts),
		VariableCostBreakdown: breakdown,
		TotalCommissions:      dto.Money(r.TotalCommissions),
		TotalTaxesValue:       dto.Money(r.TotalTaxesValue),
		TotalSalesFeesValue:   dto.Money(r.TotalSalesFeesValue),
		TotalSellingCosts:     dto.Money(r.TotalSellingCosts),
		TotalCosts:            dto.Money(r.TotalCosts),
		GrossProfit:           dto.Money(r.GrossProfit),
		TotalFixedCostsValue:  dto.Money(r.TotalFixedCostsValue),
		NetProfit:             dto.Money(r.NetProfit),
		IsProfit:              r.IsProfit,
		ProductCount:          r.ProductCount,
		Lines:                 out,
	}
}
