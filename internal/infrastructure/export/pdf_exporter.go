// Package export genera el DRE en archivos descargables.
//
// Layout del PDF (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre fantasía + CNPJ  │  DRE + Fecha              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descrição | Valor | % da receita                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: productos considerados + leyenda                   │
//	└─────────────────────────────────────────────────────────────┘
package export

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/integraprice-api/internal/application/ports"
	"github.com/jhoicas/integraprice-api/internal/domain/dre"
	"github.com/jhoicas/integraprice-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorProfit  = &props.Color{Red: 21, Green: 128, Blue: 61}
	colorLoss    = &props.Color{Red: 185, Green: 28, Blue: 28}
)

const appName = "IntegraPrice"

var _ ports.StatementExporter = (*PDFExporter)(nil)

// ── Exporter ──────────────────────────────────────────────────────────────────

// PDFExporter implementa ports.StatementExporter usando Maroto v2.
type PDFExporter struct{}

// NewPDFExporter construye el exportador.
func NewPDFExporter() *PDFExporter { return &PDFExporter{} }

func (e *PDFExporter) ContentType() string { return "application/pdf" }
func (e *PDFExporter) Extension() string   { return "pdf" }

// Export genera el PDF y devuelve sus bytes.
func (e *PDFExporter) Export(doc ports.StatementDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("DRE - Demonstrativo de Resultado", true).
		WithAuthor(companyName(doc.Company), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(3))

	m.AddRows(tableHeaderRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
	for _, l := range doc.Lines {
		m.AddRows(statementRow(l, doc.Report.IsProfit))
	}

	m.AddRows(row.New(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(doc.Report))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(doc ports.StatementDocument) core.Row {
	cnpj := nonEmpty(doc.Company.CNPJ, "—")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(companyName(doc.Company), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CNPJ: "+cnpj, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("DEMONSTRATIVO DE RESULTADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("DRE", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("Gerado em "+doc.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		h("Descrição", 7, align.Left),
		h("Valor", 3, align.Right),
		h("% da receita", 2, align.Right),
	)
}

// statementRow: el estilo depende del nivel de la línea.
func statementRow(l dre.Line, isProfit bool) core.Row {
	p := props.Text{Size: 9, Top: 1}
	height := 6.0
	switch l.Kind {
	case dre.KindHeader:
		p.Style = fontstyle.Bold
		p.Color = colorPrimary
		height = 7
	case dre.KindSubHeader:
		p.Style = fontstyle.Bold
		p.Left = 4
	case dre.KindItem:
		p.Size = 8
		p.Left = 8
		p.Color = colorGray
	case dre.KindResult:
		p.Style = fontstyle.Bold
		p.Size = 10
		height = 8
		if l.Label == dre.LabelNetProfit || l.Label == dre.LabelNetLoss {
			p.Color = colorLoss
			if isProfit {
				p.Color = colorProfit
			}
		}
	}

	right := p
	right.Align = align.Right
	right.Left = 0

	return row.New(height).Add(
		col.New(7).Add(text.New(l.Label, p)),
		col.New(3).Add(text.New(Currency(l.Value), right)),
		col.New(2).Add(text.New(Percent(l.Percent), right)),
	)
}

func footerRow(r dre.Report) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Produtos considerados: %d", r.ProductCount), props.Text{
			Size: 8, Top: 2, Color: colorGray,
		}),
		text.New("Valores calculados a partir dos produtos salvos e dos custos fixos atuais. Gerado por "+appName+".", props.Text{
			Size: 7, Top: 7, Color: colorGray,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func companyName(info entity.CompanyInfo) string {
	return nonEmpty(info.TradeName, nonEmpty(info.LegalName, appName))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
