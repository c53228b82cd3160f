package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/integraprice-api/internal/application/ports"
	"github.com/jhoicas/integraprice-api/internal/domain/dre"
)

const sheetName = "DRE"

// Primera fila de la tabla (las anteriores son el encabezado del documento).
const tableStartRow = 5

var _ ports.StatementExporter = (*XLSXExporter)(nil)

// XLSXExporter implementa ports.StatementExporter con excelize.
// Los valores se escriben como números (redondeados a 2 decimales) para que la planilla pueda operar con ellos.
type XLSXExporter struct{}

// NewXLSXExporter construye el exportador.
func NewXLSXExporter() *XLSXExporter { return &XLSXExporter{} }

func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (e *XLSXExporter) Extension() string { return "xlsx" }

// Export genera el libro y devuelve sus bytes.
func (e *XLSXExporter) Export(doc ports.StatementDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	styles, err := newXLSXStyles(f)
	if err != nil {
		return nil, err
	}

	header := [][]interface{}{
		{"DRE - Demonstrativo de Resultado"},
		{companyName(doc.Company), "CNPJ: " + nonEmpty(doc.Company.CNPJ, "—")},
		{"Gerado em", doc.GeneratedAt.Format("02/01/2006 15:04")},
		{"Descrição", "Valor (R$)", "% da receita"},
	}
	for i, values := range header {
		if err := setRow(f, i+1, values); err != nil {
			return nil, err
		}
	}
	_ = f.SetCellStyle(sheetName, "A1", "A1", styles.title)
	_ = f.SetCellStyle(sheetName, "A4", "C4", styles.bold)

	rowN := tableStartRow
	for _, l := range doc.Lines {
		label := l.Label
		if l.Kind == dre.KindItem {
			label = "    " + label
		}
		values := []interface{}{
			label,
			l.Value.Round(2).InexactFloat64(),
			l.Percent.Round(2).InexactFloat64() / 100,
		}
		if err := setRow(f, rowN, values); err != nil {
			return nil, err
		}
		money, pct := styles.money, styles.percent
		if l.Kind == dre.KindHeader || l.Kind == dre.KindResult {
			_ = f.SetCellStyle(sheetName, cellName(1, rowN), cellName(1, rowN), styles.bold)
			money, pct = styles.moneyBold, styles.percentBold
		}
		_ = f.SetCellStyle(sheetName, cellName(2, rowN), cellName(2, rowN), money)
		_ = f.SetCellStyle(sheetName, cellName(3, rowN), cellName(3, rowN), pct)
		rowN++
	}

	if err := setRow(f, rowN+1, []interface{}{"Produtos considerados", doc.Report.ProductCount}); err != nil {
		return nil, err
	}

	_ = f.SetColWidth(sheetName, "A", "A", 38)
	_ = f.SetColWidth(sheetName, "B", "C", 18)

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir archivo: %w", err)
	}
	return buf.Bytes(), nil
}

type xlsxStyles struct {
	title, bold, money, moneyBold, percent, percentBold int
}

func newXLSXStyles(f *excelize.File) (xlsxStyles, error) {
	var s xlsxStyles
	moneyFmt := `"R$" #,##0.00;[Red]-"R$" #,##0.00`
	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 14, Color: "00467F"}}},
		{&s.bold, &excelize.Style{Font: &excelize.Font{Bold: true}}},
		{&s.money, &excelize.Style{CustomNumFmt: &moneyFmt}},
		{&s.moneyBold, &excelize.Style{CustomNumFmt: &moneyFmt, Font: &excelize.Font{Bold: true}}},
		{&s.percent, &excelize.Style{NumFmt: 10}},
		{&s.percentBold, &excelize.Style{NumFmt: 10, Font: &excelize.Font{Bold: true}}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return s, fmt.Errorf("xlsx: crear estilo: %w", err)
		}
		*d.dst = id
	}
	return s, nil
}

func setRow(f *excelize.File, rowN int, values []interface{}) error {
	if err := f.SetSheetRow(sheetName, cellName(1, rowN), &values); err != nil {
		return fmt.Errorf("xlsx: fila %d: %w", rowN, err)
	}
	return nil
}

func cellName(colN, rowN int) string {
	name, _ := excelize.CoordinatesToCellName(colN, rowN)
	return name
}
