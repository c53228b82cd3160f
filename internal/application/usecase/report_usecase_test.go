package usecase_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/integraprice-api/internal/application/dto"
	"github.com/jhoicas/integraprice-api/internal/domain"
	"github.com/jhoicas/integraprice-api/internal/domain/dre"
)

func TestReport_SeleccionPorUsuario(t *testing.T) {
	st := newStack(t)
	p := st.products.Save(bg, dto.SaveProductRequest{Name: "Camiseta", Configuration: exampleRequest()})

	e, err := st.reports.Toggle(bg, "ana", p.ID)
	require.NoError(t, err)
	assert.True(t, e.Selected)
	assert.Equal(t, int64(1), e.Quantity)

	e, err = st.reports.SetQuantity(bg, "ana", p.ID, dto.SetQuantityRequest{Quantity: num("10.9")})
	require.NoError(t, err)
	assert.Equal(t, int64(10), e.Quantity)

	assert.Len(t, st.reports.Selection("ana"), 1)
	assert.Empty(t, st.reports.Selection("bruno"))

	r := st.reports.SessionReport(bg, "ana")
	assert.Equal(t, 1, r.ProductCount)
	assert.Equal(t, "214.29", r.TotalRevenue.String())

	st.reports.Clear("ana")
	assert.Empty(t, st.reports.Selection("ana"))
}

func TestReport_CantidadNegativaQuedaEnCero(t *testing.T) {
	st := newStack(t)
	p := st.products.Save(bg, dto.SaveProductRequest{Configuration: exampleRequest()})
	_, err := st.reports.Toggle(bg, "ana", p.ID)
	require.NoError(t, err)

	e, err := st.reports.SetQuantity(bg, "ana", p.ID, dto.SetQuantityRequest{Quantity: num("-3")})
	require.NoError(t, err)
	assert.Equal(t, int64(0), e.Quantity)
	assert.Equal(t, 0, st.reports.SessionReport(bg, "ana").ProductCount)
}

func TestReport_ProductoDesconocido(t *testing.T) {
	st := newStack(t)

	_, err := st.reports.Toggle(bg, "ana", "no-existe")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	_, err = st.reports.SetQuantity(bg, "ana", "no-existe", dto.SetQuantityRequest{Quantity: num("1")})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestReport_ProductoEliminadoSaleDeLaSeleccion(t *testing.T) {
	st := newStack(t)
	a := st.products.Save(bg, dto.SaveProductRequest{Name: "A", Configuration: exampleRequest()})
	b := st.products.Save(bg, dto.SaveProductRequest{Name: "B", Configuration: exampleRequest()})
	_, _ = st.reports.Toggle(bg, "ana", a.ID)
	_, _ = st.reports.Toggle(bg, "ana", b.ID)

	st.products.Delete(bg, a.ID)
	r := st.reports.SessionReport(bg, "ana")

	assert.Equal(t, 1, r.ProductCount)
	sel := st.reports.Selection("ana")
	require.Len(t, sel, 1)
	assert.Equal(t, b.ID, sel[0].ProductID)
}

func TestReport_SeleccionExplicitaYCostosFijosVivos(t *testing.T) {
	st := newStack(t)
	p := st.products.Save(bg, dto.SaveProductRequest{Configuration: exampleRequest()})

	s := st.settings.Get(bg)
	v := num("500")
	_, err := st.settings.UpdateCostLine(bg, "fixed_costs", s.FixedCosts[0].ID, dto.UpdateCostLineRequest{Value: &v})
	require.NoError(t, err)

	r := st.reports.Report(bg, dto.DRERequest{Items: []dto.SelectionItem{
		{ProductID: p.ID, Quantity: num("100")},
		{ProductID: "borrado", Quantity: num("5")},
	}})

	assert.Equal(t, 1, r.ProductCount)
	assert.Equal(t, "500", r.TotalFixedCostsValue.String())
	assert.Equal(t, "2142.86", r.TotalRevenue.String())
	require.NotEmpty(t, r.Lines)
	assert.Equal(t, dre.LabelRevenue, r.Lines[0].Label)
	assert.Equal(t, "100", r.Lines[0].Percent.String())
}

func TestReport_SeleccionExplicitaConRepetidos(t *testing.T) {
	st := newStack(t)
	p := st.products.Save(bg, dto.SaveProductRequest{Configuration: exampleRequest()})

	r := st.reports.Report(bg, dto.DRERequest{Items: []dto.SelectionItem{
		{ProductID: p.ID, Quantity: num("1")},
		{ProductID: p.ID, Quantity: num("100")},
	}})

	assert.Equal(t, 1, r.ProductCount)
	assert.Equal(t, "2142.86", r.TotalRevenue.String())
}

func TestReport_CantidadEnormeSeSatura(t *testing.T) {
	st := newStack(t)
	p := st.products.Save(bg, dto.SaveProductRequest{Configuration: exampleRequest()})
	_, err := st.reports.Toggle(bg, "ana", p.ID)
	require.NoError(t, err)

	e, err := st.reports.SetQuantity(bg, "ana", p.ID, dto.SetQuantityRequest{Quantity: num("1e25")})
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), e.Quantity)
}

func TestReport_Export(t *testing.T) {
	st := newStack(t)
	p := st.products.Save(bg, dto.SaveProductRequest{Configuration: exampleRequest()})
	_, _ = st.reports.Toggle(bg, "ana", p.ID)

	f, err := st.reports.Export(bg, "ana", "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", f.ContentType)
	assert.Contains(t, f.Filename, ".pdf")
	assert.Equal(t, 1, st.exporter.last.Report.ProductCount)
	assert.Equal(t, 1, st.metrics.exported)

	_, err = st.reports.Export(bg, "ana", "docx")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
