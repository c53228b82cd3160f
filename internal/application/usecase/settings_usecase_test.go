package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/integraprice-api/internal/application/dto"
	"github.com/jhoicas/integraprice-api/internal/application/usecase"
	"github.com/jhoicas/integraprice-api/internal/domain"
	"github.com/jhoicas/integraprice-api/internal/domain/entity"
	"github.com/jhoicas/integraprice-api/internal/infrastructure/storage"
	"github.com/jhoicas/integraprice-api/pkg/logger"
)

func strp(s string) *string { return &s }

func TestSettings_DefaultsYEdicionDeLineaPorDefecto(t *testing.T) {
	st := newStack(t)

	s := st.settings.Get(bg)
	require.Len(t, s.FixedCosts, 2)
	assert.Equal(t, "Aluguel", s.FixedCosts[0].Name)

	// Los IDs de los valores por defecto son estables entre lecturas.
	v := num("1500")
	line, err := st.settings.UpdateCostLine(bg, "fixed_costs", s.FixedCosts[0].ID, dto.UpdateCostLineRequest{Value: &v})
	require.NoError(t, err)
	assert.Equal(t, "1500", line.Value.String())

	// Persistido: un caso de uso nuevo sobre el mismo almacén lo ve.
	fresh := usecase.NewSettingsUseCase(storage.NewService(st.kv, logger.Nop()))
	assert.Equal(t, "1500", fresh.Get(bg).TotalFixedCosts.String())
}

func TestSettings_AgregarYEliminarLinea(t *testing.T) {
	st := newStack(t)

	added, err := st.settings.AddCostLine(bg, "taxes", dto.AddCostLineRequest{Name: "ICMS"})
	require.NoError(t, err)
	assert.True(t, added.Value.IsZero())
	assert.NotEmpty(t, added.ID)
	assert.Len(t, st.settings.Get(bg).Taxes, 2)

	require.NoError(t, st.settings.RemoveCostLine(bg, "taxes", added.ID))
	taxes := st.settings.Get(bg).Taxes
	require.Len(t, taxes, 1)
	assert.Equal(t, "Simples Nacional", taxes[0].Name)
}

func TestSettings_ListaOLineaDesconocida(t *testing.T) {
	st := newStack(t)

	_, err := st.settings.AddCostLine(bg, "variable_costs", dto.AddCostLineRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrUnknownCostList)

	_, err = st.settings.UpdateCostLine(bg, "sales_fees", "no-existe", dto.UpdateCostLineRequest{Name: strp("x")})
	assert.ErrorIs(t, err, domain.ErrCostLineNotFound)

	assert.ErrorIs(t, st.settings.RemoveCostLine(bg, "fixed_costs", "no-existe"), domain.ErrCostLineNotFound)
}

func TestSettings_ActualizarEmpresaEsParcial(t *testing.T) {
	st := newStack(t)

	st.settings.UpdateCompanyInfo(bg, dto.UpdateCompanyInfoRequest{
		TradeName: strp("Loja da Ana"),
		Address:   &dto.AddressPatch{City: strp("Recife")},
	})
	out := st.settings.UpdateCompanyInfo(bg, dto.UpdateCompanyInfoRequest{
		CNPJ:    strp("12.345.678/0001-90"),
		Address: &dto.AddressPatch{State: strp("PE")},
	})

	assert.Equal(t, "Loja da Ana", out.TradeName)
	assert.Equal(t, "12.345.678/0001-90", out.CNPJ)
	assert.Equal(t, "Recife", out.Address.City)
	assert.Equal(t, "PE", out.Address.State)

	info := st.store.LoadSettings(bg).Info
	assert.Equal(t, entity.Address{City: "Recife", State: "PE"}, info.Address)
}

func TestSettings_CurrentDevuelveCopia(t *testing.T) {
	st := newStack(t)

	c := st.settings.Current(bg)
	c.FixedCosts[0].Name = "mutado"

	assert.Equal(t, "Aluguel", st.settings.Current(bg).FixedCosts[0].Name)
}

func TestSettings_Sugerencias(t *testing.T) {
	st := newStack(t)
	s := st.settings.Suggestions()
	assert.Contains(t, s.FixedCosts, "Aluguel")
	assert.Contains(t, s.VariableCosts, "Matéria-prima")
	assert.Contains(t, s.SalesFees, "Taxa Cartão Débito")
}
