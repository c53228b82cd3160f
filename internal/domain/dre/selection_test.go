package dre_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/integraprice-api/internal/domain/dre"
)

func TestSelection_ToggleIniciaCantidadEnUno(t *testing.T) {
	s := dre.NewSelection()

	assert.True(t, s.Toggle("a"))
	assert.True(t, s.IsSelected("a"))
	assert.Equal(t, int64(1), s.Quantity("a"))

	s.SetQuantity("a", 7)
	assert.False(t, s.Toggle("a"), "segundo toggle desmarca")
	assert.False(t, s.IsSelected("a"))
	assert.Equal(t, int64(7), s.Quantity("a"), "la cantidad se conserva al desmarcar")

	s.Toggle("a")
	assert.Equal(t, int64(7), s.Quantity("a"))
}

func TestSelection_CantidadNegativaSeFuerzaACero(t *testing.T) {
	s := dre.NewSelection()
	s.Toggle("a")

	assert.Equal(t, int64(0), s.SetQuantity("a", -3))
	assert.True(t, s.IsSelected("a"), "marcado con cantidad 0 sigue marcado")

	s.Toggle("a")
	s.Toggle("a")
	assert.Equal(t, int64(1), s.Quantity("a"), "al volver a marcar con 0 reinicia en 1")
}

func TestSelection_EntriesEnOrdenDeSeleccion(t *testing.T) {
	s := dre.NewSelection()
	s.Toggle("b")
	s.Toggle("a")
	s.Toggle("c")
	s.SetQuantity("a", 4)
	s.Toggle("b")

	assert.Equal(t, []dre.Entry{{ProductID: "a", Quantity: 4}, {ProductID: "c", Quantity: 1}}, s.Entries())
}

func TestSelection_PruneYClear(t *testing.T) {
	s := dre.NewSelection()
	s.Toggle("a")
	s.Toggle("b")

	s.Prune(func(id string) bool { return id == "b" })
	assert.False(t, s.IsSelected("a"))
	assert.Equal(t, int64(0), s.Quantity("a"))
	assert.Len(t, s.Entries(), 1)

	s.Clear()
	assert.Empty(t, s.Entries())
}

func TestMergeEntries_RepetidosUsanUltimaCantidad(t *testing.T) {
	got := dre.MergeEntries([]dre.Entry{
		{ProductID: "a", Quantity: 1},
		{ProductID: "b", Quantity: 2},
		{ProductID: "a", Quantity: 5},
	})
	assert.Equal(t, []dre.Entry{{ProductID: "a", Quantity: 5}, {ProductID: "b", Quantity: 2}}, got)
	assert.Empty(t, dre.MergeEntries(nil))
}
