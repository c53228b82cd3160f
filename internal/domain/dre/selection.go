package dre

// Selection estado de trabajo de la vista de reportes: qué productos están marcados y con qué cantidad.
// Un producto puede estar marcado con cantidad 0; en ese caso no contribuye al DRE.
// Es efímero: no se persiste.
type Selection struct {
	order      []string
	selected   map[string]bool
	quantities map[string]int64
}

// NewSelection crea una selección vacía.
func NewSelection() *Selection {
	return &Selection{
		selected:   make(map[string]bool),
		quantities: make(map[string]int64),
	}
}

// Toggle marca o desmarca el producto. Al marcarlo, si no tenía cantidad, inicia en 1.
// La cantidad se conserva al desmarcar.
func (s *Selection) Toggle(productID string) bool {
	if s.selected[productID] {
		delete(s.selected, productID)
		s.removeFromOrder(productID)
		return false
	}
	s.selected[productID] = true
	s.order = append(s.order, productID)
	if s.quantities[productID] == 0 {
		s.quantities[productID] = 1
	}
	return true
}

// SetQuantity fija la cantidad; valores negativos se fuerzan a 0.
func (s *Selection) SetQuantity(productID string, qty int64) int64 {
	if qty < 0 {
		qty = 0
	}
	s.quantities[productID] = qty
	return qty
}

// Quantity cantidad actual del producto (0 si nunca se fijó).
func (s *Selection) Quantity(productID string) int64 {
	return s.quantities[productID]
}

// IsSelected indica si el producto está marcado.
func (s *Selection) IsSelected(productID string) bool {
	return s.selected[productID]
}

// Clear desmarca todo y olvida las cantidades.
func (s *Selection) Clear() {
	s.order = nil
	s.selected = make(map[string]bool)
	s.quantities = make(map[string]int64)
}

// Entries devuelve los productos marcados, en orden de selección, con su cantidad.
func (s *Selection) Entries() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, Entry{ProductID: id, Quantity: s.quantities[id]})
	}
	return out
}

// Prune desmarca los IDs que ya no existen en keep (p.ej. productos eliminados).
func (s *Selection) Prune(keep func(productID string) bool) {
	for _, id := range append([]string(nil), s.order...) {
		if !keep(id) {
			delete(s.selected, id)
			delete(s.quantities, id)
			s.removeFromOrder(id)
		}
	}
}

func (s *Selection) removeFromOrder(productID string) {
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// MergeEntries agrupa entradas repetidas por producto: conserva el orden de la primera
// aparición y la última cantidad indicada.
func MergeEntries(entries []Entry) []Entry {
	index := make(map[string]int, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if i, ok := index[e.ProductID]; ok {
			out[i].Quantity = e.Quantity
			continue
		}
		index[e.ProductID] = len(out)
		out = append(out, e)
	}
	return out
}
