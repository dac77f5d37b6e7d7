package view_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-cocina/internal/application/view"
	"github.com/tu-usuario/stock-cocina/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la vista: búsqueda → filtro → orden, pureza y estabilidad.
// ──────────────────────────────────────────────────────────────────────────────

func item(id, name string, stock, threshold, cost float64) *entity.Item {
	return &entity.Item{
		ID:        id,
		Name:      name,
		Stock:     decimal.NewFromFloat(stock),
		Unit:      "kg",
		Threshold: decimal.NewFromFloat(threshold),
		Cost:      decimal.NewFromFloat(cost),
	}
}

// snapshot de referencia, en orden de inserción:
//
//	Pizza Dough        50×0.80 = 40    ok
//	Mozzarella Cheese  20×9.50 = 190   ok
//	Mushrooms           5×4.00 = 20    ok (umbral 1)
//	Olives              1×7.00 = 7     BAJO (umbral 2)
//	Onions             10×1.50 = 15    ok
func snapshot() []*entity.Item {
	return []*entity.Item{
		item("1", "Pizza Dough", 50, 10, 0.80),
		item("2", "Mozzarella Cheese", 20, 5, 9.50),
		item("3", "Mushrooms", 5, 1, 4.00),
		item("4", "Olives", 1, 2, 7.00),
		item("5", "Onions", 10, 3, 1.50),
	}
}

func rowNames(p *view.Pipeline, items []*entity.Item, st view.State) []string {
	rows := p.Apply(items, st)
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Name)
	}
	return out
}

func TestApply_SinParametrosConservaOrdenBase(t *testing.T) {
	p := view.NewPipeline("en")

	got := rowNames(p, snapshot(), view.State{})

	assert.Equal(t, []string{"Pizza Dough", "Mozzarella Cheese", "Mushrooms", "Olives", "Onions"}, got)
}

func TestApply_BusquedaCaseInsensitive(t *testing.T) {
	p := view.NewPipeline("en")

	got := rowNames(p, snapshot(), view.State{SearchTerm: "  MUSH "})

	assert.Equal(t, []string{"Mushrooms"}, got)
}

func TestApply_BusquedaVaciaNoFiltra(t *testing.T) {
	p := view.NewPipeline("en")

	got := p.Apply(snapshot(), view.State{SearchTerm: ""})

	assert.Len(t, got, 5)
}

func TestApply_FiltroLowStockEsExacto(t *testing.T) {
	p := view.NewPipeline("en")
	snap := snapshot()

	low := p.Apply(snap, view.State{Filter: view.FilterLowStock})
	all := p.Apply(snap, view.State{Filter: view.FilterAll})

	require.Len(t, low, 1, "solo Olives cumple stock < threshold")
	assert.Equal(t, "Olives", low[0].Name)
	assert.True(t, low[0].LowStock)

	// low_stock es subconjunto de all.
	allIDs := make(map[string]bool, len(all))
	for _, r := range all {
		allIDs[r.ID] = true
	}
	for _, r := range low {
		assert.True(t, allIDs[r.ID])
	}
}

func TestApply_FiltroInStockEsComplemento(t *testing.T) {
	p := view.NewPipeline("en")

	got := rowNames(p, snapshot(), view.State{Filter: view.FilterInStock})

	assert.Equal(t, []string{"Pizza Dough", "Mozzarella Cheese", "Mushrooms", "Onions"}, got)
}

func TestApply_FiltroHighValueConPisoInclusivo(t *testing.T) {
	p := view.NewPipeline("en")
	snap := snapshot()
	// Ítem con valor exactamente 100: el piso es inclusivo (≥ 100).
	snap = append(snap, item("6", "Saffron", 1, 0, 100))

	got := rowNames(p, snap, view.State{Filter: view.FilterHighValue})

	assert.Equal(t, []string{"Mozzarella Cheese", "Saffron"}, got)
}

func TestApply_OrdenPorNombre(t *testing.T) {
	p := view.NewPipeline("en")

	asc := rowNames(p, snapshot(), view.State{Sort: view.SortNameAsc})
	desc := rowNames(p, snapshot(), view.State{Sort: view.SortNameDesc})

	assert.Equal(t, []string{"Mozzarella Cheese", "Mushrooms", "Olives", "Onions", "Pizza Dough"}, asc)
	assert.Equal(t, []string{"Pizza Dough", "Onions", "Olives", "Mushrooms", "Mozzarella Cheese"}, desc)
}

func TestApply_ValueDescEsInversoDeAscSinEmpates(t *testing.T) {
	p := view.NewPipeline("en")
	snap := snapshot() // valores 40, 190, 20, 7, 15: todos distintos

	asc := rowNames(p, snap, view.State{Sort: view.SortValueAsc})
	desc := rowNames(p, snap, view.State{Sort: view.SortValueDesc})

	require.Len(t, asc, len(desc))
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i], "sin empates, desc es el reverso exacto de asc")
	}
}

func TestApply_EmpatesConservanOrdenDeInsercion(t *testing.T) {
	p := view.NewPipeline("en")
	snap := []*entity.Item{
		item("1", "Alpha", 2, 0, 5),  // valor 10
		item("2", "Beta", 5, 0, 2),   // valor 10 (empate)
		item("3", "Gamma", 1, 0, 30), // valor 30
	}

	asc := rowNames(p, snap, view.State{Sort: view.SortValueAsc})
	desc := rowNames(p, snap, view.State{Sort: view.SortValueDesc})

	// Los empatados quedan en orden de inserción en ambas direcciones.
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, asc)
	assert.Equal(t, []string{"Gamma", "Alpha", "Beta"}, desc)
}

func TestApply_NoMutaElSnapshot(t *testing.T) {
	p := view.NewPipeline("en")
	snap := snapshot()

	_ = p.Apply(snap, view.State{Sort: view.SortValueDesc, Filter: view.FilterAll})

	got := make([]string, 0, len(snap))
	for _, it := range snap {
		got = append(got, it.Name)
	}
	assert.Equal(t, []string{"Pizza Dough", "Mozzarella Cheese", "Mushrooms", "Olives", "Onions"}, got,
		"la vista es pura: el snapshot conserva su orden")
}

func TestApply_Determinista(t *testing.T) {
	p := view.NewPipeline("en")
	st := view.State{SearchTerm: "o", Filter: view.FilterInStock, Sort: view.SortStockDesc}

	a := p.Apply(snapshot(), st)
	b := p.Apply(snapshot(), st)

	assert.Equal(t, a, b, "mismo snapshot + mismos parámetros ⇒ misma secuencia")
}

func TestParseFilter(t *testing.T) {
	f, err := view.ParseFilter("LOW")
	require.NoError(t, err)
	assert.Equal(t, view.FilterLowStock, f)

	_, err = view.ParseFilter("bogus")
	assert.Error(t, err)
}

func TestParseSort(t *testing.T) {
	s, err := view.ParseSort("value_desc")
	require.NoError(t, err)
	assert.Equal(t, view.SortValueDesc, s)

	_, err = view.ParseSort("bogus")
	assert.Error(t, err)
}
