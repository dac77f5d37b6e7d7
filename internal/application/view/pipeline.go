// Package view produce la secuencia visible a partir de un snapshot del
// almacén, sin mutarlo: búsqueda → filtro → orden, siempre en ese orden.
// Mismo snapshot y mismos parámetros ⇒ misma secuencia, siempre.
package view

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tu-usuario/stock-cocina/internal/application/dto"
	"github.com/tu-usuario/stock-cocina/internal/domain"
	"github.com/tu-usuario/stock-cocina/internal/domain/entity"
)

// Filter filtro categórico de la vista.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterLowStock  Filter = "low_stock"
	FilterInStock   Filter = "in_stock"
	FilterHighValue Filter = "high_value" // valor del ítem ≥ highValueFloor
)

// Sort criterio de orden de la vista.
type Sort string

const (
	SortNameAsc   Sort = "name_asc"
	SortNameDesc  Sort = "name_desc"
	SortStockAsc  Sort = "stock_asc"
	SortStockDesc Sort = "stock_desc"
	SortValueAsc  Sort = "value_asc"
	SortValueDesc Sort = "value_desc"
)

// highValueFloor piso del filtro high_value (en unidades de moneda).
// Es parte de la definición del filtro, no configuración.
var highValueFloor = decimal.NewFromInt(100)

// State estado explícito de la vista de una sesión: término de búsqueda,
// filtro y orden. Vacíos significan "sin búsqueda", "all" y orden base.
type State struct {
	SearchTerm string
	Filter     Filter
	Sort       Sort
}

// Pipeline computa la vista. El collator hace la comparación de nombres
// consciente del locale; los empates conservan el orden de inserción
// porque todos los sorts son estables.
type Pipeline struct {
	collator *collate.Collator
}

// NewPipeline construye la vista para el locale dado ("en", "es", ...).
// Un locale no parseable cae en inglés.
func NewPipeline(locale string) *Pipeline {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Pipeline{collator: collate.New(tag, collate.IgnoreCase)}
}

// Apply aplica búsqueda, filtro y orden sobre el snapshot y devuelve las
// proyecciones. No muta el snapshot ni el estado.
func (p *Pipeline) Apply(snapshot []*entity.Item, st State) []dto.ItemResponse {
	items := make([]*entity.Item, 0, len(snapshot))

	term := strings.ToLower(strings.TrimSpace(st.SearchTerm))
	for _, it := range snapshot {
		if term != "" && !strings.Contains(strings.ToLower(it.Name), term) {
			continue
		}
		if !p.matchesFilter(it, st.Filter) {
			continue
		}
		items = append(items, it)
	}

	p.sortItems(items, st.Sort)

	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ItemResponse{
			ID:        it.ID,
			Name:      it.Name,
			Stock:     it.Stock,
			Unit:      it.Unit,
			Threshold: it.Threshold,
			Cost:      it.Cost,
			Value:     it.Value(),
			LowStock:  it.IsLowStock(),
		})
	}
	return out
}

func (p *Pipeline) matchesFilter(it *entity.Item, f Filter) bool {
	switch f {
	case FilterLowStock:
		return it.IsLowStock()
	case FilterInStock:
		return !it.IsLowStock()
	case FilterHighValue:
		return it.Value().GreaterThanOrEqual(highValueFloor)
	default: // FilterAll o vacío
		return true
	}
}

func (p *Pipeline) sortItems(items []*entity.Item, s Sort) {
	var less func(a, b *entity.Item) bool
	switch s {
	case SortNameAsc:
		less = func(a, b *entity.Item) bool { return p.collator.CompareString(a.Name, b.Name) < 0 }
	case SortNameDesc:
		less = func(a, b *entity.Item) bool { return p.collator.CompareString(a.Name, b.Name) > 0 }
	case SortStockAsc:
		less = func(a, b *entity.Item) bool { return a.Stock.LessThan(b.Stock) }
	case SortStockDesc:
		less = func(a, b *entity.Item) bool { return a.Stock.GreaterThan(b.Stock) }
	case SortValueAsc:
		less = func(a, b *entity.Item) bool { return a.Value().LessThan(b.Value()) }
	case SortValueDesc:
		less = func(a, b *entity.Item) bool { return a.Value().GreaterThan(b.Value()) }
	default:
		return // orden base: inserción
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}

// ParseFilter normaliza la entrada del usuario a un Filter conocido.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return FilterAll, nil
	case "low", "low_stock", "lowstock":
		return FilterLowStock, nil
	case "in", "in_stock", "instock":
		return FilterInStock, nil
	case "value", "high_value", "highvalue":
		return FilterHighValue, nil
	}
	return "", domain.ErrValidation
}

// ParseSort normaliza la entrada del usuario a un Sort conocido.
func ParseSort(s string) (Sort, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name", "name_asc":
		return SortNameAsc, nil
	case "name_desc":
		return SortNameDesc, nil
	case "stock", "stock_asc":
		return SortStockAsc, nil
	case "stock_desc":
		return SortStockDesc, nil
	case "value", "value_asc":
		return SortValueAsc, nil
	case "value_desc":
		return SortValueDesc, nil
	}
	return "", domain.ErrValidation
}
