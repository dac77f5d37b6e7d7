package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultUnit se aplica cuando el formulario deja la unidad en blanco.
const DefaultUnit = "units"

// Item representa un insumo del inventario del restaurante.
// Stock y Threshold son cantidades en la unidad declarada (pueden ser
// fraccionarias: kg, litros); Cost es el costo por unidad.
type Item struct {
	ID        string
	Name      string // clave de match case-insensitive para comandos y búsqueda
	Stock     decimal.Decimal
	Unit      string
	Threshold decimal.Decimal // punto de reorden: Stock < Threshold ⇒ stock bajo
	Cost      decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Value devuelve el valor monetario del ítem (Stock × Cost).
// Siempre se recalcula, nunca se almacena.
func (i *Item) Value() decimal.Decimal {
	return i.Stock.Mul(i.Cost)
}

// IsLowStock indica si el ítem está por debajo de su punto de reorden.
func (i *Item) IsLowStock() bool {
	return i.Stock.LessThan(i.Threshold)
}
