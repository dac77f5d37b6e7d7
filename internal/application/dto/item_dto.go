package dto

import "github.com/shopspring/decimal"

// CreateItemRequest datos del formulario de alta de ítem.
// Los campos numéricos negativos se llevan a cero al crear; Unit en blanco
// usa la unidad por defecto.
type CreateItemRequest struct {
	Name      string
	Stock     decimal.Decimal
	Unit      string
	Threshold decimal.Decimal
	Cost      decimal.Decimal
}

// UpdateItemRequest parche parcial: solo los campos no-nil se aplican.
// El ID nunca se modifica.
type UpdateItemRequest struct {
	Name      *string
	Stock     *decimal.Decimal
	Unit      *string
	Threshold *decimal.Decimal
	Cost      *decimal.Decimal
}

// ItemResponse proyección de un ítem con sus valores derivados
// (Value y LowStock se recalculan siempre, nunca se almacenan).
type ItemResponse struct {
	ID        string
	Name      string
	Stock     decimal.Decimal
	Unit      string
	Threshold decimal.Decimal
	Cost      decimal.Decimal
	Value     decimal.Decimal
	LowStock  bool
}

// SummaryResponse totales del tablero, recomputados frescos desde List().
type SummaryResponse struct {
	TotalItems    int
	LowStockCount int
	TotalValue    decimal.Decimal
}
