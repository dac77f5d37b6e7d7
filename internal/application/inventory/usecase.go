// Package inventory contiene el caso de uso del almacén de ítems: la única
// superficie de mutación sobre la colección en memoria.
package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-cocina/internal/application/dto"
	"github.com/tu-usuario/stock-cocina/internal/domain"
	"github.com/tu-usuario/stock-cocina/internal/domain/entity"
	"github.com/tu-usuario/stock-cocina/internal/domain/repository"
)

// StoreUseCase mantiene la lista autoritativa de ítems. Todas las
// mutaciones son síncronas: el efecto es visible para la siguiente lectura.
type StoreUseCase struct {
	repo repository.ItemRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.ItemRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// Add valida y normaliza el borrador y agrega un ítem nuevo con id UUID.
// El id no depende del reloj: altas sucesivas rápidas nunca colisionan.
// Nombre vacío tras el trim ⇒ ErrValidation y el estado previo se conserva.
func (uc *StoreUseCase) Add(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrValidation
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = entity.DefaultUnit
	}
	now := time.Now()
	item := &entity.Item{
		ID:        uuid.New().String(),
		Name:      name,
		Stock:     floorZero(in.Stock),
		Unit:      unit,
		Threshold: floorZero(in.Threshold),
		Cost:      floorZero(in.Cost),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update aplica un parche parcial al ítem. Solo los campos no-nil cambian;
// el ID nunca se toca. Id desconocido ⇒ ErrNotFound.
func (uc *StoreUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrValidation
		}
		item.Name = name
	}
	if in.Unit != nil {
		unit := strings.TrimSpace(*in.Unit)
		if unit == "" {
			unit = entity.DefaultUnit
		}
		item.Unit = unit
	}
	if in.Stock != nil {
		item.Stock = floorZero(*in.Stock)
	}
	if in.Threshold != nil {
		item.Threshold = floorZero(*in.Threshold)
	}
	if in.Cost != nil {
		item.Cost = floorZero(*in.Cost)
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// AdjustStock aplica stock = max(0, stock + delta). La usan los controles
// manuales (+/-) y el intérprete de comandos; el recorte en cero es la
// única política de piso, sin importar la magnitud del delta.
func (uc *StoreUseCase) AdjustStock(id string, delta decimal.Decimal) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.Stock = floorZero(item.Stock.Add(delta))
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Remove elimina el ítem. Idempotente: borrar un id inexistente no es
// fatal, se reporta como ErrNotFound para que el caller decida loguearlo.
func (uc *StoreUseCase) Remove(id string) error {
	return uc.repo.Delete(id)
}

// List devuelve los ítems en orden de inserción con derivados calculados.
func (uc *StoreUseCase) List() ([]dto.ItemResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// Summary recomputa los totales del tablero desde List().
func (uc *StoreUseCase) Summary() (*dto.SummaryResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	low := 0
	for _, it := range items {
		total = total.Add(it.Value())
		if it.IsLowStock() {
			low++
		}
	}
	return &dto.SummaryResponse{
		TotalItems:    len(items),
		LowStockCount: low,
		TotalValue:    total,
	}, nil
}

// Snapshot devuelve las entidades vivas copiadas, para los colaboradores
// que trabajan sobre un snapshot (vista, intérprete, exportadores, alertas).
func (uc *StoreUseCase) Snapshot() ([]*entity.Item, error) {
	return uc.repo.List()
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return d
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:        i.ID,
		Name:      i.Name,
		Stock:     i.Stock,
		Unit:      i.Unit,
		Threshold: i.Threshold,
		Cost:      i.Cost,
		Value:     i.Value(),
		LowStock:  i.IsLowStock(),
	}
}
