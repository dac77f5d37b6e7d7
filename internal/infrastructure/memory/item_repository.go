// Package memory implementa el puerto ItemRepository sobre memoria de
// proceso: la sesión no persiste nada y se re-siembra al arrancar.
package memory

import (
	"sync"

	"github.com/tu-usuario/stock-cocina/internal/domain"
	"github.com/tu-usuario/stock-cocina/internal/domain/entity"
)

// ItemRepository guarda los ítems en orden de inserción. Hay un solo actor
// lógico (la sesión interactiva), pero el mutex mantiene el repositorio
// correcto si algún día se expone detrás de un servicio con requests
// concurrentes sobre AdjustStock.
type ItemRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]*entity.Item
}

// NewItemRepository construye el repositorio vacío.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: make(map[string]*entity.Item)}
}

// Create agrega el ítem al final del orden de inserción.
func (r *ItemRepository) Create(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; ok {
		return domain.ErrValidation
	}
	cp := *item
	r.items[item.ID] = &cp
	r.order = append(r.order, item.ID)
	return nil
}

// GetByID devuelve una copia del ítem, o (nil, nil) si no existe.
func (r *ItemRepository) GetByID(id string) (*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

// Update reemplaza el ítem almacenado conservando su posición de inserción.
func (r *ItemRepository) Update(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

// Delete elimina el ítem; el id nunca se reutiliza.
func (r *ItemRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// List devuelve copias de todos los ítems en orden de inserción.
// La copia hace que cada listado sea un snapshot: la vista y los
// exportadores pueden trabajar sobre él sin tocar el estado vivo.
func (r *ItemRepository) List() ([]*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Item, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.items[id]
		out = append(out, &cp)
	}
	return out, nil
}
