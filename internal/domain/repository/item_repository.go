package repository

import "github.com/tu-usuario/stock-cocina/internal/domain/entity"

// ItemRepository define el puerto de almacenamiento para Item (DIP).
// List devuelve los ítems en orden de inserción: ese orden es la base
// estable sobre la que trabajan el intérprete de comandos y la vista.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id string) error
	List() ([]*entity.Item, error)
}
