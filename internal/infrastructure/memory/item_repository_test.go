package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-cocina/internal/domain"
	"github.com/tu-usuario/stock-cocina/internal/domain/entity"
	"github.com/tu-usuario/stock-cocina/internal/infrastructure/memory"
)

func newItem(id, name string) *entity.Item {
	return &entity.Item{ID: id, Name: name, Unit: "kg", Stock: decimal.NewFromInt(1)}
}

func TestList_ConservaOrdenDeInsercionTrasBorrado(t *testing.T) {
	r := memory.NewItemRepository()
	require.NoError(t, r.Create(newItem("a", "Dough")))
	require.NoError(t, r.Create(newItem("b", "Cheese")))
	require.NoError(t, r.Create(newItem("c", "Sauce")))

	require.NoError(t, r.Delete("b"))
	require.NoError(t, r.Create(newItem("d", "Olives")))

	items, err := r.List()
	require.NoError(t, err)
	got := []string{}
	for _, it := range items {
		got = append(got, it.ID)
	}
	assert.Equal(t, []string{"a", "c", "d"}, got)
}

func TestList_DevuelveCopias(t *testing.T) {
	r := memory.NewItemRepository()
	require.NoError(t, r.Create(newItem("a", "Dough")))

	items, err := r.List()
	require.NoError(t, err)
	items[0].Name = "mutado"

	kept, err := r.GetByID("a")
	require.NoError(t, err)
	assert.Equal(t, "Dough", kept.Name, "List devuelve un snapshot, no el estado vivo")
}

func TestGetByID_Inexistente(t *testing.T) {
	r := memory.NewItemRepository()
	item, err := r.GetByID("nope")
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestCreate_IdDuplicadoRechazado(t *testing.T) {
	r := memory.NewItemRepository()
	require.NoError(t, r.Create(newItem("a", "Dough")))
	assert.ErrorIs(t, r.Create(newItem("a", "Cheese")), domain.ErrValidation)
}

func TestDelete_Inexistente(t *testing.T) {
	r := memory.NewItemRepository()
	assert.ErrorIs(t, r.Delete("nope"), domain.ErrNotFound)
}

func TestUpdate_Inexistente(t *testing.T) {
	r := memory.NewItemRepository()
	assert.ErrorIs(t, r.Update(newItem("nope", "X")), domain.ErrNotFound)
}
