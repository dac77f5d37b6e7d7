package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-cocina/pkg/config"
)

func TestLoadSeed_SemillaEmbebidaPorDefecto(t *testing.T) {
	items, err := config.LoadSeed(config.SeedConfig{})
	require.NoError(t, err)

	require.Len(t, items, 8)
	assert.Equal(t, "Pizza Dough", items[0].Name)
	assert.Equal(t, "Onions", items[6].Name)
	assert.Equal(t, 1.50, items[6].Cost)
}

func TestLoadSeed_DesdeArchivoYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	yaml := `items:
  - name: Basil
    stock: 2
    unit: bunches
    threshold: 1
    cost: 0.5
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	items, err := config.LoadSeed(config.SeedConfig{File: path})
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Basil", items[0].Name)
	assert.Equal(t, "bunches", items[0].Unit)
	assert.Equal(t, 0.5, items[0].Cost)
}

func TestLoadSeed_ArchivoInexistente(t *testing.T) {
	_, err := config.LoadSeed(config.SeedConfig{File: "/no/existe.yaml"})
	assert.Error(t, err)
}

func TestLoadSeed_ArchivoSinItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items: []\n"), 0o644))

	_, err := config.LoadSeed(config.SeedConfig{File: path})
	assert.Error(t, err)
}
