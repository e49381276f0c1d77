package localstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ruxshona/bakery-api/internal/domain"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
)

func openStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	return s, dir
}

func TestCategoryStore_CrearListarOrdenado(t *testing.T) {
	s, _ := openStore(t)
	store := NewCategoryStore(s)

	for _, name := range []string{"Tortlar", "Dekor", "Ingredientlar"} {
		err := store.Create(&entity.Category{
			ID: "cat_" + name, Kind: entity.CategoryProduct, Name: name,
		})
		require.NoError(t, err)
	}

	list, err := store.List(entity.CategoryProduct)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Dekor", list[0].Name, "el listado viene ordenado por nombre")
	assert.Equal(t, "Ingredientlar", list[1].Name)
	assert.Equal(t, "Tortlar", list[2].Name)
}

func TestCategoryStore_DuplicadoPorKindYNombre(t *testing.T) {
	s, _ := openStore(t)
	store := NewCategoryStore(s)

	require.NoError(t, store.Create(&entity.Category{
		ID: "cat_1", Kind: entity.CategoryProduct, Name: "Boshqa",
	}))

	err := store.Create(&entity.Category{
		ID: "cat_2", Kind: entity.CategoryProduct, Name: "Boshqa",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// El mismo nombre en la colección de gastos sí es válido.
	err = store.Create(&entity.Category{
		ID: "expcat_1", Kind: entity.CategoryExpense, Name: "Boshqa",
	})
	assert.NoError(t, err)
}

func TestCategoryStore_DeleteEnUso(t *testing.T) {
	s, _ := openStore(t)
	categories := NewCategoryStore(s)
	products := NewProductStore(s)

	require.NoError(t, categories.Create(&entity.Category{
		ID: "cat_1", Kind: entity.CategoryProduct, Name: "Tortlar",
	}))
	require.NoError(t, products.Create(&entity.Product{
		ID: "p_1", Name: "Napoleon tort", Type: entity.TypeProduct,
		CategoryID: "cat_1", UnitID: "u_1", Active: true,
	}))

	err := categories.Delete("cat_1")
	assert.ErrorIs(t, err, domain.ErrInUse,
		"no se borra una categoría con productos asociados")

	require.NoError(t, products.Delete("p_1"))
	assert.NoError(t, categories.Delete("cat_1"))
}

func TestUnitStore_DeleteEnUsoPorProducto(t *testing.T) {
	s, _ := openStore(t)
	units := NewUnitStore(s)
	products := NewProductStore(s)

	require.NoError(t, units.Create(&entity.Unit{ID: "u_1", Name: "Dona", Short: "dona"}))
	require.NoError(t, products.Create(&entity.Product{
		ID: "p_1", Name: "Napoleon tort", Type: entity.TypeProduct,
		CategoryID: "cat_1", UnitID: "u_1", Active: true,
	}))

	assert.ErrorIs(t, units.Delete("u_1"), domain.ErrInUse)
}

func TestStore_PersisteEntreAperturas(t *testing.T) {
	s, dir := openStore(t)
	require.NoError(t, NewUnitStore(s).Create(&entity.Unit{
		ID: "u_1", Name: "Kilogram", Short: "kg", CreatedAt: time.Now(),
	}))

	// Reabrir sobre el mismo directorio simula un reinicio del proceso.
	reopened, err := Open(dir)
	require.NoError(t, err)

	list, err := NewUnitStore(reopened).List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Kilogram", list[0].Name)
}

func TestStore_EscrituraAtomicaSinArchivoTemporal(t *testing.T) {
	s, dir := openStore(t)
	require.NoError(t, NewUnitStore(s).Create(&entity.Unit{ID: "u_1", Name: "Litr", Short: "l"}))

	_, err := os.Stat(filepath.Join(dir, fileUnits))
	assert.NoError(t, err, "la colección queda en su archivo definitivo")

	_, err = os.Stat(filepath.Join(dir, fileUnits+".tmp"))
	assert.True(t, os.IsNotExist(err), "el archivo temporal no sobrevive a la escritura")
}

func TestStore_ArchivoInexistenteEsColeccionVacia(t *testing.T) {
	s, _ := openStore(t)

	list, err := NewUnitStore(s).List()
	require.NoError(t, err)
	assert.Empty(t, list)
}
