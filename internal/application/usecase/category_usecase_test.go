package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ruxshona/bakery-api/internal/application/dto"
	"github.com/ruxshona/bakery-api/internal/application/usecase"
	"github.com/ruxshona/bakery-api/internal/domain"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
)

// fakeCategoryRepo repositorio en memoria; sirve a las dos colecciones.
type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error {
	f.categories = append(f.categories, c)
	return nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) GetByName(kind entity.CategoryKind, name string) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.Kind == kind && strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Update(c *entity.Category) error {
	for i, existing := range f.categories {
		if existing.ID == c.ID {
			f.categories[i] = c
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeCategoryRepo) List(kind entity.CategoryKind) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0)
	for _, c := range f.categories {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) Delete(id string) error {
	for i, c := range f.categories {
		if c.ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func TestCategoryCreate_PrefijosPorColeccion(t *testing.T) {
	repo := &fakeCategoryRepo{}
	catalogUC := usecase.NewCategoryUseCase(repo, entity.CategoryProduct)
	expenseUC := usecase.NewCategoryUseCase(repo, entity.CategoryExpense)

	cat, err := catalogUC.Create(dto.CreateCategoryRequest{Name: "Tortlar"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cat.ID, "cat_"),
		"las categorías de catálogo llevan prefijo cat_")

	exp, err := expenseUC.Create(dto.CreateCategoryRequest{Name: "Transport"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(exp.ID, "expcat_"),
		"las categorías de gasto llevan prefijo expcat_")
}

func TestCategoryCreate_NombreDuplicadoEnLaMismaColeccion(t *testing.T) {
	repo := &fakeCategoryRepo{}
	uc := usecase.NewCategoryUseCase(repo, entity.CategoryProduct)

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Tortlar"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCategoryRequest{Name: "  Tortlar "})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"el nombre es único dentro de la colección, espacios aparte")
}

func TestCategoryCreate_MismoNombreEnOtraColeccion(t *testing.T) {
	repo := &fakeCategoryRepo{}
	catalogUC := usecase.NewCategoryUseCase(repo, entity.CategoryProduct)
	expenseUC := usecase.NewCategoryUseCase(repo, entity.CategoryExpense)

	_, err := catalogUC.Create(dto.CreateCategoryRequest{Name: "Boshqa"})
	require.NoError(t, err)

	_, err = expenseUC.Create(dto.CreateCategoryRequest{Name: "Boshqa"})
	assert.NoError(t, err, "las colecciones de catálogo y gasto no comparten unicidad")
}

func TestCategoryUpdate_KindAjenoDevuelveNil(t *testing.T) {
	repo := &fakeCategoryRepo{categories: []*entity.Category{
		{ID: "expcat_1", Kind: entity.CategoryExpense, Name: "Transport"},
	}}
	uc := usecase.NewCategoryUseCase(repo, entity.CategoryProduct)

	out, err := uc.Update("expcat_1", dto.UpdateCategoryRequest{Name: "Otro"})
	require.NoError(t, err)
	assert.Nil(t, out, "una categoría de otra colección es invisible para este caso de uso")
}

func TestCategoryDelete_KindAjenoEsNotFound(t *testing.T) {
	repo := &fakeCategoryRepo{categories: []*entity.Category{
		{ID: "expcat_1", Kind: entity.CategoryExpense, Name: "Transport"},
	}}
	uc := usecase.NewCategoryUseCase(repo, entity.CategoryProduct)

	err := uc.Delete("expcat_1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
