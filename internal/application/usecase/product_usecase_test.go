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

type fakeProductRepo struct {
	products []*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.products = append(f.products, p)
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	for i, existing := range f.products {
		if existing.ID == p.ID {
			f.products[i] = p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeProductRepo) List() ([]*entity.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) Delete(id string) error {
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func int64Ptr(v int64) *int64 { return &v }

func TestProductCreate_IDGeneradoYActivoPorDefecto(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(dto.CreateProductRequest{
		Name:       "Napoleon tort",
		Type:       entity.TypeProduct,
		CategoryID: "cat_1",
		UnitID:     "u_1",
		Price:      int64Ptr(180000),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.ID, "p_"), "sin ID del cliente se genera uno con prefijo")
	assert.True(t, out.Active, "un producto nuevo está activo salvo indicación contraria")
}

func TestProductCreate_RespetaIDDelCliente(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(dto.CreateProductRequest{
		ID:         "p_respaldo_01",
		Name:       "Smetana",
		Type:       entity.TypeIngredient,
		CategoryID: "cat_2",
		UnitID:     "u_1",
	})
	require.NoError(t, err)
	assert.Equal(t, "p_respaldo_01", out.ID,
		"la restauración de respaldos conserva los IDs originales")
}

func TestProductUpdate_PatchParcial(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{
		{ID: "p_1", Name: "Napoleon tort", Type: entity.TypeProduct,
			CategoryID: "cat_1", UnitID: "u_1", Price: int64Ptr(180000), Active: true},
	}}
	uc := usecase.NewProductUseCase(repo)

	newPrice := int64(200000)
	archived := false
	out, err := uc.Update("p_1", dto.UpdateProductRequest{
		Price:  &newPrice,
		Active: &archived,
	})
	require.NoError(t, err)

	assert.Equal(t, "Napoleon tort", out.Name, "los campos ausentes no se tocan")
	require.NotNil(t, out.Price)
	assert.Equal(t, int64(200000), *out.Price)
	assert.False(t, out.Active, "active=false archiva el producto")
}

func TestProductUpdate_NoExisteDevuelveNil(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	out, err := uc.Update("p_fantasma", dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductDelete_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	err := uc.Delete("p_fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
