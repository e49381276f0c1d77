package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ruxshona/bakery-api/internal/application/dto"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Si el front envía ID (restauración de respaldo) se
// respeta; si no, se genera uno nuevo con prefijo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	id := in.ID
	if id == "" {
		id = "p_" + uuid.New().String()
	}
	now := time.Now()
	product := &entity.Product{
		ID:         id,
		Name:       strings.TrimSpace(in.Name),
		Type:       in.Type,
		CategoryID: in.CategoryID,
		UnitID:     in.UnitID,
		Price:      in.Price,
		SalePrice:  in.SalePrice,
		Active:     active,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo completo (creación descendente).
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update aplica un PATCH parcial. Devuelve nil si el producto no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		product.Type = *in.Type
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.UnitID != nil {
		product.UnitID = *in.UnitID
	}
	if in.Price != nil {
		product.Price = in.Price
	}
	if in.SalePrice != nil {
		product.SalePrice = in.SalePrice
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Type:       p.Type,
		CategoryID: p.CategoryID,
		UnitID:     p.UnitID,
		Price:      p.Price,
		SalePrice:  p.SalePrice,
		Active:     p.Active,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
