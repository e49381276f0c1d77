package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ruxshona/bakery-api/internal/application/dto"
	"github.com/ruxshona/bakery-api/internal/domain"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías. Kind fija la colección
// (catálogo o gastos); un mismo caso de uso sirve a los dos endpoints.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	kind entity.CategoryKind
}

// NewCategoryUseCase construye el caso de uso para la colección indicada.
func NewCategoryUseCase(repo repository.CategoryRepository, kind entity.CategoryKind) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, kind: kind}
}

// Create crea una categoría. Devuelve domain.ErrDuplicate si el nombre ya existe en la colección.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	existing, _ := uc.repo.GetByName(uc.kind, name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	prefix := "cat_"
	if uc.kind == entity.CategoryExpense {
		prefix = "expcat_"
	}
	category := &entity.Category{
		ID:        prefix + uuid.New().String(),
		Kind:      uc.kind,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List devuelve la colección ordenada por nombre.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(uc.kind)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Update renombra una categoría. Devuelve nil si no existe.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil || category.Kind != uc.kind {
		return nil, nil
	}
	category.Name = strings.TrimSpace(in.Name)
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría. domain.ErrInUse si hay productos o gastos que
// la referencian; domain.ErrNotFound si no existe.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil || category.Kind != uc.kind {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
