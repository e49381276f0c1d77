package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ruxshona/bakery-api/internal/application/dto"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

// ExpenseUseCase casos de uso CRUD para gastos.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create registra un gasto. Si el front envía ID (restauración) se respeta.
func (uc *ExpenseUseCase) Create(in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	id := in.ID
	if id == "" {
		id = "e_" + uuid.New().String()
	}
	now := time.Now()
	expense := &entity.Expense{
		ID:            id,
		Date:          in.Date,
		CategoryID:    in.CategoryID,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		Note:          strings.TrimSpace(in.Note),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// List devuelve todos los gastos (fecha descendente).
func (uc *ExpenseUseCase) List() ([]dto.ExpenseResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExpenseResponse(e))
	}
	return items, nil
}

// Update aplica un PATCH parcial. Devuelve nil si el gasto no existe.
func (uc *ExpenseUseCase) Update(id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	if in.Date != nil {
		expense.Date = *in.Date
	}
	if in.CategoryID != nil {
		expense.CategoryID = *in.CategoryID
	}
	if in.Amount != nil {
		expense.Amount = *in.Amount
	}
	if in.PaymentMethod != nil {
		expense.PaymentMethod = *in.PaymentMethod
	}
	if in.Note != nil {
		expense.Note = strings.TrimSpace(*in.Note)
	}
	expense.UpdatedAt = time.Now()
	if err := uc.repo.Update(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// Delete elimina un gasto. domain.ErrNotFound si no existe.
func (uc *ExpenseUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	if e == nil {
		return nil
	}
	return &dto.ExpenseResponse{
		ID:            e.ID,
		Date:          e.Date,
		CategoryID:    e.CategoryID,
		Amount:        e.Amount,
		PaymentMethod: e.PaymentMethod,
		Note:          e.Note,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
