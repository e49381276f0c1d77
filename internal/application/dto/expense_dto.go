package dto

import "time"

// CreateExpenseRequest entrada para registrar un gasto.
// ID es opcional: el front lo envía al restaurar un respaldo.
type CreateExpenseRequest struct {
	ID            string `json:"id"`
	Date          string `json:"date" validate:"required,date"`
	CategoryID    string `json:"categoryId" validate:"required"`
	Amount        int64  `json:"amount" validate:"required,min=1"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=CASH CARD TRANSFER"`
	Note          string `json:"note" validate:"max=200"`
}

// UpdateExpenseRequest entrada PATCH: solo los campos presentes se aplican.
type UpdateExpenseRequest struct {
	Date          *string `json:"date" validate:"omitempty,date"`
	CategoryID    *string `json:"categoryId"`
	Amount        *int64  `json:"amount" validate:"omitempty,min=1"`
	PaymentMethod *string `json:"paymentMethod" validate:"omitempty,oneof=CASH CARD TRANSFER"`
	Note          *string `json:"note" validate:"omitempty,max=200"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID            string    `json:"id"`
	Date          string    `json:"date"`
	CategoryID    string    `json:"categoryId"`
	Amount        int64     `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
