package entity

import "time"

// Métodos de pago aceptados para un gasto.
const (
	PayCash     = "CASH"
	PayCard     = "CARD"
	PayTransfer = "TRANSFER"
)

// Expense gasto operativo de la pastelería. Date es la fecha calendario
// "YYYY-MM-DD" (no un instante); Amount es positivo, en so'm.
type Expense struct {
	ID            string
	Date          string // YYYY-MM-DD
	CategoryID    string
	Amount        int64
	PaymentMethod string // CASH | CARD | TRANSFER
	Note          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DateKey implementa report.Dated.
func (e *Expense) DateKey() string { return e.Date }
