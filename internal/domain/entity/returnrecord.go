package entity

// Estados de una devolución. Solo las APPROVED cuentan en el valor de devoluciones.
const (
	ReturnPending  = "PENDING"
	ReturnApproved = "APPROVED"
	ReturnRejected = "REJECTED"
)

// ReturnItem línea de una devolución.
type ReturnItem struct {
	ProductID string
	Quantity  int64
}

// Return devolución de productos.
type Return struct {
	ID     string
	Date   string // YYYY-MM-DD
	Status string // PENDING | APPROVED | REJECTED
	Items  []ReturnItem
}

// DateKey implementa report.Dated.
func (r *Return) DateKey() string { return r.Date }
