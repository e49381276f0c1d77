package entity

// BranchStock existencias actuales de un producto en una sucursal.
// Product puede venir embebido (consultas con join); si es nil se resuelve
// contra el catálogo por ProductID.
type BranchStock struct {
	ID        string
	BranchID  string
	ProductID string
	Quantity  int64
	Product   *Product
}
