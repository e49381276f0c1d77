package entity

// Sale línea de venta registrada (una por producto vendido).
// Su aporte al ingreso es Price * Quantity.
type Sale struct {
	ID        string
	Date      string // YYYY-MM-DD
	ProductID string
	Quantity  int64
	Price     int64
}

// DateKey implementa report.Dated.
func (s *Sale) DateKey() string { return s.Date }
