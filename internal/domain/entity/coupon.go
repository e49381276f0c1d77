package entity

// Coupon código de descuento de la tienda online.
// UsedCount lo mantiene la fuente de datos (se incrementa al aplicar el cupón).
type Coupon struct {
	ID        string
	Code      string
	Discount  int64 // descuento en so'm
	UsedCount int64
	Active    bool
}
