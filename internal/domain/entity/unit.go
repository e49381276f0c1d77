package entity

import "time"

// Unit unidad de medida del catálogo (Kilogram/kg, Dona/dona, Litr/l...).
type Unit struct {
	ID        string
	Name      string
	Short     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
