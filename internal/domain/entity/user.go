package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleKassir = "kassir"
)

// User usuario del sistema (personal de la pastelería).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, kassir
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
