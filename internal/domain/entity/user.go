package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// User representa un usuario de la aplicación.
// PasswordHash SIEMPRE contiene un hash bcrypt; nunca se almacena texto plano.
type User struct {
	ID           string
	Username     string // único
	Name         string
	Email        string
	Role         string // admin | manager | user
	PasswordHash string
	Status       string // active | inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
