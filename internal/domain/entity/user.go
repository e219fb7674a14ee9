package entity

import "time"

// User representa una cuenta del sistema. El rol base es siempre RoleOwner:
// cualquier registrado puede crear sus propios restaurantes. El acceso a
// restaurantes ajenos se modela por AccessGrant, no aquí.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // rol base de la cuenta (ver access_grant.go)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
