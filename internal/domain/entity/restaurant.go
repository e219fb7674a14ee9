package entity

import "time"

// Restaurant representa un restaurante (tenant de inventario).
// OwnerID referencia al User creador, que siempre conserva un AccessGrant
// de rol owner sobre él mientras el restaurante exista.
type Restaurant struct {
	ID        string
	Name      string
	Address   string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
