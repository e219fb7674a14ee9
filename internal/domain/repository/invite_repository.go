package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// InviteRepository define el puerto de persistencia para Invite (DIP).
type InviteRepository interface {
	Create(invite *entity.Invite) error
	// GetUnusedByCode devuelve la invitación con ese código si aún no fue
	// usada; (nil, nil) si no existe o ya se consumió.
	GetUnusedByCode(code string) (*entity.Invite, error)
	// MarkUsed marca la invitación como usada por el usuario indicado.
	// Devuelve domain.ErrInviteInvalid si ya estaba usada (la transición
	// unused→used ocurre a lo sumo una vez).
	MarkUsed(id, usedBy string) error
	ListByCreator(createdBy string) ([]*entity.Invite, error)
	// StripRestaurant retira el restaurante del conjunto objetivo de todas
	// las invitaciones pendientes y elimina las que queden sin restaurantes.
	StripRestaurant(restaurantID string) error
}
