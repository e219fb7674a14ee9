package entity

import "time"

// Invite es un código de un solo uso que otorga un rol sobre un conjunto de
// restaurantes. Transición de estado: unused → used, exactamente una vez.
// Un restaurante eliminado se retira de RestaurantIDs; si el conjunto queda
// vacío la invitación se elimina.
type Invite struct {
	ID            string
	Code          string
	Role          string // manager o employee; owner nunca se otorga por invitación
	RestaurantIDs []string
	CreatedBy     string
	CreatedAt     time.Time
	Used          bool
	UsedBy        string
	UsedAt        *time.Time
}
