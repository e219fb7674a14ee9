package dto

import "time"

// CreateInviteRequest entrada para emitir una invitación. El rol owner no se
// puede otorgar por invitación.
type CreateInviteRequest struct {
	Role          string   `json:"role" validate:"required,oneof=manager employee"`
	RestaurantIDs []string `json:"restaurant_ids" validate:"required,min=1"`
}

// InviteResponse invitación emitida con su enlace compartible.
type InviteResponse struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Link          string    `json:"link"`
	Role          string    `json:"role"`
	RestaurantIDs []string  `json:"restaurant_ids"`
	Used          bool      `json:"used"`
	CreatedAt     time.Time `json:"created_at"`
}

// RedeemInviteRequest canje público de un código.
type RedeemInviteRequest struct {
	Code string `json:"code" validate:"required"`
}

// RedeemInviteResponse vista previa del canje: qué rol y sobre cuántos
// restaurantes se otorgará al autenticarse.
type RedeemInviteResponse struct {
	Role            string `json:"role"`
	RestaurantCount int    `json:"restaurant_count"`
}
