package dto

import "time"

// CreateRestaurantRequest entrada para crear un restaurante.
type CreateRestaurantRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address" validate:"omitempty,max=300"`
}

// UpdateRestaurantRequest actualización parcial (nil = sin cambio).
type UpdateRestaurantRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

// RestaurantResponse salida de un restaurante. MyRole es el rol del usuario
// autenticado sobre él.
type RestaurantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	OwnerID   string    `json:"owner_id"`
	MyRole    string    `json:"my_role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RestaurantListResponse listado de restaurantes accesibles.
type RestaurantListResponse struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
	Total       int                  `json:"total"`
}
