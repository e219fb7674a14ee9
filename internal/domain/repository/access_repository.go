package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// AccessRepository define el puerto de persistencia para AccessGrant (DIP).
type AccessRepository interface {
	// Upsert crea el grant o reemplaza el rol si el par (user, restaurant)
	// ya existe.
	Upsert(grant *entity.AccessGrant) error
	// GetRole devuelve el rol del usuario sobre el restaurante, o "" si no
	// tiene acceso.
	GetRole(userID, restaurantID string) (string, error)
	ListByRestaurant(restaurantID string) ([]*entity.AccessGrant, error)
	Delete(userID, restaurantID string) error
	DeleteByRestaurant(restaurantID string) error
}
