package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// RestaurantRepository define el puerto de persistencia para Restaurant (DIP).
type RestaurantRepository interface {
	Create(restaurant *entity.Restaurant) error
	GetByID(id string) (*entity.Restaurant, error)
	Update(restaurant *entity.Restaurant) error
	Delete(id string) error
	// ListByUser devuelve los restaurantes sobre los que el usuario tiene
	// algún AccessGrant, en orden de creación.
	ListByUser(userID string) ([]*entity.Restaurant, error)
}
