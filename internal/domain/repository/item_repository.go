package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para InventoryItem (DIP).
type ItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	Delete(id string) error
	ListByRestaurant(restaurantID string) ([]*entity.InventoryItem, error)
	DeleteByRestaurant(restaurantID string) error
}
