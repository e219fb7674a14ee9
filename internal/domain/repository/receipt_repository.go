package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// ReceiptRepository define el puerto de persistencia para Receipt (DIP).
type ReceiptRepository interface {
	Create(receipt *entity.Receipt) error
	GetByID(id string) (*entity.Receipt, error)
	Delete(id string) error
	// ListByRestaurant devuelve los recibos del restaurante, el más reciente
	// primero. La imagen no se incluye en el listado (sólo metadatos).
	ListByRestaurant(restaurantID string) ([]*entity.Receipt, error)
	DeleteByRestaurant(restaurantID string) error
}
