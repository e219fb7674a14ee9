package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* devuelven (nil, nil) cuando el recurso no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	GetByIDs(ids []string) ([]*entity.User, error)
}
