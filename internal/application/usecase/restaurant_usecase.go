package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// RestaurantUseCase casos de uso CRUD para restaurantes. La creación y la
// eliminación en cascada son transaccionales: nunca queda un restaurante sin
// grant de owner ni registros huérfanos tras un delete.
type RestaurantUseCase struct {
	restaurantRepo repository.RestaurantRepository
	accessRepo     repository.AccessRepository
	tx             TxRunner
}

// NewRestaurantUseCase construye el caso de uso.
func NewRestaurantUseCase(restaurantRepo repository.RestaurantRepository, accessRepo repository.AccessRepository, tx TxRunner) *RestaurantUseCase {
	return &RestaurantUseCase{restaurantRepo: restaurantRepo, accessRepo: accessRepo, tx: tx}
}

// Create crea un restaurante y el grant owner del creador en una transacción.
func (uc *RestaurantUseCase) Create(ctx context.Context, userID string, in dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	now := time.Now()
	restaurant := &entity.Restaurant{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		OwnerID:   userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	grant := &entity.AccessGrant{
		UserID:       userID,
		RestaurantID: restaurant.ID,
		Role:         entity.RoleOwner,
		GrantedAt:    now,
	}
	err := uc.tx.Run(ctx, func(repos TxRepos) error {
		if err := repos.Restaurants.Create(restaurant); err != nil {
			return err
		}
		return repos.Access.Upsert(grant)
	})
	if err != nil {
		return nil, err
	}
	return toRestaurantResponse(restaurant, entity.RoleOwner), nil
}

// GetByID obtiene un restaurante; requiere cualquier grant sobre él.
func (uc *RestaurantUseCase) GetByID(userID, id string) (*dto.RestaurantResponse, error) {
	restaurant, err := uc.restaurantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrNotFound
	}
	role, err := uc.accessRepo.GetRole(userID, id)
	if err != nil {
		return nil, err
	}
	if role == "" {
		return nil, domain.ErrForbidden
	}
	return toRestaurantResponse(restaurant, role), nil
}

// Update actualiza nombre/dirección; sólo el owner puede hacerlo.
func (uc *RestaurantUseCase) Update(userID, id string, in dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error) {
	restaurant, err := uc.restaurantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrNotFound
	}
	role, err := uc.accessRepo.GetRole(userID, id)
	if err != nil {
		return nil, err
	}
	if !entity.CanAdministerRestaurant(role) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		restaurant.Name = *in.Name
	}
	if in.Address != nil {
		restaurant.Address = *in.Address
	}
	restaurant.UpdatedAt = time.Now()
	if err := uc.restaurantRepo.Update(restaurant); err != nil {
		return nil, err
	}
	return toRestaurantResponse(restaurant, role), nil
}

// Delete elimina el restaurante en cascada: líneas de inventario, recibos y
// grants desaparecen; las invitaciones pendientes pierden este restaurante de
// su conjunto objetivo (y se eliminan si quedan vacías). Sólo el owner.
func (uc *RestaurantUseCase) Delete(ctx context.Context, userID, id string) error {
	restaurant, err := uc.restaurantRepo.GetByID(id)
	if err != nil {
		return err
	}
	if restaurant == nil {
		return domain.ErrNotFound
	}
	role, err := uc.accessRepo.GetRole(userID, id)
	if err != nil {
		return err
	}
	if !entity.CanAdministerRestaurant(role) {
		return domain.ErrForbidden
	}
	return uc.tx.Run(ctx, func(repos TxRepos) error {
		if err := repos.Items.DeleteByRestaurant(id); err != nil {
			return err
		}
		if err := repos.Receipts.DeleteByRestaurant(id); err != nil {
			return err
		}
		if err := repos.Access.DeleteByRestaurant(id); err != nil {
			return err
		}
		if err := repos.Invites.StripRestaurant(id); err != nil {
			return err
		}
		return repos.Restaurants.Delete(id)
	})
}

// ListAccessible devuelve los restaurantes sobre los que el usuario tiene
// algún grant, con su rol en cada uno.
func (uc *RestaurantUseCase) ListAccessible(userID string) (*dto.RestaurantListResponse, error) {
	list, err := uc.restaurantRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RestaurantResponse, 0, len(list))
	for _, r := range list {
		role, err := uc.accessRepo.GetRole(userID, r.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toRestaurantResponse(r, role))
	}
	return &dto.RestaurantListResponse{Restaurants: out, Total: len(out)}, nil
}
