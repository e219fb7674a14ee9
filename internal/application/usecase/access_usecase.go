package usecase

import (
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// AccessUseCase gestión de miembros de un restaurante: listar y revocar
// grants. El grant owner del creador no es revocable por esta vía; sólo
// desaparece al eliminar el restaurante.
type AccessUseCase struct {
	accessRepo     repository.AccessRepository
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
}

// NewAccessUseCase construye el caso de uso.
func NewAccessUseCase(accessRepo repository.AccessRepository, userRepo repository.UserRepository, restaurantRepo repository.RestaurantRepository) *AccessUseCase {
	return &AccessUseCase{accessRepo: accessRepo, userRepo: userRepo, restaurantRepo: restaurantRepo}
}

// ListMembers devuelve los usuarios con acceso al restaurante y su rol.
// Sólo el owner puede ver la lista.
func (uc *AccessUseCase) ListMembers(callerID, restaurantID string) (*dto.MemberListResponse, error) {
	if err := uc.requireOwner(callerID, restaurantID); err != nil {
		return nil, err
	}
	grants, err := uc.accessRepo.ListByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(grants))
	for _, g := range grants {
		ids = append(ids, g.UserID)
	}
	users, err := uc.userRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	members := make([]dto.MemberResponse, 0, len(grants))
	for _, g := range grants {
		u, ok := byID[g.UserID]
		if !ok {
			continue // grant colgante: el usuario ya no existe
		}
		members = append(members, dto.MemberResponse{
			UserID:    u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      g.Role,
			GrantedAt: g.GrantedAt,
		})
	}
	return &dto.MemberListResponse{Members: members, Total: len(members)}, nil
}

// Remove revoca el acceso de un usuario al restaurante. El grant del creador
// es intocable: eliminarlo dejaría un restaurante sin owner.
func (uc *AccessUseCase) Remove(callerID, userID, restaurantID string) error {
	if err := uc.requireOwner(callerID, restaurantID); err != nil {
		return err
	}
	restaurant, err := uc.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		return err
	}
	if restaurant == nil {
		return domain.ErrNotFound
	}
	if restaurant.OwnerID == userID {
		return domain.ErrForbidden
	}
	role, err := uc.accessRepo.GetRole(userID, restaurantID)
	if err != nil {
		return err
	}
	if role == "" {
		return domain.ErrNotFound
	}
	return uc.accessRepo.Delete(userID, restaurantID)
}

// RoleOf devuelve el rol del usuario sobre el restaurante ("" si ninguno).
func (uc *AccessUseCase) RoleOf(userID, restaurantID string) (string, error) {
	return uc.accessRepo.GetRole(userID, restaurantID)
}

func (uc *AccessUseCase) requireOwner(userID, restaurantID string) error {
	role, err := uc.accessRepo.GetRole(userID, restaurantID)
	if err != nil {
		return err
	}
	if !entity.CanAdministerRestaurant(role) {
		return domain.ErrForbidden
	}
	return nil
}
