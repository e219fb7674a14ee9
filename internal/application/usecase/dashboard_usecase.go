package usecase

import (
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/inventory"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen de inventario de un restaurante:
// cantidad de líneas, valorización total y líneas en stock bajo.
type DashboardUseCase struct {
	itemRepo   repository.ItemRepository
	accessRepo repository.AccessRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(itemRepo repository.ItemRepository, accessRepo repository.AccessRepository) *DashboardUseCase {
	return &DashboardUseCase{itemRepo: itemRepo, accessRepo: accessRepo}
}

// GetSummary construye el resumen. Cualquier rol con acceso puede verlo.
func (uc *DashboardUseCase) GetSummary(userID, restaurantID string) (*dto.DashboardSummaryResponse, error) {
	role, err := uc.accessRepo.GetRole(userID, restaurantID)
	if err != nil {
		return nil, err
	}
	if role == "" {
		return nil, domain.ErrForbidden
	}
	items, err := uc.itemRepo.ListByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}

	lowStock := make([]dto.ItemResponse, 0)
	for _, it := range items {
		if inventory.IsLowStock(it) {
			lowStock = append(lowStock, toItemResponse(it))
		}
	}
	return &dto.DashboardSummaryResponse{
		RestaurantID:  restaurantID,
		ItemCount:     len(items),
		TotalValue:    inventory.TotalValue(items),
		LowStockCount: len(lowStock),
		LowStockItems: lowStock,
	}, nil
}
