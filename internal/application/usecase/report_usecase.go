package usecase

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/inventory"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// ReportUseCase genera el reporte PDF del inventario de un restaurante.
type ReportUseCase struct {
	itemRepo       repository.ItemRepository
	restaurantRepo repository.RestaurantRepository
	accessRepo     repository.AccessRepository
	generator      InventoryPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(itemRepo repository.ItemRepository, restaurantRepo repository.RestaurantRepository, accessRepo repository.AccessRepository, generator InventoryPDFGenerator) *ReportUseCase {
	return &ReportUseCase{itemRepo: itemRepo, restaurantRepo: restaurantRepo, accessRepo: accessRepo, generator: generator}
}

// GenerateInventoryReport devuelve los bytes del PDF. Cualquier rol con
// acceso al restaurante puede descargarlo; las líneas van ordenadas por
// nombre.
func (uc *ReportUseCase) GenerateInventoryReport(ctx context.Context, userID, restaurantID string) ([]byte, error) {
	role, err := uc.accessRepo.GetRole(userID, restaurantID)
	if err != nil {
		return nil, err
	}
	if role == "" {
		return nil, domain.ErrForbidden
	}
	restaurant, err := uc.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.itemRepo.ListByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	items = inventory.Sort(items, inventory.SortByName, inventory.OrderAsc)
	return uc.generator.GenerateInventoryPDF(ctx, restaurant, items)
}
