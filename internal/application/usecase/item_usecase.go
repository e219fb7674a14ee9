package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/inventory"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// ItemUseCase casos de uso de inventario. Todas las mutaciones exigen rol
// owner o manager sobre el restaurante de la línea (fail closed: el permiso
// se verifica antes de tocar nada). Cantidad, mínimo y costo nunca quedan
// negativos: alta/edición con negativos se rechazan con ErrInvalidInput;
// adjust/set recortan en cero.
type ItemUseCase struct {
	itemRepo   repository.ItemRepository
	accessRepo repository.AccessRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(itemRepo repository.ItemRepository, accessRepo repository.AccessRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, accessRepo: accessRepo}
}

// Add crea una línea de inventario en el restaurante.
func (uc *ItemUseCase) Add(userID, restaurantID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if err := uc.requireManage(userID, restaurantID); err != nil {
		return nil, err
	}
	if in.Quantity.IsNegative() || in.MinStock.IsNegative() || in.CostPerUnit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		Name:         in.Name,
		Category:     in.Category,
		Quantity:     in.Quantity,
		Unit:         in.Unit,
		MinStock:     in.MinStock,
		CostPerUnit:  in.CostPerUnit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// Update fusiona los campos presentes sobre la línea existente; los campos
// numéricos ausentes conservan su valor anterior.
func (uc *ItemUseCase) Update(userID, itemID string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.getManaged(userID, itemID)
	if err != nil {
		return nil, err
	}
	if in.Quantity != nil && in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock != nil && in.MinStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPerUnit != nil && in.CostPerUnit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.MinStock != nil {
		item.MinStock = *in.MinStock
	}
	if in.CostPerUnit != nil {
		item.CostPerUnit = *in.CostPerUnit
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// Delete elimina la línea.
func (uc *ItemUseCase) Delete(userID, itemID string) error {
	if _, err := uc.getManaged(userID, itemID); err != nil {
		return err
	}
	return uc.itemRepo.Delete(itemID)
}

// AdjustQuantity suma delta a la cantidad, con piso en cero: un descuento
// mayor al stock deja la línea en 0, nunca en negativo.
func (uc *ItemUseCase) AdjustQuantity(userID, itemID string, delta decimal.Decimal) (*dto.ItemResponse, error) {
	item, err := uc.getManaged(userID, itemID)
	if err != nil {
		return nil, err
	}
	return uc.saveQuantity(item, item.Quantity.Add(delta))
}

// SetQuantity fija la cantidad en un valor absoluto, con piso en cero.
func (uc *ItemUseCase) SetQuantity(userID, itemID string, quantity decimal.Decimal) (*dto.ItemResponse, error) {
	item, err := uc.getManaged(userID, itemID)
	if err != nil {
		return nil, err
	}
	return uc.saveQuantity(item, quantity)
}

// List devuelve el inventario del restaurante filtrado y ordenado, junto con
// la valorización total del resultado. Cualquier rol puede consultar.
func (uc *ItemUseCase) List(userID, restaurantID, search, category, sortBy, order string) (*dto.ItemListResponse, error) {
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
	items = inventory.Filter(items, search, category)
	items = inventory.Sort(items, sortBy, order)

	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items:      out,
		Total:      len(out),
		TotalValue: inventory.TotalValue(items),
	}, nil
}

func (uc *ItemUseCase) saveQuantity(item *entity.InventoryItem, quantity decimal.Decimal) (*dto.ItemResponse, error) {
	if quantity.IsNegative() {
		quantity = decimal.Zero
	}
	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// getManaged carga la línea y verifica permiso de gestión sobre su
// restaurante, en ese orden: una línea inexistente responde NotFound antes
// que Forbidden.
func (uc *ItemUseCase) getManaged(userID, itemID string) (*entity.InventoryItem, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.requireManage(userID, item.RestaurantID); err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *ItemUseCase) requireManage(userID, restaurantID string) error {
	role, err := uc.accessRepo.GetRole(userID, restaurantID)
	if err != nil {
		return err
	}
	if !entity.CanManageInventory(role) {
		return domain.ErrForbidden
	}
	return nil
}
