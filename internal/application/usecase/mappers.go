package usecase

import (
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/inventory"
)

func toRestaurantResponse(r *entity.Restaurant, myRole string) *dto.RestaurantResponse {
	if r == nil {
		return nil
	}
	return &dto.RestaurantResponse{
		ID:        r.ID,
		Name:      r.Name,
		Address:   r.Address,
		OwnerID:   r.OwnerID,
		MyRole:    myRole,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toItemResponse(it *entity.InventoryItem) dto.ItemResponse {
	return dto.ItemResponse{
		ID:           it.ID,
		RestaurantID: it.RestaurantID,
		Name:         it.Name,
		Category:     it.Category,
		Quantity:     it.Quantity,
		Unit:         it.Unit,
		MinStock:     it.MinStock,
		CostPerUnit:  it.CostPerUnit,
		Value:        inventory.ItemValue(it),
		LowStock:     inventory.IsLowStock(it),
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}

func toReceiptResponse(r *entity.Receipt) dto.ReceiptResponse {
	return dto.ReceiptResponse{
		ID:           r.ID,
		RestaurantID: r.RestaurantID,
		Note:         r.Note,
		MIME:         r.MIME,
		UploadedBy:   r.UploadedBy,
		UploadedAt:   r.UploadedAt,
	}
}

func toInviteResponse(inv *entity.Invite, link string) *dto.InviteResponse {
	return &dto.InviteResponse{
		ID:            inv.ID,
		Code:          inv.Code,
		Link:          link,
		Role:          inv.Role,
		RestaurantIDs: inv.RestaurantIDs,
		Used:          inv.Used,
		CreatedAt:     inv.CreatedAt,
	}
}
