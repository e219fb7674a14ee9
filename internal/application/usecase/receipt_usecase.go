package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// ReceiptUseCase casos de uso de recibos: subida con validación y
// normalización de imagen, listado por restaurante y borrado.
type ReceiptUseCase struct {
	receiptRepo repository.ReceiptRepository
	accessRepo  repository.AccessRepository
	processor   ReceiptImageProcessor
	maxBytes    int
}

// NewReceiptUseCase construye el caso de uso. maxBytes acota el payload
// antes de procesar (referencia: 5 MiB).
func NewReceiptUseCase(receiptRepo repository.ReceiptRepository, accessRepo repository.AccessRepository, processor ReceiptImageProcessor, maxBytes int) *ReceiptUseCase {
	return &ReceiptUseCase{receiptRepo: receiptRepo, accessRepo: accessRepo, processor: processor, maxBytes: maxBytes}
}

// Add sube un recibo. Requiere permiso de gestión; la imagen se valida por
// contenido (no por extensión), se reescala y se recomprime antes de
// persistir.
func (uc *ReceiptUseCase) Add(userID, restaurantID string, payload []byte, note string) (*dto.ReceiptResponse, error) {
	if err := uc.requireManage(userID, restaurantID); err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if uc.maxBytes > 0 && len(payload) > uc.maxBytes {
		return nil, domain.ErrPayloadTooLarge
	}
	processed, mime, err := uc.processor.Process(payload)
	if err != nil {
		return nil, err
	}
	receipt := &entity.Receipt{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		Image:        processed,
		MIME:         mime,
		Note:         note,
		UploadedBy:   userID,
		UploadedAt:   time.Now(),
	}
	if err := uc.receiptRepo.Create(receipt); err != nil {
		return nil, err
	}
	resp := toReceiptResponse(receipt)
	return &resp, nil
}

// List devuelve los recibos del restaurante, el más reciente primero.
// Cualquier rol puede consultar.
func (uc *ReceiptUseCase) List(userID, restaurantID string) (*dto.ReceiptListResponse, error) {
	role, err := uc.accessRepo.GetRole(userID, restaurantID)
	if err != nil {
		return nil, err
	}
	if role == "" {
		return nil, domain.ErrForbidden
	}
	list, err := uc.receiptRepo.ListByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReceiptResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toReceiptResponse(r))
	}
	return &dto.ReceiptListResponse{Receipts: out, Total: len(out)}, nil
}

// GetImage devuelve los bytes de la imagen y su content-type.
func (uc *ReceiptUseCase) GetImage(userID, receiptID string) ([]byte, string, error) {
	receipt, err := uc.receiptRepo.GetByID(receiptID)
	if err != nil {
		return nil, "", err
	}
	if receipt == nil {
		return nil, "", domain.ErrNotFound
	}
	role, err := uc.accessRepo.GetRole(userID, receipt.RestaurantID)
	if err != nil {
		return nil, "", err
	}
	if role == "" {
		return nil, "", domain.ErrForbidden
	}
	return receipt.Image, receipt.MIME, nil
}

// Delete elimina un recibo; requiere permiso de gestión sobre su restaurante.
func (uc *ReceiptUseCase) Delete(userID, receiptID string) error {
	receipt, err := uc.receiptRepo.GetByID(receiptID)
	if err != nil {
		return err
	}
	if receipt == nil {
		return domain.ErrNotFound
	}
	if err := uc.requireManage(userID, receipt.RestaurantID); err != nil {
		return err
	}
	return uc.receiptRepo.Delete(receiptID)
}

func (uc *ReceiptUseCase) requireManage(userID, restaurantID string) error {
	role, err := uc.accessRepo.GetRole(userID, restaurantID)
	if err != nil {
		return err
	}
	if !entity.CanManageInventory(role) {
		return domain.ErrForbidden
	}
	return nil
}
