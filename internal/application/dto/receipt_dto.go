package dto

import "time"

// ReceiptResponse metadatos de un recibo (la imagen se sirve por separado).
type ReceiptResponse struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Note         string    `json:"note"`
	MIME         string    `json:"mime"`
	UploadedBy   string    `json:"uploaded_by"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// ReceiptListResponse recibos de un restaurante, el más reciente primero.
type ReceiptListResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
	Total    int               `json:"total"`
}
