package entity

import "time"

// Receipt representa un recibo/factura de compra subido para un restaurante.
// Image contiene la imagen ya procesada (reescalada y recomprimida); MIME es
// el content-type con el que se sirve de vuelta.
type Receipt struct {
	ID           string
	RestaurantID string
	Image        []byte
	MIME         string
	Note         string
	UploadedBy   string
	UploadedAt   time.Time
}
