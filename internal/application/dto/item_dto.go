package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear una línea de inventario. Los campos
// numéricos se parsean estrictos: un valor no numérico rechaza el body
// completo en el handler, nunca se coacciona a cero.
type CreateItemRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Category    string          `json:"category" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit" validate:"required"`
	MinStock    decimal.Decimal `json:"min_stock"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
}

// UpdateItemRequest actualización parcial: los campos numéricos ausentes
// conservan su valor anterior (no se resetean a cero).
type UpdateItemRequest struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Quantity    *decimal.Decimal `json:"quantity"`
	Unit        *string          `json:"unit"`
	MinStock    *decimal.Decimal `json:"min_stock"`
	CostPerUnit *decimal.Decimal `json:"cost_per_unit"`
}

// AdjustQuantityRequest delta (positivo o negativo) sobre la cantidad actual.
type AdjustQuantityRequest struct {
	Delta decimal.Decimal `json:"delta"`
}

// SetQuantityRequest fija la cantidad en un valor absoluto.
type SetQuantityRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// ItemResponse salida de una línea de inventario con sus derivados.
type ItemResponse struct {
	ID           string          `json:"id"`
	RestaurantID string          `json:"restaurant_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	MinStock     decimal.Decimal `json:"min_stock"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
	Value        decimal.Decimal `json:"value"`
	LowStock     bool            `json:"low_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ItemListResponse listado filtrado/ordenado con la valorización total.
type ItemListResponse struct {
	Items      []ItemResponse  `json:"items"`
	Total      int             `json:"total"`
	TotalValue decimal.Decimal `json:"total_value"`
}
