package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de inventario (referencia UI; el dominio no restringe a esta lista).
var Categories = []string{
	"Produce", "Proteins", "Dairy", "Dry Goods", "Oils & Vinegars",
	"Spices", "Beverages", "Frozen", "Paper Goods", "Cleaning", "Other",
}

// Unidades de medida habituales.
var Units = []string{
	"lbs", "oz", "kg", "g", "bottles", "cans", "boxes", "bags",
	"cases", "each", "gallons", "liters", "quarts", "pints",
}

// InventoryItem representa una línea de inventario de un restaurante.
// Quantity, MinStock y CostPerUnit nunca son negativos; los casos de uso
// rechazan o ajustan a cero cualquier mutación que los dejaría por debajo.
type InventoryItem struct {
	ID           string
	RestaurantID string
	Name         string
	Category     string
	Quantity     decimal.Decimal
	Unit         string
	MinStock     decimal.Decimal
	CostPerUnit  decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
