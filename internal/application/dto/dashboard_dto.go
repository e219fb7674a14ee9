package dto

import "github.com/shopspring/decimal"

// DashboardSummaryResponse resumen de inventario de un restaurante: totales
// y líneas en stock bajo.
type DashboardSummaryResponse struct {
	RestaurantID  string          `json:"restaurant_id"`
	ItemCount     int             `json:"item_count"`
	TotalValue    decimal.Decimal `json:"total_value"`
	LowStockCount int             `json:"low_stock_count"`
	LowStockItems []ItemResponse  `json:"low_stock_items"`
}
