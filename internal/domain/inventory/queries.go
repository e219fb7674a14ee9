// Package inventory contiene las consultas puras sobre líneas de inventario:
// stock bajo, valorización, filtrado y ordenamiento. Ninguna función muta
// sus argumentos; Sort y Filter devuelven slices nuevos.
package inventory

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// Claves de ordenamiento aceptadas por Sort.
const (
	SortByName     = "name"
	SortByQuantity = "quantity"
	SortByCategory = "category"
	SortByValue    = "value"
)

// Órdenes de ordenamiento.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// CategoryAll desactiva el filtro por categoría.
const CategoryAll = "all"

// IsLowStock indica si la cantidad está en o por debajo del mínimo configurado.
func IsLowStock(item *entity.InventoryItem) bool {
	return item.Quantity.LessThanOrEqual(item.MinStock)
}

// ItemValue devuelve cantidad × costo unitario.
func ItemValue(item *entity.InventoryItem) decimal.Decimal {
	return item.Quantity.Mul(item.CostPerUnit)
}

// TotalValue suma el valor de todas las líneas.
func TotalValue(items []*entity.InventoryItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(ItemValue(item))
	}
	return total
}

// Filter devuelve las líneas cuyo nombre contiene search (case-insensitive)
// Y cuya categoría coincide exactamente con category. Search vacío y
// category vacío o "all" desactivan el filtro correspondiente.
func Filter(items []*entity.InventoryItem, search, category string) []*entity.InventoryItem {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]*entity.InventoryItem, 0, len(items))
	for _, item := range items {
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		if category != "" && category != CategoryAll && item.Category != category {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Sort devuelve una copia ordenada de forma estable por la clave indicada.
// Una clave desconocida conserva el orden de entrada; order distinto de
// "desc" se trata como ascendente.
func Sort(items []*entity.InventoryItem, sortBy, order string) []*entity.InventoryItem {
	out := make([]*entity.InventoryItem, len(items))
	copy(out, items)

	cmp := func(a, b *entity.InventoryItem) int {
		switch sortBy {
		case SortByName:
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		case SortByQuantity:
			return a.Quantity.Cmp(b.Quantity)
		case SortByCategory:
			return strings.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category))
		case SortByValue:
			return ItemValue(a).Cmp(ItemValue(b))
		default:
			return 0
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if order == OrderDesc {
			return c > 0
		}
		return c < 0
	})
	return out
}
