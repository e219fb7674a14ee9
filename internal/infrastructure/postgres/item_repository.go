package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	db querier
}

// NewItemRepository construye el adaptador de persistencia para líneas de
// inventario.
func NewItemRepository(db querier) *ItemRepo {
	return &ItemRepo{db: db}
}

const itemColumns = `id, restaurant_id, name, category, quantity, unit, min_stock, cost_per_unit, created_at, updated_at`

// Create persiste una nueva línea.
func (r *ItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, restaurant_id, name, category, quantity, unit, min_stock, cost_per_unit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(context.Background(), query,
		item.ID, item.RestaurantID, item.Name, item.Category, item.Quantity,
		item.Unit, item.MinStock, item.CostPerUnit, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene una línea por ID; (nil, nil) si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	var it entity.InventoryItem
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.RestaurantID, &it.Name, &it.Category, &it.Quantity,
		&it.Unit, &it.MinStock, &it.CostPerUnit, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item by id: %w", err)
	}
	return &it, nil
}

// Update actualiza una línea completa.
func (r *ItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, category = $3, quantity = $4, unit = $5, min_stock = $6, cost_per_unit = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Quantity, item.Unit,
		item.MinStock, item.CostPerUnit, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

// Delete elimina una línea por ID.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}

// ListByRestaurant lista el inventario de un restaurante en orden de
// creación (orden de inserción del store; el ordenamiento de negocio lo
// aplican las consultas de dominio).
func (r *ItemRepo) ListByRestaurant(restaurantID string) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE restaurant_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(context.Background(), query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.ID, &it.RestaurantID, &it.Name, &it.Category, &it.Quantity,
			&it.Unit, &it.MinStock, &it.CostPerUnit, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// DeleteByRestaurant elimina todas las líneas de un restaurante (cascada).
func (r *ItemRepo) DeleteByRestaurant(restaurantID string) error {
	_, err := r.db.Exec(context.Background(),
		`DELETE FROM inventory_items WHERE restaurant_id = $1`, restaurantID,
	)
	if err != nil {
		return fmt.Errorf("delete inventory items by restaurant: %w", err)
	}
	return nil
}
