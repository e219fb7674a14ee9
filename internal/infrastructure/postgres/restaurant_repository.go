package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.RestaurantRepository = (*RestaurantRepo)(nil)

// RestaurantRepo implementación del puerto RestaurantRepository sobre PostgreSQL.
type RestaurantRepo struct {
	db querier
}

// NewRestaurantRepository construye el adaptador de persistencia para restaurantes.
func NewRestaurantRepository(db querier) *RestaurantRepo {
	return &RestaurantRepo{db: db}
}

const restaurantColumns = `id, name, address, owner_id, created_at, updated_at`

// Create persiste un nuevo restaurante.
func (r *RestaurantRepo) Create(restaurant *entity.Restaurant) error {
	query := `
		INSERT INTO restaurants (id, name, address, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(context.Background(), query,
		restaurant.ID, restaurant.Name, restaurant.Address, restaurant.OwnerID,
		restaurant.CreatedAt, restaurant.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert restaurant: %w", err)
	}
	return nil
}

// GetByID obtiene un restaurante por ID; (nil, nil) si no existe.
func (r *RestaurantRepo) GetByID(id string) (*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`
	var rest entity.Restaurant
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&rest.ID, &rest.Name, &rest.Address, &rest.OwnerID, &rest.CreatedAt, &rest.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurant by id: %w", err)
	}
	return &rest, nil
}

// Update actualiza nombre y dirección.
func (r *RestaurantRepo) Update(restaurant *entity.Restaurant) error {
	query := `
		UPDATE restaurants SET name = $2, address = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		restaurant.ID, restaurant.Name, restaurant.Address, restaurant.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update restaurant: %w", err)
	}
	return nil
}

// Delete elimina un restaurante por ID.
func (r *RestaurantRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete restaurant: %w", err)
	}
	return nil
}

// ListByUser devuelve los restaurantes sobre los que el usuario tiene algún
// grant, en orden de creación (join contra access_grants).
func (r *RestaurantRepo) ListByUser(userID string) ([]*entity.Restaurant, error) {
	query := `
		SELECT r.id, r.name, r.address, r.owner_id, r.created_at, r.updated_at
		FROM restaurants r
		JOIN access_grants a ON a.restaurant_id = r.id
		WHERE a.user_id = $1
		ORDER BY r.created_at`
	rows, err := r.db.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list restaurants by user: %w", err)
	}
	defer rows.Close()
	var list []*entity.Restaurant
	for rows.Next() {
		var rest entity.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.OwnerID, &rest.CreatedAt, &rest.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		list = append(list, &rest)
	}
	return list, rows.Err()
}
