package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.AccessRepository = (*AccessRepo)(nil)

// AccessRepo implementación del puerto AccessRepository sobre PostgreSQL.
// La tabla access_grants tiene PK compuesta (user_id, restaurant_id), lo que
// garantiza a lo sumo un grant por par.
type AccessRepo struct {
	db querier
}

// NewAccessRepository construye el adaptador de persistencia para grants.
func NewAccessRepository(db querier) *AccessRepo {
	return &AccessRepo{db: db}
}

// Upsert crea el grant o reemplaza el rol si el par ya existe.
func (r *AccessRepo) Upsert(grant *entity.AccessGrant) error {
	query := `
		INSERT INTO access_grants (user_id, restaurant_id, role, granted_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, restaurant_id)
		DO UPDATE SET role = EXCLUDED.role, granted_at = EXCLUDED.granted_at`
	_, err := r.db.Exec(context.Background(), query,
		grant.UserID, grant.RestaurantID, grant.Role, grant.GrantedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert access grant: %w", err)
	}
	return nil
}

// GetRole devuelve el rol del usuario sobre el restaurante, o "" si no tiene
// acceso.
func (r *AccessRepo) GetRole(userID, restaurantID string) (string, error) {
	query := `SELECT role FROM access_grants WHERE user_id = $1 AND restaurant_id = $2`
	var role string
	err := r.db.QueryRow(context.Background(), query, userID, restaurantID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get role: %w", err)
	}
	return role, nil
}

// ListByRestaurant lista los grants de un restaurante.
func (r *AccessRepo) ListByRestaurant(restaurantID string) ([]*entity.AccessGrant, error) {
	query := `
		SELECT user_id, restaurant_id, role, granted_at
		FROM access_grants WHERE restaurant_id = $1 ORDER BY granted_at`
	rows, err := r.db.Query(context.Background(), query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list access grants: %w", err)
	}
	defer rows.Close()
	var list []*entity.AccessGrant
	for rows.Next() {
		var g entity.AccessGrant
		if err := rows.Scan(&g.UserID, &g.RestaurantID, &g.Role, &g.GrantedAt); err != nil {
			return nil, fmt.Errorf("scan access grant: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Delete elimina el grant de un par (user, restaurant).
func (r *AccessRepo) Delete(userID, restaurantID string) error {
	_, err := r.db.Exec(context.Background(),
		`DELETE FROM access_grants WHERE user_id = $1 AND restaurant_id = $2`,
		userID, restaurantID,
	)
	if err != nil {
		return fmt.Errorf("delete access grant: %w", err)
	}
	return nil
}

// DeleteByRestaurant elimina todos los grants de un restaurante (cascada).
func (r *AccessRepo) DeleteByRestaurant(restaurantID string) error {
	_, err := r.db.Exec(context.Background(),
		`DELETE FROM access_grants WHERE restaurant_id = $1`, restaurantID,
	)
	if err != nil {
		return fmt.Errorf("delete access grants by restaurant: %w", err)
	}
	return nil
}
