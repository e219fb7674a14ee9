package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.InviteRepository = (*InviteRepo)(nil)

// InviteRepo implementación del puerto InviteRepository sobre PostgreSQL.
// El conjunto de restaurantes objetivo se guarda como TEXT[].
type InviteRepo struct {
	db querier
}

// NewInviteRepository construye el adaptador de persistencia para invitaciones.
func NewInviteRepository(db querier) *InviteRepo {
	return &InviteRepo{db: db}
}

const inviteColumns = `id, code, role, restaurant_ids, created_by, created_at, used, used_by, used_at`

// Create persiste una nueva invitación.
func (r *InviteRepo) Create(invite *entity.Invite) error {
	query := `
		INSERT INTO invites (id, code, role, restaurant_ids, created_by, created_at, used)
		VALUES ($1, $2, $3, $4, $5, $6, false)`
	_, err := r.db.Exec(context.Background(), query,
		invite.ID, invite.Code, invite.Role, invite.RestaurantIDs,
		invite.CreatedBy, invite.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invite: %w", err)
	}
	return nil
}

// GetUnusedByCode devuelve la invitación sin usar con ese código;
// (nil, nil) si no existe o ya fue consumida.
func (r *InviteRepo) GetUnusedByCode(code string) (*entity.Invite, error) {
	query := `SELECT ` + inviteColumns + ` FROM invites WHERE code = $1 AND used = false`
	return r.scanOne(r.db.QueryRow(context.Background(), query, code), "get invite by code")
}

// MarkUsed marca la invitación como usada. El predicado "used = false" en el
// UPDATE hace que la transición unused→used ocurra a lo sumo una vez incluso
// ante aplicaciones concurrentes: la segunda no afecta filas.
func (r *InviteRepo) MarkUsed(id, usedBy string) error {
	query := `
		UPDATE invites SET used = true, used_by = $2, used_at = $3
		WHERE id = $1 AND used = false`
	tag, err := r.db.Exec(context.Background(), query, id, usedBy, time.Now())
	if err != nil {
		return fmt.Errorf("mark invite used: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInviteInvalid
	}
	return nil
}

// ListByCreator lista las invitaciones emitidas por un usuario, la más
// reciente primero.
func (r *InviteRepo) ListByCreator(createdBy string) ([]*entity.Invite, error) {
	query := `SELECT ` + inviteColumns + ` FROM invites WHERE created_by = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(context.Background(), query, createdBy)
	if err != nil {
		return nil, fmt.Errorf("list invites: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invite
	for rows.Next() {
		inv, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// StripRestaurant retira el restaurante del conjunto objetivo de todas las
// invitaciones pendientes; las que queden sin restaurantes se eliminan (una
// invitación vacía no otorga nada).
func (r *InviteRepo) StripRestaurant(restaurantID string) error {
	ctx := context.Background()
	_, err := r.db.Exec(ctx,
		`UPDATE invites SET restaurant_ids = array_remove(restaurant_ids, $1)
		 WHERE used = false AND $1 = ANY(restaurant_ids)`,
		restaurantID,
	)
	if err != nil {
		return fmt.Errorf("strip restaurant from invites: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`DELETE FROM invites WHERE used = false AND cardinality(restaurant_ids) = 0`)
	if err != nil {
		return fmt.Errorf("delete empty invites: %w", err)
	}
	return nil
}

func (r *InviteRepo) scanOne(row pgx.Row, op string) (*entity.Invite, error) {
	inv, err := scanInvite(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return inv, nil
}

func (r *InviteRepo) scanRow(rows pgx.Rows) (*entity.Invite, error) {
	inv, err := scanInvite(rows)
	if err != nil {
		return nil, fmt.Errorf("scan invite: %w", err)
	}
	return inv, nil
}

func scanInvite(row pgx.Row) (*entity.Invite, error) {
	var inv entity.Invite
	var usedBy *string
	err := row.Scan(
		&inv.ID, &inv.Code, &inv.Role, &inv.RestaurantIDs, &inv.CreatedBy,
		&inv.CreatedAt, &inv.Used, &usedBy, &inv.UsedAt,
	)
	if err != nil {
		return nil, err
	}
	if usedBy != nil {
		inv.UsedBy = *usedBy
	}
	return &inv, nil
}
