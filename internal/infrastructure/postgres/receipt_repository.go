package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación del puerto ReceiptRepository sobre PostgreSQL.
// La imagen se guarda como BYTEA; los listados no la traen para no arrastrar
// megabytes por cada fila.
type ReceiptRepo struct {
	db querier
}

// NewReceiptRepository construye el adaptador de persistencia para recibos.
func NewReceiptRepository(db querier) *ReceiptRepo {
	return &ReceiptRepo{db: db}
}

// Create persiste un nuevo recibo.
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	query := `
		INSERT INTO receipts (id, restaurant_id, image, mime, note, uploaded_by, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		receipt.ID, receipt.RestaurantID, receipt.Image, receipt.MIME,
		receipt.Note, receipt.UploadedBy, receipt.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// GetByID obtiene un recibo por ID, imagen incluida; (nil, nil) si no existe.
func (r *ReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	query := `
		SELECT id, restaurant_id, image, mime, note, uploaded_by, uploaded_at
		FROM receipts WHERE id = $1`
	var rec entity.Receipt
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.RestaurantID, &rec.Image, &rec.MIME, &rec.Note,
		&rec.UploadedBy, &rec.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt by id: %w", err)
	}
	return &rec, nil
}

// Delete elimina un recibo por ID.
func (r *ReceiptRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM receipts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete receipt: %w", err)
	}
	return nil
}

// ListByRestaurant lista los metadatos de los recibos del restaurante, el
// más reciente primero.
func (r *ReceiptRepo) ListByRestaurant(restaurantID string) ([]*entity.Receipt, error) {
	query := `
		SELECT id, restaurant_id, mime, note, uploaded_by, uploaded_at
		FROM receipts WHERE restaurant_id = $1 ORDER BY uploaded_at DESC`
	rows, err := r.db.Query(context.Background(), query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receipt
	for rows.Next() {
		var rec entity.Receipt
		if err := rows.Scan(&rec.ID, &rec.RestaurantID, &rec.MIME, &rec.Note, &rec.UploadedBy, &rec.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// DeleteByRestaurant elimina todos los recibos de un restaurante (cascada).
func (r *ReceiptRepo) DeleteByRestaurant(restaurantID string) error {
	_, err := r.db.Exec(context.Background(),
		`DELETE FROM receipts WHERE restaurant_id = $1`, restaurantID,
	)
	if err != nil {
		return fmt.Errorf("delete receipts by restaurant: %w", err)
	}
	return nil
}
