// Package cache implementa el almacenamiento transitorio sobre Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/stockflow-api/internal/application/usecase"
)

var _ usecase.PendingInviteStore = (*PendingInviteStore)(nil)

const pendingKeyPrefix = "stockflow:pending_invite:"

// PendingInviteStore guarda en Redis el marcador de una invitación canjeada
// pero aún no aplicada. El marcador vence por TTL; GETDEL garantiza consumo
// exactamente-una-vez.
type PendingInviteStore struct {
	client *redis.Client
}

// NewPendingInviteStore construye el store con el cliente Redis.
func NewPendingInviteStore(client *redis.Client) *PendingInviteStore {
	return &PendingInviteStore{client: client}
}

// Put registra el marcador pendiente para el código, con vencimiento.
func (s *PendingInviteStore) Put(ctx context.Context, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, pendingKeyPrefix+code, "1", ttl).Err(); err != nil {
		return fmt.Errorf("set pending invite: %w", err)
	}
	return nil
}

// Consume retira el marcador y devuelve si existía. Dos consumidores del
// mismo código nunca obtienen true los dos: GETDEL es atómico en Redis.
func (s *PendingInviteStore) Consume(ctx context.Context, code string) (bool, error) {
	err := s.client.GetDel(ctx, pendingKeyPrefix+code).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("consume pending invite: %w", err)
	}
	return true, nil
}
