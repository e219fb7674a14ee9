package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// Vigencia del marcador de invitación pendiente: el equivalente del lado
// servidor al "session-scoped" del cliente. Pasada la hora, el canje debe
// repetirse (el código sigue siendo válido mientras no se use).
const pendingInviteTTL = time.Hour

// inviteCodeBytes produce códigos base32 de 16 caracteres en mayúsculas.
const inviteCodeBytes = 10

// InviteUseCase ciclo de vida de invitaciones como saga de dos fases:
//
//	Create  → el owner emite un código de un solo uso para un conjunto de
//	          restaurantes.
//	Redeem  → cualquiera canjea el código (normalmente antes de tener
//	          cuenta); se guarda un marcador transitorio con TTL.
//	Apply   → en la siguiente autenticación, el marcador se consume
//	          exactamente una vez y los grants se escriben en una
//	          transacción junto con el paso unused→used.
type InviteUseCase struct {
	inviteRepo repository.InviteRepository
	accessRepo repository.AccessRepository
	tx         TxRunner
	pending    PendingInviteStore
	baseURL    string
}

// NewInviteUseCase construye el caso de uso. baseURL es el origen público
// con el que se arman los enlaces compartibles.
func NewInviteUseCase(inviteRepo repository.InviteRepository, accessRepo repository.AccessRepository, tx TxRunner, pending PendingInviteStore, baseURL string) *InviteUseCase {
	return &InviteUseCase{inviteRepo: inviteRepo, accessRepo: accessRepo, tx: tx, pending: pending, baseURL: baseURL}
}

// Create emite una invitación. El emisor debe tener grant owner sobre CADA
// restaurante del conjunto; el rol owner no se puede otorgar por invitación.
func (uc *InviteUseCase) Create(userID string, in dto.CreateInviteRequest) (*dto.InviteResponse, error) {
	if in.Role != entity.RoleManager && in.Role != entity.RoleEmployee {
		return nil, domain.ErrInvalidInput
	}
	if len(in.RestaurantIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, restaurantID := range in.RestaurantIDs {
		role, err := uc.accessRepo.GetRole(userID, restaurantID)
		if err != nil {
			return nil, err
		}
		if !entity.CanAdministerRestaurant(role) {
			return nil, domain.ErrForbidden
		}
	}
	code, err := newInviteCode()
	if err != nil {
		return nil, err
	}
	invite := &entity.Invite{
		ID:            uuid.New().String(),
		Code:          code,
		Role:          in.Role,
		RestaurantIDs: in.RestaurantIDs,
		CreatedBy:     userID,
		CreatedAt:     time.Now(),
	}
	if err := uc.inviteRepo.Create(invite); err != nil {
		return nil, err
	}
	return toInviteResponse(invite, uc.shareLink(code)), nil
}

// Redeem canjea un código (endpoint público, fase 1). Deja el marcador
// pendiente en el store transitorio y devuelve una vista previa del acceso
// que se otorgará.
func (uc *InviteUseCase) Redeem(ctx context.Context, code string) (*dto.RedeemInviteResponse, error) {
	invite, err := uc.inviteRepo.GetUnusedByCode(code)
	if err != nil {
		return nil, err
	}
	if invite == nil {
		return nil, domain.ErrInviteInvalid
	}
	if err := uc.pending.Put(ctx, code, pendingInviteTTL); err != nil {
		return nil, err
	}
	return &dto.RedeemInviteResponse{
		Role:            invite.Role,
		RestaurantCount: len(invite.RestaurantIDs),
	}, nil
}

// ApplyPending aplica una invitación canjeada al usuario autenticado
// (fase 2). Idempotente: sin marcador pendiente es un no-op, y el marcador
// se consume antes de tocar el estado, así que una segunda llamada con el
// mismo código no vuelve a aplicar nada.
func (uc *InviteUseCase) ApplyPending(ctx context.Context, userID, code string) error {
	if code == "" {
		return nil
	}
	ok, err := uc.pending.Consume(ctx, code)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	invite, err := uc.inviteRepo.GetUnusedByCode(code)
	if err != nil {
		return err
	}
	if invite == nil {
		return domain.ErrInviteInvalid
	}
	now := time.Now()
	err = uc.tx.Run(ctx, func(repos TxRepos) error {
		for _, restaurantID := range invite.RestaurantIDs {
			grant := &entity.AccessGrant{
				UserID:       userID,
				RestaurantID: restaurantID,
				Role:         invite.Role,
				GrantedAt:    now,
			}
			if err := repos.Access.Upsert(grant); err != nil {
				return err
			}
		}
		return repos.Invites.MarkUsed(invite.ID, userID)
	})
	if err != nil {
		// La transacción no tocó nada; reponer el marcador para que el
		// canje siga siendo aplicable sin volver a pasar por Redeem.
		_ = uc.pending.Put(ctx, code, pendingInviteTTL)
		return err
	}
	return nil
}

// ListMine devuelve las invitaciones emitidas por el usuario.
func (uc *InviteUseCase) ListMine(userID string) ([]dto.InviteResponse, error) {
	list, err := uc.inviteRepo.ListByCreator(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InviteResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, *toInviteResponse(inv, uc.shareLink(inv.Code)))
	}
	return out, nil
}

func (uc *InviteUseCase) shareLink(code string) string {
	return fmt.Sprintf("%s?invite=%s", uc.baseURL, code)
}

// newInviteCode genera un código aleatorio no adivinable (base32 mayúsculas,
// 16 caracteres, ~80 bits de entropía).
func newInviteCode() (string, error) {
	buf := make([]byte, inviteCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generar código de invitación: %w", err)
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf), nil
}
