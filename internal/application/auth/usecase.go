package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// inviteApplier es el contrato mínimo para aplicar una invitación pendiente
// tras la autenticación. Lo implementa *usecase.InviteUseCase; la interfaz
// evita acoplar auth al paquete de casos de uso.
type inviteApplier interface {
	ApplyPending(ctx context.Context, userID, code string) error
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil.
// Si la petición trae un código de invitación canjeado, se aplica justo
// después de autenticar: así un usuario recién registrado entra directo con
// el acceso que la invitación le otorga.
type AuthUseCase struct {
	userRepo repository.UserRepository
	invites  inviteApplier
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, invites inviteApplier, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, invites: invites, jwtCfg: jwtCfg}
}

// Register crea un usuario con rol base owner (cualquier registrado puede
// crear restaurantes), hashea el password con bcrypt y devuelve el token de
// sesión. Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleOwner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	uc.applyInvite(ctx, user.ID, in.InviteCode)
	return uc.sessionFor(user)
}

// Login verifica email/password y devuelve el token de sesión. Email
// desconocido y password incorrecto responden el mismo error para no
// revelar qué cuentas existen.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	uc.applyInvite(ctx, user.ID, in.InviteCode)
	return uc.sessionFor(user)
}

// GetProfile devuelve el usuario autenticado.
func (uc *AuthUseCase) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// UpdateProfile actualiza los campos mutables del perfil (sólo el nombre;
// el email es inmutable después del registro).
func (uc *AuthUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	user.Name = in.Name
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// applyInvite aplica la invitación pendiente si la hay. El fallo no
// interrumpe la autenticación: ApplyPending es idempotente y un código
// vencido o ya usado simplemente no otorga nada. Un error de
// infraestructura sí se registra para que el acceso perdido sea visible.
func (uc *AuthUseCase) applyInvite(ctx context.Context, userID, code string) {
	if code == "" || uc.invites == nil {
		return
	}
	if err := uc.invites.ApplyPending(ctx, userID, code); err != nil {
		log.Error().Err(err).
			Str("user_id", userID).
			Msg("no se pudo aplicar la invitación pendiente")
	}
}

func (uc *AuthUseCase) sessionFor(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
