package auth_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockflow-api/internal/application/auth"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/stockflow-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users []*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	for i, existing := range r.users {
		if existing.ID == u.ID {
			cp := *u
			r.users[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *memUserRepo) GetByIDs(ids []string) ([]*entity.User, error) {
	var out []*entity.User
	for _, id := range ids {
		if u, _ := r.GetByID(id); u != nil {
			out = append(out, u)
		}
	}
	return out, nil
}

// spyApplier registra las aplicaciones de invitación solicitadas.
type spyApplier struct {
	calls []string // "userID:code"
	err   error
}

func (s *spyApplier) ApplyPending(_ context.Context, userID, code string) error {
	s.calls = append(s.calls, userID+":"+code)
	return s.err
}

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "stockflow-test"
)

func newAuthUC(repo *memUserRepo, applier *spyApplier) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, applier, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioConTokenValido(t *testing.T) {
	repo := &memUserRepo{}
	uc := newAuthUC(repo, &spyApplier{})

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "super-secreta",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", out.User.Email)
	assert.Equal(t, entity.RoleOwner, out.User.Role, "el rol base de toda cuenta es owner")

	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err, "el token emitido debe ser verificable")
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleOwner, role)

	// El password nunca se guarda en claro.
	stored, _ := repo.GetByEmail("alice@example.com")
	require.NotNil(t, stored)
	assert.NotEqual(t, "super-secreta", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("super-secreta")))
}

func TestRegister_NombreVacioUsaElEmail(t *testing.T) {
	uc := newAuthUC(&memUserRepo{}, &spyApplier{})

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "super-secreta",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", out.User.Name)
}

func TestRegister_EmailDuplicadoRechazado(t *testing.T) {
	uc := newAuthUC(&memUserRepo{}, &spyApplier{})

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "alice@example.com", Password: "super-secreta"})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Email: "alice@example.com", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_ConInviteCodeAplicaLaInvitacion(t *testing.T) {
	spy := &spyApplier{}
	uc := newAuthUC(&memUserRepo{}, spy)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:      "bob@example.com",
		Password:   "super-secreta",
		InviteCode: "CODIGO1234567890",
	})
	require.NoError(t, err)

	require.Len(t, spy.calls, 1)
	assert.Equal(t, out.User.ID+":CODIGO1234567890", spy.calls[0])
}

// El fallo al aplicar la invitación no debe impedir el registro: el usuario
// queda creado y autenticado, simplemente sin el acceso extra.
func TestRegister_FalloDeInvitacionNoBloquea(t *testing.T) {
	spy := &spyApplier{err: domain.ErrInviteInvalid}
	uc := newAuthUC(&memUserRepo{}, spy)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:      "bob@example.com",
		Password:   "super-secreta",
		InviteCode: "VENCIDO123456789",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

// Un fallo de infraestructura al aplicar la invitación no bloquea el registro,
// pero sí deja rastro en el log: de otro modo el acceso perdido sería
// indetectable.
func TestRegister_FalloDeInvitacionQuedaEnElLog(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	spy := &spyApplier{err: errors.New("redis: connection refused")}
	uc := newAuthUC(&memUserRepo{}, spy)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:      "bob@example.com",
		Password:   "super-secreta",
		InviteCode: "CODIGO1234567890",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	assert.Contains(t, buf.String(), "no se pudo aplicar la invitación pendiente")
	assert.Contains(t, buf.String(), "redis: connection refused")
	assert.Contains(t, buf.String(), out.User.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

// Email desconocido y password incorrecto devuelven el mismo error: el login
// no revela qué cuentas existen.
func TestLogin_CredencialesInvalidasIndistinguibles(t *testing.T) {
	uc := newAuthUC(&memUserRepo{}, &spyApplier{})
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "alice@example.com", Password: "super-secreta"})
	require.NoError(t, err)

	_, errUnknown := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "lo-que-sea"})
	_, errWrongPass := uc.Login(context.Background(), dto.LoginRequest{Email: "alice@example.com", Password: "incorrecta"})

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
}

func TestLogin_Correcto(t *testing.T) {
	uc := newAuthUC(&memUserRepo{}, &spyApplier{})
	reg, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "alice@example.com", Password: "super-secreta"})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "alice@example.com", Password: "super-secreta"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, out.User.ID)
	assert.NotEmpty(t, out.Token)
}

func TestLogin_ConInviteCodeAplicaLaInvitacion(t *testing.T) {
	spy := &spyApplier{}
	uc := newAuthUC(&memUserRepo{}, spy)
	reg, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "bob@example.com", Password: "super-secreta"})
	require.NoError(t, err)
	spy.calls = nil

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email:      "bob@example.com",
		Password:   "super-secreta",
		InviteCode: "CODIGO1234567890",
	})
	require.NoError(t, err)
	require.Len(t, spy.calls, 1)
	assert.Equal(t, reg.User.ID+":CODIGO1234567890", spy.calls[0])
}

// ──────────────────────────────────────────────────────────────────────────────
// Perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestProfile_ActualizarNombre(t *testing.T) {
	uc := newAuthUC(&memUserRepo{}, &spyApplier{})
	reg, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "super-secreta"})
	require.NoError(t, err)

	out, err := uc.UpdateProfile(reg.User.ID, dto.UpdateProfileRequest{Name: "Alice R."})
	require.NoError(t, err)
	assert.Equal(t, "Alice R.", out.Name)
	assert.Equal(t, "alice@example.com", out.Email, "el email no cambia")
}

func TestProfile_NombreVacioRechazado(t *testing.T) {
	uc := newAuthUC(&memUserRepo{}, &spyApplier{})
	reg, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "super-secreta"})
	require.NoError(t, err)

	_, err = uc.UpdateProfile(reg.User.ID, dto.UpdateProfileRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProfile_UsuarioInexistenteEsNotFound(t *testing.T) {
	uc := newAuthUC(&memUserRepo{}, &spyApplier{})
	_, err := uc.GetProfile("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
