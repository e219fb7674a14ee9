package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

func restaurantWorld(t *testing.T) (*world, *usecase.RestaurantUseCase) {
	t.Helper()
	w := newWorld()
	return w, usecase.NewRestaurantUseCase(w.restaurants, w.access, w.tx)
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

// Crear un restaurante siempre deja al creador con grant de owner: no existe
// estado intermedio con restaurante sin dueño.
func TestRestaurant_CrearOtorgaGrantOwner(t *testing.T) {
	w, uc := restaurantWorld(t)

	out, err := uc.Create(context.Background(), aliceID, dto.CreateRestaurantRequest{
		Name:    "Cafe A",
		Address: "Calle 12 #34-56",
	})
	require.NoError(t, err)

	assert.Equal(t, aliceID, out.OwnerID)
	assert.Equal(t, entity.RoleOwner, out.MyRole)

	role, _ := w.access.GetRole(aliceID, out.ID)
	assert.Equal(t, entity.RoleOwner, role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura y actualización
// ──────────────────────────────────────────────────────────────────────────────

func TestRestaurant_GetSinGrantEsForbidden(t *testing.T) {
	w, uc := restaurantWorld(t)
	w.addRestaurant(cafeAID, "Cafe A", aliceID)

	_, err := uc.GetByID(bobID, cafeAID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRestaurant_GetInexistenteEsNotFound(t *testing.T) {
	_, uc := restaurantWorld(t)
	_, err := uc.GetByID(aliceID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRestaurant_GetDevuelveMiRol(t *testing.T) {
	w, uc := restaurantWorld(t)
	w.addRestaurant(cafeAID, "Cafe A", aliceID)
	w.grant(bobID, cafeAID, entity.RoleEmployee)

	out, err := uc.GetByID(bobID, cafeAID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, out.MyRole)
}

func TestRestaurant_ActualizarSoloOwner(t *testing.T) {
	w, uc := restaurantWorld(t)
	w.addRestaurant(cafeAID, "Cafe A", aliceID)
	w.grant(bobID, cafeAID, entity.RoleManager)

	name := "Cafe A Renovado"
	_, err := uc.Update(bobID, cafeAID, dto.UpdateRestaurantRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrForbidden, "manager no puede editar el restaurante")

	out, err := uc.Update(aliceID, cafeAID, dto.UpdateRestaurantRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Cafe A Renovado", out.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminación en cascada
// ──────────────────────────────────────────────────────────────────────────────

func TestRestaurant_DeleteSoloOwner(t *testing.T) {
	w, uc := restaurantWorld(t)
	w.addRestaurant(cafeAID, "Cafe A", aliceID)
	w.grant(bobID, cafeAID, entity.RoleManager)

	err := uc.Delete(context.Background(), bobID, cafeAID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Al eliminar un restaurante no queda ningún registro huérfano: líneas,
// recibos y grants desaparecen, y las invitaciones pendientes pierden el
// restaurante de su conjunto objetivo.
func TestRestaurant_DeleteCascadaCompleta(t *testing.T) {
	w, uc := restaurantWorld(t)
	w.addRestaurant(cafeAID, "Cafe A", aliceID)
	w.addRestaurant("rest-cafe-b", "Cafe B", aliceID)
	w.grant(bobID, cafeAID, entity.RoleEmployee)

	now := time.Now()
	require.NoError(t, w.items.Create(&entity.InventoryItem{ID: "item-1", RestaurantID: cafeAID, Name: "Sugar"}))
	require.NoError(t, w.receipts.Create(&entity.Receipt{ID: "rec-1", RestaurantID: cafeAID, UploadedAt: now}))
	require.NoError(t, w.invites.Create(&entity.Invite{
		ID: "inv-ambos", Code: "CODEAMBOS0000000", Role: entity.RoleEmployee,
		RestaurantIDs: []string{cafeAID, "rest-cafe-b"}, CreatedBy: aliceID, CreatedAt: now,
	}))
	require.NoError(t, w.invites.Create(&entity.Invite{
		ID: "inv-solo-a", Code: "CODESOLOA0000000", Role: entity.RoleEmployee,
		RestaurantIDs: []string{cafeAID}, CreatedBy: aliceID, CreatedAt: now,
	}))

	require.NoError(t, uc.Delete(context.Background(), aliceID, cafeAID))

	rest, _ := w.restaurants.GetByID(cafeAID)
	assert.Nil(t, rest, "el restaurante desaparece")

	items, _ := w.items.ListByRestaurant(cafeAID)
	assert.Empty(t, items, "sin líneas huérfanas")

	receipts, _ := w.receipts.ListByRestaurant(cafeAID)
	assert.Empty(t, receipts, "sin recibos huérfanos")

	role, _ := w.access.GetRole(bobID, cafeAID)
	assert.Empty(t, role, "sin grants huérfanos")

	// La invitación multi-restaurante sigue viva para Cafe B; la que sólo
	// apuntaba al eliminado desaparece.
	both, _ := w.invites.GetUnusedByCode("CODEAMBOS0000000")
	require.NotNil(t, both)
	assert.Equal(t, []string{"rest-cafe-b"}, both.RestaurantIDs)

	onlyA, _ := w.invites.GetUnusedByCode("CODESOLOA0000000")
	assert.Nil(t, onlyA)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado
// ──────────────────────────────────────────────────────────────────────────────

func TestRestaurant_ListAccessibleConRoles(t *testing.T) {
	w, uc := restaurantWorld(t)
	w.addRestaurant(cafeAID, "Cafe A", aliceID)
	w.addRestaurant("rest-cafe-b", "Cafe B", bobID)
	w.grant(aliceID, "rest-cafe-b", entity.RoleEmployee)

	out, err := uc.ListAccessible(aliceID)
	require.NoError(t, err)
	require.Equal(t, 2, out.Total)

	roles := map[string]string{}
	for _, r := range out.Restaurants {
		roles[r.Name] = r.MyRole
	}
	assert.Equal(t, entity.RoleOwner, roles["Cafe A"])
	assert.Equal(t, entity.RoleEmployee, roles["Cafe B"])
}

func TestRestaurant_ListVaciaParaUsuarioSinGrants(t *testing.T) {
	w, uc := restaurantWorld(t)
	w.addRestaurant(cafeAID, "Cafe A", aliceID)

	out, err := uc.ListAccessible("user-carol")
	require.NoError(t, err)
	assert.Zero(t, out.Total)
}
