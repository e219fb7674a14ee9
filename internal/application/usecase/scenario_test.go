package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// Escenario de punta a punta sobre los casos de uso: Alice crea su
// restaurante, carga inventario, consume más stock del disponible e invita a
// Bob como employee. Verifica las invariantes del flujo completo en conjunto.
func TestScenario_FlujoCompleto(t *testing.T) {
	ctx := context.Background()
	w := newWorld()

	restaurantUC := usecase.NewRestaurantUseCase(w.restaurants, w.access, w.tx)
	itemUC := usecase.NewItemUseCase(w.items, w.access)
	inviteUC := usecase.NewInviteUseCase(w.invites, w.access, w.tx, w.pending, testBaseURL)
	accessUC := usecase.NewAccessUseCase(w.access, w.users, w.restaurants)
	dashboardUC := usecase.NewDashboardUseCase(w.items, w.access)

	// Alice crea Cafe A y queda como owner.
	cafe, err := restaurantUC.Create(ctx, aliceID, dto.CreateRestaurantRequest{Name: "Cafe A"})
	require.NoError(t, err)
	require.Equal(t, entity.RoleOwner, cafe.MyRole)

	// Carga 10 lbs de azúcar con mínimo 5.
	sugar, err := itemUC.Add(aliceID, cafe.ID, dto.CreateItemRequest{
		Name:        "Sugar",
		Category:    "Dry Goods",
		Quantity:    decimal.RequireFromString("10"),
		Unit:        "lbs",
		MinStock:    decimal.RequireFromString("5"),
		CostPerUnit: decimal.RequireFromString("0.50"),
	})
	require.NoError(t, err)
	assert.False(t, sugar.LowStock)

	// Consume 20 lbs: la línea queda en 0, no en -10, y pasa a stock bajo.
	sugar, err = itemUC.AdjustQuantity(aliceID, sugar.ID, decimal.RequireFromString("-20"))
	require.NoError(t, err)
	assert.True(t, sugar.Quantity.IsZero())
	assert.True(t, sugar.LowStock)

	summary, err := dashboardUC.GetSummary(aliceID, cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.LowStockCount)

	// Alice invita a Bob como employee; Bob canjea y aplica al autenticarse.
	inv, err := inviteUC.Create(aliceID, dto.CreateInviteRequest{
		Role:          entity.RoleEmployee,
		RestaurantIDs: []string{cafe.ID},
	})
	require.NoError(t, err)

	preview, err := inviteUC.Redeem(ctx, inv.Code)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, preview.Role)

	require.NoError(t, inviteUC.ApplyPending(ctx, bobID, inv.Code))

	role, err := accessUC.RoleOf(bobID, cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, role)

	// Bob ve el inventario pero no puede mutarlo.
	list, err := itemUC.List(bobID, cafe.ID, "", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	_, err = itemUC.AdjustQuantity(bobID, sugar.ID, decimal.RequireFromString("1"))
	assert.Error(t, err)

	// El restaurante de Bob aparece en su listado de accesibles.
	accessible, err := restaurantUC.ListAccessible(bobID)
	require.NoError(t, err)
	require.Equal(t, 1, accessible.Total)
	assert.Equal(t, entity.RoleEmployee, accessible.Restaurants[0].MyRole)
}
