package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/usecase"
)

// DashboardHandler expone el resumen de inventario de un restaurante.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del restaurante: totales y stock bajo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del restaurante"
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/restaurants/{id}/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(GetUserID(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
