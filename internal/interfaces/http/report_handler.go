package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/usecase"
)

// ReportHandler genera el PDF de inventario de un restaurante.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Inventory godoc
// @Summary      Descargar reporte PDF del inventario
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del restaurante"
// @Success      200
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/restaurants/{id}/report [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	pdf, err := h.uc.GenerateInventoryReport(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(pdf)
}
