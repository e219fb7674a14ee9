package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/usecase"
)

// AccessHandler maneja los miembros de un restaurante (protegido).
type AccessHandler struct {
	uc *usecase.AccessUseCase
}

// NewAccessHandler construye el handler.
func NewAccessHandler(uc *usecase.AccessUseCase) *AccessHandler {
	return &AccessHandler{uc: uc}
}

// ListMembers godoc
// @Summary      Listar miembros y roles de un restaurante (solo owner)
// @Tags         access
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del restaurante"
// @Success      200  {object}  dto.MemberListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/restaurants/{id}/members [get]
func (h *AccessHandler) ListMembers(c *fiber.Ctx) error {
	out, err := h.uc.ListMembers(GetUserID(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// RemoveMember godoc
// @Summary      Revocar el acceso de un miembro (solo owner; el owner creador no se puede revocar)
// @Tags         access
// @Security     Bearer
// @Param        id      path  string  true  "ID del restaurante"
// @Param        userId  path  string  true  "ID del usuario"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/restaurants/{id}/members/{userId} [delete]
func (h *AccessHandler) RemoveMember(c *fiber.Ctx) error {
	if err := h.uc.Remove(GetUserID(c), c.Params("userId"), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
