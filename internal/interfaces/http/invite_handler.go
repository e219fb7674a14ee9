package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
)

// InviteHandler maneja las invitaciones. El canje es público; la emisión y
// el listado requieren autenticación.
type InviteHandler struct {
	uc *usecase.InviteUseCase
}

// NewInviteHandler construye el handler.
func NewInviteHandler(uc *usecase.InviteUseCase) *InviteHandler {
	return &InviteHandler{uc: uc}
}

// Create godoc
// @Summary      Emitir invitación (owner de cada restaurante objetivo)
// @Tags         invites
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInviteRequest  true  "role y restaurant_ids"
// @Success      201   {object}  dto.InviteResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/invites [post]
func (h *InviteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInviteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Redeem godoc
// @Summary      Canjear código de invitación (público)
// @Description  Valida el código y deja un marcador pendiente; la invitación
// @Description  se aplica en el siguiente register/login que lo incluya.
// @Tags         invites
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RedeemInviteRequest  true  "code"
// @Success      200   {object}  dto.RedeemInviteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invites/redeem [post]
func (h *InviteHandler) Redeem(c *fiber.Ctx) error {
	var in dto.RedeemInviteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code es requerido"})
	}
	out, err := h.uc.Redeem(c.UserContext(), in.Code)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Listar invitaciones emitidas por el usuario autenticado
// @Tags         invites
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InviteResponse
// @Router       /api/invites [get]
func (h *InviteHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(GetUserID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
