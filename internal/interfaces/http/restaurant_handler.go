package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
)

// RestaurantHandler maneja las peticiones HTTP para Restaurant (protegido).
type RestaurantHandler struct {
	uc *usecase.RestaurantUseCase
}

// NewRestaurantHandler construye el handler.
func NewRestaurantHandler(uc *usecase.RestaurantUseCase) *RestaurantHandler {
	return &RestaurantHandler{uc: uc}
}

// Create godoc
// @Summary      Crear restaurante (el creador queda como owner)
// @Tags         restaurants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRestaurantRequest  true  "name, address"
// @Success      201   {object}  dto.RestaurantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/restaurants [post]
func (h *RestaurantHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRestaurantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar restaurantes accesibles
// @Tags         restaurants
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RestaurantListResponse
// @Router       /api/restaurants [get]
func (h *RestaurantHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAccessible(GetUserID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener restaurante por ID
// @Tags         restaurants
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del restaurante"
// @Success      200  {object}  dto.RestaurantResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/restaurants/{id} [get]
func (h *RestaurantHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar restaurante (solo owner)
// @Tags         restaurants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del restaurante"
// @Param        body  body  dto.UpdateRestaurantRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.RestaurantResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/restaurants/{id} [put]
func (h *RestaurantHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRestaurantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar restaurante con su inventario, recibos y accesos (solo owner)
// @Tags         restaurants
// @Security     Bearer
// @Param        id  path  string  true  "ID del restaurante"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/restaurants/{id} [delete]
func (h *RestaurantHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
