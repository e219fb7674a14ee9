package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
)

// ItemHandler maneja las líneas de inventario (protegido).
//
// Los campos numéricos de los bodies son decimales estrictos: un valor no
// numérico hace fallar el parseo del body completo con 400, nunca se
// convierte silenciosamente en cero.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create godoc
// @Summary      Crear línea de inventario (owner o manager)
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del restaurante"
// @Param        body  body  dto.CreateItemRequest  true  "datos de la línea"
// @Success      201   {object}  dto.ItemResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/restaurants/{id}/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Add(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar líneas con filtro y ordenamiento
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id        path   string  true   "ID del restaurante"
// @Param        search    query  string  false  "substring sobre el nombre, case-insensitive"
// @Param        category  query  string  false  "categoría exacta; all o vacío la desactiva"
// @Param        sort      query  string  false  "name|quantity|category|value"
// @Param        order     query  string  false  "asc|desc"
// @Success      200  {object}  dto.ItemListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/restaurants/{id}/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(
		GetUserID(c),
		c.Params("id"),
		c.Query("search"),
		c.Query("category"),
		c.Query("sort"),
		c.Query("order"),
	)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar línea; los campos ausentes conservan su valor
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la línea"
// @Param        body  body  dto.UpdateItemRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
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
// @Summary      Eliminar línea de inventario
// @Tags         items
// @Security     Bearer
// @Param        id  path  string  true  "ID de la línea"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Adjust godoc
// @Summary      Ajustar cantidad con un delta; el resultado no baja de cero
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la línea"
// @Param        body  body  dto.AdjustQuantityRequest  true  "delta"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/adjust [post]
func (h *ItemHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AdjustQuantity(GetUserID(c), c.Params("id"), in.Delta)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// SetQuantity godoc
// @Summary      Fijar la cantidad en un valor absoluto; negativos se truncan a cero
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la línea"
// @Param        body  body  dto.SetQuantityRequest  true  "quantity"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/quantity [put]
func (h *ItemHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetQuantity(GetUserID(c), c.Params("id"), in.Quantity)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
