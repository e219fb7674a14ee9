package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
)

// ReceiptHandler maneja los recibos de compra (protegido). La imagen viaja
// como multipart y se sirve cruda desde su propio endpoint.
type ReceiptHandler struct {
	uc *usecase.ReceiptUseCase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *usecase.ReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir recibo (owner o manager); JPEG/PNG hasta 5 MiB
// @Tags         receipts
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true   "ID del restaurante"
// @Param        image  formData  file    true   "imagen del recibo"
// @Param        note   formData  string  false  "nota"
// @Success      201    {object}  dto.ReceiptResponse
// @Failure      413    {object}  dto.ErrorResponse
// @Failure      415    {object}  dto.ErrorResponse
// @Router       /api/restaurants/{id}/receipts [post]
func (h *ReceiptHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo multipart image es requerido"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()
	payload, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}

	out, err := h.uc.Add(GetUserID(c), c.Params("id"), payload, c.FormValue("note"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar recibos de un restaurante, el más reciente primero
// @Tags         receipts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del restaurante"
// @Success      200  {object}  dto.ReceiptListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/restaurants/{id}/receipts [get]
func (h *ReceiptHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Image godoc
// @Summary      Descargar la imagen de un recibo
// @Tags         receipts
// @Security     Bearer
// @Produce      image/jpeg
// @Param        id  path  string  true  "ID del recibo"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receipts/{id}/image [get]
func (h *ReceiptHandler) Image(c *fiber.Ctx) error {
	data, mime, err := h.uc.GetImage(GetUserID(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, mime)
	return c.Send(data)
}

// Delete godoc
// @Summary      Eliminar recibo (owner o manager)
// @Tags         receipts
// @Security     Bearer
// @Param        id  path  string  true  "ID del recibo"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receipts/{id} [delete]
func (h *ReceiptHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
