package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
)

// errorJSON traduce un error de dominio a su respuesta HTTP. Los errores que
// no corresponden a ningún sentinel se responden como 500 sin exponer el
// detalle interno al cliente.
func errorJSON(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_EMAIL", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrInviteInvalid):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "INVALID_OR_USED_CODE", Message: "código inválido o ya utilizado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: "entrada inválida"})
	case errors.Is(err, domain.ErrPayloadTooLarge):
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "PAYLOAD_TOO_LARGE", Message: "el archivo excede el tamaño máximo"})
	case errors.Is(err, domain.ErrUnsupportedMedia):
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_MEDIA", Message: "solo se aceptan imágenes JPEG o PNG"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tienes permiso para esta operación"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autenticado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
