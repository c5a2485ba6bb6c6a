package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/report"
	"github.com/jhoicas/comercio-api/internal/domain"
)

// fail responde un error con el cuerpo estándar {status, message}.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.StatusResponse{Status: "error", Message: message})
}

// respondError mapea errores de dominio a códigos HTTP. Un error de validación
// es 400 y nunca llegó al almacén; cualquier error no clasificado sale como
// 500 con el mensaje tal cual, sin reintentos.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		return fail(c, fiber.StatusConflict, err.Error())
	default:
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
}

// sendCSV responde el documento como adjunto text/csv.
func sendCSV(c *fiber.Ctx, doc report.CSVDocument) error {
	body, err := doc.Encode()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Filename))
	return c.Send(body)
}

// wantsCSV decide el formato de salida de un reporte.
func wantsCSV(format string) bool {
	return format == "csv"
}
