package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/report"
	"github.com/jhoicas/comercio-api/internal/application/usecase"
)

// SaleHandler maneja las peticiones HTTP para ventas.
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create registra una venta. Stock insuficiente responde 409.
// POST /api/sales
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una venta con sus renglones.
// GET /api/sales/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	out, err := h.uc.GetByID(c.Context(), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista ventas, opcionalmente acotadas por start_date/end_date.
// GET /api/sales
func (h *SaleHandler) List(c *fiber.Ctx) error {
	from, to, err := report.ParseWindow(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una venta y devuelve la mercancía al stock vía ledger.
// DELETE /api/sales/:id
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	if err := h.uc.Delete(c.Context(), int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "ok", Message: "venta eliminada"})
}
