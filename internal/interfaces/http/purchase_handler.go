package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/report"
	"github.com/jhoicas/comercio-api/internal/application/usecase"
)

// PurchaseHandler maneja las peticiones HTTP para compras.
type PurchaseHandler struct {
	uc *usecase.PurchaseUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *usecase.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Create registra una compra y sus movimientos de ledger.
// POST /api/purchases
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.PurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una compra con sus renglones.
// GET /api/purchases/:id
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
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

// List lista compras, opcionalmente acotadas por start_date/end_date.
// GET /api/purchases
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
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

// Update actualiza el encabezado de una compra.
// PUT /api/purchases/:id
func (h *PurchaseHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	var in dto.PurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), int64(id), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una compra y registra el reverso en el ledger.
// DELETE /api/purchases/:id
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	if err := h.uc.Delete(c.Context(), int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "ok", Message: "compra eliminada"})
}
