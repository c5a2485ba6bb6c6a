package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create crea un producto.
// POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un producto por ID.
// GET /api/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
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

// List lista todos los productos.
// GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un producto.
// PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), int64(id), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un producto.
// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	if err := h.uc.Delete(c.Context(), int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "ok", Message: "producto eliminado"})
}
