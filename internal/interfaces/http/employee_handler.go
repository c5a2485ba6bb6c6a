package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/usecase"
)

// EmployeeHandler maneja las peticiones HTTP para Employee.
// El email es la llave de las rutas de detalle.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create registra un empleado.
// POST /api/employees
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByEmail obtiene un empleado por email.
// GET /api/employees/:email
func (h *EmployeeHandler) GetByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return fail(c, fiber.StatusBadRequest, "email es requerido")
	}
	out, err := h.uc.GetByEmail(c.Context(), email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista todos los empleados.
// GET /api/employees
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un empleado por email.
// PUT /api/employees/:email
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return fail(c, fiber.StatusBadRequest, "email es requerido")
	}
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), email, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un empleado por email.
// DELETE /api/employees/:email
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return fail(c, fiber.StatusBadRequest, "email es requerido")
	}
	if err := h.uc.Delete(c.Context(), email); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "ok", Message: "empleado eliminado"})
}
