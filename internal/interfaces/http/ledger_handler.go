package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/stock"
	"github.com/jhoicas/comercio-api/internal/application/usecase"
)

// LedgerHandler maneja el ledger de stock: listado crudo, ajustes manuales y
// saldos (actual, apertura, cierre).
type LedgerHandler struct {
	queryUC  *stock.QueryUseCase
	adjustUC *usecase.AdjustmentUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(queryUC *stock.QueryUseCase, adjustUC *usecase.AdjustmentUseCase) *LedgerHandler {
	return &LedgerHandler{queryUC: queryUC, adjustUC: adjustUC}
}

// List devuelve movimientos del más reciente al más antiguo.
// GET /api/stock-ledger?product_id=&limit=
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	var productID *int64
	if id := c.QueryInt("product_id", 0); id > 0 {
		v := int64(id)
		productID = &v
	}
	limit := c.QueryInt("limit", 0)

	entries, err := h.queryUC.Ledger(c.Context(), productID, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

// Adjust registra un ajuste manual de stock (cantidad con signo).
// POST /api/stock-ledger
func (h *LedgerHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.ProductID <= 0 {
		return fail(c, fiber.StatusBadRequest, "product_id es requerido")
	}
	out, err := h.adjustUC.Apply(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Balance devuelve el saldo actual de un producto.
// GET /api/stock-ledger/:id/balance
func (h *LedgerHandler) Balance(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID <= 0 {
		return fail(c, fiber.StatusBadRequest, "id de producto inválido")
	}
	out, err := h.queryUC.Balance(c.Context(), int64(productID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Opening devuelve el stock de apertura de un mes (movimientos estrictamente
// anteriores al primer día).
// GET /api/stock-ledger/:id/opening/:year/:month
func (h *LedgerHandler) Opening(c *fiber.Ctx) error {
	productID, year, month, ok := h.parsePeriod(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "id, year y month son requeridos")
	}
	out, err := h.queryUC.OpeningStock(c.Context(), productID, year, month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Closing devuelve el stock de cierre de un mes (hasta el último día inclusive).
// GET /api/stock-ledger/:id/closing/:year/:month
func (h *LedgerHandler) Closing(c *fiber.Ctx) error {
	productID, year, month, ok := h.parsePeriod(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "id, year y month son requeridos")
	}
	out, err := h.queryUC.ClosingStock(c.Context(), productID, year, month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *LedgerHandler) parsePeriod(c *fiber.Ctx) (productID int64, year, month int, ok bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, 0, 0, false
	}
	year, err = c.ParamsInt("year")
	if err != nil || year < 1970 || year > 9999 {
		return 0, 0, 0, false
	}
	month, err = c.ParamsInt("month")
	if err != nil || month < 1 || month > 12 {
		return 0, 0, 0, false
	}
	return int64(id), year, month, true
}
