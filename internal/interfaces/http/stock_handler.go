package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/report"
	"github.com/jhoicas/comercio-api/internal/application/stock"
)

// StockHandler maneja las consultas de stock y la carga inicial de inventario.
type StockHandler struct {
	queryUC    *stock.QueryUseCase
	snapshotUC *stock.SnapshotUseCase
	analyzer   *stock.Analyzer
}

// NewStockHandler construye el handler.
func NewStockHandler(queryUC *stock.QueryUseCase, snapshotUC *stock.SnapshotUseCase, analyzer *stock.Analyzer) *StockHandler {
	return &StockHandler{queryUC: queryUC, snapshotUC: snapshotUC, analyzer: analyzer}
}

// List devuelve todas las filas de stock materializado con nombre de producto.
// GET /api/stock
func (h *StockHandler) List(c *fiber.Ctx) error {
	rows, err := h.queryUC.ListStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// GetByProduct devuelve el stock actual de un producto. Sin fila materializada
// el saldo se deriva del ledger y last_updated queda en null.
// GET /api/stock/:id
func (h *StockHandler) GetByProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID <= 0 {
		return fail(c, fiber.StatusBadRequest, "id de producto inválido")
	}
	out, err := h.queryUC.ProductStock(c.Context(), int64(productID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Initialize fija el stock de un producto (upsert idempotente).
// POST /api/stock/initialize
func (h *StockHandler) Initialize(c *fiber.Ctx) error {
	var in dto.InitializeStockRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.ProductID <= 0 || in.Quantity == nil || in.Quantity.IsNegative() {
		return fail(c, fiber.StatusBadRequest, "product_id y quantity (>= 0) son requeridos")
	}
	out, err := h.snapshotUC.Initialize(c.Context(), in.ProductID, *in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStockAlerts lista los productos por debajo de su punto de reorden.
// GET /api/stock/alerts/low-stock
func (h *StockHandler) LowStockAlerts(c *fiber.Ctx) error {
	alerts, err := h.analyzer.LowStockAlerts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if wantsCSV(c.Query("format")) {
		return sendCSV(c, report.LowStockCSV(alerts))
	}
	return c.JSON(alerts)
}
