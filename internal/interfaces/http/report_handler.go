package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/report"
	"github.com/jhoicas/comercio-api/internal/application/stock"
)

// ReportHandler expone los reportes agregados de compras, ventas y stock.
// Todos comparten el contrato: ventana de fechas inclusiva, paginación después
// de ordenar, count pre-paginación y salida json o csv.
type ReportHandler struct {
	purchaseReports *report.PurchaseReports
	salesReports    *report.SalesReports
	stockReports    *report.StockReports
	kpiUC           *report.KPIUseCase
	analyzer        *stock.Analyzer
	deadStockDays   int
}

// NewReportHandler construye el handler. deadStockDays es la ventana por
// defecto del reporte de stock muerto.
func NewReportHandler(
	purchaseReports *report.PurchaseReports,
	salesReports *report.SalesReports,
	stockReports *report.StockReports,
	kpiUC *report.KPIUseCase,
	analyzer *stock.Analyzer,
	deadStockDays int,
) *ReportHandler {
	return &ReportHandler{
		purchaseReports: purchaseReports,
		salesReports:    salesReports,
		stockReports:    stockReports,
		kpiUC:           kpiUC,
		analyzer:        analyzer,
		deadStockDays:   deadStockDays,
	}
}

func parseReportQuery(c *fiber.Ctx) (dto.ReportQuery, error) {
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return q, err
	}
	return q, nil
}

// CurrentStock reporte de stock actual: apertura, comprado, vendido y cierre
// por producto dentro de la ventana.
// GET /api/reports/current-stock
func (h *ReportHandler) CurrentStock(c *fiber.Ctx) error {
	q, err := parseReportQuery(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "parámetros inválidos")
	}
	rows, count, err := h.stockReports.CurrentStock(c.Context(), q, time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	if wantsCSV(q.Format) {
		return sendCSV(c, report.CurrentStockCSV(rows))
	}
	return c.JSON(dto.ReportEnvelope{Report: rows, Count: count})
}

// LowStock reporte de productos bajo su punto de reorden.
// GET /api/reports/low-stock
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	alerts, err := h.analyzer.LowStockAlerts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if wantsCSV(c.Query("format")) {
		return sendCSV(c, report.LowStockCSV(alerts))
	}
	return c.JSON(dto.ReportEnvelope{Report: alerts, Count: len(alerts)})
}

// MonthlyStock apertura y cierre por producto para un año y mes.
// GET /api/reports/monthly?year=&month=
func (h *ReportHandler) MonthlyStock(c *fiber.Ctx) error {
	now := time.Now().UTC()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 || year < 1970 || year > 9999 {
		return fail(c, fiber.StatusBadRequest, "year o month inválidos")
	}
	limit := c.QueryInt("limit", 0)
	offset := c.QueryInt("offset", 0)

	rows, count, err := h.stockReports.Monthly(c.Context(), year, month, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	if wantsCSV(c.Query("format")) {
		return sendCSV(c, report.MonthlyStockCSV(rows))
	}
	return c.JSON(dto.ReportEnvelope{Report: rows, Count: count})
}

// KPIs indicadores del dashboard.
// GET /api/reports/kpis
func (h *ReportHandler) KPIs(c *fiber.Ctx) error {
	out, err := h.kpiUC.Dashboard(c.Context(), time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// VendorWise compras agrupadas por proveedor.
// GET /api/reports/purchases/vendor-wise
func (h *ReportHandler) VendorWise(c *fiber.Ctx) error {
	q, err := parseReportQuery(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "parámetros inválidos")
	}
	rows, count, err := h.purchaseReports.VendorWise(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	if wantsCSV(q.Format) {
		return sendCSV(c, report.VendorWiseCSV(rows))
	}
	return c.JSON(dto.ReportEnvelope{Report: rows, Count: count})
}

// MonthlyPurchases resumen mensual de compras.
// GET /api/reports/purchases/monthly-summary
func (h *ReportHandler) MonthlyPurchases(c *fiber.Ctx) error {
	q, err := parseReportQuery(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "parámetros inválidos")
	}
	rows, count, err := h.purchaseReports.MonthlySummary(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	if wantsCSV(q.Format) {
		return sendCSV(c, report.MonthlyPurchaseCSV(rows))
	}
	return c.JSON(dto.ReportEnvelope{Report: rows, Count: count})
}

// PriceVariations min/max/promedio del precio unitario de compra por producto.
// GET /api/reports/purchases/price-variations
func (h *ReportHandler) PriceVariations(c *fiber.Ctx) error {
	q, err := parseReportQuery(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "parámetros inválidos")
	}
	rows, count, err := h.purchaseReports.PriceVariations(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	if wantsCSV(q.Format) {
		return sendCSV(c, report.PriceVariationCSV(rows))
	}
	return c.JSON(dto.ReportEnvelope{Report: rows, Count: count})
}

// ProductWiseSales ventas agrupadas por producto.
// GET /api/reports/sales/product-wise
func (h *ReportHandler) ProductWiseSales(c *fiber.Ctx) error {
	q, err := parseReportQuery(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "parámetros inválidos")
	}
	rows, count, err := h.salesReports.ProductWise(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ReportEnvelope{Report: rows, Count: count})
}

// TopSelling productos más vendidos por cantidad.
// GET /api/reports/sales/top-selling
func (h *ReportHandler) TopSelling(c *fiber.Ctx) error {
	q, err := parseReportQuery(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "parámetros inválidos")
	}
	rows, count, err := h.salesReports.TopSelling(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ReportEnvelope{Report: rows, Count: count})
}

// MonthlySales resumen mensual de ventas.
// GET /api/reports/sales/monthly-summary
func (h *ReportHandler) MonthlySales(c *fiber.Ctx) error {
	q, err := parseReportQuery(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "parámetros inválidos")
	}
	rows, count, err := h.salesReports.MonthlySummary(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ReportEnvelope{Report: rows, Count: count})
}

// YearlySales resumen anual de ventas.
// GET /api/reports/sales/yearly-summary
func (h *ReportHandler) YearlySales(c *fiber.Ctx) error {
	q, err := parseReportQuery(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "parámetros inválidos")
	}
	rows, count, err := h.salesReports.YearlySummary(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ReportEnvelope{Report: rows, Count: count})
}

// DeadStock productos sin ventas recientes.
// GET /api/reports/sales/dead-stock?days=
func (h *ReportHandler) DeadStock(c *fiber.Ctx) error {
	days := c.QueryInt("days", h.deadStockDays)
	if days < 0 {
		return fail(c, fiber.StatusBadRequest, "days inválido")
	}
	rows, err := h.analyzer.DeadStock(c.Context(), days, time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	if wantsCSV(c.Query("format")) {
		return sendCSV(c, report.DeadStockCSV(rows))
	}
	return c.JSON(dto.ReportEnvelope{Report: rows, Count: len(rows)})
}

// ExecutiveWise ventas agrupadas por ejecutivo.
// GET /api/reports/sales/executive-wise
func (h *ReportHandler) ExecutiveWise(c *fiber.Ctx) error {
	q, err := parseReportQuery(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "parámetros inválidos")
	}
	rows, count, err := h.salesReports.ExecutiveWise(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	if wantsCSV(q.Format) {
		return sendCSV(c, report.ExecutiveWiseCSV(rows))
	}
	return c.JSON(dto.ReportEnvelope{Report: rows, Count: count})
}
