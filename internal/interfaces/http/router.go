package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comercio-api/internal/application/report"
	"github.com/jhoicas/comercio-api/internal/application/stock"
	"github.com/jhoicas/comercio-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC       *usecase.ProductUseCase
	EmployeeUC      *usecase.EmployeeUseCase
	PurchaseUC      *usecase.PurchaseUseCase
	SaleUC          *usecase.SaleUseCase
	AdjustmentUC    *usecase.AdjustmentUseCase
	StockQueryUC    *stock.QueryUseCase
	StockSnapshotUC *stock.SnapshotUseCase
	Analyzer        *stock.Analyzer
	PurchaseReports *report.PurchaseReports
	SalesReports    *report.SalesReports
	StockReports    *report.StockReports
	KPIUC           *report.KPIUseCase
	DeadStockDays   int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:email", employeeHandler.GetByEmail)
	employees.Put("/:email", employeeHandler.Update)
	employees.Delete("/:email", employeeHandler.Delete)

	// Documentos
	purchases := api.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Put("/:id", purchaseHandler.Update)
	purchases.Delete("/:id", purchaseHandler.Delete)

	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Delete("/:id", saleHandler.Delete)

	// Stock materializado
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockQueryUC, deps.StockSnapshotUC, deps.Analyzer)
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Post("/initialize", stockHandler.Initialize)
	stockGroup.Get("/alerts/low-stock", stockHandler.LowStockAlerts)
	stockGroup.Get("/:id", stockHandler.GetByProduct)

	// Ledger de stock
	ledger := api.Group("/stock-ledger")
	ledgerHandler := NewLedgerHandler(deps.StockQueryUC, deps.AdjustmentUC)
	ledger.Get("/", ledgerHandler.List)
	ledger.Post("/", ledgerHandler.Adjust)
	ledger.Get("/:id/balance", ledgerHandler.Balance)
	ledger.Get("/:id/opening/:year/:month", ledgerHandler.Opening)
	ledger.Get("/:id/closing/:year/:month", ledgerHandler.Closing)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(
		deps.PurchaseReports, deps.SalesReports, deps.StockReports,
		deps.KPIUC, deps.Analyzer, deps.DeadStockDays,
	)
	reports.Get("/current-stock", reportHandler.CurrentStock)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/monthly", reportHandler.MonthlyStock)
	reports.Get("/kpis", reportHandler.KPIs)
	reports.Get("/purchases/vendor-wise", reportHandler.VendorWise)
	reports.Get("/purchases/monthly-summary", reportHandler.MonthlyPurchases)
	reports.Get("/purchases/price-variations", reportHandler.PriceVariations)
	reports.Get("/sales/product-wise", reportHandler.ProductWiseSales)
	reports.Get("/sales/top-selling", reportHandler.TopSelling)
	reports.Get("/sales/monthly-summary", reportHandler.MonthlySales)
	reports.Get("/sales/yearly-summary", reportHandler.YearlySales)
	reports.Get("/sales/dead-stock", reportHandler.DeadStock)
	reports.Get("/sales/executive-wise", reportHandler.ExecutiveWise)
}
