package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/comercio-api/internal/application/report"
	"github.com/jhoicas/comercio-api/internal/application/stock"
	"github.com/jhoicas/comercio-api/internal/application/usecase"
	"github.com/jhoicas/comercio-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/comercio-api/internal/interfaces/http"
	"github.com/jhoicas/comercio-api/pkg/config"
	"github.com/jhoicas/comercio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	ledgerRepo := postgres.NewStockLedgerRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := stock.NewBalanceResolver(stockRepo, ledgerRepo)
	analyzer := stock.NewAnalyzer(productRepo, saleRepo, resolver)
	stockQueryUC := stock.NewQueryUseCase(stockRepo, ledgerRepo, productRepo, resolver)
	stockSnapshotUC := stock.NewSnapshotUseCase(stockRepo, productRepo)

	productUC := usecase.NewProductUseCase(productRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	purchaseUC := usecase.NewPurchaseUseCase(txRunner, purchaseRepo, productRepo)
	saleUC := usecase.NewSaleUseCase(txRunner, saleRepo, productRepo, resolver)
	adjustmentUC := usecase.NewAdjustmentUseCase(txRunner, productRepo)

	purchaseReports := report.NewPurchaseReports(purchaseRepo, productRepo)
	salesReports := report.NewSalesReports(saleRepo, productRepo)
	stockReports := report.NewStockReports(productRepo, ledgerRepo, resolver)
	kpiUC := report.NewKPIUseCase(saleRepo, productRepo, analyzer)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:       productUC,
		EmployeeUC:      employeeUC,
		PurchaseUC:      purchaseUC,
		SaleUC:          saleUC,
		AdjustmentUC:    adjustmentUC,
		StockQueryUC:    stockQueryUC,
		StockSnapshotUC: stockSnapshotUC,
		Analyzer:        analyzer,
		PurchaseReports: purchaseReports,
		SalesReports:    salesReports,
		StockReports:    stockReports,
		KPIUC:           kpiUC,
		DeadStockDays:   cfg.Stock.DeadStockDays,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
