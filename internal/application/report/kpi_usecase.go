package report

import (
	"context"
	"time"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/stock"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Ventana del indicador de producto más vendido.
const bestSellingWindowDays = 30

// KPIUseCase calcula los indicadores del dashboard: ventas de hoy, ingreso
// del mes, conteo de alertas de stock bajo y producto más vendido reciente.
type KPIUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	analyzer    *stock.Analyzer
}

// NewKPIUseCase construye el caso de uso de indicadores.
func NewKPIUseCase(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, analyzer *stock.Analyzer) *KPIUseCase {
	return &KPIUseCase{saleRepo: saleRepo, productRepo: productRepo, analyzer: analyzer}
}

// Dashboard calcula todos los indicadores con la fecha de referencia dada.
func (uc *KPIUseCase) Dashboard(ctx context.Context, now time.Time) (*dto.KPIsDTO, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := stock.MonthStart(now.Year(), int(now.Month()))

	todaysSales, err := uc.revenueBetween(ctx, today, today)
	if err != nil {
		return nil, err
	}
	monthRevenue, err := uc.revenueBetween(ctx, monthStart, today)
	if err != nil {
		return nil, err
	}

	alerts, err := uc.analyzer.LowStockAlerts(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.KPIsDTO{
		TodaysSales:   dto.KPIValue{Value: todaysSales},
		MonthRevenue:  dto.KPIValue{Value: monthRevenue},
		LowStockCount: dto.KPIValue{Value: decimal.NewFromInt(int64(len(alerts)))},
	}

	bestID, bestName, err := uc.bestSelling(ctx, today.AddDate(0, 0, -bestSellingWindowDays), today)
	if err != nil {
		return nil, err
	}
	if bestID != nil {
		out.BestSellingProductID = bestID
		out.BestSellingProduct = bestName
	}
	return out, nil
}

// revenueBetween suma qty*precio de los renglones de venta en [from, to].
func (uc *KPIUseCase) revenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	items, err := uc.saleRepo.ItemsInRange(ctx, &from, &to)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Quantity.Mul(it.UnitPrice))
	}
	return total, nil
}

// bestSelling devuelve el producto con mayor cantidad vendida en la ventana,
// o nil si no hubo ventas.
func (uc *KPIUseCase) bestSelling(ctx context.Context, from, to time.Time) (*int64, *string, error) {
	items, err := uc.saleRepo.ItemsInRange(ctx, &from, &to)
	if err != nil {
		return nil, nil, err
	}
	if len(items) == 0 {
		return nil, nil, nil
	}

	byProduct := make(map[int64]decimal.Decimal)
	for _, it := range items {
		byProduct[it.ProductID] = byProduct[it.ProductID].Add(it.Quantity)
	}
	var bestID int64
	best := decimal.Zero
	for id, qty := range byProduct {
		if qty.GreaterThan(best) || (qty.Equal(best) && (bestID == 0 || id < bestID)) {
			bestID, best = id, qty
		}
	}

	names, err := uc.productRepo.NamesByIDs(ctx, []int64{bestID})
	if err != nil {
		return nil, nil, err
	}
	name := names[bestID]
	return &bestID, &name, nil
}
