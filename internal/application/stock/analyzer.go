package stock

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DefaultDeadStockDays ventana por defecto para considerar un producto muerto.
const DefaultDeadStockDays = 60

// Analyzer deriva alertas de stock bajo y detección de stock muerto a partir
// del resolver de saldos y el historial de ventas.
type Analyzer struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	resolver    *BalanceResolver
}

// NewAnalyzer construye el analizador.
func NewAnalyzer(productRepo repository.ProductRepository, saleRepo repository.SaleRepository, resolver *BalanceResolver) *Analyzer {
	return &Analyzer{productRepo: productRepo, saleRepo: saleRepo, resolver: resolver}
}

// LowStockAlerts devuelve los productos con punto de reorden definido cuyo
// stock actual es ESTRICTAMENTE menor que el punto de reorden. El predicado
// canónico es `<`: un producto exactamente en su punto de reorden no alerta.
// Shortage = max(0, reorden - stock_actual).
func (a *Analyzer) LowStockAlerts(ctx context.Context) ([]dto.LowStockAlertDTO, error) {
	products, err := a.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var ids []int64
	for _, p := range products {
		if p.ReorderPoint != nil {
			ids = append(ids, p.ID)
		}
	}

	current, err := a.resolver.Current(ctx, ids)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.LowStockAlertDTO, 0)
	for _, p := range products {
		if p.ReorderPoint == nil {
			continue
		}
		stock := current[p.ID]
		if !stock.LessThan(*p.ReorderPoint) {
			continue
		}
		shortage := p.ReorderPoint.Sub(stock)
		if shortage.IsNegative() {
			shortage = decimal.Zero
		}
		alerts = append(alerts, dto.LowStockAlertDTO{
			ProductID:    p.ID,
			ProductName:  p.Name,
			CurrentStock: stock,
			ReorderPoint: *p.ReorderPoint,
			Shortage:     shortage,
		})
	}
	return alerts, nil
}

// DeadStock devuelve los productos que nunca vendieron o cuya última venta es
// estrictamente anterior a hoy-menos-days. El empate entre ventas del mismo
// día es irrelevante: solo importa la fecha máxima por producto.
func (a *Analyzer) DeadStock(ctx context.Context, days int, now time.Time) ([]dto.DeadStockRowDTO, error) {
	if days <= 0 {
		days = DefaultDeadStockDays
	}
	since := dateOnly(now).AddDate(0, 0, -days)

	items, err := a.saleRepo.ItemsInRange(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	// Última fecha de venta por producto: gana la máxima.
	lastSold := make(map[int64]time.Time)
	for _, it := range items {
		d := dateOnly(it.SaleDate)
		if prev, ok := lastSold[it.ProductID]; !ok || d.After(prev) {
			lastSold[it.ProductID] = d
		}
	}

	products, err := a.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	remaining, err := a.resolver.Current(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.DeadStockRowDTO, 0)
	for _, p := range products {
		last, sold := lastSold[p.ID]
		if sold && !last.Before(since) {
			continue
		}
		var lastStr *string
		if sold {
			s := last.Format("2006-01-02")
			lastStr = &s
		}
		rows = append(rows, dto.DeadStockRowDTO{
			ProductID:      p.ID,
			ProductName:    p.Name,
			LastSoldDate:   lastStr,
			StockRemaining: remaining[p.ID],
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].ProductID < rows[j].ProductID })
	return rows, nil
}
