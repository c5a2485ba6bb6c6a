package report

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/stock"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// StockReports deriva reportes de inventario directamente del ledger. El
// cierre de cada fila es aritmético: closing = opening + purchased - sold,
// nunca una lectura aparte que pueda divergir.
type StockReports struct {
	productRepo repository.ProductRepository
	ledgerRepo  repository.StockLedgerRepository
	resolver    *stock.BalanceResolver
}

// NewStockReports construye el agregador de stock.
func NewStockReports(productRepo repository.ProductRepository, ledgerRepo repository.StockLedgerRepository, resolver *stock.BalanceResolver) *StockReports {
	return &StockReports{productRepo: productRepo, ledgerRepo: ledgerRepo, resolver: resolver}
}

// CurrentStock calcula por producto la apertura antes de la ventana, lo
// comprado y lo vendido dentro de ella, y el cierre derivado. Sin start la
// apertura es cero y la ventana abre desde el origen; sin end cierra hoy.
func (uc *StockReports) CurrentStock(ctx context.Context, q dto.ReportQuery, now time.Time) ([]dto.CurrentStockRow, int, error) {
	from, to, err := ParseWindow(q.StartDate, q.EndDate)
	if err != nil {
		return nil, 0, err
	}
	windowEnd := now
	if to != nil {
		windowEnd = *to
	}

	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	type movement struct {
		opening   decimal.Decimal
		purchased decimal.Decimal
		sold      decimal.Decimal
	}
	byProduct := make(map[int64]*movement, len(ids))
	for _, id := range ids {
		byProduct[id] = &movement{}
	}

	quantities, err := uc.ledgerQuantities(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for _, row := range quantities {
		m := byProduct[row.ProductID]
		if m == nil {
			continue
		}
		d := truncateDay(row.TransactionDate)
		if from != nil && d.Before(truncateDay(*from)) {
			m.opening = m.opening.Add(row.Quantity)
			continue
		}
		if d.After(truncateDay(windowEnd)) {
			continue
		}
		if row.Quantity.IsNegative() {
			m.sold = m.sold.Add(row.Quantity.Neg())
		} else {
			m.purchased = m.purchased.Add(row.Quantity)
		}
	}

	rows := make([]dto.CurrentStockRow, 0, len(products))
	for _, p := range products {
		m := byProduct[p.ID]
		rows = append(rows, dto.CurrentStockRow{
			ProductID:   p.ID,
			ProductName: p.Name,
			Opening:     m.opening,
			Purchased:   m.purchased,
			Sold:        m.sold,
			Closing:     m.opening.Add(m.purchased).Sub(m.sold),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ProductID < rows[j].ProductID })

	total := len(rows)
	return Paginate(rows, q.Limit, q.Offset), total, nil
}

// Monthly devuelve apertura y cierre de cada producto para un mes dado.
func (uc *StockReports) Monthly(ctx context.Context, year, month, limit, offset int) ([]dto.MonthlyStockRow, int, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	opening, err := uc.resolver.Opening(ctx, ids, stock.MonthStart(year, month))
	if err != nil {
		return nil, 0, err
	}
	closing, err := uc.resolver.Closing(ctx, ids, stock.MonthEnd(year, month))
	if err != nil {
		return nil, 0, err
	}

	rows := make([]dto.MonthlyStockRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, dto.MonthlyStockRow{
			ProductID:   p.ID,
			ProductName: p.Name,
			Opening:     opening[p.ID],
			Closing:     closing[p.ID],
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ProductID < rows[j].ProductID })

	total := len(rows)
	return Paginate(rows, limit, offset), total, nil
}

func (uc *StockReports) ledgerQuantities(ctx context.Context, ids []int64) ([]repository.LedgerQuantity, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return uc.ledgerRepo.QuantitiesForProducts(ctx, ids)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
