package report

import (
	"context"
	"sort"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// PurchaseReports agrega renglones de compra por proveedor, mes y producto.
// Toda la agregación ocurre en memoria sobre filas crudas del repositorio;
// la paginación se aplica después de ordenar y el conteo es pre-paginación.
type PurchaseReports struct {
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
}

// NewPurchaseReports construye el agregador de compras.
func NewPurchaseReports(purchaseRepo repository.PurchaseRepository, productRepo repository.ProductRepository) *PurchaseReports {
	return &PurchaseReports{purchaseRepo: purchaseRepo, productRepo: productRepo}
}

// VendorWise agrupa compras por proveedor. Proveedor vacío cae en "Unknown".
// Orden: valor total de compra descendente.
func (uc *PurchaseReports) VendorWise(ctx context.Context, q dto.ReportQuery) ([]dto.VendorWiseRow, int, error) {
	from, to, err := ParseWindow(q.StartDate, q.EndDate)
	if err != nil {
		return nil, 0, err
	}
	purchases, err := uc.purchaseRepo.ListWithItems(ctx, from, to)
	if err != nil {
		return nil, 0, err
	}

	byVendor := make(map[string]*dto.VendorWiseRow)
	for _, p := range purchases {
		vendor := p.VendorName
		if vendor == "" {
			vendor = "Unknown"
		}
		row, ok := byVendor[vendor]
		if !ok {
			row = &dto.VendorWiseRow{Vendor: vendor}
			byVendor[vendor] = row
		}
		for _, it := range p.Items {
			row.TotalPurchaseValue = row.TotalPurchaseValue.Add(it.Quantity.Mul(it.UnitPrice))
			row.ItemsBought = row.ItemsBought.Add(it.Quantity)
		}
	}

	rows := make([]dto.VendorWiseRow, 0, len(byVendor))
	for _, row := range byVendor {
		rows = append(rows, *row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].TotalPurchaseValue.Equal(rows[j].TotalPurchaseValue) {
			return rows[i].TotalPurchaseValue.GreaterThan(rows[j].TotalPurchaseValue)
		}
		return rows[i].Vendor < rows[j].Vendor
	})

	total := len(rows)
	return Paginate(rows, q.Limit, q.Offset), total, nil
}

// MonthlySummary agrupa compras por mes (YYYY-MM), ordenado del mes más
// reciente al más antiguo. AvgCost = total / nº de compras del mes, 0 sin compras.
func (uc *PurchaseReports) MonthlySummary(ctx context.Context, q dto.ReportQuery) ([]dto.MonthlyPurchaseRow, int, error) {
	from, to, err := ParseWindow(q.StartDate, q.EndDate)
	if err != nil {
		return nil, 0, err
	}
	purchases, err := uc.purchaseRepo.ListWithItems(ctx, from, to)
	if err != nil {
		return nil, 0, err
	}

	type bucket struct {
		total decimal.Decimal
		items decimal.Decimal
		count int64
	}
	byMonth := make(map[string]*bucket)
	for _, p := range purchases {
		month := p.PurchaseDate.Format("2006-01")
		b, ok := byMonth[month]
		if !ok {
			b = &bucket{}
			byMonth[month] = b
		}
		for _, it := range p.Items {
			b.total = b.total.Add(it.Quantity.Mul(it.UnitPrice))
			b.items = b.items.Add(it.Quantity)
		}
		b.count++
	}

	rows := make([]dto.MonthlyPurchaseRow, 0, len(byMonth))
	for month, b := range byMonth {
		avg := decimal.Zero
		if b.count > 0 {
			avg = b.total.Div(decimal.NewFromInt(b.count))
		}
		rows = append(rows, dto.MonthlyPurchaseRow{
			Month:         month,
			TotalPurchase: b.total,
			ItemsBought:   b.items,
			AvgCost:       avg,
		})
	}
	// Lexicográfico descendente sobre YYYY-MM equivale a cronológico descendente.
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month > rows[j].Month })

	total := len(rows)
	return Paginate(rows, q.Limit, q.Offset), total, nil
}

// PriceVariations calcula mínimo, máximo y promedio del precio unitario de
// compra por producto con un acumulador de una sola pasada.
func (uc *PurchaseReports) PriceVariations(ctx context.Context, q dto.ReportQuery) ([]dto.PriceVariationRow, int, error) {
	from, to, err := ParseWindow(q.StartDate, q.EndDate)
	if err != nil {
		return nil, 0, err
	}
	items, err := uc.purchaseRepo.ItemsInRange(ctx, from, to)
	if err != nil {
		return nil, 0, err
	}

	type acc struct {
		min, max, sum decimal.Decimal
		count         int64
	}
	byProduct := make(map[int64]*acc)
	for _, it := range items {
		price := it.UnitPrice
		a, ok := byProduct[it.ProductID]
		if !ok {
			byProduct[it.ProductID] = &acc{min: price, max: price, sum: price, count: 1}
			continue
		}
		if price.LessThan(a.min) {
			a.min = price
		}
		if price.GreaterThan(a.max) {
			a.max = price
		}
		a.sum = a.sum.Add(price)
		a.count++
	}

	ids := make([]int64, 0, len(byProduct))
	for id := range byProduct {
		ids = append(ids, id)
	}
	names, err := uc.lookupNames(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]dto.PriceVariationRow, 0, len(byProduct))
	for id, a := range byProduct {
		avg := decimal.Zero
		if a.count > 0 {
			avg = a.sum.Div(decimal.NewFromInt(a.count))
		}
		rows = append(rows, dto.PriceVariationRow{
			ProductID:   id,
			ProductName: names[id],
			MinPrice:    a.min,
			MaxPrice:    a.max,
			AvgPrice:    avg,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ProductID < rows[j].ProductID })

	total := len(rows)
	return Paginate(rows, q.Limit, q.Offset), total, nil
}

func (uc *PurchaseReports) lookupNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	if len(ids) == 0 {
		return map[int64]string{}, nil
	}
	return uc.productRepo.NamesByIDs(ctx, ids)
}
