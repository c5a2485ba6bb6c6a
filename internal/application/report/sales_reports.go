package report

import (
	"context"
	"sort"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Cotas del reporte top-selling.
const (
	TopSellingDefaultLimit = 10
	topSellingNameLookup   = 100
)

// SalesReports agrega renglones de venta por producto, mes, año y ejecutivo.
type SalesReports struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewSalesReports construye el agregador de ventas.
func NewSalesReports(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) *SalesReports {
	return &SalesReports{saleRepo: saleRepo, productRepo: productRepo}
}

// ProductWise agrupa renglones de venta por producto, ordenado por cantidad
// vendida descendente, y enriquece cada fila con el nombre del producto.
func (uc *SalesReports) ProductWise(ctx context.Context, q dto.ReportQuery) ([]dto.ProductWiseSalesRow, int, error) {
	from, to, err := ParseWindow(q.StartDate, q.EndDate)
	if err != nil {
		return nil, 0, err
	}
	items, err := uc.saleRepo.ItemsInRange(ctx, from, to)
	if err != nil {
		return nil, 0, err
	}

	byProduct := make(map[int64]*dto.ProductWiseSalesRow)
	for _, it := range items {
		row, ok := byProduct[it.ProductID]
		if !ok {
			row = &dto.ProductWiseSalesRow{ProductID: it.ProductID}
			byProduct[it.ProductID] = row
		}
		row.QuantitySold = row.QuantitySold.Add(it.Quantity)
		row.Revenue = row.Revenue.Add(it.Quantity.Mul(it.UnitPrice))
	}

	ids := make([]int64, 0, len(byProduct))
	for id := range byProduct {
		ids = append(ids, id)
	}
	names, err := uc.lookupNames(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]dto.ProductWiseSalesRow, 0, len(byProduct))
	for id, row := range byProduct {
		row.ProductName = names[id]
		rows = append(rows, *row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].QuantitySold.Equal(rows[j].QuantitySold) {
			return rows[i].QuantitySold.GreaterThan(rows[j].QuantitySold)
		}
		return rows[i].ProductID < rows[j].ProductID
	})

	total := len(rows)
	return Paginate(rows, q.Limit, q.Offset), total, nil
}

// TopSelling devuelve los productos más vendidos por cantidad. limit <= 0 usa
// TopSellingDefaultLimit. La búsqueda de nombres se acota a los primeros
// topSellingNameLookup ids del ranking; más allá el nombre queda vacío.
func (uc *SalesReports) TopSelling(ctx context.Context, q dto.ReportQuery) ([]dto.TopSellingRow, int, error) {
	from, to, err := ParseWindow(q.StartDate, q.EndDate)
	if err != nil {
		return nil, 0, err
	}
	items, err := uc.saleRepo.ItemsInRange(ctx, from, to)
	if err != nil {
		return nil, 0, err
	}

	byProduct := make(map[int64]decimal.Decimal)
	for _, it := range items {
		byProduct[it.ProductID] = byProduct[it.ProductID].Add(it.Quantity)
	}

	rows := make([]dto.TopSellingRow, 0, len(byProduct))
	for id, qty := range byProduct {
		rows = append(rows, dto.TopSellingRow{ProductID: id, QtySold: qty})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].QtySold.Equal(rows[j].QtySold) {
			return rows[i].QtySold.GreaterThan(rows[j].QtySold)
		}
		return rows[i].ProductID < rows[j].ProductID
	})
	total := len(rows)

	limit := q.Limit
	if limit <= 0 {
		limit = TopSellingDefaultLimit
	}
	rows = Paginate(rows, limit, q.Offset)

	lookup := rows
	if len(lookup) > topSellingNameLookup {
		lookup = lookup[:topSellingNameLookup]
	}
	ids := make([]int64, 0, len(lookup))
	for _, r := range lookup {
		ids = append(ids, r.ProductID)
	}
	names, err := uc.lookupNames(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range rows {
		rows[i].ProductName = names[rows[i].ProductID]
	}
	return rows, total, nil
}

// MonthlySummary agrupa ventas por mes (YYYY-MM) del más reciente al más
// antiguo. AvgSaleValue = total / nº de ventas del mes, 0 sin ventas.
func (uc *SalesReports) MonthlySummary(ctx context.Context, q dto.ReportQuery) ([]dto.MonthlySalesRow, int, error) {
	buckets, err := uc.summarize(ctx, q, "2006-01")
	if err != nil {
		return nil, 0, err
	}
	rows := make([]dto.MonthlySalesRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, dto.MonthlySalesRow{
			Month:             b.key,
			TotalSales:        b.total,
			TotalQuantitySold: b.quantity,
			AvgSaleValue:      b.avg(),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month > rows[j].Month })
	total := len(rows)
	return Paginate(rows, q.Limit, q.Offset), total, nil
}

// YearlySummary agrupa ventas por año (YYYY) del más reciente al más antiguo.
func (uc *SalesReports) YearlySummary(ctx context.Context, q dto.ReportQuery) ([]dto.YearlySalesRow, int, error) {
	buckets, err := uc.summarize(ctx, q, "2006")
	if err != nil {
		return nil, 0, err
	}
	rows := make([]dto.YearlySalesRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, dto.YearlySalesRow{
			Year:              b.key,
			TotalSales:        b.total,
			TotalQuantitySold: b.quantity,
			AvgSaleValue:      b.avg(),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Year > rows[j].Year })
	total := len(rows)
	return Paginate(rows, q.Limit, q.Offset), total, nil
}

// ExecutiveWise agrupa ventas por ejecutivo (customer_name), con el producto
// estrella de cada uno por ingreso. Orden: monto total descendente.
func (uc *SalesReports) ExecutiveWise(ctx context.Context, q dto.ReportQuery) ([]dto.ExecutiveWiseRow, int, error) {
	from, to, err := ParseWindow(q.StartDate, q.EndDate)
	if err != nil {
		return nil, 0, err
	}
	sales, err := uc.saleRepo.ListWithItems(ctx, from, to)
	if err != nil {
		return nil, 0, err
	}

	type execAcc struct {
		count     int
		amount    decimal.Decimal
		quantity  decimal.Decimal
		byProduct map[int64]decimal.Decimal
	}
	byExec := make(map[string]*execAcc)
	productIDs := make(map[int64]struct{})
	for _, s := range sales {
		name := s.CustomerName
		if name == "" {
			name = "Unknown"
		}
		a, ok := byExec[name]
		if !ok {
			a = &execAcc{byProduct: make(map[int64]decimal.Decimal)}
			byExec[name] = a
		}
		a.count++
		for _, it := range s.Items {
			revenue := it.Quantity.Mul(it.UnitPrice)
			a.amount = a.amount.Add(revenue)
			a.quantity = a.quantity.Add(it.Quantity)
			a.byProduct[it.ProductID] = a.byProduct[it.ProductID].Add(revenue)
			productIDs[it.ProductID] = struct{}{}
		}
	}

	ids := make([]int64, 0, len(productIDs))
	for id := range productIDs {
		ids = append(ids, id)
	}
	names, err := uc.lookupNames(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]dto.ExecutiveWiseRow, 0, len(byExec))
	for name, a := range byExec {
		avg := decimal.Zero
		if a.count > 0 {
			avg = a.amount.Div(decimal.NewFromInt(int64(a.count)))
		}
		var topID int64
		topRevenue := decimal.Zero
		for id, rev := range a.byProduct {
			if rev.GreaterThan(topRevenue) || (rev.Equal(topRevenue) && (topID == 0 || id < topID)) {
				topID, topRevenue = id, rev
			}
		}
		rows = append(rows, dto.ExecutiveWiseRow{
			ExecutiveName:     name,
			TotalSales:        a.count,
			TotalAmount:       a.amount,
			AverageOrderValue: avg,
			TotalQuantitySold: a.quantity,
			TopProduct:        names[topID],
			TopProductRevenue: topRevenue,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].TotalAmount.Equal(rows[j].TotalAmount) {
			return rows[i].TotalAmount.GreaterThan(rows[j].TotalAmount)
		}
		return rows[i].ExecutiveName < rows[j].ExecutiveName
	})

	total := len(rows)
	return Paginate(rows, q.Limit, q.Offset), total, nil
}

type salesBucket struct {
	key      string
	total    decimal.Decimal
	quantity decimal.Decimal
	count    int64
}

func (b salesBucket) avg() decimal.Decimal {
	if b.count == 0 {
		return decimal.Zero
	}
	return b.total.Div(decimal.NewFromInt(b.count))
}

// summarize agrupa ventas completas por la clave de fecha dada (mes o año).
func (uc *SalesReports) summarize(ctx context.Context, q dto.ReportQuery, layout string) (map[string]*salesBucket, error) {
	from, to, err := ParseWindow(q.StartDate, q.EndDate)
	if err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.ListWithItems(ctx, from, to)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*salesBucket)
	for _, s := range sales {
		key := s.SaleDate.Format(layout)
		b, ok := buckets[key]
		if !ok {
			b = &salesBucket{key: key}
			buckets[key] = b
		}
		for _, it := range s.Items {
			b.total = b.total.Add(it.Quantity.Mul(it.UnitPrice))
			b.quantity = b.quantity.Add(it.Quantity)
		}
		b.count++
	}
	return buckets, nil
}

func (uc *SalesReports) lookupNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	if len(ids) == 0 {
		return map[int64]string{}, nil
	}
	return uc.productRepo.NamesByIDs(ctx, ids)
}
