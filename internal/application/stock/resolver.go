package stock

import (
	"context"
	"time"

	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// BalanceResolver calcula saldos de stock por producto a partir del ledger,
// con la tabla `stock` como caché opcional.
//
// Regla de precedencia: la caché solo vale para "stock actual sin corte".
// Cualquier consulta con corte temporal (apertura/cierre/as-of) la ignora y
// recalcula desde el ledger, porque la fila materializada solo representa "ahora".
type BalanceResolver struct {
	stockRepo  repository.StockRepository
	ledgerRepo repository.StockLedgerRepository
}

// NewBalanceResolver construye el resolver.
func NewBalanceResolver(stockRepo repository.StockRepository, ledgerRepo repository.StockLedgerRepository) *BalanceResolver {
	return &BalanceResolver{stockRepo: stockRepo, ledgerRepo: ledgerRepo}
}

// Current devuelve el stock actual de cada producto pedido. Prefiere la fila
// materializada cuando existe; los productos sin fila se resuelven sumando el
// ledger. Todo id consultado aparece en el resultado (0 si no tiene movimientos).
// Con ids vacío devuelve un mapa vacío sin tocar el almacén.
func (r *BalanceResolver) Current(ctx context.Context, ids []int64) (map[int64]decimal.Decimal, error) {
	result := make(map[int64]decimal.Decimal, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	cached, err := r.stockRepo.QuantitiesForProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	var missing []int64
	for _, id := range ids {
		if qty, ok := cached[id]; ok {
			result[id] = qty
		} else {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return result, nil
	}

	fromLedger, err := r.CurrentFromLedger(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, qty := range fromLedger {
		result[id] = qty
	}
	return result, nil
}

// CurrentFromLedger suma el ledger completo de cada producto, sin caché.
func (r *BalanceResolver) CurrentFromLedger(ctx context.Context, ids []int64) (map[int64]decimal.Decimal, error) {
	return r.sum(ctx, ids, nil)
}

// Opening devuelve el stock de apertura: suma de movimientos ESTRICTAMENTE
// anteriores a periodStart. El día frontera queda excluido.
func (r *BalanceResolver) Opening(ctx context.Context, ids []int64, periodStart time.Time) (map[int64]decimal.Decimal, error) {
	start := dateOnly(periodStart)
	include := func(d time.Time) bool { return dateOnly(d).Before(start) }
	return r.sum(ctx, ids, include)
}

// Closing devuelve el stock de cierre: suma de movimientos hasta periodEnd
// INCLUSIVE. El día frontera queda incluido completo.
func (r *BalanceResolver) Closing(ctx context.Context, ids []int64, periodEnd time.Time) (map[int64]decimal.Decimal, error) {
	end := dateOnly(periodEnd)
	include := func(d time.Time) bool { return !dateOnly(d).After(end) }
	return r.sum(ctx, ids, include)
}

// sum trae las cantidades crudas y agrega en memoria. include==nil suma todo.
func (r *BalanceResolver) sum(ctx context.Context, ids []int64, include func(time.Time) bool) (map[int64]decimal.Decimal, error) {
	result := make(map[int64]decimal.Decimal, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	for _, id := range ids {
		result[id] = decimal.Zero
	}

	rows, err := r.ledgerRepo.QuantitiesForProducts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if include != nil && !include(row.TransactionDate) {
			continue
		}
		// Suma con signo, sin redondeo. Una cantidad NULL llega como cero
		// desde el repositorio: una fila malformada no aborta el agregado.
		result[row.ProductID] = result[row.ProductID].Add(row.Quantity)
	}
	return result, nil
}

// MonthStart devuelve el primer día del mes en UTC.
func MonthStart(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd devuelve el último día del mes en UTC.
func MonthEnd(year, month int) time.Time {
	return MonthStart(year, month).AddDate(0, 1, -1)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
