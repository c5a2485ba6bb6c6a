package stock

import (
	"context"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// Límites del listado del ledger.
const (
	LedgerDefaultLimit = 200
	LedgerMaxLimit     = 500
)

// QueryUseCase lecturas de stock y ledger para la superficie HTTP.
type QueryUseCase struct {
	stockRepo   repository.StockRepository
	ledgerRepo  repository.StockLedgerRepository
	productRepo repository.ProductRepository
	resolver    *BalanceResolver
}

// NewQueryUseCase construye el caso de uso de consultas.
func NewQueryUseCase(
	stockRepo repository.StockRepository,
	ledgerRepo repository.StockLedgerRepository,
	productRepo repository.ProductRepository,
	resolver *BalanceResolver,
) *QueryUseCase {
	return &QueryUseCase{
		stockRepo:   stockRepo,
		ledgerRepo:  ledgerRepo,
		productRepo: productRepo,
		resolver:    resolver,
	}
}

// ListStock devuelve todas las filas materializadas con nombre de producto.
func (uc *QueryUseCase) ListStock(ctx context.Context) ([]dto.StockRowDTO, error) {
	rows, err := uc.stockRepo.ListWithProduct(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockRowDTO, 0, len(rows))
	for _, r := range rows {
		updated := r.LastUpdated
		name := r.ProductName
		out = append(out, dto.StockRowDTO{
			ID:             r.ID,
			ProductID:      r.ProductID,
			AvailableStock: r.AvailableStock,
			LastUpdated:    &updated,
			ProductName:    &name,
		})
	}
	return out, nil
}

// ProductStock devuelve el stock actual de un producto. Prefiere la fila
// materializada; sin ella el saldo sale del ledger y last_updated queda null.
func (uc *QueryUseCase) ProductStock(ctx context.Context, productID int64) (*dto.ProductStockDTO, error) {
	out := &dto.ProductStockDTO{ProductID: productID}

	if product, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	} else if product != nil {
		name := product.Name
		out.ProductName = &name
	}

	row, err := uc.stockRepo.GetByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if row != nil {
		updated := row.LastUpdated
		out.AvailableStock = row.AvailableStock
		out.LastUpdated = &updated
		return out, nil
	}

	balances, err := uc.resolver.CurrentFromLedger(ctx, []int64{productID})
	if err != nil {
		return nil, err
	}
	out.AvailableStock = balances[productID]
	return out, nil
}

// Balance devuelve el saldo actual de un producto (caché primero, ledger después).
func (uc *QueryUseCase) Balance(ctx context.Context, productID int64) (*dto.BalanceDTO, error) {
	balances, err := uc.resolver.Current(ctx, []int64{productID})
	if err != nil {
		return nil, err
	}
	return &dto.BalanceDTO{ProductID: productID, BalanceQuantity: balances[productID]}, nil
}

// OpeningStock suma el ledger estrictamente antes del primer día del mes.
func (uc *QueryUseCase) OpeningStock(ctx context.Context, productID int64, year, month int) (*dto.OpeningStockDTO, error) {
	balances, err := uc.resolver.Opening(ctx, []int64{productID}, MonthStart(year, month))
	if err != nil {
		return nil, err
	}
	return &dto.OpeningStockDTO{
		ProductID:    productID,
		Year:         year,
		Month:        month,
		OpeningStock: balances[productID],
	}, nil
}

// ClosingStock suma el ledger hasta el último día del mes inclusive.
func (uc *QueryUseCase) ClosingStock(ctx context.Context, productID int64, year, month int) (*dto.ClosingStockDTO, error) {
	balances, err := uc.resolver.Closing(ctx, []int64{productID}, MonthEnd(year, month))
	if err != nil {
		return nil, err
	}
	return &dto.ClosingStockDTO{
		ProductID:    productID,
		Year:         year,
		Month:        month,
		ClosingStock: balances[productID],
	}, nil
}

// Ledger lista movimientos del más reciente al más antiguo. limit se acota a
// LedgerMaxLimit; cero o negativo usa LedgerDefaultLimit.
func (uc *QueryUseCase) Ledger(ctx context.Context, productID *int64, limit int) ([]dto.LedgerEntryDTO, error) {
	if limit <= 0 {
		limit = LedgerDefaultLimit
	}
	if limit > LedgerMaxLimit {
		limit = LedgerMaxLimit
	}

	entries, err := uc.ledgerRepo.List(ctx, productID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LedgerEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.LedgerEntryDTO{
			ID:              e.ID,
			ProductID:       e.ProductID,
			TransactionType: e.TransactionType,
			ReferenceID:     e.ReferenceID,
			Quantity:        e.Quantity,
			TransactionDate: e.TransactionDate.Format("2006-01-02"),
			Notes:           e.Notes,
			CreatedAt:       e.CreatedAt,
		})
	}
	return out, nil
}
