package stock

import (
	"context"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// SnapshotUseCase fija el stock materializado de un producto (carga inicial de
// inventario). El upsert es idempotente: mismo producto y cantidad producen la
// misma fila final; la acción reporta created en la primera llamada y updated
// en las siguientes.
type SnapshotUseCase struct {
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
}

// NewSnapshotUseCase construye el caso de uso.
func NewSnapshotUseCase(stockRepo repository.StockRepository, productRepo repository.ProductRepository) *SnapshotUseCase {
	return &SnapshotUseCase{stockRepo: stockRepo, productRepo: productRepo}
}

// Initialize valida el producto y hace el upsert de su fila de stock.
func (uc *SnapshotUseCase) Initialize(ctx context.Context, productID int64, quantity decimal.Decimal) (*dto.InitializeStockResult, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	action, row, err := uc.stockRepo.Upsert(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}

	name := product.Name
	updated := row.LastUpdated
	return &dto.InitializeStockResult{
		Action: action,
		Stock: dto.StockRowDTO{
			ID:             row.ID,
			ProductID:      row.ProductID,
			AvailableStock: row.AvailableStock,
			LastUpdated:    &updated,
			ProductName:    &name,
		},
	}, nil
}
