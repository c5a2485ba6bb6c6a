package repository

import (
	"context"
	"time"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Acciones posibles de un upsert de stock.
const (
	StockActionCreated = "created"
	StockActionUpdated = "updated"
)

// StockRow fila de stock materializado enriquecida con el nombre del producto.
type StockRow struct {
	ID             int64
	ProductID      int64
	AvailableStock decimal.Decimal
	LastUpdated    time.Time
	ProductName    string
}

// StockRepository define el puerto para la tabla `stock` (caché materializada).
// resolveFromCache del diseño: el mapeo devuelto por QuantitiesForProducts es
// PARCIAL — solo productos con fila materializada. El ledger sigue siendo la
// fuente de verdad; ver stock.BalanceResolver para la regla de precedencia.
type StockRepository interface {
	ListWithProduct(ctx context.Context) ([]StockRow, error)
	GetByProduct(ctx context.Context, productID int64) (*entity.Stock, error)
	QuantitiesForProducts(ctx context.Context, ids []int64) (map[int64]decimal.Decimal, error)

	// Upsert fija el stock disponible de un producto y devuelve la acción
	// realizada (created|updated). Idempotente bajo reintento.
	Upsert(ctx context.Context, productID int64, quantity decimal.Decimal) (string, *entity.Stock, error)

	// ApplyDelta suma delta (con signo) a la fila materializada del producto.
	// Si el producto no tiene fila es un no-op: la caché solo se mantiene
	// coherente donde existe, el ledger sigue mandando.
	ApplyDelta(ctx context.Context, productID int64, delta decimal.Decimal) error
}
