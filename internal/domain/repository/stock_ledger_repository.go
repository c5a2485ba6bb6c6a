package repository

import (
	"context"
	"time"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LedgerQuantity proyección mínima del ledger para sumar saldos en memoria.
type LedgerQuantity struct {
	ProductID       int64
	Quantity        decimal.Decimal
	TransactionDate time.Time
}

// StockLedgerRepository define el puerto para la tabla `stock_ledger` (append-only).
// resolveFromLedger del diseño: las filas devueltas son crudas; el corte temporal
// y la suma se aplican en memoria en stock.BalanceResolver.
type StockLedgerRepository interface {
	// Append inserta movimientos; el ledger nunca se actualiza ni se borra.
	Append(ctx context.Context, entries []*entity.StockLedgerEntry) error

	// List devuelve movimientos ordenados por fecha descendente, opcionalmente
	// filtrados por producto. limit acota el resultado.
	List(ctx context.Context, productID *int64, limit int) ([]*entity.StockLedgerEntry, error)

	// QuantitiesForProducts devuelve todas las cantidades con fecha de los
	// productos dados. Con ids vacío el caller NO debe invocar este método.
	QuantitiesForProducts(ctx context.Context, ids []int64) ([]LedgerQuantity, error)
}
