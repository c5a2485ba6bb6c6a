package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/comercio-api/internal/application/usecase"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Documento y movimientos del ledger aterrizan juntos.
func (r *TxRunner) Run(ctx context.Context, fn func(
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
	ledgerRepo repository.StockLedgerRepository,
	stockRepo repository.StockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	purchaseRepo := NewPurchaseRepository(tx)
	saleRepo := NewSaleRepository(tx)
	ledgerRepo := NewStockLedgerRepository(tx)
	stockRepo := NewStockRepository(tx)

	if err := fn(purchaseRepo, saleRepo, ledgerRepo, stockRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
