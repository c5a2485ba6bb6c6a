package usecase

import (
	"context"

	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma transacción.
// El commit ocurre solo si fn devuelve nil; cualquier error hace rollback
// completo, de modo que documento y movimientos del ledger aterrizan juntos o
// no aterrizan.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
		ledgerRepo repository.StockLedgerRepository,
		stockRepo repository.StockRepository,
	) error) error
}
