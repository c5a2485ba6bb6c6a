package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ repository.StockLedgerRepository = (*StockLedgerRepo)(nil)

// StockLedgerRepo implementación de StockLedgerRepository sobre PostgreSQL
// (usable con pool o tx). La tabla es append-only: solo INSERT y SELECT.
type StockLedgerRepo struct {
	q Querier
}

// NewStockLedgerRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewStockLedgerRepository(q Querier) *StockLedgerRepo {
	return &StockLedgerRepo{q: q}
}

// Append inserta movimientos y asigna ID y created_at generados.
func (r *StockLedgerRepo) Append(ctx context.Context, entries []*entity.StockLedgerEntry) error {
	query := `
		INSERT INTO stock_ledger (product_id, transaction_type, reference_id, quantity, transaction_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	for _, e := range entries {
		if err := r.q.QueryRow(ctx, query,
			e.ProductID, e.TransactionType, e.ReferenceID, e.Quantity, e.TransactionDate, e.Notes,
		).Scan(&e.ID, &e.CreatedAt); err != nil {
			return fmt.Errorf("append ledger entry: %w", err)
		}
	}
	return nil
}

// List devuelve movimientos del más reciente al más antiguo, opcionalmente
// filtrados por producto.
func (r *StockLedgerRepo) List(ctx context.Context, productID *int64, limit int) ([]*entity.StockLedgerEntry, error) {
	query := `
		SELECT id, product_id, transaction_type, reference_id, COALESCE(quantity, 0), transaction_date, notes, created_at
		FROM stock_ledger
		WHERE ($1::bigint IS NULL OR product_id = $1)
		ORDER BY transaction_date DESC, id DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLedgerEntry
	for rows.Next() {
		var e entity.StockLedgerEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.TransactionType, &e.ReferenceID,
			&e.Quantity, &e.TransactionDate, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// QuantitiesForProducts devuelve las cantidades crudas con fecha de los
// productos dados. Cantidad NULL sale como cero: una fila malformada no
// aborta el agregado.
func (r *StockLedgerRepo) QuantitiesForProducts(ctx context.Context, ids []int64) ([]repository.LedgerQuantity, error) {
	query := `
		SELECT product_id, COALESCE(quantity, 0), transaction_date
		FROM stock_ledger WHERE product_id = ANY($1)`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("ledger quantities: %w", err)
	}
	defer rows.Close()
	var list []repository.LedgerQuantity
	for rows.Next() {
		var lq repository.LedgerQuantity
		if err := rows.Scan(&lq.ProductID, &lq.Quantity, &lq.TransactionDate); err != nil {
			return nil, fmt.Errorf("scan ledger quantity: %w", err)
		}
		list = append(list, lq)
	}
	return list, rows.Err()
}
