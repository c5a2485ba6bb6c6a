package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// La tabla `stock` es una caché materializada; el ledger es la fuente de verdad.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// ListWithProduct lista todas las filas de stock con el nombre del producto.
func (r *StockRepo) ListWithProduct(ctx context.Context) ([]repository.StockRow, error) {
	query := `
		SELECT s.id, s.product_id, s.available_stock, s.last_updated, p.name
		FROM stock s
		JOIN products p ON p.id = s.product_id
		ORDER BY s.product_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []repository.StockRow
	for rows.Next() {
		var row repository.StockRow
		if err := rows.Scan(&row.ID, &row.ProductID, &row.AvailableStock, &row.LastUpdated, &row.ProductName); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetByProduct obtiene la fila de stock de un producto. Devuelve nil si no existe.
func (r *StockRepo) GetByProduct(ctx context.Context, productID int64) (*entity.Stock, error) {
	query := `
		SELECT id, product_id, available_stock, last_updated
		FROM stock WHERE product_id = $1`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, productID).Scan(&s.ID, &s.ProductID, &s.AvailableStock, &s.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// QuantitiesForProducts devuelve producto → stock disponible SOLO para los
// productos con fila materializada. El mapa es parcial a propósito: los ids
// ausentes se resuelven desde el ledger.
func (r *StockRepo) QuantitiesForProducts(ctx context.Context, ids []int64) (map[int64]decimal.Decimal, error) {
	result := make(map[int64]decimal.Decimal, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	query := `SELECT product_id, available_stock FROM stock WHERE product_id = ANY($1)`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("stock quantities: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		var qty decimal.Decimal
		if err := rows.Scan(&id, &qty); err != nil {
			return nil, fmt.Errorf("scan stock quantity: %w", err)
		}
		result[id] = qty
	}
	return result, rows.Err()
}

// Upsert fija el stock disponible de un producto. xmax = 0 distingue inserción
// de actualización en la misma sentencia.
func (r *StockRepo) Upsert(ctx context.Context, productID int64, quantity decimal.Decimal) (string, *entity.Stock, error) {
	query := `
		INSERT INTO stock (product_id, available_stock, last_updated)
		VALUES ($1, $2, now())
		ON CONFLICT (product_id)
		DO UPDATE SET available_stock = EXCLUDED.available_stock, last_updated = now()
		RETURNING id, product_id, available_stock, last_updated, (xmax = 0) AS inserted`
	var s entity.Stock
	var inserted bool
	err := r.q.QueryRow(ctx, query, productID, quantity).Scan(
		&s.ID, &s.ProductID, &s.AvailableStock, &s.LastUpdated, &inserted,
	)
	if err != nil {
		return "", nil, fmt.Errorf("upsert stock: %w", err)
	}
	action := repository.StockActionUpdated
	if inserted {
		action = repository.StockActionCreated
	}
	return action, &s, nil
}

// ApplyDelta suma delta a la fila materializada. Sin fila es un no-op.
func (r *StockRepo) ApplyDelta(ctx context.Context, productID int64, delta decimal.Decimal) error {
	query := `
		UPDATE stock SET available_stock = available_stock + $2, last_updated = now()
		WHERE product_id = $1`
	if _, err := r.q.Exec(ctx, query, productID, delta); err != nil {
		return fmt.Errorf("apply stock delta: %w", err)
	}
	return nil
}
