package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta con sus renglones y asigna los IDs generados.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (customer_name, invoice_number, sale_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		sale.CustomerName, sale.InvoiceNumber, sale.SaleDate, sale.Notes, sale.CreatedAt,
	).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	itemQuery := `
		INSERT INTO sale_items (sale_id, product_id, product_name, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	for i := range sale.Items {
		it := &sale.Items[i]
		it.SaleID = sale.ID
		if err := r.q.QueryRow(ctx, itemQuery,
			it.SaleID, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice,
		).Scan(&it.ID); err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus renglones. Devuelve nil si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	query := `
		SELECT id, customer_name, invoice_number, sale_date, notes, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.CustomerName, &s.InvoiceNumber, &s.SaleDate, &s.Notes, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.itemsBySale(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	s.Items = items[id]
	return &s, nil
}

// ListWithItems lista ventas con renglones, acotadas por sale_date inclusive
// cuando from/to no son nil. Orden: fecha descendente.
func (r *SaleRepo) ListWithItems(ctx context.Context, from, to *time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT id, customer_name, invoice_number, sale_date, notes, created_at
		FROM sales
		WHERE ($1::date IS NULL OR sale_date >= $1)
		  AND ($2::date IS NULL OR sale_date <= $2)
		ORDER BY sale_date DESC, id DESC`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	var ids []int64
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.CustomerName, &s.InvoiceNumber, &s.SaleDate, &s.Notes, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	items, err := r.itemsBySale(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		s.Items = items[s.ID]
	}
	return list, nil
}

// Delete elimina la venta y sus renglones.
func (r *SaleRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, id); err != nil {
		return fmt.Errorf("delete sale items: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// ItemsInRange devuelve renglones aplanados con la fecha de su venta padre,
// acotados por sale_date inclusive.
func (r *SaleRepo) ItemsInRange(ctx context.Context, from, to *time.Time) ([]repository.SaleItemRow, error) {
	query := `
		SELECT i.sale_id, i.product_id, i.quantity, i.unit_price, s.sale_date
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		WHERE ($1::date IS NULL OR s.sale_date >= $1)
		  AND ($2::date IS NULL OR s.sale_date <= $2)`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("sale items in range: %w", err)
	}
	defer rows.Close()
	var list []repository.SaleItemRow
	for rows.Next() {
		var row repository.SaleItemRow
		if err := rows.Scan(&row.SaleID, &row.ProductID, &row.Quantity, &row.UnitPrice, &row.SaleDate); err != nil {
			return nil, fmt.Errorf("scan sale item row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func (r *SaleRepo) itemsBySale(ctx context.Context, ids []int64) (map[int64][]entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, product_name, quantity, unit_price
		FROM sale_items WHERE sale_id = ANY($1) ORDER BY id`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("sale items: %w", err)
	}
	defer rows.Close()
	result := make(map[int64][]entity.SaleItem, len(ids))
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		result[it.SaleID] = append(result[it.SaleID], it)
	}
	return result, rows.Err()
}
