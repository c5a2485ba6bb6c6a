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

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la compra con sus renglones y asigna los IDs generados.
func (r *PurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (vendor_name, invoice_number, purchase_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		purchase.VendorName, purchase.InvoiceNumber, purchase.PurchaseDate,
		purchase.Notes, purchase.CreatedAt,
	).Scan(&purchase.ID)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}

	itemQuery := `
		INSERT INTO purchase_items (purchase_id, product_id, product_name, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	for i := range purchase.Items {
		it := &purchase.Items[i]
		it.PurchaseID = purchase.ID
		if err := r.q.QueryRow(ctx, itemQuery,
			it.PurchaseID, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice,
		).Scan(&it.ID); err != nil {
			return fmt.Errorf("insert purchase item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una compra con sus renglones. Devuelve nil si no existe.
func (r *PurchaseRepo) GetByID(ctx context.Context, id int64) (*entity.Purchase, error) {
	query := `
		SELECT id, vendor_name, invoice_number, purchase_date, notes, created_at
		FROM purchases WHERE id = $1`
	var p entity.Purchase
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.VendorName, &p.InvoiceNumber, &p.PurchaseDate, &p.Notes, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	items, err := r.itemsByPurchase(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	p.Items = items[id]
	return &p, nil
}

// ListWithItems lista compras con renglones, acotadas por purchase_date
// inclusive cuando from/to no son nil. Orden: fecha descendente.
func (r *PurchaseRepo) ListWithItems(ctx context.Context, from, to *time.Time) ([]*entity.Purchase, error) {
	query := `
		SELECT id, vendor_name, invoice_number, purchase_date, notes, created_at
		FROM purchases
		WHERE ($1::date IS NULL OR purchase_date >= $1)
		  AND ($2::date IS NULL OR purchase_date <= $2)
		ORDER BY purchase_date DESC, id DESC`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var list []*entity.Purchase
	var ids []int64
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.VendorName, &p.InvoiceNumber, &p.PurchaseDate, &p.Notes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	items, err := r.itemsByPurchase(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		p.Items = items[p.ID]
	}
	return list, nil
}

// Update actualiza el encabezado de la compra. Los renglones no se tocan.
func (r *PurchaseRepo) Update(ctx context.Context, purchase *entity.Purchase) error {
	query := `
		UPDATE purchases SET vendor_name = $2, invoice_number = $3, purchase_date = $4, notes = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		purchase.ID, purchase.VendorName, purchase.InvoiceNumber, purchase.PurchaseDate, purchase.Notes,
	)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	return nil
}

// Delete elimina la compra y sus renglones.
func (r *PurchaseRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM purchase_items WHERE purchase_id = $1`, id); err != nil {
		return fmt.Errorf("delete purchase items: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	return nil
}

// ItemsInRange devuelve renglones aplanados con la fecha de su compra padre,
// acotados por purchase_date inclusive.
func (r *PurchaseRepo) ItemsInRange(ctx context.Context, from, to *time.Time) ([]repository.PurchaseItemRow, error) {
	query := `
		SELECT i.purchase_id, i.product_id, i.quantity, i.unit_price, p.purchase_date
		FROM purchase_items i
		JOIN purchases p ON p.id = i.purchase_id
		WHERE ($1::date IS NULL OR p.purchase_date >= $1)
		  AND ($2::date IS NULL OR p.purchase_date <= $2)`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("purchase items in range: %w", err)
	}
	defer rows.Close()
	var list []repository.PurchaseItemRow
	for rows.Next() {
		var row repository.PurchaseItemRow
		if err := rows.Scan(&row.PurchaseID, &row.ProductID, &row.Quantity, &row.UnitPrice, &row.PurchaseDate); err != nil {
			return nil, fmt.Errorf("scan purchase item row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func (r *PurchaseRepo) itemsByPurchase(ctx context.Context, ids []int64) (map[int64][]entity.PurchaseItem, error) {
	query := `
		SELECT id, purchase_id, product_id, product_name, quantity, unit_price
		FROM purchase_items WHERE purchase_id = ANY($1) ORDER BY id`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("purchase items: %w", err)
	}
	defer rows.Close()
	result := make(map[int64][]entity.PurchaseItem, len(ids))
	for rows.Next() {
		var it entity.PurchaseItem
		if err := rows.Scan(&it.ID, &it.PurchaseID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		result[it.PurchaseID] = append(result[it.PurchaseID], it)
	}
	return result, rows.Err()
}
