package repository

import (
	"context"
	"time"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PurchaseItemRow renglón de compra aplanado con la fecha de su compra padre,
// insumo crudo de los reportes de precios.
type PurchaseItemRow struct {
	PurchaseID   int64
	ProductID    int64
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	PurchaseDate time.Time
}

// PurchaseRepository define el puerto de persistencia para Purchase (DIP).
// from/to acotan por purchase_date inclusive; nil significa sin cota.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, id int64) (*entity.Purchase, error)
	ListWithItems(ctx context.Context, from, to *time.Time) ([]*entity.Purchase, error)
	Update(ctx context.Context, purchase *entity.Purchase) error
	Delete(ctx context.Context, id int64) error

	ItemsInRange(ctx context.Context, from, to *time.Time) ([]PurchaseItemRow, error)
}
