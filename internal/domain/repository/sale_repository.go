package repository

import (
	"context"
	"time"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SaleItemRow renglón de venta aplanado con la fecha de su venta padre.
type SaleItemRow struct {
	SaleID    int64
	ProductID int64
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	SaleDate  time.Time
}

// SaleRepository define el puerto de persistencia para Sale (DIP).
// from/to acotan por sale_date inclusive; nil significa sin cota.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	ListWithItems(ctx context.Context, from, to *time.Time) ([]*entity.Sale, error)
	Delete(ctx context.Context, id int64) error

	ItemsInRange(ctx context.Context, from, to *time.Time) ([]SaleItemRow, error)
}
