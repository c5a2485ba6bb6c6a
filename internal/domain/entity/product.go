package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// ReorderPoint es opcional: nil significa que el producto no genera alertas de stock bajo.
type Product struct {
	ID           int64
	Name         string
	QuantityUnit string // descriptor de unidad, ej. "kg", "caja x12"
	PricePerUnit decimal.Decimal
	ReorderPoint *decimal.Decimal // nunca negativo cuando está presente
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
