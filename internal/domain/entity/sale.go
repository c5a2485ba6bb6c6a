package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta, con sus renglones.
// CustomerName identifica al ejecutivo/cliente para el reporte executive-wise.
type Sale struct {
	ID            int64
	CustomerName  string
	InvoiceNumber string
	SaleDate      time.Time // solo fecha
	Notes         string
	Items         []SaleItem
	CreatedAt     time.Time
}

// SaleItem renglón de una venta.
type SaleItem struct {
	ID          int64
	SaleID      int64
	ProductID   int64
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}
