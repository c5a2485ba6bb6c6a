package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa una orden de compra a un proveedor, con sus renglones.
type Purchase struct {
	ID            int64
	VendorName    string
	InvoiceNumber string
	PurchaseDate  time.Time // solo fecha; la hora se ignora
	Notes         string
	Items         []PurchaseItem
	CreatedAt     time.Time
}

// PurchaseItem renglón de una compra.
type PurchaseItem struct {
	ID          int64
	PurchaseID  int64
	ProductID   int64
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}
