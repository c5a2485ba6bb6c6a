package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del ledger.
const (
	LedgerTypePurchase   = "purchase"
	LedgerTypeSale       = "sale"
	LedgerTypeAdjustment = "adjustment"
	LedgerTypeReturnIn   = "return_in"
	LedgerTypeReturnOut  = "return_out"
)

// StockLedgerEntry es un movimiento de stock con signo: positivo entra, negativo sale.
// El ledger es append-only; una fila nunca se modifica ni se borra. La suma con signo
// de todas las filas de un producto hasta un instante T es el stock real en T.
type StockLedgerEntry struct {
	ID              int64
	ProductID       int64
	TransactionType string // purchase, sale, adjustment, return_in, return_out
	ReferenceID     string // id de la compra/venta origen, o uuid para ajustes manuales
	Quantity        decimal.Decimal
	TransactionDate time.Time // solo fecha
	Notes           string
	CreatedAt       time.Time
}
