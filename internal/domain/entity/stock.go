package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock fila materializada de stock disponible por producto.
// Es una caché de rendimiento: el ledger (StockLedgerEntry) es la fuente de verdad
// y esta tabla puede estar desactualizada o ausente. Solo es válida para consultas
// de stock actual sin corte temporal.
type Stock struct {
	ID             int64
	ProductID      int64
	AvailableStock decimal.Decimal
	LastUpdated    time.Time
}
