package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRowDTO fila de GET /stock (stock materializado con nombre de producto).
type StockRowDTO struct {
	ID             int64           `json:"id"`
	ProductID      int64           `json:"product_id"`
	AvailableStock decimal.Decimal `json:"available_stock"`
	LastUpdated    *time.Time      `json:"last_updated"`
	ProductName    *string         `json:"product_name"`
}

// ProductStockDTO respuesta de GET /stock/:id. Si no hay fila materializada el
// saldo sale del ledger y LastUpdated queda en null.
type ProductStockDTO struct {
	ProductID      int64           `json:"product_id"`
	AvailableStock decimal.Decimal `json:"available_stock"`
	LastUpdated    *time.Time      `json:"last_updated"`
	ProductName    *string         `json:"product_name"`
}

// BalanceDTO respuesta de GET /stock-ledger/:id/balance.
type BalanceDTO struct {
	ProductID       int64           `json:"product_id"`
	BalanceQuantity decimal.Decimal `json:"balance_quantity"`
}

// OpeningStockDTO respuesta de GET /stock-ledger/:id/opening/:year/:month.
type OpeningStockDTO struct {
	ProductID    int64           `json:"product_id"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	OpeningStock decimal.Decimal `json:"opening_stock"`
}

// ClosingStockDTO respuesta de GET /stock-ledger/:id/closing/:year/:month.
type ClosingStockDTO struct {
	ProductID    int64           `json:"product_id"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	ClosingStock decimal.Decimal `json:"closing_stock"`
}

// LedgerEntryDTO fila cruda de GET /stock-ledger.
type LedgerEntryDTO struct {
	ID              int64           `json:"id"`
	ProductID       int64           `json:"product_id"`
	TransactionType string          `json:"transaction_type"`
	ReferenceID     string          `json:"reference_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	TransactionDate string          `json:"transaction_date"` // YYYY-MM-DD
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// InitializeStockRequest body de POST /stock/initialize.
type InitializeStockRequest struct {
	ProductID int64            `json:"product_id"`
	Quantity  *decimal.Decimal `json:"quantity"`
}

// InitializeStockResult resultado del upsert de stock.
type InitializeStockResult struct {
	Action string      `json:"action"` // created | updated
	Stock  StockRowDTO `json:"stock"`
}

// AdjustStockRequest body de POST /stock-ledger (ajuste manual).
// Quantity lleva signo: positivo entra mercancía, negativo sale.
type AdjustStockRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Date      string          `json:"date,omitempty"` // YYYY-MM-DD, default hoy
	Notes     string          `json:"notes,omitempty"`
}

// LowStockAlertDTO producto por debajo de su punto de reorden.
type LowStockAlertDTO struct {
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	ReorderPoint decimal.Decimal `json:"reorder_point"`
	Shortage     decimal.Decimal `json:"shortage"`
}

// DeadStockRowDTO producto sin ventas recientes.
type DeadStockRowDTO struct {
	ProductID      int64           `json:"product_id"`
	ProductName    string          `json:"product_name"`
	LastSoldDate   *string         `json:"last_sold_date"` // YYYY-MM-DD, null si nunca vendió
	StockRemaining decimal.Decimal `json:"stock_remaining"`
}
