package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Productos ─────────────────────────────────────────────────────────────────

// ProductRequest body de creación/actualización de producto.
type ProductRequest struct {
	Name         string           `json:"name"`
	QuantityUnit string           `json:"quantity_with_unit"`
	PricePerUnit decimal.Decimal  `json:"price_per_unit"`
	ReorderPoint *decimal.Decimal `json:"reorder_point,omitempty"`
}

// ProductDTO representación de un producto en respuestas.
type ProductDTO struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	QuantityUnit string           `json:"quantity_with_unit"`
	PricePerUnit decimal.Decimal  `json:"price_per_unit"`
	ReorderPoint *decimal.Decimal `json:"reorder_point"`
}

// ── Empleados ─────────────────────────────────────────────────────────────────

// EmployeeRequest body de creación/actualización de empleado.
type EmployeeRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Department  string `json:"department"`
	Contact     string `json:"contact"`
	JoiningDate string `json:"joining_date"` // YYYY-MM-DD
}

// EmployeeDTO representación de un empleado en respuestas.
type EmployeeDTO struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Department  string `json:"department"`
	Contact     string `json:"contact"`
	JoiningDate string `json:"joining_date"`
	PhotoFileID string `json:"photo_file_id,omitempty"`
}

// ── Compras y ventas ──────────────────────────────────────────────────────────

// OrderItemRequest renglón de una compra o venta entrante.
// UnitPrice nil usa el precio vigente del producto.
type OrderItemRequest struct {
	ProductID int64            `json:"product_id"`
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// PurchaseRequest body de POST /purchases.
type PurchaseRequest struct {
	VendorName    string             `json:"vendor_name"`
	InvoiceNumber string             `json:"invoice_number"`
	PurchaseDate  string             `json:"purchase_date"` // YYYY-MM-DD
	Notes         string             `json:"notes,omitempty"`
	Items         []OrderItemRequest `json:"items"`
}

// SaleRequest body de POST /sales.
type SaleRequest struct {
	CustomerName  string             `json:"customer_name"`
	InvoiceNumber string             `json:"invoice_number"`
	SaleDate      string             `json:"sale_date"` // YYYY-MM-DD
	Notes         string             `json:"notes,omitempty"`
	Items         []OrderItemRequest `json:"items"`
}

// OrderItemDTO renglón en respuestas de compras/ventas.
type OrderItemDTO struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// PurchaseDTO compra con renglones.
type PurchaseDTO struct {
	ID            int64           `json:"id"`
	VendorName    string          `json:"vendor_name"`
	InvoiceNumber string          `json:"invoice_number"`
	PurchaseDate  string          `json:"purchase_date"`
	Notes         string          `json:"notes,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Items         []OrderItemDTO  `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SaleDTO venta con renglones.
type SaleDTO struct {
	ID            int64           `json:"id"`
	CustomerName  string          `json:"customer_name"`
	InvoiceNumber string          `json:"invoice_number"`
	SaleDate      string          `json:"sale_date"`
	Notes         string          `json:"notes,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Items         []OrderItemDTO  `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
}
