package dto

import "github.com/shopspring/decimal"

// CurrentStockRow fila del reporte de stock actual por producto.
// closing = opening + purchased - sold dentro de la ventana.
type CurrentStockRow struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Opening     decimal.Decimal `json:"opening"`
	Purchased   decimal.Decimal `json:"purchased"`
	Sold        decimal.Decimal `json:"sold"`
	Closing     decimal.Decimal `json:"closing"`
}

// MonthlyStockRow apertura/cierre de un producto para un mes dado.
type MonthlyStockRow struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Opening     decimal.Decimal `json:"opening"`
	Closing     decimal.Decimal `json:"closing"`
}

// VendorWiseRow compras agrupadas por proveedor.
type VendorWiseRow struct {
	Vendor             string          `json:"vendor"`
	TotalPurchaseValue decimal.Decimal `json:"total_purchase_value"`
	ItemsBought        decimal.Decimal `json:"items_bought"`
}

// MonthlyPurchaseRow resumen mensual de compras. AvgCost = total / nº de compras.
type MonthlyPurchaseRow struct {
	Month         string          `json:"month"` // YYYY-MM
	TotalPurchase decimal.Decimal `json:"total_purchase"`
	ItemsBought   decimal.Decimal `json:"items_bought"`
	AvgCost       decimal.Decimal `json:"avg_cost"`
}

// PriceVariationRow min/max/promedio del precio unitario de compra por producto.
type PriceVariationRow struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	MinPrice    decimal.Decimal `json:"min_price"`
	MaxPrice    decimal.Decimal `json:"max_price"`
	AvgPrice    decimal.Decimal `json:"avg_price"`
}

// ProductWiseSalesRow ventas agrupadas por producto.
type ProductWiseSalesRow struct {
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name,omitempty"`
	QuantitySold decimal.Decimal `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// TopSellingRow producto más vendido por cantidad.
type TopSellingRow struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	QtySold     decimal.Decimal `json:"qty_sold"`
}

// MonthlySalesRow resumen mensual de ventas. AvgSaleValue = total / nº de ventas.
type MonthlySalesRow struct {
	Month             string          `json:"month"` // YYYY-MM
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalQuantitySold decimal.Decimal `json:"total_quantity_sold"`
	AvgSaleValue      decimal.Decimal `json:"avg_sale_value"`
}

// YearlySalesRow resumen anual de ventas.
type YearlySalesRow struct {
	Year              string          `json:"year"` // YYYY
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalQuantitySold decimal.Decimal `json:"total_quantity_sold"`
	AvgSaleValue      decimal.Decimal `json:"avg_sale_value"`
}

// ExecutiveWiseRow ventas agrupadas por ejecutivo (customer_name).
type ExecutiveWiseRow struct {
	ExecutiveName     string          `json:"executive_name"`
	TotalSales        int             `json:"total_sales"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	TotalQuantitySold decimal.Decimal `json:"total_quantity_sold"`
	TopProduct        string          `json:"top_product"`
	TopProductRevenue decimal.Decimal `json:"top_product_revenue"`
}

// KPIValue valor puntual de un indicador del dashboard.
type KPIValue struct {
	Value decimal.Decimal `json:"value"`
}

// KPIsDTO indicadores del dashboard.
type KPIsDTO struct {
	TodaysSales          KPIValue `json:"todays_sales"`
	MonthRevenue         KPIValue `json:"month_revenue"`
	LowStockCount        KPIValue `json:"low_stock_count"`
	BestSellingProductID *int64   `json:"best_selling_product_id"`
	BestSellingProduct   *string  `json:"best_selling_product"`
}
