package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jhoicas/comercio-api/internal/application/dto"
)

// CSVDocument es un reporte listo para descargarse como adjunto.
type CSVDocument struct {
	Filename string
	Header   []string
	Records  [][]string
}

// Encode serializa el documento a CSV (RFC 4180, coma, header primero).
// Las filas llevan exactamente los mismos valores que la variante JSON.
func (d CSVDocument) Encode() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(d.Header); err != nil {
		return nil, fmt.Errorf("escribiendo encabezado csv: %w", err)
	}
	if err := w.WriteAll(d.Records); err != nil {
		return nil, fmt.Errorf("escribiendo filas csv: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("volcando csv: %w", err)
	}
	return buf.Bytes(), nil
}

// CurrentStockCSV arma la variante CSV del reporte de stock actual.
func CurrentStockCSV(rows []dto.CurrentStockRow) CSVDocument {
	doc := CSVDocument{
		Filename: "current_stock_report.csv",
		Header:   []string{"product_id", "product_name", "opening", "purchased", "sold", "closing"},
	}
	for _, r := range rows {
		doc.Records = append(doc.Records, []string{
			strconv.FormatInt(r.ProductID, 10), r.ProductName,
			r.Opening.String(), r.Purchased.String(), r.Sold.String(), r.Closing.String(),
		})
	}
	return doc
}

// MonthlyStockCSV arma la variante CSV del reporte mensual de stock.
func MonthlyStockCSV(rows []dto.MonthlyStockRow) CSVDocument {
	doc := CSVDocument{
		Filename: "monthly_stock_report.csv",
		Header:   []string{"product_id", "product_name", "opening", "closing"},
	}
	for _, r := range rows {
		doc.Records = append(doc.Records, []string{
			strconv.FormatInt(r.ProductID, 10), r.ProductName,
			r.Opening.String(), r.Closing.String(),
		})
	}
	return doc
}

// LowStockCSV arma la variante CSV de las alertas de stock bajo.
func LowStockCSV(rows []dto.LowStockAlertDTO) CSVDocument {
	doc := CSVDocument{
		Filename: "low_stock_report.csv",
		Header:   []string{"product_id", "product_name", "current_stock", "reorder_point", "shortage"},
	}
	for _, r := range rows {
		doc.Records = append(doc.Records, []string{
			strconv.FormatInt(r.ProductID, 10), r.ProductName,
			r.CurrentStock.String(), r.ReorderPoint.String(), r.Shortage.String(),
		})
	}
	return doc
}

// DeadStockCSV arma la variante CSV del reporte de stock muerto.
func DeadStockCSV(rows []dto.DeadStockRowDTO) CSVDocument {
	doc := CSVDocument{
		Filename: "dead_stock_report.csv",
		Header:   []string{"product_id", "product_name", "last_sold_date", "stock_remaining"},
	}
	for _, r := range rows {
		last := ""
		if r.LastSoldDate != nil {
			last = *r.LastSoldDate
		}
		doc.Records = append(doc.Records, []string{
			strconv.FormatInt(r.ProductID, 10), r.ProductName, last, r.StockRemaining.String(),
		})
	}
	return doc
}

// VendorWiseCSV arma la variante CSV del reporte por proveedor.
func VendorWiseCSV(rows []dto.VendorWiseRow) CSVDocument {
	doc := CSVDocument{
		Filename: "vendor_wise_report.csv",
		Header:   []string{"vendor", "total_purchase_value", "items_bought"},
	}
	for _, r := range rows {
		doc.Records = append(doc.Records, []string{
			r.Vendor, r.TotalPurchaseValue.String(), r.ItemsBought.String(),
		})
	}
	return doc
}

// MonthlyPurchaseCSV arma la variante CSV del resumen mensual de compras.
func MonthlyPurchaseCSV(rows []dto.MonthlyPurchaseRow) CSVDocument {
	doc := CSVDocument{
		Filename: "monthly_purchase_report.csv",
		Header:   []string{"month", "total_purchase", "items_bought", "avg_cost"},
	}
	for _, r := range rows {
		doc.Records = append(doc.Records, []string{
			r.Month, r.TotalPurchase.String(), r.ItemsBought.String(), r.AvgCost.String(),
		})
	}
	return doc
}

// PriceVariationCSV arma la variante CSV de variaciones de precio de compra.
func PriceVariationCSV(rows []dto.PriceVariationRow) CSVDocument {
	doc := CSVDocument{
		Filename: "price_variation_report.csv",
		Header:   []string{"product_id", "product_name", "min_price", "max_price", "avg_price"},
	}
	for _, r := range rows {
		doc.Records = append(doc.Records, []string{
			strconv.FormatInt(r.ProductID, 10), r.ProductName,
			r.MinPrice.String(), r.MaxPrice.String(), r.AvgPrice.String(),
		})
	}
	return doc
}

// ExecutiveWiseCSV arma la variante CSV del reporte por ejecutivo.
func ExecutiveWiseCSV(rows []dto.ExecutiveWiseRow) CSVDocument {
	doc := CSVDocument{
		Filename: "executive_wise_report.csv",
		Header: []string{
			"executive_name", "total_sales", "total_amount",
			"average_order_value", "total_quantity_sold", "top_product", "top_product_revenue",
		},
	}
	for _, r := range rows {
		doc.Records = append(doc.Records, []string{
			r.ExecutiveName, strconv.Itoa(r.TotalSales), r.TotalAmount.String(),
			r.AverageOrderValue.String(), r.TotalQuantitySold.String(),
			r.TopProduct, r.TopProductRevenue.String(),
		})
	}
	return doc
}
