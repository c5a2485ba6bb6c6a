package report

import (
	"context"
	"fmt"
	"testing"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductWiseOrdenaPorCantidadYEnriqueceNombres(t *testing.T) {
	sales := &fakeSaleRepo{}
	sales.sales = append(sales.sales,
		saleOn(1, "Ana", "2024-01-10", sItem(1, "5", "10"), sItem(2, "20", "1")),
		saleOn(2, "Ana", "2024-01-12", sItem(1, "3", "10")),
	)
	products := newFakeProductRepo()
	products.add(1, "Arroz")
	products.add(2, "Azúcar")

	uc := NewSalesReports(sales, products)
	rows, total, err := uc.ProductWise(context.Background(), dto.ReportQuery{})
	require.NoError(t, err)

	assert.Equal(t, 2, total)
	require.Len(t, rows, 2)
	assert.Equal(t, "Azúcar", rows[0].ProductName, "mayor cantidad vendida va primero")
	assert.True(t, rows[0].QuantitySold.Equal(dec("20")))
	assert.True(t, rows[1].QuantitySold.Equal(dec("8")))
	assert.True(t, rows[1].Revenue.Equal(dec("80")))
}

func TestTopSellingUsaElLimiteDefault(t *testing.T) {
	sales := &fakeSaleRepo{}
	// 15 productos, cantidades crecientes para un ranking determinista.
	for i := 1; i <= 15; i++ {
		sales.sales = append(sales.sales,
			saleOn(int64(i), "Ana", "2024-01-10", sItem(int64(i), fmt.Sprintf("%d", i), "1")),
		)
	}

	uc := NewSalesReports(sales, newFakeProductRepo())
	rows, total, err := uc.TopSelling(context.Background(), dto.ReportQuery{})
	require.NoError(t, err)

	assert.Equal(t, 15, total, "count cubre todos los grupos, no solo la página")
	require.Len(t, rows, TopSellingDefaultLimit)
	assert.Equal(t, int64(15), rows[0].ProductID)
	assert.True(t, rows[0].QtySold.Equal(dec("15")))
	assert.Equal(t, int64(6), rows[9].ProductID)
}

func TestTopSellingDesempataPorIdAscendente(t *testing.T) {
	sales := &fakeSaleRepo{}
	sales.sales = append(sales.sales,
		saleOn(1, "Ana", "2024-01-10", sItem(7, "5", "1"), sItem(3, "5", "1")),
	)

	uc := NewSalesReports(sales, newFakeProductRepo())
	rows, _, err := uc.TopSelling(context.Background(), dto.ReportQuery{})
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, int64(3), rows[0].ProductID)
	assert.Equal(t, int64(7), rows[1].ProductID)
}

func TestMonthlyYYearlySalesAgrupanPorClave(t *testing.T) {
	sales := &fakeSaleRepo{}
	sales.sales = append(sales.sales,
		saleOn(1, "Ana", "2023-12-20", sItem(1, "1", "100")),
		saleOn(2, "Ana", "2024-01-05", sItem(1, "2", "30")),
		saleOn(3, "Ana", "2024-01-25", sItem(1, "1", "40")),
	)

	uc := NewSalesReports(sales, newFakeProductRepo())
	ctx := context.Background()

	monthly, total, err := uc.MonthlySummary(ctx, dto.ReportQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, monthly, 2)
	assert.Equal(t, "2024-01", monthly[0].Month)
	assert.True(t, monthly[0].TotalSales.Equal(dec("100")))
	assert.True(t, monthly[0].TotalQuantitySold.Equal(dec("3")))
	assert.True(t, monthly[0].AvgSaleValue.Equal(dec("50")), "promedio por venta, no por renglón")
	assert.Equal(t, "2023-12", monthly[1].Month)

	yearly, total, err := uc.YearlySummary(ctx, dto.ReportQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, yearly, 2)
	assert.Equal(t, "2024", yearly[0].Year)
	assert.True(t, yearly[0].TotalSales.Equal(dec("100")))
	assert.Equal(t, "2023", yearly[1].Year)
}

func TestExecutiveWiseEligeElProductoEstrellaPorIngreso(t *testing.T) {
	sales := &fakeSaleRepo{}
	sales.sales = append(sales.sales,
		// Ana: producto 1 ingresa 50, producto 2 ingresa 80 -> estrella el 2.
		saleOn(1, "Ana", "2024-01-10", sItem(1, "5", "10"), sItem(2, "8", "10")),
		saleOn(2, "Ana", "2024-01-15", sItem(1, "0", "10")),
		saleOn(3, "Luis", "2024-01-20", sItem(1, "2", "10")),
		saleOn(4, "", "2024-01-21", sItem(2, "1", "10")),
	)
	products := newFakeProductRepo()
	products.add(1, "Arroz")
	products.add(2, "Azúcar")

	uc := NewSalesReports(sales, products)
	rows, total, err := uc.ExecutiveWise(context.Background(), dto.ReportQuery{})
	require.NoError(t, err)

	assert.Equal(t, 3, total)
	require.Len(t, rows, 3)

	ana := rows[0]
	assert.Equal(t, "Ana", ana.ExecutiveName, "mayor monto total va primero")
	assert.Equal(t, 2, ana.TotalSales)
	assert.True(t, ana.TotalAmount.Equal(dec("130")))
	assert.True(t, ana.AverageOrderValue.Equal(dec("65")))
	assert.Equal(t, "Azúcar", ana.TopProduct)
	assert.True(t, ana.TopProductRevenue.Equal(dec("80")))

	assert.Equal(t, "Luis", rows[1].ExecutiveName)
	assert.Equal(t, "Unknown", rows[2].ExecutiveName, "cliente vacío cae en Unknown")
}
