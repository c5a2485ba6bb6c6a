package report

import (
	"testing"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentStockCSVLlevaLosMismosValoresQueElJSON(t *testing.T) {
	rows := []dto.CurrentStockRow{
		{ProductID: 1, ProductName: "Arroz", Opening: dec("100"), Purchased: dec("40"), Sold: dec("25"), Closing: dec("115")},
	}

	doc := CurrentStockCSV(rows)
	assert.Equal(t, "current_stock_report.csv", doc.Filename)

	out, err := doc.Encode()
	require.NoError(t, err)
	assert.Equal(t,
		"product_id,product_name,opening,purchased,sold,closing\n1,Arroz,100,40,25,115\n",
		string(out))
}

func TestCSVEscapaComasYComillas(t *testing.T) {
	rows := []dto.VendorWiseRow{
		{Vendor: `Acme, "La Original"`, TotalPurchaseValue: dec("10.50"), ItemsBought: dec("3")},
	}

	out, err := VendorWiseCSV(rows).Encode()
	require.NoError(t, err)
	assert.Equal(t,
		"vendor,total_purchase_value,items_bought\n\"Acme, \"\"La Original\"\"\",10.50,3\n",
		string(out))
}

func TestDeadStockCSVDejaVaciaLaFechaNula(t *testing.T) {
	last := "2024-01-15"
	rows := []dto.DeadStockRowDTO{
		{ProductID: 1, ProductName: "Nunca vendido", StockRemaining: dec("5")},
		{ProductID: 2, ProductName: "Venta vieja", LastSoldDate: &last, StockRemaining: dec("8")},
	}

	out, err := DeadStockCSV(rows).Encode()
	require.NoError(t, err)
	assert.Equal(t,
		"product_id,product_name,last_sold_date,stock_remaining\n"+
			"1,Nunca vendido,,5\n"+
			"2,Venta vieja,2024-01-15,8\n",
		string(out))
}

func TestCSVSinFilasSoloEscribeEncabezado(t *testing.T) {
	out, err := LowStockCSV(nil).Encode()
	require.NoError(t, err)
	assert.Equal(t, "product_id,product_name,current_stock,reorder_point,shortage\n", string(out))
}
