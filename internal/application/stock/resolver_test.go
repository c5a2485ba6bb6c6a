package stock

import (
	"context"
	"testing"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLedger(ledger *fakeLedgerRepo, productID int64, quantity, date string) {
	ledger.entries = append(ledger.entries, &entity.StockLedgerEntry{
		ID:              int64(len(ledger.entries) + 1),
		ProductID:       productID,
		Quantity:        dec(quantity),
		TransactionDate: day(date),
	})
}

func TestCurrentConIdsVaciosNoTocaElAlmacen(t *testing.T) {
	stockRepo := newFakeStockRepo()
	resolver := NewBalanceResolver(stockRepo, &fakeLedgerRepo{})

	got, err := resolver.Current(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, stockRepo.queried, "ids vacíos no deben consultar la caché")
}

func TestCurrentPrefiereLaCacheYCompletaDesdeElLedger(t *testing.T) {
	stockRepo := newFakeStockRepo()
	stockRepo.rows[1] = &entity.Stock{ID: 1, ProductID: 1, AvailableStock: dec("40")}

	ledger := &fakeLedgerRepo{}
	// El ledger del producto 1 suma distinto a la caché: debe ganar la caché.
	seedLedger(ledger, 1, "99", "2024-01-01")
	seedLedger(ledger, 2, "10", "2024-01-01")
	seedLedger(ledger, 2, "-3", "2024-02-01")

	resolver := NewBalanceResolver(stockRepo, ledger)
	got, err := resolver.Current(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)

	assert.True(t, got[1].Equal(dec("40")), "producto con fila materializada usa la caché")
	assert.True(t, got[2].Equal(dec("7")), "producto sin fila suma el ledger")
	assert.True(t, got[3].IsZero(), "producto sin movimientos aparece con saldo 0")
}

func TestAperturaYCierreSonAsimetricosEnLaFrontera(t *testing.T) {
	ledger := &fakeLedgerRepo{}
	seedLedger(ledger, 1, "100", "2024-01-05")
	seedLedger(ledger, 1, "-30", "2024-01-20")
	seedLedger(ledger, 1, "50", "2024-02-01")

	resolver := NewBalanceResolver(newFakeStockRepo(), ledger)
	ctx := context.Background()

	// Apertura de febrero: movimientos estrictamente antes del 1 de febrero.
	opening, err := resolver.Opening(ctx, []int64{1}, MonthStart(2024, 2))
	require.NoError(t, err)
	assert.True(t, opening[1].Equal(dec("70")), "el día frontera queda excluido de la apertura")

	// Cierre de enero: hasta el 31 inclusive.
	closing, err := resolver.Closing(ctx, []int64{1}, MonthEnd(2024, 1))
	require.NoError(t, err)
	assert.True(t, closing[1].Equal(dec("70")))

	// Cierre de febrero incluye el movimiento del día 1.
	closing, err = resolver.Closing(ctx, []int64{1}, MonthEnd(2024, 2))
	require.NoError(t, err)
	assert.True(t, closing[1].Equal(dec("120")), "el día frontera queda incluido en el cierre")
}

func TestConsultasConCorteIgnoranLaCache(t *testing.T) {
	stockRepo := newFakeStockRepo()
	// Caché deliberadamente desactualizada.
	stockRepo.rows[1] = &entity.Stock{ID: 1, ProductID: 1, AvailableStock: dec("999")}

	ledger := &fakeLedgerRepo{}
	seedLedger(ledger, 1, "10", "2024-01-10")

	resolver := NewBalanceResolver(stockRepo, ledger)
	closing, err := resolver.Closing(context.Background(), []int64{1}, MonthEnd(2024, 1))
	require.NoError(t, err)

	assert.True(t, closing[1].Equal(dec("10")), "el cierre se calcula solo desde el ledger")
	assert.Empty(t, stockRepo.queried, "una consulta con corte no debe leer la caché")
}

func TestSumaConSignoSinRedondeo(t *testing.T) {
	ledger := &fakeLedgerRepo{}
	seedLedger(ledger, 1, "0.1", "2024-01-01")
	seedLedger(ledger, 1, "0.2", "2024-01-02")
	seedLedger(ledger, 1, "-0.05", "2024-01-03")

	resolver := NewBalanceResolver(newFakeStockRepo(), ledger)
	got, err := resolver.CurrentFromLedger(context.Background(), []int64{1})
	require.NoError(t, err)
	assert.True(t, got[1].Equal(decimal.RequireFromString("0.25")))
}
