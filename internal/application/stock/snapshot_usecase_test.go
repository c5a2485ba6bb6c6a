package stock

import (
	"context"
	"testing"

	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeReportaCreatedYLuegoUpdated(t *testing.T) {
	products := newFakeProductRepo()
	products.add(1, "Harina", nil)
	stockRepo := newFakeStockRepo()
	uc := NewSnapshotUseCase(stockRepo, products)
	ctx := context.Background()

	first, err := uc.Initialize(ctx, 1, dec("100"))
	require.NoError(t, err)
	assert.Equal(t, "created", first.Action)
	assert.True(t, first.Stock.AvailableStock.Equal(dec("100")))

	// Reintento con la misma cantidad: misma fila final, acción updated.
	second, err := uc.Initialize(ctx, 1, dec("100"))
	require.NoError(t, err)
	assert.Equal(t, "updated", second.Action)
	assert.True(t, second.Stock.AvailableStock.Equal(dec("100")))
	assert.Equal(t, first.Stock.ID, second.Stock.ID)
}

func TestInitializeProductoInexistente(t *testing.T) {
	uc := NewSnapshotUseCase(newFakeStockRepo(), newFakeProductRepo())
	_, err := uc.Initialize(context.Background(), 99, dec("5"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
