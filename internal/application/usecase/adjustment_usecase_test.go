package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustmentApplyAnexaMovimientoConReferenciaPropia(t *testing.T) {
	env := newTestEnv()
	env.products.add(1, "Arroz", "12.00")
	env.stock.set(1, "10")

	uc := NewAdjustmentUseCase(env.tx, env.products)
	out, err := uc.Apply(context.Background(), dto.AdjustStockRequest{
		ProductID: 1,
		Quantity:  dec("-3"),
		Date:      "2024-04-01",
		Notes:     "merma por conteo físico",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, env.tx.runs)
	assert.Equal(t, entity.LedgerTypeAdjustment, out.TransactionType)
	assert.Equal(t, "2024-04-01", out.TransactionDate)
	assert.True(t, out.Quantity.Equal(dec("-3")), "el ajuste conserva su signo")

	// La referencia es un uuid propio, no el id de un documento.
	_, err = uuid.Parse(out.ReferenceID)
	assert.NoError(t, err)

	require.Len(t, env.ledger.entries, 1)
	assert.True(t, env.stock.rows[1].AvailableStock.Equal(dec("7")))
}

func TestAdjustmentApplyValidaLaEntrada(t *testing.T) {
	env := newTestEnv()
	env.products.add(1, "Arroz", "12.00")
	uc := NewAdjustmentUseCase(env.tx, env.products)
	ctx := context.Background()

	_, err := uc.Apply(ctx, dto.AdjustStockRequest{ProductID: 1, Quantity: dec("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "ajuste de cantidad cero")

	_, err = uc.Apply(ctx, dto.AdjustStockRequest{ProductID: 1, Quantity: dec("1"), Date: "ayer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha inválida")

	_, err = uc.Apply(ctx, dto.AdjustStockRequest{ProductID: 99, Quantity: dec("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")

	assert.Zero(t, env.tx.runs)
	assert.Empty(t, env.ledger.entries)
}
