package usecase

import (
	"context"
	"testing"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseCreateAnexaMovimientosPositivos(t *testing.T) {
	env := newTestEnv()
	env.products.add(1, "Arroz", "12.00")
	env.products.add(2, "Azúcar", "8.00")
	env.stock.set(1, "10")

	uc := NewPurchaseUseCase(env.tx, env.purchase, env.products)
	out, err := uc.Create(context.Background(), dto.PurchaseRequest{
		VendorName:   "Acme",
		PurchaseDate: "2024-03-10",
		Items: []dto.OrderItemRequest{
			{ProductID: 1, Quantity: dec("5"), UnitPrice: decPtr("10.00")},
			{ProductID: 2, Quantity: dec("3")}, // sin precio: usa el del catálogo
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, env.tx.runs)
	assert.True(t, out.TotalAmount.Equal(dec("74")), "5*10 + 3*8")
	assert.Equal(t, "Azúcar", out.Items[1].ProductName)
	assert.True(t, out.Items[1].UnitPrice.Equal(dec("8.00")))

	require.Len(t, env.ledger.entries, 2)
	first := env.ledger.entries[0]
	assert.Equal(t, entity.LedgerTypePurchase, first.TransactionType)
	assert.Equal(t, "1", first.ReferenceID, "la referencia es el id de la compra")
	assert.True(t, first.Quantity.Equal(dec("5")), "las compras entran con signo positivo")
	assert.Equal(t, "2024-03-10", first.TransactionDate.Format("2006-01-02"))

	// La caché materializada recibe el mismo delta.
	assert.True(t, env.stock.rows[1].AvailableStock.Equal(dec("15")))
}

func TestPurchaseCreateValidaLaEntrada(t *testing.T) {
	env := newTestEnv()
	env.products.add(1, "Arroz", "12.00")
	uc := NewPurchaseUseCase(env.tx, env.purchase, env.products)
	ctx := context.Background()

	item := dto.OrderItemRequest{ProductID: 1, Quantity: dec("1")}

	_, err := uc.Create(ctx, dto.PurchaseRequest{PurchaseDate: "10/03/2024", Items: []dto.OrderItemRequest{item}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha con formato inválido")

	_, err = uc.Create(ctx, dto.PurchaseRequest{PurchaseDate: "2024-03-10"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "compra sin renglones")

	_, err = uc.Create(ctx, dto.PurchaseRequest{PurchaseDate: "2024-03-10",
		Items: []dto.OrderItemRequest{{ProductID: 1, Quantity: dec("0")}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad no positiva")

	_, err = uc.Create(ctx, dto.PurchaseRequest{PurchaseDate: "2024-03-10",
		Items: []dto.OrderItemRequest{{ProductID: 99, Quantity: dec("1")}}})
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")

	_, err = uc.Create(ctx, dto.PurchaseRequest{PurchaseDate: "2024-03-10",
		Items: []dto.OrderItemRequest{{ProductID: 1, Quantity: dec("1"), UnitPrice: decPtr("-1")}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	assert.Zero(t, env.tx.runs, "ninguna validación fallida debe abrir transacción")
}

func TestPurchaseDeleteAnexaReversoReturnOut(t *testing.T) {
	env := newTestEnv()
	env.products.add(1, "Arroz", "12.00")
	env.stock.set(1, "20")

	uc := NewPurchaseUseCase(env.tx, env.purchase, env.products)
	created, err := uc.Create(context.Background(), dto.PurchaseRequest{
		VendorName:   "Acme",
		PurchaseDate: "2024-03-10",
		Items:        []dto.OrderItemRequest{{ProductID: 1, Quantity: dec("5")}},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	assert.Equal(t, []int64{created.ID}, env.purchase.deleted)
	require.Len(t, env.ledger.entries, 2, "el ledger nunca borra: el reverso se anexa")
	reversal := env.ledger.entries[1]
	assert.Equal(t, entity.LedgerTypeReturnOut, reversal.TransactionType)
	assert.Equal(t, "1", reversal.ReferenceID)
	assert.True(t, reversal.Quantity.Equal(dec("-5")))
	assert.Equal(t, "reverso por eliminación de compra", reversal.Notes)

	// 20 + 5 (compra) - 5 (reverso) = 20.
	assert.True(t, env.stock.rows[1].AvailableStock.Equal(dec("20")))
}

func TestPurchaseUpdateSoloTocaElEncabezado(t *testing.T) {
	env := newTestEnv()
	env.products.add(1, "Arroz", "12.00")

	uc := NewPurchaseUseCase(env.tx, env.purchase, env.products)
	created, err := uc.Create(context.Background(), dto.PurchaseRequest{
		VendorName:   "Acme",
		PurchaseDate: "2024-03-10",
		Items:        []dto.OrderItemRequest{{ProductID: 1, Quantity: dec("5")}},
	})
	require.NoError(t, err)
	runsAfterCreate := env.tx.runs

	updated, err := uc.Update(context.Background(), created.ID, dto.PurchaseRequest{VendorName: "Bravo"})
	require.NoError(t, err)

	assert.Equal(t, "Bravo", updated.VendorName)
	assert.Len(t, updated.Items, 1, "los renglones quedan intactos")
	assert.Equal(t, runsAfterCreate, env.tx.runs, "actualizar encabezado no abre transacción")
	assert.Len(t, env.ledger.entries, 1, "sin movimientos nuevos en el ledger")
}
