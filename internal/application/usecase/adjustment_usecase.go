package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// AdjustmentUseCase registra ajustes manuales de stock (mermas, conteos
// físicos). Cada ajuste es un movimiento de ledger con referencia uuid propia,
// sin documento de compra o venta asociado.
type AdjustmentUseCase struct {
	tx          TxRunner
	productRepo repository.ProductRepository
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(tx TxRunner, productRepo repository.ProductRepository) *AdjustmentUseCase {
	return &AdjustmentUseCase{tx: tx, productRepo: productRepo}
}

// Apply valida y anexa el ajuste. Cantidad cero es inválida.
func (uc *AdjustmentUseCase) Apply(ctx context.Context, in dto.AdjustStockRequest) (*dto.LedgerEntryDTO, error) {
	if in.Quantity.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	date := time.Now().UTC()
	if in.Date != "" {
		parsed, err := parseDate(in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	entry := &entity.StockLedgerEntry{
		ProductID:       in.ProductID,
		TransactionType: entity.LedgerTypeAdjustment,
		ReferenceID:     uuid.NewString(),
		Quantity:        in.Quantity,
		TransactionDate: date,
		Notes:           in.Notes,
	}

	err = uc.tx.Run(ctx, func(
		_ repository.PurchaseRepository,
		_ repository.SaleRepository,
		ledgerRepo repository.StockLedgerRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := ledgerRepo.Append(ctx, []*entity.StockLedgerEntry{entry}); err != nil {
			return err
		}
		return stockRepo.ApplyDelta(ctx, in.ProductID, in.Quantity)
	})
	if err != nil {
		return nil, err
	}

	return &dto.LedgerEntryDTO{
		ID:              entry.ID,
		ProductID:       entry.ProductID,
		TransactionType: entry.TransactionType,
		ReferenceID:     entry.ReferenceID,
		Quantity:        entry.Quantity,
		TransactionDate: entry.TransactionDate.Format("2006-01-02"),
		Notes:           entry.Notes,
		CreatedAt:       entry.CreatedAt,
	}, nil
}
