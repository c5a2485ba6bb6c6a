package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// PurchaseUseCase registra compras y las refleja en el ledger de stock.
// Cada renglón de compra produce un movimiento positivo; documento y
// movimientos se confirman en la misma transacción.
type PurchaseUseCase struct {
	tx           TxRunner
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(tx TxRunner, purchaseRepo repository.PurchaseRepository, productRepo repository.ProductRepository) *PurchaseUseCase {
	return &PurchaseUseCase{tx: tx, purchaseRepo: purchaseRepo, productRepo: productRepo}
}

// Create valida la compra, la persiste y anexa los movimientos del ledger.
// Renglones sin precio usan el precio vigente del producto.
func (uc *PurchaseUseCase) Create(ctx context.Context, in dto.PurchaseRequest) (*dto.PurchaseDTO, error) {
	purchaseDate, err := parseDate(in.PurchaseDate)
	if err != nil || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	items, err := uc.resolveItems(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	purchase := &entity.Purchase{
		VendorName:    in.VendorName,
		InvoiceNumber: in.InvoiceNumber,
		PurchaseDate:  purchaseDate,
		Notes:         in.Notes,
		Items:         items,
		CreatedAt:     time.Now().UTC(),
	}

	err = uc.tx.Run(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		_ repository.SaleRepository,
		ledgerRepo repository.StockLedgerRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := purchaseRepo.Create(ctx, purchase); err != nil {
			return err
		}
		ref := strconv.FormatInt(purchase.ID, 10)
		entries := make([]*entity.StockLedgerEntry, 0, len(purchase.Items))
		for _, it := range purchase.Items {
			entries = append(entries, &entity.StockLedgerEntry{
				ProductID:       it.ProductID,
				TransactionType: entity.LedgerTypePurchase,
				ReferenceID:     ref,
				Quantity:        it.Quantity,
				TransactionDate: purchaseDate,
			})
		}
		if err := ledgerRepo.Append(ctx, entries); err != nil {
			return err
		}
		for _, it := range purchase.Items {
			if err := stockRepo.ApplyDelta(ctx, it.ProductID, it.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseDTO(purchase), nil
}

// GetByID obtiene una compra con sus renglones.
func (uc *PurchaseUseCase) GetByID(ctx context.Context, id int64) (*dto.PurchaseDTO, error) {
	purchase, err := uc.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	return toPurchaseDTO(purchase), nil
}

// List lista compras con renglones, opcionalmente acotadas por fecha.
func (uc *PurchaseUseCase) List(ctx context.Context, from, to *time.Time) ([]dto.PurchaseDTO, error) {
	list, err := uc.purchaseRepo.ListWithItems(ctx, from, to)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseDTO, 0, len(list))
	for _, p := range list {
		items = append(items, *toPurchaseDTO(p))
	}
	return items, nil
}

// Update modifica solo el encabezado de la compra (proveedor, factura, notas).
// Los renglones y sus movimientos de ledger son inmutables; corregir cantidades
// requiere un ajuste manual.
func (uc *PurchaseUseCase) Update(ctx context.Context, id int64, in dto.PurchaseRequest) (*dto.PurchaseDTO, error) {
	purchase, err := uc.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	if in.VendorName != "" {
		purchase.VendorName = in.VendorName
	}
	if in.InvoiceNumber != "" {
		purchase.InvoiceNumber = in.InvoiceNumber
	}
	if in.Notes != "" {
		purchase.Notes = in.Notes
	}
	if err := uc.purchaseRepo.Update(ctx, purchase); err != nil {
		return nil, err
	}
	return toPurchaseDTO(purchase), nil
}

// Delete elimina la compra y anexa movimientos de reverso (return_out) para
// que el ledger siga cuadrando; el ledger nunca borra filas.
func (uc *PurchaseUseCase) Delete(ctx context.Context, id int64) error {
	purchase, err := uc.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if purchase == nil {
		return domain.ErrNotFound
	}

	return uc.tx.Run(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		_ repository.SaleRepository,
		ledgerRepo repository.StockLedgerRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := purchaseRepo.Delete(ctx, id); err != nil {
			return err
		}
		ref := strconv.FormatInt(id, 10)
		today := time.Now().UTC()
		entries := make([]*entity.StockLedgerEntry, 0, len(purchase.Items))
		for _, it := range purchase.Items {
			entries = append(entries, &entity.StockLedgerEntry{
				ProductID:       it.ProductID,
				TransactionType: entity.LedgerTypeReturnOut,
				ReferenceID:     ref,
				Quantity:        it.Quantity.Neg(),
				TransactionDate: today,
				Notes:           "reverso por eliminación de compra",
			})
		}
		if err := ledgerRepo.Append(ctx, entries); err != nil {
			return err
		}
		for _, it := range purchase.Items {
			if err := stockRepo.ApplyDelta(ctx, it.ProductID, it.Quantity.Neg()); err != nil {
				return err
			}
		}
		return nil
	})
}

// resolveItems valida renglones y completa nombre y precio desde el catálogo.
func (uc *PurchaseUseCase) resolveItems(ctx context.Context, in []dto.OrderItemRequest) ([]entity.PurchaseItem, error) {
	items := make([]entity.PurchaseItem, 0, len(in))
	for _, req := range in {
		if !req.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(ctx, req.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		price := product.PricePerUnit
		if req.UnitPrice != nil {
			if req.UnitPrice.IsNegative() {
				return nil, domain.ErrInvalidInput
			}
			price = *req.UnitPrice
		}
		items = append(items, entity.PurchaseItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    req.Quantity,
			UnitPrice:   price,
		})
	}
	return items, nil
}

func toPurchaseDTO(p *entity.Purchase) *dto.PurchaseDTO {
	if p == nil {
		return nil
	}
	out := &dto.PurchaseDTO{
		ID:            p.ID,
		VendorName:    p.VendorName,
		InvoiceNumber: p.InvoiceNumber,
		PurchaseDate:  p.PurchaseDate.Format("2006-01-02"),
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
	}
	for _, it := range p.Items {
		lineTotal := it.Quantity.Mul(it.UnitPrice)
		out.TotalAmount = out.TotalAmount.Add(lineTotal)
		out.Items = append(out.Items, dto.OrderItemDTO{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  lineTotal,
		})
	}
	return out
}
