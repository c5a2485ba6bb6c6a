package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/stock"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// SaleUseCase registra ventas. Cada renglón produce un movimiento negativo en
// el ledger; antes de confirmar se valida disponibilidad contra el resolver y
// una venta sin stock suficiente se rechaza completa.
type SaleUseCase struct {
	tx          TxRunner
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	resolver    *stock.BalanceResolver
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(tx TxRunner, saleRepo repository.SaleRepository, productRepo repository.ProductRepository, resolver *stock.BalanceResolver) *SaleUseCase {
	return &SaleUseCase{tx: tx, saleRepo: saleRepo, productRepo: productRepo, resolver: resolver}
}

// Create valida la venta, verifica disponibilidad y la persiste junto con los
// movimientos del ledger.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.SaleRequest) (*dto.SaleDTO, error) {
	saleDate, err := parseDate(in.SaleDate)
	if err != nil || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	items, err := uc.resolveItems(ctx, in.Items)
	if err != nil {
		return nil, err
	}
	if err := uc.checkAvailability(ctx, items); err != nil {
		return nil, err
	}

	sale := &entity.Sale{
		CustomerName:  in.CustomerName,
		InvoiceNumber: in.InvoiceNumber,
		SaleDate:      saleDate,
		Notes:         in.Notes,
		Items:         items,
		CreatedAt:     time.Now().UTC(),
	}

	err = uc.tx.Run(ctx, func(
		_ repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
		ledgerRepo repository.StockLedgerRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		ref := strconv.FormatInt(sale.ID, 10)
		entries := make([]*entity.StockLedgerEntry, 0, len(sale.Items))
		for _, it := range sale.Items {
			entries = append(entries, &entity.StockLedgerEntry{
				ProductID:       it.ProductID,
				TransactionType: entity.LedgerTypeSale,
				ReferenceID:     ref,
				Quantity:        it.Quantity.Neg(),
				TransactionDate: saleDate,
			})
		}
		if err := ledgerRepo.Append(ctx, entries); err != nil {
			return err
		}
		for _, it := range sale.Items {
			if err := stockRepo.ApplyDelta(ctx, it.ProductID, it.Quantity.Neg()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleDTO(sale), nil
}

// GetByID obtiene una venta con sus renglones.
func (uc *SaleUseCase) GetByID(ctx context.Context, id int64) (*dto.SaleDTO, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleDTO(sale), nil
}

// List lista ventas con renglones, opcionalmente acotadas por fecha.
func (uc *SaleUseCase) List(ctx context.Context, from, to *time.Time) ([]dto.SaleDTO, error) {
	list, err := uc.saleRepo.ListWithItems(ctx, from, to)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleDTO, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleDTO(s))
	}
	return items, nil
}

// Delete elimina la venta y anexa movimientos de reverso (return_in): la
// mercancía vendida vuelve al stock.
func (uc *SaleUseCase) Delete(ctx context.Context, id int64) error {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}

	return uc.tx.Run(ctx, func(
		_ repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
		ledgerRepo repository.StockLedgerRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := saleRepo.Delete(ctx, id); err != nil {
			return err
		}
		ref := strconv.FormatInt(id, 10)
		today := time.Now().UTC()
		entries := make([]*entity.StockLedgerEntry, 0, len(sale.Items))
		for _, it := range sale.Items {
			entries = append(entries, &entity.StockLedgerEntry{
				ProductID:       it.ProductID,
				TransactionType: entity.LedgerTypeReturnIn,
				ReferenceID:     ref,
				Quantity:        it.Quantity,
				TransactionDate: today,
				Notes:           "reverso por eliminación de venta",
			})
		}
		if err := ledgerRepo.Append(ctx, entries); err != nil {
			return err
		}
		for _, it := range sale.Items {
			if err := stockRepo.ApplyDelta(ctx, it.ProductID, it.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
}

// resolveItems valida renglones y completa nombre y precio desde el catálogo.
func (uc *SaleUseCase) resolveItems(ctx context.Context, in []dto.OrderItemRequest) ([]entity.SaleItem, error) {
	items := make([]entity.SaleItem, 0, len(in))
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
		items = append(items, entity.SaleItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    req.Quantity,
			UnitPrice:   price,
		})
	}
	return items, nil
}

// checkAvailability compara el stock actual contra lo pedido, agregando por
// producto cuando una venta repite el mismo producto en varios renglones.
func (uc *SaleUseCase) checkAvailability(ctx context.Context, items []entity.SaleItem) error {
	required := make(map[int64]decimal.Decimal)
	for _, it := range items {
		required[it.ProductID] = required[it.ProductID].Add(it.Quantity)
	}
	ids := make([]int64, 0, len(required))
	for id := range required {
		ids = append(ids, id)
	}
	available, err := uc.resolver.Current(ctx, ids)
	if err != nil {
		return err
	}
	for id, qty := range required {
		if available[id].LessThan(qty) {
			return domain.ErrInsufficientStock
		}
	}
	return nil
}

func toSaleDTO(s *entity.Sale) *dto.SaleDTO {
	if s == nil {
		return nil
	}
	out := &dto.SaleDTO{
		ID:            s.ID,
		CustomerName:  s.CustomerName,
		InvoiceNumber: s.InvoiceNumber,
		SaleDate:      s.SaleDate.Format("2006-01-02"),
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
	}
	for _, it := range s.Items {
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
