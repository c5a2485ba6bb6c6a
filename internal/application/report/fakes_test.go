package report

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Fakes en memoria para los puertos que consumen los reportes.

type fakePurchaseRepo struct {
	purchases []*entity.Purchase
}

func (f *fakePurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error { return nil }

func (f *fakePurchaseRepo) GetByID(ctx context.Context, id int64) (*entity.Purchase, error) {
	return nil, nil
}

func (f *fakePurchaseRepo) ListWithItems(ctx context.Context, from, to *time.Time) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	for _, p := range f.purchases {
		if from != nil && p.PurchaseDate.Before(*from) {
			continue
		}
		if to != nil && p.PurchaseDate.After(*to) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePurchaseRepo) Update(ctx context.Context, p *entity.Purchase) error { return nil }

func (f *fakePurchaseRepo) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakePurchaseRepo) ItemsInRange(ctx context.Context, from, to *time.Time) ([]repository.PurchaseItemRow, error) {
	purchases, _ := f.ListWithItems(ctx, from, to)
	var out []repository.PurchaseItemRow
	for _, p := range purchases {
		for _, it := range p.Items {
			out = append(out, repository.PurchaseItemRow{
				PurchaseID:   p.ID,
				ProductID:    it.ProductID,
				Quantity:     it.Quantity,
				UnitPrice:    it.UnitPrice,
				PurchaseDate: p.PurchaseDate,
			})
		}
	}
	return out, nil
}

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (f *fakeSaleRepo) Create(ctx context.Context, s *entity.Sale) error { return nil }

func (f *fakeSaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	return nil, nil
}

func (f *fakeSaleRepo) ListWithItems(ctx context.Context, from, to *time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range f.sales {
		if from != nil && s.SaleDate.Before(*from) {
			continue
		}
		if to != nil && s.SaleDate.After(*to) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSaleRepo) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeSaleRepo) ItemsInRange(ctx context.Context, from, to *time.Time) ([]repository.SaleItemRow, error) {
	sales, _ := f.ListWithItems(ctx, from, to)
	var out []repository.SaleItemRow
	for _, s := range sales {
		for _, it := range s.Items {
			out = append(out, repository.SaleItemRow{
				SaleID:    s.ID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
				SaleDate:  s.SaleDate,
			})
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*entity.Product{}}
}

func (f *fakeProductRepo) add(id int64, name string) {
	f.products[id] = &entity.Product{ID: id, Name: name}
}

func (f *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error { return nil }

func (f *fakeProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error { return nil }

func (f *fakeProductRepo) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeProductRepo) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string)
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out[id] = p.Name
		}
	}
	return out, nil
}

type fakeLedgerRepo struct {
	entries []*entity.StockLedgerEntry
}

func (f *fakeLedgerRepo) Append(ctx context.Context, entries []*entity.StockLedgerEntry) error {
	f.entries = append(f.entries, entries...)
	return nil
}

func (f *fakeLedgerRepo) List(ctx context.Context, productID *int64, limit int) ([]*entity.StockLedgerEntry, error) {
	return f.entries, nil
}

func (f *fakeLedgerRepo) QuantitiesForProducts(ctx context.Context, ids []int64) ([]repository.LedgerQuantity, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []repository.LedgerQuantity
	for _, e := range f.entries {
		if want[e.ProductID] {
			out = append(out, repository.LedgerQuantity{
				ProductID: e.ProductID, Quantity: e.Quantity, TransactionDate: e.TransactionDate,
			})
		}
	}
	return out, nil
}

type fakeStockRepo struct {
	rows map[int64]*entity.Stock
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{rows: map[int64]*entity.Stock{}}
}

func (f *fakeStockRepo) ListWithProduct(ctx context.Context) ([]repository.StockRow, error) {
	return nil, nil
}

func (f *fakeStockRepo) GetByProduct(ctx context.Context, productID int64) (*entity.Stock, error) {
	return f.rows[productID], nil
}

func (f *fakeStockRepo) QuantitiesForProducts(ctx context.Context, ids []int64) (map[int64]decimal.Decimal, error) {
	out := make(map[int64]decimal.Decimal)
	for _, id := range ids {
		if s, ok := f.rows[id]; ok {
			out[id] = s.AvailableStock
		}
	}
	return out, nil
}

func (f *fakeStockRepo) Upsert(ctx context.Context, productID int64, quantity decimal.Decimal) (string, *entity.Stock, error) {
	s, ok := f.rows[productID]
	if !ok {
		s = &entity.Stock{ID: int64(len(f.rows) + 1), ProductID: productID}
		f.rows[productID] = s
	}
	s.AvailableStock = quantity
	return repository.StockActionUpdated, s, nil
}

func (f *fakeStockRepo) ApplyDelta(ctx context.Context, productID int64, delta decimal.Decimal) error {
	if s, ok := f.rows[productID]; ok {
		s.AvailableStock = s.AvailableStock.Add(delta)
	}
	return nil
}

// Helpers de construcción.

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func purchaseOn(id int64, vendor, date string, items ...entity.PurchaseItem) *entity.Purchase {
	return &entity.Purchase{ID: id, VendorName: vendor, PurchaseDate: day(date), Items: items}
}

func saleOn(id int64, customer, date string, items ...entity.SaleItem) *entity.Sale {
	return &entity.Sale{ID: id, CustomerName: customer, SaleDate: day(date), Items: items}
}

func pItem(productID int64, qty, price string) entity.PurchaseItem {
	return entity.PurchaseItem{ProductID: productID, Quantity: dec(qty), UnitPrice: dec(price)}
}

func sItem(productID int64, qty, price string) entity.SaleItem {
	return entity.SaleItem{ProductID: productID, Quantity: dec(qty), UnitPrice: dec(price)}
}
