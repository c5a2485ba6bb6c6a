package stock

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Fakes en memoria para los puertos de persistencia.

type fakeStockRepo struct {
	rows    map[int64]*entity.Stock
	names   map[int64]string
	queried [][]int64 // ids pedidos a QuantitiesForProducts, para asertar precedencia
	upserts int
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{rows: map[int64]*entity.Stock{}, names: map[int64]string{}}
}

func (f *fakeStockRepo) ListWithProduct(ctx context.Context) ([]repository.StockRow, error) {
	var out []repository.StockRow
	for _, s := range f.rows {
		out = append(out, repository.StockRow{
			ID: s.ID, ProductID: s.ProductID, AvailableStock: s.AvailableStock,
			LastUpdated: s.LastUpdated, ProductName: f.names[s.ProductID],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (f *fakeStockRepo) GetByProduct(ctx context.Context, productID int64) (*entity.Stock, error) {
	s, ok := f.rows[productID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStockRepo) QuantitiesForProducts(ctx context.Context, ids []int64) (map[int64]decimal.Decimal, error) {
	f.queried = append(f.queried, ids)
	out := make(map[int64]decimal.Decimal)
	for _, id := range ids {
		if s, ok := f.rows[id]; ok {
			out[id] = s.AvailableStock
		}
	}
	return out, nil
}

func (f *fakeStockRepo) Upsert(ctx context.Context, productID int64, quantity decimal.Decimal) (string, *entity.Stock, error) {
	f.upserts++
	action := repository.StockActionUpdated
	s, ok := f.rows[productID]
	if !ok {
		action = repository.StockActionCreated
		s = &entity.Stock{ID: int64(len(f.rows) + 1), ProductID: productID}
		f.rows[productID] = s
	}
	s.AvailableStock = quantity
	s.LastUpdated = time.Now().UTC()
	cp := *s
	return action, &cp, nil
}

func (f *fakeStockRepo) ApplyDelta(ctx context.Context, productID int64, delta decimal.Decimal) error {
	if s, ok := f.rows[productID]; ok {
		s.AvailableStock = s.AvailableStock.Add(delta)
		s.LastUpdated = time.Now().UTC()
	}
	return nil
}

type fakeLedgerRepo struct {
	entries []*entity.StockLedgerEntry
}

func (f *fakeLedgerRepo) Append(ctx context.Context, entries []*entity.StockLedgerEntry) error {
	for i, e := range entries {
		e.ID = int64(len(f.entries) + i + 1)
		e.CreatedAt = time.Now().UTC()
	}
	f.entries = append(f.entries, entries...)
	return nil
}

func (f *fakeLedgerRepo) List(ctx context.Context, productID *int64, limit int) ([]*entity.StockLedgerEntry, error) {
	var out []*entity.StockLedgerEntry
	for _, e := range f.entries {
		if productID != nil && e.ProductID != *productID {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TransactionDate.Equal(out[j].TransactionDate) {
			return out[i].TransactionDate.After(out[j].TransactionDate)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
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

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*entity.Product{}}
}

func (f *fakeProductRepo) add(id int64, name string, reorder *decimal.Decimal) {
	f.products[id] = &entity.Product{ID: id, Name: name, ReorderPoint: reorder}
}

func (f *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	p.ID = int64(len(f.products) + 1)
	f.products[p.ID] = p
	return nil
}

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

func (f *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id int64) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string)
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out[id] = p.Name
		}
	}
	return out, nil
}

type fakeSaleRepo struct {
	items []repository.SaleItemRow
}

func (f *fakeSaleRepo) Create(ctx context.Context, s *entity.Sale) error { return nil }

func (f *fakeSaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	return nil, nil
}

func (f *fakeSaleRepo) ListWithItems(ctx context.Context, from, to *time.Time) ([]*entity.Sale, error) {
	return nil, nil
}

func (f *fakeSaleRepo) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeSaleRepo) ItemsInRange(ctx context.Context, from, to *time.Time) ([]repository.SaleItemRow, error) {
	var out []repository.SaleItemRow
	for _, it := range f.items {
		if from != nil && it.SaleDate.Before(*from) {
			continue
		}
		if to != nil && it.SaleDate.After(*to) {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

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
