package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Fakes en memoria para los puertos de persistencia y el corredor de
// transacciones. fakeTxRunner ejecuta la función con los mismos fakes que el
// caso de uso, de modo que los efectos quedan visibles para los asserts.

type fakeTxRunner struct {
	purchaseRepo *fakePurchaseRepo
	saleRepo     *fakeSaleRepo
	ledgerRepo   *fakeLedgerRepo
	stockRepo    *fakeStockRepo
	runs         int
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
	ledgerRepo repository.StockLedgerRepository,
	stockRepo repository.StockRepository,
) error) error {
	f.runs++
	return fn(f.purchaseRepo, f.saleRepo, f.ledgerRepo, f.stockRepo)
}

type testEnv struct {
	products *fakeProductRepo
	purchase *fakePurchaseRepo
	sale     *fakeSaleRepo
	ledger   *fakeLedgerRepo
	stock    *fakeStockRepo
	tx       *fakeTxRunner
}

func newTestEnv() *testEnv {
	env := &testEnv{
		products: newFakeProductRepo(),
		purchase: &fakePurchaseRepo{},
		sale:     &fakeSaleRepo{},
		ledger:   &fakeLedgerRepo{},
		stock:    newFakeStockRepo(),
	}
	env.tx = &fakeTxRunner{
		purchaseRepo: env.purchase,
		saleRepo:     env.sale,
		ledgerRepo:   env.ledger,
		stockRepo:    env.stock,
	}
	return env
}

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*entity.Product{}}
}

func (f *fakeProductRepo) add(id int64, name, price string) {
	f.products[id] = &entity.Product{ID: id, Name: name, PricePerUnit: dec(price)}
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

type fakePurchaseRepo struct {
	purchases map[int64]*entity.Purchase
	nextID    int64
	deleted   []int64
}

func (f *fakePurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	if f.purchases == nil {
		f.purchases = map[int64]*entity.Purchase{}
	}
	f.nextID++
	p.ID = f.nextID
	f.purchases[p.ID] = p
	return nil
}

func (f *fakePurchaseRepo) GetByID(ctx context.Context, id int64) (*entity.Purchase, error) {
	p, ok := f.purchases[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (f *fakePurchaseRepo) ListWithItems(ctx context.Context, from, to *time.Time) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	for _, p := range f.purchases {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePurchaseRepo) Update(ctx context.Context, p *entity.Purchase) error {
	f.purchases[p.ID] = p
	return nil
}

func (f *fakePurchaseRepo) Delete(ctx context.Context, id int64) error {
	delete(f.purchases, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakePurchaseRepo) ItemsInRange(ctx context.Context, from, to *time.Time) ([]repository.PurchaseItemRow, error) {
	return nil, nil
}

type fakeSaleRepo struct {
	sales   map[int64]*entity.Sale
	nextID  int64
	deleted []int64
}

func (f *fakeSaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	if f.sales == nil {
		f.sales = map[int64]*entity.Sale{}
	}
	f.nextID++
	s.ID = f.nextID
	f.sales[s.ID] = s
	return nil
}

func (f *fakeSaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	s, ok := f.sales[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (f *fakeSaleRepo) ListWithItems(ctx context.Context, from, to *time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range f.sales {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSaleRepo) Delete(ctx context.Context, id int64) error {
	delete(f.sales, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeSaleRepo) ItemsInRange(ctx context.Context, from, to *time.Time) ([]repository.SaleItemRow, error) {
	return nil, nil
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
	rows   map[int64]*entity.Stock
	deltas []appliedDelta
}

type appliedDelta struct {
	productID int64
	delta     decimal.Decimal
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{rows: map[int64]*entity.Stock{}}
}

func (f *fakeStockRepo) set(productID int64, quantity string) {
	f.rows[productID] = &entity.Stock{
		ID: int64(len(f.rows) + 1), ProductID: productID, AvailableStock: dec(quantity),
	}
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
	action := repository.StockActionUpdated
	s, ok := f.rows[productID]
	if !ok {
		action = repository.StockActionCreated
		s = &entity.Stock{ID: int64(len(f.rows) + 1), ProductID: productID}
		f.rows[productID] = s
	}
	s.AvailableStock = quantity
	return action, s, nil
}

func (f *fakeStockRepo) ApplyDelta(ctx context.Context, productID int64, delta decimal.Decimal) error {
	f.deltas = append(f.deltas, appliedDelta{productID: productID, delta: delta})
	if s, ok := f.rows[productID]; ok {
		s.AvailableStock = s.AvailableStock.Add(delta)
	}
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
