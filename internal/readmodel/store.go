package readmodel

import (
	"sort"
	"sync"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Patch is a single mutation of the snapshot. Patches run under the
// store's lock and must replace whole entity values rather than mutate
// embedded slices in place, so that values handed out earlier stay
// consistent.
type Patch func(*Snapshot)

// Store is the application's single read model: an addressable in-memory
// snapshot of the persistent store. It is only ever mutated through
// Apply (optimistic patches) or ReplaceAll (a full reload), which keeps
// all writers on one serialized path.
type Store struct {
	mu      sync.RWMutex
	snap    *Snapshot
	loading bool
}

// NewStore returns an empty store in the loading state. Consumers should
// treat contents as unreliable until the first successful reload.
func NewStore() *Store {
	return &Store{snap: NewSnapshot(), loading: true}
}

// Apply runs a patch against the snapshot under the store lock. This is
// the only mutation entry point besides ReplaceAll.
func (s *Store) Apply(p Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p(s.snap)
}

// ReplaceAll atomically swaps in a freshly loaded snapshot.
func (s *Store) ReplaceAll(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
}

// Loading reports whether a full load is in progress.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SetLoading flips the loading flag.
func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

// Item returns one inventory item by id.
func (s *Store) Item(id uuid.UUID) (entity.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.snap.Items[id]
	return it, ok
}

// Items returns all inventory items, newest first.
func (s *Store) Items() []entity.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Item, 0, len(s.snap.Items))
	for _, it := range s.snap.Items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// StockLevels returns the current stock per item, the projector's input.
func (s *Store) StockLevels() map[uuid.UUID]decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	levels := make(map[uuid.UUID]decimal.Decimal, len(s.snap.Items))
	for id, it := range s.snap.Items {
		levels[id] = it.CurrentStock
	}
	return levels
}

// Product returns one catalog product by id.
func (s *Store) Product(id uuid.UUID) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.snap.Products[id]
	return p, ok
}

// Products returns all catalog products, newest first.
func (s *Store) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, 0, len(s.snap.Products))
	for _, p := range s.snap.Products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// Supplier returns one supplier by id.
func (s *Store) Supplier(id uuid.UUID) (entity.Supplier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sp, ok := s.snap.Suppliers[id]
	return sp, ok
}

// Suppliers returns all suppliers, newest first.
func (s *Store) Suppliers() []entity.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Supplier, 0, len(s.snap.Suppliers))
	for _, sp := range s.snap.Suppliers {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// Customer returns one customer by id.
func (s *Store) Customer(id uuid.UUID) (entity.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.snap.Customers[id]
	return c, ok
}

// Customers returns all customers, newest first.
func (s *Store) Customers() []entity.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Customer, 0, len(s.snap.Customers))
	for _, c := range s.snap.Customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// Employee returns one employee by id.
func (s *Store) Employee(id uuid.UUID) (entity.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.snap.Employees[id]
	return e, ok
}

// Employees returns all employees, newest first.
func (s *Store) Employees() []entity.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Employee, 0, len(s.snap.Employees))
	for _, e := range s.snap.Employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// PayrollRecord returns one payroll record by id.
func (s *Store) PayrollRecord(id uuid.UUID) (entity.PayrollRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.snap.PayrollRecords[id]
	return r, ok
}

// PayrollRecords returns all payroll records, newest first.
func (s *Store) PayrollRecords() []entity.PayrollRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.PayrollRecord, 0, len(s.snap.PayrollRecords))
	for _, r := range s.snap.PayrollRecords {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// PurchaseOrder returns one purchase order by id.
func (s *Store) PurchaseOrder(id uuid.UUID) (entity.PurchaseOrder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	po, ok := s.snap.PurchaseOrders[id]
	return po, ok
}

// PurchaseOrders returns all purchase orders, newest first.
func (s *Store) PurchaseOrders() []entity.PurchaseOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.PurchaseOrder, 0, len(s.snap.PurchaseOrders))
	for _, po := range s.snap.PurchaseOrders {
		out = append(out, po)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// GoodsReceipt returns one goods receipt by id.
func (s *Store) GoodsReceipt(id uuid.UUID) (entity.GoodsReceipt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	gr, ok := s.snap.GoodsReceipts[id]
	return gr, ok
}

// GoodsReceipts returns all goods receipts, newest first.
func (s *Store) GoodsReceipts() []entity.GoodsReceipt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.GoodsReceipt, 0, len(s.snap.GoodsReceipts))
	for _, gr := range s.snap.GoodsReceipts {
		out = append(out, gr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// ProformaInvoice returns one proforma invoice by id.
func (s *Store) ProformaInvoice(id uuid.UUID) (entity.ProformaInvoice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pi, ok := s.snap.ProformaInvoices[id]
	return pi, ok
}

// ProformaInvoices returns all proforma invoices, newest first.
func (s *Store) ProformaInvoices() []entity.ProformaInvoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.ProformaInvoice, 0, len(s.snap.ProformaInvoices))
	for _, pi := range s.snap.ProformaInvoices {
		out = append(out, pi)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// Transactions returns the stock transaction log in chronological order,
// with the per-document sequence number breaking timestamp ties.
func (s *Store) Transactions() []entity.StockTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.StockTransaction, len(s.snap.Transactions))
	copy(out, s.snap.Transactions)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OccurredAt.Equal(out[j].OccurredAt) {
			return out[i].Seq < out[j].Seq
		}
		return out[i].OccurredAt.Before(out[j].OccurredAt)
	})
	return out
}

// TransactionsByItem returns the transactions for one item, chronological.
func (s *Store) TransactionsByItem(itemID uuid.UUID) []entity.StockTransaction {
	all := s.Transactions()
	out := all[:0]
	for _, tx := range all {
		if tx.ItemID == itemID {
			out = append(out, tx)
		}
	}
	return out
}
