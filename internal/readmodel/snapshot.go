package readmodel

import (
	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	"github.com/google/uuid"
)

// Snapshot is a normalized, in-memory mirror of the persistent store:
// one map per entity kind, keyed by identifier, plus the chronological
// stock transaction log. Documents are stored with their cross-entity
// joins (supplier, customer, item) already embedded, resolved once at
// load time rather than on every read.
type Snapshot struct {
	Items            map[uuid.UUID]entity.Item
	Products         map[uuid.UUID]entity.Product
	Suppliers        map[uuid.UUID]entity.Supplier
	Customers        map[uuid.UUID]entity.Customer
	Employees        map[uuid.UUID]entity.Employee
	PayrollRecords   map[uuid.UUID]entity.PayrollRecord
	PurchaseOrders   map[uuid.UUID]entity.PurchaseOrder
	GoodsReceipts    map[uuid.UUID]entity.GoodsReceipt
	ProformaInvoices map[uuid.UUID]entity.ProformaInvoice
	Transactions     []entity.StockTransaction
}

// NewSnapshot returns an empty snapshot with all collections initialized.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Items:            make(map[uuid.UUID]entity.Item),
		Products:         make(map[uuid.UUID]entity.Product),
		Suppliers:        make(map[uuid.UUID]entity.Supplier),
		Customers:        make(map[uuid.UUID]entity.Customer),
		Employees:        make(map[uuid.UUID]entity.Employee),
		PayrollRecords:   make(map[uuid.UUID]entity.PayrollRecord),
		PurchaseOrders:   make(map[uuid.UUID]entity.PurchaseOrder),
		GoodsReceipts:    make(map[uuid.UUID]entity.GoodsReceipt),
		ProformaInvoices: make(map[uuid.UUID]entity.ProformaInvoice),
	}
}

// RemoveTransactions drops every transaction matching the predicate.
// Used by patches that undo a projection or cascade an item delete.
func (s *Snapshot) RemoveTransactions(match func(entity.StockTransaction) bool) {
	kept := s.Transactions[:0]
	for _, tx := range s.Transactions {
		if !match(tx) {
			kept = append(kept, tx)
		}
	}
	s.Transactions = kept
}
