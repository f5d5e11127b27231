package repository

import (
	"context"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	"github.com/TheAdijagtap/erpx/internal/readmodel"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// SnapshotLoader builds a complete read model snapshot from the database.
// Each collection loads on its own goroutine; the first error cancels the
// rest and the partial snapshot is discarded by the caller.
type SnapshotLoader struct {
	db *gorm.DB
}

// NewSnapshotLoader creates a snapshot loader over the given database
func NewSnapshotLoader(db *gorm.DB) *SnapshotLoader {
	return &SnapshotLoader{db: db}
}

// Load reads every collection and assembles a fresh snapshot.
func (l *SnapshotLoader) Load(ctx context.Context) (*readmodel.Snapshot, error) {
	snap := readmodel.NewSnapshot()
	g, ctx := errgroup.WithContext(ctx)

	// Each goroutine writes to its own snapshot field, no locking needed.
	g.Go(func() error {
		var items []entity.Item
		if err := l.db.WithContext(ctx).Find(&items).Error; err != nil {
			return err
		}
		for _, it := range items {
			snap.Items[it.ID] = it
		}
		return nil
	})

	g.Go(func() error {
		var products []entity.Product
		if err := l.db.WithContext(ctx).Find(&products).Error; err != nil {
			return err
		}
		for _, p := range products {
			snap.Products[p.ID] = p
		}
		return nil
	})

	g.Go(func() error {
		var suppliers []entity.Supplier
		if err := l.db.WithContext(ctx).Find(&suppliers).Error; err != nil {
			return err
		}
		for _, s := range suppliers {
			snap.Suppliers[s.ID] = s
		}
		return nil
	})

	g.Go(func() error {
		var customers []entity.Customer
		if err := l.db.WithContext(ctx).Find(&customers).Error; err != nil {
			return err
		}
		for _, c := range customers {
			snap.Customers[c.ID] = c
		}
		return nil
	})

	g.Go(func() error {
		var employees []entity.Employee
		if err := l.db.WithContext(ctx).Find(&employees).Error; err != nil {
			return err
		}
		for _, e := range employees {
			snap.Employees[e.ID] = e
		}
		return nil
	})

	g.Go(func() error {
		var records []entity.PayrollRecord
		if err := l.db.WithContext(ctx).Find(&records).Error; err != nil {
			return err
		}
		for _, rec := range records {
			snap.PayrollRecords[rec.ID] = rec
		}
		return nil
	})

	// Documents embed their related records so cached reads never need
	// a second lookup.
	g.Go(func() error {
		var orders []entity.PurchaseOrder
		err := l.db.WithContext(ctx).
			Preload("Supplier").
			Preload("Lines").
			Preload("Lines.Item").
			Preload("Charges").
			Find(&orders).Error
		if err != nil {
			return err
		}
		for _, o := range orders {
			snap.PurchaseOrders[o.ID] = o
		}
		return nil
	})

	g.Go(func() error {
		var receipts []entity.GoodsReceipt
		err := l.db.WithContext(ctx).
			Preload("Supplier").
			Preload("PurchaseOrder").
			Preload("Lines").
			Preload("Lines.Item").
			Preload("Charges").
			Find(&receipts).Error
		if err != nil {
			return err
		}
		for _, rec := range receipts {
			snap.GoodsReceipts[rec.ID] = rec
		}
		return nil
	})

	g.Go(func() error {
		var invoices []entity.ProformaInvoice
		err := l.db.WithContext(ctx).
			Preload("Customer").
			Preload("Lines").
			Preload("Lines.Product").
			Preload("Charges").
			Find(&invoices).Error
		if err != nil {
			return err
		}
		for _, inv := range invoices {
			snap.ProformaInvoices[inv.ID] = inv
		}
		return nil
	})

	g.Go(func() error {
		return l.db.WithContext(ctx).
			Order("occurred_at ASC, seq ASC").
			Find(&snap.Transactions).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
