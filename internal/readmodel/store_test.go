package readmodel

import (
	"sync"
	"testing"
	"time"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	"github.com/TheAdijagtap/erpx/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestStoreStartsLoading(t *testing.T) {
	s := NewStore()
	assert.True(t, s.Loading())
	assert.Empty(t, s.Items())

	s.SetLoading(false)
	assert.False(t, s.Loading())
}

func TestStoreApplyIsVisibleToReaders(t *testing.T) {
	s := NewStore()
	id := uuid.New()

	s.Apply(func(snap *Snapshot) {
		snap.Items[id] = entity.Item{ID: id, Name: "Cement 50kg", CurrentStock: dec(25)}
	})

	got, ok := s.Item(id)
	require.True(t, ok)
	assert.Equal(t, "Cement 50kg", got.Name)
	assert.True(t, got.CurrentStock.Equal(dec(25)))

	levels := s.StockLevels()
	require.Contains(t, levels, id)
	assert.True(t, levels[id].Equal(dec(25)))
}

func TestStoreApplyMultipleChangesAreAtomic(t *testing.T) {
	s := NewStore()
	itemID := uuid.New()
	receiptID := uuid.New()

	s.Apply(func(snap *Snapshot) {
		snap.Items[itemID] = entity.Item{ID: itemID, CurrentStock: dec(10)}
	})

	// A compound patch touching three collections must land as one unit.
	s.Apply(func(snap *Snapshot) {
		snap.GoodsReceipts[receiptID] = entity.GoodsReceipt{ID: receiptID, ReceiptNo: "GR-0001"}
		it := snap.Items[itemID]
		it.CurrentStock = dec(35)
		snap.Items[itemID] = it
		snap.Transactions = append(snap.Transactions, entity.StockTransaction{
			ID:        uuid.New(),
			ItemID:    itemID,
			Direction: enum.TransactionDirectionIn,
			Quantity:  dec(25),
		})
	})

	_, ok := s.GoodsReceipt(receiptID)
	assert.True(t, ok)
	it, _ := s.Item(itemID)
	assert.True(t, it.CurrentStock.Equal(dec(35)))
	assert.Len(t, s.Transactions(), 1)
}

func TestStoreListsNewestFirst(t *testing.T) {
	s := NewStore()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	old := uuid.New()
	recent := uuid.New()

	s.Apply(func(snap *Snapshot) {
		snap.Suppliers[old] = entity.Supplier{ID: old, Name: "Old Supplies Ltd", CreatedAt: base}
		snap.Suppliers[recent] = entity.Supplier{ID: recent, Name: "Fresh Traders", CreatedAt: base.Add(time.Hour)}
	})

	list := s.Suppliers()
	require.Len(t, list, 2)
	assert.Equal(t, "Fresh Traders", list[0].Name)
	assert.Equal(t, "Old Supplies Ltd", list[1].Name)
}

func TestStoreTransactionsChronologicalWithSeqTieBreak(t *testing.T) {
	s := NewStore()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	itemID := uuid.New()

	s.Apply(func(snap *Snapshot) {
		snap.Transactions = append(snap.Transactions,
			entity.StockTransaction{ID: uuid.New(), ItemID: itemID, Seq: 1, OccurredAt: at},
			entity.StockTransaction{ID: uuid.New(), ItemID: itemID, Seq: 0, OccurredAt: at},
			entity.StockTransaction{ID: uuid.New(), ItemID: itemID, Seq: 0, OccurredAt: at.Add(-time.Minute)},
		)
	})

	txs := s.Transactions()
	require.Len(t, txs, 3)
	assert.Equal(t, at.Add(-time.Minute), txs[0].OccurredAt)
	assert.Equal(t, 0, txs[1].Seq)
	assert.Equal(t, 1, txs[2].Seq)
}

func TestStoreTransactionsByItemFilters(t *testing.T) {
	s := NewStore()
	a := uuid.New()
	b := uuid.New()

	s.Apply(func(snap *Snapshot) {
		snap.Transactions = append(snap.Transactions,
			entity.StockTransaction{ID: uuid.New(), ItemID: a},
			entity.StockTransaction{ID: uuid.New(), ItemID: b},
			entity.StockTransaction{ID: uuid.New(), ItemID: a},
		)
	})

	assert.Len(t, s.TransactionsByItem(a), 2)
	assert.Len(t, s.TransactionsByItem(b), 1)
}

func TestStoreReplaceAllSwapsWholeSnapshot(t *testing.T) {
	s := NewStore()
	stale := uuid.New()
	s.Apply(func(snap *Snapshot) {
		snap.Products[stale] = entity.Product{ID: stale, Name: "Outdated"}
	})

	fresh := NewSnapshot()
	keep := uuid.New()
	fresh.Products[keep] = entity.Product{ID: keep, Name: "Current"}
	s.ReplaceAll(fresh)

	_, ok := s.Product(stale)
	assert.False(t, ok)
	got, ok := s.Product(keep)
	require.True(t, ok)
	assert.Equal(t, "Current", got.Name)
}

func TestStoreReadsReturnCopies(t *testing.T) {
	s := NewStore()
	id := uuid.New()
	s.Apply(func(snap *Snapshot) {
		snap.Customers[id] = entity.Customer{ID: id, Name: "Acme"}
	})

	list := s.Customers()
	list[0].Name = "Mutated"

	got, _ := s.Customer(id)
	assert.Equal(t, "Acme", got.Name)
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			id := uuid.New()
			s.Apply(func(snap *Snapshot) {
				snap.Items[id] = entity.Item{ID: id, CurrentStock: dec(1)}
			})
		}()
		go func() {
			defer wg.Done()
			_ = s.Items()
			_ = s.StockLevels()
		}()
	}
	wg.Wait()
	assert.Len(t, s.Items(), 16)
}

func TestRemoveTransactions(t *testing.T) {
	snap := NewSnapshot()
	keep := uuid.New()
	drop := uuid.New()
	snap.Transactions = []entity.StockTransaction{
		{ID: uuid.New(), ItemID: keep},
		{ID: uuid.New(), ItemID: drop},
		{ID: uuid.New(), ItemID: keep},
	}

	snap.RemoveTransactions(func(tx entity.StockTransaction) bool { return tx.ItemID == drop })

	require.Len(t, snap.Transactions, 2)
	for _, tx := range snap.Transactions {
		assert.Equal(t, keep, tx.ItemID)
	}
}

func TestStalenessMonitor(t *testing.T) {
	m := NewStalenessMonitor(5 * time.Minute)
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	assert.False(t, m.Observe(t0), "first observation is never stale")
	assert.False(t, m.Observe(t0.Add(4*time.Minute)))
	assert.False(t, m.Observe(t0.Add(9*time.Minute)), "exactly at threshold is still fresh")
	assert.True(t, m.Observe(t0.Add(9*time.Minute).Add(5*time.Minute+time.Second)))
	// The stale observation resets the window.
	assert.False(t, m.Observe(t0.Add(15*time.Minute)))
}

func TestStalenessMonitorDefaultThreshold(t *testing.T) {
	m := NewStalenessMonitor(0)
	t0 := time.Now()
	assert.False(t, m.Observe(t0))
	assert.True(t, m.Observe(t0.Add(DefaultStaleThreshold+time.Second)))
}
