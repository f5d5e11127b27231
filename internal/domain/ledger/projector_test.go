package ledger

import (
	"testing"
	"time"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	"github.com/TheAdijagtap/erpx/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func TestProjectReceipt_IncreasesStockAndEmitsEntry(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()
	now := time.Now()

	proj := ProjectReceipt(userID, "GR-0001", now, []ReceiptLine{
		{ItemID: &itemID, ReceivedQuantity: dec(30), UnitPrice: dec(1200)},
	}, map[uuid.UUID]decimal.Decimal{itemID: dec(25)})

	require.Len(t, proj.Entries, 1)
	assert.True(t, proj.StockLevels[itemID].Equal(dec(55)), "new stock = %s", proj.StockLevels[itemID])

	e := proj.Entries[0]
	assert.Equal(t, enum.TransactionDirectionIn, e.Direction)
	assert.True(t, e.Quantity.Equal(dec(30)))
	assert.True(t, e.TotalValue.Equal(dec(36000)), "total value = %s", e.TotalValue)
	require.NotNil(t, e.Reference)
	assert.Equal(t, "GR-0001", *e.Reference)
}

func TestProjectReceipt_OneEntryPerValidLine(t *testing.T) {
	userID := uuid.New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	stock := map[uuid.UUID]decimal.Decimal{a: dec(1), b: dec(2), c: dec(3)}

	proj := ProjectReceipt(userID, "GR-0002", time.Now(), []ReceiptLine{
		{ItemID: &a, ReceivedQuantity: dec(5), UnitPrice: dec(10)},
		{ItemID: &b, ReceivedQuantity: dec(7), UnitPrice: dec(20)},
		{ItemID: &c, ReceivedQuantity: dec(9), UnitPrice: dec(30)},
	}, stock)

	require.Len(t, proj.Entries, 3)
	for i, e := range proj.Entries {
		assert.Equal(t, i, e.Seq)
		assert.Equal(t, enum.TransactionDirectionIn, e.Direction)
		assert.True(t, e.TotalValue.Equal(e.Quantity.Mul(e.UnitPrice)))
	}

	// Entries follow source-line order.
	assert.Equal(t, a, proj.Entries[0].ItemID)
	assert.Equal(t, b, proj.Entries[1].ItemID)
	assert.Equal(t, c, proj.Entries[2].ItemID)
}

func TestProjectReceipt_SkipsFreeTextLines(t *testing.T) {
	itemID := uuid.New()
	stock := map[uuid.UUID]decimal.Decimal{itemID: dec(10)}

	proj := ProjectReceipt(uuid.New(), "GR-0003", time.Now(), []ReceiptLine{
		{ItemID: nil, ReceivedQuantity: dec(4), UnitPrice: dec(99)},
		{ItemID: &itemID, ReceivedQuantity: dec(1), UnitPrice: dec(5)},
	}, stock)

	require.Len(t, proj.Entries, 1)
	assert.Equal(t, itemID, proj.Entries[0].ItemID)
	assert.Len(t, proj.StockLevels, 1)
}

func TestProjectReceipt_SkipsUnknownItem(t *testing.T) {
	deleted := uuid.New()

	proj := ProjectReceipt(uuid.New(), "GR-0004", time.Now(), []ReceiptLine{
		{ItemID: &deleted, ReceivedQuantity: dec(10), UnitPrice: dec(1)},
	}, map[uuid.UUID]decimal.Decimal{})

	assert.Empty(t, proj.Entries)
	assert.Empty(t, proj.StockLevels)
}

func TestProjectReceipt_SkipsZeroQuantity(t *testing.T) {
	itemID := uuid.New()
	stock := map[uuid.UUID]decimal.Decimal{itemID: dec(10)}

	proj := ProjectReceipt(uuid.New(), "GR-0005", time.Now(), []ReceiptLine{
		{ItemID: &itemID, ReceivedQuantity: dec(0), UnitPrice: dec(5)},
	}, stock)

	assert.Empty(t, proj.Entries)
}

func TestProjectReceipt_SameItemTwiceAccumulates(t *testing.T) {
	itemID := uuid.New()
	stock := map[uuid.UUID]decimal.Decimal{itemID: dec(5)}

	proj := ProjectReceipt(uuid.New(), "GR-0006", time.Now(), []ReceiptLine{
		{ItemID: &itemID, ReceivedQuantity: dec(3), UnitPrice: dec(10)},
		{ItemID: &itemID, ReceivedQuantity: dec(2), UnitPrice: dec(10)},
	}, stock)

	require.Len(t, proj.Entries, 2)
	assert.True(t, proj.StockLevels[itemID].Equal(dec(10)))
}

func TestReverseReceipt_EmitsCompensatingOutEntries(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()

	original := []entity.StockTransaction{
		{ItemID: itemID, Direction: enum.TransactionDirectionIn, Quantity: dec(30), UnitPrice: dec(1200)},
	}
	proj := ReverseReceipt(userID, "GR-0001", time.Now(), original, map[uuid.UUID]decimal.Decimal{itemID: dec(55)})

	require.Len(t, proj.Entries, 1)
	assert.Equal(t, enum.TransactionDirectionOut, proj.Entries[0].Direction)
	assert.True(t, proj.Entries[0].Quantity.Equal(dec(30)))
	assert.True(t, proj.StockLevels[itemID].Equal(dec(25)))
}

func TestReverseReceipt_ClampsAtZero(t *testing.T) {
	itemID := uuid.New()

	// 30 were received but only 12 remain: the reversal drains to zero.
	original := []entity.StockTransaction{
		{ItemID: itemID, Direction: enum.TransactionDirectionIn, Quantity: dec(30), UnitPrice: dec(10)},
	}
	proj := ReverseReceipt(uuid.New(), "GR-0007", time.Now(), original, map[uuid.UUID]decimal.Decimal{itemID: dec(12)})

	require.Len(t, proj.Entries, 1)
	assert.True(t, proj.Entries[0].Quantity.Equal(dec(12)))
	assert.True(t, proj.StockLevels[itemID].IsZero())
}

func TestProjectAdjustment_OutClampsAtZero(t *testing.T) {
	item := &entity.Item{ID: uuid.New(), CurrentStock: dec(25), UnitPrice: dec(10)}

	adj := ProjectAdjustment(uuid.New(), item, enum.TransactionDirectionOut, dec(40), "Damage write-off", time.Now())

	assert.True(t, adj.NewStock.IsZero(), "stock clamps at zero, not -15")
	require.NotNil(t, adj.Entry)
	assert.True(t, adj.Entry.Quantity.Equal(dec(25)), "entry records the effective quantity")
}

func TestProjectAdjustment_OutAgainstEmptyStockEmitsNothing(t *testing.T) {
	item := &entity.Item{ID: uuid.New(), CurrentStock: dec(0), UnitPrice: dec(10)}

	adj := ProjectAdjustment(uuid.New(), item, enum.TransactionDirectionOut, dec(5), "Damage write-off", time.Now())

	assert.True(t, adj.NewStock.IsZero())
	assert.Nil(t, adj.Entry)
}

func TestProjectAdjustment_In(t *testing.T) {
	item := &entity.Item{ID: uuid.New(), CurrentStock: dec(3), UnitPrice: dec(7)}

	adj := ProjectAdjustment(uuid.New(), item, enum.TransactionDirectionIn, dec(4), "Stock count correction", time.Now())

	assert.True(t, adj.NewStock.Equal(dec(7)))
	require.NotNil(t, adj.Entry)
	assert.Equal(t, enum.TransactionDirectionIn, adj.Entry.Direction)
}

func TestStockNeverNegativeUnderAnySequence(t *testing.T) {
	item := &entity.Item{ID: uuid.New(), CurrentStock: dec(10), UnitPrice: dec(1)}
	userID := uuid.New()

	seq := []struct {
		dir enum.TransactionDirection
		qty float64
	}{
		{enum.TransactionDirectionOut, 4},
		{enum.TransactionDirectionOut, 9},
		{enum.TransactionDirectionIn, 2},
		{enum.TransactionDirectionOut, 100},
		{enum.TransactionDirectionIn, 1},
	}

	for _, step := range seq {
		adj := ProjectAdjustment(userID, item, step.dir, dec(step.qty), "test", time.Now())
		require.False(t, adj.NewStock.IsNegative(), "stock went negative after %s %v", step.dir, step.qty)
		item.CurrentStock = adj.NewStock
	}

	// 10 -4 =6, -9 clamps to 0, +2 =2, -100 clamps to 0, +1 =1
	assert.True(t, item.CurrentStock.Equal(dec(1)), "final stock = %s", item.CurrentStock)
}
