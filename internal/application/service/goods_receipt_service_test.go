package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	"github.com/TheAdijagtap/erpx/internal/domain/enum"
	domainRepo "github.com/TheAdijagtap/erpx/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGoodsReceipt_FansOutToStockAndLedger(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	item := env.createItem(t, "Cement 50kg")

	receipt, err := env.receipts.CreateGoodsReceipt(ctx, &CreateGoodsReceiptInput{
		UserID: env.userID,
		Date:   time.Now(),
		Tax:    TaxInput{Mode: enum.TaxModeDisabled},
		Lines: []ReceiptLineInput{
			{ItemID: &item.ID, Description: "Cement 50kg", ReceivedQuantity: decimal.NewFromInt(20), UnitPrice: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, receipt.ReceiptNo)

	// Snapshot sees the new stock level and one ledger entry.
	got, ok := env.store.Item(item.ID)
	require.True(t, ok)
	assert.True(t, got.CurrentStock.Equal(decimal.NewFromInt(20)))

	txs := env.store.TransactionsByItem(item.ID)
	require.Len(t, txs, 1)
	assert.Equal(t, enum.TransactionDirectionIn, txs[0].Direction)
	assert.True(t, txs[0].Quantity.Equal(decimal.NewFromInt(20)))
	require.NotNil(t, txs[0].Reference)
	assert.Equal(t, receipt.ReceiptNo, *txs[0].Reference)

	// The database agrees with the snapshot.
	dbItem, err := env.itemRepo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, dbItem.CurrentStock.Equal(decimal.NewFromInt(20)))

	dbReceipt, err := env.receiptRepo.GetByID(ctx, receipt.ID)
	require.NoError(t, err)
	require.Len(t, dbReceipt.Lines, 1)
	assert.True(t, dbReceipt.Total.Equal(decimal.NewFromInt(200)))

	dbTxs, err := env.txRepo.ListByReference(ctx, receipt.ReceiptNo)
	require.NoError(t, err)
	require.Len(t, dbTxs, 1)
	assert.Equal(t, enum.TransactionDirectionIn, dbTxs[0].Direction)
}

func TestCreateGoodsReceipt_FreeTextLineSkipsLedger(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	receipt, err := env.receipts.CreateGoodsReceipt(ctx, &CreateGoodsReceiptInput{
		UserID: env.userID,
		Date:   time.Now(),
		Tax:    TaxInput{Mode: enum.TaxModeDisabled},
		Lines: []ReceiptLineInput{
			{Description: "Delivery fee", ReceivedQuantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(50)},
		},
	})
	require.NoError(t, err)

	// The line still counts toward the total but moves no stock.
	assert.True(t, receipt.Total.Equal(decimal.NewFromInt(50)))
	assert.Empty(t, env.store.Transactions())
}

func TestCreateGoodsReceipt_TaxTotalsPersisted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	item := env.createItem(t, "Rebar 12mm")

	receipt, err := env.receipts.CreateGoodsReceipt(ctx, &CreateGoodsReceiptInput{
		UserID: env.userID,
		Date:   time.Now(),
		Tax:    TaxInput{Mode: enum.TaxModeDualRate, RateA: decimal.NewFromInt(18), RateB: decimal.NewFromFloat(1.2)},
		Lines: []ReceiptLineInput{
			{ItemID: &item.ID, Description: "Rebar 12mm", ReceivedQuantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(100)},
		},
		Charges: []ChargeInput{{Name: "Freight", Amount: decimal.NewFromInt(40)}},
	})
	require.NoError(t, err)

	// Charges join the taxable base: 1040 at 18% and 1.2%.
	assert.True(t, receipt.Subtotal.Equal(decimal.NewFromInt(1000)))
	assert.True(t, receipt.TaxAmountA.Equal(decimal.NewFromFloat(187.2)))
	assert.True(t, receipt.TaxAmountB.Equal(decimal.NewFromFloat(12.48)))
	assert.True(t, receipt.Total.Equal(decimal.NewFromFloat(1239.68)))

	dbReceipt, err := env.receiptRepo.GetByID(ctx, receipt.ID)
	require.NoError(t, err)
	assert.True(t, dbReceipt.Total.Equal(receipt.Total))
	require.Len(t, dbReceipt.Charges, 1)
}

func TestDeleteGoodsReceipt_ReversesStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	item := env.createItem(t, "Paint 20L")

	receipt, err := env.receipts.CreateGoodsReceipt(ctx, &CreateGoodsReceiptInput{
		UserID: env.userID,
		Date:   time.Now(),
		Tax:    TaxInput{Mode: enum.TaxModeDisabled},
		Lines: []ReceiptLineInput{
			{ItemID: &item.ID, Description: "Paint 20L", ReceivedQuantity: decimal.NewFromInt(8), UnitPrice: decimal.NewFromInt(25)},
		},
	})
	require.NoError(t, err)

	require.NoError(t, env.receipts.DeleteGoodsReceipt(ctx, env.userID, receipt.ID))

	_, ok := env.store.GoodsReceipt(receipt.ID)
	assert.False(t, ok)

	got, ok := env.store.Item(item.ID)
	require.True(t, ok)
	assert.True(t, got.CurrentStock.IsZero())

	// The original IN entry stays; a compensating OUT entry joins it.
	txs := env.store.TransactionsByItem(item.ID)
	require.Len(t, txs, 2)
	assert.Equal(t, enum.TransactionDirectionIn, txs[0].Direction)
	assert.Equal(t, enum.TransactionDirectionOut, txs[1].Direction)
	assert.True(t, txs[1].Quantity.Equal(decimal.NewFromInt(8)))

	dbItem, err := env.itemRepo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, dbItem.CurrentStock.IsZero())

	dbReceipt, err := env.receiptRepo.GetByID(ctx, receipt.ID)
	require.NoError(t, err)
	assert.Nil(t, dbReceipt)
}

func TestDeleteGoodsReceipt_ReversalClampsAtZero(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	item := env.createItem(t, "Gravel")

	receipt, err := env.receipts.CreateGoodsReceipt(ctx, &CreateGoodsReceiptInput{
		UserID: env.userID,
		Date:   time.Now(),
		Tax:    TaxInput{Mode: enum.TaxModeDisabled},
		Lines: []ReceiptLineInput{
			{ItemID: &item.ID, Description: "Gravel", ReceivedQuantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(5)},
		},
	})
	require.NoError(t, err)

	// Stock consumed between receipt and deletion.
	_, err = env.inventory.AdjustStock(ctx, &AdjustStockInput{
		UserID:    env.userID,
		ItemID:    item.ID,
		Direction: enum.TransactionDirectionOut,
		Quantity:  decimal.NewFromInt(7),
		Reason:    "Used on site",
	})
	require.NoError(t, err)

	require.NoError(t, env.receipts.DeleteGoodsReceipt(ctx, env.userID, receipt.ID))

	got, ok := env.store.Item(item.ID)
	require.True(t, ok)
	assert.True(t, got.CurrentStock.IsZero())

	// The reversal records only the 3 units that could actually leave.
	txs := env.store.TransactionsByItem(item.ID)
	require.Len(t, txs, 3)
	last := txs[len(txs)-1]
	assert.Equal(t, enum.TransactionDirectionOut, last.Direction)
	assert.True(t, last.Quantity.Equal(decimal.NewFromInt(3)))
}

type failingReceiptRepo struct {
	domainRepo.GoodsReceiptRepository
}

func (failingReceiptRepo) CreateWithProjection(ctx context.Context, receipt *entity.GoodsReceipt, stock map[uuid.UUID]decimal.Decimal, entries []entity.StockTransaction) error {
	return errors.New("connection refused")
}

func TestCreateGoodsReceipt_RollsBackOnRemoteFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	item := env.createItem(t, "Timber")

	broken := NewGoodsReceiptService(env.store, env.pipeline, failingReceiptRepo{env.receiptRepo})

	_, err := broken.CreateGoodsReceipt(ctx, &CreateGoodsReceiptInput{
		UserID: env.userID,
		Date:   time.Now(),
		Tax:    TaxInput{Mode: enum.TaxModeDisabled},
		Lines: []ReceiptLineInput{
			{ItemID: &item.ID, Description: "Timber", ReceivedQuantity: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(30)},
		},
	})
	require.Error(t, err)

	// The optimistic patch was undone in full.
	got, ok := env.store.Item(item.ID)
	require.True(t, ok)
	assert.True(t, got.CurrentStock.IsZero())
	assert.Empty(t, env.store.Transactions())
	assert.Empty(t, env.store.GoodsReceipts())

	var count int64
	require.NoError(t, env.db.Model(&entity.GoodsReceipt{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGoodsReceipt_ReloadMatchesDatabase(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	item := env.createItem(t, "Sand")

	receipt, err := env.receipts.CreateGoodsReceipt(ctx, &CreateGoodsReceiptInput{
		UserID: env.userID,
		Date:   time.Now(),
		Tax:    TaxInput{Mode: enum.TaxModeDisabled},
		Lines: []ReceiptLineInput{
			{ItemID: &item.ID, Description: "Sand", ReceivedQuantity: decimal.NewFromInt(12), UnitPrice: decimal.NewFromInt(4)},
		},
	})
	require.NoError(t, err)

	// A cold reload rebuilds the same state the optimistic patch produced.
	require.NoError(t, env.pipeline.Reload(ctx))

	reloaded, ok := env.store.GoodsReceipt(receipt.ID)
	require.True(t, ok)
	assert.True(t, reloaded.Total.Equal(receipt.Total))
	require.Len(t, reloaded.Lines, 1)

	got, ok := env.store.Item(item.ID)
	require.True(t, ok)
	assert.True(t, got.CurrentStock.Equal(decimal.NewFromInt(12)))
	assert.Len(t, env.store.TransactionsByItem(item.ID), 1)
}

func TestCreateGoodsReceipt_EmbedsSupplierAndItemJoins(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	item := env.createItem(t, "Bricks")

	supplier, err := env.suppliers.CreateSupplier(ctx, &ContactInput{
		UserID: env.userID,
		Name:   "Acme Building Supplies",
	})
	require.NoError(t, err)

	receipt, err := env.receipts.CreateGoodsReceipt(ctx, &CreateGoodsReceiptInput{
		UserID:     env.userID,
		SupplierID: &supplier.ID,
		Date:       time.Now(),
		Tax:        TaxInput{Mode: enum.TaxModeDisabled},
		Lines: []ReceiptLineInput{
			{ItemID: &item.ID, Description: "Bricks", ReceivedQuantity: decimal.NewFromInt(500), UnitPrice: decimal.NewFromFloat(0.5)},
		},
	})
	require.NoError(t, err)

	// The cached document resolves its relations up front, so a read
	// never needs a second lookup.
	require.NotNil(t, receipt.Supplier)
	assert.Equal(t, "Acme Building Supplies", receipt.Supplier.Name)
	require.Len(t, receipt.Lines, 1)
	require.NotNil(t, receipt.Lines[0].Item)
	assert.Equal(t, item.SKU, receipt.Lines[0].Item.SKU)

	got, ok := env.store.GoodsReceipt(receipt.ID)
	require.True(t, ok)
	require.NotNil(t, got.Supplier)
	assert.Equal(t, supplier.ID, got.Supplier.ID)
	require.NotNil(t, got.Lines[0].Item)
}

func TestGoodsReceipt_ReloadEmbedsJoins(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	item := env.createItem(t, "Gravel")

	supplier, err := env.suppliers.CreateSupplier(ctx, &ContactInput{
		UserID: env.userID,
		Name:   "Quarry Direct",
	})
	require.NoError(t, err)

	receipt, err := env.receipts.CreateGoodsReceipt(ctx, &CreateGoodsReceiptInput{
		UserID:     env.userID,
		SupplierID: &supplier.ID,
		Date:       time.Now(),
		Tax:        TaxInput{Mode: enum.TaxModeDisabled},
		Lines: []ReceiptLineInput{
			{ItemID: &item.ID, Description: "Gravel", ReceivedQuantity: decimal.NewFromInt(30), UnitPrice: decimal.NewFromInt(8)},
		},
	})
	require.NoError(t, err)

	// A cold reload re-resolves the joins from the database, not just
	// the optimistic patch.
	require.NoError(t, env.pipeline.Reload(ctx))

	got, ok := env.store.GoodsReceipt(receipt.ID)
	require.True(t, ok)
	require.NotNil(t, got.Supplier)
	assert.Equal(t, "Quarry Direct", got.Supplier.Name)
	require.Len(t, got.Lines, 1)
	require.NotNil(t, got.Lines[0].Item)
	assert.Equal(t, item.ID, got.Lines[0].Item.ID)
}

func TestUpdateGoodsReceipt_HeaderOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	item := env.createItem(t, "Nails")

	receipt, err := env.receipts.CreateGoodsReceipt(ctx, &CreateGoodsReceiptInput{
		UserID: env.userID,
		Date:   time.Now(),
		Tax:    TaxInput{Mode: enum.TaxModeDisabled},
		Lines: []ReceiptLineInput{
			{ItemID: &item.ID, Description: "Nails", ReceivedQuantity: decimal.NewFromInt(100), UnitPrice: decimal.NewFromInt(1)},
		},
	})
	require.NoError(t, err)

	notes := "Checked against delivery note"
	cancelled := enum.DocumentStatusCancelled
	updated, err := env.receipts.UpdateGoodsReceipt(ctx, &UpdateGoodsReceiptInput{
		ID:     receipt.ID,
		Status: &cancelled,
		Notes:  &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.DocumentStatusCancelled, updated.Status)

	// Stock and ledger are untouched by a header update.
	got, _ := env.store.Item(item.ID)
	assert.True(t, got.CurrentStock.Equal(decimal.NewFromInt(100)))
	assert.Len(t, env.store.TransactionsByItem(item.ID), 1)

	dbReceipt, err := env.receiptRepo.GetByID(ctx, receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.DocumentStatusCancelled, dbReceipt.Status)
	require.NotNil(t, dbReceipt.Notes)
	assert.Equal(t, notes, *dbReceipt.Notes)
}
