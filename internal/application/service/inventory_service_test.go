package service

import (
	"context"
	"testing"

	"github.com/TheAdijagtap/erpx/internal/domain/enum"
	"github.com/TheAdijagtap/erpx/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateItem_GeneratesSKUAndStartsEmpty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item, err := env.inventory.CreateItem(ctx, &CreateItemInput{
		UserID:    env.userID,
		Name:      "Plywood 18mm",
		UnitPrice: decimal.NewFromInt(45),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.SKU)
	assert.Equal(t, "pcs", item.Unit)
	assert.True(t, item.CurrentStock.IsZero())

	dbItem, err := env.itemRepo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.SKU, dbItem.SKU)
}

func TestCreateItem_RejectsDuplicateSKU(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.inventory.CreateItem(ctx, &CreateItemInput{UserID: env.userID, Name: "First", SKU: "ITM-AAAA"})
	require.NoError(t, err)

	_, err = env.inventory.CreateItem(ctx, &CreateItemInput{UserID: env.userID, Name: "Second", SKU: "ITM-AAAA"})
	require.Error(t, err)
}

func TestAdjustStock_InThenOut(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	item := env.createItem(t, "Bricks")

	_, err := env.inventory.AdjustStock(ctx, &AdjustStockInput{
		UserID:    env.userID,
		ItemID:    item.ID,
		Direction: enum.TransactionDirectionIn,
		Quantity:  decimal.NewFromInt(50),
		Reason:    "Opening stock",
	})
	require.NoError(t, err)

	updated, err := env.inventory.AdjustStock(ctx, &AdjustStockInput{
		UserID:    env.userID,
		ItemID:    item.ID,
		Direction: enum.TransactionDirectionOut,
		Quantity:  decimal.NewFromInt(20),
		Reason:    "Damaged",
	})
	require.NoError(t, err)
	assert.True(t, updated.CurrentStock.Equal(decimal.NewFromInt(30)))

	dbItem, err := env.itemRepo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, dbItem.CurrentStock.Equal(decimal.NewFromInt(30)))
	assert.Len(t, env.store.TransactionsByItem(item.ID), 2)
}

func TestAdjustStock_OutClampsAtZero(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	item := env.createItem(t, "Screws")

	_, err := env.inventory.AdjustStock(ctx, &AdjustStockInput{
		UserID:    env.userID,
		ItemID:    item.ID,
		Direction: enum.TransactionDirectionIn,
		Quantity:  decimal.NewFromInt(5),
		Reason:    "Opening stock",
	})
	require.NoError(t, err)

	updated, err := env.inventory.AdjustStock(ctx, &AdjustStockInput{
		UserID:    env.userID,
		ItemID:    item.ID,
		Direction: enum.TransactionDirectionOut,
		Quantity:  decimal.NewFromInt(50),
		Reason:    "Stock count correction",
	})
	require.NoError(t, err)
	assert.True(t, updated.CurrentStock.IsZero())

	// The ledger records the 5 units that actually moved, not 50.
	txs := env.store.TransactionsByItem(item.ID)
	require.Len(t, txs, 2)
	assert.True(t, txs[1].Quantity.Equal(decimal.NewFromInt(5)))
}

func TestAdjustStock_RequiresReason(t *testing.T) {
	env := newTestEnv(t)
	item := env.createItem(t, "Wire")

	_, err := env.inventory.AdjustStock(context.Background(), &AdjustStockInput{
		UserID:    env.userID,
		ItemID:    item.ID,
		Direction: enum.TransactionDirectionIn,
		Quantity:  decimal.NewFromInt(1),
	})
	require.Error(t, err)
}

func TestDeleteItem_CascadesTransactions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	item := env.createItem(t, "Pipes")

	_, err := env.inventory.AdjustStock(ctx, &AdjustStockInput{
		UserID:    env.userID,
		ItemID:    item.ID,
		Direction: enum.TransactionDirectionIn,
		Quantity:  decimal.NewFromInt(10),
		Reason:    "Opening stock",
	})
	require.NoError(t, err)

	require.NoError(t, env.inventory.DeleteItem(ctx, item.ID))

	_, ok := env.store.Item(item.ID)
	assert.False(t, ok)
	assert.Empty(t, env.store.TransactionsByItem(item.ID))

	dbItem, err := env.itemRepo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, dbItem)

	dbTxs, err := env.txRepo.ListByItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Empty(t, dbTxs)
}

func TestListItems_SearchFiltersByNameAndSKU(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createItem(t, "Cement 50kg")
	env.createItem(t, "White paint")

	result, err := env.inventory.ListItems(ctx, pagination.DefaultPagination(), "cement")
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Cement 50kg", result.Items[0].Name)
}

func TestListLowStockItems(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	low, err := env.inventory.CreateItem(ctx, &CreateItemInput{
		UserID:   env.userID,
		Name:     "Glue",
		MinStock: decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	ok, err := env.inventory.CreateItem(ctx, &CreateItemInput{
		UserID:   env.userID,
		Name:     "Tape",
		MinStock: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	_, err = env.inventory.AdjustStock(ctx, &AdjustStockInput{
		UserID:    env.userID,
		ItemID:    ok.ID,
		Direction: enum.TransactionDirectionIn,
		Quantity:  decimal.NewFromInt(20),
		Reason:    "Opening stock",
	})
	require.NoError(t, err)

	items, err := env.inventory.ListLowStockItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, low.ID, items[0].ID)
}
