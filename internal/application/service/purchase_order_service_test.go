package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	"github.com/TheAdijagtap/erpx/internal/domain/enum"
	infraRepo "github.com/TheAdijagtap/erpx/internal/infrastructure/repository"
)

func TestPurchaseOrder_JoinsFollowSupplierChange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orders := NewPurchaseOrderService(env.store, env.pipeline, infraRepo.NewPurchaseOrderRepository(env.db))
	item := env.createItem(t, "Timber 2x4")

	first, err := env.suppliers.CreateSupplier(ctx, &ContactInput{UserID: env.userID, Name: "North Yard"})
	require.NoError(t, err)
	second, err := env.suppliers.CreateSupplier(ctx, &ContactInput{UserID: env.userID, Name: "South Yard"})
	require.NoError(t, err)

	created, err := orders.CreatePurchaseOrder(ctx, &CreatePurchaseOrderInput{
		UserID:     env.userID,
		SupplierID: &first.ID,
		Date:       time.Now(),
		Tax:        TaxInput{Mode: enum.TaxModeDisabled},
		Lines: []DocumentLineInput{
			{ItemID: &item.ID, Description: "Timber 2x4", Quantity: decimal.NewFromInt(40), UnitPrice: decimal.NewFromInt(3)},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, created.Supplier)
	assert.Equal(t, "North Yard", created.Supplier.Name)
	require.NotNil(t, created.Lines[0].Item)

	updated, err := orders.UpdatePurchaseOrder(ctx, &UpdatePurchaseOrderInput{
		ID:         created.ID,
		SupplierID: &second.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Supplier)
	assert.Equal(t, "South Yard", updated.Supplier.Name)
	require.NotNil(t, updated.Lines[0].Item)

	// The embedded records are read model copies; the write must not
	// touch the suppliers table.
	var count int64
	require.NoError(t, env.db.Model(&entity.Supplier{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	require.NoError(t, env.pipeline.Reload(ctx))
	got, ok := env.store.PurchaseOrder(created.ID)
	require.True(t, ok)
	require.NotNil(t, got.Supplier)
	assert.Equal(t, second.ID, got.Supplier.ID)
	require.NotNil(t, got.Lines[0].Item)
}
