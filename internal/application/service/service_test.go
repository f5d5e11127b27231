package service

import (
	"context"
	"testing"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	domainRepo "github.com/TheAdijagtap/erpx/internal/domain/repository"
	infraRepo "github.com/TheAdijagtap/erpx/internal/infrastructure/repository"
	"github.com/TheAdijagtap/erpx/internal/mutation"
	"github.com/TheAdijagtap/erpx/internal/readmodel"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	store    *readmodel.Store
	pipeline *mutation.Pipeline
	userID   uuid.UUID

	itemRepo    domainRepo.ItemRepository
	receiptRepo domainRepo.GoodsReceiptRepository
	txRepo      domainRepo.StockTransactionRepository

	inventory *InventoryService
	receipts  *GoodsReceiptService
	suppliers *SupplierService
	payroll   *PayrollService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Item{},
		&entity.StockTransaction{},
		&entity.Product{},
		&entity.Supplier{},
		&entity.Customer{},
		&entity.PurchaseOrder{},
		&entity.PurchaseOrderLine{},
		&entity.PurchaseOrderCharge{},
		&entity.GoodsReceipt{},
		&entity.GoodsReceiptLine{},
		&entity.GoodsReceiptCharge{},
		&entity.ProformaInvoice{},
		&entity.ProformaInvoiceLine{},
		&entity.ProformaInvoiceCharge{},
		&entity.Employee{},
		&entity.PayrollRecord{},
	)
	require.NoError(t, err)

	user := entity.User{ID: uuid.New(), FirstName: "Test", LastName: "User", Email: "test@example.com", Provider: "local", Role: "admin"}
	require.NoError(t, db.Create(&user).Error)

	store := readmodel.NewStore()
	loader := infraRepo.NewSnapshotLoader(db)
	pipeline := mutation.NewPipeline(store, loader)
	require.NoError(t, pipeline.Reload(context.Background()))

	itemRepo := infraRepo.NewItemRepository(db)
	receiptRepo := infraRepo.NewGoodsReceiptRepository(db)
	supplierRepo := infraRepo.NewSupplierRepository(db)
	employeeRepo := infraRepo.NewEmployeeRepository(db)
	payrollRepo := infraRepo.NewPayrollRepository(db)

	return &testEnv{
		db:          db,
		store:       store,
		pipeline:    pipeline,
		userID:      user.ID,
		itemRepo:    itemRepo,
		receiptRepo: receiptRepo,
		txRepo:      infraRepo.NewStockTransactionRepository(db),
		inventory:   NewInventoryService(store, pipeline, itemRepo),
		receipts:    NewGoodsReceiptService(store, pipeline, receiptRepo),
		suppliers:   NewSupplierService(store, pipeline, supplierRepo),
		payroll:     NewPayrollService(store, pipeline, employeeRepo, payrollRepo),
	}
}

func (e *testEnv) createItem(t *testing.T, name string) *entity.Item {
	t.Helper()
	item, err := e.inventory.CreateItem(context.Background(), &CreateItemInput{
		UserID:    e.userID,
		Name:      name,
		UnitPrice: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	return item
}
