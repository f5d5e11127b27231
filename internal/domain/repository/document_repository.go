package repository

import (
	"context"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrderRepository defines the interface for purchase order data operations
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error)
	GetByOrderNo(ctx context.Context, orderNo string) (*entity.PurchaseOrder, error)
	Update(ctx context.Context, order *entity.PurchaseOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.PurchaseOrder, error)
}

// GoodsReceiptRepository defines the interface for goods receipt data
// operations. Receipt creation and deletion carry inventory side effects,
// so the compound methods take the projected stock levels and ledger
// entries and persist everything in a single transaction.
type GoodsReceiptRepository interface {
	// CreateWithProjection persists the receipt, its lines and charges,
	// the projected stock levels, and the ledger entries atomically.
	CreateWithProjection(ctx context.Context, receipt *entity.GoodsReceipt, stock map[uuid.UUID]decimal.Decimal, entries []entity.StockTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.GoodsReceipt, error)
	GetByReceiptNo(ctx context.Context, receiptNo string) (*entity.GoodsReceipt, error)
	// UpdateHeader writes the mutable header fields only. Lines and
	// charges are immutable once their projection has been applied.
	UpdateHeader(ctx context.Context, receipt *entity.GoodsReceipt) error
	// DeleteWithReversal removes the receipt and persists the
	// compensating stock levels and reversal entries atomically.
	DeleteWithReversal(ctx context.Context, id uuid.UUID, stock map[uuid.UUID]decimal.Decimal, entries []entity.StockTransaction) error
	List(ctx context.Context) ([]entity.GoodsReceipt, error)
}

// ProformaInvoiceRepository defines the interface for proforma invoice data operations
type ProformaInvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.ProformaInvoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ProformaInvoice, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.ProformaInvoice, error)
	Update(ctx context.Context, invoice *entity.ProformaInvoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.ProformaInvoice, error)
}
