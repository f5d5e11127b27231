package repository

import (
	"context"
	"errors"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	domainRepo "github.com/TheAdijagtap/erpx/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type purchaseOrderRepository struct {
	db *gorm.DB
}

// NewPurchaseOrderRepository creates a new purchase order repository
func NewPurchaseOrderRepository(db *gorm.DB) domainRepo.PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

func (r *purchaseOrderRepository) Create(ctx context.Context, order *entity.PurchaseOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *purchaseOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	var order entity.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Charges").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *purchaseOrderRepository) GetByOrderNo(ctx context.Context, orderNo string) (*entity.PurchaseOrder, error) {
	var order entity.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Charges").
		First(&order, "order_no = ?", orderNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

// Update replaces the order's lines and charges wholesale so line edits,
// additions and removals all land in one transaction.
func (r *purchaseOrderRepository) Update(ctx context.Context, order *entity.PurchaseOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_order_id = ?", order.ID).Delete(&entity.PurchaseOrderLine{}).Error; err != nil {
			return err
		}
		if err := tx.Where("purchase_order_id = ?", order.ID).Delete(&entity.PurchaseOrderCharge{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(order).Error
	})
}

func (r *purchaseOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_order_id = ?", id).Delete(&entity.PurchaseOrderLine{}).Error; err != nil {
			return err
		}
		if err := tx.Where("purchase_order_id = ?", id).Delete(&entity.PurchaseOrderCharge{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.PurchaseOrder{}, "id = ?", id).Error
	})
}

func (r *purchaseOrderRepository) List(ctx context.Context) ([]entity.PurchaseOrder, error) {
	var orders []entity.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Charges").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

type goodsReceiptRepository struct {
	db *gorm.DB
}

// NewGoodsReceiptRepository creates a new goods receipt repository
func NewGoodsReceiptRepository(db *gorm.DB) domainRepo.GoodsReceiptRepository {
	return &goodsReceiptRepository{db: db}
}

// CreateWithProjection writes the receipt document, the projected stock
// levels, and the ledger entries in one transaction. Either the whole
// fan-out commits or none of it does.
func (r *goodsReceiptRepository) CreateWithProjection(ctx context.Context, receipt *entity.GoodsReceipt, stock map[uuid.UUID]decimal.Decimal, entries []entity.StockTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(receipt).Error; err != nil {
			return err
		}
		for itemID, level := range stock {
			if err := tx.Model(&entity.Item{}).
				Where("id = ?", itemID).
				Update("current_stock", level).Error; err != nil {
				return err
			}
		}
		if len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *goodsReceiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.GoodsReceipt, error) {
	var receipt entity.GoodsReceipt
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Charges").
		First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *goodsReceiptRepository) GetByReceiptNo(ctx context.Context, receiptNo string) (*entity.GoodsReceipt, error) {
	var receipt entity.GoodsReceipt
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Charges").
		First(&receipt, "receipt_no = ?", receiptNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *goodsReceiptRepository) UpdateHeader(ctx context.Context, receipt *entity.GoodsReceipt) error {
	return r.db.WithContext(ctx).Model(&entity.GoodsReceipt{}).
		Where("id = ?", receipt.ID).
		Updates(map[string]interface{}{
			"status": receipt.Status,
			"notes":  receipt.Notes,
		}).Error
}

// DeleteWithReversal removes the receipt and persists the compensating
// stock levels and reversal entries in the same transaction that deletes
// the document.
func (r *goodsReceiptRepository) DeleteWithReversal(ctx context.Context, id uuid.UUID, stock map[uuid.UUID]decimal.Decimal, entries []entity.StockTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goods_receipt_id = ?", id).Delete(&entity.GoodsReceiptLine{}).Error; err != nil {
			return err
		}
		if err := tx.Where("goods_receipt_id = ?", id).Delete(&entity.GoodsReceiptCharge{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entity.GoodsReceipt{}, "id = ?", id).Error; err != nil {
			return err
		}
		for itemID, level := range stock {
			if err := tx.Model(&entity.Item{}).
				Where("id = ?", itemID).
				Update("current_stock", level).Error; err != nil {
				return err
			}
		}
		if len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *goodsReceiptRepository) List(ctx context.Context) ([]entity.GoodsReceipt, error) {
	var receipts []entity.GoodsReceipt
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Charges").
		Order("created_at DESC").
		Find(&receipts).Error
	return receipts, err
}

type proformaInvoiceRepository struct {
	db *gorm.DB
}

// NewProformaInvoiceRepository creates a new proforma invoice repository
func NewProformaInvoiceRepository(db *gorm.DB) domainRepo.ProformaInvoiceRepository {
	return &proformaInvoiceRepository{db: db}
}

func (r *proformaInvoiceRepository) Create(ctx context.Context, invoice *entity.ProformaInvoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *proformaInvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ProformaInvoice, error) {
	var invoice entity.ProformaInvoice
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Charges").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *proformaInvoiceRepository) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.ProformaInvoice, error) {
	var invoice entity.ProformaInvoice
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Charges").
		First(&invoice, "invoice_no = ?", invoiceNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *proformaInvoiceRepository) Update(ctx context.Context, invoice *entity.ProformaInvoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("proforma_invoice_id = ?", invoice.ID).Delete(&entity.ProformaInvoiceLine{}).Error; err != nil {
			return err
		}
		if err := tx.Where("proforma_invoice_id = ?", invoice.ID).Delete(&entity.ProformaInvoiceCharge{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(invoice).Error
	})
}

func (r *proformaInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("proforma_invoice_id = ?", id).Delete(&entity.ProformaInvoiceLine{}).Error; err != nil {
			return err
		}
		if err := tx.Where("proforma_invoice_id = ?", id).Delete(&entity.ProformaInvoiceCharge{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.ProformaInvoice{}, "id = ?", id).Error
	})
}

func (r *proformaInvoiceRepository) List(ctx context.Context) ([]entity.ProformaInvoice, error) {
	var invoices []entity.ProformaInvoice
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Charges").
		Order("created_at DESC").
		Find(&invoices).Error
	return invoices, err
}
