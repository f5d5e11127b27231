package entity

import (
	"time"

	"github.com/TheAdijagtap/erpx/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GoodsReceipt represents goods received from a supplier. Creating a
// receipt is the only operation that increases inventory stock through
// the ledger projector; line items are immutable after creation.
type GoodsReceipt struct {
	ID              uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	SupplierID      *uuid.UUID          `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	PurchaseOrderID *uuid.UUID          `gorm:"type:uuid;index" json:"purchase_order_id,omitempty"`
	ReceiptNo       string              `gorm:"size:100;unique;not null" json:"receipt_no"`
	Date            time.Time           `gorm:"type:date;not null" json:"date"`
	Status          enum.DocumentStatus `gorm:"default:0" json:"status"`
	TaxMode         enum.TaxMode        `gorm:"default:0" json:"tax_mode"`
	TaxRateA        decimal.Decimal     `gorm:"type:decimal(5,2);default:0" json:"tax_rate_a"`
	TaxRateB        decimal.Decimal     `gorm:"type:decimal(5,2);default:0" json:"tax_rate_b"`
	Subtotal        decimal.Decimal     `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	TaxAmountA      decimal.Decimal     `gorm:"type:decimal(15,2);default:0" json:"tax_amount_a"`
	TaxAmountB      decimal.Decimal     `gorm:"type:decimal(15,2);default:0" json:"tax_amount_b"`
	Total           decimal.Decimal     `gorm:"type:decimal(15,2);default:0" json:"total"`
	Notes           *string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	DeletedAt       gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	User          User                 `gorm:"foreignKey:UserID" json:"-"`
	Supplier      *Supplier            `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	PurchaseOrder *PurchaseOrder       `gorm:"foreignKey:PurchaseOrderID" json:"purchase_order,omitempty"`
	Lines         []GoodsReceiptLine   `gorm:"foreignKey:GoodsReceiptID" json:"lines,omitempty"`
	Charges       []GoodsReceiptCharge `gorm:"foreignKey:GoodsReceiptID" json:"charges,omitempty"`
}

// BeforeCreate generates a UUID before creating a new goods receipt
func (g *GoodsReceipt) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the GoodsReceipt model
func (GoodsReceipt) TableName() string {
	return "goods_receipts"
}

// GoodsReceiptLine represents a line item in a goods receipt. A nil
// ItemID means a free-text line with no inventory effect.
type GoodsReceiptLine struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	GoodsReceiptID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"goods_receipt_id"`
	ItemID           *uuid.UUID       `gorm:"type:uuid;index" json:"item_id,omitempty"`
	Description      string           `gorm:"size:255" json:"description"`
	OrderedQuantity  *decimal.Decimal `gorm:"type:decimal(15,3)" json:"ordered_quantity,omitempty"`
	ReceivedQuantity decimal.Decimal  `gorm:"type:decimal(15,3);not null" json:"received_quantity"`
	UnitPrice        decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	LineTotal        decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"line_total"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`

	// Relationships
	GoodsReceipt GoodsReceipt `gorm:"foreignKey:GoodsReceiptID" json:"-"`
	Item         *Item        `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new goods receipt line
func (l *GoodsReceiptLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the GoodsReceiptLine model
func (GoodsReceiptLine) TableName() string {
	return "goods_receipt_lines"
}

// GoodsReceiptCharge represents an additional charge added to the taxable
// base of a goods receipt.
type GoodsReceiptCharge struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	GoodsReceiptID uuid.UUID       `gorm:"type:uuid;not null;index" json:"goods_receipt_id"`
	Name           string          `gorm:"size:255;not null" json:"name"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt      time.Time       `json:"created_at"`

	// Relationships
	GoodsReceipt GoodsReceipt `gorm:"foreignKey:GoodsReceiptID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new goods receipt charge
func (c *GoodsReceiptCharge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the GoodsReceiptCharge model
func (GoodsReceiptCharge) TableName() string {
	return "goods_receipt_charges"
}
