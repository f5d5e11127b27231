package entity

import (
	"time"

	"github.com/TheAdijagtap/erpx/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseOrder represents an order placed with a supplier. Totals are
// always recomputed wholesale from the lines and charges, never patched
// incrementally.
type PurchaseOrder struct {
	ID         uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	SupplierID *uuid.UUID          `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	OrderNo    string              `gorm:"size:100;unique;not null" json:"order_no"`
	Date       time.Time           `gorm:"type:date;not null" json:"date"`
	Status     enum.DocumentStatus `gorm:"default:0" json:"status"`
	TaxMode    enum.TaxMode        `gorm:"default:0" json:"tax_mode"`
	TaxRateA   decimal.Decimal     `gorm:"type:decimal(5,2);default:0" json:"tax_rate_a"`
	TaxRateB   decimal.Decimal     `gorm:"type:decimal(5,2);default:0" json:"tax_rate_b"`
	Subtotal   decimal.Decimal     `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	TaxAmountA decimal.Decimal     `gorm:"type:decimal(15,2);default:0" json:"tax_amount_a"`
	TaxAmountB decimal.Decimal     `gorm:"type:decimal(15,2);default:0" json:"tax_amount_b"`
	Total      decimal.Decimal     `gorm:"type:decimal(15,2);default:0" json:"total"`
	Notes      *string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	DeletedAt  gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	User     User                  `gorm:"foreignKey:UserID" json:"-"`
	Supplier *Supplier             `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Lines    []PurchaseOrderLine   `gorm:"foreignKey:PurchaseOrderID" json:"lines,omitempty"`
	Charges  []PurchaseOrderCharge `gorm:"foreignKey:PurchaseOrderID" json:"charges,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase order
func (p *PurchaseOrder) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrder model
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderLine represents a line item in a purchase order. A nil
// ItemID means a free-text line that exists only within the document.
type PurchaseOrderLine struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index" json:"purchase_order_id"`
	ItemID          *uuid.UUID      `gorm:"type:uuid;index" json:"item_id,omitempty"`
	Description     string          `gorm:"size:255" json:"description"`
	Quantity        decimal.Decimal `gorm:"type:decimal(15,3);not null" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	LineTotal       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"line_total"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Relationships
	PurchaseOrder PurchaseOrder `gorm:"foreignKey:PurchaseOrderID" json:"-"`
	Item          *Item         `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase order line
func (l *PurchaseOrderLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrderLine model
func (PurchaseOrderLine) TableName() string {
	return "purchase_order_lines"
}

// PurchaseOrderCharge represents an additional charge (freight, handling)
// added to the taxable base of a purchase order.
type PurchaseOrderCharge struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index" json:"purchase_order_id"`
	Name            string          `gorm:"size:255;not null" json:"name"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt       time.Time       `json:"created_at"`

	// Relationships
	PurchaseOrder PurchaseOrder `gorm:"foreignKey:PurchaseOrderID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new purchase order charge
func (c *PurchaseOrderCharge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrderCharge model
func (PurchaseOrderCharge) TableName() string {
	return "purchase_order_charges"
}
