package entity

import (
	"time"

	"github.com/TheAdijagtap/erpx/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProformaInvoice represents a preliminary invoice issued to a customer.
// It shares the financial-document shape of purchase orders and goods
// receipts but has no inventory effect.
type ProformaInvoice struct {
	ID         uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID *uuid.UUID          `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	InvoiceNo  string              `gorm:"size:100;unique;not null" json:"invoice_no"`
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
	User     User                    `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer               `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Lines    []ProformaInvoiceLine   `gorm:"foreignKey:ProformaInvoiceID" json:"lines,omitempty"`
	Charges  []ProformaInvoiceCharge `gorm:"foreignKey:ProformaInvoiceID" json:"charges,omitempty"`
}

// BeforeCreate generates a UUID before creating a new proforma invoice
func (p *ProformaInvoice) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ProformaInvoice model
func (ProformaInvoice) TableName() string {
	return "proforma_invoices"
}

// ProformaInvoiceLine represents a line item in a proforma invoice. A nil
// ProductID means a free-text line.
type ProformaInvoiceLine struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ProformaInvoiceID uuid.UUID       `gorm:"type:uuid;not null;index" json:"proforma_invoice_id"`
	ProductID         *uuid.UUID      `gorm:"type:uuid;index" json:"product_id,omitempty"`
	Description       string          `gorm:"size:255" json:"description"`
	Quantity          decimal.Decimal `gorm:"type:decimal(15,3);not null" json:"quantity"`
	UnitPrice         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	LineTotal         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"line_total"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	// Relationships
	ProformaInvoice ProformaInvoice `gorm:"foreignKey:ProformaInvoiceID" json:"-"`
	Product         *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new proforma invoice line
func (l *ProformaInvoiceLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ProformaInvoiceLine model
func (ProformaInvoiceLine) TableName() string {
	return "proforma_invoice_lines"
}

// ProformaInvoiceCharge represents an additional charge added to the
// taxable base of a proforma invoice.
type ProformaInvoiceCharge struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ProformaInvoiceID uuid.UUID       `gorm:"type:uuid;not null;index" json:"proforma_invoice_id"`
	Name              string          `gorm:"size:255;not null" json:"name"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt         time.Time       `json:"created_at"`

	// Relationships
	ProformaInvoice ProformaInvoice `gorm:"foreignKey:ProformaInvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new proforma invoice charge
func (c *ProformaInvoiceCharge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ProformaInvoiceCharge model
func (ProformaInvoiceCharge) TableName() string {
	return "proforma_invoice_charges"
}
