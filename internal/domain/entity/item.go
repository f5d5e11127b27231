package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Item represents an inventory item. CurrentStock is never negative:
// decrements are clamped at zero by the ledger projector before they
// reach this entity.
type Item struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string          `gorm:"size:255;not null" json:"name"`
	SKU          string          `gorm:"size:100;unique;not null" json:"sku"`
	Unit         string          `gorm:"size:50;default:'pcs'" json:"unit"`
	CurrentStock decimal.Decimal `gorm:"type:decimal(15,3);default:0" json:"current_stock"`
	MinStock     decimal.Decimal `gorm:"type:decimal(15,3);default:0" json:"min_stock"`
	MaxStock     decimal.Decimal `gorm:"type:decimal(15,3);default:0" json:"max_stock"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"unit_price"`
	Notes        *string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	User         User               `gorm:"foreignKey:UserID" json:"-"`
	Transactions []StockTransaction `gorm:"foreignKey:ItemID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// IsLowStock reports whether the item is at or below its minimum stock level
func (i *Item) IsLowStock() bool {
	return i.CurrentStock.LessThanOrEqual(i.MinStock)
}
