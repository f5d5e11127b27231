package entity

import (
	"time"

	"github.com/TheAdijagtap/erpx/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockTransaction is an immutable, append-only record of a stock
// movement. Entries are never updated or deleted individually; they are
// removed only as a cascade of deleting their owning item. Seq preserves
// source-line order within one document and breaks ties when OccurredAt
// timestamps coincide.
type StockTransaction struct {
	ID         uuid.UUID                 `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID                 `gorm:"type:uuid;not null;index" json:"user_id"`
	ItemID     uuid.UUID                 `gorm:"type:uuid;not null;index" json:"item_id"`
	Direction  enum.TransactionDirection `gorm:"size:10;not null" json:"direction"`
	Quantity   decimal.Decimal           `gorm:"type:decimal(15,3);not null" json:"quantity"`
	UnitPrice  decimal.Decimal           `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	TotalValue decimal.Decimal           `gorm:"type:decimal(15,2);not null" json:"total_value"`
	Reason     string                    `gorm:"size:255;not null" json:"reason"`
	Reference  *string                   `gorm:"size:100;index" json:"reference,omitempty"`
	Seq        int                       `gorm:"default:0" json:"seq"`
	OccurredAt time.Time                 `gorm:"not null;index" json:"occurred_at"`
	CreatedAt  time.Time                 `json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
	Item Item `gorm:"foreignKey:ItemID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new stock transaction
func (t *StockTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockTransaction model
func (StockTransaction) TableName() string {
	return "stock_transactions"
}
