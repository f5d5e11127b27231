package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an account that owns business data in the system.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FirstName    string         `gorm:"size:255;not null" json:"first_name"`
	LastName     string         `gorm:"size:255;not null" json:"last_name"`
	Email        string         `gorm:"size:255;unique;not null" json:"email"`
	Password     string         `gorm:"size:255" json:"-"`
	Provider     string         `gorm:"size:50;default:'local'" json:"provider"`
	ProviderID   *string        `gorm:"size:255" json:"-"`
	Role         string         `gorm:"size:50;default:'staff'" json:"role"`
	BusinessName *string        `gorm:"size:255" json:"business_name,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items            []Item            `gorm:"foreignKey:UserID" json:"-"`
	Products         []Product         `gorm:"foreignKey:UserID" json:"-"`
	Suppliers        []Supplier        `gorm:"foreignKey:UserID" json:"-"`
	Customers        []Customer        `gorm:"foreignKey:UserID" json:"-"`
	PurchaseOrders   []PurchaseOrder   `gorm:"foreignKey:UserID" json:"-"`
	GoodsReceipts    []GoodsReceipt    `gorm:"foreignKey:UserID" json:"-"`
	ProformaInvoices []ProformaInvoice `gorm:"foreignKey:UserID" json:"-"`
	Employees        []Employee        `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
