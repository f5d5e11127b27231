package entity

import (
	"time"

	"github.com/TheAdijagtap/erpx/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee represents a staff member on the payroll.
type Employee struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Position      *string         `gorm:"size:255" json:"position,omitempty"`
	Email         *string         `gorm:"size:255" json:"email,omitempty"`
	Phone         *string         `gorm:"size:50" json:"phone,omitempty"`
	MonthlySalary decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"monthly_salary"`
	HiredAt       *time.Time      `gorm:"type:date" json:"hired_at,omitempty"`
	Active        bool            `gorm:"default:true" json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	User           User            `gorm:"foreignKey:UserID" json:"-"`
	PayrollRecords []PayrollRecord `gorm:"foreignKey:EmployeeID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new employee
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}

// PayrollRecord represents one pay period for an employee. NetPay is
// always derived as base + bonus - deductions, never edited directly.
type PayrollRecord struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	EmployeeID uuid.UUID          `gorm:"type:uuid;not null;index" json:"employee_id"`
	Period     string             `gorm:"size:7;not null" json:"period"` // YYYY-MM
	BaseSalary decimal.Decimal    `gorm:"type:decimal(15,2);not null" json:"base_salary"`
	Bonus      decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"bonus"`
	Deductions decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"deductions"`
	NetPay     decimal.Decimal    `gorm:"type:decimal(15,2);not null" json:"net_pay"`
	Status     enum.PayrollStatus `gorm:"default:0" json:"status"`
	PaidAt     *time.Time         `json:"paid_at,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	DeletedAt  gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Employee Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// BeforeCreate generates a UUID before creating a new payroll record
func (p *PayrollRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PayrollRecord model
func (PayrollRecord) TableName() string {
	return "payroll_records"
}
