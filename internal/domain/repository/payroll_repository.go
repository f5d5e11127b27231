package repository

import (
	"context"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	"github.com/google/uuid"
)

// EmployeeRepository defines the interface for employee data operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Employee, error)
}

// PayrollRepository defines the interface for payroll record data operations
type PayrollRepository interface {
	Create(ctx context.Context, record *entity.PayrollRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PayrollRecord, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID uuid.UUID, period string) (*entity.PayrollRecord, error)
	Update(ctx context.Context, record *entity.PayrollRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.PayrollRecord, error)
}
