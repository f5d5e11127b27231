package repository

import (
	"context"
	"errors"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	domainRepo "github.com/TheAdijagtap/erpx/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) domainRepo.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employee entity.Employee
	err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &employee, err
}

func (r *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *employeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Employee{}, "id = ?", id).Error
}

func (r *employeeRepository) List(ctx context.Context) ([]entity.Employee, error) {
	var employees []entity.Employee
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&employees).Error
	return employees, err
}

type payrollRepository struct {
	db *gorm.DB
}

// NewPayrollRepository creates a new payroll record repository
func NewPayrollRepository(db *gorm.DB) domainRepo.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) Create(ctx context.Context, record *entity.PayrollRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *payrollRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PayrollRecord, error) {
	var record entity.PayrollRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *payrollRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID uuid.UUID, period string) (*entity.PayrollRecord, error) {
	var record entity.PayrollRecord
	err := r.db.WithContext(ctx).
		First(&record, "employee_id = ? AND period = ?", employeeID, period).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *payrollRepository) Update(ctx context.Context, record *entity.PayrollRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *payrollRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.PayrollRecord{}, "id = ?", id).Error
}

func (r *payrollRepository) List(ctx context.Context) ([]entity.PayrollRecord, error) {
	var records []entity.PayrollRecord
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error
	return records, err
}
