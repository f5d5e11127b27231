package service

import (
	"context"
	"regexp"
	"time"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	"github.com/TheAdijagtap/erpx/internal/domain/enum"
	"github.com/TheAdijagtap/erpx/internal/domain/repository"
	"github.com/TheAdijagtap/erpx/internal/mutation"
	"github.com/TheAdijagtap/erpx/internal/readmodel"
	"github.com/TheAdijagtap/erpx/pkg/apperror"
	"github.com/TheAdijagtap/erpx/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// PayrollService handles employees and payroll records
type PayrollService struct {
	store        *readmodel.Store
	pipeline     *mutation.Pipeline
	employeeRepo repository.EmployeeRepository
	payrollRepo  repository.PayrollRepository
}

// NewPayrollService creates a new payroll service
func NewPayrollService(store *readmodel.Store, pipeline *mutation.Pipeline, employeeRepo repository.EmployeeRepository, payrollRepo repository.PayrollRepository) *PayrollService {
	return &PayrollService{store: store, pipeline: pipeline, employeeRepo: employeeRepo, payrollRepo: payrollRepo}
}

// CreateEmployeeInput represents the create employee input
type CreateEmployeeInput struct {
	UserID        uuid.UUID
	Name          string
	Position      *string
	Email         *string
	Phone         *string
	MonthlySalary decimal.Decimal
	HiredAt       *time.Time
}

// CreateEmployee creates a new employee
func (s *PayrollService) CreateEmployee(ctx context.Context, input *CreateEmployeeInput) (*entity.Employee, error) {
	if input.MonthlySalary.IsNegative() {
		return nil, apperror.NewBadRequestError("Monthly salary cannot be negative")
	}

	employee := entity.Employee{
		ID:            uuid.New(),
		UserID:        input.UserID,
		Name:          input.Name,
		Position:      input.Position,
		Email:         input.Email,
		Phone:         input.Phone,
		MonthlySalary: input.MonthlySalary,
		HiredAt:       input.HiredAt,
		Active:        true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	err := s.pipeline.Run(ctx, mutation.Command{
		Name: "employee.create",
		Forward: func(snap *readmodel.Snapshot) {
			snap.Employees[employee.ID] = employee
		},
		Inverse: func(snap *readmodel.Snapshot) {
			delete(snap.Employees, employee.ID)
		},
		Remote: func(ctx context.Context) error {
			return s.employeeRepo.Create(ctx, &employee)
		},
	})
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetEmployee retrieves an employee from the snapshot
func (s *PayrollService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, ok := s.store.Employee(id)
	if !ok {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return &employee, nil
}

// ListEmployees lists employees, newest first
func (s *PayrollService) ListEmployees(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Employee], error) {
	return pagination.Paginate(s.store.Employees(), params), nil
}

// UpdateEmployeeInput represents the update employee input
type UpdateEmployeeInput struct {
	ID            uuid.UUID
	Name          *string
	Position      *string
	Email         *string
	Phone         *string
	MonthlySalary *decimal.Decimal
	HiredAt       *time.Time
	Active        *bool
}

// UpdateEmployee updates an employee
func (s *PayrollService) UpdateEmployee(ctx context.Context, input *UpdateEmployeeInput) (*entity.Employee, error) {
	before, ok := s.store.Employee(input.ID)
	if !ok {
		return nil, apperror.NewNotFoundError("Employee")
	}

	employee := before
	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Position != nil {
		employee.Position = input.Position
	}
	if input.Email != nil {
		employee.Email = input.Email
	}
	if input.Phone != nil {
		employee.Phone = input.Phone
	}
	if input.MonthlySalary != nil {
		if input.MonthlySalary.IsNegative() {
			return nil, apperror.NewBadRequestError("Monthly salary cannot be negative")
		}
		employee.MonthlySalary = *input.MonthlySalary
	}
	if input.HiredAt != nil {
		employee.HiredAt = input.HiredAt
	}
	if input.Active != nil {
		employee.Active = *input.Active
	}
	employee.UpdatedAt = time.Now()

	err := s.pipeline.Run(ctx, mutation.Command{
		Name: "employee.update",
		Forward: func(snap *readmodel.Snapshot) {
			snap.Employees[employee.ID] = employee
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.Employees[before.ID] = before
		},
		Remote: func(ctx context.Context) error {
			return s.employeeRepo.Update(ctx, &employee)
		},
	})
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// DeleteEmployee deletes an employee
func (s *PayrollService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	before, ok := s.store.Employee(id)
	if !ok {
		return apperror.NewNotFoundError("Employee")
	}

	return s.pipeline.Run(ctx, mutation.Command{
		Name: "employee.delete",
		Forward: func(snap *readmodel.Snapshot) {
			delete(snap.Employees, id)
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.Employees[before.ID] = before
		},
		Remote: func(ctx context.Context) error {
			return s.employeeRepo.Delete(ctx, id)
		},
	})
}

// CreatePayrollRecordInput represents the create payroll record input
type CreatePayrollRecordInput struct {
	UserID     uuid.UUID
	EmployeeID uuid.UUID
	Period     string
	BaseSalary *decimal.Decimal
	Bonus      decimal.Decimal
	Deductions decimal.Decimal
}

// CreatePayrollRecord creates a payroll record for one employee and
// period. BaseSalary defaults to the employee's monthly salary and net
// pay is derived from the components.
func (s *PayrollService) CreatePayrollRecord(ctx context.Context, input *CreatePayrollRecordInput) (*entity.PayrollRecord, error) {
	employee, ok := s.store.Employee(input.EmployeeID)
	if !ok {
		return nil, apperror.NewNotFoundError("Employee")
	}
	if !periodPattern.MatchString(input.Period) {
		return nil, apperror.NewBadRequestError("Period must be in YYYY-MM format")
	}
	for _, r := range s.store.PayrollRecords() {
		if r.EmployeeID == input.EmployeeID && r.Period == input.Period {
			return nil, apperror.NewConflictError("A payroll record already exists for this employee and period")
		}
	}

	base := employee.MonthlySalary
	if input.BaseSalary != nil {
		base = *input.BaseSalary
	}
	if base.IsNegative() || input.Bonus.IsNegative() || input.Deductions.IsNegative() {
		return nil, apperror.NewBadRequestError("Payroll amounts cannot be negative")
	}

	record := entity.PayrollRecord{
		ID:         uuid.New(),
		UserID:     input.UserID,
		EmployeeID: input.EmployeeID,
		Period:     input.Period,
		BaseSalary: base,
		Bonus:      input.Bonus,
		Deductions: input.Deductions,
		NetPay:     base.Add(input.Bonus).Sub(input.Deductions),
		Status:     enum.PayrollStatusPending,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	err := s.pipeline.Run(ctx, mutation.Command{
		Name: "payroll.create",
		Forward: func(snap *readmodel.Snapshot) {
			snap.PayrollRecords[record.ID] = record
		},
		Inverse: func(snap *readmodel.Snapshot) {
			delete(snap.PayrollRecords, record.ID)
		},
		Remote: func(ctx context.Context) error {
			return s.payrollRepo.Create(ctx, &record)
		},
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetPayrollRecord retrieves a payroll record from the snapshot
func (s *PayrollService) GetPayrollRecord(ctx context.Context, id uuid.UUID) (*entity.PayrollRecord, error) {
	record, ok := s.store.PayrollRecord(id)
	if !ok {
		return nil, apperror.NewNotFoundError("Payroll record")
	}
	return &record, nil
}

// ListPayrollRecords lists payroll records, newest first
func (s *PayrollService) ListPayrollRecords(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.PayrollRecord], error) {
	return pagination.Paginate(s.store.PayrollRecords(), params), nil
}

// UpdatePayrollRecordInput represents the update payroll record input
type UpdatePayrollRecordInput struct {
	ID         uuid.UUID
	BaseSalary *decimal.Decimal
	Bonus      *decimal.Decimal
	Deductions *decimal.Decimal
}

// UpdatePayrollRecord updates the pay components of a pending record
// and re-derives net pay. Paid records are immutable.
func (s *PayrollService) UpdatePayrollRecord(ctx context.Context, input *UpdatePayrollRecordInput) (*entity.PayrollRecord, error) {
	before, ok := s.store.PayrollRecord(input.ID)
	if !ok {
		return nil, apperror.NewNotFoundError("Payroll record")
	}
	if before.Status == enum.PayrollStatusPaid {
		return nil, apperror.NewConflictError("Paid payroll records cannot be modified")
	}

	record := before
	if input.BaseSalary != nil {
		record.BaseSalary = *input.BaseSalary
	}
	if input.Bonus != nil {
		record.Bonus = *input.Bonus
	}
	if input.Deductions != nil {
		record.Deductions = *input.Deductions
	}
	if record.BaseSalary.IsNegative() || record.Bonus.IsNegative() || record.Deductions.IsNegative() {
		return nil, apperror.NewBadRequestError("Payroll amounts cannot be negative")
	}
	record.NetPay = record.BaseSalary.Add(record.Bonus).Sub(record.Deductions)
	record.UpdatedAt = time.Now()

	err := s.pipeline.Run(ctx, mutation.Command{
		Name: "payroll.update",
		Forward: func(snap *readmodel.Snapshot) {
			snap.PayrollRecords[record.ID] = record
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.PayrollRecords[before.ID] = before
		},
		Remote: func(ctx context.Context) error {
			return s.payrollRepo.Update(ctx, &record)
		},
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarkPayrollPaid marks a pending payroll record as paid
func (s *PayrollService) MarkPayrollPaid(ctx context.Context, id uuid.UUID) (*entity.PayrollRecord, error) {
	before, ok := s.store.PayrollRecord(id)
	if !ok {
		return nil, apperror.NewNotFoundError("Payroll record")
	}
	if before.Status == enum.PayrollStatusPaid {
		return nil, apperror.NewConflictError("Payroll record is already paid")
	}

	record := before
	now := time.Now()
	record.Status = enum.PayrollStatusPaid
	record.PaidAt = &now
	record.UpdatedAt = now

	err := s.pipeline.Run(ctx, mutation.Command{
		Name: "payroll.mark_paid",
		Forward: func(snap *readmodel.Snapshot) {
			snap.PayrollRecords[record.ID] = record
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.PayrollRecords[before.ID] = before
		},
		Remote: func(ctx context.Context) error {
			return s.payrollRepo.Update(ctx, &record)
		},
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// DeletePayrollRecord deletes a payroll record
func (s *PayrollService) DeletePayrollRecord(ctx context.Context, id uuid.UUID) error {
	before, ok := s.store.PayrollRecord(id)
	if !ok {
		return apperror.NewNotFoundError("Payroll record")
	}

	return s.pipeline.Run(ctx, mutation.Command{
		Name: "payroll.delete",
		Forward: func(snap *readmodel.Snapshot) {
			delete(snap.PayrollRecords, id)
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.PayrollRecords[before.ID] = before
		},
		Remote: func(ctx context.Context) error {
			return s.payrollRepo.Delete(ctx, id)
		},
	})
}
