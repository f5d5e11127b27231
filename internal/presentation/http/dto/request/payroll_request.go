package request

import "time"

// CreateEmployeeRequest represents an employee creation request
type CreateEmployeeRequest struct {
	Name          string     `json:"name" binding:"required,min=1,max=255"`
	Position      *string    `json:"position" binding:"omitempty,max=255"`
	Email         *string    `json:"email" binding:"omitempty,email"`
	Phone         *string    `json:"phone" binding:"omitempty,max=50"`
	MonthlySalary float64    `json:"monthly_salary" binding:"omitempty,gte=0"`
	HiredAt       *time.Time `json:"hired_at"`
}

// UpdateEmployeeRequest represents an employee update request
type UpdateEmployeeRequest struct {
	Name          *string    `json:"name" binding:"omitempty,min=1,max=255"`
	Position      *string    `json:"position" binding:"omitempty,max=255"`
	Email         *string    `json:"email" binding:"omitempty,email"`
	Phone         *string    `json:"phone" binding:"omitempty,max=50"`
	MonthlySalary *float64   `json:"monthly_salary" binding:"omitempty,gte=0"`
	HiredAt       *time.Time `json:"hired_at"`
	Active        *bool      `json:"active"`
}

// CreatePayrollRecordRequest represents a payroll record creation request
type CreatePayrollRecordRequest struct {
	EmployeeID string   `json:"employee_id" binding:"required,uuid"`
	Period     string   `json:"period" binding:"required,len=7"`
	BaseSalary *float64 `json:"base_salary" binding:"omitempty,gte=0"`
	Bonus      float64  `json:"bonus" binding:"omitempty,gte=0"`
	Deductions float64  `json:"deductions" binding:"omitempty,gte=0"`
}

// UpdatePayrollRecordRequest represents a payroll record update request
type UpdatePayrollRecordRequest struct {
	BaseSalary *float64 `json:"base_salary" binding:"omitempty,gte=0"`
	Bonus      *float64 `json:"bonus" binding:"omitempty,gte=0"`
	Deductions *float64 `json:"deductions" binding:"omitempty,gte=0"`
}
