package handler

import (
	"github.com/TheAdijagtap/erpx/internal/application/service"
	"github.com/TheAdijagtap/erpx/internal/domain/finance"
	"github.com/TheAdijagtap/erpx/internal/presentation/http/dto/request"
	"github.com/TheAdijagtap/erpx/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PayrollHandler handles employee and payroll HTTP requests
type PayrollHandler struct {
	payrollService *service.PayrollService
}

// NewPayrollHandler creates a new payroll handler
func NewPayrollHandler(payrollService *service.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollService: payrollService}
}

// ListEmployees handles listing employees
func (h *PayrollHandler) ListEmployees(c *gin.Context) {
	result, err := h.payrollService.ListEmployees(c.Request.Context(), bindPagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Employees retrieved successfully", result)
}

// CreateEmployee handles creating an employee
func (h *PayrollHandler) CreateEmployee(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	employee, err := h.payrollService.CreateEmployee(c.Request.Context(), &service.CreateEmployeeInput{
		UserID:        *userID,
		Name:          req.Name,
		Position:      req.Position,
		Email:         req.Email,
		Phone:         req.Phone,
		MonthlySalary: finance.FromFloat(req.MonthlySalary),
		HiredAt:       req.HiredAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Employee created successfully", employee)
}

// GetEmployee handles getting a single employee
func (h *PayrollHandler) GetEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.payrollService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee retrieved successfully", employee)
}

// UpdateEmployee handles updating an employee
func (h *PayrollHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	var req request.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	input := &service.UpdateEmployeeInput{
		ID:       id,
		Name:     req.Name,
		Position: req.Position,
		Email:    req.Email,
		Phone:    req.Phone,
		HiredAt:  req.HiredAt,
		Active:   req.Active,
	}
	if req.MonthlySalary != nil {
		v := finance.FromFloat(*req.MonthlySalary)
		input.MonthlySalary = &v
	}

	employee, err := h.payrollService.UpdateEmployee(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee updated successfully", employee)
}

// DeleteEmployee handles deleting an employee
func (h *PayrollHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.payrollService.DeleteEmployee(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee deleted successfully", nil)
}

// ListPayrollRecords handles listing payroll records
func (h *PayrollHandler) ListPayrollRecords(c *gin.Context) {
	result, err := h.payrollService.ListPayrollRecords(c.Request.Context(), bindPagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Payroll records retrieved successfully", result)
}

// CreatePayrollRecord handles creating a payroll record
func (h *PayrollHandler) CreatePayrollRecord(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreatePayrollRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	input := &service.CreatePayrollRecordInput{
		UserID:     *userID,
		EmployeeID: employeeID,
		Period:     req.Period,
		Bonus:      finance.FromFloat(req.Bonus),
		Deductions: finance.FromFloat(req.Deductions),
	}
	if req.BaseSalary != nil {
		v := finance.FromFloat(*req.BaseSalary)
		input.BaseSalary = &v
	}

	record, err := h.payrollService.CreatePayrollRecord(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payroll record created successfully", record)
}

// GetPayrollRecord handles getting a single payroll record
func (h *PayrollHandler) GetPayrollRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid payroll record ID")
		return
	}

	record, err := h.payrollService.GetPayrollRecord(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payroll record retrieved successfully", record)
}

// UpdatePayrollRecord handles updating the pay components of a record
func (h *PayrollHandler) UpdatePayrollRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid payroll record ID")
		return
	}

	var req request.UpdatePayrollRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	input := &service.UpdatePayrollRecordInput{ID: id}
	if req.BaseSalary != nil {
		v := finance.FromFloat(*req.BaseSalary)
		input.BaseSalary = &v
	}
	if req.Bonus != nil {
		v := finance.FromFloat(*req.Bonus)
		input.Bonus = &v
	}
	if req.Deductions != nil {
		v := finance.FromFloat(*req.Deductions)
		input.Deductions = &v
	}

	record, err := h.payrollService.UpdatePayrollRecord(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payroll record updated successfully", record)
}

// MarkPayrollPaid handles marking a payroll record as paid
func (h *PayrollHandler) MarkPayrollPaid(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid payroll record ID")
		return
	}

	record, err := h.payrollService.MarkPayrollPaid(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payroll record marked as paid", record)
}

// DeletePayrollRecord handles deleting a payroll record
func (h *PayrollHandler) DeletePayrollRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid payroll record ID")
		return
	}

	if err := h.payrollService.DeletePayrollRecord(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payroll record deleted successfully", nil)
}
