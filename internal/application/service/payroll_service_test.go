package service

import (
	"context"
	"testing"

	"github.com/TheAdijagtap/erpx/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePayrollRecord_DerivesNetPay(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	employee, err := env.payroll.CreateEmployee(ctx, &CreateEmployeeInput{
		UserID:        env.userID,
		Name:          "Jane Mwangi",
		MonthlySalary: decimal.NewFromInt(50000),
	})
	require.NoError(t, err)

	record, err := env.payroll.CreatePayrollRecord(ctx, &CreatePayrollRecordInput{
		UserID:     env.userID,
		EmployeeID: employee.ID,
		Period:     "2026-08",
		Bonus:      decimal.NewFromInt(5000),
		Deductions: decimal.NewFromInt(2000),
	})
	require.NoError(t, err)

	// Base defaults to the employee's monthly salary.
	assert.True(t, record.BaseSalary.Equal(decimal.NewFromInt(50000)))
	assert.True(t, record.NetPay.Equal(decimal.NewFromInt(53000)))
	assert.Equal(t, enum.PayrollStatusPending, record.Status)
}

func TestCreatePayrollRecord_RejectsDuplicatePeriod(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	employee, err := env.payroll.CreateEmployee(ctx, &CreateEmployeeInput{
		UserID:        env.userID,
		Name:          "Peter Otieno",
		MonthlySalary: decimal.NewFromInt(30000),
	})
	require.NoError(t, err)

	_, err = env.payroll.CreatePayrollRecord(ctx, &CreatePayrollRecordInput{
		UserID: env.userID, EmployeeID: employee.ID, Period: "2026-08",
	})
	require.NoError(t, err)

	_, err = env.payroll.CreatePayrollRecord(ctx, &CreatePayrollRecordInput{
		UserID: env.userID, EmployeeID: employee.ID, Period: "2026-08",
	})
	require.Error(t, err)
}

func TestCreatePayrollRecord_ValidatesPeriodFormat(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	employee, err := env.payroll.CreateEmployee(ctx, &CreateEmployeeInput{
		UserID: env.userID, Name: "Amina Yusuf",
	})
	require.NoError(t, err)

	for _, period := range []string{"2026-13", "2026/08", "Aug 2026", "2026-8"} {
		_, err = env.payroll.CreatePayrollRecord(ctx, &CreatePayrollRecordInput{
			UserID: env.userID, EmployeeID: employee.ID, Period: period,
		})
		require.Error(t, err, "period %q should be rejected", period)
	}
}

func TestMarkPayrollPaid_LocksTheRecord(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	employee, err := env.payroll.CreateEmployee(ctx, &CreateEmployeeInput{
		UserID: env.userID, Name: "Grace Njeri", MonthlySalary: decimal.NewFromInt(40000),
	})
	require.NoError(t, err)

	record, err := env.payroll.CreatePayrollRecord(ctx, &CreatePayrollRecordInput{
		UserID: env.userID, EmployeeID: employee.ID, Period: "2026-07",
	})
	require.NoError(t, err)

	paid, err := env.payroll.MarkPayrollPaid(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.PayrollStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)

	// Paid records reject edits and a second payment.
	bonus := decimal.NewFromInt(1)
	_, err = env.payroll.UpdatePayrollRecord(ctx, &UpdatePayrollRecordInput{ID: record.ID, Bonus: &bonus})
	require.Error(t, err)

	_, err = env.payroll.MarkPayrollPaid(ctx, record.ID)
	require.Error(t, err)
}
