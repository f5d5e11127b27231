package service

import (
	"context"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	"github.com/TheAdijagtap/erpx/internal/domain/enum"
	"github.com/TheAdijagtap/erpx/internal/readmodel"
	"github.com/shopspring/decimal"
)

// DashboardService aggregates summary figures from the warm snapshot.
// No queries hit the database here.
type DashboardService struct {
	store *readmodel.Store
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(store *readmodel.Store) *DashboardService {
	return &DashboardService{store: store}
}

// DashboardSummary represents the aggregate dashboard figures
type DashboardSummary struct {
	TotalItems          int                      `json:"total_items"`
	TotalProducts       int                      `json:"total_products"`
	TotalSuppliers      int                      `json:"total_suppliers"`
	TotalCustomers      int                      `json:"total_customers"`
	LowStockItems       int                      `json:"low_stock_items"`
	InventoryValue      decimal.Decimal          `json:"inventory_value"`
	OpenPurchaseOrders  int                      `json:"open_purchase_orders"`
	ReceiptsTotal       decimal.Decimal          `json:"receipts_total"`
	PendingPayroll      decimal.Decimal          `json:"pending_payroll"`
	RecentTransactions  []entity.StockTransaction `json:"recent_transactions"`
}

// GetSummary computes the dashboard summary from the current snapshot
func (s *DashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	items := s.store.Items()
	summary := &DashboardSummary{
		TotalItems:     len(items),
		TotalProducts:  len(s.store.Products()),
		TotalSuppliers: len(s.store.Suppliers()),
		TotalCustomers: len(s.store.Customers()),
		InventoryValue: decimal.Zero,
		ReceiptsTotal:  decimal.Zero,
		PendingPayroll: decimal.Zero,
	}

	for _, item := range items {
		if item.IsLowStock() {
			summary.LowStockItems++
		}
		summary.InventoryValue = summary.InventoryValue.Add(item.CurrentStock.Mul(item.UnitPrice))
	}

	for _, order := range s.store.PurchaseOrders() {
		if order.Status == enum.DocumentStatusDraft || order.Status == enum.DocumentStatusIssued {
			summary.OpenPurchaseOrders++
		}
	}

	for _, receipt := range s.store.GoodsReceipts() {
		summary.ReceiptsTotal = summary.ReceiptsTotal.Add(receipt.Total)
	}

	for _, record := range s.store.PayrollRecords() {
		if record.Status == enum.PayrollStatusPending {
			summary.PendingPayroll = summary.PendingPayroll.Add(record.NetPay)
		}
	}

	txs := s.store.Transactions()
	// Transactions are sorted oldest first; take the tail.
	const recentCount = 10
	start := len(txs) - recentCount
	if start < 0 {
		start = 0
	}
	recent := make([]entity.StockTransaction, 0, len(txs)-start)
	for i := len(txs) - 1; i >= start; i-- {
		recent = append(recent, txs[i])
	}
	summary.RecentTransactions = recent

	return summary, nil
}
