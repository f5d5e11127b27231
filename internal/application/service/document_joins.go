package service

import (
	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	"github.com/TheAdijagtap/erpx/internal/readmodel"
)

// Documents in the read model carry their related records inline so a
// cached document never needs a follow-up lookup. The embed helpers
// resolve the relations from the snapshot when a document enters the
// store; the strip helpers produce the bare row set that goes to the
// database, where relations live as foreign keys only.

func embedOrderJoins(store *readmodel.Store, order entity.PurchaseOrder) entity.PurchaseOrder {
	order.Supplier = nil
	if order.SupplierID != nil {
		if supplier, ok := store.Supplier(*order.SupplierID); ok {
			order.Supplier = &supplier
		}
	}
	lines := make([]entity.PurchaseOrderLine, len(order.Lines))
	copy(lines, order.Lines)
	for i := range lines {
		lines[i].Item = nil
		if lines[i].ItemID == nil {
			continue
		}
		if item, ok := store.Item(*lines[i].ItemID); ok {
			resolved := item
			lines[i].Item = &resolved
		}
	}
	order.Lines = lines
	return order
}

func stripOrderJoins(order entity.PurchaseOrder) entity.PurchaseOrder {
	order.Supplier = nil
	lines := make([]entity.PurchaseOrderLine, len(order.Lines))
	copy(lines, order.Lines)
	for i := range lines {
		lines[i].Item = nil
	}
	order.Lines = lines
	return order
}

func embedReceiptJoins(store *readmodel.Store, receipt entity.GoodsReceipt) entity.GoodsReceipt {
	receipt.Supplier = nil
	if receipt.SupplierID != nil {
		if supplier, ok := store.Supplier(*receipt.SupplierID); ok {
			receipt.Supplier = &supplier
		}
	}
	receipt.PurchaseOrder = nil
	if receipt.PurchaseOrderID != nil {
		if order, ok := store.PurchaseOrder(*receipt.PurchaseOrderID); ok {
			stripped := stripOrderJoins(order)
			receipt.PurchaseOrder = &stripped
		}
	}
	lines := make([]entity.GoodsReceiptLine, len(receipt.Lines))
	copy(lines, receipt.Lines)
	for i := range lines {
		lines[i].Item = nil
		if lines[i].ItemID == nil {
			continue
		}
		if item, ok := store.Item(*lines[i].ItemID); ok {
			resolved := item
			lines[i].Item = &resolved
		}
	}
	receipt.Lines = lines
	return receipt
}

func embedInvoiceJoins(store *readmodel.Store, invoice entity.ProformaInvoice) entity.ProformaInvoice {
	invoice.Customer = nil
	if invoice.CustomerID != nil {
		if customer, ok := store.Customer(*invoice.CustomerID); ok {
			invoice.Customer = &customer
		}
	}
	lines := make([]entity.ProformaInvoiceLine, len(invoice.Lines))
	copy(lines, invoice.Lines)
	for i := range lines {
		lines[i].Product = nil
		if lines[i].ProductID == nil {
			continue
		}
		if product, ok := store.Product(*lines[i].ProductID); ok {
			resolved := product
			lines[i].Product = &resolved
		}
	}
	invoice.Lines = lines
	return invoice
}

func stripInvoiceJoins(invoice entity.ProformaInvoice) entity.ProformaInvoice {
	invoice.Customer = nil
	lines := make([]entity.ProformaInvoiceLine, len(invoice.Lines))
	copy(lines, invoice.Lines)
	for i := range lines {
		lines[i].Product = nil
	}
	invoice.Lines = lines
	return invoice
}
