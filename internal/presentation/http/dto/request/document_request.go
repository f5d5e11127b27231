package request

import (
	"time"

	"github.com/TheAdijagtap/erpx/internal/domain/enum"
)

// TaxRequest represents the tax configuration on a document request.
// For the CustomRate mode RateA carries the single custom rate.
type TaxRequest struct {
	Mode  enum.TaxMode `json:"mode"`
	RateA float64      `json:"rate_a" binding:"omitempty,gte=0"`
	RateB float64      `json:"rate_b" binding:"omitempty,gte=0"`
}

// DocumentLineRequest represents one line of a purchase order or
// proforma invoice. ItemID and ProductID are optional; a line with
// neither is free text.
type DocumentLineRequest struct {
	ItemID      *string `json:"item_id" binding:"omitempty,uuid"`
	ProductID   *string `json:"product_id" binding:"omitempty,uuid"`
	Description string  `json:"description" binding:"required,min=1,max=500"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"omitempty,gte=0"`
}

// ChargeRequest represents an additional charge on a document
type ChargeRequest struct {
	Name   string  `json:"name" binding:"required,min=1,max=255"`
	Amount float64 `json:"amount" binding:"required,gte=0"`
}

// CreatePurchaseOrderRequest represents a purchase order creation request
type CreatePurchaseOrderRequest struct {
	SupplierID *string               `json:"supplier_id" binding:"omitempty,uuid"`
	Date       time.Time             `json:"date" binding:"required"`
	Tax        TaxRequest            `json:"tax"`
	Lines      []DocumentLineRequest `json:"lines" binding:"required,min=1,dive"`
	Charges    []ChargeRequest       `json:"charges" binding:"omitempty,dive"`
	Notes      *string               `json:"notes"`
}

// UpdatePurchaseOrderRequest represents a purchase order update request.
// Lines, when present, replace the existing lines wholesale.
type UpdatePurchaseOrderRequest struct {
	SupplierID *string               `json:"supplier_id" binding:"omitempty,uuid"`
	Date       *time.Time            `json:"date"`
	Status     *enum.DocumentStatus  `json:"status"`
	Tax        *TaxRequest           `json:"tax"`
	Lines      []DocumentLineRequest `json:"lines" binding:"omitempty,min=1,dive"`
	Charges    []ChargeRequest       `json:"charges" binding:"omitempty,dive"`
	Notes      *string               `json:"notes"`
}

// ReceiptLineRequest represents one received line on a goods receipt
type ReceiptLineRequest struct {
	ItemID           *string  `json:"item_id" binding:"omitempty,uuid"`
	Description      string   `json:"description" binding:"required,min=1,max=500"`
	OrderedQuantity  *float64 `json:"ordered_quantity" binding:"omitempty,gte=0"`
	ReceivedQuantity float64  `json:"received_quantity" binding:"required,gt=0"`
	UnitPrice        float64  `json:"unit_price" binding:"omitempty,gte=0"`
}

// CreateGoodsReceiptRequest represents a goods receipt creation request
type CreateGoodsReceiptRequest struct {
	SupplierID      *string              `json:"supplier_id" binding:"omitempty,uuid"`
	PurchaseOrderID *string              `json:"purchase_order_id" binding:"omitempty,uuid"`
	Date            time.Time            `json:"date" binding:"required"`
	Tax             TaxRequest           `json:"tax"`
	Lines           []ReceiptLineRequest `json:"lines" binding:"required,min=1,dive"`
	Charges         []ChargeRequest      `json:"charges" binding:"omitempty,dive"`
	Notes           *string              `json:"notes"`
}

// UpdateGoodsReceiptRequest represents a goods receipt header update.
// Line edits are rejected; stock already moved on creation.
type UpdateGoodsReceiptRequest struct {
	Status *enum.DocumentStatus `json:"status"`
	Notes  *string              `json:"notes"`
	Lines  []ReceiptLineRequest `json:"lines"`
}

// CreateProformaInvoiceRequest represents a proforma invoice creation request
type CreateProformaInvoiceRequest struct {
	CustomerID *string               `json:"customer_id" binding:"omitempty,uuid"`
	Date       time.Time             `json:"date" binding:"required"`
	Tax        TaxRequest            `json:"tax"`
	Lines      []DocumentLineRequest `json:"lines" binding:"required,min=1,dive"`
	Charges    []ChargeRequest       `json:"charges" binding:"omitempty,dive"`
	Notes      *string               `json:"notes"`
}

// UpdateProformaInvoiceRequest represents a proforma invoice update request
type UpdateProformaInvoiceRequest struct {
	CustomerID *string               `json:"customer_id" binding:"omitempty,uuid"`
	Date       *time.Time            `json:"date"`
	Status     *enum.DocumentStatus  `json:"status"`
	Tax        *TaxRequest           `json:"tax"`
	Lines      []DocumentLineRequest `json:"lines" binding:"omitempty,min=1,dive"`
	Charges    []ChargeRequest       `json:"charges" binding:"omitempty,dive"`
	Notes      *string               `json:"notes"`
}
