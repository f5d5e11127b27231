package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateDocumentNo generates a unique document number with the given
// prefix, e.g. "PO-1A2B3C4D".
func GenerateDocumentNo(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateOrderNo generates a unique purchase order number
func GenerateOrderNo() string {
	return GenerateDocumentNo("PO")
}

// GenerateReceiptNo generates a unique goods receipt number
func GenerateReceiptNo() string {
	return GenerateDocumentNo("GR")
}

// GenerateInvoiceNo generates a unique proforma invoice number
func GenerateInvoiceNo() string {
	return GenerateDocumentNo("PI")
}

// GenerateItemSKU generates a unique inventory item SKU
func GenerateItemSKU() string {
	return GenerateDocumentNo("ITM")
}

// GenerateProductCode generates a unique product code
func GenerateProductCode() string {
	return GenerateDocumentNo("PROD")
}
