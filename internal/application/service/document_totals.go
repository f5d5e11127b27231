package service

import (
	"github.com/TheAdijagtap/erpx/internal/domain/enum"
	"github.com/TheAdijagtap/erpx/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentLineInput represents one line of a financial document. ItemID
// links purchase document lines to inventory; ProductID links invoice
// lines to the catalog. A document kind reads the reference it cares
// about and ignores the other.
type DocumentLineInput struct {
	ItemID      *uuid.UUID
	ProductID   *uuid.UUID
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// ChargeInput represents an additional charge on a financial document
type ChargeInput struct {
	Name   string
	Amount decimal.Decimal
}

// TaxInput represents the tax configuration of a financial document.
// For the custom mode RateA carries the single custom rate.
type TaxInput struct {
	Mode  enum.TaxMode
	RateA decimal.Decimal
	RateB decimal.Decimal
}

// policy maps the stored tax configuration onto a calculator policy
func (t TaxInput) policy() finance.TaxPolicy {
	switch t.Mode {
	case enum.TaxModeDualRate:
		return finance.FixedDualRate(t.RateA, t.RateB)
	case enum.TaxModeCustomRate:
		return finance.CustomRate(t.RateA)
	default:
		return finance.Disabled()
	}
}

// computeDocumentTotals recomputes a document's totals from its lines
// and charges. Totals are always derived wholesale, never adjusted
// incrementally.
func computeDocumentTotals(lines []DocumentLineInput, charges []ChargeInput, tax TaxInput) finance.Totals {
	fLines := make([]finance.Line, 0, len(lines))
	for _, l := range lines {
		fLines = append(fLines, finance.Line{Quantity: l.Quantity, UnitPrice: l.UnitPrice})
	}
	fCharges := make([]finance.Charge, 0, len(charges))
	for _, c := range charges {
		fCharges = append(fCharges, finance.Charge{Name: c.Name, Amount: c.Amount})
	}
	return finance.ComputeTotals(fLines, fCharges, tax.policy())
}
