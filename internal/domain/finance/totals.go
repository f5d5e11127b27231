package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

// Package finance derives financial document totals from line items,
// additional charges and a tax policy. All functions are pure; computing
// the same input twice yields an identical result.

// taxKind discriminates the TaxPolicy variants.
type taxKind int

const (
	taxDisabled taxKind = iota
	taxDualRate
	taxCustomRate
)

// TaxPolicy is an explicit tagged variant: tax is either disabled,
// a fixed dual rate (two components with their own percentages), or a
// single headline rate split evenly into two components.
type TaxPolicy struct {
	kind  taxKind
	rateA decimal.Decimal
	rateB decimal.Decimal
	rate  decimal.Decimal
}

// Disabled returns the policy with both tax components at zero.
func Disabled() TaxPolicy {
	return TaxPolicy{kind: taxDisabled}
}

// FixedDualRate returns a policy with two independent percentage rates,
// e.g. two 9% components.
func FixedDualRate(rateA, rateB decimal.Decimal) TaxPolicy {
	return TaxPolicy{kind: taxDualRate, rateA: rateA, rateB: rateB}
}

// CustomRate returns a policy where a single headline percentage is
// halved and applied twice, producing two equal components.
func CustomRate(rate decimal.Decimal) TaxPolicy {
	return TaxPolicy{kind: taxCustomRate, rate: rate}
}

// Line is the financial view of a document line item.
type Line struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// Charge is an additional charge added to the taxable base before tax.
type Charge struct {
	Name   string
	Amount decimal.Decimal
}

// Totals is the derived financial summary of a document.
type Totals struct {
	Subtotal decimal.Decimal
	TaxA     decimal.Decimal
	TaxB     decimal.Decimal
	Total    decimal.Decimal
}

var twoHundred = decimal.NewFromInt(200)
var oneHundred = decimal.NewFromInt(100)

// ComputeTotals derives subtotal, both tax components and the grand total.
//
// The canonical source for the subtotal is the raw quantity and unit
// price of each line, not a pre-rounded line total, so rounding is never
// compounded. Each tax component is rounded to 2 decimal places before
// summation; the grand total is rounded once after summation.
func ComputeTotals(lines []Line, charges []Charge, policy TaxPolicy) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Quantity.Mul(l.UnitPrice))
	}

	base := subtotal
	for _, c := range charges {
		base = base.Add(c.Amount)
	}

	var taxA, taxB decimal.Decimal
	switch policy.kind {
	case taxDualRate:
		taxA = base.Mul(policy.rateA).Div(oneHundred).Round(2)
		taxB = base.Mul(policy.rateB).Div(oneHundred).Round(2)
	case taxCustomRate:
		// Half the headline rate, applied twice.
		half := base.Mul(policy.rate).Div(twoHundred).Round(2)
		taxA = half
		taxB = half
	default:
		taxA = decimal.Zero
		taxB = decimal.Zero
	}

	return Totals{
		Subtotal: subtotal.Round(2),
		TaxA:     taxA,
		TaxB:     taxB,
		Total:    base.Add(taxA).Add(taxB).Round(2),
	}
}

// LineTotal computes the displayed total of a single line, rounded to
// 2 decimal places. Stored line totals are always recomputed from raw
// inputs via this function, never mutated independently.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice).Round(2)
}

// FromFloat converts an untrusted float into a decimal. NaN and
// infinities become zero rather than corrupting a persisted total.
func FromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
