package finance

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(pairs ...float64) []Line {
	var out []Line
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, Line{
			Quantity:  decimal.NewFromFloat(pairs[i]),
			UnitPrice: decimal.NewFromFloat(pairs[i+1]),
		})
	}
	return out
}

func TestComputeTotals_NoTax(t *testing.T) {
	got := ComputeTotals(lines(2, 100, 1, 50), nil, Disabled())

	assert.True(t, got.Subtotal.Equal(decimal.NewFromInt(250)), "subtotal = %s", got.Subtotal)
	assert.True(t, got.TaxA.IsZero())
	assert.True(t, got.TaxB.IsZero())
	assert.True(t, got.Total.Equal(decimal.NewFromInt(250)), "total = %s", got.Total)
}

func TestComputeTotals_DualFixedRate(t *testing.T) {
	nine := decimal.NewFromInt(9)
	got := ComputeTotals(lines(2, 100, 1, 50), nil, FixedDualRate(nine, nine))

	assert.Equal(t, "22.5", got.TaxA.String())
	assert.Equal(t, "22.5", got.TaxB.String())
	assert.Equal(t, "295", got.Total.String())
}

func TestComputeTotals_CustomRateMatchesDual(t *testing.T) {
	// An 18% custom rate is by construction equivalent to two 9% components.
	custom := ComputeTotals(lines(2, 100, 1, 50), nil, CustomRate(decimal.NewFromInt(18)))
	dual := ComputeTotals(lines(2, 100, 1, 50), nil, FixedDualRate(decimal.NewFromInt(9), decimal.NewFromInt(9)))

	assert.True(t, custom.TaxA.Equal(custom.TaxB), "custom-rate components must be symmetric")
	assert.True(t, custom.TaxA.Equal(dual.TaxA))
	assert.True(t, custom.Total.Equal(dual.Total))
}

func TestComputeTotals_ChargesEnterTaxableBase(t *testing.T) {
	charges := []Charge{{Name: "Freight", Amount: decimal.NewFromInt(50)}}
	got := ComputeTotals(lines(2, 100, 1, 50), charges, CustomRate(decimal.NewFromInt(18)))

	// base = 300, each component = 27.00, total = 354.00
	assert.Equal(t, "250", got.Subtotal.String())
	assert.Equal(t, "27", got.TaxA.String())
	assert.Equal(t, "354", got.Total.String())
}

func TestComputeTotals_TaxSymmetryWithinOneCent(t *testing.T) {
	// Per-component rounding may drift from round(base*r/100) by at most
	// one cent.
	for _, rate := range []float64{1, 7.5, 16, 18, 19.25} {
		ls := lines(3, 33.33, 2, 19.99)
		got := ComputeTotals(ls, nil, CustomRate(decimal.NewFromFloat(rate)))

		require.True(t, got.TaxA.Equal(got.TaxB), "rate %v", rate)

		base := got.Subtotal
		whole := base.Mul(decimal.NewFromFloat(rate)).Div(decimal.NewFromInt(100)).Round(2)
		diff := got.TaxA.Add(got.TaxB).Sub(whole).Abs()
		assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.01)), "rate %v drift %s", rate, diff)
	}
}

func TestComputeTotals_TotalAdditivity(t *testing.T) {
	charges := []Charge{
		{Name: "Freight", Amount: decimal.NewFromFloat(12.34)},
		{Name: "Handling", Amount: decimal.NewFromFloat(5.55)},
	}
	got := ComputeTotals(lines(7, 19.99, 3, 0.07), charges, FixedDualRate(decimal.NewFromFloat(9), decimal.NewFromFloat(7)))

	chargeSum := decimal.NewFromFloat(12.34).Add(decimal.NewFromFloat(5.55))
	want := got.Subtotal.Add(chargeSum).Add(got.TaxA).Add(got.TaxB).Round(2)
	assert.True(t, got.Total.Equal(want), "total %s want %s", got.Total, want)
}

func TestComputeTotals_EmptyInput(t *testing.T) {
	got := ComputeTotals(nil, nil, Disabled())
	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.Total.IsZero())
}

func TestComputeTotals_Deterministic(t *testing.T) {
	ls := lines(2.5, 99.99, 1, 0.01)
	charges := []Charge{{Name: "Fee", Amount: decimal.NewFromFloat(3.21)}}
	policy := CustomRate(decimal.NewFromFloat(17.5))

	first := ComputeTotals(ls, charges, policy)
	second := ComputeTotals(ls, charges, policy)

	assert.Equal(t, first.Subtotal.String(), second.Subtotal.String())
	assert.Equal(t, first.TaxA.String(), second.TaxA.String())
	assert.Equal(t, first.TaxB.String(), second.TaxB.String())
	assert.Equal(t, first.Total.String(), second.Total.String())
}

func TestComputeTotals_IdempotentRecompute(t *testing.T) {
	// Recomputing from the persisted inputs must yield bit-identical
	// stored values, no drift from repeated recalculation.
	ls := lines(3, 33.33)
	policy := CustomRate(decimal.NewFromInt(18))

	totals := ComputeTotals(ls, nil, policy)
	for i := 0; i < 5; i++ {
		again := ComputeTotals(ls, nil, policy)
		assert.Equal(t, totals.Total.String(), again.Total.String())
	}
}

func TestFromFloat_CoercesMalformedInput(t *testing.T) {
	assert.True(t, FromFloat(math.NaN()).IsZero())
	assert.True(t, FromFloat(math.Inf(1)).IsZero())
	assert.True(t, FromFloat(math.Inf(-1)).IsZero())
	assert.Equal(t, "12.5", FromFloat(12.5).String())
}

func TestLineTotal(t *testing.T) {
	got := LineTotal(decimal.NewFromFloat(2.5), decimal.NewFromFloat(3.333))
	assert.Equal(t, "8.33", got.String())
}
