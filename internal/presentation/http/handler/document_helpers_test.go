package handler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheAdijagtap/erpx/internal/presentation/http/dto/request"
)

func TestToDocumentLines_NonFiniteQuantityBecomesZero(t *testing.T) {
	lines := toDocumentLines([]request.DocumentLineRequest{
		{Description: "Cement", Quantity: math.NaN(), UnitPrice: math.Inf(1)},
		{Description: "Sand", Quantity: 12.5, UnitPrice: 4},
	})
	require.Len(t, lines, 2)
	assert.True(t, lines[0].Quantity.IsZero())
	assert.True(t, lines[0].UnitPrice.IsZero())
	assert.Equal(t, "12.5", lines[1].Quantity.String())
}

func TestToReceiptLines_NonFiniteQuantityBecomesZero(t *testing.T) {
	ordered := math.Inf(-1)
	lines := toReceiptLines([]request.ReceiptLineRequest{
		{Description: "Cement", OrderedQuantity: &ordered, ReceivedQuantity: math.NaN()},
	})
	require.Len(t, lines, 1)
	assert.True(t, lines[0].ReceivedQuantity.IsZero())
	require.NotNil(t, lines[0].OrderedQuantity)
	assert.True(t, lines[0].OrderedQuantity.IsZero())
}
