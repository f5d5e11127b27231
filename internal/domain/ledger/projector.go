package ledger

import (
	"time"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	"github.com/TheAdijagtap/erpx/internal/domain/enum"
	"github.com/TheAdijagtap/erpx/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Package ledger projects goods-receipt events and manual adjustments
// into inventory stock levels and append-only stock transactions. All
// functions are pure: they read a stock snapshot and return the new
// levels plus the entries to persist, leaving the write to the caller.
// ProjectReceipt is not idempotent; callers invoke it exactly once per
// receipt creation.

// ReceiptLine is the projection view of a goods receipt line. A nil
// ItemID marks a free-text line with no inventory effect.
type ReceiptLine struct {
	ItemID           *uuid.UUID
	ReceivedQuantity decimal.Decimal
	UnitPrice        decimal.Decimal
}

// Projection holds the outcome of projecting one event: the new absolute
// stock level per affected item and the ledger entries to append, in
// source-line order.
type Projection struct {
	StockLevels map[uuid.UUID]decimal.Decimal
	Entries     []entity.StockTransaction
}

// ProjectReceipt computes the stock deltas and IN entries for a goods
// receipt. Lines with no catalog reference, a non-positive received
// quantity, or an item missing from the stock snapshot (deleted since
// the document was drafted) are skipped fail-soft; the document line
// itself is still persisted by the caller.
func ProjectReceipt(userID uuid.UUID, receiptNo string, occurredAt time.Time, receiptLines []ReceiptLine, stock map[uuid.UUID]decimal.Decimal) Projection {
	proj := Projection{StockLevels: make(map[uuid.UUID]decimal.Decimal)}

	for i, line := range receiptLines {
		if line.ItemID == nil || !line.ReceivedQuantity.IsPositive() {
			continue
		}
		itemID := *line.ItemID

		current, ok := proj.StockLevels[itemID]
		if !ok {
			current, ok = stock[itemID]
			if !ok {
				// Unknown or deleted item: no stock change, no entry.
				continue
			}
		}

		proj.StockLevels[itemID] = current.Add(line.ReceivedQuantity)

		ref := receiptNo
		proj.Entries = append(proj.Entries, entity.StockTransaction{
			ID:         uuid.New(),
			UserID:     userID,
			ItemID:     itemID,
			Direction:  enum.TransactionDirectionIn,
			Quantity:   line.ReceivedQuantity,
			UnitPrice:  line.UnitPrice,
			TotalValue: finance.LineTotal(line.ReceivedQuantity, line.UnitPrice),
			Reason:     "Goods receipt",
			Reference:  &ref,
			Seq:        i,
			OccurredAt: occurredAt,
		})
	}

	return proj
}

// ReverseReceipt computes the compensating OUT entries for deleting a
// goods receipt whose stock effect was already applied. Each original IN
// entry is reversed by at most the stock still available; levels clamp
// at zero and fully depleted items produce no entry (entry quantities
// are always positive).
func ReverseReceipt(userID uuid.UUID, receiptNo string, occurredAt time.Time, original []entity.StockTransaction, stock map[uuid.UUID]decimal.Decimal) Projection {
	proj := Projection{StockLevels: make(map[uuid.UUID]decimal.Decimal)}

	seq := 0
	for _, in := range original {
		if in.Direction != enum.TransactionDirectionIn {
			continue
		}

		current, ok := proj.StockLevels[in.ItemID]
		if !ok {
			current, ok = stock[in.ItemID]
			if !ok {
				continue
			}
		}

		effective := in.Quantity
		if effective.GreaterThan(current) {
			effective = current
		}
		proj.StockLevels[in.ItemID] = current.Sub(effective)

		if !effective.IsPositive() {
			continue
		}

		ref := receiptNo
		proj.Entries = append(proj.Entries, entity.StockTransaction{
			ID:         uuid.New(),
			UserID:     userID,
			ItemID:     in.ItemID,
			Direction:  enum.TransactionDirectionOut,
			Quantity:   effective,
			UnitPrice:  in.UnitPrice,
			TotalValue: finance.LineTotal(effective, in.UnitPrice),
			Reason:     "Goods receipt reversal",
			Reference:  &ref,
			Seq:        seq,
			OccurredAt: occurredAt,
		})
		seq++
	}

	return proj
}

// Adjustment holds the outcome of a manual stock adjustment. Entry is
// nil when the movement had no effect (an OUT against empty stock).
type Adjustment struct {
	NewStock decimal.Decimal
	Entry    *entity.StockTransaction
}

// ProjectAdjustment computes a manual IN or OUT movement for one item.
// OUT movements are clamped: requesting more than the available stock
// drains the item to zero, and the emitted entry records the effective
// quantity removed so that replaying the ledger reproduces the stock
// level.
func ProjectAdjustment(userID uuid.UUID, item *entity.Item, direction enum.TransactionDirection, quantity decimal.Decimal, reason string, occurredAt time.Time) Adjustment {
	effective := quantity
	var newStock decimal.Decimal

	if direction == enum.TransactionDirectionOut {
		if effective.GreaterThan(item.CurrentStock) {
			effective = item.CurrentStock
		}
		newStock = item.CurrentStock.Sub(effective)
	} else {
		newStock = item.CurrentStock.Add(effective)
	}

	if !effective.IsPositive() {
		return Adjustment{NewStock: newStock}
	}

	return Adjustment{
		NewStock: newStock,
		Entry: &entity.StockTransaction{
			ID:         uuid.New(),
			UserID:     userID,
			ItemID:     item.ID,
			Direction:  direction,
			Quantity:   effective,
			UnitPrice:  item.UnitPrice,
			TotalValue: finance.LineTotal(effective, item.UnitPrice),
			Reason:     reason,
			OccurredAt: occurredAt,
		},
	}
}
