package service

import (
	"context"
	"time"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	"github.com/TheAdijagtap/erpx/internal/domain/enum"
	"github.com/TheAdijagtap/erpx/internal/domain/finance"
	"github.com/TheAdijagtap/erpx/internal/domain/ledger"
	"github.com/TheAdijagtap/erpx/internal/domain/repository"
	"github.com/TheAdijagtap/erpx/internal/mutation"
	"github.com/TheAdijagtap/erpx/internal/readmodel"
	"github.com/TheAdijagtap/erpx/pkg/apperror"
	"github.com/TheAdijagtap/erpx/pkg/pagination"
	"github.com/TheAdijagtap/erpx/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoodsReceiptService handles goods receipt documents. Receipt creation
// fans out to the document, the stock levels of every referenced item,
// and the transaction ledger; the whole fan-out commits atomically and
// the read model is patched optimistically with the same projection.
type GoodsReceiptService struct {
	store       *readmodel.Store
	pipeline    *mutation.Pipeline
	receiptRepo repository.GoodsReceiptRepository
}

// NewGoodsReceiptService creates a new goods receipt service
func NewGoodsReceiptService(store *readmodel.Store, pipeline *mutation.Pipeline, receiptRepo repository.GoodsReceiptRepository) *GoodsReceiptService {
	return &GoodsReceiptService{store: store, pipeline: pipeline, receiptRepo: receiptRepo}
}

// ReceiptLineInput represents one received line. OrderedQuantity is
// informational, carried over from the purchase order when one exists.
type ReceiptLineInput struct {
	ItemID           *uuid.UUID
	Description      string
	OrderedQuantity  *decimal.Decimal
	ReceivedQuantity decimal.Decimal
	UnitPrice        decimal.Decimal
}

// CreateGoodsReceiptInput represents the create goods receipt input
type CreateGoodsReceiptInput struct {
	UserID          uuid.UUID
	SupplierID      *uuid.UUID
	PurchaseOrderID *uuid.UUID
	Date            time.Time
	Tax             TaxInput
	Lines           []ReceiptLineInput
	Charges         []ChargeInput
	Notes           *string
}

// CreateGoodsReceipt creates a receipt, projects stock levels and ledger
// entries, and persists everything in a single transaction.
func (s *GoodsReceiptService) CreateGoodsReceipt(ctx context.Context, input *CreateGoodsReceiptInput) (*entity.GoodsReceipt, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("At least one line is required")
	}
	if input.SupplierID != nil {
		if _, ok := s.store.Supplier(*input.SupplierID); !ok {
			return nil, apperror.NewNotFoundError("Supplier")
		}
	}
	if input.PurchaseOrderID != nil {
		if _, ok := s.store.PurchaseOrder(*input.PurchaseOrderID); !ok {
			return nil, apperror.NewNotFoundError("Purchase order")
		}
	}

	lineInputs := make([]DocumentLineInput, 0, len(input.Lines))
	for _, l := range input.Lines {
		lineInputs = append(lineInputs, DocumentLineInput{Quantity: l.ReceivedQuantity, UnitPrice: l.UnitPrice})
	}
	totals := computeDocumentTotals(lineInputs, input.Charges, input.Tax)

	now := time.Now()
	receipt := entity.GoodsReceipt{
		ID:              uuid.New(),
		UserID:          input.UserID,
		SupplierID:      input.SupplierID,
		PurchaseOrderID: input.PurchaseOrderID,
		ReceiptNo:       utils.GenerateReceiptNo(),
		Date:            input.Date,
		Status:          enum.DocumentStatusCompleted,
		TaxMode:         input.Tax.Mode,
		TaxRateA:        input.Tax.RateA,
		TaxRateB:        input.Tax.RateB,
		Subtotal:        totals.Subtotal,
		TaxAmountA:      totals.TaxA,
		TaxAmountB:      totals.TaxB,
		Total:           totals.Total,
		Notes:           input.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	projectionLines := make([]ledger.ReceiptLine, 0, len(input.Lines))
	for _, in := range input.Lines {
		receipt.Lines = append(receipt.Lines, entity.GoodsReceiptLine{
			ID:               uuid.New(),
			GoodsReceiptID:   receipt.ID,
			ItemID:           in.ItemID,
			Description:      in.Description,
			OrderedQuantity:  in.OrderedQuantity,
			ReceivedQuantity: in.ReceivedQuantity,
			UnitPrice:        in.UnitPrice,
			LineTotal:        finance.LineTotal(in.ReceivedQuantity, in.UnitPrice),
			CreatedAt:        now,
			UpdatedAt:        now,
		})
		projectionLines = append(projectionLines, ledger.ReceiptLine{
			ItemID:           in.ItemID,
			ReceivedQuantity: in.ReceivedQuantity,
			UnitPrice:        in.UnitPrice,
		})
	}
	for _, in := range input.Charges {
		receipt.Charges = append(receipt.Charges, entity.GoodsReceiptCharge{
			ID:             uuid.New(),
			GoodsReceiptID: receipt.ID,
			Name:           in.Name,
			Amount:         in.Amount,
			CreatedAt:      now,
		})
	}

	proj := ledger.ProjectReceipt(input.UserID, receipt.ReceiptNo, now, projectionLines, s.store.StockLevels())

	// Remember the pre-receipt stock of touched items for rollback.
	beforeItems := make(map[uuid.UUID]entity.Item, len(proj.StockLevels))
	for itemID := range proj.StockLevels {
		if item, ok := s.store.Item(itemID); ok {
			beforeItems[itemID] = item
		}
	}

	// The cached copy carries the resolved supplier, source order and
	// line items; the bare row set goes to the database.
	cached := embedReceiptJoins(s.store, receipt)

	err := s.pipeline.Run(ctx, mutation.Command{
		Name: "goods_receipt.create",
		Forward: func(snap *readmodel.Snapshot) {
			snap.GoodsReceipts[receipt.ID] = cached
			for itemID, level := range proj.StockLevels {
				if item, ok := snap.Items[itemID]; ok {
					item.CurrentStock = level
					item.UpdatedAt = now
					snap.Items[itemID] = item
				}
			}
			snap.Transactions = append(snap.Transactions, proj.Entries...)
		},
		Inverse: func(snap *readmodel.Snapshot) {
			delete(snap.GoodsReceipts, receipt.ID)
			for itemID, item := range beforeItems {
				snap.Items[itemID] = item
			}
			ids := make(map[uuid.UUID]bool, len(proj.Entries))
			for _, e := range proj.Entries {
				ids[e.ID] = true
			}
			snap.RemoveTransactions(func(tx entity.StockTransaction) bool { return ids[tx.ID] })
		},
		Remote: func(ctx context.Context) error {
			return s.receiptRepo.CreateWithProjection(ctx, &receipt, proj.StockLevels, proj.Entries)
		},
	})
	if err != nil {
		return nil, err
	}
	return &cached, nil
}

// GetGoodsReceipt retrieves a goods receipt from the snapshot
func (s *GoodsReceiptService) GetGoodsReceipt(ctx context.Context, id uuid.UUID) (*entity.GoodsReceipt, error) {
	receipt, ok := s.store.GoodsReceipt(id)
	if !ok {
		return nil, apperror.NewNotFoundError("Goods receipt")
	}
	return &receipt, nil
}

// ListGoodsReceipts lists goods receipts, newest first
func (s *GoodsReceiptService) ListGoodsReceipts(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.GoodsReceipt], error) {
	return pagination.Paginate(s.store.GoodsReceipts(), params), nil
}

// UpdateGoodsReceiptInput represents the fields editable after creation.
// Lines and charges are immutable once projected; correcting a mistake
// means deleting the receipt and creating a new one.
type UpdateGoodsReceiptInput struct {
	ID     uuid.UUID
	Status *enum.DocumentStatus
	Notes  *string
}

// UpdateGoodsReceipt updates the mutable header fields of a receipt
func (s *GoodsReceiptService) UpdateGoodsReceipt(ctx context.Context, input *UpdateGoodsReceiptInput) (*entity.GoodsReceipt, error) {
	before, ok := s.store.GoodsReceipt(input.ID)
	if !ok {
		return nil, apperror.NewNotFoundError("Goods receipt")
	}

	receipt := before
	if input.Status != nil {
		receipt.Status = *input.Status
	}
	if input.Notes != nil {
		receipt.Notes = input.Notes
	}
	receipt.UpdatedAt = time.Now()

	err := s.pipeline.Run(ctx, mutation.Command{
		Name: "goods_receipt.update",
		Forward: func(snap *readmodel.Snapshot) {
			snap.GoodsReceipts[receipt.ID] = receipt
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.GoodsReceipts[before.ID] = before
		},
		Remote: func(ctx context.Context) error {
			return s.receiptRepo.UpdateHeader(ctx, &receipt)
		},
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// DeleteGoodsReceipt removes a receipt and reverses its stock effect
// with compensating ledger entries, all in one transaction.
func (s *GoodsReceiptService) DeleteGoodsReceipt(ctx context.Context, userID, id uuid.UUID) error {
	before, ok := s.store.GoodsReceipt(id)
	if !ok {
		return apperror.NewNotFoundError("Goods receipt")
	}

	now := time.Now()
	original := make([]entity.StockTransaction, 0)
	for _, tx := range s.store.Transactions() {
		if tx.Reference != nil && *tx.Reference == before.ReceiptNo && tx.Direction == enum.TransactionDirectionIn {
			original = append(original, tx)
		}
	}

	proj := ledger.ReverseReceipt(userID, before.ReceiptNo, now, original, s.store.StockLevels())

	beforeItems := make(map[uuid.UUID]entity.Item, len(proj.StockLevels))
	for itemID := range proj.StockLevels {
		if item, ok := s.store.Item(itemID); ok {
			beforeItems[itemID] = item
		}
	}

	return s.pipeline.Run(ctx, mutation.Command{
		Name: "goods_receipt.delete",
		Forward: func(snap *readmodel.Snapshot) {
			delete(snap.GoodsReceipts, id)
			for itemID, level := range proj.StockLevels {
				if item, ok := snap.Items[itemID]; ok {
					item.CurrentStock = level
					item.UpdatedAt = now
					snap.Items[itemID] = item
				}
			}
			snap.Transactions = append(snap.Transactions, proj.Entries...)
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.GoodsReceipts[before.ID] = before
			for itemID, item := range beforeItems {
				snap.Items[itemID] = item
			}
			ids := make(map[uuid.UUID]bool, len(proj.Entries))
			for _, e := range proj.Entries {
				ids[e.ID] = true
			}
			snap.RemoveTransactions(func(tx entity.StockTransaction) bool { return ids[tx.ID] })
		},
		Remote: func(ctx context.Context) error {
			return s.receiptRepo.DeleteWithReversal(ctx, id, proj.StockLevels, proj.Entries)
		},
	})
}
