package service

import (
	"context"
	"strings"
	"time"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	"github.com/TheAdijagtap/erpx/internal/domain/enum"
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

// InventoryService handles inventory items and their stock movements.
// Reads come from the in-memory snapshot; writes go through the
// optimistic mutation pipeline.
type InventoryService struct {
	store    *readmodel.Store
	pipeline *mutation.Pipeline
	itemRepo repository.ItemRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(store *readmodel.Store, pipeline *mutation.Pipeline, itemRepo repository.ItemRepository) *InventoryService {
	return &InventoryService{store: store, pipeline: pipeline, itemRepo: itemRepo}
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	UserID    uuid.UUID
	Name      string
	SKU       string
	Unit      string
	MinStock  decimal.Decimal
	MaxStock  decimal.Decimal
	UnitPrice decimal.Decimal
	Notes     *string
}

// CreateItem creates a new inventory item with zero stock
func (s *InventoryService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Item name is required")
	}
	sku := input.SKU
	if sku == "" {
		sku = utils.GenerateItemSKU()
	}
	for _, existing := range s.store.Items() {
		if existing.SKU == sku {
			return nil, apperror.NewConflictError("SKU already in use")
		}
	}

	unit := input.Unit
	if unit == "" {
		unit = "pcs"
	}

	item := entity.Item{
		ID:           uuid.New(),
		UserID:       input.UserID,
		Name:         input.Name,
		SKU:          sku,
		Unit:         unit,
		CurrentStock: decimal.Zero,
		MinStock:     input.MinStock,
		MaxStock:     input.MaxStock,
		UnitPrice:    input.UnitPrice,
		Notes:        input.Notes,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	err := s.pipeline.Run(ctx, mutation.Command{
		Name: "item.create",
		Forward: func(snap *readmodel.Snapshot) {
			snap.Items[item.ID] = item
		},
		Inverse: func(snap *readmodel.Snapshot) {
			delete(snap.Items, item.ID)
		},
		Remote: func(ctx context.Context) error {
			return s.itemRepo.Create(ctx, &item)
		},
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItem retrieves an item from the snapshot
func (s *InventoryService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, ok := s.store.Item(id)
	if !ok {
		return nil, apperror.NewNotFoundError("Item")
	}
	return &item, nil
}

// ListItems lists inventory items with optional name/SKU search
func (s *InventoryService) ListItems(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Item], error) {
	items := s.store.Items()
	if search != "" {
		needle := strings.ToLower(search)
		filtered := items[:0]
		for _, it := range items {
			if strings.Contains(strings.ToLower(it.Name), needle) ||
				strings.Contains(strings.ToLower(it.SKU), needle) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}
	return pagination.Paginate(items, params), nil
}

// ListLowStockItems returns items at or below their minimum stock level
func (s *InventoryService) ListLowStockItems(ctx context.Context) ([]entity.Item, error) {
	var low []entity.Item
	for _, it := range s.store.Items() {
		if it.IsLowStock() {
			low = append(low, it)
		}
	}
	return low, nil
}

// UpdateItemInput represents the update item input
type UpdateItemInput struct {
	ID        uuid.UUID
	Name      *string
	Unit      *string
	MinStock  *decimal.Decimal
	MaxStock  *decimal.Decimal
	UnitPrice *decimal.Decimal
	Notes     *string
}

// UpdateItem updates item metadata. Stock levels never change here;
// they move only through receipts and adjustments.
func (s *InventoryService) UpdateItem(ctx context.Context, input *UpdateItemInput) (*entity.Item, error) {
	before, ok := s.store.Item(input.ID)
	if !ok {
		return nil, apperror.NewNotFoundError("Item")
	}

	item := before
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.MinStock != nil {
		item.MinStock = *input.MinStock
	}
	if input.MaxStock != nil {
		item.MaxStock = *input.MaxStock
	}
	if input.UnitPrice != nil {
		item.UnitPrice = *input.UnitPrice
	}
	if input.Notes != nil {
		item.Notes = input.Notes
	}
	item.UpdatedAt = time.Now()

	err := s.pipeline.Run(ctx, mutation.Command{
		Name: "item.update",
		Forward: func(snap *readmodel.Snapshot) {
			snap.Items[item.ID] = item
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.Items[before.ID] = before
		},
		Remote: func(ctx context.Context) error {
			return s.itemRepo.Update(ctx, &item)
		},
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes an item and its entire transaction history
func (s *InventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	before, ok := s.store.Item(id)
	if !ok {
		return apperror.NewNotFoundError("Item")
	}
	removed := s.store.TransactionsByItem(id)

	return s.pipeline.Run(ctx, mutation.Command{
		Name: "item.delete",
		Forward: func(snap *readmodel.Snapshot) {
			delete(snap.Items, id)
			snap.RemoveTransactions(func(tx entity.StockTransaction) bool { return tx.ItemID == id })
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.Items[before.ID] = before
			snap.Transactions = append(snap.Transactions, removed...)
		},
		Remote: func(ctx context.Context) error {
			return s.itemRepo.Delete(ctx, id)
		},
	})
}

// AdjustStockInput represents a manual stock adjustment
type AdjustStockInput struct {
	UserID    uuid.UUID
	ItemID    uuid.UUID
	Direction enum.TransactionDirection
	Quantity  decimal.Decimal
	Reason    string
}

// AdjustStock applies a manual stock correction. Decrements clamp at
// zero and the ledger entry records the quantity that actually moved.
func (s *InventoryService) AdjustStock(ctx context.Context, input *AdjustStockInput) (*entity.Item, error) {
	if input.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, apperror.NewBadRequestError("Quantity must be positive")
	}
	if input.Reason == "" {
		return nil, apperror.NewBadRequestError("Reason is required")
	}

	before, ok := s.store.Item(input.ItemID)
	if !ok {
		return nil, apperror.NewNotFoundError("Item")
	}

	adj := ledger.ProjectAdjustment(input.UserID, &before, input.Direction, input.Quantity, input.Reason, time.Now())

	item := before
	item.CurrentStock = adj.NewStock
	item.UpdatedAt = time.Now()

	err := s.pipeline.Run(ctx, mutation.Command{
		Name: "stock.adjust",
		Forward: func(snap *readmodel.Snapshot) {
			snap.Items[item.ID] = item
			if adj.Entry != nil {
				snap.Transactions = append(snap.Transactions, *adj.Entry)
			}
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.Items[before.ID] = before
			if adj.Entry != nil {
				snap.RemoveTransactions(func(tx entity.StockTransaction) bool { return tx.ID == adj.Entry.ID })
			}
		},
		Remote: func(ctx context.Context) error {
			return s.itemRepo.Adjust(ctx, &item, adj.Entry)
		},
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListTransactions returns the full stock movement log, chronological
func (s *InventoryService) ListTransactions(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.StockTransaction], error) {
	return pagination.Paginate(s.store.Transactions(), params), nil
}

// ListItemTransactions returns the movement log for one item
func (s *InventoryService) ListItemTransactions(ctx context.Context, itemID uuid.UUID) ([]entity.StockTransaction, error) {
	if _, ok := s.store.Item(itemID); !ok {
		return nil, apperror.NewNotFoundError("Item")
	}
	return s.store.TransactionsByItem(itemID), nil
}
