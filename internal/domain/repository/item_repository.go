package repository

import (
	"context"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemRepository defines the interface for inventory item data operations
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	// Delete removes the item and cascades to its stock transactions.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Item, error)
	GetLowStock(ctx context.Context) ([]entity.Item, error)
	// SetStock writes an absolute stock level computed by the ledger
	// projector. Levels are always set, never incremented, so the
	// database row matches the projected value exactly.
	SetStock(ctx context.Context, id uuid.UUID, stock decimal.Decimal) error
	// Adjust persists a manual stock adjustment together with its
	// ledger entry in one transaction.
	Adjust(ctx context.Context, item *entity.Item, tx *entity.StockTransaction) error
}

// StockTransactionRepository defines the interface for the append-only
// stock movement log. Entries are never updated; deletion happens only
// as a cascade of item deletion.
type StockTransactionRepository interface {
	Create(ctx context.Context, tx *entity.StockTransaction) error
	List(ctx context.Context) ([]entity.StockTransaction, error)
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]entity.StockTransaction, error)
	ListByReference(ctx context.Context, reference string) ([]entity.StockTransaction, error)
}
