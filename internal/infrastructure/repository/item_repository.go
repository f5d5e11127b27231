package repository

import (
	"context"
	"errors"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	domainRepo "github.com/TheAdijagtap/erpx/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new inventory item repository
func NewItemRepository(db *gorm.DB) domainRepo.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var item entity.Item
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *itemRepository) GetBySKU(ctx context.Context, sku string) (*entity.Item, error) {
	var item entity.Item
	err := r.db.WithContext(ctx).First(&item, "sku = ?", sku).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes the item and its transaction history in one transaction.
func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&entity.StockTransaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Item{}, "id = ?", id).Error
	})
}

func (r *itemRepository) List(ctx context.Context) ([]entity.Item, error) {
	var items []entity.Item
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *itemRepository) GetLowStock(ctx context.Context) ([]entity.Item, error) {
	var items []entity.Item
	err := r.db.WithContext(ctx).
		Where("current_stock <= min_stock").
		Order("current_stock ASC").
		Find(&items).Error
	return items, err
}

func (r *itemRepository) SetStock(ctx context.Context, id uuid.UUID, stock decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&entity.Item{}).
		Where("id = ?", id).
		Update("current_stock", stock).Error
}

func (r *itemRepository) Adjust(ctx context.Context, item *entity.Item, stx *entity.StockTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Item{}).
			Where("id = ?", item.ID).
			Update("current_stock", item.CurrentStock).Error; err != nil {
			return err
		}
		if stx != nil {
			return tx.Create(stx).Error
		}
		return nil
	})
}

type stockTransactionRepository struct {
	db *gorm.DB
}

// NewStockTransactionRepository creates a new stock transaction repository
func NewStockTransactionRepository(db *gorm.DB) domainRepo.StockTransactionRepository {
	return &stockTransactionRepository{db: db}
}

func (r *stockTransactionRepository) Create(ctx context.Context, tx *entity.StockTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *stockTransactionRepository) List(ctx context.Context) ([]entity.StockTransaction, error) {
	var txs []entity.StockTransaction
	err := r.db.WithContext(ctx).Order("occurred_at ASC, seq ASC").Find(&txs).Error
	return txs, err
}

func (r *stockTransactionRepository) ListByItem(ctx context.Context, itemID uuid.UUID) ([]entity.StockTransaction, error) {
	var txs []entity.StockTransaction
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("occurred_at ASC, seq ASC").
		Find(&txs).Error
	return txs, err
}

func (r *stockTransactionRepository) ListByReference(ctx context.Context, reference string) ([]entity.StockTransaction, error) {
	var txs []entity.StockTransaction
	err := r.db.WithContext(ctx).
		Where("reference = ?", reference).
		Order("occurred_at ASC, seq ASC").
		Find(&txs).Error
	return txs, err
}
