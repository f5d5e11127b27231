package service

import (
	"context"
	"strings"
	"time"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	"github.com/TheAdijagtap/erpx/internal/domain/repository"
	"github.com/TheAdijagtap/erpx/internal/mutation"
	"github.com/TheAdijagtap/erpx/internal/readmodel"
	"github.com/TheAdijagtap/erpx/pkg/apperror"
	"github.com/TheAdijagtap/erpx/pkg/pagination"
	"github.com/TheAdijagtap/erpx/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductService handles sellable catalog products
type ProductService struct {
	store       *readmodel.Store
	pipeline    *mutation.Pipeline
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(store *readmodel.Store, pipeline *mutation.Pipeline, productRepo repository.ProductRepository) *ProductService {
	return &ProductService{store: store, pipeline: pipeline, productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	UserID       uuid.UUID
	Name         string
	Code         string
	SellingPrice decimal.Decimal
	Unit         string
	Notes        *string
}

// CreateProduct creates a new catalog product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	code := input.Code
	if code == "" {
		code = utils.GenerateProductCode()
	}
	for _, existing := range s.store.Products() {
		if existing.Code == code {
			return nil, apperror.NewConflictError("Product code already in use")
		}
	}

	unit := input.Unit
	if unit == "" {
		unit = "pcs"
	}

	product := entity.Product{
		ID:           uuid.New(),
		UserID:       input.UserID,
		Name:         input.Name,
		Code:         code,
		SellingPrice: input.SellingPrice,
		Unit:         unit,
		Notes:        input.Notes,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	err := s.pipeline.Run(ctx, mutation.Command{
		Name: "product.create",
		Forward: func(snap *readmodel.Snapshot) {
			snap.Products[product.ID] = product
		},
		Inverse: func(snap *readmodel.Snapshot) {
			delete(snap.Products, product.ID)
		},
		Remote: func(ctx context.Context) error {
			return s.productRepo.Create(ctx, &product)
		},
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProduct retrieves a product from the snapshot
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, ok := s.store.Product(id)
	if !ok {
		return nil, apperror.NewNotFoundError("Product")
	}
	return &product, nil
}

// ListProducts lists catalog products with optional name/code search
func (s *ProductService) ListProducts(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Product], error) {
	products := s.store.Products()
	if search != "" {
		needle := strings.ToLower(search)
		filtered := products[:0]
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Code), needle) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	return pagination.Paginate(products, params), nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID           uuid.UUID
	Name         *string
	SellingPrice *decimal.Decimal
	Unit         *string
	Notes        *string
}

// UpdateProduct updates a catalog product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	before, ok := s.store.Product(input.ID)
	if !ok {
		return nil, apperror.NewNotFoundError("Product")
	}

	product := before
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.SellingPrice != nil {
		product.SellingPrice = *input.SellingPrice
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.Notes != nil {
		product.Notes = input.Notes
	}
	product.UpdatedAt = time.Now()

	err := s.pipeline.Run(ctx, mutation.Command{
		Name: "product.update",
		Forward: func(snap *readmodel.Snapshot) {
			snap.Products[product.ID] = product
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.Products[before.ID] = before
		},
		Remote: func(ctx context.Context) error {
			return s.productRepo.Update(ctx, &product)
		},
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct deletes a catalog product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	before, ok := s.store.Product(id)
	if !ok {
		return apperror.NewNotFoundError("Product")
	}

	return s.pipeline.Run(ctx, mutation.Command{
		Name: "product.delete",
		Forward: func(snap *readmodel.Snapshot) {
			delete(snap.Products, id)
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.Products[before.ID] = before
		},
		Remote: func(ctx context.Context) error {
			return s.productRepo.Delete(ctx, id)
		},
	})
}
