package service

import (
	"context"
	"time"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	"github.com/TheAdijagtap/erpx/internal/domain/enum"
	"github.com/TheAdijagtap/erpx/internal/domain/finance"
	"github.com/TheAdijagtap/erpx/internal/domain/repository"
	"github.com/TheAdijagtap/erpx/internal/mutation"
	"github.com/TheAdijagtap/erpx/internal/readmodel"
	"github.com/TheAdijagtap/erpx/pkg/apperror"
	"github.com/TheAdijagtap/erpx/pkg/pagination"
	"github.com/TheAdijagtap/erpx/pkg/utils"
	"github.com/google/uuid"
)

// PurchaseOrderService handles purchase order documents. Orders carry no
// inventory effect; stock moves only when goods are received.
type PurchaseOrderService struct {
	store     *readmodel.Store
	pipeline  *mutation.Pipeline
	orderRepo repository.PurchaseOrderRepository
}

// NewPurchaseOrderService creates a new purchase order service
func NewPurchaseOrderService(store *readmodel.Store, pipeline *mutation.Pipeline, orderRepo repository.PurchaseOrderRepository) *PurchaseOrderService {
	return &PurchaseOrderService{store: store, pipeline: pipeline, orderRepo: orderRepo}
}

// CreatePurchaseOrderInput represents the create purchase order input
type CreatePurchaseOrderInput struct {
	UserID     uuid.UUID
	SupplierID *uuid.UUID
	Date       time.Time
	Tax        TaxInput
	Lines      []DocumentLineInput
	Charges    []ChargeInput
	Notes      *string
}

// CreatePurchaseOrder creates a new purchase order with derived totals
func (s *PurchaseOrderService) CreatePurchaseOrder(ctx context.Context, input *CreatePurchaseOrderInput) (*entity.PurchaseOrder, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("At least one line is required")
	}
	if input.SupplierID != nil {
		if _, ok := s.store.Supplier(*input.SupplierID); !ok {
			return nil, apperror.NewNotFoundError("Supplier")
		}
	}

	totals := computeDocumentTotals(input.Lines, input.Charges, input.Tax)

	order := entity.PurchaseOrder{
		ID:         uuid.New(),
		UserID:     input.UserID,
		SupplierID: input.SupplierID,
		OrderNo:    utils.GenerateOrderNo(),
		Date:       input.Date,
		Status:     enum.DocumentStatusDraft,
		TaxMode:    input.Tax.Mode,
		TaxRateA:   input.Tax.RateA,
		TaxRateB:   input.Tax.RateB,
		Subtotal:   totals.Subtotal,
		TaxAmountA: totals.TaxA,
		TaxAmountB: totals.TaxB,
		Total:      totals.Total,
		Notes:      input.Notes,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	order.Lines = buildOrderLines(order.ID, input.Lines)
	order.Charges = buildOrderCharges(order.ID, input.Charges)

	// The cached copy carries the resolved supplier and line items; the
	// bare row set goes to the database.
	cached := embedOrderJoins(s.store, order)

	err := s.pipeline.Run(ctx, mutation.Command{
		Name: "purchase_order.create",
		Forward: func(snap *readmodel.Snapshot) {
			snap.PurchaseOrders[order.ID] = cached
		},
		Inverse: func(snap *readmodel.Snapshot) {
			delete(snap.PurchaseOrders, order.ID)
		},
		Remote: func(ctx context.Context) error {
			return s.orderRepo.Create(ctx, &order)
		},
	})
	if err != nil {
		return nil, err
	}
	return &cached, nil
}

// GetPurchaseOrder retrieves a purchase order from the snapshot
func (s *PurchaseOrderService) GetPurchaseOrder(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	order, ok := s.store.PurchaseOrder(id)
	if !ok {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	return &order, nil
}

// ListPurchaseOrders lists purchase orders, newest first
func (s *PurchaseOrderService) ListPurchaseOrders(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.PurchaseOrder], error) {
	return pagination.Paginate(s.store.PurchaseOrders(), params), nil
}

// UpdatePurchaseOrderInput represents the update purchase order input.
// Lines and charges replace the existing set wholesale; totals are
// recomputed from the new state.
type UpdatePurchaseOrderInput struct {
	ID         uuid.UUID
	SupplierID *uuid.UUID
	Date       *time.Time
	Status     *enum.DocumentStatus
	Tax        *TaxInput
	Lines      []DocumentLineInput
	Charges    []ChargeInput
	Notes      *string
}

// UpdatePurchaseOrder updates a purchase order and recomputes its totals
func (s *PurchaseOrderService) UpdatePurchaseOrder(ctx context.Context, input *UpdatePurchaseOrderInput) (*entity.PurchaseOrder, error) {
	before, ok := s.store.PurchaseOrder(input.ID)
	if !ok {
		return nil, apperror.NewNotFoundError("Purchase order")
	}

	order := before
	if input.SupplierID != nil {
		if _, ok := s.store.Supplier(*input.SupplierID); !ok {
			return nil, apperror.NewNotFoundError("Supplier")
		}
		order.SupplierID = input.SupplierID
	}
	if input.Date != nil {
		order.Date = *input.Date
	}
	if input.Status != nil {
		order.Status = *input.Status
	}
	if input.Tax != nil {
		order.TaxMode = input.Tax.Mode
		order.TaxRateA = input.Tax.RateA
		order.TaxRateB = input.Tax.RateB
	}
	if input.Notes != nil {
		order.Notes = input.Notes
	}
	if input.Lines != nil {
		if len(input.Lines) == 0 {
			return nil, apperror.NewBadRequestError("At least one line is required")
		}
		order.Lines = buildOrderLines(order.ID, input.Lines)
	}
	if input.Charges != nil {
		order.Charges = buildOrderCharges(order.ID, input.Charges)
	}

	// Recompute totals from the updated lines and charges.
	lineInputs := make([]DocumentLineInput, 0, len(order.Lines))
	for _, l := range order.Lines {
		lineInputs = append(lineInputs, DocumentLineInput{Quantity: l.Quantity, UnitPrice: l.UnitPrice})
	}
	chargeInputs := make([]ChargeInput, 0, len(order.Charges))
	for _, c := range order.Charges {
		chargeInputs = append(chargeInputs, ChargeInput{Name: c.Name, Amount: c.Amount})
	}
	totals := computeDocumentTotals(lineInputs, chargeInputs, TaxInput{Mode: order.TaxMode, RateA: order.TaxRateA, RateB: order.TaxRateB})
	order.Subtotal = totals.Subtotal
	order.TaxAmountA = totals.TaxA
	order.TaxAmountB = totals.TaxB
	order.Total = totals.Total
	order.UpdatedAt = time.Now()

	doc := stripOrderJoins(order)
	cached := embedOrderJoins(s.store, doc)

	err := s.pipeline.Run(ctx, mutation.Command{
		Name: "purchase_order.update",
		Forward: func(snap *readmodel.Snapshot) {
			snap.PurchaseOrders[order.ID] = cached
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.PurchaseOrders[before.ID] = before
		},
		Remote: func(ctx context.Context) error {
			return s.orderRepo.Update(ctx, &doc)
		},
	})
	if err != nil {
		return nil, err
	}
	return &cached, nil
}

// DeletePurchaseOrder deletes a purchase order
func (s *PurchaseOrderService) DeletePurchaseOrder(ctx context.Context, id uuid.UUID) error {
	before, ok := s.store.PurchaseOrder(id)
	if !ok {
		return apperror.NewNotFoundError("Purchase order")
	}

	return s.pipeline.Run(ctx, mutation.Command{
		Name: "purchase_order.delete",
		Forward: func(snap *readmodel.Snapshot) {
			delete(snap.PurchaseOrders, id)
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.PurchaseOrders[before.ID] = before
		},
		Remote: func(ctx context.Context) error {
			return s.orderRepo.Delete(ctx, id)
		},
	})
}

func buildOrderLines(orderID uuid.UUID, inputs []DocumentLineInput) []entity.PurchaseOrderLine {
	lines := make([]entity.PurchaseOrderLine, 0, len(inputs))
	for _, in := range inputs {
		lines = append(lines, entity.PurchaseOrderLine{
			ID:              uuid.New(),
			PurchaseOrderID: orderID,
			ItemID:          in.ItemID,
			Description:     in.Description,
			Quantity:        in.Quantity,
			UnitPrice:       in.UnitPrice,
			LineTotal:       finance.LineTotal(in.Quantity, in.UnitPrice),
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		})
	}
	return lines
}

func buildOrderCharges(orderID uuid.UUID, inputs []ChargeInput) []entity.PurchaseOrderCharge {
	charges := make([]entity.PurchaseOrderCharge, 0, len(inputs))
	for _, in := range inputs {
		charges = append(charges, entity.PurchaseOrderCharge{
			ID:              uuid.New(),
			PurchaseOrderID: orderID,
			Name:            in.Name,
			Amount:          in.Amount,
			CreatedAt:       time.Now(),
		})
	}
	return charges
}
