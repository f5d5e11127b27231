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

// ProformaInvoiceService handles proforma invoice documents. Invoices
// reference catalog products and never touch inventory.
type ProformaInvoiceService struct {
	store       *readmodel.Store
	pipeline    *mutation.Pipeline
	invoiceRepo repository.ProformaInvoiceRepository
}

// NewProformaInvoiceService creates a new proforma invoice service
func NewProformaInvoiceService(store *readmodel.Store, pipeline *mutation.Pipeline, invoiceRepo repository.ProformaInvoiceRepository) *ProformaInvoiceService {
	return &ProformaInvoiceService{store: store, pipeline: pipeline, invoiceRepo: invoiceRepo}
}

// CreateProformaInvoiceInput represents the create proforma invoice input
type CreateProformaInvoiceInput struct {
	UserID     uuid.UUID
	CustomerID *uuid.UUID
	Date       time.Time
	Tax        TaxInput
	Lines      []DocumentLineInput
	Charges    []ChargeInput
	Notes      *string
}

// CreateProformaInvoice creates a new proforma invoice with derived totals
func (s *ProformaInvoiceService) CreateProformaInvoice(ctx context.Context, input *CreateProformaInvoiceInput) (*entity.ProformaInvoice, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("At least one line is required")
	}
	if input.CustomerID != nil {
		if _, ok := s.store.Customer(*input.CustomerID); !ok {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	totals := computeDocumentTotals(input.Lines, input.Charges, input.Tax)

	invoice := entity.ProformaInvoice{
		ID:         uuid.New(),
		UserID:     input.UserID,
		CustomerID: input.CustomerID,
		InvoiceNo:  utils.GenerateInvoiceNo(),
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
	invoice.Lines = buildInvoiceLines(invoice.ID, input.Lines)
	invoice.Charges = buildInvoiceCharges(invoice.ID, input.Charges)

	// The cached copy carries the resolved customer and line products;
	// the bare row set goes to the database.
	cached := embedInvoiceJoins(s.store, invoice)

	err := s.pipeline.Run(ctx, mutation.Command{
		Name: "proforma_invoice.create",
		Forward: func(snap *readmodel.Snapshot) {
			snap.ProformaInvoices[invoice.ID] = cached
		},
		Inverse: func(snap *readmodel.Snapshot) {
			delete(snap.ProformaInvoices, invoice.ID)
		},
		Remote: func(ctx context.Context) error {
			return s.invoiceRepo.Create(ctx, &invoice)
		},
	})
	if err != nil {
		return nil, err
	}
	return &cached, nil
}

// GetProformaInvoice retrieves a proforma invoice from the snapshot
func (s *ProformaInvoiceService) GetProformaInvoice(ctx context.Context, id uuid.UUID) (*entity.ProformaInvoice, error) {
	invoice, ok := s.store.ProformaInvoice(id)
	if !ok {
		return nil, apperror.NewNotFoundError("Proforma invoice")
	}
	return &invoice, nil
}

// ListProformaInvoices lists proforma invoices, newest first
func (s *ProformaInvoiceService) ListProformaInvoices(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.ProformaInvoice], error) {
	return pagination.Paginate(s.store.ProformaInvoices(), params), nil
}

// UpdateProformaInvoiceInput represents the update proforma invoice input
type UpdateProformaInvoiceInput struct {
	ID         uuid.UUID
	CustomerID *uuid.UUID
	Date       *time.Time
	Status     *enum.DocumentStatus
	Tax        *TaxInput
	Lines      []DocumentLineInput
	Charges    []ChargeInput
	Notes      *string
}

// UpdateProformaInvoice updates a proforma invoice and recomputes totals
func (s *ProformaInvoiceService) UpdateProformaInvoice(ctx context.Context, input *UpdateProformaInvoiceInput) (*entity.ProformaInvoice, error) {
	before, ok := s.store.ProformaInvoice(input.ID)
	if !ok {
		return nil, apperror.NewNotFoundError("Proforma invoice")
	}

	invoice := before
	if input.CustomerID != nil {
		if _, ok := s.store.Customer(*input.CustomerID); !ok {
			return nil, apperror.NewNotFoundError("Customer")
		}
		invoice.CustomerID = input.CustomerID
	}
	if input.Date != nil {
		invoice.Date = *input.Date
	}
	if input.Status != nil {
		invoice.Status = *input.Status
	}
	if input.Tax != nil {
		invoice.TaxMode = input.Tax.Mode
		invoice.TaxRateA = input.Tax.RateA
		invoice.TaxRateB = input.Tax.RateB
	}
	if input.Notes != nil {
		invoice.Notes = input.Notes
	}
	if input.Lines != nil {
		if len(input.Lines) == 0 {
			return nil, apperror.NewBadRequestError("At least one line is required")
		}
		invoice.Lines = buildInvoiceLines(invoice.ID, input.Lines)
	}
	if input.Charges != nil {
		invoice.Charges = buildInvoiceCharges(invoice.ID, input.Charges)
	}

	lineInputs := make([]DocumentLineInput, 0, len(invoice.Lines))
	for _, l := range invoice.Lines {
		lineInputs = append(lineInputs, DocumentLineInput{Quantity: l.Quantity, UnitPrice: l.UnitPrice})
	}
	chargeInputs := make([]ChargeInput, 0, len(invoice.Charges))
	for _, c := range invoice.Charges {
		chargeInputs = append(chargeInputs, ChargeInput{Name: c.Name, Amount: c.Amount})
	}
	totals := computeDocumentTotals(lineInputs, chargeInputs, TaxInput{Mode: invoice.TaxMode, RateA: invoice.TaxRateA, RateB: invoice.TaxRateB})
	invoice.Subtotal = totals.Subtotal
	invoice.TaxAmountA = totals.TaxA
	invoice.TaxAmountB = totals.TaxB
	invoice.Total = totals.Total
	invoice.UpdatedAt = time.Now()

	doc := stripInvoiceJoins(invoice)
	cached := embedInvoiceJoins(s.store, doc)

	err := s.pipeline.Run(ctx, mutation.Command{
		Name: "proforma_invoice.update",
		Forward: func(snap *readmodel.Snapshot) {
			snap.ProformaInvoices[invoice.ID] = cached
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.ProformaInvoices[before.ID] = before
		},
		Remote: func(ctx context.Context) error {
			return s.invoiceRepo.Update(ctx, &doc)
		},
	})
	if err != nil {
		return nil, err
	}
	return &cached, nil
}

// DeleteProformaInvoice deletes a proforma invoice
func (s *ProformaInvoiceService) DeleteProformaInvoice(ctx context.Context, id uuid.UUID) error {
	before, ok := s.store.ProformaInvoice(id)
	if !ok {
		return apperror.NewNotFoundError("Proforma invoice")
	}

	return s.pipeline.Run(ctx, mutation.Command{
		Name: "proforma_invoice.delete",
		Forward: func(snap *readmodel.Snapshot) {
			delete(snap.ProformaInvoices, id)
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.ProformaInvoices[before.ID] = before
		},
		Remote: func(ctx context.Context) error {
			return s.invoiceRepo.Delete(ctx, id)
		},
	})
}

func buildInvoiceLines(invoiceID uuid.UUID, inputs []DocumentLineInput) []entity.ProformaInvoiceLine {
	lines := make([]entity.ProformaInvoiceLine, 0, len(inputs))
	for _, in := range inputs {
		lines = append(lines, entity.ProformaInvoiceLine{
			ID:                uuid.New(),
			ProformaInvoiceID: invoiceID,
			ProductID:         in.ProductID,
			Description:       in.Description,
			Quantity:          in.Quantity,
			UnitPrice:         in.UnitPrice,
			LineTotal:         finance.LineTotal(in.Quantity, in.UnitPrice),
			CreatedAt:         time.Now(),
			UpdatedAt:         time.Now(),
		})
	}
	return lines
}

func buildInvoiceCharges(invoiceID uuid.UUID, inputs []ChargeInput) []entity.ProformaInvoiceCharge {
	charges := make([]entity.ProformaInvoiceCharge, 0, len(inputs))
	for _, in := range inputs {
		charges = append(charges, entity.ProformaInvoiceCharge{
			ID:                uuid.New(),
			ProformaInvoiceID: invoiceID,
			Name:              in.Name,
			Amount:            in.Amount,
			CreatedAt:         time.Now(),
		})
	}
	return charges
}
