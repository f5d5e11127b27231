package service

import (
	"context"
	"time"

	"github.com/TheAdijagtap/erpx/internal/domain/entity"
	"github.com/TheAdijagtap/erpx/internal/domain/repository"
	"github.com/TheAdijagtap/erpx/internal/mutation"
	"github.com/TheAdijagtap/erpx/internal/readmodel"
	"github.com/TheAdijagtap/erpx/pkg/apperror"
	"github.com/TheAdijagtap/erpx/pkg/pagination"
	"github.com/google/uuid"
)

// SupplierService handles supplier-related operations
type SupplierService struct {
	store        *readmodel.Store
	pipeline     *mutation.Pipeline
	supplierRepo repository.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(store *readmodel.Store, pipeline *mutation.Pipeline, supplierRepo repository.SupplierRepository) *SupplierService {
	return &SupplierService{store: store, pipeline: pipeline, supplierRepo: supplierRepo}
}

// ContactInput represents the fields shared by supplier and customer writes
type ContactInput struct {
	UserID        uuid.UUID
	Name          string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
	TaxNumber     *string
	AccountNumber *string
	BankName      *string
}

// CreateSupplier creates a new supplier
func (s *SupplierService) CreateSupplier(ctx context.Context, input *ContactInput) (*entity.Supplier, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Supplier name is required")
	}

	supplier := entity.Supplier{
		ID:            uuid.New(),
		UserID:        input.UserID,
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		TaxNumber:     input.TaxNumber,
		AccountNumber: input.AccountNumber,
		BankName:      input.BankName,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	err := s.pipeline.Run(ctx, mutation.Command{
		Name: "supplier.create",
		Forward: func(snap *readmodel.Snapshot) {
			snap.Suppliers[supplier.ID] = supplier
		},
		Inverse: func(snap *readmodel.Snapshot) {
			delete(snap.Suppliers, supplier.ID)
		},
		Remote: func(ctx context.Context) error {
			return s.supplierRepo.Create(ctx, &supplier)
		},
	})
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

// GetSupplier retrieves a supplier from the snapshot
func (s *SupplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, ok := s.store.Supplier(id)
	if !ok {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return &supplier, nil
}

// ListSuppliers lists suppliers, newest first
func (s *SupplierService) ListSuppliers(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Supplier], error) {
	return pagination.Paginate(s.store.Suppliers(), params), nil
}

// UpdateContactInput represents the update input for suppliers and customers
type UpdateContactInput struct {
	ID            uuid.UUID
	Name          *string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
	TaxNumber     *string
	AccountNumber *string
	BankName      *string
}

// UpdateSupplier updates a supplier
func (s *SupplierService) UpdateSupplier(ctx context.Context, input *UpdateContactInput) (*entity.Supplier, error) {
	before, ok := s.store.Supplier(input.ID)
	if !ok {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	supplier := before
	if input.Name != nil {
		supplier.Name = *input.Name
	}
	if input.ContactPerson != nil {
		supplier.ContactPerson = input.ContactPerson
	}
	if input.Email != nil {
		supplier.Email = input.Email
	}
	if input.Phone != nil {
		supplier.Phone = input.Phone
	}
	if input.Address != nil {
		supplier.Address = input.Address
	}
	if input.TaxNumber != nil {
		supplier.TaxNumber = input.TaxNumber
	}
	if input.AccountNumber != nil {
		supplier.AccountNumber = input.AccountNumber
	}
	if input.BankName != nil {
		supplier.BankName = input.BankName
	}
	supplier.UpdatedAt = time.Now()

	err := s.pipeline.Run(ctx, mutation.Command{
		Name: "supplier.update",
		Forward: func(snap *readmodel.Snapshot) {
			snap.Suppliers[supplier.ID] = supplier
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.Suppliers[before.ID] = before
		},
		Remote: func(ctx context.Context) error {
			return s.supplierRepo.Update(ctx, &supplier)
		},
	})
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

// DeleteSupplier deletes a supplier
func (s *SupplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	before, ok := s.store.Supplier(id)
	if !ok {
		return apperror.NewNotFoundError("Supplier")
	}

	return s.pipeline.Run(ctx, mutation.Command{
		Name: "supplier.delete",
		Forward: func(snap *readmodel.Snapshot) {
			delete(snap.Suppliers, id)
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.Suppliers[before.ID] = before
		},
		Remote: func(ctx context.Context) error {
			return s.supplierRepo.Delete(ctx, id)
		},
	})
}

// CustomerService handles customer-related operations
type CustomerService struct {
	store        *readmodel.Store
	pipeline     *mutation.Pipeline
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(store *readmodel.Store, pipeline *mutation.Pipeline, customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{store: store, pipeline: pipeline, customerRepo: customerRepo}
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *ContactInput) (*entity.Customer, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}

	customer := entity.Customer{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		TaxNumber: input.TaxNumber,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err := s.pipeline.Run(ctx, mutation.Command{
		Name: "customer.create",
		Forward: func(snap *readmodel.Snapshot) {
			snap.Customers[customer.ID] = customer
		},
		Inverse: func(snap *readmodel.Snapshot) {
			delete(snap.Customers, customer.ID)
		},
		Remote: func(ctx context.Context) error {
			return s.customerRepo.Create(ctx, &customer)
		},
	})
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetCustomer retrieves a customer from the snapshot
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, ok := s.store.Customer(id)
	if !ok {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return &customer, nil
}

// ListCustomers lists customers, newest first
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Customer], error) {
	return pagination.Paginate(s.store.Customers(), params), nil
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateContactInput) (*entity.Customer, error) {
	before, ok := s.store.Customer(input.ID)
	if !ok {
		return nil, apperror.NewNotFoundError("Customer")
	}

	customer := before
	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.TaxNumber != nil {
		customer.TaxNumber = input.TaxNumber
	}
	customer.UpdatedAt = time.Now()

	err := s.pipeline.Run(ctx, mutation.Command{
		Name: "customer.update",
		Forward: func(snap *readmodel.Snapshot) {
			snap.Customers[customer.ID] = customer
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.Customers[before.ID] = before
		},
		Remote: func(ctx context.Context) error {
			return s.customerRepo.Update(ctx, &customer)
		},
	})
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	before, ok := s.store.Customer(id)
	if !ok {
		return apperror.NewNotFoundError("Customer")
	}

	return s.pipeline.Run(ctx, mutation.Command{
		Name: "customer.delete",
		Forward: func(snap *readmodel.Snapshot) {
			delete(snap.Customers, id)
		},
		Inverse: func(snap *readmodel.Snapshot) {
			snap.Customers[before.ID] = before
		},
		Remote: func(ctx context.Context) error {
			return s.customerRepo.Delete(ctx, id)
		},
	})
}
