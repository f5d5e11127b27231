package request

// CreateContactRequest represents a supplier or customer creation request
type CreateContactRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=255"`
	ContactPerson *string `json:"contact_person" binding:"omitempty,max=255"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	Address       *string `json:"address"`
	TaxNumber     *string `json:"tax_number" binding:"omitempty,max=100"`
	AccountNumber *string `json:"account_number" binding:"omitempty,max=100"`
	BankName      *string `json:"bank_name" binding:"omitempty,max=255"`
}

// UpdateContactRequest represents a supplier or customer update request
type UpdateContactRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=255"`
	ContactPerson *string `json:"contact_person" binding:"omitempty,max=255"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	Address       *string `json:"address"`
	TaxNumber     *string `json:"tax_number" binding:"omitempty,max=100"`
	AccountNumber *string `json:"account_number" binding:"omitempty,max=100"`
	BankName      *string `json:"bank_name" binding:"omitempty,max=255"`
}
