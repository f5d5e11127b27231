package request

// CreateProductRequest represents a catalog product creation request
type CreateProductRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=255"`
	Code         string  `json:"code" binding:"omitempty,max=100"`
	Unit         string  `json:"unit" binding:"omitempty,max=50"`
	SellingPrice float64 `json:"selling_price" binding:"omitempty,gte=0"`
	Notes        *string `json:"notes"`
}

// UpdateProductRequest represents a catalog product update request
type UpdateProductRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Unit         *string  `json:"unit" binding:"omitempty,max=50"`
	SellingPrice *float64 `json:"selling_price" binding:"omitempty,gte=0"`
	Notes        *string  `json:"notes"`
}
