package request

// CreateItemRequest represents an item creation request
type CreateItemRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=255"`
	SKU       string  `json:"sku" binding:"omitempty,max=100"`
	Unit      string  `json:"unit" binding:"omitempty,max=50"`
	MinStock  float64 `json:"min_stock" binding:"omitempty,gte=0"`
	MaxStock  float64 `json:"max_stock" binding:"omitempty,gte=0"`
	UnitPrice float64 `json:"unit_price" binding:"omitempty,gte=0"`
	Notes     *string `json:"notes"`
}

// UpdateItemRequest represents an item update request. Stock is absent
// on purpose: stock only moves through adjustments and receipts.
type UpdateItemRequest struct {
	Name      *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Unit      *string  `json:"unit" binding:"omitempty,max=50"`
	MinStock  *float64 `json:"min_stock" binding:"omitempty,gte=0"`
	MaxStock  *float64 `json:"max_stock" binding:"omitempty,gte=0"`
	UnitPrice *float64 `json:"unit_price" binding:"omitempty,gte=0"`
	Notes     *string  `json:"notes"`
}

// AdjustStockRequest represents a manual stock adjustment request
type AdjustStockRequest struct {
	Direction string  `json:"direction" binding:"required,oneof=IN OUT"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
	Reason    string  `json:"reason" binding:"required,min=1,max=255"`
}
