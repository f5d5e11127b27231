package handler

import (
	"github.com/TheAdijagtap/erpx/internal/application/service"
	"github.com/TheAdijagtap/erpx/internal/domain/enum"
	"github.com/TheAdijagtap/erpx/internal/domain/finance"
	"github.com/TheAdijagtap/erpx/internal/presentation/http/dto/request"
	"github.com/TheAdijagtap/erpx/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ItemHandler handles inventory item HTTP requests
type ItemHandler struct {
	inventoryService *service.InventoryService
}

// NewItemHandler creates a new item handler
func NewItemHandler(inventoryService *service.InventoryService) *ItemHandler {
	return &ItemHandler{inventoryService: inventoryService}
}

// List handles listing items with optional search
func (h *ItemHandler) List(c *gin.Context) {
	result, err := h.inventoryService.ListItems(c.Request.Context(), bindPagination(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Items retrieved successfully", result)
}

// GetLowStock handles listing items at or below their minimum stock
func (h *ItemHandler) GetLowStock(c *gin.Context) {
	items, err := h.inventoryService.ListLowStockItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock items retrieved successfully", items)
}

// Create handles creating an item
func (h *ItemHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		UserID:    *userID,
		Name:      req.Name,
		SKU:       req.SKU,
		Unit:      req.Unit,
		MinStock:  finance.FromFloat(req.MinStock),
		MaxStock:  finance.FromFloat(req.MaxStock),
		UnitPrice: finance.FromFloat(req.UnitPrice),
		Notes:     req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", item)
}

// Get handles getting a single item
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.inventoryService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", item)
}

// Update handles updating an item
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	input := &service.UpdateItemInput{
		ID:    id,
		Name:  req.Name,
		Unit:  req.Unit,
		Notes: req.Notes,
	}
	if req.MinStock != nil {
		v := finance.FromFloat(*req.MinStock)
		input.MinStock = &v
	}
	if req.MaxStock != nil {
		v := finance.FromFloat(*req.MaxStock)
		input.MaxStock = &v
	}
	if req.UnitPrice != nil {
		v := finance.FromFloat(*req.UnitPrice)
		input.UnitPrice = &v
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", item)
}

// Delete handles deleting an item and its transaction history
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.inventoryService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item deleted successfully", nil)
}

// AdjustStock handles a manual stock adjustment
func (h *ItemHandler) AdjustStock(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	item, err := h.inventoryService.AdjustStock(c.Request.Context(), &service.AdjustStockInput{
		UserID:    *userID,
		ItemID:    id,
		Direction: enum.TransactionDirection(req.Direction),
		Quantity:  decimal.NewFromFloat(req.Quantity),
		Reason:    req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock adjusted successfully", item)
}

// ListTransactions handles listing the full stock movement log
func (h *ItemHandler) ListTransactions(c *gin.Context) {
	result, err := h.inventoryService.ListTransactions(c.Request.Context(), bindPagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// ListItemTransactions handles listing the movement history of one item
func (h *ItemHandler) ListItemTransactions(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	txs, err := h.inventoryService.ListItemTransactions(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transactions retrieved successfully", txs)
}
