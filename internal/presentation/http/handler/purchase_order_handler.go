package handler

import (
	"github.com/TheAdijagtap/erpx/internal/application/service"
	"github.com/TheAdijagtap/erpx/internal/presentation/http/dto/request"
	"github.com/TheAdijagtap/erpx/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// PurchaseOrderHandler handles purchase order HTTP requests
type PurchaseOrderHandler struct {
	orderService *service.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new purchase order handler
func NewPurchaseOrderHandler(orderService *service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{orderService: orderService}
}

// List handles listing purchase orders
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	result, err := h.orderService.ListPurchaseOrders(c.Request.Context(), bindPagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Purchase orders retrieved successfully", result)
}

// Create handles creating a purchase order
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	order, err := h.orderService.CreatePurchaseOrder(c.Request.Context(), &service.CreatePurchaseOrderInput{
		UserID:     *userID,
		SupplierID: parseOptionalUUID(req.SupplierID),
		Date:       req.Date,
		Tax:        toTaxInput(req.Tax),
		Lines:      toDocumentLines(req.Lines),
		Charges:    toCharges(req.Charges),
		Notes:      req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase order created successfully", order)
}

// Get handles getting a single purchase order
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	order, err := h.orderService.GetPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order retrieved successfully", order)
}

// Update handles updating a purchase order. Lines, when present,
// replace the existing lines wholesale and totals are recomputed.
func (h *PurchaseOrderHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	var req request.UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	input := &service.UpdatePurchaseOrderInput{
		ID:         id,
		SupplierID: parseOptionalUUID(req.SupplierID),
		Date:       req.Date,
		Status:     req.Status,
		Notes:      req.Notes,
	}
	if req.Tax != nil {
		tax := toTaxInput(*req.Tax)
		input.Tax = &tax
	}
	if req.Lines != nil {
		input.Lines = toDocumentLines(req.Lines)
	}
	if req.Charges != nil {
		input.Charges = toCharges(req.Charges)
	}

	order, err := h.orderService.UpdatePurchaseOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order updated successfully", order)
}

// Delete handles deleting a purchase order
func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	if err := h.orderService.DeletePurchaseOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order deleted successfully", nil)
}
